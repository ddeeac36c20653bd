package pipeline

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/korpus-id/koref/internal/model"
)

// WriteJSONL writes one JSON record per line to path
func WriteJSONL(path string, records []*model.Paragraph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", closeErr)
		}
	}()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output file: %w", err)
	}
	return nil
}
