package pipeline

import (
	"fmt"
	"os"

	"github.com/korpus-id/koref/internal/segment"
)

// ReadBlocks bulk-reads an annotation dump and splits it into paragraph
// chunks. The corpus is bounded and pre-loaded by contract, so a single read
// is fine; a missing or unreadable path is fatal to the conversion.
func ReadBlocks(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read annotation file: %w", err)
	}
	return segment.SplitBlocks(string(data)), nil
}
