// Package segment splits a raw annotation dump into independent paragraph
// blocks and decomposes each block into text, tokens, and per-token labels.
package segment

import (
	"strings"

	"github.com/korpus-id/koref/internal/model"
)

// Segmenter decomposes paragraph blocks of a tabular annotation dump
type Segmenter struct {
	textPrefix  string
	tokenColumn int
	labelColumn int
}

// NewSegmenter creates a segmenter for the given dump layout
func NewSegmenter(cfg model.InputConfig) *Segmenter {
	return &Segmenter{
		textPrefix:  cfg.TextPrefix,
		tokenColumn: cfg.TokenColumn,
		labelColumn: cfg.LabelColumn,
	}
}

// SplitBlocks splits the raw dump into paragraph chunks on blank-line
// boundaries. Chunks that trim to nothing (e.g. a trailing newline) are not
// paragraph blocks and are dropped.
func SplitBlocks(raw string) []string {
	var blocks []string
	for _, chunk := range strings.Split(raw, "\n\n") {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		blocks = append(blocks, chunk)
	}
	return blocks
}

// Segment decomposes one paragraph chunk. The first line carries the
// paragraph text behind a fixed prefix; every following line is a
// tab-separated annotation record. Lines with fewer columns than the label
// column requires are structural and skipped.
func (s *Segmenter) Segment(chunk string) *model.Block {
	lines := strings.Split(strings.TrimSpace(chunk), "\n")

	block := &model.Block{
		Text: strings.TrimPrefix(lines[0], s.textPrefix),
	}

	minColumns := s.labelColumn + 1
	if minColumns <= s.tokenColumn {
		minColumns = s.tokenColumn + 1
	}

	for _, line := range lines[1:] {
		columns := strings.Split(line, "\t")
		if len(columns) < minColumns {
			continue
		}

		block.Tokens = append(block.Tokens, columns[s.tokenColumn])
		block.Labels = append(block.Labels, strings.Split(columns[s.labelColumn], "|"))
	}

	return block
}
