package segment

import (
	"reflect"
	"testing"

	"github.com/korpus-id/koref/internal/model"
)

func newTestSegmenter() *Segmenter {
	return NewSegmenter(model.DefaultConfig().Input)
}

func TestSplitBlocks(t *testing.T) {
	raw := "#Text=First paragraph\n1-1\t0-1\tFirst\t_\n\n#Text=Second paragraph\n2-1\t0-1\tSecond\t_\n"

	blocks := SplitBlocks(raw)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
}

func TestSplitBlocks_DropsEmptyChunks(t *testing.T) {
	raw := "\n\n#Text=Only paragraph\n1-1\t0-1\tOnly\t_\n\n\n\n"

	blocks := SplitBlocks(raw)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
}

func TestSegment_Decomposition(t *testing.T) {
	chunk := "#Text=An example\n" +
		"1-1\t0-2\tAn\t_\n" +
		"1-2\t3-10\texample\tNOUN[1]\n"

	block := newTestSegmenter().Segment(chunk)

	if block.Text != "An example" {
		t.Errorf("expected text %q, got %q", "An example", block.Text)
	}
	if !reflect.DeepEqual(block.Tokens, []string{"An", "example"}) {
		t.Errorf("tokens: got %v", block.Tokens)
	}
	if !reflect.DeepEqual(block.Labels, [][]string{{"_"}, {"NOUN[1]"}}) {
		t.Errorf("labels: got %v", block.Labels)
	}
}

func TestSegment_PipeSeparatedLabels(t *testing.T) {
	chunk := "#Text=x\n" +
		"1-1\t0-1\tx\tIDENT[1_2]|NOUN[2]\n"

	block := newTestSegmenter().Segment(chunk)

	want := [][]string{{"IDENT[1_2]", "NOUN[2]"}}
	if !reflect.DeepEqual(block.Labels, want) {
		t.Errorf("expected %v, got %v", want, block.Labels)
	}
}

func TestSegment_SkipsShortLines(t *testing.T) {
	chunk := "#Text=x\n" +
		"#FORMAT=WebAnno TSV 3.2\n" +
		"1-1\t0-1\tx\t_\n"

	block := newTestSegmenter().Segment(chunk)

	if len(block.Tokens) != 1 {
		t.Fatalf("structural line must be skipped, got tokens %v", block.Tokens)
	}
}

func TestSegment_NoAnnotationLines(t *testing.T) {
	block := newTestSegmenter().Segment("#Text=Just text")

	if block.Text != "Just text" {
		t.Errorf("expected %q, got %q", "Just text", block.Text)
	}
	if len(block.Tokens) != 0 || len(block.Labels) != 0 {
		t.Errorf("expected no tokens or labels, got %v / %v", block.Tokens, block.Labels)
	}
}

func TestSegment_CustomColumns(t *testing.T) {
	s := NewSegmenter(model.InputConfig{TextPrefix: ">>", TokenColumn: 0, LabelColumn: 1})

	block := s.Segment(">>hello\nhello\tPROPER[1]\n")

	if block.Text != "hello" {
		t.Errorf("expected prefix stripped, got %q", block.Text)
	}
	if !reflect.DeepEqual(block.Tokens, []string{"hello"}) {
		t.Errorf("tokens: got %v", block.Tokens)
	}
	if !reflect.DeepEqual(block.Labels, [][]string{{"PROPER[1]"}}) {
		t.Errorf("labels: got %v", block.Labels)
	}
}
