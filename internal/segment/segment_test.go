package segment

import (
	"strings"
	"testing"
)

func TestSplit_NoBlankLinesYieldsOneBlock(t *testing.T) {
	blocks := Split("line one\nline two\nline three")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Kind != Paragraph {
		t.Errorf("expected Paragraph, got %v", blocks[0].Kind)
	}
	if blocks[0].Text != "line one\nline two\nline three" {
		t.Errorf("unexpected text: %q", blocks[0].Text)
	}
}

func TestSplit_BlankLineRuns(t *testing.T) {
	blocks := Split("A\n\n\nB")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Text != "A" || blocks[1].Text != "B" {
		t.Errorf("expected A,B got %q,%q", blocks[0].Text, blocks[1].Text)
	}
}

func TestSplit_EmptyInput(t *testing.T) {
	if blocks := Split(""); len(blocks) != 0 {
		t.Errorf("expected 0 blocks for empty input, got %d", len(blocks))
	}
	if blocks := Split("  \n \n\t"); len(blocks) != 0 {
		t.Errorf("expected 0 blocks for whitespace input, got %d", len(blocks))
	}
}

func TestSplit_LonePageBreakSentinel(t *testing.T) {
	blocks := Split("\f")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Kind != PageBreak {
		t.Errorf("expected PageBreak, got %v", blocks[0].Kind)
	}
}

func TestSplit_SentinelBetweenParagraphs(t *testing.T) {
	blocks := Split("First page.\fSecond page.")
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	want := []Kind{Paragraph, PageBreak, Paragraph}
	for i, k := range want {
		if blocks[i].Kind != k {
			t.Errorf("block[%d]: expected kind %v, got %v", i, k, blocks[i].Kind)
		}
	}
	if blocks[0].Text != "First page." || blocks[2].Text != "Second page." {
		t.Errorf("unexpected texts: %q, %q", blocks[0].Text, blocks[2].Text)
	}
}

func TestSplit_NormalizesLineEndings(t *testing.T) {
	blocks := Split("A\r\n\r\nB\r\rC")
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	want := []string{"A", "B", "C"}
	for i, w := range want {
		if blocks[i].Text != w {
			t.Errorf("block[%d]: expected %q, got %q", i, w, blocks[i].Text)
		}
	}
}

func TestLooksLikeHeading_AllCaps(t *testing.T) {
	if !LooksLikeHeading("INTRODUCTION") {
		t.Error("expected all-caps line to classify as heading")
	}
}

func TestLooksLikeHeading_Sentence(t *testing.T) {
	if LooksLikeHeading("This is a sentence.") {
		t.Error("expected terminal-punctuation line to classify as paragraph")
	}
}

func TestLooksLikeHeading_TitleCase(t *testing.T) {
	if !LooksLikeHeading("Chapter One Overview") {
		t.Error("expected title-case line to classify as heading")
	}
}

func TestLooksLikeHeading_LongLine(t *testing.T) {
	long := strings.Repeat("X", 90)
	if LooksLikeHeading(long) {
		t.Error("expected >80 char line to classify as paragraph regardless of case")
	}
}

func TestLooksLikeHeading_MostWordsCapitalized(t *testing.T) {
	// 4 words, 3 capitalized: meets the max(2, n-1) bar.
	if !LooksLikeHeading("Kerbal National Police overview") {
		t.Error("expected n-1 capitalized words to classify as heading")
	}
	// 4 words, 2 capitalized: below the bar.
	if LooksLikeHeading("Kerbal national police Overview") {
		t.Error("expected 2 of 4 capitalized words to classify as paragraph")
	}
}

func TestLooksLikeHeading_SingleLowercaseWord(t *testing.T) {
	if LooksLikeHeading("introduction") {
		t.Error("expected single lowercase word to classify as paragraph")
	}
}

func TestClassify_TagsHeadings(t *testing.T) {
	blocks := Split("OVERVIEW\n\nThis is body text.\n\f\nAppendix Tables")
	blocks = Classify(blocks)
	want := []Kind{Heading, Paragraph, PageBreak, Heading}
	if len(blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %d", len(want), len(blocks))
	}
	for i, k := range want {
		if blocks[i].Kind != k {
			t.Errorf("block[%d]: expected kind %v, got %v", i, k, blocks[i].Kind)
		}
	}
}

func TestCollapse(t *testing.T) {
	if got := Collapse("  a\n b\t\tc  "); got != "a b c" {
		t.Errorf("expected %q, got %q", "a b c", got)
	}
}
