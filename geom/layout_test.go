package geom

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestLayoutTextBaselines(t *testing.T) {
	lines := LayoutText("Hello\nWorld", 20, 0, AlignLeft, 100)
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0].Baseline != 20 {
		t.Errorf("first baseline = %v, want 20", lines[0].Baseline)
	}
	if lines[1].Baseline != 45 {
		t.Errorf("second baseline = %v, want 45", lines[1].Baseline)
	}
	if lines[1].Text != "World" {
		t.Errorf("second line = %q", lines[1].Text)
	}
}

func TestTextAnchor(t *testing.T) {
	tests := []struct {
		align string
		want  float64
	}{
		{AlignLeft, 0},
		{AlignCenter, 50},
		{AlignRight, 100},
		{"", 0},
	}
	for _, tt := range tests {
		if got := TextAnchorX(tt.align, 100); got != tt.want {
			t.Errorf("TextAnchorX(%q) = %v, want %v", tt.align, got, tt.want)
		}
	}
	if got := LineStartX(AlignCenter, 50, 20); got != 40 {
		t.Errorf("LineStartX center = %v", got)
	}
}

func TestTruncateToWidth(t *testing.T) {
	measure := func(s string) float64 { return float64(utf8.RuneCountInString(s)) * 10 }
	got := TruncateToWidth("A very long frame name", 80, measure)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("no ellipsis: %q", got)
	}
	if measure(got) > 80 {
		t.Errorf("%q measures %v > 80", got, measure(got))
	}
	if got := TruncateToWidth("short", 80, measure); got != "short" {
		t.Errorf("short name changed to %q", got)
	}
	if got := TruncateToWidth("abc", 5, measure); got != "" {
		t.Errorf("nothing fits, got %q", got)
	}
}

func TestFrameLabelHeight(t *testing.T) {
	if got := FrameLabelHeight(); got != 20.5 {
		t.Errorf("FrameLabelHeight = %v, want 20.5", got)
	}
	if FrameName("  ") != "Frame" {
		t.Error("blank frame name not defaulted")
	}
}

func TestEmbeddableLabel(t *testing.T) {
	label := LayoutEmbeddableLabel("", 300, 100, nil)
	if label.Text != EmbeddablePlaceholder {
		t.Errorf("placeholder = %q", label.Text)
	}
	// min(150, 300/15=20) = 20, floor 10
	if label.FontSize != 20 {
		t.Errorf("font size = %v, want 20", label.FontSize)
	}
	long := LayoutEmbeddableLabel(strings.Repeat("x", 100), 300, 100, nil)
	if long.FontSize != 10 {
		t.Errorf("long link font size = %v, want floor 10", long.FontSize)
	}
}

func TestWrapText(t *testing.T) {
	measure := func(s string) float64 { return float64(len(s)) }
	got := WrapText("aa bb cc", 5, measure)
	if len(got) != 2 || got[0] != "aa bb" || got[1] != "cc" {
		t.Errorf("WrapText = %q", got)
	}
	got = WrapText("abcdefgh", 3, measure)
	if len(got) != 3 || got[0] != "abc" {
		t.Errorf("long word = %q", got)
	}
}

func TestPlaceImage(t *testing.T) {
	pl := PlaceImage(200, 100, 50, 25, &Crop{X: 20, Y: 10, Width: 100, Height: 50, NaturalWidth: 400, NaturalHeight: 200}, [2]float64{-1, 1}, 0)
	if pl.Src != NewRect(10, 5, 50, 25) {
		t.Errorf("src = %+v", pl.Src)
	}
	if got := pl.Flip.TransformPoint(Pt(0, 0)); got != Pt(50, 0) {
		t.Errorf("flip maps origin to %v", got)
	}
	if pl.Clip != nil {
		t.Error("unexpected clip")
	}
	m := pl.ImageToBox()
	if got := m.TransformPoint(Pt(60, 30)); got != Pt(50, 25) {
		t.Errorf("src max maps to %v", got)
	}
}
