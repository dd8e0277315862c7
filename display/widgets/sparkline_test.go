package widgets

import "testing"

func TestRenderSparkline_Empty(t *testing.T) {
	if got := RenderSparkline(SparklineConfig{}); got != "" {
		t.Errorf("empty data rendered %q", got)
	}
}

func TestRenderSparkline_Scaling(t *testing.T) {
	got := RenderSparkline(SparklineConfig{Data: []uint16{0, 30, 60}, Max: 60})
	want := "▁▄█"
	if got != want {
		t.Errorf("RenderSparkline = %q, want %q", got, want)
	}
}

func TestRenderSparkline_AutoScale(t *testing.T) {
	got := RenderSparkline(SparklineConfig{Data: []uint16{0, 7, 14}})
	want := "▁▄█"
	if got != want {
		t.Errorf("RenderSparkline = %q, want %q", got, want)
	}
}

func TestRenderSparkline_AllZero(t *testing.T) {
	got := RenderSparkline(SparklineConfig{Data: []uint16{0, 0, 0}})
	want := "▁▁▁"
	if got != want {
		t.Errorf("RenderSparkline = %q, want %q", got, want)
	}
}

func TestRenderSparkline_TruncateAndPad(t *testing.T) {
	// Truncate to last Width points.
	got := RenderSparkline(SparklineConfig{Data: []uint16{9, 9, 0, 9}, Width: 2, Max: 9})
	if got != "▁█" {
		t.Errorf("truncated = %q, want %q", got, "▁█")
	}

	// Pad on the left when Width exceeds data.
	got = RenderSparkline(SparklineConfig{Data: []uint16{9}, Width: 3, Max: 9})
	if got != "  █" {
		t.Errorf("padded = %q, want %q", got, "  █")
	}
}

func TestRenderSparkline_Label(t *testing.T) {
	got := RenderSparkline(SparklineConfig{Data: []uint16{5}, Max: 5, Label: "12h"})
	if got != "12h █" {
		t.Errorf("labeled = %q", got)
	}
}
