package garden

import (
	"strings"
	"testing"
)

func TestGrow(t *testing.T) {
	tests := []struct {
		completed   int
		planted     bool
		stage       Stage
		fullFlowers int
	}{
		{0, false, Sprout, 0},
		{-3, false, Sprout, 0},
		{1, true, Sprout, 0},
		{2, true, Seedling, 0},
		{3, true, Budding, 0},
		{4, true, Flower, 0},
		{5, true, Sprout, 1},
		{8, true, Flower, 1},
		{9, true, Sprout, 2},
		{20, true, Flower, 4},
	}

	for _, tt := range tests {
		g := Grow(tt.completed)
		if g.Planted != tt.planted || g.Stage != tt.stage || g.FullFlowers != tt.fullFlowers {
			t.Errorf("Grow(%d) = %+v, want planted=%v stage=%v full=%d",
				tt.completed, g, tt.planted, tt.stage, tt.fullFlowers)
		}
	}
}

func TestPlants(t *testing.T) {
	if got := Grow(0).Plants(); got != nil {
		t.Errorf("no plants expected, got %v", got)
	}
	got := Grow(6).Plants()
	want := []Stage{Flower, Seedling}
	if len(got) != len(want) {
		t.Fatalf("Plants() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Plants()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(Grow(0)); !strings.Contains(got, EmptyMessage) {
		t.Errorf("Render(0) = %q", got)
	}
}

func TestRenderDrawsEveryPlant(t *testing.T) {
	out := Render(Grow(10)) // two flowers and a seedling
	if strings.Count(out, "(@)") != 2 {
		t.Errorf("expected two flower heads:\n%s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 5 art lines and 1 soil line, got %d:\n%s", len(lines), out)
	}
	if lines[5] != strings.Repeat(soil, 3*cellWidth) {
		t.Errorf("soil line: %q", lines[5])
	}
}

func TestRenderWraps(t *testing.T) {
	out := Render(Grow(4*perRow + 1))
	if got := strings.Count(out, "\n"+soil); got != 2 {
		t.Errorf("expected two rows of plants, got %d soil lines:\n%s", got, out)
	}
}

func TestSummary(t *testing.T) {
	if got := Summary(Grow(0)); got != EmptyMessage {
		t.Errorf("Summary(0) = %q", got)
	}
	got := Summary(Grow(6))
	if !strings.Contains(got, "1 full flower,") || !strings.Contains(got, "seedling (2/4)") {
		t.Errorf("Summary(6) = %q", got)
	}
}

func TestStageString(t *testing.T) {
	if Budding.String() != "budding" {
		t.Errorf("Budding.String() = %q", Budding.String())
	}
	if Stage(9).String() != "stage(9)" {
		t.Errorf("unknown stage: %q", Stage(9).String())
	}
}
