// Package garden turns completed-task counts into a growing plant.
//
// Every completed task advances the plant one stage; four stages make a full
// flower, after which a new sprout starts next to it.
package garden

import (
	"fmt"
	"strings"
)

// Stage is one step of plant growth.
type Stage int

const (
	Sprout Stage = iota
	Seedling
	Budding
	Flower
)

// StageCount is the number of stages in one full flower.
const StageCount = 4

// EmptyMessage is shown before the first task is completed.
const EmptyMessage = "Complete your first task to grow your plant!"

func (s Stage) String() string {
	switch s {
	case Sprout:
		return "sprout"
	case Seedling:
		return "seedling"
	case Budding:
		return "budding"
	case Flower:
		return "flower"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Growth describes the garden for a completed-task count.
type Growth struct {
	Completed   int
	Planted     bool  // false until the first task is completed
	Stage       Stage // stage of the plant still growing
	FullFlowers int   // flowers already finished
}

// Grow computes the garden for completed tasks.
func Grow(completed int) Growth {
	if completed <= 0 {
		return Growth{}
	}
	return Growth{
		Completed:   completed,
		Planted:     true,
		Stage:       Stage((completed - 1) % StageCount),
		FullFlowers: (completed - 1) / StageCount,
	}
}

// Plants returns the stages to draw, left to right: the full flowers followed
// by the plant still growing.
func (g Growth) Plants() []Stage {
	if !g.Planted {
		return nil
	}
	plants := make([]Stage, 0, g.FullFlowers+1)
	for i := 0; i < g.FullFlowers; i++ {
		plants = append(plants, Flower)
	}
	return append(plants, g.Stage)
}

// art holds each stage drawn in a fixed-size cell.
var art = map[Stage][]string{
	Sprout: {
		"       ",
		"       ",
		"       ",
		"   ,   ",
		"  \\|   ",
	},
	Seedling: {
		"       ",
		"       ",
		"  \\ /  ",
		"   |   ",
		"  \\|/  ",
	},
	Budding: {
		"       ",
		"   o   ",
		"  \\|/  ",
		"   |   ",
		"  \\|/  ",
	},
	Flower: {
		"  \\|/  ",
		" -(@)- ",
		"  /|\\  ",
		"  \\|   ",
		"   |/  ",
	},
}

const (
	cellWidth = 7
	soil      = "~"
	// perRow keeps wide gardens inside an 80-column terminal.
	perRow = 8
)

// Render draws the garden as text. Plants are laid out in rows of up to
// perRow with a soil line under each row.
func Render(g Growth) string {
	plants := g.Plants()
	if len(plants) == 0 {
		return EmptyMessage + "\n"
	}

	var b strings.Builder
	for start := 0; start < len(plants); start += perRow {
		end := start + perRow
		if end > len(plants) {
			end = len(plants)
		}
		row := plants[start:end]
		for line := 0; line < len(art[Flower]); line++ {
			var l strings.Builder
			for _, p := range row {
				l.WriteString(art[p][line])
			}
			b.WriteString(strings.TrimRight(l.String(), " "))
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat(soil, len(row)*cellWidth))
		b.WriteString("\n")
	}
	return b.String()
}

// Summary is a one-line description of the garden.
func Summary(g Growth) string {
	if !g.Planted {
		return EmptyMessage
	}
	flowers := "flowers"
	if g.FullFlowers == 1 {
		flowers = "flower"
	}
	return fmt.Sprintf("%d completed: %d full %s, current plant is a %s (%d/%d)",
		g.Completed, g.FullFlowers, flowers, g.Stage, int(g.Stage)+1, StageCount)
}
