package export

import (
	"math"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/framekit/pkg/view"
)

// ToText draws the leaf views as boxes on a character grid, one cell per
// layout unit, with edges rounded to the nearest cell. Views with text
// draw the text wrapped to their frame. Other boxes at least two cells in
// each direction get a border with the id on the top edge; smaller ones
// are filled with their id. Containers are not drawn.
func ToText(snaps []view.Snapshot) string {
	if len(snaps) == 0 {
		return ""
	}
	root := snaps[0].Absolute
	cols, rows := cells(root.W), cells(root.H)
	if cols == 0 || rows == 0 {
		return ""
	}

	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", cols))
	}
	set := func(x, y int, r rune) {
		if x >= 0 && x < cols && y >= 0 && y < rows {
			grid[y][x] = r
		}
	}

	for _, s := range snaps[1:] {
		if s.Kind == "container" {
			continue
		}
		x0, y0 := cells(s.Absolute.X-root.X), cells(s.Absolute.Y-root.Y)
		x1, y1 := cells(s.Absolute.MaxX()-root.X), cells(s.Absolute.MaxY()-root.Y)
		if x1 <= x0 || y1 <= y0 {
			continue
		}

		if s.Text != "" {
			for i, line := range view.WrapText(s.Text, float64(x1-x0)) {
				if y0+i >= y1 {
					break
				}
				x := x0
				for _, r := range line {
					w := runewidth.RuneWidth(r)
					if x+w > x1 {
						break
					}
					set(x, y0+i, r)
					for k := 1; k < w; k++ {
						set(x+k, y0+i, 0)
					}
					x += w
				}
			}
			continue
		}

		if x1-x0 < 2 || y1-y0 < 2 {
			id := []rune(s.ID)
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					r := '·'
					if i := x - x0; y == y0 && i < len(id) {
						r = id[i]
					}
					set(x, y, r)
				}
			}
			continue
		}

		for x := x0 + 1; x < x1-1; x++ {
			set(x, y0, '─')
			set(x, y1-1, '─')
		}
		for y := y0 + 1; y < y1-1; y++ {
			set(x0, y, '│')
			set(x1-1, y, '│')
		}
		set(x0, y0, '┌')
		set(x1-1, y0, '┐')
		set(x0, y1-1, '└')
		set(x1-1, y1-1, '┘')
		for i, r := range []rune(s.ID) {
			if x0+1+i >= x1-1 {
				break
			}
			set(x0+1+i, y0, r)
		}
	}

	var b strings.Builder
	for _, line := range grid {
		// Zero cells are covered by the wide rune before them.
		line = slices.DeleteFunc(line, func(r rune) bool { return r == 0 })
		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func cells(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	return int(math.Round(v))
}
