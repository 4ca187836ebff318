// Package domineering implements the Domineering ruleset: on a
// rectangular grid, Left places dominoes vertically and Right places
// them horizontally; a player with no legal move loses.
package domineering

import (
	"fmt"
	"strings"

	"cgt/board"
	"cgt/ruleset"
)

// Position is a Domineering board: true marks an empty cell, false a
// cell already covered by a domino.
type Position struct {
	grid *board.Grid[bool]
}

// New returns an all-empty rows x cols board.
func New(rows, cols int) Position {
	return Position{grid: board.NewGrid(rows, cols, true)}
}

// FromString parses rows separated by '|', each a run of '.' (empty)
// and '#' (taken) cells, a compact format for rendering rectangular
// grids in test fixtures.
func FromString(s string) (Position, error) {
	rowStrs := strings.Split(s, "|")
	if len(rowStrs) == 0 {
		return Position{}, fmt.Errorf("domineering: empty board string")
	}
	cols := len(rowStrs[0])
	g := board.NewGrid(len(rowStrs), cols, true)
	for r, row := range rowStrs {
		if len(row) != cols {
			return Position{}, fmt.Errorf("domineering: row %d has length %d, want %d", r, len(row), cols)
		}
		for c, ch := range row {
			switch ch {
			case '.':
				// already empty
			case '#':
				g = g.With(r, c, false)
			default:
				return Position{}, fmt.Errorf("domineering: invalid cell %q", ch)
			}
		}
	}
	return Position{grid: g}, nil
}

func cellChar(empty bool) byte {
	if empty {
		return '.'
	}
	return '#'
}

// String renders the board in the same '|'-separated form FromString
// accepts.
func (p Position) String() string {
	var rows []string
	for r := 0; r < p.grid.Rows(); r++ {
		var b strings.Builder
		for c := 0; c < p.grid.Cols(); c++ {
			b.WriteByte(cellChar(p.grid.At(r, c)))
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "|")
}

// Fingerprint satisfies ruleset.Position.
func (p Position) Fingerprint() string { return p.String() }

// Ruleset implements ruleset.Decomposable[Position].
type Ruleset struct{}

var _ ruleset.Decomposable[Position] = Ruleset{}

// Moves returns the positions reachable by placing one domino for
// player: vertical (two cells sharing a column, adjacent rows) for
// Left, horizontal (two cells sharing a row, adjacent columns) for
// Right.
func (Ruleset) Moves(pos Position, player ruleset.Player) []Position {
	dx, dy := 1, 0
	if player == ruleset.Left {
		dx, dy = 0, 1
	}
	g := pos.grid
	rows, cols := g.Rows(), g.Cols()
	seen := map[string]bool{}
	var out []Position
	for r := 0; r+dy < rows; r++ {
		for c := 0; c+dx < cols; c++ {
			if g.At(r, c) && g.At(r+dy, c+dx) {
				moved := g.With(r, c, false).With(r+dy, c+dx, false)
				next := Position{grid: moved}.Canonical()
				key := next.Fingerprint()
				if !seen[key] {
					seen[key] = true
					out = append(out, next)
				}
			}
		}
	}
	return out
}

// Canonical applies board symmetry reduction (see board.Canonicalize).
func (p Position) Canonical() Position {
	return Position{grid: board.Canonicalize(p.grid, cellChar)}
}

// CanonicalForm satisfies ruleset.Ruleset.
func (Ruleset) CanonicalForm(pos Position) Position { return pos.Canonical() }

// Decompose splits pos into its maximal connected empty regions (rook
// adjacency), each trimmed to its bounding box and returned as an
// independent position. A position with a single region returns nil:
// callers should treat a nil/empty decomposition as "already
// indecomposable", not as "no moves".
func (Ruleset) Decompose(pos Position) []Position {
	g := pos.grid
	rows, cols := g.Rows(), g.Cols()
	seen := make([][]bool, rows)
	for r := range seen {
		seen[r] = make([]bool, cols)
	}

	type cell struct{ r, c int }
	var regions [][]cell

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !g.At(r, c) || seen[r][c] {
				continue
			}
			stack := []cell{{r, c}}
			seen[r][c] = true
			var region []cell
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				region = append(region, cur)
				for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					nr, nc := cur.r+d[0], cur.c+d[1]
					if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
						continue
					}
					if g.At(nr, nc) && !seen[nr][nc] {
						seen[nr][nc] = true
						stack = append(stack, cell{nr, nc})
					}
				}
			}
			regions = append(regions, region)
		}
	}

	if len(regions) <= 1 {
		return nil
	}

	var out []Position
	for _, region := range regions {
		minR, maxR := region[0].r, region[0].r
		minC, maxC := region[0].c, region[0].c
		for _, cl := range region {
			if cl.r < minR {
				minR = cl.r
			}
			if cl.r > maxR {
				maxR = cl.r
			}
			if cl.c < minC {
				minC = cl.c
			}
			if cl.c > maxC {
				maxC = cl.c
			}
		}
		sub := board.NewGrid(maxR-minR+1, maxC-minC+1, false)
		for _, cl := range region {
			sub = sub.With(cl.r-minR, cl.c-minC, true)
		}
		out = append(out, Position{grid: sub}.Canonical())
	}
	return out
}
