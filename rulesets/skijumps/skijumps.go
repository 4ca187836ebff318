// Package skijumps implements a single-row variant of Ski-Jumps: Left
// and Right skiers occupy cells of a single row and slide towards, or
// jump over, each other. A jumper that jumps turns the skier it jumped
// into a slipper, which can still slide but never jump again.
package skijumps

import (
	"fmt"
	"strings"

	"cgt/board"
	"cgt/ruleset"
)

// Tile is the occupant of one cell of the row.
type Tile int

const (
	Empty Tile = iota
	LeftJumper
	LeftSlipper
	RightJumper
	RightSlipper
)

func (t Tile) isLeft() bool  { return t == LeftJumper || t == LeftSlipper }
func (t Tile) isRight() bool { return t == RightJumper || t == RightSlipper }

func tileChar(t Tile) byte {
	switch t {
	case LeftJumper:
		return 'L'
	case LeftSlipper:
		return 'l'
	case RightJumper:
		return 'R'
	case RightSlipper:
		return 'r'
	default:
		return '.'
	}
}

func tileFromChar(ch byte) (Tile, error) {
	switch ch {
	case '.':
		return Empty, nil
	case 'L':
		return LeftJumper, nil
	case 'l':
		return LeftSlipper, nil
	case 'R':
		return RightJumper, nil
	case 'r':
		return RightSlipper, nil
	default:
		return Empty, fmt.Errorf("skijumps: invalid tile %q", ch)
	}
}

// Position is a single row of width cells.
type Position struct {
	row *board.Grid[Tile]
}

// FromString parses a row of '.', 'L', 'l', 'R', 'r' characters.
func FromString(s string) (Position, error) {
	g := board.NewGrid(1, len(s), Empty)
	for i := 0; i < len(s); i++ {
		t, err := tileFromChar(s[i])
		if err != nil {
			return Position{}, err
		}
		g = g.With(0, i, t)
	}
	return Position{row: g}, nil
}

func (p Position) String() string {
	var b strings.Builder
	for i := 0; i < p.row.Cols(); i++ {
		b.WriteByte(tileChar(p.row.At(0, i)))
	}
	return b.String()
}

// Fingerprint satisfies ruleset.Position.
func (p Position) Fingerprint() string { return p.String() }

// Ruleset implements ruleset.Ruleset[Position]. Ski-Jumps positions do
// not decompose: a single row of skiers who can slide arbitrarily far
// is one connected whole.
type Ruleset struct{}

var _ ruleset.Ruleset[Position] = Ruleset{}

// CanonicalForm is the identity: a single row has no useful board
// symmetry beyond the full left-right mirror, which would also swap
// the players, so it is not a symmetry of the position as seen by a
// fixed player.
func (Ruleset) CanonicalForm(pos Position) Position { return ruleset.Identity(pos) }

// Moves returns the positions reachable by sliding or jumping one
// skier belonging to player.
func (Ruleset) Moves(pos Position, player ruleset.Player) []Position {
	width := pos.row.Cols()
	var out []Position
	step := 1
	if player == ruleset.Right {
		step = -1
	}
	for x := 0; x < width; x++ {
		t := pos.row.At(0, x)
		if player == ruleset.Left && !t.isLeft() {
			continue
		}
		if player == ruleset.Right && !t.isRight() {
			continue
		}
		out = append(out, slideMoves(pos, x, t, step)...)
		if jump, ok := jumpMove(pos, x, t, step); ok {
			out = append(out, jump)
		}
	}
	return out
}

func slideMoves(pos Position, x int, t Tile, step int) []Position {
	var out []Position
	width := pos.row.Cols()
	for dest := x + step; ; dest += step {
		if dest < 0 || dest >= width {
			g := pos.row.With(0, x, Empty)
			out = append(out, Position{row: g})
			break
		}
		if pos.row.At(0, dest) != Empty {
			break
		}
		g := pos.row.With(0, x, Empty).With(0, dest, t)
		out = append(out, Position{row: g})
	}
	return out
}

// jumpMove checks whether the jumper at x can hop over an adjacent
// opposing skier at x+step, landing at x+2*step, turning the jumped
// skier into its slipper form. The landing cell must be empty.
func jumpMove(pos Position, x int, t Tile, step int) (Position, bool) {
	width := pos.row.Cols()
	isJumper := t == LeftJumper || t == RightJumper
	mid, land := x+step, x+2*step
	if !isJumper || mid < 0 || mid >= width || land < 0 || land >= width {
		return Position{}, false
	}
	midTile := pos.row.At(0, mid)
	var opponentHasJumper bool
	var spentTile Tile
	if t == LeftJumper {
		opponentHasJumper = midTile.isRight()
		spentTile = RightSlipper
	} else {
		opponentHasJumper = midTile.isLeft()
		spentTile = LeftSlipper
	}
	if !opponentHasJumper || pos.row.At(0, land) != Empty {
		return Position{}, false
	}
	g := pos.row.With(0, x, Empty).With(0, mid, spentTile).With(0, land, t)
	return Position{row: g}, true
}
