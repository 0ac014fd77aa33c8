package board

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

type Outcome int

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Lines holds the 8 winning triples: 3 rows, 3 columns, 2 diagonals.
var Lines = [8][3]Action{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// CurrentPlayer returns the side to move. It is defined for terminal boards too.
func (that Board) CurrentPlayer() Player {
	if xs, os := that.counts(); xs > os {
		return PlayerO
	}
	return PlayerX
}

// LegalActions lists empty cells in row-major order.
func (that Board) LegalActions() []Action {
	actions := make([]Action, 0, Size*Size)

	for i, row := range that {
		for j, cell := range row {
			if cell == EmptyCell {
				actions = append(actions, Action{Row: i, Col: j})
			}
		}
	}

	return actions
}

// Apply returns the board after the side to move plays a. The receiver is left unchanged.
func (that Board) Apply(a Action) (Board, error) {
	if !a.inRange() {
		return that, fmt.Errorf("%w: cell %s is out of range", apperror.ErrInvalidAction, a)
	}

	if that[a.Row][a.Col] != EmptyCell {
		return that, fmt.Errorf("%w: cell %s is already occupied", apperror.ErrInvalidAction, a)
	}

	next := that
	next[a.Row][a.Col] = that.CurrentPlayer().Mark()

	return next, nil
}

// HasLine reports whether p occupies all three cells of any line.
func (that Board) HasLine(p Player) bool {
	mark := p.Mark()

	for _, line := range Lines {
		if that.at(line[0]) == mark && that.at(line[1]) == mark && that.at(line[2]) == mark {
			return true
		}
	}

	return false
}

// Winner checks X before O, so a board where both own a line reports X.
// That position cannot be reached through Apply.
func (that Board) Winner() (Player, bool) {
	if that.HasLine(PlayerX) {
		return PlayerX, true
	}

	if that.HasLine(PlayerO) {
		return PlayerO, true
	}

	return 0, false
}

func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

func (that Board) IsTerminal() bool {
	if _, ok := that.Winner(); ok {
		return true
	}

	return that.IsFull()
}

// Utility scores a terminal board: +1 X wins, -1 O wins, 0 otherwise.
// Non-terminal boards also score 0, which says nothing about a draw.
func (that Board) Utility() int {
	winner, ok := that.Winner()
	switch {
	case !ok:
		return 0
	case winner == PlayerX:
		return 1
	default:
		return -1
	}
}

func (that Board) Outcome() Outcome {
	if winner, ok := that.Winner(); ok {
		if winner == PlayerX {
			return XWins
		}
		return OWins
	}

	if that.IsFull() {
		return Draw
	}

	return InProgress
}

func (that Board) at(a Action) Cell {
	return that[a.Row][a.Col]
}
