package board

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Size is the length of a board side.
const Size = 3

type Cell uint8

const (
	EmptyCell Cell = iota
	MarkX
	MarkO
)

func (that Cell) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return ""
	}
}

// Player is the side owning a mark. Its value equals the value of its Cell.
type Player uint8

const (
	PlayerX = Player(MarkX)
	PlayerO = Player(MarkO)
)

func (that Player) Mark() Cell {
	return Cell(that)
}

func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) String() string {
	return that.Mark().String()
}

func (that Player) MarshalText() ([]byte, error) {
	if that != PlayerX && that != PlayerO {
		return nil, fmt.Errorf("%w: unknown player %d", apperror.ErrInvalidBoard, that)
	}

	return []byte(that.String()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	player, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}

	*that = player

	return nil
}

// ParsePlayer accepts "X" or "O" in either case.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return 0, fmt.Errorf("%w: unknown player %q", apperror.ErrInvalidBoard, s)
	}
}

// Action is a coordinate on the board.
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Action) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

func (that Action) inRange() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

// Board is a 3x3 grid indexed [row][col]. It is a value: every assignment copies it.
type Board [Size][Size]Cell

// Empty returns the initial position.
func Empty() Board {
	return Board{}
}

// New builds a board from rows of cells and validates its shape and mark counts.
func New(rows [][]Cell) (Board, error) {
	var b Board

	if len(rows) != Size {
		return Board{}, fmt.Errorf("%w: expected %d rows, got %d", apperror.ErrInvalidBoard, Size, len(rows))
	}

	for i, row := range rows {
		if len(row) != Size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells", apperror.ErrInvalidBoard, i, len(row))
		}

		for j, cell := range row {
			if cell > MarkO {
				return Board{}, fmt.Errorf("%w: unknown cell value %d at (%d,%d)", apperror.ErrInvalidBoard, cell, i, j)
			}
			b[i][j] = cell
		}
	}

	if err := b.validate(); err != nil {
		return Board{}, err
	}

	return b, nil
}

// Parse builds a board from rows of "X", "O" and "" (also "-", "." or " " for empty).
func Parse(rows [][]string) (Board, error) {
	cells := make([][]Cell, len(rows))

	for i, row := range rows {
		cells[i] = make([]Cell, len(row))

		for j, s := range row {
			cell, err := parseCell(s)
			if err != nil {
				return Board{}, fmt.Errorf("%w at (%d,%d)", err, i, j)
			}
			cells[i][j] = cell
		}
	}

	return New(cells)
}

func parseCell(s string) (Cell, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "-", ".":
		return EmptyCell, nil
	case "X":
		return MarkX, nil
	case "O":
		return MarkO, nil
	default:
		return EmptyCell, fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidBoard, s)
	}
}

// validate checks the alternation invariant: X moves first, so X-count minus O-count is 0 or 1.
func (that Board) validate() error {
	xs, os := that.counts()

	if diff := xs - os; diff < 0 || diff > 1 {
		return fmt.Errorf("%w: %d X marks and %d O marks", apperror.ErrInvalidBoard, xs, os)
	}

	return nil
}

func (that Board) counts() (int, int) {
	var xs, os int

	for _, row := range that {
		for _, cell := range row {
			switch cell {
			case MarkX:
				xs++
			case MarkO:
				os++
			}
		}
	}

	return xs, os
}

// Rows returns the board as strings, the same form Parse accepts.
func (that Board) Rows() [][]string {
	rows := make([][]string, Size)

	for i, row := range that {
		rows[i] = make([]string, Size)
		for j, cell := range row {
			rows[i][j] = cell.String()
		}
	}

	return rows
}

func (that Board) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(that.Rows())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal board: %w", err)
	}

	return data, nil
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var rows [][]string
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidBoard, err)
	}

	parsed, err := Parse(rows)
	if err != nil {
		return err
	}

	*that = parsed

	return nil
}

func (that Board) String() string {
	var sb strings.Builder

	for i, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				sb.WriteByte('-')
				continue
			}
			sb.WriteString(cell.String())
		}

		if i < Size-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
