package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	WinnerX   = "X"
	WinnerO   = "O"
	WinnerTie = "-"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a match between a human and the minimax bot.
type Game struct {
	ID     string         `json:"id"`
	Board  board.Board    `json:"board"`
	Human  board.Player   `json:"human"`
	Bot    board.Player   `json:"bot"`
	Status string         `json:"status"`
	Winner string         `json:"winner"`
	Moves  []board.Action `json:"moves"`
}

func NewGame(id string, human board.Player) *Game {
	return &Game{
		ID:     id,
		Board:  board.Empty(),
		Human:  human,
		Bot:    human.Opponent(),
		Status: StatusOngoing,
		Moves:  []board.Action{},
	}
}

// Turn returns the side to move, as derived from the board.
func (that *Game) Turn() board.Player {
	return that.Board.CurrentPlayer()
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn() == that.Bot
}

func (that *Game) MakeTurn(mark board.Player, action board.Action) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn() != mark {
		return apperror.ErrNotYourTurn
	}

	next, err := that.Board.Apply(action)
	if err != nil {
		return fmt.Errorf("failed to apply %s: %w", action, err)
	}

	that.Board = next
	that.Moves = append(that.Moves, action)

	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	switch that.Board.Outcome() {
	case board.XWins:
		that.Winner = WinnerX
		that.Status = StatusFinished
	case board.OWins:
		that.Winner = WinnerO
		that.Status = StatusFinished
	case board.Draw:
		that.Winner = WinnerTie
		that.Status = StatusFinished
	default:
		that.Winner = ""
		that.Status = StatusOngoing
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
