package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrNotBotTurn = errors.New("it's not the bot's turn")

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (tictactoe.Decision, error)
}

type searcher interface {
	Decide(ctx context.Context, b board.Board) (tictactoe.Decision, error)
}

type botService struct {
	logger   *slog.Logger
	searcher searcher
}

func NewBotService(logger *slog.Logger, searcher searcher) BotService {
	return &botService{
		logger:   logger.With("component", "bot"),
		searcher: searcher,
	}
}

// MakeTurn plays the minimax move for the bot side of game.
func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) (tictactoe.Decision, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	if !game.IsBotTurn() {
		return tictactoe.Decision{}, ErrNotBotTurn
	}

	decision, err := that.searcher.Decide(ctx, game.Board)
	if err != nil {
		return tictactoe.Decision{}, fmt.Errorf("failed to decide: %w", err)
	}

	if err = game.MakeTurn(game.Bot, decision.Action); err != nil {
		return tictactoe.Decision{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot made turn",
		"action", decision.Action.String(),
		"value", decision.Value,
		"nodes", decision.Nodes,
	)

	return decision, nil
}
