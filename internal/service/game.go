package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type GameService interface {
	Decide(ctx context.Context, b board.Board) (tictactoe.Decision, error)

	CreateGame(ctx context.Context, human board.Player) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, action board.Action) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameService struct {
	logger *slog.Logger

	gameRepo   gameRepo
	searcher   searcher
	botService BotService
}

func NewGameService(logger *slog.Logger, gameRepo gameRepo, searcher searcher, botService BotService) GameService {
	return &gameService{
		logger:     logger.With("component", "game"),
		gameRepo:   gameRepo,
		searcher:   searcher,
		botService: botService,
	}
}

// Decide answers a one-off position without touching any stored game.
func (that *gameService) Decide(ctx context.Context, b board.Board) (tictactoe.Decision, error) {
	decision, err := that.searcher.Decide(ctx, b)
	if err != nil {
		return tictactoe.Decision{}, fmt.Errorf("failed to decide: %w", err)
	}

	return decision, nil
}

func (that *gameService) CreateGame(ctx context.Context, human board.Player) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame")

	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewGame(gameID, human)

	if game.IsBotTurn() {
		if _, err = that.botService.MakeTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game in storage: %w", err)
	}

	log.Info("game created", "gameID", game.ID, "human", game.Human.String())

	return game, nil
}

func (that *gameService) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

// MakeTurn plays the human move and, if the game goes on, the bot reply.
func (that *gameService) MakeTurn(ctx context.Context, id string, action board.Action) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(game.Human, action); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsBotTurn() {
		if _, err = that.botService.MakeTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
	}

	return game, nil
}

func (that *gameService) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}
