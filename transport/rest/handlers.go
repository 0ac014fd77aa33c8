package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const maxBodyBytes = 1 << 12

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	Decide(w http.ResponseWriter, r *http.Request)

	CreateGame(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	MakeTurn(w http.ResponseWriter, r *http.Request)
	DeleteGame(w http.ResponseWriter, r *http.Request)
}

type gameService interface {
	Decide(ctx context.Context, b board.Board) (tictactoe.Decision, error)

	CreateGame(ctx context.Context, human board.Player) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, action board.Action) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type handlers struct {
	logger      *slog.Logger
	gameService gameService
}

func NewHandlers(logger *slog.Logger, gameService gameService) Handlers {
	return &handlers{
		logger:      logger.With("component", "handlers"),
		gameService: gameService,
	}
}

type decideRequest struct {
	Board board.Board `json:"board"`
}

type decideResponse struct {
	Player string       `json:"player"`
	Action board.Action `json:"action"`
	Value  int          `json:"value"`
	Nodes  int64        `json:"nodes"`
}

type createGameRequest struct {
	Mark string `json:"mark"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) Decide(w http.ResponseWriter, r *http.Request) {
	var req decideRequest
	if !that.decode(w, r, &req) {
		return
	}

	decision, err := that.gameService.Decide(r.Context(), req.Board)
	if err != nil {
		that.writeError(w, "Decide", err)
		return
	}

	that.writeJSON(w, http.StatusOK, decideResponse{
		Player: decision.Player.String(),
		Action: decision.Action,
		Value:  decision.Value,
		Nodes:  decision.Nodes,
	})
}

func (that *handlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if !that.decode(w, r, &req) {
		return
	}

	human := board.PlayerX
	if req.Mark != "" {
		player, err := board.ParsePlayer(req.Mark)
		if err != nil {
			that.writeError(w, "CreateGame", err)
			return
		}
		human = player
	}

	game, err := that.gameService.CreateGame(r.Context(), human)
	if err != nil {
		that.writeError(w, "CreateGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameService.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "GetGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var action board.Action
	if !that.decode(w, r, &action) {
		return
	}

	game, err := that.gameService.MakeTurn(r.Context(), r.PathValue("id"), action)
	if err != nil {
		that.writeError(w, "MakeTurn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.gameService.DeleteGame(r.Context(), r.PathValue("id")); err != nil {
		that.writeError(w, "DeleteGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decode reads a JSON body into v and answers 400 on failure.
func (that *handlers) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}

	return true
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := statusFor(err)

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, status, errorResponse{Error: http.StatusText(status)})
		return
	}

	that.logger.Debug("request rejected", "method", method, "error", err)
	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidBoard), errors.Is(err, apperror.ErrInvalidAction):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrNoMoves),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrNotYourTurn):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
