package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger   *slog.Logger
	handlers Handlers
}

func New(logger *slog.Logger, gameService gameService) *Server {
	return &Server{
		logger:   logger.With("component", "rest"),
		handlers: NewHandlers(logger, gameService),
	}
}

// Routes registers every endpoint on a new mux.
func (that *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", that.handlers.PingHandler)
	mux.HandleFunc("POST /decide", that.handlers.Decide)
	mux.HandleFunc("POST /games", that.handlers.CreateGame)
	mux.HandleFunc("GET /games/{id}", that.handlers.GetGame)
	mux.HandleFunc("POST /games/{id}/turn", that.handlers.MakeTurn)
	mux.HandleFunc("DELETE /games/{id}", that.handlers.DeleteGame)

	return mux
}

// Start serves until ctx is canceled, then shuts the server down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	that.logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
