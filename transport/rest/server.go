package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func NewRouter(logger *zap.SugaredLogger, games gameUseCase, feed feed) *chi.Mux {
	handler := &gameHandler{
		logger: logger.With("component", "rest"),
		games:  games,
		feed:   feed,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/ping", pingHandler)

	r.Route("/games", func(r chi.Router) {
		r.Post("/", handler.createGame)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handler.getGame)
			r.Delete("/", handler.deleteGame)
			r.Post("/reset", handler.resetGame)
			r.Post("/moves", handler.makeMove)
			r.Get("/feed", handler.subscribe)
		})
	})

	return r
}

// Start serves handler on port until ctx is canceled, then shuts the server down.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}

		return nil
	}
}
