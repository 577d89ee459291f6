package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rocketscienceinc/goban-backend/internal/apperror"
	"github.com/rocketscienceinc/goban-backend/internal/entity"
	"github.com/rocketscienceinc/goban-backend/internal/usecase"
)

type gameUseCase interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	ResetGame(ctx context.Context, id string) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
	MakeMove(ctx context.Context, gameID string, move entity.Move) (*entity.MoveResult, error)
}

type feed interface {
	Serve(w http.ResponseWriter, r *http.Request, gameID string)
}

type moveRequest struct {
	Player int `json:"player"`
	X      int `json:"x"`
	Y      int `json:"y"`
}

type gameHandler struct {
	logger *zap.SugaredLogger
	games  gameUseCase
	feed   feed
}

func (that *gameHandler) createGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.CreateGame(r.Context())
	if err != nil {
		that.writeError(w, "createGame", err)
		return
	}

	WriteResponseWithStatus(w, http.StatusCreated, game)
}

func (that *gameHandler) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "getGame", err)
		return
	}

	WriteResponseWithStatus(w, http.StatusOK, game)
}

func (that *gameHandler) resetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.ResetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "resetGame", err)
		return
	}

	WriteResponseWithStatus(w, http.StatusOK, game)
}

func (that *gameHandler) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, "deleteGame", err)
		return
	}

	WriteResponseWithStatus(w, http.StatusOK, nil)
}

func (that *gameHandler) makeMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	player, err := entity.NewPlayer(req.Player)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	at, err := entity.NewCoordinate(req.X, req.Y)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := that.games.MakeMove(r.Context(), chi.URLParam(r, "id"), entity.Move{Player: player, At: at})
	if err != nil {
		that.writeError(w, "makeMove", err)
		return
	}

	WriteResponseWithStatus(w, http.StatusOK, result)
}

func (that *gameHandler) subscribe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := that.games.GetGame(r.Context(), id); err != nil {
		that.writeError(w, "subscribe", err)
		return
	}

	that.feed.Serve(w, r, id)
}

func (that *gameHandler) writeError(w http.ResponseWriter, method string, err error) {
	if !usecase.IsRejection(err) && !errors.Is(err, apperror.ErrGameNotFound) {
		that.logger.Errorw("request failed", "method", method, "error", err)
		WriteInternalErrorResponse(w)
		return
	}

	status := statusFor(err)
	that.logger.Debugw("request rejected", "method", method, "status", status, "error", err)
	WriteErrorResponse(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrNotYourTurn), errors.Is(err, apperror.ErrCellOccupied):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrCooldown):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
