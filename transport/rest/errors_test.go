package rest

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rocketscienceinc/goban-backend/internal/apperror"
)

func TestGameHandler_WriteError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		level  zapcore.Level
	}{
		{name: "Not your turn", err: fmt.Errorf("wrapped: %w", apperror.ErrNotYourTurn), status: http.StatusConflict, level: zapcore.DebugLevel},
		{name: "Occupied cell", err: apperror.ErrCellOccupied, status: http.StatusConflict, level: zapcore.DebugLevel},
		{name: "Cooldown", err: apperror.ErrCooldown, status: http.StatusTooManyRequests, level: zapcore.DebugLevel},
		{name: "Missing game", err: apperror.ErrGameNotFound, status: http.StatusNotFound, level: zapcore.DebugLevel},
		{name: "Storage failure", err: errors.New("redis down"), status: http.StatusInternalServerError, level: zapcore.ErrorLevel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Given: a handler logging into an observer
			core, logs := observer.New(zapcore.DebugLevel)
			handler := &gameHandler{logger: zap.New(core).Sugar()}
			rec := httptest.NewRecorder()

			// When: the error is written
			handler.writeError(rec, "makeMove", tc.err)

			// Then: the status and the log level follow the error kind
			assert.Equal(t, tc.status, rec.Code)
			require.Equal(t, 1, logs.Len())
			assert.Equal(t, tc.level, logs.All()[0].Level)
		})
	}
}
