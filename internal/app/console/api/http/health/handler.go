package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// SessionReader - состояние сессии, которое отдается в health-ответе
type SessionReader interface {
	Token() (string, bool)
}

type Handler struct {
	session    SessionReader
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(session SessionReader, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		session:    session,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	sessionState := "none"
	if _, ok := h.session.Token(); ok {
		sessionState = "active"
	}

	return &Output{
		Body: Response{
			Status:  "OK",
			Session: sessionState,
		},
	}, nil
}
