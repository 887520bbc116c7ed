package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	Store  service.CartStore
	Logger *slog.Logger
}

// SessionHandler exposes the session bootstrap endpoint clients call to
// obtain their anti-forgery token.
type SessionHandler struct {
	store  service.CartStore
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		store:  params.Store,
		logger: params.Logger,
	}
}

// GetSession returns the caller's session ID and anti-forgery token. The
// session middleware has already materialized the session, so a miss here
// means the store lost it between the two loads.
func (h *SessionHandler) GetSession(c echo.Context) error {
	sessionID := deliverycontext.GetSessionID(c)

	sess, err := h.store.Load(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if sess == nil {
		return response.NotFound(c, "SESSION_NOT_FOUND", "Session expired, retry the request")
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"session_id": sessionID,
		"csrf_token": sess.CSRFToken,
	}, "Session retrieved successfully")
}

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status": "ok",
	}, "Service is healthy")
}
