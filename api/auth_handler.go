package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devfolio/backend/errs"
	"github.com/devfolio/backend/services"
)

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	authService *services.AuthService
}

func newAuthHandler(authService *services.AuthService) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		authService: authService,
	}
}

// signIn authenticates the admin and returns the minimal principal record.
// No token or session artifact is produced. The password and its hash never
// appear in the response.
func (h authHandler) signIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewValidationError("malformed request body"))
			return
		}

		principal, err := h.authService.SignIn(req.Username, req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"ok":       true,
			"id":       principal.ID,
			"username": principal.Username,
		})
	}
}
