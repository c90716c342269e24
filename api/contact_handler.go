package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devfolio/backend/database"
	"github.com/devfolio/backend/errs"
	"github.com/devfolio/backend/models"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
}

func newContactHandler(contactRepo *database.ContactRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
	}
}

// submitContact validates and stores one contact-form submission.
// Validation runs before any store access, so a rejected submission never
// inserts a row.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name           string  `json:"name"`
			Email          string  `json:"email"`
			Subject        string  `json:"subject"`
			Message        string  `json:"message"`
			ProjectDetails *string `json:"project_details"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewValidationError("malformed request body"))
			return
		}

		if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
			h.responder.WriteError(w, errs.NewValidationError("missing required fields"))
			return
		}

		contact := models.Contact{
			Name:           req.Name,
			Email:          req.Email,
			Subject:        req.Subject,
			Message:        req.Message,
			ProjectDetails: normalizeOptional(req.ProjectDetails),
		}
		if err := h.contactRepo.Add(&contact); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("create", "contact", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"ok": true, "id": contact.ID})
	}
}
