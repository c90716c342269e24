package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/devfolio/backend/database"
	"github.com/devfolio/backend/errs"
	"github.com/devfolio/backend/models"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// projectRequest is the create/update payload. Type and IsPublished accept
// the loosely-typed values the reference clients send.
type projectRequest struct {
	Title            string         `json:"title"`
	ShortDescription *string        `json:"short_description"`
	LongDescription  *string        `json:"long_description"`
	GithubURL        *string        `json:"github_url"`
	LiveURL          *string        `json:"live_url"`
	Tags             models.TagList `json:"tags"`
	Type             FlexInt        `json:"type"`
	IsPublished      FlexBool       `json:"is_published"`
}

func (req projectRequest) toModel() models.Project {
	return models.Project{
		Title:            req.Title,
		ShortDescription: normalizeOptional(req.ShortDescription),
		LongDescription:  normalizeOptional(req.LongDescription),
		GithubURL:        normalizeOptional(req.GithubURL),
		LiveURL:          normalizeOptional(req.LiveURL),
		Tags:             req.Tags,
		Type:             int(req.Type),
		IsPublished:      int(req.IsPublished),
	}
}

// getAllProjects returns every project with its primary image path, most
// recently created first.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAllWithPrimaryImage()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find", "projects", err))
			return
		}

		if projects == nil {
			projects = []models.ProjectWithImage{}
		}
		h.responder.WriteJSON(w, projects)
	}
}

// createProject inserts a new project. Only the title is validated; every
// omitted optional field is stored as null.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewValidationError("failed to read request body"))
			return
		}

		var req projectRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewValidationError("malformed request body"))
			return
		}

		if req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingFieldError("title"))
			return
		}

		project := req.toModel()
		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("create", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"ok": true, "id": project.ID})
	}
}

// updateProject performs a full-record replace; every column is rewritten,
// so omitted optional fields become null rather than keeping their old
// value. Unlike the reference behavior, a missing id is surfaced as 404.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewValidationError("malformed request body"))
			return
		}

		if req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingFieldError("title"))
			return
		}

		project := req.toModel()
		project.ID = projectID

		if err := h.projectRepo.Update(&project); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFoundError("project"))
				return
			}
			h.responder.WriteError(w, errs.NewStorageError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"ok": true, "id": projectID})
	}
}

// setPublished toggles only the publish flag.
func (h projectHandler) setPublished() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req struct {
			IsPublished FlexBool `json:"is_published"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewValidationError("malformed request body"))
			return
		}

		if err := h.projectRepo.SetPublished(projectID, int(req.IsPublished)); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFoundError("project"))
				return
			}
			h.responder.WriteError(w, errs.NewStorageError("publish", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"ok":           true,
			"id":           projectID,
			"is_published": int(req.IsPublished),
		})
	}
}

// deleteProject removes the project and its whole gallery atomically:
// images first, then the project row, inside one transaction.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.DeleteCascade(projectID); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"ok": true, "id": projectID})
	}
}

// parseIDParam reads an integer id route parameter.
func parseIDParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewMissingFieldError(name)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValidationError("invalid " + name)
	}
	return id, nil
}
