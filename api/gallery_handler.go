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

type galleryHandler struct {
	responder Responder
	logger    zerolog.Logger
	imageRepo *database.ProjectImageRepo
}

func newGalleryHandler(imageRepo *database.ProjectImageRepo) galleryHandler {
	logger := log.With().Str("handlerName", "galleryHandler").Logger()

	return galleryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		imageRepo: imageRepo,
	}
}

// getProjectImages returns the project's gallery in (sort_order, id) order.
// A project with no images, or an unknown project id, yields an empty array.
func (h galleryHandler) getProjectImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		images, err := h.imageRepo.FindByProjectID(projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find", "project images", err))
			return
		}

		if images == nil {
			images = []models.ProjectImage{}
		}
		h.responder.WriteJSON(w, images)
	}
}

// addProjectImage appends an image to the gallery. Only image_path is
// required; the path is not checked for reachability. sort_order defaults
// to 0 when absent. The full created record is returned.
func (h galleryHandler) addProjectImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req struct {
			ImagePath string  `json:"image_path"`
			Caption   *string `json:"caption"`
			SortOrder *int    `json:"sort_order"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewValidationError("malformed request body"))
			return
		}

		if req.ImagePath == "" {
			h.responder.WriteError(w, errs.NewMissingFieldError("image_path"))
			return
		}

		image := models.ProjectImage{
			ProjectID: projectID,
			ImagePath: req.ImagePath,
			Caption:   normalizeOptional(req.Caption),
		}
		if req.SortOrder != nil {
			image.SortOrder = *req.SortOrder
		}

		if err := h.imageRepo.Add(&image); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("create", "project image", err))
			return
		}

		h.responder.WriteJSON(w, image)
	}
}

// deleteProjectImage removes an image by id. Deleting an id that is already
// gone is not an error; the affected-row count in the response is 0.
func (h galleryHandler) deleteProjectImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := parseIDParam(r, "imageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		affected, err := h.imageRepo.DeleteByID(imageID)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("delete", "project image", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"ok": true, "affectedRows": affected})
	}
}
