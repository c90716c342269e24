package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/devfolio/backend/database"
	"github.com/devfolio/backend/errs"
	"github.com/devfolio/backend/models"
	"github.com/devfolio/backend/services"
)

type profileHandler struct {
	responder      Responder
	logger         zerolog.Logger
	profileService *services.ProfileService
	profileRepo    *database.ProfileRepo
}

func newProfileHandler(profileService *services.ProfileService, profileRepo *database.ProfileRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		profileService: profileService,
		profileRepo:    profileRepo,
	}
}

// getAboutDocument serves the aggregate about-page document. If any of the
// five underlying reads fails the whole request fails; no partial document
// is ever returned.
func (h profileHandler) getAboutDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := h.profileService.About()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("aggregate", "profile", err))
			return
		}
		h.responder.WriteJSON(w, doc)
	}
}

// updateProfile rewrites every column of the singleton profile row.
func (h profileHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			FullName   string `json:"full_name"`
			Bio        string `json:"bio"`
			Philosophy string `json:"philosophy"`
			PhotoURL   string `json:"photo_url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewValidationError("malformed request body"))
			return
		}

		profile := models.Profile{
			FullName:   req.FullName,
			Bio:        req.Bio,
			Philosophy: req.Philosophy,
			PhotoURL:   req.PhotoURL,
		}
		if err := h.profileRepo.UpdateProfile(&profile); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("update", "profile", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"ok": true})
	}
}

func (h profileHandler) addSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Category  string `json:"category"`
			SkillName string `json:"skill_name"`
			SortOrder *int   `json:"sort_order"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewValidationError("malformed request body"))
			return
		}

		skill := models.Skill{Category: req.Category, SkillName: req.SkillName}
		if req.SortOrder != nil {
			skill.SortOrder = *req.SortOrder
		}
		if err := h.profileRepo.AddSkill(&skill); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("create", "skill", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"ok": true, "id": skill.ID})
	}
}

func (h profileHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.profileRepo.DeleteSkill(skillID); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("delete", "skill", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"ok": true})
	}
}

type experienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
	SortOrder   *int   `json:"sort_order"`
}

func (req experienceRequest) toModel() models.Experience {
	experience := models.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Period:      req.Period,
		Description: req.Description,
	}
	if req.SortOrder != nil {
		experience.SortOrder = *req.SortOrder
	}
	return experience
}

func (h profileHandler) addExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req experienceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewValidationError("malformed request body"))
			return
		}

		experience := req.toModel()
		if err := h.profileRepo.AddExperience(&experience); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("create", "experience", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"ok": true, "id": experience.ID})
	}
}

// updateExperience rewrites every column of one entry. A missing id is
// surfaced as 404, unlike the reference behavior.
func (h profileHandler) updateExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := parseIDParam(r, "experienceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req experienceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewValidationError("malformed request body"))
			return
		}

		experience := req.toModel()
		experience.ID = experienceID

		if err := h.profileRepo.UpdateExperience(&experience); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFoundError("experience"))
				return
			}
			h.responder.WriteError(w, errs.NewStorageError("update", "experience", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"ok": true})
	}
}

func (h profileHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := parseIDParam(r, "experienceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.profileRepo.DeleteExperience(experienceID); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("delete", "experience", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"ok": true})
	}
}

// updateEducation rewrites every column of one entry; missing id is 404.
func (h profileHandler) updateEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		educationID, err := parseIDParam(r, "educationID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req struct {
			School     string  `json:"school"`
			Degree     string  `json:"degree"`
			Period     string  `json:"period"`
			Coursework *string `json:"coursework"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewValidationError("malformed request body"))
			return
		}

		education := models.Education{
			ID:         educationID,
			School:     req.School,
			Degree:     req.Degree,
			Period:     req.Period,
			Coursework: normalizeOptional(req.Coursework),
		}
		if err := h.profileRepo.UpdateEducation(&education); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFoundError("education"))
				return
			}
			h.responder.WriteError(w, errs.NewStorageError("update", "education", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"ok": true})
	}
}

func (h profileHandler) updateInterests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewValidationError("malformed request body"))
			return
		}

		if err := h.profileRepo.UpdateInterests(req.Content); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("update", "interests", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"ok": true})
	}
}
