package api

import (
	"github.com/devfolio/backend/database"
	"github.com/devfolio/backend/services"
)

// initializeHandlers creates all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(database.ProjectRepo()),
		galleryHandler: newGalleryHandler(database.ProjectImageRepo()),
		profileHandler: newProfileHandler(services.NewProfileService(database.ProfileRepo()), database.ProfileRepo()),
		authHandler:    newAuthHandler(services.NewAuthService(database.AdminRepo())),
		contactHandler: newContactHandler(database.ContactRepo()),
	}
}
