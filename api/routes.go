package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the full REST surface. The static file server for
// uploaded images and any session layer are external collaborators and are
// deliberately not mounted here.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("DevFolio API is running"))
	})

	r.Route("/api", func(r chi.Router) {
		// Projects
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Post("/projects", handlers.projectHandler.createProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Put("/projects/{projectID}/publish", handlers.projectHandler.setPublished())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

		// Project image galleries
		r.Get("/projects/{projectID}/images", handlers.galleryHandler.getProjectImages())
		r.Post("/projects/{projectID}/images", handlers.galleryHandler.addProjectImage())
		r.Delete("/project-images/{imageID}", handlers.galleryHandler.deleteProjectImage())

		// Admin auth
		r.Post("/admin/signin", handlers.authHandler.signIn())

		// Contact intake
		r.Post("/contacts", handlers.contactHandler.submitContact())

		// Profile aggregate and admin content edits
		r.Get("/profile", handlers.profileHandler.getAboutDocument())
		r.Put("/profile", handlers.profileHandler.updateProfile())
		r.Post("/skills", handlers.profileHandler.addSkill())
		r.Delete("/skills/{skillID}", handlers.profileHandler.deleteSkill())
		r.Post("/experience", handlers.profileHandler.addExperience())
		r.Put("/experience/{experienceID}", handlers.profileHandler.updateExperience())
		r.Delete("/experience/{experienceID}", handlers.profileHandler.deleteExperience())
		r.Put("/education/{educationID}", handlers.profileHandler.updateEducation())
		r.Put("/interests", handlers.profileHandler.updateInterests())
	})
}
