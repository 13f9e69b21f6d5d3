package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Auth     *AuthHandler
	User     *UserHandler
	Roadmap  *RoadmapHandler
	Resource *ResourceHandler
}

// RegisterRoutes mounts the API on r. authMiddleware must put the caller's
// user id into the request context.
func RegisterRoutes(r chi.Router, h Handlers, authMiddleware func(http.Handler) http.Handler) {
	// --- Public routes ---
	r.Post("/register", h.Auth.Register)
	r.Post("/login", h.Auth.Login)
	r.Post("/logout", h.Auth.Logout)

	r.Get("/leaderboard", h.User.Leaderboard)
	r.Get("/users/{user_id}", h.User.GetPublicProfile)
	r.Get("/users/{user_id}/roadmaps", h.Roadmap.ListUserRoadmaps)

	r.Get("/resources", h.Resource.ListResources)
	r.Get("/resources/{resource_id}", h.Resource.GetResource)
	r.Post("/resources/multiple", h.Resource.GetMultiple)

	// --- Protected routes ---
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Route("/user", func(r chi.Router) {
			r.Get("/", h.User.GetMe)
			r.Patch("/", h.User.UpdateMe)
			r.Post("/theme", h.User.UpdateTheme)
			r.Get("/completions", h.User.ListMyCompletions)
			r.Get("/summary", h.User.GetMySummary)
		})

		r.Post("/resources", h.Resource.CreateResource)

		r.Route("/roadmaps", func(r chi.Router) {
			r.Post("/", h.Roadmap.CreateRoadmap)
			r.Get("/", h.Roadmap.ListMyRoadmaps)
			r.Get("/{roadmap_id}", h.Roadmap.GetRoadmap)
			r.Patch("/{roadmap_id}/progress", h.Roadmap.UpdateProgress)
			r.Patch("/{roadmap_id}/steps/{step_id}", h.Roadmap.ToggleStep)
			r.Post("/{roadmap_id}/complete", h.Roadmap.CompleteRoadmap)
		})
	})
}
