package routes

import (
	"cometjet/crewdesk/internal/api"
	"cometjet/crewdesk/internal/metrics"
	"cometjet/crewdesk/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, deps *api.Dependencies) {

	repos := deps.Repo
	svcs := deps.Services

	r.Route("/api/v1", func(v1 chi.Router) {

		// Public
		v1.Group(func(public chi.Router) {
			public.With(middleware.RateLimitMiddleware).
				Post("/applications", api.SubmitApplicationHandler(repos.Applications, svcs.Mailer, metricsReg))

			public.Post("/auth/login", api.LoginHandler(svcs.Auth))

			public.Get("/posts", api.ListPostsHandler(svcs.Posts))
			public.Get("/posts/{id}", api.GetPostHandler(svcs.Posts))
		})

		// Authenticated pilots
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(svcs.Tokens))

			authed.Post("/auth/password", api.ChangePasswordHandler(svcs.Auth))
			authed.Get("/pilots/me", api.MeHandler(repos.Pilots))

			// Admin-only group
			authed.Group(func(admin chi.Router) {
				admin.Use(middleware.IsAdminMiddleware())

				admin.Get("/applications", api.ListApplicationsHandler(repos.Applications))
				admin.Get("/applications/{id}", api.GetApplicationHandler(repos.Applications))
				admin.Post("/applications/{id}/decision", api.DecisionHandler(svcs.Lifecycle))

				admin.Get("/pilots", api.ListPilotsHandler(repos.Pilots))
				admin.Get("/pilots/{id}", api.GetPilotHandler(repos.Pilots))
				admin.Put("/pilots/{id}", api.UpdatePilotHandler(repos.Pilots))
				admin.Delete("/pilots/{id}", api.DeletePilotHandler(repos.Pilots))

				admin.Post("/posts", api.SavePostHandler(svcs.Posts))
				admin.Put("/posts/{id}", api.UpdatePostHandler(svcs.Posts))
				admin.Delete("/posts/{id}", api.DeletePostHandler(svcs.Posts))

				admin.Post("/mail", api.SendMailHandler(svcs.Mailer, metricsReg))
			})
		})
	})
}
