package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roamly/roamly-backend/internal/handlers"
)

// SetupRoutes registers the full HTTP surface on r.
func SetupRoutes(r chi.Router, auth *handlers.AuthHandler, destinations *handlers.DestinationHandler) {
	// Liveness body kept verbatim from the previous implementation.
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`"Hello express"`))
	})

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(a chi.Router) {
			a.Post("/signup", auth.Signup)
			a.Post("/login", auth.Login)
		})

		api.Route("/destinations", func(d chi.Router) {
			d.Get("/", destinations.ReadAll)
			d.Post("/", destinations.Create)

			// The literal /rating route must win over the {name}
			// wildcard; chi matches static segments first.
			d.Get("/rating", destinations.ReadByRating)
			d.Get("/location/{location}", destinations.ReadByLocation)
			d.Get("/filter/{minRating}", destinations.FilterByMinRating)
			d.Get("/{name}", destinations.ReadByName)

			d.Post("/{destinationId}", destinations.Update)
			d.Post("/{destinationId}/reviews", destinations.AddReview)
			d.Get("/{destinationId}/reviews", destinations.ReadReviews)
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Route not found"}`))
	})
}
