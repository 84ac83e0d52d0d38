package web

import (
	"net/http"
	"time"

	"github.com/dereckquock/keepers/config"
	"github.com/dereckquock/keepers/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, leagues []config.League) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log.StandardLogger(), NoColor: true}))
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(30 * time.Second))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.HTML(w, http.StatusNotFound, "404", "page not found")
	})

	r.Get("/", rootHandler(leagues, render))
	r.Get("/players", playerSearchHandler(ctrl, render))

	r.Route("/leagues", func(r chi.Router) {
		// Redirects the league id form on the home page to the league page.
		r.Get("/", leagueLookupHandler(render))

		r.Route("/{previousLeagueID}/{currentLeagueID}", func(r chi.Router) {
			r.Get("/", leagueHandler(ctrl, render))
			r.Get("/keepers", keepersHandler(ctrl, render))
			r.Get("/points", pointsHandler(ctrl, render))
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"https://*", "http://*"},
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		r.Get("/market-values", marketValuesAPIHandler(ctrl, render))

		// For keepers {leagueID} is last season's league.
		r.Route("/leagues/{leagueID}", func(r chi.Router) {
			r.Get("/season", seasonAPIHandler(ctrl, render))
			r.Get("/points/{week}", pointsAPIHandler(ctrl, render))
			r.Get("/{currentLeagueID}/keepers", keepersAPIHandler(ctrl, render))
		})
	})

	return r
}
