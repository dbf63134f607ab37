package router

import (
	"net/http"
	"tripdesk/config"
	"tripdesk/internal/handlers/itinerary"
	"tripdesk/internal/handlers/portal"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Itinerary itinerary.Handler
	Portal    portal.Handler
}

type Router struct {
	Config         *config.Config
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts the JSON endpoint at its original path (no version
// prefix; the path is part of the endpoint contract), the portal at the
// root, static assets, and the generated API docs.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Itinerary.Router(router)
	r.DomainHandlers.Portal.Router(router)

	fileServer := http.StripPrefix("/assets/", http.FileServer(http.Dir(r.Config.App.AssetsDir)))
	router.Handle("/assets/*", fileServer)

	router.Get("/swagger/*", httpSwagger.WrapHandler)
}

func New(cfg *config.Config, domainHandlers DomainHandlers) Router {
	return Router{
		Config:         cfg,
		DomainHandlers: domainHandlers,
	}
}
