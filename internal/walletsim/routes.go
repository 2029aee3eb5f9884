package walletsim

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	// весь протокол кошелька живёт на одном POST-эндпоинте
	router.Group(func(r chi.Router) {
		r.Post("/", h.rpc)
	})

	return router
}
