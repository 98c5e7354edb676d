// Package router wires handlers and middlewares into the HTTP route tree.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-social-graph/internal/metrics"
)

// Handlers are the endpoint handlers of the API.
type Handlers struct {
	Register      http.HandlerFunc
	Login         http.HandlerFunc
	Logout        http.HandlerFunc
	GetAccount    http.HandlerFunc
	UpdateAccount http.HandlerFunc
	GetProfile    http.HandlerFunc
	UpdateProfile http.HandlerFunc
	ListFollowing http.HandlerFunc
	ListFollowers http.HandlerFunc
	Follow        http.HandlerFunc
	Unfollow      http.HandlerFunc
}

// Middlewares are applied per route group. A nil middleware is skipped.
type Middlewares struct {
	Logging func(http.Handler) http.Handler // every request
	Auth    func(http.Handler) http.Handler // endpoints that need a principal
	Tx      func(http.Handler) http.Handler // follow and unfollow
}

func passthrough(next http.Handler) http.Handler { return next }

func orPassthrough(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw == nil {
		return passthrough
	}
	return mw
}

// New builds the route tree.
func New(h Handlers, m Middlewares) *chi.Mux {
	logging := orPassthrough(m.Logging)
	auth := orPassthrough(m.Auth)
	tx := orPassthrough(m.Tx)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(logging)
	r.Use(metrics.Middleware)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/registration", h.Register)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/logout", h.Logout)
			r.Get("/user", h.GetAccount)
			r.Patch("/user", h.UpdateAccount)
		})
	})

	r.Route("/user", func(r chi.Router) {
		r.Get("/{id:[0-9]+}", h.GetProfile)
		r.Get("/{id:[0-9]+}/following", h.ListFollowing)
		r.Get("/{id:[0-9]+}/followers", h.ListFollowers)

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Patch("/{id:[0-9]+}", h.UpdateProfile)
			r.With(tx).Post("/follow", h.Follow)
			r.With(tx).Post("/unfollow", h.Unfollow)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
