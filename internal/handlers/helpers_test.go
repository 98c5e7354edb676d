package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-social-graph/internal/middlewares"
	"github.com/sbilibin2017/gw-social-graph/internal/models"
)

func strPtr(s string) *string { return &s }

func withPrincipal(req *http.Request, principal models.Principal) *http.Request {
	return req.WithContext(middlewares.WithPrincipal(req.Context(), principal))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
