package server

import (
	"context"
	"net/http"
)

// httpServer is the narrow slice of *http.Server this package drives. Both
// the API listener and the optional metrics listener run behind it, and
// tests substitute fakes to exercise startup and shutdown paths.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

// stdServer adapts *http.Server to the httpServer interface.
type stdServer struct {
	srv *http.Server
}

func (s stdServer) ListenAndServe() error              { return s.srv.ListenAndServe() }
func (s stdServer) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
func (s stdServer) Addr() string                       { return s.srv.Addr }
func (s stdServer) Handler() http.Handler              { return s.srv.Handler }
