package http

import (
	"net/http"

	"github.com/ElizenDevVini/eliza-town/internal/assets"
	"github.com/ElizenDevVini/eliza-town/internal/interfaces/http/middleware"
	"github.com/ElizenDevVini/eliza-town/pkg/logger"
)

// Router wires the asset responder and the middleware chain
type Router struct {
	mux       *http.ServeMux
	responder *assets.Responder
	logger    *logger.Logger
}

func NewRouter(responder *assets.Responder, logger *logger.Logger) *Router {
	return &Router{
		mux:       http.NewServeMux(),
		responder: responder,
		logger:    logger,
	}
}

// Setup builds the handler chain. The whole URL namespace belongs to the
// responder; there are no other routes.
func (rt *Router) Setup() http.Handler {
	rt.mux.Handle("/", rt.responder)

	var handler http.Handler = rt.mux
	handler = middleware.Headers(handler)
	handler = middleware.Recovery(rt.logger)(handler)

	return handler
}
