package httpserver

import "net/http"

// Routes aggregates handlers for HTTP server.
type Routes struct {
	Health      http.HandlerFunc
	RedisHealth http.HandlerFunc
	RedisMemory http.HandlerFunc
	Ready       http.HandlerFunc
	Metrics     http.Handler
}

// NewRouter wires all HTTP routes.
func NewRouter(routes Routes) http.Handler {
	mux := http.NewServeMux()
	if routes.Health != nil {
		mux.Handle("/health", method(http.MethodGet, routes.Health))
	}
	if routes.RedisHealth != nil {
		mux.Handle("/health/redis", method(http.MethodGet, routes.RedisHealth))
	}
	if routes.RedisMemory != nil {
		mux.Handle("/health/redis/memory", method(http.MethodGet, routes.RedisMemory))
	}
	if routes.Ready != nil {
		mux.Handle("/ready", method(http.MethodGet, routes.Ready))
	}
	if routes.Metrics != nil {
		mux.Handle("/metrics", routes.Metrics)
	}
	return mux
}

func method(expected string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != expected {
			w.Header().Set("Allow", expected)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler(w, r)
	}
}
