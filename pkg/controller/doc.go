// Package controller contains HTTP middlewares and helper handlers used by
// the API server: permissive CORS handling, request-scoped access logging
// with request IDs, and a pprof mux for profiling.
package controller
