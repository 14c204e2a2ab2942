// Package api serves generated mocks over HTTP.
package api

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	chiMw "github.com/go-chi/chi/v5/middleware"
	"github.com/migudevelop/openapi-mock-generator/internal/logger"
	"github.com/migudevelop/openapi-mock-generator/pkg/mock"
)

// Router serves the records of a mock cache:
//
//	GET /healthz
//	GET /                 schema names with record counts
//	GET /{schema}         all records of a schema
//	GET /{schema}/{id}    the record whose id matches
//
// Schema names match case-insensitively.
type Router struct {
	chi.Router

	logger logger.Sink

	mu    sync.RWMutex
	cache *mock.Cache
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithLogger sets the sink requests are logged to.
func WithLogger(sink logger.Sink) RouterOption {
	return func(r *Router) {
		if sink != nil {
			r.logger = sink
		}
	}
}

// NewRouter creates a Router serving cache.
func NewRouter(cache *mock.Cache, options ...RouterOption) *Router {
	if cache == nil {
		cache = mock.NewCache()
	}

	res := &Router{
		Router: chi.NewRouter(),
		logger: logger.Nop(),
		cache:  cache,
	}
	for _, opt := range options {
		opt(res)
	}

	res.Use(chiMw.RequestID)
	res.Use(chiMw.RealIP)
	res.Use(StartTimeMiddleware)
	res.Use(LoggerMiddleware(res.logger))
	res.Use(chiMw.Recoverer)

	res.Get("/healthz", health)
	res.Get("/", res.home)
	res.Get("/{schema}", res.list)
	res.Get("/{schema}/{id}", res.get)

	return res
}

// SetCache replaces the served records.
func (r *Router) SetCache(cache *mock.Cache) {
	if cache == nil {
		cache = mock.NewCache()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = cache
}

// lookup finds a schema by exact name first, then case-insensitively in cache order.
func (r *Router) lookup(name string) ([]any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if records, ok := r.cache.Get(name); ok {
		return records, true
	}
	for _, candidate := range r.cache.Names() {
		if strings.EqualFold(candidate, name) {
			return r.cache.Get(candidate)
		}
	}
	return nil, false
}

func (r *Router) home(w http.ResponseWriter, req *http.Request) {
	r.mu.RLock()
	res := make([]SchemaSummary, 0, r.cache.Len())
	for _, name := range r.cache.Names() {
		records, _ := r.cache.Get(name)
		res = append(res, SchemaSummary{Name: name, Count: len(records)})
	}
	r.mu.RUnlock()

	SetDurationHeader(w, req)
	NewJSONResponse(w).Send(res)
}

func (r *Router) list(w http.ResponseWriter, req *http.Request) {
	schema := chi.URLParam(req, "schema")
	records, ok := r.lookup(schema)
	SetDurationHeader(w, req)
	if !ok {
		sendNotFound(w, fmt.Sprintf("schema %s not found", schema))
		return
	}
	if records == nil {
		records = []any{}
	}

	NewJSONResponse(w).Send(records)
}

func (r *Router) get(w http.ResponseWriter, req *http.Request) {
	schema := chi.URLParam(req, "schema")
	id := chi.URLParam(req, "id")
	records, ok := r.lookup(schema)
	SetDurationHeader(w, req)
	if !ok {
		sendNotFound(w, fmt.Sprintf("schema %s not found", schema))
		return
	}

	for _, record := range records {
		obj, isObject := record.(map[string]any)
		if !isObject {
			continue
		}
		if value, exists := obj["id"]; exists && value != nil && fmt.Sprint(value) == id {
			NewJSONResponse(w).Send(obj)
			return
		}
	}

	sendNotFound(w, fmt.Sprintf("%s %s not found", schema, id))
}

func sendNotFound(w http.ResponseWriter, msg string) {
	NewJSONResponse(w).WithStatusCode(http.StatusNotFound).Send(ErrorResponse{Error: msg})
}
