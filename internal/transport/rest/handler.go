// Package rest provides HTTP handlers for product-related operations.
package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/abgdnv/products-api/internal/apperrors"
	"github.com/abgdnv/products-api/internal/service"
	"github.com/abgdnv/products-api/pkg/web"
	"github.com/go-chi/chi/v5"
)

// Handler binds the product routes to the service layer.
type Handler struct {
	service service.ProductService
	logger  *slog.Logger
}

// NewHandler creates a new Handler with the provided service.
func NewHandler(service service.ProductService, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the product routes on r. The caller decides which
// middleware guards r; these handlers assume authentication already ran.
// The literal /stats route is registered alongside /{id}; chi matches the
// more specific pattern first.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/stats", h.handle(h.Stats))
		r.Get("/", h.handle(h.List))
		r.Post("/", h.handle(h.Create))

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handle(h.FindByID))
			r.Put("/", h.handle(h.Update))
			r.Delete("/", h.handle(h.DeleteByID))
		})
	})
}

// handlerFunc is a route handler that reports failures instead of writing
// them. The returned error is routed into the terminal translation stage.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts a handlerFunc to http.HandlerFunc, funnelling every returned
// error through web.RespondError so no handler renders its own failure.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			web.RespondError(w, h.loggerWithReqID(r), err)
		}
	}
}

// List returns one page of products filtered by the category and search
// query parameters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	mLogger := h.loggerWithReqID(r)
	page, err := queryPositiveInt(r, "page", service.DefaultPage, "Page number must be a positive integer.")
	if err != nil {
		return err
	}
	limit, err := queryPositiveInt(r, "limit", service.DefaultLimit, "Limit must be a positive integer.")
	if err != nil {
		return err
	}
	query := service.ListQuery{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
		Page:     page,
		Limit:    limit,
	}
	mLogger.DebugContext(r.Context(), "Received request to list products",
		"category", query.Category, "search", query.Search, "page", query.Page, "limit", query.Limit)

	pageResult, err := h.service.List(r.Context(), query)
	if err != nil {
		return err
	}
	mLogger.DebugContext(r.Context(), "Successfully listed products", "total", pageResult.Total, "count", len(pageResult.Products))
	web.RespondJSON(w, mLogger, http.StatusOK, pageResult)
	return nil
}

// Stats returns the per-category product counts.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) error {
	mLogger := h.loggerWithReqID(r)
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		return err
	}
	mLogger.DebugContext(r.Context(), "Successfully computed product stats", "categories", len(stats))
	web.RespondJSON(w, mLogger, http.StatusOK, stats)
	return nil
}

// FindByID retrieves a product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) error {
	mLogger := h.loggerWithReqID(r)
	id := chi.URLParam(r, "id")
	mLogger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)

	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		return err
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product", "ID", found.ID, "Name", found.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, found)
	return nil
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	mLogger := h.loggerWithReqID(r)
	payload, err := decodeBody(r)
	if err != nil {
		return err
	}
	mLogger.DebugContext(r.Context(), "Received request to create product")

	created, err := h.service.Create(r.Context(), payload)
	if err != nil {
		return err
	}
	mLogger.InfoContext(r.Context(), "Product created successfully", "ID", created.ID, "Name", created.Name)
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
	return nil
}

// Update merges the supplied fields into the product identified by the path.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) error {
	mLogger := h.loggerWithReqID(r)
	id := chi.URLParam(r, "id")
	payload, err := decodeBody(r)
	if err != nil {
		return err
	}
	mLogger.DebugContext(r.Context(), "Received request to update product", "ID", id)

	updated, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		return err
	}
	mLogger.InfoContext(r.Context(), "Product updated successfully", "ID", updated.ID, "Name", updated.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
	return nil
}

// DeleteByID deletes a product by its ID.
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) error {
	mLogger := h.loggerWithReqID(r)
	id := chi.URLParam(r, "id")
	mLogger.DebugContext(r.Context(), "Received request to delete product", "ID", id)

	if err := h.service.DeleteByID(r.Context(), id); err != nil {
		return err
	}
	mLogger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// Hello is the public greeting route; the only one outside the protected
// prefix besides the operational endpoints.
func (h *Handler) Hello(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Hello World! Welcome to the Products API."))
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// decodeBody decodes a JSON object request body. Malformed JSON is a client
// error rendered through the standard error envelope.
func decodeBody(r *http.Request) (map[string]any, error) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return nil, apperrors.Validation("Invalid JSON in request body.")
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return payload, nil
}

// queryPositiveInt parses an optional positive-integer query parameter,
// returning def when absent and a Validation error when present but not a
// positive integer.
func queryPositiveInt(r *http.Request, key string, def int, message string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, apperrors.Validation(message)
	}
	return value, nil
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID, found := web.GetRequestID(r.Context())
	if !found {
		reqID = "unknown"
	}
	return h.logger.With("request_id", reqID)
}
