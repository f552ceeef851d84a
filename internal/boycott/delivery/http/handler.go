package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tair/boycott-service/internal/boycott/domain"
	"github.com/tair/boycott-service/internal/boycott/usecase/command"
	"github.com/tair/boycott-service/internal/boycott/usecase/query"
	"github.com/tair/boycott-service/pkg/logger"
)

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Commands groups the write-side handlers
type Commands struct {
	CreateQuery               *command.CreateQueryHandler
	UpdateQuery               *command.UpdateQueryHandler
	DeleteQuery               *command.DeleteQueryHandler
	AdjustRecommendationCount *command.AdjustRecommendationCountHandler
	CreateRecommendation      *command.CreateRecommendationHandler
	DeleteRecommendation      *command.DeleteRecommendationHandler
}

// Queries groups the read-side handlers
type Queries struct {
	GetQuery            *query.GetQueryHandler
	ListQueries         *query.ListQueriesHandler
	RecentQueries       *query.RecentQueriesHandler
	QueriesByIDs        *query.QueriesByIDsHandler
	ListRecommendations *query.ListRecommendationsHandler
	GetUserInfo         *query.GetUserInfoHandler
}

// BoycottHandler handles HTTP requests for queries and recommendations using CQRS pattern
type BoycottHandler struct {
	commands Commands
	queries  Queries
	health   HealthChecker
	metrics  *Metrics
}

// NewBoycottHandler creates a new boycott handler (manual DI)
func NewBoycottHandler(
	queryRepo domain.QueryRepository,
	recRepo domain.RecommendationRepository,
	publisher domain.EventPublisher,
	health HealthChecker,
	metrics *Metrics,
) *BoycottHandler {
	commands := Commands{
		CreateQuery:               command.NewCreateQueryHandler(queryRepo, publisher),
		UpdateQuery:               command.NewUpdateQueryHandler(queryRepo, publisher),
		DeleteQuery:               command.NewDeleteQueryHandler(queryRepo, publisher),
		AdjustRecommendationCount: command.NewAdjustRecommendationCountHandler(queryRepo, publisher),
		CreateRecommendation:      command.NewCreateRecommendationHandler(recRepo, publisher),
		DeleteRecommendation:      command.NewDeleteRecommendationHandler(recRepo, publisher),
	}

	queries := Queries{
		GetQuery:            query.NewGetQueryHandler(queryRepo),
		ListQueries:         query.NewListQueriesHandler(queryRepo),
		RecentQueries:       query.NewRecentQueriesHandler(queryRepo),
		QueriesByIDs:        query.NewQueriesByIDsHandler(queryRepo),
		ListRecommendations: query.NewListRecommendationsHandler(recRepo),
		GetUserInfo:         query.NewGetUserInfoHandler(recRepo),
	}

	return NewBoycottHandlerWithDI(commands, queries, health, metrics)
}

// NewBoycottHandlerWithDI creates a new boycott handler using dependency injection.
// This is used by Wire.
func NewBoycottHandlerWithDI(commands Commands, queries Queries, health HealthChecker, metrics *Metrics) *BoycottHandler {
	return &BoycottHandler{
		commands: commands,
		queries:  queries,
		health:   health,
		metrics:  metrics,
	}
}

// MessageResponse is the body of every acknowledgement and failure
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is returned by the create endpoints
type CreatedResponse struct {
	Message    string             `json:"message"`
	InsertedID primitive.ObjectID `json:"insertedId"`
}

// createQueryRequest is the POST /api/queries body
type createQueryRequest struct {
	ProductName      string `json:"product_name"`
	ProductBrand     string `json:"product_brand"`
	ProductImage     string `json:"product_image"`
	QueryTitle       string `json:"query_title"`
	BoycottingReason string `json:"boycotting_reason"`
	UserEmail        string `json:"user_email"`
	UserName         string `json:"user_name"`
	UserImage        string `json:"user_image"`
}

// RegisterRoutes registers the API routes under /api
func (h *BoycottHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.Root).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/queries", h.CreateQuery).Methods("POST")
	api.HandleFunc("/queries", h.ListQueries).Methods("GET")
	api.HandleFunc("/queries/{id}", h.GetQuery).Methods("GET")
	api.HandleFunc("/queries/{id}", h.UpdateQuery).Methods("PUT")
	api.HandleFunc("/queries/{id}", h.DeleteQuery).Methods("DELETE")
	api.HandleFunc("/queries/{id}/increment-recommendations", h.IncrementRecommendations).Methods("PUT")
	api.HandleFunc("/queries/{id}/decrement-recommendations", h.DecrementRecommendations).Methods("PUT")
	api.HandleFunc("/recent-queries", h.RecentQueries).Methods("GET")
	api.HandleFunc("/allqueries", h.AllQueries).Methods("GET")

	api.HandleFunc("/recommendations", h.CreateRecommendation).Methods("POST")
	api.HandleFunc("/recommendations", h.RecommendationsByQuery).Methods("GET")
	api.HandleFunc("/recommendations/by-query-ids", h.QueriesByIDs).Methods("GET")
	api.HandleFunc("/recommendations/{id}", h.DeleteRecommendation).Methods("DELETE")
	api.HandleFunc("/recommendations-for-user/{user_email:.*}", h.RecommendationsForUser).Methods("GET")
	api.HandleFunc("/my-recommendations", h.MyRecommendations).Methods("GET")
	api.HandleFunc("/user-info/{email}", h.UserInfo).Methods("GET")
}

// RegisterHealthCheck registers health check endpoint
func (h *BoycottHandler) RegisterHealthCheck(router *mux.Router) {
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")
}

// Root handles GET /
func (h *BoycottHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Server is running"))
}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and document store connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 503 {object} MessageResponse
// @Router /health [get]
func (h *BoycottHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.health == nil {
		respondError(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	if err := h.health.Ping(r.Context()); err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Health check failed")
		respondError(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "Boycott service is healthy"})
}

// CreateQuery godoc
// @Summary Create a boycott query
// @Tags Queries
// @Accept json
// @Produce json
// @Param request body createQueryRequest true "Query data"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/queries [post]
func (h *BoycottHandler) CreateQuery(w http.ResponseWriter, r *http.Request) {
	var req createQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	q, err := h.commands.CreateQuery.Handle(r.Context(), command.CreateQueryCommand{
		ProductName:      req.ProductName,
		ProductBrand:     req.ProductBrand,
		ProductImage:     req.ProductImage,
		QueryTitle:       req.QueryTitle,
		BoycottingReason: req.BoycottingReason,
		UserEmail:        req.UserEmail,
		UserName:         req.UserName,
		UserImage:        req.UserImage,
	})
	if err != nil {
		h.handleError(w, r, err, "Failed to add query")
		return
	}

	respondJSON(w, http.StatusCreated, CreatedResponse{Message: "Query added successfully", InsertedID: q.ID})
}

// ListQueries godoc
// @Summary List queries owned by a user
// @Tags Queries
// @Produce json
// @Param user_email query string false "Owner email"
// @Success 200 {array} domain.Query
// @Failure 500 {object} MessageResponse
// @Router /api/queries [get]
func (h *BoycottHandler) ListQueries(w http.ResponseWriter, r *http.Request) {
	queries, err := h.queries.ListQueries.Handle(r.Context(), query.ListQueriesQuery{
		ByUser:    true,
		UserEmail: r.URL.Query().Get("user_email"),
	})
	if err != nil {
		h.handleError(w, r, err, "Failed to fetch queries")
		return
	}
	respondJSON(w, http.StatusOK, queries)
}

// AllQueries godoc
// @Summary List every query
// @Tags Queries
// @Produce json
// @Success 200 {array} domain.Query
// @Failure 500 {object} MessageResponse
// @Router /api/allqueries [get]
func (h *BoycottHandler) AllQueries(w http.ResponseWriter, r *http.Request) {
	queries, err := h.queries.ListQueries.Handle(r.Context(), query.ListQueriesQuery{})
	if err != nil {
		h.handleError(w, r, err, "Failed to fetch queries")
		return
	}
	respondJSON(w, http.StatusOK, queries)
}

// RecentQueries godoc
// @Summary Most recent queries
// @Description Up to 8 queries, newest current_date first
// @Tags Queries
// @Produce json
// @Success 200 {array} domain.Query
// @Failure 500 {object} MessageResponse
// @Router /api/recent-queries [get]
func (h *BoycottHandler) RecentQueries(w http.ResponseWriter, r *http.Request) {
	queries, err := h.queries.RecentQueries.Handle(r.Context(), query.RecentQueriesQuery{})
	if err != nil {
		h.handleError(w, r, err, "Failed to fetch recent queries")
		return
	}
	respondJSON(w, http.StatusOK, queries)
}

// GetQuery godoc
// @Summary Get query by ID
// @Tags Queries
// @Produce json
// @Param id path string true "Query ID"
// @Success 200 {object} domain.Query
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/queries/{id} [get]
func (h *BoycottHandler) GetQuery(w http.ResponseWriter, r *http.Request) {
	q, err := h.queries.GetQuery.Handle(r.Context(), query.GetQueryQuery{ID: mux.Vars(r)["id"]})
	if err != nil {
		h.handleError(w, r, err, "Failed to fetch query")
		return
	}
	respondJSON(w, http.StatusOK, q)
}

// UpdateQuery godoc
// @Summary Update a query
// @Description Merges caller-owned fields; the counter, date and id are never changed here
// @Tags Queries
// @Accept json
// @Produce json
// @Param id path string true "Query ID"
// @Param request body domain.QueryUpdate true "Fields to merge"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/queries/{id} [put]
func (h *BoycottHandler) UpdateQuery(w http.ResponseWriter, r *http.Request) {
	var update domain.QueryUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.commands.UpdateQuery.Handle(r.Context(), command.UpdateQueryCommand{
		ID:     mux.Vars(r)["id"],
		Update: update,
	})
	if err != nil {
		h.handleError(w, r, err, "Failed to update query")
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Query updated successfully"})
}

// DeleteQuery godoc
// @Summary Delete a query
// @Tags Queries
// @Produce json
// @Param id path string true "Query ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/queries/{id} [delete]
func (h *BoycottHandler) DeleteQuery(w http.ResponseWriter, r *http.Request) {
	if err := h.commands.DeleteQuery.Handle(r.Context(), command.DeleteQueryCommand{ID: mux.Vars(r)["id"]}); err != nil {
		h.handleError(w, r, err, "Failed to delete query")
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "Query deleted successfully"})
}

// IncrementRecommendations godoc
// @Summary Increment a query's recommendation count
// @Tags Queries
// @Produce json
// @Param id path string true "Query ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/queries/{id}/increment-recommendations [put]
func (h *BoycottHandler) IncrementRecommendations(w http.ResponseWriter, r *http.Request) {
	h.adjustRecommendations(w, r, 1, "increment",
		"Recommendation count incremented successfully",
		"Failed to increment recommendation count")
}

// DecrementRecommendations godoc
// @Summary Decrement a query's recommendation count
// @Description No lower bound is enforced
// @Tags Queries
// @Produce json
// @Param id path string true "Query ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/queries/{id}/decrement-recommendations [put]
func (h *BoycottHandler) DecrementRecommendations(w http.ResponseWriter, r *http.Request) {
	h.adjustRecommendations(w, r, -1, "decrement",
		"Recommendation count decremented successfully",
		"Failed to decrement recommendation count")
}

func (h *BoycottHandler) adjustRecommendations(w http.ResponseWriter, r *http.Request, delta int, direction, success, failure string) {
	err := h.commands.AdjustRecommendationCount.Handle(r.Context(), command.AdjustRecommendationCountCommand{
		ID:    mux.Vars(r)["id"],
		Delta: delta,
	})
	if err != nil {
		h.handleError(w, r, err, failure)
		return
	}

	h.metrics.RecordCountChange(direction)
	respondJSON(w, http.StatusOK, MessageResponse{Message: success})
}

// CreateRecommendation godoc
// @Summary Submit a recommendation
// @Description The referenced query is not checked for existence
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body command.CreateRecommendationCommand true "Recommendation data"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/recommendations [post]
func (h *BoycottHandler) CreateRecommendation(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateRecommendationCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.commands.CreateRecommendation.Handle(r.Context(), cmd)
	if err != nil {
		h.handleError(w, r, err, "Failed to add recommendation")
		return
	}

	respondJSON(w, http.StatusCreated, CreatedResponse{Message: "Recommendation added successfully", InsertedID: rec.ID})
}

// RecommendationsByQuery godoc
// @Summary Recommendations for a query
// @Tags Recommendations
// @Produce json
// @Param queryId query string true "Query ID"
// @Success 200 {array} domain.Recommendation
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/recommendations [get]
func (h *BoycottHandler) RecommendationsByQuery(w http.ResponseWriter, r *http.Request) {
	queryID := r.URL.Query().Get("queryId")
	if queryID == "" {
		respondError(w, http.StatusBadRequest, "Query ID is required")
		return
	}
	h.listRecommendations(w, r, query.ListRecommendationsQuery{By: query.ByQueryID, Value: queryID})
}

// RecommendationsForUser godoc
// @Summary Recommendations received by a query owner
// @Tags Recommendations
// @Produce json
// @Param user_email path string true "Owner email"
// @Success 200 {array} domain.Recommendation
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/recommendations-for-user/{user_email} [get]
func (h *BoycottHandler) RecommendationsForUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["user_email"]
	if email == "" {
		respondError(w, http.StatusBadRequest, "User email is required")
		return
	}
	h.listRecommendations(w, r, query.ListRecommendationsQuery{By: query.ByOwnerEmail, Value: email})
}

// MyRecommendations godoc
// @Summary Recommendations written by a user
// @Tags Recommendations
// @Produce json
// @Param user_email query string true "Recommender email"
// @Success 200 {array} domain.Recommendation
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/my-recommendations [get]
func (h *BoycottHandler) MyRecommendations(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("user_email")
	if email == "" {
		respondError(w, http.StatusBadRequest, "User email is required")
		return
	}
	h.listRecommendations(w, r, query.ListRecommendationsQuery{By: query.ByRecommenderEmail, Value: email})
}

func (h *BoycottHandler) listRecommendations(w http.ResponseWriter, r *http.Request, q query.ListRecommendationsQuery) {
	recs, err := h.queries.ListRecommendations.Handle(r.Context(), q)
	if err != nil {
		h.handleError(w, r, err, "Failed to fetch recommendations")
		return
	}
	respondJSON(w, http.StatusOK, recs)
}

// QueriesByIDs godoc
// @Summary Queries for a set of ids
// @Description Accepts a comma-separated and/or repeated queryIds parameter. Unknown ids are skipped.
// @Tags Recommendations
// @Produce json
// @Param queryIds query string true "Comma-separated query IDs"
// @Success 200 {array} domain.Query
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/recommendations/by-query-ids [get]
func (h *BoycottHandler) QueriesByIDs(w http.ResponseWriter, r *http.Request) {
	ids := r.URL.Query()["queryIds"]
	if len(ids) == 0 || (len(ids) == 1 && ids[0] == "") {
		respondError(w, http.StatusBadRequest, "Query IDs are required")
		return
	}

	queries, err := h.queries.QueriesByIDs.Handle(r.Context(), query.QueriesByIDsQuery{IDs: ids})
	if err != nil {
		h.handleError(w, r, err, "Failed to fetch recommendations")
		return
	}
	respondJSON(w, http.StatusOK, queries)
}

// UserInfo godoc
// @Summary Look up a user document by email
// @Tags Recommendations
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/user-info/{email} [get]
func (h *BoycottHandler) UserInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.queries.GetUserInfo.Handle(r.Context(), query.GetUserInfoQuery{Email: mux.Vars(r)["email"]})
	if err != nil {
		h.handleError(w, r, err, "Failed to fetch user information")
		return
	}
	respondJSON(w, http.StatusOK, info)
}

// DeleteRecommendation godoc
// @Summary Delete a recommendation
// @Tags Recommendations
// @Produce json
// @Param id path string true "Recommendation ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/recommendations/{id} [delete]
func (h *BoycottHandler) DeleteRecommendation(w http.ResponseWriter, r *http.Request) {
	err := h.commands.DeleteRecommendation.Handle(r.Context(), command.DeleteRecommendationCommand{ID: mux.Vars(r)["id"]})
	if err != nil {
		h.handleError(w, r, err, "Failed to delete recommendation")
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "Recommendation deleted successfully"})
}

// handleError maps a use-case error onto a status code. Store failures are
// logged and answered with the generic failure message.
func (h *BoycottHandler) handleError(w http.ResponseWriter, r *http.Request, err error, failure string) {
	var notFound domain.NotFoundError

	switch {
	case errors.Is(err, domain.ErrInvalidID):
		respondError(w, http.StatusBadRequest, "Invalid ID format")
	case errors.Is(err, domain.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		respondError(w, http.StatusNotFound, notFound.Error())
	default:
		logger.Error(r.Context()).
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg(failure)
		respondError(w, http.StatusInternalServerError, failure)
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}

// respondError sends a {"message": ...} failure body
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, MessageResponse{Message: message})
}
