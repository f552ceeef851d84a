package boycott

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/boycott-service/internal/boycott/delivery/http"
	"github.com/tair/boycott-service/internal/boycott/domain"
	"github.com/tair/boycott-service/pkg/database"
)

func TestInitializeHTTPHandler_DisconnectedStore(t *testing.T) {
	store := database.NewMongoStoreFromClient(nil, "test")
	handler, err := InitializeHTTPHandler(store, domain.NoopPublisher{}, http.NewMetrics(prometheus.NewRegistry()))
	require.NoError(t, err)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router)

	tests := []struct {
		target string
		want   int
	}{
		{"/", nethttp.StatusOK},
		{"/health", nethttp.StatusServiceUnavailable},
		{"/api/allqueries", nethttp.StatusInternalServerError},
		{"/api/queries/not-an-id", nethttp.StatusBadRequest},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, tt.target, nil))
		assert.Equal(t, tt.want, rec.Code, tt.target)
	}
}
