//go:build wireinject
// +build wireinject

package boycott

import (
	"github.com/google/wire"

	"github.com/tair/boycott-service/internal/boycott/delivery/http"
	"github.com/tair/boycott-service/internal/boycott/domain"
	"github.com/tair/boycott-service/pkg/database"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(store *database.MongoStore, publisher domain.EventPublisher, metrics *http.Metrics) (*http.BoycottHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewBoycottHandlerWithDI,
	)
	return nil, nil
}
