package boycott

import (
	"github.com/google/wire"

	"github.com/tair/boycott-service/internal/boycott/delivery/http"
	"github.com/tair/boycott-service/internal/boycott/domain"
	"github.com/tair/boycott-service/internal/boycott/repository"
	"github.com/tair/boycott-service/internal/boycott/usecase/command"
	"github.com/tair/boycott-service/internal/boycott/usecase/query"
	"github.com/tair/boycott-service/pkg/database"
)

// ProvideQueryRepository provides the traced Mongo query repository
func ProvideQueryRepository(store *database.MongoStore) domain.QueryRepository {
	return repository.NewTracingQueryRepository(repository.NewMongoQueryRepository(store))
}

// ProvideRecommendationRepository provides the traced Mongo recommendation repository
func ProvideRecommendationRepository(store *database.MongoStore) domain.RecommendationRepository {
	return repository.NewTracingRecommendationRepository(repository.NewMongoRecommendationRepository(store))
}

// ProvideHealthChecker exposes the store's ping to the health endpoint
func ProvideHealthChecker(store *database.MongoStore) http.HealthChecker {
	return store
}

// ProvideCommands provides all command handlers
func ProvideCommands(
	createQuery *command.CreateQueryHandler,
	updateQuery *command.UpdateQueryHandler,
	deleteQuery *command.DeleteQueryHandler,
	adjustCount *command.AdjustRecommendationCountHandler,
	createRecommendation *command.CreateRecommendationHandler,
	deleteRecommendation *command.DeleteRecommendationHandler,
) http.Commands {
	return http.Commands{
		CreateQuery:               createQuery,
		UpdateQuery:               updateQuery,
		DeleteQuery:               deleteQuery,
		AdjustRecommendationCount: adjustCount,
		CreateRecommendation:      createRecommendation,
		DeleteRecommendation:      deleteRecommendation,
	}
}

// ProvideQueries provides all query handlers
func ProvideQueries(
	getQuery *query.GetQueryHandler,
	listQueries *query.ListQueriesHandler,
	recentQueries *query.RecentQueriesHandler,
	queriesByIDs *query.QueriesByIDsHandler,
	listRecommendations *query.ListRecommendationsHandler,
	getUserInfo *query.GetUserInfoHandler,
) http.Queries {
	return http.Queries{
		GetQuery:            getQuery,
		ListQueries:         listQueries,
		RecentQueries:       recentQueries,
		QueriesByIDs:        queriesByIDs,
		ListRecommendations: listRecommendations,
		GetUserInfo:         getUserInfo,
	}
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideQueryRepository,
	ProvideRecommendationRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewCreateQueryHandler,
	command.NewUpdateQueryHandler,
	command.NewDeleteQueryHandler,
	command.NewAdjustRecommendationCountHandler,
	command.NewCreateRecommendationHandler,
	command.NewDeleteRecommendationHandler,
	ProvideCommands,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetQueryHandler,
	query.NewListQueriesHandler,
	query.NewRecentQueriesHandler,
	query.NewQueriesByIDsHandler,
	query.NewListRecommendationsHandler,
	query.NewGetUserInfoHandler,
	ProvideQueries,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
	ProvideHealthChecker,
)
