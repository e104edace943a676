package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmuchance/bouncematch/internal/database/postgres"
	"github.com/dmuchance/bouncematch/internal/repository"
)

// Repositories holds the repository implementations backed by the main
// application database. The vector index lives in a separate store and is
// initialized independently, only when semantic search is configured.
type Repositories struct {
	Catalog    repository.Catalog
	Scheduling repository.Scheduling
}

// InitializeRepositories creates all repository implementations on the
// shared connection pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Catalog:    postgres.NewCatalogRepository(dbPool),
		Scheduling: postgres.NewSchedulingRepository(dbPool),
	}
}
