package components

import (
	"pet-adoption/internal/infra/memory"
	"pet-adoption/internal/infra/readstore"
	"pet-adoption/internal/infra/uow"
	"pet-adoption/internal/pkg/config"
	"pet-adoption/internal/usecase/queries"
	"pet-adoption/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
	),
)

// Stores is the write side and the two read stores over one backend.
type Stores struct {
	fx.Out

	UoW      shared.UnitOfWork
	Catalog  queries.CatalogReadStore
	Adoption queries.AdoptionReadStore
}

func NewStores(cfg config.Config, pool *pgxpool.Pool) Stores {
	if cfg.DB.UsesMemory() {
		store := memory.NewStore()
		return Stores{
			UoW:      store,
			Catalog:  memory.NewCatalogReadStore(store),
			Adoption: memory.NewAdoptionReadStore(store),
		}
	}

	return Stores{
		UoW:      uow.NewPostgresUoW(pool),
		Catalog:  readstore.NewCatalogReadStore(pool),
		Adoption: readstore.NewAdoptionReadStore(pool),
	}
}
