package components

import (
	"table-reserve/internal/infra/db"
	"table-reserve/internal/infra/readstore"
	"table-reserve/internal/infra/repository"
	"table-reserve/internal/usecase/commands"
	"table-reserve/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewQueryer,
		// Write side
		fx.Annotate(
			repository.NewMemberRepository,
			fx.As(new(commands.MemberRepository)),
		),
		fx.Annotate(
			repository.NewStoreRepository,
			fx.As(new(commands.StoreRepository)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewReviewRepository,
			fx.As(new(commands.ReviewRepository)),
		),
		fx.Annotate(
			readstore.NewCommandReads,
			fx.As(new(commands.CommandReads)),
		),
		// Read side
		fx.Annotate(
			readstore.NewStoreReadStore,
			fx.As(new(queries.StoreReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
	),
)

func NewQueryer(pool *pgxpool.Pool) db.Queryer {
	return pool
}
