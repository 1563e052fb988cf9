package components

import (
	"neko-hotel/internal/infra/uow"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// The unit of work is the single gateway to persistence: it
		// hands out transaction-bound repositories to commands and
		// pool-bound ones to queries.
		uow.NewPostgresUoW,
	),
)
