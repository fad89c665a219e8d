package bootstrap

import (
	"venue-marketplace/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is everything the admin commands may need. Providers are lazy, so a
// command only connects to the backends it actually asks for.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	BillingModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

// APIModule is the HTTP process.
var APIModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	ServerModule,
	components.PersistenceModule,
	components.HandlerModule,
)
