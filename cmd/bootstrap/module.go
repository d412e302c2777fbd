package bootstrap

import (
	"stable-booking-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	RedisModule,
	MQModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
