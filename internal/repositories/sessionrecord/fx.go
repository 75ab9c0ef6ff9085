package sessionrecord

import (
	"go.uber.org/fx"
)

var Module = fx.Provide(
	fx.Annotate(
		NewRedisRepository,
		fx.As(new(Repository)),
	),
)
