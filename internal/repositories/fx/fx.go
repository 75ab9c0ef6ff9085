package fx

import (
	"github.com/randogapp/randog/internal/repositories/download"
	"github.com/randogapp/randog/internal/repositories/sessionrecord"
	"go.uber.org/fx"
)

var Module = fx.Options(
	sessionrecord.Module,
	download.Module,
)
