package bootstrap

import (
	"braceria-backend/internal/infra/metrics"
	"braceria-backend/internal/usecase/commands"
	"braceria-backend/internal/usecase/notify"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRecorder,
		func(r *metrics.Recorder) commands.Recorder { return r },
		func(r *metrics.Recorder) notify.Recorder { return r },
	),
)
