package srv

import (
	"context"

	"github.com/Dwayne234/HR-PeopleTeam/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run starts every service, waits until the first one returns or the
// context is cancelled, then shuts all of them down. A transport returning
// nil (the user typed exit or quit the chat) ends the whole process.
func Run(ctx context.Context, services []Service) {
	logger := log.FromCtx(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for _, service := range services {
		go func(service Service) {
			defer cancel()
			if err := service.Start(ctx); err != nil && ctx.Err() == nil {
				logger.Error().Err(err).Msgf("%T failed", service)
			}
		}(service)
	}

	<-ctx.Done()

	for _, service := range services {
		if err := service.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error().Err(err).Msgf("%T failed to shutdown", service)
		}
	}
}
