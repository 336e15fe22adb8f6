//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"chatcore/internal/config"
	convohandler "chatcore/internal/convo/handler"
	"chatcore/internal/convo/repository"
	convoservice "chatcore/internal/convo/service"
	"chatcore/internal/membership"
	"chatcore/internal/notify"
	"chatcore/internal/readstate"
	"chatcore/internal/session"
	"chatcore/internal/user"
)

// InitializeServer builds the whole server app; wire generates the real body.
func InitializeServer() (*App, func(), error) {
	wire.Build(
		config.Load,
		provideLogger,
		provideDB,
		provideRedis,
		provideTokenIssuer,
		provideRouter,
		newApp,

		membership.NewResolver,
		readstate.NewTracker,
		notify.NewRedisPublisher,
		notify.NewNotifier,
		repository.NewConversationRepository,
		convoservice.NewConversationService,
		convohandler.NewConversationHandler,
		user.NewUserRepository,
		user.NewUserService,
		user.NewHandler,
		session.NewRedisSubscriber,
		session.NewHub,
		session.NewGateway,
		wire.Bind(new(session.PresenceSetter), new(user.UserService)),
	)
	return nil, nil, nil
}
