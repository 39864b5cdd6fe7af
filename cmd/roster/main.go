package main

import (
	"context"
	"log/slog"
	"os"

	"roster/config"
	"roster/internal/delivery"
	"roster/internal/delivery/http"
	"roster/internal/delivery/http/middleware"
	"roster/internal/delivery/http/router/handler"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/infra/auth"
	"roster/internal/infra/geocode"
	logs "roster/internal/infra/log"
	"roster/internal/infra/mail"
	"roster/internal/infra/persistence/postgres"
	"roster/internal/usecase"
	"roster/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewLocationRepository,
			postgres.NewPersonProfileRepository,
			postgres.NewBusinessProfileRepository,
			postgres.NewAuthTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewResetTokenService,
			geocode.NewNominatimGeocoder,
			mail.NewResendMailer,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher from the configured cost
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newAccountManager,
			impl.NewLocationWriter,
			impl.NewProfileService,
			impl.NewBusinessProfileService,
			impl.NewAccountService,
			newAuthService,
		),
	)
}

// newAccountManager creates the account manager with the configured password policy
func newAccountManager(cfg *config.Config, hasher service.PasswordHasher, logger *slog.Logger) usecase.AccountManager {
	return impl.NewAccountManager(hasher, cfg.Auth.MinPasswordLength, logger)
}

// newAuthService creates the auth use case with the configured reset link base
func newAuthService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	accounts usecase.AccountManager,
	hasher service.PasswordHasher,
	resetTokens service.ResetTokenService,
	mailer service.Mailer,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return impl.NewAuthService(txManager, accounts, hasher, resetTokens, mailer, cfg.PasswordReset.LinkBaseURL, logger)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewAccountHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
