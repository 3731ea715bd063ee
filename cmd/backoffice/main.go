package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"backoffice/config"
	"backoffice/internal/delivery"
	"backoffice/internal/delivery/http"
	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/router/handler"
	"backoffice/internal/infra/auth"
	"backoffice/internal/infra/clock"
	logs "backoffice/internal/infra/log"
	"backoffice/internal/infra/mail"
	"backoffice/internal/infra/persistence/mongo"
	"backoffice/internal/usecase/impl"
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
		mongo.NewDatabase,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongo.NewUserRepository,
			mongo.NewCustomerRepository,
			mongo.NewProductRepository,
			mongo.NewOrderRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewOTPGenerator,
			clock.New,
			mail.NewSMTPMailer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCustomerService,
			impl.NewProductService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCustomerHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
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
