package main

import (
	"context"
	"log/slog"
	"os"

	"spotshare/config"
	"spotshare/internal/delivery"
	"spotshare/internal/delivery/http"
	"spotshare/internal/delivery/http/router/handler"
	"spotshare/internal/domain/service"
	"spotshare/internal/infra/auth/identitytoolkit"
	"spotshare/internal/infra/device"
	"spotshare/internal/infra/firebase"
	logs "spotshare/internal/infra/log"
	"spotshare/internal/infra/persistence/firestoredb"
	"spotshare/internal/infra/qrcode"
	"spotshare/internal/infra/storage"
	"spotshare/internal/usecase"
	"spotshare/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Config     *config.Config
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startListingFeed,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		firebase.NewApp,
		firebase.NewFirestoreClient,
		firebase.NewAuthClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestoredb.NewListingRepository,
			firestoredb.NewIdentityRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			identitytoolkit.NewGateway,
			storage.NewImageStore,
			device.NewProvider,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates the listing share code service from config
func newQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionStore,
			impl.NewListingStore,
			impl.NewLocationSession,
			impl.NewSearchService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewListingHandler,
			handler.NewLocationHandler,
			handler.NewSessionHandler,
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

// startListingFeed opens the live listing subscription with the app and
// releases it on shutdown.
func startListingFeed(lc fx.Lifecycle, listings usecase.ListingUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := listings.SubscribeAll(ctx, nil, func(err error) {
				logger.Warn("Listing feed error", slog.Any("error", err))
			})

			return err
		},
		OnStop: func(context.Context) error {
			listings.Close()

			return nil
		},
	})
}

func startServer(params startServerParams) {
	if !params.Config.HTTP.Enabled {
		params.Logger.Info("HTTP delivery disabled")

		return
	}

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(context.Background()); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
