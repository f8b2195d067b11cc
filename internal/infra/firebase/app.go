// Package firebase initializes the backend project clients.
package firebase

import (
	"context"
	"log/slog"

	"spotshare/config"
	"spotshare/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the parameters required for the backend clients
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewApp creates the Firebase app. Without a credentials path the
// application default credentials are used.
func NewApp(params Params) (*firebase.App, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firebase.projectId is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(context.Background(), &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized", slog.String("project_id", cfg.ProjectID))

	return app, nil
}

// FirestoreParams defines the parameters required for the Firestore client
type FirestoreParams struct {
	fx.In
	fx.Lifecycle

	App *firebase.App
}

// NewFirestoreClient creates the document client and closes it on stop.
func NewFirestoreClient(params FirestoreParams) (*firestore.Client, error) {
	client, err := params.App.Firestore(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// NewAuthClient creates the admin identity client.
func NewAuthClient(app *firebase.App) (*auth.Client, error) {
	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Auth client")
	}

	return client, nil
}
