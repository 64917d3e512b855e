// Package firebaseapp bootstraps the process-wide Firebase Admin SDK clients.
package firebaseapp

import (
	"context"
	"log/slog"

	"devotional/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the parameters required for the Firebase app
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Firebase app once per process. Without a credentials
// path the SDK falls back to application default credentials.
func NewApp(params Params) (*firebase.App, error) {
	var (
		fbConfig *firebase.Config
		opts     []option.ClientOption
	)

	if cfg := params.Config.Firebase; cfg != nil {
		if cfg.ProjectID != "" {
			fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
		}
		if cfg.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
		}
	}

	app, err := firebase.NewApp(params.Ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase Admin SDK initialized")

	return app, nil
}

// NewMessagingClient returns the FCM client bound to app
func NewMessagingClient(ctx context.Context, app *firebase.App) (*messaging.Client, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return client, nil
}

// FirestoreParams defines the parameters required for the Firestore client
type FirestoreParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// NewFirestoreClient returns the Firestore client bound to app and closes it on stop
func NewFirestoreClient(params FirestoreParams) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
