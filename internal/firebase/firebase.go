package firebase

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/waveact/admin-dashboard-backend/internal/config"
)

// Clients holds the long-lived identity provider and document store
// connections shared by all requests.
type Clients struct {
	App       *fb.App
	Auth      *auth.Client
	Firestore *firestore.Client
}

func Connect(ctx context.Context, cfg *config.Config) (*Clients, error) {
	opts := []option.ClientOption{}
	if cfg.FirebaseCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentials))
	}

	var fbConfig *fb.Config
	if cfg.FirebaseProjectID != "" {
		fbConfig = &fb.Config{ProjectID: cfg.FirebaseProjectID}
	}

	app, err := fb.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth client: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firestore client: %w", err)
	}

	slog.Info("firebase connected", "project", cfg.FirebaseProjectID)

	return &Clients{
		App:       app,
		Auth:      authClient,
		Firestore: fsClient,
	}, nil
}

func (c *Clients) Close() error {
	return c.Firestore.Close()
}
