package firebase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"go-sparkshield-backend/config"
)

// serviceAccount covers the fields we sanity-check before handing the
// credentials to the SDK.
type serviceAccount struct {
	ProjectID  string `json:"project_id"`
	PrivateKey string `json:"private_key"`
}

// NewDatabaseClient initializes the Firebase app and returns a Realtime
// Database client. A failure here is fatal to startup; every other failure
// in the system is per-request.
func NewDatabaseClient(ctx context.Context, cfg *config.Config) (*db.Client, error) {
	creds, err := resolveCredentials(cfg)
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		DatabaseURL: cfg.FirebaseDatabaseURL,
	}, option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect realtime database: %w", err)
	}

	log.Println("Firebase initialized successfully")
	return client, nil
}

// resolveCredentials prefers inline base64 credentials from the environment
// and falls back to the local service account file.
func resolveCredentials(cfg *config.Config) ([]byte, error) {
	if cfg.FirebaseCredentials != "" {
		raw, err := base64.StdEncoding.DecodeString(cfg.FirebaseCredentials)
		if err != nil {
			return nil, fmt.Errorf("decode FIREBASE_CREDENTIALS: %w", err)
		}
		var sa serviceAccount
		if err := json.Unmarshal(raw, &sa); err != nil {
			return nil, fmt.Errorf("parse FIREBASE_CREDENTIALS: %w", err)
		}
		if sa.ProjectID == "" || sa.PrivateKey == "" {
			return nil, errors.New("firebase credentials missing project_id or private_key")
		}
		return raw, nil
	}

	raw, err := os.ReadFile(cfg.FirebaseCredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read firebase credentials file: %w", err)
	}
	return raw, nil
}
