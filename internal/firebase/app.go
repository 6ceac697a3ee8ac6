// Package firebase connects the service to a Firebase project: Firestore for
// the customer, order and staff collections and Firebase Auth for staff claims.
package firebase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"crm-service/internal/config"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

var ErrNotConfigured = errors.New("firebase admin credentials are not configured")

const tokenURI = "https://oauth2.googleapis.com/token"

type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri"`
}

// NewApp builds an Admin SDK app from the first credential source present in
// cfg. It returns nil, nil when no credentials are configured.
func NewApp(ctx context.Context, cfg *config.FirebaseConfig) (*firebase.App, error) {
	creds, err := credentialOption(cfg)
	if err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, nil
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, creds)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	return app, nil
}

func credentialOption(cfg *config.FirebaseConfig) (option.ClientOption, error) {
	if cfg == nil {
		return nil, nil
	}

	switch {
	case cfg.ServiceAccountJSON != "":
		if !json.Valid([]byte(cfg.ServiceAccountJSON)) {
			return nil, errors.New("FIREBASE_SERVICE_ACCOUNT_JSON is not valid JSON")
		}
		return option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON)), nil
	case cfg.ServiceAccountPath != "":
		return option.WithCredentialsFile(cfg.ServiceAccountPath), nil
	case cfg.ProjectID != "" && cfg.ClientEmail != "" && cfg.PrivateKey != "":
		data, err := json.Marshal(serviceAccount{
			Type:        "service_account",
			ProjectID:   cfg.ProjectID,
			ClientEmail: cfg.ClientEmail,
			PrivateKey:  cfg.PrivateKey,
			TokenURI:    tokenURI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to encode service account: %w", err)
		}
		return option.WithCredentialsJSON(data), nil
	default:
		return nil, nil
	}
}
