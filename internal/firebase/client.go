package firebase

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Document is one Firestore document with its loosely typed fields.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Client reads whole collections and writes custom auth claims. A nil *Client
// is a valid, unconfigured client: every call returns ErrNotConfigured.
type Client struct {
	firestore *firestore.Client
	auth      *auth.Client
}

// NewClient opens Firestore and Auth clients for app. A nil app yields a nil client.
func NewClient(ctx context.Context, app *firebase.App) (*Client, error) {
	if app == nil {
		return nil, nil
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open firestore: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to open firebase auth: %w", err)
	}

	return &Client{firestore: fs, auth: authClient}, nil
}

func (c *Client) Configured() bool {
	return c != nil && c.firestore != nil
}

// FetchAll reads a full snapshot of the collection in document order.
func (c *Client) FetchAll(ctx context.Context, collection string) ([]Document, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	iter := c.firestore.Collection(collection).Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", collection, err)
		}

		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}

	return docs, nil
}

func (c *Client) SetCustomUserClaims(ctx context.Context, uid string, claims map[string]interface{}) error {
	if c == nil || c.auth == nil {
		return ErrNotConfigured
	}

	if err := c.auth.SetCustomUserClaims(ctx, uid, claims); err != nil {
		return fmt.Errorf("failed to set claims for %s: %w", uid, err)
	}
	return nil
}

func (c *Client) Close() error {
	if c == nil || c.firestore == nil {
		return nil
	}
	return c.firestore.Close()
}

// IsTransient reports whether err looks like an outage rather than a
// configuration or permission problem.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, ErrNotConfigured) {
		return false
	}

	var se interface{ GRPCStatus() *status.Status }
	if !errors.As(err, &se) {
		return errors.Is(err, context.DeadlineExceeded)
	}

	switch se.GRPCStatus().Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted, codes.Internal:
		return true
	default:
		return false
	}
}
