package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/pocketledger/internal/errs"
	"github.com/GregMSThompson/pocketledger/internal/models"
)

type preferencesStore struct {
	client *firestore.Client
}

func NewPreferencesStore(client *firestore.Client) *preferencesStore {
	return &preferencesStore{client: client}
}

func (s *preferencesStore) doc(uid string) *firestore.DocumentRef {
	return s.client.Collection("users").Doc(uid).Collection("settings").Doc("display")
}

// Get returns defaults when the owner has never saved preferences.
func (s *preferencesStore) Get(ctx context.Context, uid string) (*models.Preferences, error) {
	doc, err := s.doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &models.Preferences{Currency: "$", Theme: "light"}, nil
		}
		return nil, errs.NewDatabaseError("read", "failed to get preferences", err)
	}
	var p models.Preferences
	if err := doc.DataTo(&p); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse preferences data", err)
	}
	return &p, nil
}

func (s *preferencesStore) Set(ctx context.Context, uid string, p *models.Preferences) error {
	p.UpdatedAt = time.Now()
	if _, err := s.doc(uid).Set(ctx, p); err != nil {
		return errs.NewDatabaseError("update", "failed to save preferences", err)
	}
	return nil
}
