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

type accountStore struct {
	client *firestore.Client
}

func NewAccountStore(client *firestore.Client) *accountStore {
	return &accountStore{client: client}
}

func (s *accountStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("accounts")
}

func (s *accountStore) Create(ctx context.Context, uid string, a *models.Account) error {
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	if _, err := s.collection(uid).Doc(a.AccountID).Create(ctx, a); err != nil {
		return errs.NewDatabaseError("create", "failed to create account", err)
	}
	return nil
}

func (s *accountStore) Get(ctx context.Context, uid, accountID string) (*models.Account, error) {
	doc, err := s.collection(uid).Doc(accountID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("account not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get account", err)
	}
	var a models.Account
	if err := doc.DataTo(&a); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse account data", err)
	}
	return &a, nil
}

func (s *accountStore) List(ctx context.Context, uid string) ([]models.Account, error) {
	docs, err := s.collection(uid).OrderBy("createdAt", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list accounts", err)
	}

	accounts := make([]models.Account, 0, len(docs))
	for _, d := range docs {
		var a models.Account
		if err := d.DataTo(&a); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse account data", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

func (s *accountStore) Update(ctx context.Context, uid string, a *models.Account) error {
	a.UpdatedAt = time.Now()
	if _, err := s.collection(uid).Doc(a.AccountID).Set(ctx, a); err != nil {
		return errs.NewDatabaseError("update", "failed to update account", err)
	}
	return nil
}

func (s *accountStore) Delete(ctx context.Context, uid, accountID string) error {
	if _, err := s.collection(uid).Doc(accountID).Delete(ctx); err != nil {
		return errs.NewDatabaseError("delete", "failed to delete account", err)
	}
	return nil
}

func (s *accountStore) DeleteAll(ctx context.Context, uid string) error {
	return deleteCollection(ctx, s.client, s.collection(uid), "accounts")
}
