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

type goalStore struct {
	client *firestore.Client
}

func NewGoalStore(client *firestore.Client) *goalStore {
	return &goalStore{client: client}
}

func (s *goalStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("goals")
}

func (s *goalStore) Create(ctx context.Context, uid string, g *models.Goal) error {
	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now
	if _, err := s.collection(uid).Doc(g.GoalID).Create(ctx, g); err != nil {
		return errs.NewDatabaseError("create", "failed to create goal", err)
	}
	return nil
}

func (s *goalStore) Get(ctx context.Context, uid, goalID string) (*models.Goal, error) {
	doc, err := s.collection(uid).Doc(goalID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("goal not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get goal", err)
	}
	var g models.Goal
	if err := doc.DataTo(&g); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse goal data", err)
	}
	return &g, nil
}

// List returns the owner's goals newest first.
func (s *goalStore) List(ctx context.Context, uid string) ([]models.Goal, error) {
	docs, err := s.collection(uid).OrderBy("createdAt", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list goals", err)
	}

	goals := make([]models.Goal, 0, len(docs))
	for _, d := range docs {
		var g models.Goal
		if err := d.DataTo(&g); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse goal data", err)
		}
		goals = append(goals, g)
	}
	return goals, nil
}

func (s *goalStore) Update(ctx context.Context, uid string, g *models.Goal) error {
	g.UpdatedAt = time.Now()
	if _, err := s.collection(uid).Doc(g.GoalID).Set(ctx, g); err != nil {
		return errs.NewDatabaseError("update", "failed to update goal", err)
	}
	return nil
}

func (s *goalStore) Delete(ctx context.Context, uid, goalID string) error {
	if _, err := s.collection(uid).Doc(goalID).Delete(ctx); err != nil {
		return errs.NewDatabaseError("delete", "failed to delete goal", err)
	}
	return nil
}

func (s *goalStore) DeleteAll(ctx context.Context, uid string) error {
	return deleteCollection(ctx, s.client, s.collection(uid), "goals")
}
