package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/GregMSThompson/pocketledger/internal/errs"
	"github.com/GregMSThompson/pocketledger/internal/models"
)

// categoryStore manages the global suggestion set. Categories are not
// owner-scoped; transactions may also carry labels outside this set.
type categoryStore struct {
	client     *firestore.Client
	collection *firestore.CollectionRef
}

func NewCategoryStore(client *firestore.Client) *categoryStore {
	return &categoryStore{
		client:     client,
		collection: client.Collection("categories"),
	}
}

func (s *categoryStore) List(ctx context.Context, kind *string) ([]models.Category, error) {
	query := s.collection.Query
	if kind != nil {
		query = query.Where("type", "==", *kind)
	}
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list categories", err)
	}

	categories := make([]models.Category, 0, len(docs))
	for _, d := range docs {
		var c models.Category
		if err := d.DataTo(&c); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse category data", err)
		}
		categories = append(categories, c)
	}
	return categories, nil
}

// CreateBatch writes the given categories in one bulk flush. Existing
// docs with the same id are overwritten, which keeps seeding idempotent.
func (s *categoryStore) CreateBatch(ctx context.Context, categories []models.Category) error {
	if len(categories) == 0 {
		return nil
	}

	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(categories))
	now := time.Now()

	for _, c := range categories {
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		job, err := bw.Set(s.collection.Doc(c.CategoryID), c)
		if err != nil {
			bw.End()
			return errs.NewDatabaseError("create", "failed to schedule category write", err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return errs.NewDatabaseError("create", "failed to create categories", err)
		}
	}
	return nil
}
