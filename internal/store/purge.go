package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/GregMSThompson/pocketledger/internal/errs"
)

// deleteCollection bulk-deletes every document in a collection. The
// BulkWriter flushes on End; job results are checked afterwards so a
// single failed delete fails the whole purge.
func deleteCollection(ctx context.Context, client *firestore.Client, coll *firestore.CollectionRef, entity string) error {
	docs, err := coll.Documents(ctx).GetAll()
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to list "+entity+" for deletion", err)
	}
	if len(docs) == 0 {
		return nil
	}

	bw := client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(docs))
	for _, d := range docs {
		job, err := bw.Delete(d.Ref)
		if err != nil {
			bw.End()
			return errs.NewDatabaseError("delete", "failed to schedule "+entity+" deletion", err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return errs.NewDatabaseError("delete", "failed to delete "+entity, err)
		}
	}
	return nil
}
