package store

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/firestore"

	"github.com/GregMSThompson/pocketledger/internal/dto"
	"github.com/GregMSThompson/pocketledger/internal/models"
	"github.com/GregMSThompson/pocketledger/pkg/helpers"
)

func TestTransactionStoreWithEmulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "test-project")
	if err != nil {
		t.Fatalf("firestore client error: %v", err)
	}
	defer client.Close()

	store := NewTransactionStore(client)
	uid := "store-test-user"

	seed := []models.Transaction{
		{TransactionID: "t1", Kind: models.KindIncome, Category: "Salary", Amount: 1000, Date: "2024-01-05"},
		{TransactionID: "t2", Kind: models.KindExpense, Category: "Food", Amount: 300, Date: "2024-01-10"},
		{TransactionID: "t3", Kind: models.KindIncome, Category: "Freelance", Amount: 500, Date: "2024-02-01"},
	}
	for i := range seed {
		if err := store.Create(ctx, uid, &seed[i]); err != nil {
			t.Fatalf("seed transaction error: %v", err)
		}
	}

	all, err := store.List(ctx, uid, dto.TransactionQuery{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(all))
	}
	if all[0].TransactionID != "t3" {
		t.Fatalf("expected newest first, got %s", all[0].TransactionID)
	}

	income, err := store.List(ctx, uid, dto.TransactionQuery{Kind: helpers.Ptr(models.KindIncome)})
	if err != nil {
		t.Fatalf("List filtered error: %v", err)
	}
	if len(income) != 2 {
		t.Fatalf("expected 2 income transactions, got %d", len(income))
	}

	got, err := store.Get(ctx, uid, "t2")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Category != "Food" || got.CreatedAt.IsZero() {
		t.Fatalf("unexpected transaction: %+v", got)
	}

	if err := store.DeleteAll(ctx, uid); err != nil {
		t.Fatalf("DeleteAll error: %v", err)
	}
	remaining, err := store.List(ctx, uid, dto.TransactionQuery{})
	if err != nil {
		t.Fatalf("List after purge error: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected empty collection after purge, got %d", len(remaining))
	}
}
