package client

import (
	"context"
	"sync"

	"github.com/GregMSThompson/pocketledger/internal/dto"
	"github.com/GregMSThompson/pocketledger/internal/finance"
	"github.com/GregMSThompson/pocketledger/internal/models"
)

// Store caches the caller's transactions and goals on top of a Client.
// Mutations are write-through: the server acknowledges first, and only
// then does the cache change, so a failed call leaves the snapshot as
// it was. Each collection has its own lock; a fetch of one never blocks
// a mutation of the other.
type Store struct {
	client *Client

	txMu         sync.Mutex
	transactions []models.Transaction
	txLoading    bool

	goalMu      sync.Mutex
	goals       []models.Goal
	goalLoading bool

	errMu   sync.Mutex
	lastErr error
}

func NewStore(client *Client) *Store {
	return &Store{client: client}
}

// Err returns the most recent operation failure, nil once cleared.
func (s *Store) Err() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.lastErr
}

func (s *Store) ClearError() {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	s.lastErr = nil
}

func (s *Store) setErr(err error) {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	s.lastErr = err
}

// TransactionsLoading reports whether a transaction fetch is in flight.
func (s *Store) TransactionsLoading() bool {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return s.txLoading
}

// FetchTransactions replaces the whole cached snapshot.
func (s *Store) FetchTransactions(ctx context.Context) error {
	s.txMu.Lock()
	s.txLoading = true
	s.txMu.Unlock()

	txs, err := s.client.ListTransactions(ctx, "")

	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.txLoading = false
	if err != nil {
		s.setErr(err)
		return err
	}
	s.transactions = txs
	return nil
}

// Transactions returns a copy of the cached snapshot.
func (s *Store) Transactions() []models.Transaction {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Store) AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	tx, err := s.client.CreateTransaction(ctx, req)
	if err != nil {
		s.setErr(err)
		return nil, err
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.transactions = append([]models.Transaction{*tx}, s.transactions...)
	return tx, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*models.Transaction, error) {
	tx, err := s.client.UpdateTransaction(ctx, transactionID, req)
	if err != nil {
		s.setErr(err)
		return nil, err
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].TransactionID == transactionID {
			s.transactions[i] = *tx
			break
		}
	}
	return tx, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.client.DeleteTransaction(ctx, transactionID); err != nil {
		s.setErr(err)
		return err
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()
	kept := s.transactions[:0]
	for _, tx := range s.transactions {
		if tx.TransactionID != transactionID {
			kept = append(kept, tx)
		}
	}
	s.transactions = kept
	return nil
}

// Summary folds the cached snapshot locally; no network round trip.
func (s *Store) Summary() finance.Summary {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return finance.Summarize(s.transactions)
}

// GoalsLoading reports whether a goal fetch is in flight.
func (s *Store) GoalsLoading() bool {
	s.goalMu.Lock()
	defer s.goalMu.Unlock()
	return s.goalLoading
}

func (s *Store) FetchGoals(ctx context.Context) error {
	s.goalMu.Lock()
	s.goalLoading = true
	s.goalMu.Unlock()

	goals, err := s.client.ListGoals(ctx)

	s.goalMu.Lock()
	defer s.goalMu.Unlock()
	s.goalLoading = false
	if err != nil {
		s.setErr(err)
		return err
	}
	s.goals = goals
	return nil
}

func (s *Store) Goals() []models.Goal {
	s.goalMu.Lock()
	defer s.goalMu.Unlock()
	out := make([]models.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

func (s *Store) AddGoal(ctx context.Context, req dto.CreateGoalRequest) (*models.Goal, error) {
	g, err := s.client.CreateGoal(ctx, req)
	if err != nil {
		s.setErr(err)
		return nil, err
	}

	s.goalMu.Lock()
	defer s.goalMu.Unlock()
	s.goals = append(s.goals, *g)
	return g, nil
}

func (s *Store) UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest) (*models.Goal, error) {
	g, err := s.client.UpdateGoal(ctx, goalID, req)
	if err != nil {
		s.setErr(err)
		return nil, err
	}

	s.goalMu.Lock()
	defer s.goalMu.Unlock()
	for i := range s.goals {
		if s.goals[i].GoalID == goalID {
			s.goals[i] = *g
			break
		}
	}
	return g, nil
}

func (s *Store) DeleteGoal(ctx context.Context, goalID string) error {
	if err := s.client.DeleteGoal(ctx, goalID); err != nil {
		s.setErr(err)
		return err
	}

	s.goalMu.Lock()
	defer s.goalMu.Unlock()
	kept := s.goals[:0]
	for _, g := range s.goals {
		if g.GoalID != goalID {
			kept = append(kept, g)
		}
	}
	s.goals = kept
	return nil
}

func (s *Store) AddGoalProgress(ctx context.Context, goalID string, amount float64) (*models.Goal, error) {
	g, err := s.client.AddGoalProgress(ctx, goalID, dto.AddGoalProgressRequest{Amount: amount})
	if err != nil {
		s.setErr(err)
		return nil, err
	}

	s.goalMu.Lock()
	defer s.goalMu.Unlock()
	for i := range s.goals {
		if s.goals[i].GoalID == goalID {
			s.goals[i] = *g
			break
		}
	}
	return g, nil
}
