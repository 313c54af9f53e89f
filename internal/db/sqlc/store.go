package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -package mockdb -destination ../mock/store.go github.com/katatrina/vgvault-BE/internal/db/sqlc Store

// Store provides all functions to execute db queries and transactions.
type Store interface {
	Querier
	Ping(ctx context.Context) error
	PlaceBidTx(ctx context.Context, arg PlaceBidTxParams) (PlaceBidTxResult, error)
	BuyNowTx(ctx context.Context, arg BuyNowTxParams) (BuyNowTxResult, error)
	EndAuctionTx(ctx context.Context, arg EndAuctionTxParams) (EndAuctionTxResult, error)
	EndEarlyTx(ctx context.Context, arg EndEarlyTxParams) (EndEarlyTxResult, error)
	DeleteAuctionTx(ctx context.Context, auctionID uuid.UUID) (DeleteAuctionTxResult, error)
}

type SQLStore struct {
	*Queries
	connPool *pgxpool.Pool
}

// NewStore creates a new Store.
func NewStore(db *pgxpool.Pool) Store {
	return &SQLStore{
		Queries:  New(db),
		connPool: db,
	}
}

// Ping checks if the database connection is alive.
func (store *SQLStore) Ping(ctx context.Context) error {
	return store.connPool.Ping(ctx)
}

// ExecTx executes fn within a database transaction.
// The transaction is rolled back when fn returns an error.
func (store *SQLStore) ExecTx(ctx context.Context, fn func(qTx *Queries) error) error {
	tx, err := store.connPool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	qTx := New(tx)
	if err = fn(qTx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %w, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}
