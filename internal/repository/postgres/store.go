package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"recruitment-portal-api/internal/domain"
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx, so the same
// repository code runs pooled or inside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	pool *pgxpool.Pool
	db   DBTX
}

// NewStore creates a pool-backed store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, db: pool}
}

// InTx runs fn against a store bound to a single read-committed transaction.
// The transaction is rolled back when fn returns an error and committed
// otherwise. Row locks taken via the bound repositories are held to the end.
func (s *Store) InTx(ctx context.Context, fn func(domain.Store) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(&Store{pool: s.pool, db: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) Persons() domain.PersonRepository {
	return &personRepo{db: s.db}
}

func (s *Store) Competences() domain.CompetenceRepository {
	return &competenceRepo{db: s.db}
}

func (s *Store) Profiles() domain.ProfileRepository {
	return &profileRepo{db: s.db}
}

func (s *Store) Applications() domain.ApplicationRepository {
	return &applicationRepo{db: s.db}
}
