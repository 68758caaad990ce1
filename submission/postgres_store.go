package submission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store on a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a submission store on an existing pool. The caller
// owns the pool's lifecycle; run Migrate before first use.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Record persists an accepted submission.
func (s *PostgresStore) Record(ctx context.Context, sub *Submission) error {
	if sub == nil || sub.ID == uuid.Nil || sub.Form == "" {
		return ErrInvalidSubmission
	}

	values, err := json.Marshal(sub.Values)
	if err != nil {
		return fmt.Errorf("marshal submission %s values: %w", sub.ID, err)
	}
	meta, err := json.Marshal(sub.Meta)
	if err != nil {
		return fmt.Errorf("marshal submission %s meta: %w", sub.ID, err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO submissions (id, form, data, meta, received_at) VALUES ($1, $2, $3, $4, $5)`,
		sub.ID, sub.Form, values, meta, sub.ReceivedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: %s", ErrDuplicateID, sub.ID)
		}
		return fmt.Errorf("record submission %s: %w", sub.ID, err)
	}
	return nil
}

// Get retrieves a submission by ID.
func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*Submission, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, form, data, meta, received_at FROM submissions WHERE id = $1`,
		id,
	)

	sub, err := scanSubmission(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get submission %s: %w", id, err)
	}
	return sub, nil
}

// List returns submissions for a form, newest first.
func (s *PostgresStore) List(ctx context.Context, form string, limit, offset int) ([]Submission, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, form, data, meta, received_at FROM submissions
		 WHERE form = $1 ORDER BY received_at DESC LIMIT $2 OFFSET $3`,
		form, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list submissions for %s: %w", form, err)
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("list submissions for %s: %w", form, err)
		}
		out = append(out, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list submissions for %s: %w", form, err)
	}
	return out, nil
}

func scanSubmission(row pgx.Row) (*Submission, error) {
	var (
		sub    Submission
		values []byte
		meta   []byte
	)
	if err := row.Scan(&sub.ID, &sub.Form, &values, &meta, &sub.ReceivedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(values, &sub.Values); err != nil {
		return nil, fmt.Errorf("unmarshal values: %w", err)
	}
	if err := json.Unmarshal(meta, &sub.Meta); err != nil {
		return nil, fmt.Errorf("unmarshal meta: %w", err)
	}
	return &sub, nil
}
