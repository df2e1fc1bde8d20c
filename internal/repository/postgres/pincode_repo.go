package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"nexgen/internal/domain"
	"nexgen/internal/port"
)

type pincodeRepo struct {
	db *sqlx.DB
}

// NewPincodeRepo creates a new PostgreSQL-backed PincodeRepository.
func NewPincodeRepo(db *sqlx.DB) port.PincodeRepository {
	return &pincodeRepo{db: db}
}

// UpsertBatch inserts rows in a single multi-row statement. Pincodes within
// one batch must be distinct.
func (r *pincodeRepo) UpsertBatch(ctx context.Context, rows []port.PincodeRow) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO pincodes (pincode, city, state)
		 VALUES (:pincode, :city, :state)
		 ON CONFLICT (pincode) DO UPDATE
		 SET city = EXCLUDED.city, state = EXCLUDED.state, updated_at = NOW()`, rows)
	if err != nil {
		return fmt.Errorf("upserting %d pincodes: %w", len(rows), err)
	}
	return nil
}

func (r *pincodeRepo) GetByPincode(ctx context.Context, pincode string) (*port.PincodeRow, error) {
	var row port.PincodeRow
	err := r.db.GetContext(ctx, &row,
		`SELECT pincode, city, state FROM pincodes WHERE pincode = $1`, pincode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPincodeNotFound
		}
		return nil, fmt.Errorf("getting pincode %s: %w", pincode, err)
	}
	return &row, nil
}

func (r *pincodeRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM pincodes`); err != nil {
		return 0, fmt.Errorf("counting pincodes: %w", err)
	}
	return n, nil
}
