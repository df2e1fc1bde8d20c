package port

import "context"

// PincodeRow is a single pincode stored in the lookup table.
type PincodeRow struct {
	Pincode string  `db:"pincode"`
	City    *string `db:"city"`
	State   *string `db:"state"`
}

// PincodeRepository defines the contract for pincode data access.
type PincodeRepository interface {
	UpsertBatch(ctx context.Context, rows []PincodeRow) error
	GetByPincode(ctx context.Context, pincode string) (*PincodeRow, error)
	Count(ctx context.Context) (int, error)
}
