package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"nexgen/internal/port"
)

// MockPincodeRepo is a mock implementation of port.PincodeRepository.
type MockPincodeRepo struct {
	mock.Mock
}

func (m *MockPincodeRepo) UpsertBatch(ctx context.Context, rows []port.PincodeRow) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

func (m *MockPincodeRepo) GetByPincode(ctx context.Context, pincode string) (*port.PincodeRow, error) {
	args := m.Called(ctx, pincode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.PincodeRow), args.Error(1)
}

func (m *MockPincodeRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
