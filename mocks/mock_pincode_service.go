package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"nexgen/internal/domain"
)

// MockPincodeService is a mock implementation of service.PincodeService.
type MockPincodeService struct {
	mock.Mock
}

func (m *MockPincodeService) Lookup(ctx context.Context, pin string) (*domain.PincodeLocation, error) {
	args := m.Called(ctx, pin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PincodeLocation), args.Error(1)
}

func (m *MockPincodeService) Zone(ctx context.Context, origin, destination string) (*domain.ZoneResult, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZoneResult), args.Error(1)
}
