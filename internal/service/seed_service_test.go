package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"nexgen/internal/domain"
	"nexgen/internal/pincode"
	"nexgen/internal/port"
	"nexgen/internal/service"
	"nexgen/mocks"
)

func sampleLocations() *pincode.LocationMap {
	m := pincode.NewLocationMap()
	m.Set("110001", domain.Location{City: "New Delhi", State: "DELHI"})
	m.Set("560001", domain.Location{City: "Bengaluru", State: "KARNATAKA"})
	m.Set("403001", domain.Location{City: nil, State: "GOA"})
	return m
}

func TestSeedService_Seed_Batches(t *testing.T) {
	repo := new(mocks.MockPincodeRepo)
	svc := service.NewSeedService(repo, 2)

	repo.On("UpsertBatch", mock.Anything, mock.MatchedBy(func(rows []port.PincodeRow) bool {
		return len(rows) == 2 && rows[0].Pincode == "110001" && *rows[0].City == "New Delhi" &&
			rows[1].Pincode == "560001"
	})).Return(nil).Once()
	repo.On("UpsertBatch", mock.Anything, mock.MatchedBy(func(rows []port.PincodeRow) bool {
		return len(rows) == 1 && rows[0].Pincode == "403001" && rows[0].City == nil && *rows[0].State == "GOA"
	})).Return(nil).Once()

	n, err := svc.Seed(context.Background(), sampleLocations())

	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	repo.AssertExpectations(t)
}

func TestSeedService_Seed_RepoError(t *testing.T) {
	repo := new(mocks.MockPincodeRepo)
	svc := service.NewSeedService(repo, 2)

	repo.On("UpsertBatch", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("UpsertBatch", mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	n, err := svc.Seed(context.Background(), sampleLocations())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "offset 2")
	assert.Equal(t, 2, n)
}

func TestSeedService_Seed_Empty(t *testing.T) {
	repo := new(mocks.MockPincodeRepo)
	svc := service.NewSeedService(repo, 0)

	n, err := svc.Seed(context.Background(), pincode.NewLocationMap())

	assert.NoError(t, err)
	assert.Zero(t, n)
	repo.AssertNotCalled(t, "UpsertBatch", mock.Anything, mock.Anything)
}
