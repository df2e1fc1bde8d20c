package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nexgen/internal/domain"
	"nexgen/internal/pincode"
	"nexgen/internal/port"
	"nexgen/internal/service"
	"nexgen/mocks"
)

func strP(s string) *string { return &s }

func newPincodeService(repo port.PincodeRepository) service.PincodeService {
	return service.NewPincodeService(pincode.NewDirectory(sampleLocations()), repo)
}

func TestPincodeService_Lookup_FromDirectory(t *testing.T) {
	svc := newPincodeService(nil)

	loc, err := svc.Lookup(context.Background(), "110001")

	require.NoError(t, err)
	assert.Equal(t, "New Delhi", loc.City)
	assert.Equal(t, "Delhi", loc.State)
}

func TestPincodeService_Lookup_NotFoundWithoutRepo(t *testing.T) {
	svc := newPincodeService(nil)

	loc, err := svc.Lookup(context.Background(), "999999")

	assert.Nil(t, loc)
	assert.ErrorIs(t, err, domain.ErrPincodeNotFound)
}

func TestPincodeService_Lookup_FallsBackToRepo(t *testing.T) {
	repo := new(mocks.MockPincodeRepo)
	svc := newPincodeService(repo)

	repo.On("GetByPincode", mock.Anything, "600001").
		Return(&port.PincodeRow{Pincode: "600001", City: strP("CHENNAI"), State: strP("TAMIL NADU")}, nil)

	loc, err := svc.Lookup(context.Background(), "600001")

	require.NoError(t, err)
	assert.Equal(t, &domain.PincodeLocation{Pincode: "600001", City: "Chennai", State: "Tamil Nadu"}, loc)
	repo.AssertExpectations(t)
}

func TestPincodeService_Lookup_InvalidSkipsRepo(t *testing.T) {
	repo := new(mocks.MockPincodeRepo)
	svc := newPincodeService(repo)

	_, err := svc.Lookup(context.Background(), "12")

	assert.ErrorIs(t, err, domain.ErrInvalidPincode)
	repo.AssertNotCalled(t, "GetByPincode", mock.Anything, mock.Anything)
}

func TestPincodeService_Zone(t *testing.T) {
	m := pincode.NewLocationMap()
	m.Set("400001", domain.Location{City: "MUMBAI", State: "MAHARASHTRA"})
	m.Set("700001", domain.Location{City: "KOLKATA", State: "WEST BENGAL"})
	svc := service.NewPincodeService(pincode.NewDirectory(m), nil)

	res, err := svc.Zone(context.Background(), "400001", "700001")

	require.NoError(t, err)
	assert.Equal(t, domain.ZoneC, res.Zone)
	assert.Equal(t, "Kolkata", res.Destination.City)
}

func TestPincodeService_Zone_UnknownFallsBackToD(t *testing.T) {
	svc := newPincodeService(nil)

	res, err := svc.Zone(context.Background(), "110001", "999999")

	require.NoError(t, err)
	assert.Equal(t, domain.ZoneD, res.Zone)
	assert.Nil(t, res.Destination)
}

func TestPincodeService_Zone_Invalid(t *testing.T) {
	svc := newPincodeService(nil)

	_, err := svc.Zone(context.Background(), "110001", "abc")

	assert.ErrorIs(t, err, domain.ErrInvalidPincode)
}
