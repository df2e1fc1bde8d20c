package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"nexgen/internal/domain"
	"nexgen/internal/pincode"
	"nexgen/internal/port"
)

// PincodeService resolves pincodes to locations and shipping zones.
type PincodeService interface {
	Lookup(ctx context.Context, pin string) (*domain.PincodeLocation, error)
	Zone(ctx context.Context, origin, destination string) (*domain.ZoneResult, error)
}

type pincodeService struct {
	directory *pincode.Directory
	repo      port.PincodeRepository
}

// NewPincodeService creates a new PincodeService implementation. repo is
// consulted when a pincode is missing from the directory and may be nil.
func NewPincodeService(directory *pincode.Directory, repo port.PincodeRepository) PincodeService {
	return &pincodeService{directory: directory, repo: repo}
}

func (s *pincodeService) Lookup(ctx context.Context, pin string) (*domain.PincodeLocation, error) {
	loc, err := s.directory.Lookup(pin)
	if errors.Is(err, domain.ErrPincodeNotFound) && s.repo != nil {
		loc, err = s.lookupRepo(ctx, pin)
	}
	if errors.Is(err, domain.ErrPincodeNotFound) {
		log.Printf("WARN: pincode not found: %s", pin)
	}
	return loc, err
}

func (s *pincodeService) lookupRepo(ctx context.Context, pin string) (*domain.PincodeLocation, error) {
	row, err := s.repo.GetByPincode(ctx, pin)
	if err != nil {
		return nil, err
	}
	return &domain.PincodeLocation{
		Pincode: row.Pincode,
		City:    pincode.TitleCase(lowerPtr(row.City)),
		State:   pincode.TitleCase(lowerPtr(row.State)),
	}, nil
}

// Zone classifies the route between two pincodes. Unknown pincodes do not
// fail the request; they fall back to zone D.
func (s *pincodeService) Zone(ctx context.Context, origin, destination string) (*domain.ZoneResult, error) {
	for _, p := range []string{origin, destination} {
		if err := pincode.ValidatePincode(p); err != nil {
			return nil, err
		}
	}

	from, err := s.Lookup(ctx, origin)
	if err != nil && !errors.Is(err, domain.ErrPincodeNotFound) {
		return nil, err
	}
	to, err := s.Lookup(ctx, destination)
	if err != nil && !errors.Is(err, domain.ErrPincodeNotFound) {
		return nil, err
	}

	return &domain.ZoneResult{
		Zone:        pincode.ClassifyZone(from, to),
		Origin:      from,
		Destination: to,
	}, nil
}

func lowerPtr(s *string) string {
	if s == nil {
		return ""
	}
	return strings.ToLower(*s)
}
