package service

import (
	"context"
	"fmt"
	"log"

	"nexgen/internal/domain"
	"nexgen/internal/pincode"
	"nexgen/internal/port"
)

// SeedService loads the pincode map into the lookup table.
type SeedService interface {
	Seed(ctx context.Context, locations *pincode.LocationMap) (int, error)
}

type seedService struct {
	repo      port.PincodeRepository
	batchSize int
}

// NewSeedService creates a new SeedService implementation.
func NewSeedService(repo port.PincodeRepository, batchSize int) SeedService {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &seedService{repo: repo, batchSize: batchSize}
}

// Seed upserts every pincode in map order, batchSize rows per statement.
func (s *seedService) Seed(ctx context.Context, locations *pincode.LocationMap) (int, error) {
	keys := locations.Keys()
	total := 0
	for i := 0; i < len(keys); i += s.batchSize {
		end := i + s.batchSize
		if end > len(keys) {
			end = len(keys)
		}

		batch := make([]port.PincodeRow, 0, end-i)
		for _, k := range keys[i:end] {
			loc, _ := locations.Get(k)
			batch = append(batch, port.PincodeRow{
				Pincode: k,
				City:    optionalText(loc.City),
				State:   optionalText(loc.State),
			})
		}

		if err := s.repo.UpsertBatch(ctx, batch); err != nil {
			return total, fmt.Errorf("seed batch at offset %d: %w", i, err)
		}
		total += len(batch)
		log.Printf("Progress: %d/%d pincodes upserted", total, len(keys))
	}
	return total, nil
}

func optionalText(v any) *string {
	if v == nil {
		return nil
	}
	s := domain.TextValue(v)
	return &s
}
