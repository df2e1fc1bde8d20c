// Command pincode builds the pincode artifacts from data/pincode.json.
//
//	clean   deduplicated list, first occurrence wins  -> data/pincode_cleaned.json
//	map     pincode -> {city, state}, last one wins    -> data/pincode_map.json
//	all     clean, then map
//	export  cleaned list as CSV and XLSX
//	seed    upsert the map into the pincodes table
//	upload  push generated artifacts to S3
//	lookup  PINCODE
//	zone    ORIGIN DESTINATION
//
// Usage: go run ./cmd/pincode clean
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"nexgen/internal/artifact"
	"nexgen/internal/config"
	"nexgen/internal/domain"
	"nexgen/internal/pincode"
	"nexgen/internal/repository/postgres"
	"nexgen/internal/service"
	s3storage "nexgen/internal/storage/s3"
)

const usage = "Usage: pincode [clean|map|all|export|seed|upload|lookup PINCODE|zone ORIGIN DESTINATION]"

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}
	if err := run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd string, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	switch cmd {
	case "clean":
		service.NewPipelineService(&cfg.Paths).Run(ctx, domain.ModeList)
	case "map":
		service.NewPipelineService(&cfg.Paths).Run(ctx, domain.ModeMap)
	case "all":
		pipeline := service.NewPipelineService(&cfg.Paths)
		pipeline.Run(ctx, domain.ModeList)
		pipeline.Run(ctx, domain.ModeMap)
	case "export":
		if _, err := service.NewExportService(&cfg.Paths).Export(ctx); err != nil {
			return err
		}
	case "seed":
		return seed(ctx, cfg)
	case "upload":
		return upload(ctx, cfg)
	case "lookup":
		if len(args) != 1 {
			return fmt.Errorf("lookup requires a pincode argument\n%s", usage)
		}
		return lookup(ctx, cfg, args[0])
	case "zone":
		if len(args) != 2 {
			return fmt.Errorf("zone requires origin and destination pincodes\n%s", usage)
		}
		return zone(ctx, cfg, args[0], args[1])
	default:
		fmt.Printf("unknown command: %s\n", cmd)
		fmt.Println(usage)
		os.Exit(1)
	}
	return nil
}

func seed(ctx context.Context, cfg *config.Config) error {
	locations, err := artifact.ReadMap(cfg.Paths.MapPath())
	if err != nil {
		return fmt.Errorf("loading pincode map: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	repo := postgres.NewPincodeRepo(db)
	n, err := service.NewSeedService(repo, cfg.Seed.BatchSize).Seed(ctx, locations)
	if err != nil {
		return err
	}

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	log.Printf("Seed complete: %d pincodes upserted, %d in table", n, count)
	return nil
}

func upload(ctx context.Context, cfg *config.Config) error {
	storage, err := s3storage.NewS3Client(ctx, &cfg.S3)
	if err != nil {
		return fmt.Errorf("initializing S3 client: %w", err)
	}

	uploaded, err := service.NewUploadService(storage, &cfg.S3).UploadArtifacts(ctx, cfg.Paths.Artifacts())
	if err != nil {
		return err
	}
	for _, a := range uploaded {
		if a.URL != "" {
			fmt.Printf("%s\t%s\n", a.Key, a.URL)
		}
	}
	log.Printf("Upload complete: %d artifacts", len(uploaded))
	return nil
}

func newPincodeService(cfg *config.Config) (service.PincodeService, error) {
	locations, err := artifact.ReadMap(cfg.Paths.MapPath())
	if err != nil {
		return nil, fmt.Errorf("loading pincode map: %w", err)
	}
	return service.NewPincodeService(pincode.NewDirectory(locations), nil), nil
}

func lookup(ctx context.Context, cfg *config.Config, pin string) error {
	svc, err := newPincodeService(cfg)
	if err != nil {
		return err
	}
	loc, err := svc.Lookup(ctx, pin)
	if err != nil {
		return err
	}
	fmt.Printf("%s\t%s\t%s\n", loc.Pincode, loc.City, loc.State)
	return nil
}

func zone(ctx context.Context, cfg *config.Config, origin, destination string) error {
	svc, err := newPincodeService(cfg)
	if err != nil {
		return err
	}
	res, err := svc.Zone(ctx, origin, destination)
	if err != nil {
		return err
	}
	fmt.Printf("zone %s\n", res.Zone)
	return nil
}
