package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"nexgen/internal/config"
	"nexgen/internal/domain"
	"nexgen/internal/port"
)

// UploadedArtifact describes one artifact stored in object storage.
type UploadedArtifact struct {
	Path     string
	Key      string
	Location string
	URL      string
}

// UploadService publishes generated artifacts to object storage.
type UploadService interface {
	UploadArtifacts(ctx context.Context, paths []string) ([]UploadedArtifact, error)
}

type uploadService struct {
	storage port.ObjectStorage
	cfg     *config.S3Config
}

// NewUploadService creates a new UploadService implementation.
func NewUploadService(storage port.ObjectStorage, cfg *config.S3Config) UploadService {
	return &uploadService{storage: storage, cfg: cfg}
}

var artifactContentTypes = map[string]string{
	".json": "application/json",
	".csv":  "text/csv; charset=utf-8",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// UploadArtifacts uploads each file under the configured key prefix.
// Artifacts that have not been generated yet are skipped.
func (s *uploadService) UploadArtifacts(ctx context.Context, paths []string) ([]UploadedArtifact, error) {
	var uploaded []UploadedArtifact
	for _, p := range paths {
		a, err := s.upload(ctx, p)
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("WARN: skipping %s: not generated", p)
			continue
		}
		if err != nil {
			return uploaded, err
		}
		uploaded = append(uploaded, *a)
	}
	return uploaded, nil
}

func (s *uploadService) upload(ctx context.Context, p string) (*UploadedArtifact, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", p, err)
	}

	contentType, ok := artifactContentTypes[strings.ToLower(filepath.Ext(p))]
	if !ok {
		contentType = "application/octet-stream"
	}
	key := path.Join(s.cfg.Prefix, filepath.Base(p))

	out, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        f,
		ContentType: contentType,
		Size:        info.Size(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUploadFailed, key, err)
	}

	a := &UploadedArtifact{Path: p, Key: key, Location: out.Location}
	if s.cfg.PresignExpiry > 0 {
		url, err := s.storage.GetPresignedURL(ctx, s.cfg.Bucket, key, s.cfg.PresignExpiry)
		if err != nil {
			log.Printf("WARN: presign %s: %v", key, err)
		} else {
			a.URL = url
		}
	}
	log.Printf("Uploaded %s to s3://%s/%s", p, s.cfg.Bucket, key)
	return a, nil
}
