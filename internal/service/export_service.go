package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"nexgen/internal/artifact"
	"nexgen/internal/config"
	"nexgen/internal/csvexport"
	"nexgen/internal/domain"
)

// ExportResult describes the files written by an export.
type ExportResult struct {
	Rows     int
	CSVPath  string
	XLSXPath string
}

// ExportService renders the cleaned list artifact in spreadsheet-friendly formats.
type ExportService interface {
	Export(ctx context.Context) (*ExportResult, error)
}

type exportService struct {
	paths *config.PathsConfig
}

// NewExportService creates a new ExportService implementation.
func NewExportService(paths *config.PathsConfig) ExportService {
	return &exportService{paths: paths}
}

func (s *exportService) Export(ctx context.Context) (*ExportResult, error) {
	entries, err := artifact.ReadList(s.paths.CleanedPath())
	if err != nil {
		return nil, fmt.Errorf("loading cleaned list: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	csvPath := s.paths.CSVPath()
	if err := writeCSV(csvPath, entries); err != nil {
		return nil, err
	}
	log.Printf("Exported %d rows to %s", len(entries), csvPath)

	xlsxPath := s.paths.XLSXPath()
	if err := csvexport.WriteWorkbook(xlsxPath, entries); err != nil {
		return nil, fmt.Errorf("export workbook: %w", err)
	}
	log.Printf("Exported %d rows to %s", len(entries), xlsxPath)

	return &ExportResult{Rows: len(entries), CSVPath: csvPath, XLSXPath: xlsxPath}, nil
}

// writeCSV writes the BOM-prefixed CSV export. The file is closed before
// returning so a failed close is reported.
func writeCSV(path string, entries []domain.PincodeEntry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}

	if err := writeCSVRows(out, entries); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close csv file: %w", err)
	}
	return nil
}

func writeCSVRows(out io.Writer, entries []domain.PincodeEntry) error {
	if _, err := out.Write(csvexport.BOM); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}
	w := csvexport.NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteEntries(entries); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
