package service

import (
	"context"
	"log"

	"nexgen/internal/artifact"
	"nexgen/internal/config"
	"nexgen/internal/domain"
	"nexgen/internal/pincode"
)

// PipelineService turns the raw pincode dataset into one of the derived artifacts.
type PipelineService interface {
	// Run executes load -> classify -> transform -> write for mode. Every
	// terminal state is reported through the returned RunReport; none of them
	// is returned as an error.
	Run(ctx context.Context, mode domain.Mode) *domain.RunReport
}

type pipelineService struct {
	paths *config.PathsConfig
}

// NewPipelineService creates a new PipelineService implementation.
func NewPipelineService(paths *config.PathsConfig) PipelineService {
	return &pipelineService{paths: paths}
}

func (s *pipelineService) Run(ctx context.Context, mode domain.Mode) *domain.RunReport {
	report := &domain.RunReport{
		Mode:       mode,
		InputPath:  s.paths.InputPath(),
		OutputPath: s.paths.OutputPath(string(mode)),
	}
	report.Err = s.run(ctx, report)
	report.Outcome = domain.OutcomeFor(report.Err)
	if !report.Outcome.WroteOutput() {
		report.OutputPath = ""
	}
	logReport(report)
	return report
}

func (s *pipelineService) run(ctx context.Context, report *domain.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := pincode.ReadInput(report.InputPath)
	if err != nil {
		return err
	}
	doc, err := pincode.Parse(content)
	if err != nil {
		return err
	}

	records, err := doc.Records()
	if err != nil {
		if domain.OutcomeFor(err) == domain.OutcomeNoRecords {
			if werr := artifact.WriteJSON(report.OutputPath, emptyArtifact(report.Mode)); werr != nil {
				return werr
			}
		}
		return err
	}

	var out any
	switch report.Mode {
	case domain.ModeMap:
		res := pincode.BuildMap(records)
		report.Total, report.Unique = res.Total, res.Unique()
		out = res.Locations
	default:
		res := pincode.Dedupe(records)
		report.Total, report.Unique = res.Total, res.Unique
		out = res.Entries
	}

	return artifact.WriteJSON(report.OutputPath, out)
}

func emptyArtifact(mode domain.Mode) any {
	if mode == domain.ModeMap {
		return pincode.NewLocationMap()
	}
	return []domain.PincodeEntry{}
}

// logReport prints the one diagnostic line (two on success) for a terminal state.
func logReport(r *domain.RunReport) {
	switch r.Outcome {
	case domain.OutcomeSuccess:
		if r.Mode == domain.ModeMap {
			log.Printf("Successfully mapped %d records to %d unique pincodes.", r.Total, r.Unique)
			log.Printf("Pincode map saved to: %s", r.OutputPath)
			return
		}
		log.Printf("Successfully stripped %d records down to %d unique pincode records.", r.Total, r.Unique)
		log.Printf("Cleaned data saved to: %s", r.OutputPath)
	case domain.OutcomeEmptyInput:
		log.Printf("Input file is empty.")
	case domain.OutcomeNoRecords:
		what := "an empty list"
		if r.Mode == domain.ModeMap {
			what = "an empty map"
		}
		log.Printf("No 'records' found in the JSON data. Writing %s to %s", what, r.OutputPath)
	case domain.OutcomeUnexpectedShape:
		log.Printf("WARN: Input file appears to be in an unexpected format (%v). No changes made.", r.Err)
	case domain.OutcomeInvalidFormat:
		log.Printf("Error: Could not decode JSON. The file might be corrupted or not in the expected format.")
	case domain.OutcomeNotFound:
		log.Printf("Error: The file was not found at %s", r.InputPath)
	default:
		log.Printf("An error occurred: %v", r.Err)
	}
}
