package service_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexgen/internal/config"
	"nexgen/internal/domain"
	"nexgen/internal/service"
)

const duplicateInput = `{"records": [
	{"pincode": 1, "district": "A", "statename": "S1"},
	{"pincode": 1, "district": "B", "statename": "S2"},
	{"pincode": 2, "district": "C", "statename": "S3"}
]}`

func newPaths(t *testing.T) *config.PathsConfig {
	t.Helper()
	return &config.PathsConfig{
		DataDir: t.TempDir(),
		Input:   "pincode.json",
		Cleaned: "pincode_cleaned.json",
		Map:     "pincode_map.json",
		CSV:     "pincode_cleaned.csv",
		XLSX:    "pincode_cleaned.xlsx",
	}
}

func writeInput(t *testing.T, paths *config.PathsConfig, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(paths.InputPath(), []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestPipeline_ListMode_Success(t *testing.T) {
	paths := newPaths(t)
	writeInput(t, paths, duplicateInput)

	report := service.NewPipelineService(paths).Run(context.Background(), domain.ModeList)

	assert.Equal(t, domain.OutcomeSuccess, report.Outcome)
	assert.NoError(t, report.Err)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Unique)
	assert.Equal(t, paths.CleanedPath(), report.OutputPath)

	want := `[
  {
    "pincode": 1,
    "city": "A",
    "state": "S1"
  },
  {
    "pincode": 2,
    "city": "C",
    "state": "S3"
  }
]
`
	assert.Equal(t, want, readFile(t, paths.CleanedPath()))
}

func TestPipeline_MapMode_Success(t *testing.T) {
	paths := newPaths(t)
	writeInput(t, paths, duplicateInput)

	report := service.NewPipelineService(paths).Run(context.Background(), domain.ModeMap)

	assert.Equal(t, domain.OutcomeSuccess, report.Outcome)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Unique)

	out := readFile(t, paths.MapPath())
	assert.JSONEq(t, `{"1":{"city":"B","state":"S2"},"2":{"city":"C","state":"S3"}}`, out)
	assert.True(t, strings.HasPrefix(out, "{\n  \"1\": {\n    \"city\": \"B\",\n"))
}

func TestPipeline_EmptyRecords(t *testing.T) {
	tests := []struct {
		mode domain.Mode
		want string
	}{
		{domain.ModeList, "[]\n"},
		{domain.ModeMap, "{}\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			paths := newPaths(t)
			writeInput(t, paths, `{"records": []}`)

			report := service.NewPipelineService(paths).Run(context.Background(), tt.mode)

			assert.Equal(t, domain.OutcomeNoRecords, report.Outcome)
			assert.Equal(t, tt.want, readFile(t, paths.OutputPath(string(tt.mode))))
		})
	}
}

func TestPipeline_NoOutputOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		input   *string
		outcome domain.RunOutcome
	}{
		{"empty file", strPtr(""), domain.OutcomeEmptyInput},
		{"malformed json", strPtr("{not json"), domain.OutcomeInvalidFormat},
		{"malformed json/leading zero", strPtr(`{"records": [{"pincode": 01, "district": "A"}]}`), domain.OutcomeInvalidFormat},
		{"malformed json/unknown escape", strPtr(`{"records": [{"pincode": "1\q"}]}`), domain.OutcomeInvalidFormat},
		{"malformed json/control character", strPtr("{\"records\": [{\"pincode\": \"11\x01\"}]}"), domain.OutcomeInvalidFormat},
		{"malformed json/nan", strPtr(`{"records": [{"pincode": NaN}]}`), domain.OutcomeInvalidFormat},
		{"non-object record", strPtr(`{"records": [{"pincode": 1, "district": "A"}, "x"]}`), domain.OutcomeFailed},
		{"null record", strPtr(`{"records": [null]}`), domain.OutcomeFailed},
		{"bare array", strPtr(`[{"pincode": 1}]`), domain.OutcomeUnexpectedShape},
		{"missing file", nil, domain.OutcomeNotFound},
	}

	for _, tt := range tests {
		for _, mode := range []domain.Mode{domain.ModeList, domain.ModeMap} {
			t.Run(tt.name+"/"+string(mode), func(t *testing.T) {
				paths := newPaths(t)
				if tt.input != nil {
					writeInput(t, paths, *tt.input)
				}
				outPath := paths.OutputPath(string(mode))
				require.NoError(t, os.WriteFile(outPath, []byte("previous run"), 0o644))

				report := service.NewPipelineService(paths).Run(context.Background(), mode)

				assert.Equal(t, tt.outcome, report.Outcome)
				assert.Empty(t, report.OutputPath)
				assert.Equal(t, "previous run", readFile(t, outPath))
			})
		}
	}
}

func TestPipeline_MissingPincodesSkipped(t *testing.T) {
	paths := newPaths(t)
	writeInput(t, paths, `{"records": [
		{"district": "A", "statename": "S1"},
		{"pincode": null, "district": "B", "statename": "S2"},
		{"pincode": "", "district": "C", "statename": "S3"}
	]}`)
	svc := service.NewPipelineService(paths)

	list := svc.Run(context.Background(), domain.ModeList)
	assert.Equal(t, domain.OutcomeSuccess, list.Outcome)
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, 0, list.Unique)
	assert.Equal(t, "[]\n", readFile(t, paths.CleanedPath()))

	m := svc.Run(context.Background(), domain.ModeMap)
	assert.Equal(t, 0, m.Unique)
	assert.Equal(t, "{}\n", readFile(t, paths.MapPath()))
}

func TestPipeline_Idempotent(t *testing.T) {
	paths := newPaths(t)
	writeInput(t, paths, `{"records": [
		{"pincode": "560001", "district": "Bengaluru", "statename": "KARNATAKA", "extra": {"b": 1, "a": 2}},
		{"pincode": 110001, "district": "New Delhi", "statename": "DELHI"},
		{"pincode": "560001", "district": "Bangalore", "statename": "KARNATAKA"}
	]}`)
	svc := service.NewPipelineService(paths)

	for _, mode := range []domain.Mode{domain.ModeList, domain.ModeMap} {
		svc.Run(context.Background(), mode)
		first := readFile(t, paths.OutputPath(string(mode)))
		svc.Run(context.Background(), mode)
		assert.Equal(t, first, readFile(t, paths.OutputPath(string(mode))), "mode %s", mode)
	}
}

func TestPipeline_WriteFailureReported(t *testing.T) {
	paths := newPaths(t)
	writeInput(t, paths, duplicateInput)
	// A directory where the output file should go makes the write fail.
	require.NoError(t, os.Mkdir(filepath.Join(paths.DataDir, paths.Cleaned), 0o755))

	report := service.NewPipelineService(paths).Run(context.Background(), domain.ModeList)

	assert.Equal(t, domain.OutcomeFailed, report.Outcome)
	assert.Error(t, report.Err)
}

func TestPipeline_CanceledContext(t *testing.T) {
	paths := newPaths(t)
	writeInput(t, paths, duplicateInput)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := service.NewPipelineService(paths).Run(ctx, domain.ModeList)

	assert.Equal(t, domain.OutcomeFailed, report.Outcome)
	assert.ErrorIs(t, report.Err, context.Canceled)
	assert.NoFileExists(t, paths.CleanedPath())
}

func strPtr(s string) *string { return &s }
