package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nao1215/phonescan/internal/model"
)

// openTestDB opens a HistoryDB in a temporary directory.
func openTestDB(t *testing.T) *HistoryDB {
	t.Helper()

	hdb, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if err := hdb.Close(); err != nil {
			t.Errorf("failed to close database: %v", err)
		}
	})
	return hdb
}

// sampleReport builds a filled-in report for storage tests.
func sampleReport(input, e164 string) *model.AnalysisReport {
	report := model.NewAnalysisReport(input)
	report.Number = model.NumberDetail{
		National:      "0812-3456-7890",
		International: "+62 812-3456-7890",
		E164:          e164,
		LocalPrefix:   "812",
		Cleaned:       "081234567890",
		Category:      model.CategoryRegularMobile,
	}
	report.Validation = model.ValidationResult{
		IsValid:        true,
		IsPossible:     true,
		NumberType:     model.NumberTypeMobile,
		NumberTypeText: model.NumberTypeMobile.String(),
	}
	report.Provider = model.ProviderDetail{
		Identity: model.ProviderIdentity{Name: "Telkomsel", NetworkType: model.NetworkTypeGSM},
	}
	report.Location = model.LocationDetail{
		Country:     "Indonesia",
		CountryCode: "+62",
		Region:      "Papua",
	}
	return report
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database", func(t *testing.T) {
		t.Parallel()

		hdb := openTestDB(t)
		if hdb == nil {
			t.Fatal("expected database handle")
		}
	})

	t.Run("missing database without create", func(t *testing.T) {
		t.Parallel()

		opts := Options{CreateIfNotExists: false, EnableWAL: true}
		if _, err := Open(t.TempDir(), opts); err == nil {
			t.Error("expected error for missing database")
		}
	})
}

func TestHistoryDB_AppendAndGetHistory(t *testing.T) {
	t.Parallel()

	hdb := openTestDB(t)
	ctx := context.Background()

	report := sampleReport("+6281234567890", "+6281234567890")
	if err := hdb.Append(ctx, report); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	// A second analysis of the same number appends, never overwrites.
	second := sampleReport("+6281234567890", "+6281234567890")
	second.AnalyzedAt = report.AnalyzedAt.Add(time.Minute)
	if err := hdb.Append(ctx, second); err != nil {
		t.Fatalf("failed to append second record: %v", err)
	}

	records, err := hdb.GetHistory(ctx, "+6281234567890")
	if err != nil {
		t.Fatalf("failed to get history: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	// Newest first.
	if !records[0].Timestamp.After(records[1].Timestamp) {
		t.Error("expected records ordered newest first")
	}

	first := records[1]
	if first.PhoneNumber != "+6281234567890" {
		t.Errorf("expected record keyed by original input, got %s", first.PhoneNumber)
	}
	if first.Provider != "Telkomsel" {
		t.Errorf("expected provider Telkomsel, got %s", first.Provider)
	}
	if first.Location != "Papua" {
		t.Errorf("expected location Papua, got %s", first.Location)
	}
	if !first.Valid {
		t.Error("expected valid record")
	}
	if first.Category != "Regular Mobile" {
		t.Errorf("expected category Regular Mobile, got %s", first.Category)
	}
	if first.Report == nil {
		t.Fatal("expected full report to be stored")
	}
	if first.Report.Number.E164 != "+6281234567890" {
		t.Errorf("expected E164 preserved in report, got %s", first.Report.Number.E164)
	}
}

// TestHistoryDB_AppendSubSecondTimestamps verifies that two analyses
// within the same second keep distinct, correctly ordered timestamps.
func TestHistoryDB_AppendSubSecondTimestamps(t *testing.T) {
	t.Parallel()

	hdb := openTestDB(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	first := sampleReport("+6281234567890", "+6281234567890")
	first.AnalyzedAt = base.Add(100 * time.Microsecond)
	second := sampleReport("+6281234567890", "+6281234567890")
	second.AnalyzedAt = base.Add(200 * time.Microsecond)

	if err := hdb.Append(ctx, first); err != nil {
		t.Fatalf("failed to append: %v", err)
	}
	if err := hdb.Append(ctx, second); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	records, err := hdb.GetHistory(ctx, "+6281234567890")
	if err != nil {
		t.Fatalf("failed to get history: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	if !records[1].Timestamp.Equal(first.AnalyzedAt) {
		t.Errorf("expected sub-second precision preserved, got %v", records[1].Timestamp)
	}
	if !records[0].Timestamp.After(records[1].Timestamp) {
		t.Error("expected same-second appends ordered by sub-second timestamp")
	}
}

// TestHistoryDB_AppendAfterClose verifies that a storage fault surfaces
// as ErrAppendFailed so callers can warn and keep the report.
func TestHistoryDB_AppendAfterClose(t *testing.T) {
	t.Parallel()

	hdb, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := hdb.Close(); err != nil {
		t.Fatalf("failed to close database: %v", err)
	}

	err = hdb.Append(context.Background(), sampleReport("+6281234567890", "+6281234567890"))
	if !errors.Is(err, ErrAppendFailed) {
		t.Errorf("expected ErrAppendFailed, got %v", err)
	}
}

func TestHistoryDB_AppendUnparseableNumber(t *testing.T) {
	t.Parallel()

	hdb := openTestDB(t)
	ctx := context.Background()

	report := model.NewAnalysisReport("garbage input")
	report.Validation = model.WorstCaseValidation()
	report.ErrorMessage = "malformed phone number input"

	if err := hdb.Append(ctx, report); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	records, err := hdb.GetHistory(ctx, "garbage input")
	if err != nil {
		t.Fatalf("failed to get history: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Valid {
		t.Error("expected invalid record")
	}
}

func TestHistoryDB_ListNumbers(t *testing.T) {
	t.Parallel()

	hdb := openTestDB(t)
	ctx := context.Background()

	if err := hdb.Append(ctx, sampleReport("+6281234567890", "+6281234567890")); err != nil {
		t.Fatalf("failed to append: %v", err)
	}
	if err := hdb.Append(ctx, sampleReport("+6281234567890", "+6281234567890")); err != nil {
		t.Fatalf("failed to append: %v", err)
	}
	if err := hdb.Append(ctx, sampleReport("+6289912345678", "+6289912345678")); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	numbers, err := hdb.ListNumbers(ctx)
	if err != nil {
		t.Fatalf("failed to list numbers: %v", err)
	}

	if len(numbers) != 2 {
		t.Fatalf("expected 2 distinct numbers, got %v", numbers)
	}
	if numbers[0] != "+6281234567890" || numbers[1] != "+6289912345678" {
		t.Errorf("expected sorted distinct numbers, got %v", numbers)
	}
}

func TestHistoryDB_GetRecordByID(t *testing.T) {
	t.Parallel()

	hdb := openTestDB(t)
	ctx := context.Background()

	if err := hdb.Append(ctx, sampleReport("+6281234567890", "+6281234567890")); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	records, err := hdb.GetHistory(ctx, "+6281234567890")
	if err != nil {
		t.Fatalf("failed to get history: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	record, err := hdb.GetRecordByID(ctx, records[0].ID)
	if err != nil {
		t.Fatalf("failed to get record by id: %v", err)
	}
	if record == nil {
		t.Fatal("expected record")
	}
	if record.PhoneNumber != "+6281234567890" {
		t.Errorf("expected +6281234567890, got %s", record.PhoneNumber)
	}

	missing, err := hdb.GetRecordByID(ctx, 99999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing record")
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		zero  bool
	}{
		{name: "rfc3339", input: "2026-08-28T10:30:00Z"},
		{name: "rfc3339 with nanoseconds", input: "2026-08-28T10:30:00.123456789Z"},
		{name: "sqlite default", input: "2026-08-28 10:30:00"},
		{name: "garbage", input: "not a timestamp", zero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseTimestamp(tt.input)
			if tt.zero != got.IsZero() {
				t.Errorf("expected zero=%v, got %v", tt.zero, got)
			}
		})
	}
}
