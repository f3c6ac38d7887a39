package enrich

import (
	"context"
	"log/slog"

	"github.com/nao1215/phonescan/internal/model"
)

// Source produces one enrichment payload for a parsed number.
// Implementations own their timeouts; Collect passes the caller's context
// through so cancellation still applies.
type Source interface {
	// Name identifies the source. It becomes the key in the report's
	// enrichment map.
	Name() string

	// Enrich returns the payload for the parsed number. Returning an
	// error skips the source; returning a nil payload with a nil error
	// means the source had nothing to say.
	Enrich(ctx context.Context, p model.ParsedNumber) (map[string]any, error)
}

// Collect runs every source against the parsed number and merges the
// results into the report. Failures are logged at warning level and
// skipped. The core treats payloads as opaque pass-through data.
func Collect(ctx context.Context, logger *slog.Logger, report *model.AnalysisReport, sources ...Source) {
	for _, source := range sources {
		payload, err := source.Enrich(ctx, report.Parsed)
		if err != nil {
			logger.Warn("enrichment source failed",
				slog.String("source", source.Name()),
				slog.String("error", err.Error()))
			continue
		}
		if payload == nil {
			continue
		}
		report.MergeEnrichment(source.Name(), payload)
	}
}
