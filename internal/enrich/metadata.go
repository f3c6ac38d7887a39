package enrich

import (
	"context"

	"github.com/nao1215/phonescan/internal/model"
	"github.com/nao1215/phonescan/internal/numbering"
)

// MetadataSource surfaces the metadata engine's own annotations (carrier
// mapping, time zones, region code) as an enrichment payload. Unlike the
// prefix tables these come from the upstream numbering-plan data set, so
// the two can disagree for ported numbers.
type MetadataSource struct {
	formatter *numbering.Formatter
}

// NewMetadataSource creates a MetadataSource backed by the given formatter.
func NewMetadataSource(formatter *numbering.Formatter) *MetadataSource {
	return &MetadataSource{formatter: formatter}
}

// Name returns the source name.
func (s *MetadataSource) Name() string {
	return "numbering_metadata"
}

// Enrich returns the metadata engine's annotations for the number.
// A zero-value number yields no payload.
func (s *MetadataSource) Enrich(_ context.Context, p model.ParsedNumber) (map[string]any, error) {
	if p.IsZero() {
		return nil, nil
	}

	payload := make(map[string]any)
	if carrier := s.formatter.CarrierName(p); carrier != "" {
		payload["carrier"] = carrier
	}
	if region := s.formatter.CarrierRegion(p); region != "" {
		payload["region_code"] = region
	}
	if zones := s.formatter.Timezones(p); len(zones) > 0 {
		payload["timezones"] = zones
	}
	if len(payload) == 0 {
		return nil, nil
	}
	return payload, nil
}
