package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/nao1215/phonescan/internal/model"
)

// FileSource reads pre-resolved enrichment payloads from a JSON file.
// The file maps source names to payload objects, optionally nested under
// E.164 numbers so one file can serve a whole batch:
//
//	{
//	  "+6281234567890": {
//	    "reputation": {"spam_score": 10}
//	  }
//	}
//
// A file without the number-keyed level is treated as payloads for every
// number.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the source name.
func (s *FileSource) Name() string {
	return "file"
}

// Enrich reads the file and returns the payloads for the number.
func (s *FileSource) Enrich(_ context.Context, p model.ParsedNumber) (map[string]any, error) {
	data, err := os.ReadFile(s.path) //nolint:gosec // User-provided enrichment path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read enrichment file: %w", err)
	}

	var byNumber map[string]map[string]any
	if err := json.Unmarshal(data, &byNumber); err != nil {
		return nil, fmt.Errorf("failed to parse enrichment file: %w", err)
	}

	e164 := fmt.Sprintf("+%d%d", p.CountryCode(), p.NationalNumber())
	if payload, ok := byNumber[e164]; ok {
		return payload, nil
	}

	// No number-keyed entry. If no key looks like a number, treat the
	// top level as payloads shared by every number.
	for key := range byNumber {
		if len(key) > 0 && key[0] == '+' {
			return nil, nil
		}
	}

	shared := make(map[string]any, len(byNumber))
	for name, payload := range byNumber {
		shared[name] = payload
	}
	if len(shared) == 0 {
		return nil, nil
	}
	return shared, nil
}

// StaticSource returns a fixed payload for every number. It exists for
// wiring pre-resolved data and for tests.
type StaticSource struct {
	name    string
	payload map[string]any
}

// NewStaticSource creates a StaticSource with the given name and payload.
func NewStaticSource(name string, payload map[string]any) *StaticSource {
	return &StaticSource{name: name, payload: payload}
}

// Name returns the source name.
func (s *StaticSource) Name() string {
	return s.name
}

// Enrich returns the fixed payload.
func (s *StaticSource) Enrich(_ context.Context, _ model.ParsedNumber) (map[string]any, error) {
	return s.payload, nil
}
