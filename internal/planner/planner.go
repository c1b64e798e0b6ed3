// Package planner integrates externally-generated study suggestions.
package planner

import (
	"encoding/json"
	"os"

	"github.com/blackwell-systems/studypulse/internal/recommend"
)

// FileSource reads planner-proposed suggestions from a JSON file exported
// by an external scheduler. It satisfies recommend.Source; the
// recommendation engine treats any failure here as "no suggestions".
type FileSource struct {
	Path string
}

// NewFileSource creates a source for the given suggestions file. An empty
// path yields a source that never produces suggestions.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Suggestions parses the suggestions file. A missing or empty path yields
// (nil, nil).
func (s *FileSource) Suggestions(_ *recommend.Context) ([]recommend.ExternalSuggestion, error) {
	if s == nil || s.Path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var suggestions []recommend.ExternalSuggestion
	if err := json.Unmarshal(data, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}
