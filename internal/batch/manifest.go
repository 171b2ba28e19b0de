package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry represents one rendered image in the output manifest.
type ManifestEntry struct {
	Name   string `json:"name"`
	Source string `json:"source,omitempty"`
	Image  string `json:"image"`
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// WriteManifest writes the successful results as JSON. Image paths are
// made relative to the manifest's directory when possible.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		img := r.Output
		if rel, err := filepath.Rel(dir, r.Output); err == nil {
			img = filepath.ToSlash(rel)
		}
		entries = append(entries, ManifestEntry{
			Name:   r.Name,
			Source: r.Source,
			Image:  img,
			Width:  r.Width,
			Height: r.Height,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("batch: mkdir %s: %w", dir, err)
	}
	return os.WriteFile(path, data, 0644)
}
