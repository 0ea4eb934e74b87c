// Package storage manages the on-disk artifacts: the raw collection JSON,
// the lightweight summary JSON, and the CSV export. All writes are atomic
// (temporary file plus rename) so an interrupted operation never leaves a
// truncated artifact in place.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	errs "swarmscraper/pkg/errors"
	"swarmscraper/pkg/foursquare"
)

// Manager handles artifact reads and writes under a single data directory
type Manager struct {
	dataDir        string
	collectionFile string
	summaryFile    string
}

// NewManager creates a storage manager rooted at dataDir, creating the
// directory if needed
func NewManager(dataDir, collectionFile, summaryFile string) (*Manager, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if collectionFile == "" {
		collectionFile = "all_checkins.json"
	}
	if summaryFile == "" {
		summaryFile = "checkins_summary.json"
	}

	return &Manager{
		dataDir:        dataDir,
		collectionFile: collectionFile,
		summaryFile:    summaryFile,
	}, nil
}

// CollectionPath returns the path of the raw collection artifact
func (m *Manager) CollectionPath() string {
	return filepath.Join(m.dataDir, m.collectionFile)
}

// SummaryPath returns the path of the summary artifact
func (m *Manager) SummaryPath() string {
	return filepath.Join(m.dataDir, m.summaryFile)
}

// SaveCollection writes the raw collection artifact atomically
func (m *Manager) SaveCollection(col *foursquare.Collection) error {
	data, err := json.MarshalIndent(col, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection: %w", err)
	}
	return m.WriteFileAtomic(m.CollectionPath(), data)
}

// SaveSummaries writes the summary artifact atomically
func (m *Manager) SaveSummaries(summaries []foursquare.Summary) error {
	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summaries: %w", err)
	}
	return m.WriteFileAtomic(m.SummaryPath(), data)
}

// LoadCollection reads the raw collection artifact. A missing file is a
// typed not-found error telling the user to run the download step first.
// A bare JSON array (the shape older exports used) is accepted as well.
func (m *Manager) LoadCollection() (*foursquare.Collection, error) {
	return LoadCollectionFile(m.CollectionPath())
}

// LoadCollectionFile reads a collection from an explicit path
func LoadCollectionFile(path string) (*foursquare.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errs.Error{
				Type:    errs.ErrorTypeNotFound,
				Message: fmt.Sprintf("no check-in data at %s - run 'swarmscraper download' first", path),
			}
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var col foursquare.Collection
	if err := json.Unmarshal(data, &col); err == nil && len(col.Checkins) > 0 {
		return &col, nil
	}

	// Fall back to a bare array of check-ins
	var items []foursquare.CheckIn
	if err := json.Unmarshal(data, &items); err == nil {
		return &foursquare.Collection{
			TotalCheckins: len(items),
			Checkins:      items,
		}, nil
	}

	// Neither shape parsed; an empty object-form collection is still valid
	if err := json.Unmarshal(data, &col); err != nil {
		return nil, &errs.Error{
			Type:    errs.ErrorTypeParsing,
			Message: fmt.Sprintf("failed to parse %s: %v", path, err),
		}
	}
	return &col, nil
}

// WriteFileAtomic writes data to path via a temporary file and rename, so
// the destination is either fully written or untouched
func (m *Manager) WriteFileAtomic(path string, data []byte) error {
	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile) // Clean up temp file
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
