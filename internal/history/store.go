// Package history persists which recipes were served to a family and when.
// The server folds recent history into a request's cooked set so plans do
// not repeat dishes a family just ate.
package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/manhnguyen41/FoodRecommender/internal/model"
)

// Record is one served dish.
type Record struct {
	FamilyID  string         `json:"family_id"`
	RecipeID  model.RecipeID `json:"recipe_id"`
	Slot      string         `json:"slot"`
	Timestamp int64          `json:"timestamp"`
}

// Store is the meal history interface the server depends on.
type Store interface {
	// Recent returns the recipe ids served to the family within the last
	// N days.
	Recent(familyID string, days int) ([]model.RecipeID, error)
	// Save appends served recipes for the family.
	Save(familyID, slot string, ids []model.RecipeID) error
}

// FileStore is a JSONL-file implementation of Store with an in-memory cache.
type FileStore struct {
	filePath string
	mu       sync.RWMutex
	records  []Record
}

// NewFileStore opens (or creates) the history file at filePath and loads all
// records into memory.
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{filePath: filePath}
	if err := fs.load(); err != nil {
		return nil, err
	}
	return fs, nil
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.filePath, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	s.records = s.records[:0]
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record Record
		if err := json.Unmarshal(line, &record); err != nil {
			// Skip corrupted lines rather than rejecting the whole file.
			continue
		}
		s.records = append(s.records, record)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to scan history file: %w", err)
	}
	return nil
}

// Recent returns the recipe ids served to familyID within the last N days.
func (s *FileStore) Recent(familyID string, days int) ([]model.RecipeID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := time.Now().Unix() - int64(days*24*60*60)

	var result []model.RecipeID
	// Full scan; history files stay small enough after Cleanup.
	for _, r := range s.records {
		if r.FamilyID == familyID && r.Timestamp >= cutoff {
			result = append(result, r.RecipeID)
		}
	}
	return result, nil
}

// Save appends one record per recipe id, writing through to the file.
func (s *FileStore) Save(familyID, slot string, ids []model.RecipeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.filePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open history file for appending: %w", err)
	}
	defer f.Close()

	now := time.Now().Unix()
	encoder := json.NewEncoder(f)
	for _, id := range ids {
		record := Record{
			FamilyID:  familyID,
			RecipeID:  id,
			Slot:      slot,
			Timestamp: now,
		}
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to write history record: %w", err)
		}
		s.records = append(s.records, record)
	}
	return nil
}

// Cleanup drops records older than N days and rewrites the file.
func (s *FileStore) Cleanup(days int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Unix() - int64(days*24*60*60)

	kept := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		if r.Timestamp >= cutoff {
			kept = append(kept, r)
		}
	}

	tmpPath := s.filePath + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp history file: %w", err)
	}
	encoder := json.NewEncoder(f)
	for _, r := range kept {
		if err := encoder.Encode(r); err != nil {
			f.Close()
			return fmt.Errorf("failed to write history record: %w", err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp history file: %w", err)
	}
	if err := os.Rename(tmpPath, s.filePath); err != nil {
		return fmt.Errorf("failed to replace history file: %w", err)
	}

	s.records = kept
	return nil
}
