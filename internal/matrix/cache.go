package matrix

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Cache file names inside the cache directory.
const (
	recipeCacheFile     = "recipe_similarity.json"
	ingredientCacheFile = "ingredient_similarity.json"
	tagCacheFile        = "tag_similarity.json"
)

// Cache persists similarity matrices as JSON files in one directory.
// A missing file is not an error: Load just returns a nil matrix.
type Cache struct {
	dir string
	mu  sync.Mutex
}

// NewCache creates the cache directory if needed.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// LoadSet loads all cached matrices. Missing files yield nil fields.
func (c *Cache) LoadSet() (*Set, error) {
	recipe, err := c.load(recipeCacheFile)
	if err != nil {
		return nil, err
	}
	ingredient, err := c.load(ingredientCacheFile)
	if err != nil {
		return nil, err
	}
	tag, err := c.load(tagCacheFile)
	if err != nil {
		return nil, err
	}
	return &Set{Recipe: recipe, Ingredient: ingredient, Tag: tag}, nil
}

// SaveSet writes every non-nil matrix of s to disk.
func (c *Cache) SaveSet(s *Set) error {
	if s == nil {
		return nil
	}
	if err := c.save(recipeCacheFile, s.Recipe); err != nil {
		return err
	}
	if err := c.save(ingredientCacheFile, s.Ingredient); err != nil {
		return err
	}
	return c.save(tagCacheFile, s.Tag)
}

// Clear removes all cache files. Missing files are ignored.
func (c *Cache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, name := range []string{recipeCacheFile, ingredientCacheFile, tagCacheFile} {
		if err := os.Remove(filepath.Join(c.dir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove cache file %s: %w", name, err)
		}
	}
	return nil
}

func (c *Cache) load(name string) (*Matrix, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(c.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache file %s: %w", name, err)
	}

	var rows map[string]map[string]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse cache file %s: %w", name, err)
	}

	m := New()
	for a, row := range rows {
		for b, sim := range row {
			m.set(a, b, sim)
		}
	}
	return m, nil
}

func (c *Cache) save(name string, m *Matrix) error {
	if m == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := json.MarshalIndent(m.rowsCopy(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode matrix %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(c.dir, name), data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file %s: %w", name, err)
	}
	return nil
}
