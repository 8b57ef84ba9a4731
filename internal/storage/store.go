package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

type Storer[T ValidatingSpec] interface {
	Save(string, T) error
	Get(string) T
	GetAll() map[string]T
}

// FileStore loads a directory of catalog assets keyed by identifier.
// Assets may be authored as JSON or YAML; both decode through the same
// json-tagged structs.
type FileStore[T ValidatingSpec] struct {
	path    string
	records map[string]T

	mu sync.RWMutex
}

func NewFileStore[T ValidatingSpec](path string) (*FileStore[T], error) {
	s := &FileStore[T]{
		path:    path,
		records: map[string]T{},
	}

	err := s.load()
	if err != nil {
		return nil, err
	}

	return s, nil
}

func assetExt(path string) string {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", ".yml", ".yaml":
		return ext
	default:
		return ""
	}
}

func (s *FileStore[T]) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Clear existing records when loading
	s.records = map[string]T{}

	return filepath.Walk(s.path, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if info.IsDir() || assetExt(path) == "" {
			return nil
		}

		asset, err := s.loadAsset(path)
		if err != nil {
			return err
		}

		err = asset.Validate()
		if err != nil {
			return fmt.Errorf("validating %s: %w", filepath.Base(path), err)
		}

		// Error if the key is already in use
		id := string(NormalizeId(string(asset.Id())))
		if _, ok := s.records[id]; ok {
			return fmt.Errorf("duplicate key detected: %s", id)
		}

		s.records[id] = asset.Spec
		return nil
	})
}

func (s *FileStore[T]) loadAsset(path string) (*Asset[T], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	// YAML assets are bridged through JSON so one set of struct tags and
	// custom unmarshallers serves both formats.
	if ext := assetExt(path); ext == ".yml" || ext == ".yaml" {
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("unmarshalling yaml: %w", err)
		}
		data, err = json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("re-encoding yaml: %w", err)
		}
	}

	asset := &Asset[T]{}
	err = json.Unmarshal(data, asset)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling asset: %w", err)
	}

	return asset, nil
}

func (s *FileStore[T]) Save(id string, o T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Update cached value
	s.records[id] = o

	// Save asset to file
	asset := &Asset[T]{
		Version:    1,
		Identifier: Identifier(id),
		Spec:       o,
	}

	jsonData, err := json.Marshal(asset)
	if err != nil {
		return fmt.Errorf("marshalling json: %w", err)
	}

	return AtomicWrite(s.filePath(id), jsonData, 0644)
}

// AtomicWrite writes data to a temp file then renames it to the target path.
// This prevents partial or empty files if the process is interrupted.
func AtomicWrite(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil {
			slog.Warn("failed to remove temp file after rename failure", "path", tmp, "error", removeErr)
		}
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

func (s *FileStore[T]) Get(id string) T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.records[id]
	if !ok {
		// Missing catalog data degrades to the caller's fallback rather
		// than failing the session.
		var nilVal T
		return nilVal
	}

	return val
}

func (s *FileStore[T]) GetAll() map[string]T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vals := map[string]T{}
	for id, v := range s.records {
		vals[id] = v
	}

	return vals
}

func (s *FileStore[T]) filePath(id string) string {
	return filepath.Join(s.path, fmt.Sprintf("%s.json", id))
}
