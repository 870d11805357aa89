package score

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// fileDocument is the on-disk layout of a FileStore
type fileDocument struct {
	Values map[string]string `toml:"values"`
}

// FileStore persists values as a TOML document
// The file is read on first access; every Write rewrites it through a temp file and rename
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
	loaded bool
}

// NewFileStore creates a store backed by path; the file need not exist yet
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the backing file; a missing file yields an empty store
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() error {
	s.values = make(map[string]string)
	s.loaded = true

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "read score file %s", s.path)
	}

	var doc fileDocument
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return errors.Wrapf(err, "decode score file %s", s.path)
	}
	for k, v := range doc.Values {
		s.values[k] = v
	}
	return nil
}

// Read returns the stored value; load failures read as absent
func (s *FileStore) Read(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		_ = s.load()
	}
	v, ok := s.values[key]
	return v, ok
}

// Write stores value and persists the whole document
func (s *FileStore) Write(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		_ = s.load()
	}
	s.values[key] = value
	return s.flush()
}

func (s *FileStore) flush() error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(fileDocument{Values: s.values}); err != nil {
		return errors.Wrap(err, "encode score file")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "create score dir %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".scores-*.toml")
	if err != nil {
		return errors.Wrap(err, "create temp score file")
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "write temp score file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "close temp score file")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "replace score file %s", s.path)
	}
	return nil
}
