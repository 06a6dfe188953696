package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const fileName = "storage.json"

// FileKV keeps the whole key space in a single JSON file, read and written
// whole on every operation. Single process, single writer; concurrent
// writers are last-write-wins, same as two tabs sharing local storage.
type FileKV struct {
	path string
	log  *zap.Logger
}

// NewFileKV creates dir if needed and returns a store backed by
// dir/storage.json. A nil logger disables logging.
func NewFileKV(dir string, log *zap.Logger) (*FileKV, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileKV{path: filepath.Join(dir, fileName), log: log}, nil
}

func (s *FileKV) Get(key string) (string, bool) {
	v, ok := s.load()[key]
	return v, ok
}

func (s *FileKV) Set(key, value string) {
	m := s.load()
	m[key] = value
	s.save(m)
}

func (s *FileKV) Remove(key string) {
	m := s.load()
	if _, ok := m[key]; !ok {
		return
	}
	delete(m, key)
	s.save(m)
}

func (s *FileKV) Clear() {
	s.save(map[string]string{})
}

// load reads the backing file. Absence or a corrupt file yields an empty
// map; the caller sees empty state rather than an error.
func (s *FileKV) load() map[string]string {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("storage read failed", zap.String("path", s.path), zap.Error(err))
		}
		return map[string]string{}
	}
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		s.log.Warn("storage blob corrupt, starting empty", zap.String("path", s.path), zap.Error(err))
		return map[string]string{}
	}
	if m == nil {
		m = map[string]string{}
	}
	return m
}

func (s *FileKV) save(m map[string]string) {
	b, err := json.Marshal(m)
	if err != nil {
		s.log.Warn("storage marshal failed", zap.Error(err))
		return
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		s.log.Warn("storage write failed", zap.String("path", tmp), zap.Error(err))
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.log.Warn("storage rename failed", zap.String("path", s.path), zap.Error(err))
	}
}
