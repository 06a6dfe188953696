package storage

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Sneha-8765/task-manager/internal/domain"
)

// Keys mirror the entries the original frontend kept in local storage.
const (
	usersKey = "mockUsers"
	tasksKey = "mockTasks"
	tokenKey = "token"
)

// Store reads and writes the user and task collections as whole JSON blobs
// in a KV, plus the bearer token as a raw string. Reads fail soft: an
// absent or unparseable blob comes back as an empty collection.
type Store struct {
	kv  KV
	log *zap.Logger
}

// New returns a Store over kv. A nil logger disables logging.
func New(kv KV, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{kv: kv, log: log}
}

// Users returns the stored user collection, empty if absent or corrupt.
func (s *Store) Users() []domain.User {
	var users []domain.User
	if !s.read(usersKey, &users) || users == nil {
		return []domain.User{}
	}
	return users
}

// SaveUsers overwrites the whole user collection.
func (s *Store) SaveUsers(users []domain.User) {
	s.write(usersKey, users)
}

// Tasks returns the stored task collection, empty if absent or corrupt.
func (s *Store) Tasks() []domain.Task {
	var tasks []domain.Task
	if !s.read(tasksKey, &tasks) || tasks == nil {
		return []domain.Task{}
	}
	return tasks
}

// SaveTasks overwrites the whole task collection.
func (s *Store) SaveTasks(tasks []domain.Task) {
	s.write(tasksKey, tasks)
}

// Token returns the persisted bearer token, or "" if none.
func (s *Store) Token() string {
	v, _ := s.kv.Get(tokenKey)
	return v
}

// SetToken persists the bearer token. Stored raw, not JSON-wrapped.
func (s *Store) SetToken(token string) {
	s.kv.Set(tokenKey, token)
}

// RemoveToken drops the persisted bearer token.
func (s *Store) RemoveToken() {
	s.kv.Remove(tokenKey)
}

// Reset clears both record collections. The token entry is left alone.
func (s *Store) Reset() {
	s.kv.Remove(usersKey)
	s.kv.Remove(tasksKey)
}

// read reports whether the blob was present and fully decoded. Callers
// discard partial decodes and fall back to empty state.
func (s *Store) read(key string, out any) bool {
	raw, ok := s.kv.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.log.Debug("stored blob unreadable, treating as empty", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Store) write(key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("marshal failed, blob unchanged", zap.String("key", key), zap.Error(err))
		return
	}
	s.kv.Set(key, string(b))
}
