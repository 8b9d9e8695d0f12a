package trash

import (
	"fmt"
	"sync"
	"time"

	"github.com/vvka-141/extscan/pkg/extscan"
)

// Store is the part of an in-memory filesystem the Memory trash moves files out of.
type Store interface {
	Remove(path string) ([]byte, error)
	AddFileBytes(path string, content []byte)
}

// Memory is an in-memory trash for tests. With a Store, trashed files are
// removed from it and can be restored; without one, only calls are recorded.
type Memory struct {
	mu       sync.Mutex
	store    Store
	failures map[string]error
	records  []extscan.TrashRecord
	contents map[string][]byte
}

// NewMemory creates an in-memory trash over store (which may be nil).
func NewMemory(store Store) *Memory {
	return &Memory{
		store:    store,
		failures: map[string]error{},
		contents: map[string][]byte{},
	}
}

// FailOn makes Trash(path) return err.
func (m *Memory) FailOn(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[path] = err
}

func (m *Memory) Trash(path string) (extscan.TrashRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.failures[path]; ok {
		return extscan.TrashRecord{}, err
	}

	var content []byte
	if m.store != nil {
		c, err := m.store.Remove(path)
		if err != nil {
			return extscan.TrashRecord{}, fmt.Errorf("%w: %s: %v", extscan.ErrDeleteFailed, path, err)
		}
		content = c
	}

	rec := extscan.TrashRecord{
		OriginalPath: path,
		TrashedPath:  fmt.Sprintf("memory-trash/%d/%s", len(m.records), path),
		DeletedAt:    time.Now(),
	}
	m.records = append(m.records, rec)
	m.contents[rec.TrashedPath] = content
	return rec, nil
}

// Trashed returns the original paths in the order they were trashed.
func (m *Memory) Trashed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, len(m.records))
	for i, r := range m.records {
		paths[i] = r.OriginalPath
	}
	return paths
}

// Content returns what was trashed under rec.
func (m *Memory) Content(rec extscan.TrashRecord) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.contents[rec.TrashedPath]
	return c, ok
}

// Restore puts a trashed file back into the store.
func (m *Memory) Restore(rec extscan.TrashRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.contents[rec.TrashedPath]
	if !ok {
		return fmt.Errorf("%s is not in the trash", rec.OriginalPath)
	}
	if m.store != nil {
		m.store.AddFileBytes(rec.OriginalPath, content)
	}
	delete(m.contents, rec.TrashedPath)
	return nil
}

var _ extscan.Trasher = (*Memory)(nil)
