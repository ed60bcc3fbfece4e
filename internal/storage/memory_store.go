package storage

import "context"

// MemoryStore is an in-memory BlobStore used by tests and embedded setups
// that do not want a database file on disk.
type MemoryStore struct {
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: map[string][]byte{}}
}

func (m *MemoryStore) Load(ctx context.Context, key string) ([]byte, error) {
	value, ok := m.blobs[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemoryStore) Save(ctx context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	m.blobs[key] = stored
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	delete(m.blobs, key)
	return nil
}

func (m *MemoryStore) Cleanup() {
	m.blobs = map[string][]byte{}
}
