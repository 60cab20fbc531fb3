package cart

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// StoreName is the fixed namespace carts are persisted under.
const StoreName = "halo-cart-storage"

// Persistence loads and saves one session's cart lines. Implementations
// must tolerate a missing slot on Load by returning an empty list.
type Persistence interface {
	Load(sessionKey string) ([]Item, error)
	Save(sessionKey string, items []Item) error
}

// FileStore keeps one JSON file per session under dir/StoreName.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	root := filepath.Join(dir, StoreName)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: root}, nil
}

func (s *FileStore) Load(sessionKey string) ([]Item, error) {
	data, err := os.ReadFile(s.path(sessionKey))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *FileStore) Save(sessionKey string, items []Item) error {
	if items == nil {
		items = []Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(sessionKey), data, 0o644)
}

func (s *FileStore) path(sessionKey string) string {
	return filepath.Join(s.dir, sessionKey+".json")
}

// NoopStore is used when no durable storage is available; carts then live
// only in memory for the process lifetime.
type NoopStore struct{}

func (NoopStore) Load(string) ([]Item, error) { return nil, nil }
func (NoopStore) Save(string, []Item) error   { return nil }

// Manager hands out one cart per session key, loading it from persistence
// on first access and flushing after every mutation. The mutex guards the
// registry; each cart guards its own lines.
type Manager struct {
	mu    sync.Mutex
	store Persistence
	carts map[string]*Cart
}

func NewManager(store Persistence) *Manager {
	if store == nil {
		store = NoopStore{}
	}
	return &Manager{
		store: store,
		carts: make(map[string]*Cart),
	}
}

// Get returns the session's cart, loading persisted lines on first use.
func (m *Manager) Get(sessionKey string) (*Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.carts[sessionKey]; ok {
		return c, nil
	}
	items, err := m.store.Load(sessionKey)
	if err != nil {
		return nil, err
	}
	c := &Cart{items: items}
	m.carts[sessionKey] = c
	return c, nil
}

// Flush writes the session's current lines back to persistence.
func (m *Manager) Flush(sessionKey string) error {
	m.mu.Lock()
	c, ok := m.carts[sessionKey]
	m.mu.Unlock()
	if !ok {
		return nil
	}
	return m.store.Save(sessionKey, c.Items())
}
