package override

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/trikaaldarshi/Geeta-wisdom/internal/gita"
)

// StorageKey is the fixed key the override document lives under.
const StorageKey = "gita_custom_verses"

// Backend is durable key-value storage holding whole documents.
type Backend interface {
	// GetItem returns ok=false when nothing is stored under key.
	GetItem(ctx context.Context, key string) (value []byte, ok bool, err error)
	SetItem(ctx context.Context, key string, value []byte) error
}

// Entry is one override as listed for admin browsing.
type Entry struct {
	gita.VerseID
	Content gita.VerseRecord `json:"content"`
}

// Store is the persistent override store. Reads fail soft: an unreadable or
// corrupt document is logged and treated as empty.
type Store struct {
	backend Backend
	logger  *zap.Logger
	mu      sync.RWMutex
}

// NewStore creates a store over backend.
func NewStore(backend Backend, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{backend: backend, logger: logger}
}

func (s *Store) read(ctx context.Context) (*document, error) {
	raw, ok, err := s.backend.GetItem(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gita.ErrStorageRead, err)
	}
	if !ok {
		return newDocument(), nil
	}
	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gita.ErrStorageRead, err)
	}
	return doc, nil
}

// load reads the document, absorbing read errors.
func (s *Store) load(ctx context.Context) *document {
	doc, err := s.read(ctx)
	if err != nil {
		s.logger.Warn("override storage unreadable, using empty set", zap.Error(err))
		return newDocument()
	}
	return doc
}

// loadForWrite reads the document a mutation starts from. A failed backend read
// is returned so the stored document is never overwritten from an empty one; a
// document that cannot be decoded is reset.
func (s *Store) loadForWrite(ctx context.Context) (*document, error) {
	raw, ok, err := s.backend.GetItem(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gita.ErrStorageRead, err)
	}
	if !ok {
		return newDocument(), nil
	}
	doc, err := decodeDocument(raw)
	if err != nil {
		s.logger.Warn("override document is corrupt, starting a new one", zap.Error(err))
		return newDocument(), nil
	}
	return doc, nil
}

func (s *Store) write(ctx context.Context, doc *document) error {
	raw, err := doc.encode()
	if err != nil {
		return fmt.Errorf("encode overrides: %w", err)
	}
	if err := s.backend.SetItem(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("write overrides: %w", err)
	}
	return nil
}

// Get returns the override for id.
func (s *Store) Get(ctx context.Context, id gita.VerseID) (gita.VerseRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load(ctx).get(id.Key())
}

// Upsert replaces the whole record stored for id.
func (s *Store) Upsert(ctx context.Context, id gita.VerseID, rec gita.VerseRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.loadForWrite(ctx)
	if err != nil {
		return err
	}
	doc.set(id.Key(), rec)
	return s.write(ctx, doc)
}

// Delete removes the override for id. Deleting a missing id is not an error.
func (s *Store) Delete(ctx context.Context, id gita.VerseID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.loadForWrite(ctx)
	if err != nil {
		return err
	}
	if !doc.remove(id.Key()) {
		return nil
	}
	return s.write(ctx, doc)
}

// ListAll returns every override in document order. Keys that are not
// "<chapter>-<verse>" are skipped.
func (s *Store) ListAll(ctx context.Context) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc := s.load(ctx)
	entries := make([]Entry, 0, len(doc.keys))
	for _, key := range doc.keys {
		id, err := gita.ParseKey(key)
		if err != nil {
			s.logger.Warn("skipping override with malformed key", zap.String("key", key))
			continue
		}
		entries = append(entries, Entry{VerseID: id, Content: doc.records[key]})
	}
	return entries
}

// Export returns the raw persisted document.
func (s *Store) Export(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return doc.encode()
}

// ErrInvalidDocument is returned by Import for input that is not an override document.
var ErrInvalidDocument = errors.New("invalid override document")

// Import merges an exported document into the store. With replace set, existing
// overrides are discarded first. It returns the number of entries imported.
func (s *Store) Import(ctx context.Context, raw []byte, replace bool) (int, error) {
	incoming, err := decodeDocument(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	for _, key := range incoming.keys {
		if _, err := gita.ParseKey(key); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := newDocument()
	if !replace {
		if doc, err = s.loadForWrite(ctx); err != nil {
			return 0, err
		}
	}
	for _, key := range incoming.keys {
		doc.set(key, incoming.records[key])
	}
	if err := s.write(ctx, doc); err != nil {
		return 0, err
	}
	return len(incoming.keys), nil
}
