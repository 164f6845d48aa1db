// Package catalog keeps the local copy of the remote media catalog and
// mirrors it to disk.
package catalog

import (
	"fmt"
	"sync"

	"github.com/deepc-skill/deepc/filesystem"
	"github.com/deepc-skill/deepc/media"
	"github.com/metafates/gache"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Document is the catalog in its published form: watch URL to record, in
// document order.
type Document = orderedmap.OrderedMap[string, *media.Record]

// NewDocument returns an empty document.
func NewDocument() *Document {
	return orderedmap.New[string, *media.Record]()
}

// Store is the in-memory catalog backed by a JSON mirror.
//
// Merges are copy-on-write: the new document is persisted first and only
// then becomes visible, so a failed write leaves both the store and the
// mirror untouched.
type Store struct {
	mu      sync.RWMutex
	records *Document
	mirror  *gache.Cache[*Document]
}

// NewStore returns an empty store mirrored at path.
func NewStore(path string) *Store {
	return &Store{
		records: NewDocument(),
		mirror: gache.New[*Document](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

// Load replaces the in-memory catalog with the mirror contents.
// A missing mirror yields an empty catalog. An unreadable one also yields an
// empty catalog, and the decode error is returned for the caller to report.
func (s *Store) Load() error {
	doc, _, err := s.mirror.Get()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.records = NewDocument()
		return fmt.Errorf("read catalog mirror: %w", err)
	}

	s.records = normalize(doc)
	return nil
}

// Merge folds incoming into the catalog and persists the result. Existing
// keys are overwritten in place, new keys are appended. It returns the
// number of keys that were not known before.
func (s *Store) Merge(incoming *Document) (added int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := NewDocument()
	for p := s.records.Oldest(); p != nil; p = p.Next() {
		next.Set(p.Key, p.Value)
	}

	if incoming != nil {
		for p := incoming.Oldest(); p != nil; p = p.Next() {
			r := withKey(p.Key, p.Value)
			if r == nil {
				continue
			}
			if _, present := next.Set(p.Key, r); !present {
				added++
			}
		}
	}

	if err = s.mirror.Set(next); err != nil {
		return 0, fmt.Errorf("write catalog mirror: %w", err)
	}

	s.records = next
	return added, nil
}

// Records returns the catalog in document order.
func (s *Store) Records() []*media.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*media.Record, 0, s.records.Len())
	for p := s.records.Oldest(); p != nil; p = p.Next() {
		records = append(records, p.Value)
	}
	return records
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records.Len()
}

func normalize(doc *Document) *Document {
	out := NewDocument()
	if doc == nil {
		return out
	}
	for p := doc.Oldest(); p != nil; p = p.Next() {
		if r := withKey(p.Key, p.Value); r != nil {
			out.Set(p.Key, r)
		}
	}
	return out
}

// withKey copies r, filling a missing URL from the document key.
func withKey(k string, r *media.Record) *media.Record {
	if r == nil {
		return nil
	}
	c := *r
	if c.URL == "" {
		c.URL = k
	}
	return &c
}
