// Package storage implements the per-origin Web Storage hierarchy:
// origin -> Shelf -> Bucket{local, session} -> Bottle. Bottles live for the
// process lifetime only; nothing is persisted.
package storage

import "github.com/pkg/errors"

// ErrQuotaExceeded reports a Set that would grow a bottle past its quota.
var ErrQuotaExceeded = errors.New("storage: quota exceeded")

// DefaultQuota is the per-bottle byte budget, counted over keys and values.
const DefaultQuota = 5 * 1024 * 1024

// Storage is the root of the hierarchy, keyed by origin. Shelves are created
// on first access. Single-threaded by the execution model of the surrounding
// runtime; no internal locking.
type Storage struct {
	shelves map[string]*Shelf
	quota   int
}

func New() *Storage {
	return NewWithQuota(DefaultQuota)
}

func NewWithQuota(quota int) *Storage {
	return &Storage{
		shelves: map[string]*Shelf{},
		quota:   quota,
	}
}

// Shelf returns the shelf for origin, creating it on first access.
func (s *Storage) Shelf(origin string) *Shelf {
	if shelf, ok := s.shelves[origin]; ok {
		return shelf
	}
	shelf := &Shelf{
		Origin: origin,
		Bucket: Bucket{
			Local:   newBottle(s.quota),
			Session: newBottle(s.quota),
		},
	}
	s.shelves[origin] = shelf
	return shelf
}

type Shelf struct {
	Origin string
	Bucket Bucket
}

// Bucket pairs the two storage areas of an origin.
type Bucket struct {
	Local   *Bottle
	Session *Bottle
}

// Bottle is an insertion-ordered string-to-string map. Keys enumerate in the
// order they were first set; overwriting a key keeps its position.
type Bottle struct {
	keys   []string
	values map[string]string
	quota  int
	used   int
}

func newBottle(quota int) *Bottle {
	return &Bottle{
		values: map[string]string{},
		quota:  quota,
	}
}

func (b *Bottle) Length() int {
	return len(b.keys)
}

// Key returns the index-th key in insertion order.
func (b *Bottle) Key(index int) (string, bool) {
	if index < 0 || index >= len(b.keys) {
		return "", false
	}
	return b.keys[index], true
}

func (b *Bottle) Get(key string) (string, bool) {
	v, ok := b.values[key]
	return v, ok
}

// Set stores value under key. Rewriting a key with its current value is a
// no-op and never fails, even at quota.
func (b *Bottle) Set(key, value string) error {
	old, exists := b.values[key]
	if exists && old == value {
		return nil
	}
	used := b.used + len(value)
	if exists {
		used -= len(old)
	} else {
		used += len(key)
	}
	if used > b.quota {
		return errors.Wrapf(ErrQuotaExceeded, "key %q", key)
	}
	if !exists {
		b.keys = append(b.keys, key)
	}
	b.values[key] = value
	b.used = used
	return nil
}

func (b *Bottle) Remove(key string) {
	old, exists := b.values[key]
	if !exists {
		return
	}
	delete(b.values, key)
	b.used -= len(key) + len(old)
	for i := range b.keys {
		if b.keys[i] == key {
			b.keys = append(b.keys[:i], b.keys[i+1:]...)
			break
		}
	}
}

func (b *Bottle) Clear() {
	b.keys = nil
	b.values = map[string]string{}
	b.used = 0
}
