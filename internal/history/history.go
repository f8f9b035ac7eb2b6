// Package history keeps the list of recently searched tracking numbers and
// mirrors it to a storage.Store on every change.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/glabrego/cargonav/internal/storage"
	"github.com/glabrego/cargonav/internal/tracking"
)

const (
	// StorageKey is the store key holding the JSON array of searches.
	StorageKey = "recentTrackingSearches"
	// MaxEntries caps the list; older searches are evicted first.
	MaxEntries = 5

	storeTimeout = 2 * time.Second
)

var (
	ErrPersistenceRead  = errors.New("read search history")
	ErrPersistenceWrite = errors.New("write search history")
)

// Push returns a new list with q first, any earlier copy of q dropped and the
// result capped at MaxEntries. entries is not modified.
func Push(entries []tracking.Query, q tracking.Query) []tracking.Query {
	out := make([]tracking.Query, 0, min(len(entries)+1, MaxEntries))
	out = append(out, q)
	for _, e := range entries {
		if len(out) == MaxEntries {
			break
		}
		if e == q {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Without returns a new list with every copy of q removed.
func Without(entries []tracking.Query, q tracking.Query) []tracking.Query {
	out := make([]tracking.Query, 0, len(entries))
	for _, e := range entries {
		if e != q {
			out = append(out, e)
		}
	}
	return out
}

// Recent is the in-memory search history, most recent first. It is owned by
// a single UI loop and is not safe for concurrent use.
type Recent struct {
	store   storage.Store
	logger  *zap.Logger
	entries []tracking.Query
}

func New(store storage.Store, logger *zap.Logger) *Recent {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recent{store: store, logger: logger}
}

// Open builds a Recent and loads the persisted list into it.
func Open(store storage.Store, logger *zap.Logger) *Recent {
	r := New(store, logger)
	r.entries = r.Load()
	return r
}

// Entries returns a copy of the current list.
func (r *Recent) Entries() []tracking.Query {
	return append([]tracking.Query(nil), r.entries...)
}

func (r *Recent) Len() int { return len(r.entries) }

func (r *Recent) Add(q tracking.Query) []tracking.Query {
	r.entries = Push(r.entries, q)
	r.Save(r.entries)
	return r.Entries()
}

// Remove drops q. Removing an absent query leaves the list unchanged but
// still persists it.
func (r *Recent) Remove(q tracking.Query) []tracking.Query {
	r.entries = Without(r.entries, q)
	r.Save(r.entries)
	return r.Entries()
}

func (r *Recent) Clear() {
	r.entries = nil
	r.Save(r.entries)
}

// Load reads the persisted list. A missing, unreadable or malformed value
// yields an empty list; the failure is only logged.
func (r *Recent) Load() []tracking.Query {
	if r.store == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	raw, ok, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		r.logger.Warn("search history unavailable, starting empty",
			zap.String("key", StorageKey),
			zap.Error(fmt.Errorf("%w: %w", ErrPersistenceRead, err)))
		return nil
	}
	if !ok {
		return nil
	}
	entries, err := decode(raw)
	if err != nil {
		r.logger.Warn("search history malformed, starting empty",
			zap.String("key", StorageKey),
			zap.Error(fmt.Errorf("%w: %w", ErrPersistenceRead, err)))
		return nil
	}
	return entries
}

// Save writes entries to the store. Failures are logged and otherwise
// ignored; the in-memory list stays authoritative for the session.
func (r *Recent) Save(entries []tracking.Query) {
	if r.store == nil {
		return
	}
	data, err := encode(entries)
	if err != nil {
		r.logger.Warn("encode search history", zap.Error(fmt.Errorf("%w: %w", ErrPersistenceWrite, err)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := r.store.Set(ctx, StorageKey, data); err != nil {
		r.logger.Warn("search history not saved",
			zap.String("key", StorageKey),
			zap.Int("entries", len(entries)),
			zap.Error(fmt.Errorf("%w: %w", ErrPersistenceWrite, err)))
		return
	}
	r.logger.Debug("search history saved", zap.Int("entries", len(entries)))
}

func encode(entries []tracking.Query) (string, error) {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.String()
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decode accepts any JSON array of strings. Entries stored by older builds are
// kept as-is; the list is re-capped so a hand-edited value cannot exceed
// MaxEntries.
func decode(raw string) ([]tracking.Query, error) {
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, err
	}
	entries := make([]tracking.Query, 0, min(len(values), MaxEntries))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if len(entries) == MaxEntries {
			break
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		entries = append(entries, tracking.Query(v))
	}
	return entries, nil
}
