// Package cachetest fornece um cache.Client em memória para testes.
package cachetest

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"gosupply/internal/pkg/cache"
)

type item struct {
	value     string
	expiresAt time.Time
}

// Fake implementa cache.Client em memória, respeitando TTL.
// Err, quando definido, é devolvido por todas as operações.
type Fake struct {
	mu    sync.Mutex
	items map[string]item
	now   func() time.Time

	Err  error
	Gets int
	Sets int
}

var _ cache.Client = (*Fake)(nil)

// New cria um Fake vazio.
func New() *Fake {
	return &Fake{items: make(map[string]item), now: time.Now}
}

// SetClock substitui o relógio usado na expiração.
func (f *Fake) SetClock(now func() time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = now
}

func (f *Fake) lookup(key string) (item, bool) {
	it, ok := f.items[key]
	if !ok {
		return item{}, false
	}
	if !it.expiresAt.IsZero() && !f.now().Before(it.expiresAt) {
		delete(f.items, key)
		return item{}, false
	}
	return it, true
}

func (f *Fake) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Gets++
	if f.Err != nil {
		return "", f.Err
	}
	it, ok := f.lookup(key)
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return it.value, nil
}

func (f *Fake) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Sets++
	if f.Err != nil {
		return f.Err
	}
	it := item{value: fmt.Sprint(value)}
	if b, ok := value.([]byte); ok {
		it.value = string(b)
	}
	if expiration > 0 {
		it.expiresAt = f.now().Add(expiration)
	}
	f.items[key] = it
	return nil
}

func (f *Fake) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	delete(f.items, key)
	return nil
}

func (f *Fake) Incr(_ context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	it, _ := f.lookup(key)
	n, _ := strconv.ParseInt(it.value, 10, 64)
	n++
	it.value = strconv.FormatInt(n, 10)
	f.items[key] = it
	return n, nil
}

func (f *Fake) Expire(_ context.Context, key string, expiration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	if it, ok := f.lookup(key); ok {
		it.expiresAt = f.now().Add(expiration)
		f.items[key] = it
	}
	return nil
}

func (f *Fake) TTL(_ context.Context, key string) (time.Duration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	it, ok := f.lookup(key)
	switch {
	case !ok:
		return -2, nil
	case it.expiresAt.IsZero():
		return -1, nil
	}
	return it.expiresAt.Sub(f.now()), nil
}

func (f *Fake) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Err
}

// Has indica se a chave está presente e não expirada.
func (f *Fake) Has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.lookup(key)
	return ok
}
