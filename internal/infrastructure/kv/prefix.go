package kv

import "context"

// WithPrefix antepone prefix a todas las claves (ej. "logos_" → "logos_items").
func WithPrefix(s Store, prefix string) Store {
	if prefix == "" {
		return s
	}
	return &prefixedStore{inner: s, prefix: prefix}
}

type prefixedStore struct {
	inner  Store
	prefix string
}

func (p *prefixedStore) Get(ctx context.Context, key string, dst any) (bool, error) {
	return p.inner.Get(ctx, p.prefix+key, dst)
}

func (p *prefixedStore) Set(ctx context.Context, key string, value any) error {
	return p.inner.Set(ctx, p.prefix+key, value)
}

func (p *prefixedStore) Update(ctx context.Context, fn func(tx Querier) error) error {
	return p.inner.Update(ctx, func(tx Querier) error {
		return fn(prefixedQuerier{inner: tx, prefix: p.prefix})
	})
}

func (p *prefixedStore) Close() error { return p.inner.Close() }

type prefixedQuerier struct {
	inner  Querier
	prefix string
}

func (q prefixedQuerier) Get(ctx context.Context, key string, dst any) (bool, error) {
	return q.inner.Get(ctx, q.prefix+key, dst)
}

func (q prefixedQuerier) Set(ctx context.Context, key string, value any) error {
	return q.inner.Set(ctx, q.prefix+key, value)
}
