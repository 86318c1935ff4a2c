package kv

import (
	"context"
	"fmt"
)

// load lee la colección completa; una clave inexistente es una colección vacía.
func load[T any](ctx context.Context, q Querier, key string) ([]*T, error) {
	var list []*T
	if _, err := q.Get(ctx, key, &list); err != nil {
		return nil, fmt.Errorf("kv: leer %s: %w", key, err)
	}
	return list, nil
}

// mutate aplica fn sobre la colección y la reescribe completa.
// Si q es un Store abre su propia transacción; si ya es una tx, participa de ella.
func mutate[T any](ctx context.Context, q Querier, key string, fn func([]*T) ([]*T, error)) error {
	if s, ok := q.(Store); ok {
		return s.Update(ctx, func(tx Querier) error {
			return mutate(ctx, tx, key, fn)
		})
	}
	list, err := load[T](ctx, q, key)
	if err != nil {
		return err
	}
	list, err = fn(list)
	if err != nil {
		return err
	}
	if err := q.Set(ctx, key, list); err != nil {
		return fmt.Errorf("kv: escribir %s: %w", key, err)
	}
	return nil
}

func indexOf[T any](list []*T, match func(*T) bool) int {
	for i, v := range list {
		if match(v) {
			return i
		}
	}
	return -1
}
