package kv

import (
	"context"
	"fmt"
	"slices"
	"time"
)

// Las colecciones append-only (movements, sales) se parten por mes: cada registro va a
// "<base>#AAAA-MM" y "<base>_shards" guarda la lista ordenada de particiones.
// Así ningún valor crece sin límite (DynamoDB corta en 400 KB por item).

func shardIndexKey(base string) string { return base + "_shards" }

func shardKey(base string, ts time.Time) string {
	return base + "#" + ts.UTC().Format("2006-01")
}

// appendSharded agrega v a la partición del mes de ts y registra la partición si es nueva.
func appendSharded[T any](ctx context.Context, q Querier, base string, ts time.Time, v *T) error {
	if s, ok := q.(Store); ok {
		return s.Update(ctx, func(tx Querier) error {
			return appendSharded(ctx, tx, base, ts, v)
		})
	}
	shard := shardKey(base, ts)
	shards, err := loadShardIndex(ctx, q, base)
	if err != nil {
		return err
	}
	if !slices.Contains(shards, shard) {
		shards = append(shards, shard)
		slices.Sort(shards)
		if err := q.Set(ctx, shardIndexKey(base), shards); err != nil {
			return fmt.Errorf("kv: escribir %s: %w", shardIndexKey(base), err)
		}
	}
	return mutate(ctx, q, shard, func(list []*T) ([]*T, error) {
		return append(list, v), nil
	})
}

// loadSharded concatena la colección sin partir (datos anteriores) y las particiones
// en orden cronológico.
func loadSharded[T any](ctx context.Context, q Querier, base string) ([]*T, error) {
	out, err := load[T](ctx, q, base)
	if err != nil {
		return nil, err
	}
	shards, err := loadShardIndex(ctx, q, base)
	if err != nil {
		return nil, err
	}
	for _, shard := range shards {
		part, err := load[T](ctx, q, shard)
		if err != nil {
			return nil, err
		}
		out = append(out, part...)
	}
	return out, nil
}

func loadShardIndex(ctx context.Context, q Querier, base string) ([]string, error) {
	var shards []string
	if _, err := q.Get(ctx, shardIndexKey(base), &shards); err != nil {
		return nil, fmt.Errorf("kv: leer %s: %w", shardIndexKey(base), err)
	}
	return shards, nil
}
