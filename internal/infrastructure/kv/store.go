// Package kv implementa los repositorios del dominio sobre un almacén clave-valor con
// una clave por colección (items, movements, users, ...) y valores JSON.
// Cada mutación lee la colección completa, la modifica y la reescribe; dentro de
// Store.Update todas las escrituras se confirman juntas o ninguna. movements y sales
// se parten por mes (ver shard.go).
package kv

import "context"

// Colecciones persistidas. El Store puede anteponer un prefijo (ver WithPrefix).
const (
	KeyItems       = "items"
	KeyMovements   = "movements"
	KeyUsers       = "users"
	KeySales       = "sales"
	KeyCustomers   = "customers"
	KeyTasks       = "tasks"
	KeyAdjustments = "adjustments"
	KeySettings    = "settings"
)

// Querier lectura/escritura de documentos JSON. Lo implementan el Store (autocommit)
// y la transacción que recibe el callback de Update.
type Querier interface {
	// Get decodifica el valor en dst. Devuelve false si la clave no existe.
	Get(ctx context.Context, key string, dst any) (bool, error)
	// Set codifica value y lo guarda en key.
	Set(ctx context.Context, key string, value any) error
}

// Store almacén con transacciones. Dentro de fn solo debe usarse el Querier recibido;
// las lecturas ven las escrituras propias aún no confirmadas.
type Store interface {
	Querier
	Update(ctx context.Context, fn func(tx Querier) error) error
	Close() error
}
