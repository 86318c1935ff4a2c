// Package dynamodb implementa el driver DynamoDB del almacén clave-valor.
//
// Tabla:
//   - PK: key (string)
//   - value: JSON de la colección
//   - version: contador para la concurrencia optimista
//
// Update confirma todas las escrituras con TransactWriteItems condicionado a la versión leída.
package dynamodb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jhoicas/logos-estoque/internal/infrastructure/kv"
)

const tableWaitTimeout = 2 * time.Minute

// maxValueBytes deja margen bajo los 400 KB por item para key y version.
const maxValueBytes = 390 * 1024

type record struct {
	Key     string `dynamodbav:"key"`
	Value   string `dynamodbav:"value"`
	Version int64  `dynamodbav:"version"`
}

var _ kv.Store = (*Store)(nil)

// Store kv.Store sobre una tabla DynamoDB.
type Store struct {
	ddb   *dynamodb.Client
	table string
}

// NewStore construye el driver para la tabla indicada.
func NewStore(ddb *dynamodb.Client, table string) *Store {
	return &Store{ddb: ddb, table: table}
}

// EnsureTable crea la tabla (PAY_PER_REQUEST) si no existe y espera a que esté activa.
func (s *Store) EnsureTable(ctx context.Context) error {
	_, err := s.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.table)})
	if err == nil {
		return nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return fmt.Errorf("dynamodb: describir %s: %w", s.table, err)
	}
	_, err = s.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(s.table),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("key"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("key"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return fmt.Errorf("dynamodb: crear %s: %w", s.table, err)
	}
	waiter := dynamodb.NewTableExistsWaiter(s.ddb)
	return waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.table)}, tableWaitTimeout)
}

func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	rec, err := s.read(ctx, key)
	if err != nil || rec == nil {
		return false, err
	}
	if err := decode(rec, dst); err != nil {
		return false, err
	}
	return true, nil
}

// Set escribe en una transacción propia para mantener el contador de versión.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	return s.Update(ctx, func(tx kv.Querier) error {
		return tx.Set(ctx, key, value)
	})
}

// Update ejecuta fn y confirma las escrituras juntas. Si otra escritura cambió una
// versión leída, DynamoDB cancela la transacción y no se aplica nada.
func (s *Store) Update(ctx context.Context, fn func(tx kv.Querier) error) error {
	tx := &dynamoTx{store: s, versions: make(map[string]int64), staged: make(map[string][]byte)}
	if err := fn(tx); err != nil {
		return err
	}
	if len(tx.staged) == 0 {
		return nil
	}
	items := make([]types.TransactWriteItem, 0, len(tx.staged))
	for key, raw := range tx.staged {
		if _, seen := tx.versions[key]; !seen {
			if _, err := tx.observe(ctx, key); err != nil {
				return err
			}
		}
		put, err := s.conditionalPut(key, raw, tx.versions[key])
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{Put: put})
	}
	_, err := s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			return fmt.Errorf("dynamodb: conflicto de escritura concurrente: %w", err)
		}
		return fmt.Errorf("dynamodb: transact write: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return nil }

// conditionalPut escribe la versión prev+1 si la versión guardada sigue siendo prev.
// Cada condición declara solo los nombres y valores que usa: DynamoDB rechaza los sobrantes.
func (s *Store) conditionalPut(key string, raw []byte, prev int64) (*types.Put, error) {
	if len(raw) > maxValueBytes {
		return nil, fmt.Errorf("dynamodb: %s ocupa %d bytes, el límite por item es %d", key, len(raw), maxValueBytes)
	}
	av, err := attributevalue.MarshalMap(record{Key: key, Value: string(raw), Version: prev + 1})
	if err != nil {
		return nil, fmt.Errorf("dynamodb: codificar %s: %w", key, err)
	}
	put := &types.Put{TableName: aws.String(s.table), Item: av}
	if prev == 0 {
		put.ConditionExpression = aws.String("attribute_not_exists(#k) OR #v = :zero")
		put.ExpressionAttributeNames = map[string]string{"#k": "key", "#v": "version"}
		put.ExpressionAttributeValues = map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
		}
		return put, nil
	}
	put.ConditionExpression = aws.String("#v = :prev")
	put.ExpressionAttributeNames = map[string]string{"#v": "version"}
	put.ExpressionAttributeValues = map[string]types.AttributeValue{
		":prev": &types.AttributeValueMemberN{Value: strconv.FormatInt(prev, 10)},
	}
	return put, nil
}

func (s *Store) read(ctx context.Context, key string) (*record, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodb: get %s: %w", key, err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var rec record
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("dynamodb: decodificar %s: %w", key, err)
	}
	return &rec, nil
}

type dynamoTx struct {
	store    *Store
	versions map[string]int64 // versión leída; 0 = inexistente
	staged   map[string][]byte
}

func (t *dynamoTx) Get(ctx context.Context, key string, dst any) (bool, error) {
	if raw, ok := t.staged[key]; ok {
		if err := json.Unmarshal(raw, dst); err != nil {
			return false, fmt.Errorf("dynamodb: decodificar %s: %w", key, err)
		}
		return true, nil
	}
	rec, err := t.observe(ctx, key)
	if err != nil || rec == nil {
		return false, err
	}
	if err := decode(rec, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (t *dynamoTx) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("dynamodb: codificar %s: %w", key, err)
	}
	t.staged[key] = raw
	return nil
}

// observe lee la clave y guarda su versión para la condición del commit.
func (t *dynamoTx) observe(ctx context.Context, key string) (*record, error) {
	rec, err := t.store.read(ctx, key)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		t.versions[key] = 0
		return nil, nil
	}
	t.versions[key] = rec.Version
	return rec, nil
}

func decode(rec *record, dst any) error {
	if err := json.Unmarshal([]byte(rec.Value), dst); err != nil {
		return fmt.Errorf("dynamodb: decodificar %s: %w", rec.Key, err)
	}
	return nil
}
