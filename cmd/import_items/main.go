// import_items carga el catálogo inicial desde un CSV exportado de planilla.
//
// Uso: go run ./cmd/import_items [-latin1] ruta/items.csv
// Columnas: ean;nome;categoria;corredor;prateleira;andar;preco_custo;preco_venda;minimo
// El saldo de cada item nace en 0; las entradas se registran después como movimientos.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/logos-estoque/internal/application/dto"
	"github.com/jhoicas/logos-estoque/internal/application/usecase"
	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/infrastructure/kv"
	"github.com/jhoicas/logos-estoque/internal/infrastructure/storage"
	"github.com/jhoicas/logos-estoque/pkg/config"
	"github.com/jhoicas/logos-estoque/pkg/logger"
)

const columns = 9

func main() {
	latin1 := flag.Bool("latin1", false, "el CSV viene en ISO-8859-1 (export de Excel)")
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Uso: import_items [-latin1] items.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	var in io.Reader = f
	if *latin1 {
		in = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacén")
	}
	defer store.Close()

	items := usecase.NewItemUseCase(kv.NewItemRepository(store))
	created, skipped, err := importCSV(ctx, in, items, log)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}
	fmt.Printf("Importados %d items (%d omitidos)\n", created, skipped)
}

func importCSV(ctx context.Context, in io.Reader, items *usecase.ItemUseCase, log *logger.Logger) (created, skipped int, err error) {
	r := csv.NewReader(in)
	r.Comma = ';'
	r.FieldsPerRecord = -1 // el número de columnas se valida por línea en parseRecord
	r.TrimLeadingSpace = true

	line := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return created, skipped, nil
		}
		if err != nil {
			return created, skipped, err
		}
		line++
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "ean") {
			continue
		}
		req, err := parseRecord(rec)
		if err != nil {
			log.Warn().Int("linea", line).Err(err).Msg("línea inválida")
			skipped++
			continue
		}
		item, err := items.Create(ctx, req)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				log.Warn().Int("linea", line).Str("ean", req.EAN).Msg("EAN ya registrado")
				skipped++
				continue
			}
			return created, skipped, fmt.Errorf("línea %d: %w", line, err)
		}
		log.Debug().Str("sku", item.SKU).Str("nome", item.Name).Msg("item creado")
		created++
	}
}

func parseRecord(rec []string) (dto.CreateItemRequest, error) {
	if len(rec) != columns {
		return dto.CreateItemRequest{}, fmt.Errorf("se esperaban %d columnas, hay %d", columns, len(rec))
	}
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}
	prices := make([]decimal.Decimal, 3)
	for i, raw := range rec[6:9] {
		if raw == "" {
			continue
		}
		d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
		if err != nil {
			return dto.CreateItemRequest{}, fmt.Errorf("columna %d: %w", 7+i, err)
		}
		prices[i] = d
	}
	return dto.CreateItemRequest{
		EAN:      rec[0],
		Name:     rec[1],
		Category: rec[2],
		Location: entity.Location{
			Corridor: rec[3],
			Shelf:    rec[4],
			Floor:    rec[5],
		},
		UnitPrice:   prices[0],
		SalePrice:   prices[1],
		MinQuantity: prices[2],
	}, nil
}
