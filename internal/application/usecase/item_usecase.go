package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/logos-estoque/internal/application/dto"
	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
	"github.com/jhoicas/logos-estoque/pkg/textsearch"
)

const skuAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ItemUseCase casos de uso del catálogo. Nunca modifica CurrentQuantity.
type ItemUseCase struct {
	repo repository.ItemRepository
	now  func() time.Time
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo, now: time.Now}
}

// Create crea un item con SKU LGS-<ano>-<seq>-<sufixo> y saldo 0.
// EAN repetido → ErrDuplicate; precios o mínimo negativos → ErrInvalidInput.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*entity.Item, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.Category) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.IsNegative() || in.SalePrice.IsNegative() || in.MinQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ean := strings.TrimSpace(in.EAN)
	if ean != "" {
		for _, it := range items {
			if it.EAN == ean {
				return nil, domain.ErrDuplicate
			}
		}
	}
	now := uc.now()
	item := &entity.Item{
		ID:              uuid.New().String(),
		SKU:             newSKU(now.Year(), len(items)+1),
		EAN:             ean,
		Name:            name,
		Category:        strings.TrimSpace(in.Category),
		Location:        in.Location,
		UnitPrice:       in.UnitPrice,
		SalePrice:       in.SalePrice,
		MinQuantity:     in.MinQuantity,
		CurrentQuantity: decimal.Zero,
		PhotoURL:        in.PhotoURL,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update aplica los campos presentes; el saldo solo cambia vía movimientos.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*entity.Item, error) {
	item, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		item.Category = strings.TrimSpace(*in.Category)
	}
	if in.EAN != nil {
		item.EAN = strings.TrimSpace(*in.EAN)
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	for _, v := range []*decimal.Decimal{in.UnitPrice, in.SalePrice, in.MinQuantity} {
		if v != nil && v.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	if in.SalePrice != nil {
		item.SalePrice = *in.SalePrice
	}
	if in.MinQuantity != nil {
		item.MinQuantity = *in.MinQuantity
	}
	if in.PhotoURL != nil {
		item.PhotoURL = *in.PhotoURL
	}
	item.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete elimina el item del catálogo. Sus movimientos permanecen en el ledger.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// GetByID devuelve el item o ErrNotFound.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// List filtra por categoría exacta (vacía = todas) y texto en nombre, SKU o EAN.
func (uc *ItemUseCase) List(ctx context.Context, category, query string) ([]*entity.Item, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Item, 0, len(all))
	for _, it := range all {
		if category != "" && it.Category != category {
			continue
		}
		if !textsearch.Contains(query, it.Name, it.SKU, it.EAN) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

// Categories categorías distintas, ordenadas.
func (uc *ItemUseCase) Categories(ctx context.Context) ([]string, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, it := range all {
		if _, ok := seen[it.Category]; ok || it.Category == "" {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	sort.Strings(out)
	return out, nil
}

// Addresses direcciones ocupadas, ordenadas por pasillo, estante y nivel.
func (uc *ItemUseCase) Addresses(ctx context.Context) ([]dto.AddressDTO, error) {
	return uc.addresses(ctx, "")
}

// Locate direcciones de los items que coinciden con query (nombre, SKU o EAN).
func (uc *ItemUseCase) Locate(ctx context.Context, query string) ([]dto.AddressDTO, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.addresses(ctx, query)
}

func (uc *ItemUseCase) addresses(ctx context.Context, query string) ([]dto.AddressDTO, error) {
	items, err := uc.List(ctx, "", query)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AddressDTO, 0, len(items))
	for _, it := range items {
		loc := it.Location
		if loc.Corridor == "" && loc.Shelf == "" && loc.Floor == "" {
			continue
		}
		out = append(out, dto.AddressDTO{
			Corridor: loc.Corridor,
			Shelf:    loc.Shelf,
			Floor:    loc.Floor,
			ItemID:   it.ID,
			SKU:      it.SKU,
			ItemName: it.Name,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Corridor != b.Corridor {
			return a.Corridor < b.Corridor
		}
		if a.Shelf != b.Shelf {
			return a.Shelf < b.Shelf
		}
		return a.Floor < b.Floor
	})
	return out, nil
}

func newSKU(year, seq int) string {
	var suffix [3]byte
	for i := range suffix {
		suffix[i] = skuAlphabet[rand.IntN(len(skuAlphabet))]
	}
	return fmt.Sprintf("LGS-%d-%04d-%s", year, seq, suffix[:])
}
