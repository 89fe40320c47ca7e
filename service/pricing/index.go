package pricing

import (
	"context"
	"fmt"
	"sort"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const currency = "USD"

// NewBuilder returns an empty builder for shape. The context only carries the logger.
func NewBuilder(ctx context.Context, shape Shape) *Builder {
	return &Builder{
		ctx:   ctx,
		shape: shape,
		index: make(model.PriceIndex),
	}
}

// Build drains source into a new index.
func Build(ctx context.Context, shape Shape, source PageSource) (model.PriceIndex, error) {
	b := NewBuilder(ctx, shape)
	if err := source(ctx, b.AddPage); err != nil {
		return nil, fmt.Errorf("failed to build %s price index: %w", shape.Name, err)
	}

	zerolog.Ctx(ctx).Info().
		Str("shape", shape.Name).
		Int("entries", len(b.index)).
		Int("skipped", b.skipped).
		Msg("price index built")

	return b.Index(), nil
}

// AddPage parses every entry of the page. Malformed entries are logged and
// skipped; the page itself never fails. A shape key seen again overwrites the
// earlier entry.
func (b *Builder) AddPage(page []string) error {
	logger := zerolog.Ctx(b.ctx)
	for _, raw := range page {
		entry, err := ParseEntry(raw, b.shape)
		if err != nil {
			b.skipped++
			logger.Warn().Err(err).Str("shape", b.shape.Name).Msg("skipping catalog entry")
			continue
		}
		b.index[entry.ShapeKey] = entry
	}
	return nil
}

func (b *Builder) Index() model.PriceIndex {
	return b.index
}

func (b *Builder) Skipped() int {
	return b.skipped
}

// ParseEntry decodes one price list document.
//
// When the entry carries several on-demand terms or several price dimensions,
// the last one in sorted key order wins, not the last in document order, so
// the result does not depend on how the catalog serialized the maps.
func ParseEntry(raw string, shape Shape) (model.PriceEntry, error) {
	var item catalogItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return model.PriceEntry{}, fmt.Errorf("%w: %v", model.ErrCatalogParse, err)
	}

	key := item.Product.Attributes[shape.KeyAttribute]
	if key == "" {
		return model.PriceEntry{}, fmt.Errorf("%w: missing attribute %s", model.ErrCatalogParse, shape.KeyAttribute)
	}

	var amount string
	found := false
	for _, termKey := range sortedKeys(item.Terms.OnDemand) {
		dimensions := item.Terms.OnDemand[termKey].PriceDimensions
		for _, dimKey := range sortedKeys(dimensions) {
			if value, ok := dimensions[dimKey].PricePerUnit[currency]; ok {
				amount = value
				found = true
			}
		}
	}
	if !found {
		return model.PriceEntry{}, fmt.Errorf("%w: no on-demand %s price for %s", model.ErrCatalogParse, currency, key)
	}

	price, err := decimal.NewFromString(amount)
	if err != nil {
		return model.PriceEntry{}, fmt.Errorf("%w: price %q for %s: %v", model.ErrCatalogParse, amount, key, err)
	}
	if shape.Round {
		price = price.Round(shape.RoundPlaces)
	}

	attributes := make(map[string]string, len(shape.Attributes))
	for _, name := range shape.Attributes {
		if value, ok := item.Product.Attributes[name]; ok {
			attributes[name] = value
		}
	}

	return model.PriceEntry{
		ShapeKey:   key,
		UnitPrice:  price,
		Attributes: attributes,
	}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
