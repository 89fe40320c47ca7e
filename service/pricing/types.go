package pricing

import (
	"context"

	"github.com/elC0mpa/aws-tagger/model"
)

// PageSource streams raw catalog pages into handle until the catalog is exhausted.
type PageSource func(ctx context.Context, handle func(page []string) error) error

// Shape describes how catalog entries of one product family become index entries.
type Shape struct {
	Name         string
	KeyAttribute string
	Attributes   []string
	// RoundPlaces rounds unit prices at build time when Round is set.
	RoundPlaces int32
	Round       bool
}

var (
	// ComputeShape indexes instance prices by instance type. Prices stay unrounded.
	ComputeShape = Shape{
		Name:         "compute",
		KeyAttribute: "instanceType",
		Attributes:   []string{"memory", "vcpu"},
	}
	// StorageShape indexes EBS prices by volume API name, rounded to 5 places.
	StorageShape = Shape{
		Name:         "storage",
		KeyAttribute: "volumeApiName",
		RoundPlaces:  5,
		Round:        true,
	}
)

// catalogItem is one entry of a GetProducts price list.
type catalogItem struct {
	Product struct {
		ProductFamily string            `json:"productFamily"`
		Attributes    map[string]string `json:"attributes"`
	} `json:"product"`
	Terms struct {
		OnDemand map[string]onDemandTerm `json:"OnDemand"`
	} `json:"terms"`
}

type onDemandTerm struct {
	PriceDimensions map[string]priceDimension `json:"priceDimensions"`
}

type priceDimension struct {
	Unit         string            `json:"unit"`
	PricePerUnit map[string]string `json:"pricePerUnit"`
}

// Builder accumulates catalog pages into a PriceIndex.
type Builder struct {
	ctx     context.Context
	shape   Shape
	index   model.PriceIndex
	skipped int
}

type IndexBuilder interface {
	AddPage(page []string) error
	Index() model.PriceIndex
	Skipped() int
}

var _ IndexBuilder = (*Builder)(nil)
