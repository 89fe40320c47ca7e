package inventory

import (
	"context"

	"github.com/elC0mpa/aws-tagger/model"
)

// Lister lists raw resources of one region.
type Lister interface {
	ListInstances(ctx context.Context, region string) ([]model.RawInstance, error)
	ListVolumes(ctx context.Context, region string) ([]model.RawVolume, error)
}

type service struct {
	lister      Lister
	concurrency int
}

type InventoryService interface {
	Collect(ctx context.Context, regions []string) (model.Inventory, []model.RegionFailure)
}
