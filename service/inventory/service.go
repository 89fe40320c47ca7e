package inventory

import (
	"context"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// NewService returns a collector listing up to concurrency regions at a time.
func NewService(lister Lister, concurrency int) *service {
	if concurrency < 1 {
		concurrency = 1
	}
	return &service{
		lister:      lister,
		concurrency: concurrency,
	}
}

type regionResult struct {
	instances []model.RawInstance
	volumes   []model.RawVolume
	err       error
}

// Collect lists instances and volumes in every region. A region whose listing
// fails is left out of the inventory and reported as a failure. Results are
// merged in the order regions were given, then provider listing order.
func (s *service) Collect(ctx context.Context, regions []string) (model.Inventory, []model.RegionFailure) {
	results := make([]regionResult, len(regions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, region := range regions {
		g.Go(func() error {
			results[i] = s.collectRegion(gctx, region)
			return nil
		})
	}
	_ = g.Wait()

	logger := zerolog.Ctx(ctx)
	var inv model.Inventory
	var failures []model.RegionFailure
	for i, result := range results {
		if result.err != nil {
			logger.Warn().Err(result.err).Str("region", regions[i]).Msg("region skipped")
			failures = append(failures, model.RegionFailure{Region: regions[i], Err: result.err})
			continue
		}
		inv.Instances = append(inv.Instances, result.instances...)
		inv.Volumes = append(inv.Volumes, result.volumes...)
	}

	logger.Info().
		Int("regions", len(regions)).
		Int("failed_regions", len(failures)).
		Int("instances", len(inv.Instances)).
		Int("volumes", len(inv.Volumes)).
		Msg("inventory collected")

	return inv, failures
}

func (s *service) collectRegion(ctx context.Context, region string) regionResult {
	volumes, err := s.lister.ListVolumes(ctx, region)
	if err != nil {
		return regionResult{err: err}
	}

	instances, err := s.lister.ListInstances(ctx, region)
	if err != nil {
		return regionResult{err: err}
	}

	return regionResult{instances: instances, volumes: volumes}
}
