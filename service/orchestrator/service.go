package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/elC0mpa/aws-tagger/service/pricing"
	"github.com/elC0mpa/aws-tagger/service/report"
	"github.com/elC0mpa/aws-tagger/utils"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func NewService(deps Dependencies, settings model.Settings, run model.RunContext) *orchestratorService {
	return &orchestratorService{
		deps:     deps,
		settings: settings,
		run:      run,
	}
}

func (s *orchestratorService) Orchestrate(ctx context.Context, flags model.Flags) error {
	if s.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.settings.Timeout)
		defer cancel()
	}

	defer func(start time.Time) {
		zerolog.Ctx(ctx).Info().Msgf("Whole process took %d seconds", int(time.Since(start).Seconds()))
	}(s.run.Started)

	switch flags.Command {
	case model.CommandReport:
		return s.reportWorkflow(ctx, flags)
	case model.CommandUpdateTags:
		return s.updateTagsWorkflow(ctx, flags)
	case model.CommandKubeReport:
		return s.kubeReportWorkflow(ctx)
	default:
		return fmt.Errorf("unknown command %q", flags.Command)
	}
}

// InstanceCosts prices every instance of the account and filters them by
// tagKey and department. An empty or common department keeps all instances.
// Regions whose listing fails are left out; it fails only when every region does.
func (s *orchestratorService) InstanceCosts(ctx context.Context, department, tagKey string) (model.CostReport, error) {
	account, err := s.deps.Identity.GetAccountInfo(ctx)
	if err != nil {
		return model.CostReport{}, err
	}

	regions, err := s.deps.Regions.GetRegions(ctx)
	if err != nil {
		return model.CostReport{}, err
	}

	var computeIndex, storageIndex model.PriceIndex
	var inv model.Inventory
	var failures []model.RegionFailure

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		idx, err := pricing.Build(gctx, pricing.ComputeShape, s.deps.Catalog.ComputePages)
		computeIndex = idx
		return err
	})
	g.Go(func() error {
		idx, err := pricing.Build(gctx, pricing.StorageShape, s.deps.Catalog.StoragePages)
		storageIndex = idx
		return err
	})
	g.Go(func() error {
		inv, failures = s.deps.Inventory.Collect(gctx, regions)
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.CostReport{}, err
	}

	if len(regions) > 0 && len(failures) == len(regions) {
		first := failures[0]
		return model.CostReport{}, fmt.Errorf("%w: listing failed in all %d regions, first %s: %w",
			model.ErrInventory, len(regions), first.Region, first.Err)
	}

	volumes := s.deps.Cost.PriceVolumes(inv.Volumes, storageIndex)
	instances := s.deps.Cost.PriceInstances(inv.Instances, volumes, computeIndex)

	if tagKey == "" {
		tagKey = model.TagDepartment
	}
	return model.CostReport{
		AccountID:     account.AccountID,
		Instances:     s.deps.Report.FilterByTag(instances, tagKey, report.SelectorValue(department)),
		FailedRegions: failures,
	}, nil
}

// ServiceCosts estimates the monthly cost of every Kubernetes service.
func (s *orchestratorService) ServiceCosts(ctx context.Context) ([]model.ServiceUsage, error) {
	return s.deps.Kube.Collect(ctx)
}

func (s *orchestratorService) reportWorkflow(ctx context.Context, flags model.Flags) error {
	logger := zerolog.Ctx(ctx)

	costs, err := s.InstanceCosts(ctx, flags.Department, flags.TagKey)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	if len(costs.FailedRegions) > 0 {
		logger.Warn().
			Strs("regions", costs.FailedRegionNames()).
			Msg("Report is missing regions whose listing failed")
	}

	if len(costs.Instances) == 0 && report.SelectorValue(flags.Department) != model.AllSelector {
		logger.Info().
			Str("tag_key", flags.TagKey).
			Str("department", flags.Department).
			Msg("No instances match the selector, no report written")
		return nil
	}

	path := s.deps.Report.FileName(flags.Department, costs.AccountID)
	if err := s.deps.Spreadsheet.Write(path, model.ReportHeader(), s.deps.Report.Project(costs.Instances)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	logger.Info().Str("file", path).Int("instances", len(costs.Instances)).Msg("Report written")

	utils.DrawInstanceCostTable(costs)
	utils.DrawDepartmentChart(costs.AccountID, costs.Instances)

	return nil
}

func (s *orchestratorService) updateTagsWorkflow(ctx context.Context, flags model.Flags) error {
	logger := zerolog.Ctx(ctx)

	table, err := s.deps.Spreadsheet.Read(flags.Filename)
	if err != nil {
		return err
	}

	result, err := s.deps.Reconcile.Reconcile(ctx, table, flags.DryRun)
	if err != nil {
		return fmt.Errorf("failed to reconcile %s: %w", flags.Filename, err)
	}

	utils.StopSpinner()

	logger.Info().
		Str("file", flags.Filename).
		Bool("dry_run", result.DryRun).
		Int("applied", len(result.Applied)).
		Int("failed", len(result.Failed)).
		Int("rejected", len(result.Rejected)).
		Strs("failed_ids", result.FailedIDs()).
		Msg("Tag update finished")

	utils.DrawReconcileSummary(flags.Filename, result)

	if flags.Strict && (len(result.Failed) > 0 || len(result.Rejected) > 0) {
		return fmt.Errorf("%w: %d failed and %d rejected rows", model.ErrTagApply, len(result.Failed), len(result.Rejected))
	}
	return nil
}

func (s *orchestratorService) kubeReportWorkflow(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	usages, err := s.ServiceCosts(ctx)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	if len(usages) == 0 {
		logger.Info().Str("cluster", s.deps.KubeCluster).Msg("No services with ready pods, no report written")
		return nil
	}

	path := s.deps.Report.KubeFileName(s.deps.KubeCluster)
	if err := s.deps.Spreadsheet.Write(path, model.KubeReportHeader(), s.deps.Report.ProjectKube(usages)); err != nil {
		return fmt.Errorf("failed to write kube report: %w", err)
	}
	logger.Info().Str("file", path).Int("services", len(usages)).Msg("Kube report written")

	utils.DrawKubeCostTable(s.deps.KubeCluster, usages)
	return nil
}
