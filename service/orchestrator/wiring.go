package orchestrator

import (
	"context"

	"github.com/elC0mpa/aws-tagger/model"
	awsconfig "github.com/elC0mpa/aws-tagger/service/aws/config"
	awsec2 "github.com/elC0mpa/aws-tagger/service/aws/ec2"
	awspricing "github.com/elC0mpa/aws-tagger/service/aws/pricing"
	awssts "github.com/elC0mpa/aws-tagger/service/aws/sts"
	"github.com/elC0mpa/aws-tagger/service/cost"
	"github.com/elC0mpa/aws-tagger/service/inventory"
	"github.com/elC0mpa/aws-tagger/service/kube"
	"github.com/elC0mpa/aws-tagger/service/reconcile"
	"github.com/elC0mpa/aws-tagger/service/report"
	"github.com/elC0mpa/aws-tagger/service/settings"
	"github.com/elC0mpa/aws-tagger/service/spreadsheet"
)

// BuildDependencies builds only the collaborators the selected command uses,
// so a kube report never needs AWS credentials.
func BuildDependencies(ctx context.Context, flags model.Flags, cfg model.Settings, run model.RunContext) (Dependencies, error) {
	deps := Dependencies{
		Report:      report.NewService(run),
		Spreadsheet: spreadsheet.NewService(),
	}

	if flags.Command == model.CommandKubeReport {
		client, cluster, err := kube.NewClient(flags.Kubeconfig, flags.KubeContext)
		if err != nil {
			return deps, err
		}
		deps.Kube = kube.NewService(client, settings.KubePrices(cfg), cfg.Kube.OwnerLabel)
		deps.KubeCluster = cluster
		return deps, nil
	}

	cfgService := awsconfig.NewService(cfg.MaxAttempts)
	awsCfg, err := cfgService.GetAWSCfg(ctx, cfg.Region, cfg.Profile)
	if err != nil {
		return deps, err
	}

	ec2Service := awsec2.NewService(awsCfg)
	deps.Reconcile = reconcile.NewService(ec2Service)

	if flags.Command == model.CommandReport {
		deps.Identity = awssts.NewService(awsCfg)
		deps.Regions = ec2Service
		deps.Catalog = awspricing.NewService(awsCfg, cfg.PricingRegion, cfg.PricingLocation)
		deps.Inventory = inventory.NewService(ec2Service, cfg.Concurrency)
		deps.Cost = cost.NewService(settings.CostRates(cfg))
	}

	return deps, nil
}
