package orchestrator

import (
	"context"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/elC0mpa/aws-tagger/service"
)

// Dependencies are the collaborators of the three flows. Only the ones used by
// the selected command need to be set.
type Dependencies struct {
	Identity    service.IdentityService
	Regions     service.RegionService
	Catalog     service.CatalogService
	Inventory   service.InventoryService
	Cost        service.CostService
	Report      service.ReportService
	Spreadsheet service.SpreadsheetService
	Reconcile   service.ReconcileService
	Kube        service.KubeService
	KubeCluster string
}

type orchestratorService struct {
	deps     Dependencies
	settings model.Settings
	run      model.RunContext
}

type OrchestratorService interface {
	Orchestrate(ctx context.Context, flags model.Flags) error
	InstanceCosts(ctx context.Context, department, tagKey string) (model.CostReport, error)
	ServiceCosts(ctx context.Context) ([]model.ServiceUsage, error)
}
