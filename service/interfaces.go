package service

import (
	"context"

	"github.com/elC0mpa/aws-tagger/model"
)

// IdentityService provides cloud account identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// RegionService enumerates the regions enabled for the account
type RegionService interface {
	GetRegions(ctx context.Context) ([]string, error)
}

// CatalogService streams raw pricing catalog pages
type CatalogService interface {
	ComputePages(ctx context.Context, handle func(page []string) error) error
	StoragePages(ctx context.Context, handle func(page []string) error) error
}

// InventoryService lists instances and volumes across regions
type InventoryService interface {
	Collect(ctx context.Context, regions []string) (model.Inventory, []model.RegionFailure)
}

// CostService prices inventory against the catalog indexes
type CostService interface {
	PriceVolumes(volumes []model.RawVolume, index model.PriceIndex) []model.VolumeRecord
	PriceInstances(instances []model.RawInstance, volumes []model.VolumeRecord, index model.PriceIndex) []model.InstanceRecord
}

// ReportService filters and projects priced resources into report rows
type ReportService interface {
	FilterByTag(instances []model.InstanceRecord, tagKey, tagValue string) []model.InstanceRecord
	Project(instances []model.InstanceRecord) [][]any
	ProjectKube(usages []model.ServiceUsage) [][]any
	FileName(selector, accountID string) string
	KubeFileName(cluster string) string
}

// SpreadsheetService reads and writes report workbooks
type SpreadsheetService interface {
	Write(path string, header []string, rows [][]any) error
	Read(path string) ([][]string, error)
}

// ReconcileService turns an edited report into applied tag updates
type ReconcileService interface {
	Reconcile(ctx context.Context, table [][]string, dryRun bool) (model.ReconcileResult, error)
}

// KubeService estimates per-service cost from pod resource requests
type KubeService interface {
	Collect(ctx context.Context) ([]model.ServiceUsage, error)
}
