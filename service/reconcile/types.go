package reconcile

import (
	"context"

	"github.com/elC0mpa/aws-tagger/model"
)

const instanceIDPrefix = "i-"

// Tagger overwrites organizational tags on one instance with a single call.
type Tagger interface {
	SetTags(ctx context.Context, region, instanceID string, tags []model.Tag) error
}

type service struct {
	tagger Tagger
}

type ReconcileService interface {
	Parse(ctx context.Context, table [][]string) ([]model.TagUpdate, []model.RowError, error)
	Apply(ctx context.Context, updates []model.TagUpdate, dryRun bool) model.ReconcileResult
	Reconcile(ctx context.Context, table [][]string, dryRun bool) (model.ReconcileResult, error)
}
