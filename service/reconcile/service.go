package reconcile

import (
	"context"
	"fmt"
	"strings"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/rs/zerolog"
)

func NewService(tagger Tagger) *service {
	return &service{
		tagger: tagger,
	}
}

// Reconcile parses an exported report and applies every valid row.
func (s *service) Reconcile(ctx context.Context, table [][]string, dryRun bool) (model.ReconcileResult, error) {
	updates, rejected, err := s.Parse(ctx, table)
	if err != nil {
		return model.ReconcileResult{}, err
	}

	result := s.Apply(ctx, updates, dryRun)
	result.Rejected = rejected
	return result, nil
}

// Parse validates the header row against the report columns and turns each
// data row into a TagUpdate. Row numbers are 1-based sheet rows. Blank rows
// are skipped and rows without a usable instance id or region are rejected.
func (s *service) Parse(ctx context.Context, table [][]string) ([]model.TagUpdate, []model.RowError, error) {
	logger := zerolog.Ctx(ctx)

	if len(table) == 0 {
		return nil, nil, fmt.Errorf("%w: table has no header row", model.ErrSchemaMismatch)
	}
	if err := validateHeader(table[0]); err != nil {
		return nil, nil, err
	}

	var updates []model.TagUpdate
	var rejected []model.RowError
	seen := make(map[string]int)

	for i, cells := range table[1:] {
		rowNumber := i + 2
		if isBlank(cells) {
			continue
		}

		update := model.TagUpdate{
			Row:         rowNumber,
			InstanceID:  at(cells, model.ColID),
			Region:      at(cells, model.ColRegion),
			Department:  at(cells, model.ColDepartment),
			Team:        at(cells, model.ColTeam),
			TeamOwner:   at(cells, model.ColTeamOwner),
			Project:     at(cells, model.ColProject),
			Finance:     at(cells, model.ColFinance),
			Environment: at(cells, model.ColEnvironment),
		}

		reason := validateRow(update, seen)
		if reason != "" {
			logger.Warn().
				Int("row", rowNumber).
				Str("instance_id", update.InstanceID).
				Str("region", update.Region).
				Msgf("Rejected row: %s", reason)
			rejected = append(rejected, model.RowError{Row: rowNumber, Reason: reason})
			continue
		}

		seen[update.InstanceID] = rowNumber
		updates = append(updates, update)
	}

	return updates, rejected, nil
}

// Apply issues one full-overwrite tag call per update. A failed call is
// logged and recorded and the batch continues.
func (s *service) Apply(ctx context.Context, updates []model.TagUpdate, dryRun bool) model.ReconcileResult {
	logger := zerolog.Ctx(ctx)
	result := model.ReconcileResult{DryRun: dryRun}

	for _, update := range updates {
		rowLogger := logger.With().
			Int("row", update.Row).
			Str("instance_id", update.InstanceID).
			Str("region", update.Region).
			Logger()

		if dryRun {
			rowLogger.Info().Interface("tags", update.Tags()).Msg("Planned tag update")
			result.Applied = append(result.Applied, update.InstanceID)
			continue
		}

		err := ctx.Err()
		if err == nil {
			err = s.tagger.SetTags(ctx, update.Region, update.InstanceID, update.Tags())
		}
		if err != nil {
			rowLogger.Warn().Err(err).Msg("Failed to apply tags")
			result.Failed = append(result.Failed, model.TagFailure{InstanceID: update.InstanceID, Region: update.Region, Err: err})
			continue
		}

		rowLogger.Info().Msg("Applied tags")
		result.Applied = append(result.Applied, update.InstanceID)
	}

	return result
}

func validateHeader(header []string) error {
	expected := model.ReportHeader()
	if len(header) < len(expected) {
		return fmt.Errorf("%w: expected %d columns, found %d", model.ErrSchemaMismatch, len(expected), len(header))
	}
	for i, name := range expected {
		if got := strings.TrimSpace(header[i]); got != name {
			return fmt.Errorf("%w: column %d is %q, expected %q", model.ErrSchemaMismatch, i+1, got, name)
		}
	}
	return nil
}

func validateRow(update model.TagUpdate, seen map[string]int) string {
	switch {
	case update.InstanceID == "":
		return fmt.Sprintf("%v: missing instance id", model.ErrMalformedRow)
	case update.Region == "":
		return fmt.Sprintf("%v: missing region", model.ErrMalformedRow)
	case !strings.HasPrefix(update.InstanceID, instanceIDPrefix):
		return fmt.Sprintf("%v: %q is not an instance id", model.ErrMalformedRow, update.InstanceID)
	}
	if first, ok := seen[update.InstanceID]; ok {
		return fmt.Sprintf("%v: instance %s already updated by row %d", model.ErrMalformedRow, update.InstanceID, first)
	}
	return ""
}

// at reads a cell, treating cells trimmed off the end of the row as empty.
func at(cells []string, col model.ReportColumn) string {
	if int(col) >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[col])
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
