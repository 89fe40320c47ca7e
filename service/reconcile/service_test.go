package reconcile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/elC0mpa/aws-tagger/service/report"
	"github.com/elC0mpa/aws-tagger/service/spreadsheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTagger struct {
	mock.Mock
}

func (m *mockTagger) SetTags(ctx context.Context, region, instanceID string, tags []model.Tag) error {
	args := m.Called(ctx, region, instanceID, tags)
	return args.Error(0)
}

// row builds a full-width data row.
func row(region, id, dept, team, owner, project, finance, env string) []string {
	cells := make([]string, model.ReportColumnCount)
	cells[model.ColRegion] = region
	cells[model.ColID] = id
	cells[model.ColDepartment] = dept
	cells[model.ColTeam] = team
	cells[model.ColTeamOwner] = owner
	cells[model.ColProject] = project
	cells[model.ColFinance] = finance
	cells[model.ColEnvironment] = env
	return cells
}

func TestParse(t *testing.T) {
	table := [][]string{
		model.ReportHeader(),
		row("us-east-1", "i-1", "Data", "Core", "kim", "lake", "cc-1", "prod"),
		{},
		{"  ", ""},
		row("eu-west-1", " i-2 ", "", "", "", "", "", ""),
		row("", "i-3", "Data", "", "", "", "", ""),
		row("us-east-1", "", "Data", "", "", "", "", ""),
		row("us-east-1", "vol-1", "Data", "", "", "", "", ""),
		row("us-east-1", "i-1", "Other", "", "", "", "", ""),
		{"ap-south-1", "name", "i-4", "t3.micro", "running", "", "", "Ops"},
	}

	updates, rejected, err := NewService(nil).Parse(context.Background(), table)
	require.NoError(t, err)

	assert.Equal(t, []model.TagUpdate{
		{Row: 2, InstanceID: "i-1", Region: "us-east-1", Department: "Data", Team: "Core", TeamOwner: "kim", Project: "lake", Finance: "cc-1", Environment: "prod"},
		{Row: 5, InstanceID: "i-2", Region: "eu-west-1"},
		{Row: 10, InstanceID: "i-4", Region: "ap-south-1", Department: "Ops"},
	}, updates)

	rows := make([]int, 0, len(rejected))
	for _, r := range rejected {
		rows = append(rows, r.Row)
		assert.Contains(t, r.Reason, model.ErrMalformedRow.Error())
	}
	assert.Equal(t, []int{6, 7, 8, 9}, rows)
}

func TestParse_Header(t *testing.T) {
	shifted := model.ReportHeader()
	shifted[model.ColID], shifted[model.ColType] = shifted[model.ColType], shifted[model.ColID]

	extra := append(model.ReportHeader(), "Notes")

	tests := []struct {
		name    string
		table   [][]string
		wantErr bool
	}{
		{name: "empty table", table: nil, wantErr: true},
		{name: "short header", table: [][]string{model.ReportHeader()[:5]}, wantErr: true},
		{name: "shifted columns", table: [][]string{shifted}, wantErr: true},
		{name: "extra trailing column", table: [][]string{extra}, wantErr: false},
		{name: "header only", table: [][]string{model.ReportHeader()}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewService(nil).Parse(context.Background(), tt.table)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, model.ErrSchemaMismatch))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestApply(t *testing.T) {
	tagger := new(mockTagger)
	updates := []model.TagUpdate{
		{Row: 2, InstanceID: "i-1", Region: "us-east-1", Department: "Data", Team: "Core"},
		{Row: 3, InstanceID: "i-2", Region: "eu-west-1"},
		{Row: 4, InstanceID: "i-3", Region: "eu-west-1", Environment: "dev"},
	}

	tagger.On("SetTags", mock.Anything, "us-east-1", "i-1", updates[0].Tags()).Return(nil).Once()
	tagger.On("SetTags", mock.Anything, "eu-west-1", "i-2", updates[1].Tags()).Return(errors.New("UnauthorizedOperation")).Once()
	tagger.On("SetTags", mock.Anything, "eu-west-1", "i-3", updates[2].Tags()).Return(nil).Once()

	result := NewService(tagger).Apply(context.Background(), updates, false)

	tagger.AssertExpectations(t)
	assert.False(t, result.DryRun)
	assert.Equal(t, []string{"i-1", "i-3"}, result.Applied)
	assert.Equal(t, []string{"i-2"}, result.FailedIDs())
	assert.Equal(t, "eu-west-1", result.Failed[0].Region)
}

func TestApply_EmptyValuesAreWritten(t *testing.T) {
	tagger := new(mockTagger)
	update := model.TagUpdate{Row: 2, InstanceID: "i-1", Region: "us-east-1", Team: "Core"}

	tagger.On("SetTags", mock.Anything, "us-east-1", "i-1", []model.Tag{
		{Key: "Department", Value: ""},
		{Key: "TeamOwner", Value: ""},
		{Key: "Project", Value: ""},
		{Key: "Finance", Value: ""},
		{Key: "Team", Value: "Core"},
		{Key: "Environment", Value: ""},
	}).Return(nil).Once()

	result := NewService(tagger).Apply(context.Background(), []model.TagUpdate{update}, false)

	tagger.AssertExpectations(t)
	assert.Equal(t, []string{"i-1"}, result.Applied)
}

func TestApply_DryRun(t *testing.T) {
	tagger := new(mockTagger)

	result := NewService(tagger).Apply(context.Background(), []model.TagUpdate{
		{Row: 2, InstanceID: "i-1", Region: "us-east-1"},
	}, true)

	tagger.AssertNotCalled(t, "SetTags", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.True(t, result.DryRun)
	assert.Equal(t, []string{"i-1"}, result.Applied)
}

func TestApply_CancelledContext(t *testing.T) {
	tagger := new(mockTagger)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := NewService(tagger).Apply(ctx, []model.TagUpdate{
		{Row: 2, InstanceID: "i-1", Region: "us-east-1"},
		{Row: 3, InstanceID: "i-2", Region: "us-east-1"},
	}, false)

	tagger.AssertNotCalled(t, "SetTags", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, []string{"i-1", "i-2"}, result.FailedIDs())
	assert.True(t, errors.Is(result.Failed[0].Err, context.Canceled))
}

func TestReconcile_RoundTrip(t *testing.T) {
	run := model.RunContext{Started: time.Now(), ReportsDir: t.TempDir()}
	projector := report.NewService(run)
	sheets := spreadsheet.NewService()

	instances := []model.InstanceRecord{
		{ID: "i-0aaa", Region: "us-east-1", Tags: []model.Tag{{Key: "Department", Value: "Data"}, {Key: "Team", Value: "Core"}}},
		{ID: "i-0bbb", Region: "eu-west-1"},
		{ID: "i-0ccc", Region: "ap-south-1", Tags: []model.Tag{{Key: "Environment", Value: "prod"}}},
	}

	path := filepath.Join(run.ReportsDir, "round-trip.xlsx")
	require.NoError(t, sheets.Write(path, model.ReportHeader(), projector.Project(instances)))

	table, err := sheets.Read(path)
	require.NoError(t, err)

	result, err := NewService(nil).Reconcile(context.Background(), table, true)
	require.NoError(t, err)

	assert.Empty(t, result.Rejected)
	assert.Equal(t, []string{"i-0aaa", "i-0bbb", "i-0ccc"}, result.Applied)

	updates, _, err := NewService(nil).Parse(context.Background(), table)
	require.NoError(t, err)
	require.Len(t, updates, 3)
	assert.Equal(t, "us-east-1", updates[0].Region)
	assert.Equal(t, "Data", updates[0].Department)
	assert.Equal(t, "Core", updates[0].Team)
	assert.Equal(t, "eu-west-1", updates[1].Region)
	assert.Equal(t, "ap-south-1", updates[2].Region)
	assert.Equal(t, "prod", updates[2].Environment)
}

func TestReconcile_SchemaMismatch(t *testing.T) {
	_, err := NewService(nil).Reconcile(context.Background(), [][]string{{"Region", "ID"}}, false)

	assert.True(t, errors.Is(err, model.ErrSchemaMismatch))
}
