package report

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var run = model.RunContext{
	Started:    time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC),
	ReportsDir: "reports",
}

func instances() []model.InstanceRecord {
	return []model.InstanceRecord{
		{
			ID:     "i-1",
			Region: "us-east-1",
			Tags: []model.Tag{
				{Key: "Department", Value: "Data"},
				{Key: "Department", Value: "Ignored"},
				{Key: "Name", Value: "warehouse"},
			},
		},
		{
			ID:     "i-2",
			Region: "us-east-1",
			Tags:   []model.Tag{{Key: "Department", Value: "Web"}},
		},
		{ID: "i-3", Region: "eu-west-1"},
	}
}

func ids(records []model.InstanceRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestSelectorValue(t *testing.T) {
	tests := []struct {
		selector string
		want     string
	}{
		{selector: "common", want: model.AllSelector},
		{selector: "Common", want: model.AllSelector},
		{selector: "", want: model.AllSelector},
		{selector: "Data", want: "Data"},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectorValue(tt.selector))
		})
	}
}

func TestFilterByTag(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  []string
	}{
		{name: "all sentinel", key: "Department", value: model.AllSelector, want: []string{"i-1", "i-2", "i-3"}},
		{name: "first tag matches", key: "Department", value: "Data", want: []string{"i-1"}},
		{name: "any duplicate key matches", key: "Department", value: "Ignored", want: []string{"i-1"}},
		{name: "exact match only", key: "Department", value: "data", want: []string{}},
		{name: "other key", key: "Name", value: "warehouse", want: []string{"i-1"}},
		{name: "no matches", key: "Department", value: "Finance", want: []string{}},
	}

	s := NewService(run)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(s.FilterByTag(instances(), tt.key, tt.value)))
		})
	}
}

func TestProject(t *testing.T) {
	s := NewService(run)
	record := model.InstanceRecord{
		ID:         "i-0abc",
		Type:       "m5.large",
		Region:     "us-east-1",
		State:      "running",
		PublicIP:   "1.2.3.4",
		LaunchTime: time.Date(2023, 5, 1, 12, 30, 0, 0, time.FixedZone("X", 3600)),
		Tags: []model.Tag{
			{Key: "Name", Value: "api"},
			{Key: "Department", Value: "Web"},
			{Key: "Team", Value: "Edge"},
			{Key: "TeamOwner", Value: "kim"},
			{Key: "Project", Value: "shop"},
			{Key: "Finance", Value: "cc-1"},
			{Key: "Environment", Value: "prod"},
		},
		AttachedVolumes:    []model.VolumeRecord{{ID: "v1", SizeGB: 8}, {ID: "v2", SizeGB: 100}},
		ComputeMonthlyCost: decimal.RequireFromString("70.27"),
		StorageMonthlyCost: decimal.RequireFromString("78.3001"),
		TotalMonthlyCost:   decimal.RequireFromString("148.5701"),
	}

	rows := s.Project([]model.InstanceRecord{record})

	require.Len(t, rows, 1)
	assert.Equal(t, []any{
		"us-east-1", "api", "i-0abc", "m5.large", "running", "1.2.3.4", "2023-05-01 11:30:00",
		"Web", "Edge", "kim", "shop", "cc-1", "prod",
		70.27, 78.3001, 148.5701, "[8, 100]",
	}, rows[0])
	assert.Len(t, model.ReportHeader(), len(rows[0]))
}

func TestProject_MissingTagsAreEmpty(t *testing.T) {
	rows := NewService(run).Project([]model.InstanceRecord{{ID: "i-1", Region: "eu-west-1"}})

	require.Len(t, rows, 1)
	for _, col := range []model.ReportColumn{
		model.ColInstanceName, model.ColDepartment, model.ColTeam, model.ColTeamOwner,
		model.ColProject, model.ColFinance, model.ColEnvironment, model.ColLaunchTime, model.ColPublicIP,
	} {
		assert.Equal(t, "", rows[0][col], col.String())
	}
	assert.Equal(t, "[]", rows[0][model.ColVolumeSizes])
	assert.Equal(t, 0.0, rows[0][model.ColTotalCost])
}

func TestProject_Idempotent(t *testing.T) {
	s := NewService(run)
	input := instances()

	assert.Equal(t, s.Project(input), s.Project(input))
}

func TestProjectKube(t *testing.T) {
	rows := NewService(run).ProjectKube([]model.ServiceUsage{{
		OwnershipKey: model.OwnershipKey{ServiceName: "api", Namespace: "shop"},
		Owner:        "web",
		PodCount:     3,
		CPUPerPod:    decimal.RequireFromString("0.5"),
		RAMPerPod:    decimal.RequireFromString("1"),
		CPUTotal:     decimal.RequireFromString("1.5"),
		RAMTotal:     decimal.RequireFromString("3"),
		CPUCost:      decimal.RequireFromString("43.92"),
		RAMCost:      decimal.RequireFromString("10.98"),
	}})

	require.Len(t, rows, 1)
	assert.Equal(t, []any{"api", "shop", "web", 3, 0.5, 1.0, 1.5, 3.0, 43.92, 10.98}, rows[0])
	assert.Len(t, model.KubeReportHeader(), len(rows[0]))
}

func TestFileName(t *testing.T) {
	s := NewService(run)

	assert.Equal(t, filepath.Join("reports", "AWS-report-DataScience-123456789012-(2024-03-09).xlsx"), s.FileName("Data Science", "123456789012"))
	assert.Equal(t, filepath.Join("reports", "AWS-report-common-1-(2024-03-09).xlsx"), s.FileName("common", "1"))
	assert.Equal(t, filepath.Join("reports", "kube-report-(prod-eks)-(2024-03-09).xlsx"), s.KubeFileName("prod-eks"))
}
