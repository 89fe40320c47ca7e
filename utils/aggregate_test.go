package utils

import (
	"testing"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id, dept, total string) model.InstanceRecord {
	r := model.InstanceRecord{ID: id, TotalMonthlyCost: decimal.RequireFromString(total)}
	if dept != "" {
		r.Tags = []model.Tag{{Key: model.TagDepartment, Value: dept}}
	}
	return r
}

func TestCostByTag(t *testing.T) {
	instances := []model.InstanceRecord{
		record("i-1", "Data", "10.5"),
		record("i-2", "Web", "3"),
		record("i-3", "Data", "1.25"),
		record("i-4", "", "20"),
		record("i-5", "Ops", "3"),
	}

	groups := CostByTag(instances, model.TagDepartment)

	require.Len(t, groups, 4)
	assert.Equal(t, "(none)", groups[0].Name)
	assert.Equal(t, "Data", groups[1].Name)
	assert.Equal(t, 2, groups[1].Instances)
	assert.True(t, decimal.RequireFromString("11.75").Equal(groups[1].Total))
	assert.Equal(t, "Ops", groups[2].Name)
	assert.Equal(t, "Web", groups[3].Name)
}

func TestTopByTotal(t *testing.T) {
	instances := []model.InstanceRecord{
		record("i-1", "", "1"),
		record("i-2", "", "5"),
		record("i-3", "", "3"),
	}

	top := TopByTotal(instances, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "i-2", top[0].ID)
	assert.Equal(t, "i-3", top[1].ID)
	assert.Equal(t, "i-1", instances[0].ID)
	assert.True(t, decimal.NewFromInt(9).Equal(SumTotal(instances)))
}
