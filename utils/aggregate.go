package utils

import (
	"sort"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/shopspring/decimal"
)

const unassigned = "(none)"

// GroupCost is the summed monthly cost of one tag value.
type GroupCost struct {
	Name      string
	Instances int
	Total     decimal.Decimal
}

// CostByTag sums total monthly cost per value of tagKey, most expensive first.
// Instances without the tag are grouped as unassigned.
func CostByTag(instances []model.InstanceRecord, tagKey string) []GroupCost {
	groups := make(map[string]*GroupCost)
	for _, instance := range instances {
		name, ok := instance.TagValue(tagKey)
		if !ok || name == "" {
			name = unassigned
		}
		group, ok := groups[name]
		if !ok {
			group = &GroupCost{Name: name, Total: decimal.Zero}
			groups[name] = group
		}
		group.Instances++
		group.Total = group.Total.Add(instance.TotalMonthlyCost)
	}

	result := make([]GroupCost, 0, len(groups))
	for _, group := range groups {
		result = append(result, *group)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Total.Equal(result[j].Total) {
			return result[i].Total.GreaterThan(result[j].Total)
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// TopByTotal returns up to n instances ordered by total monthly cost, highest first.
func TopByTotal(instances []model.InstanceRecord, n int) []model.InstanceRecord {
	sorted := append([]model.InstanceRecord(nil), instances...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalMonthlyCost.GreaterThan(sorted[j].TotalMonthlyCost)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// SumTotal is the total monthly cost of instances.
func SumTotal(instances []model.InstanceRecord) decimal.Decimal {
	total := decimal.Zero
	for _, instance := range instances {
		total = total.Add(instance.TotalMonthlyCost)
	}
	return total
}

// SumComputeCost is the total monthly compute cost of instances.
func SumComputeCost(instances []model.InstanceRecord) decimal.Decimal {
	total := decimal.Zero
	for _, instance := range instances {
		total = total.Add(instance.ComputeMonthlyCost)
	}
	return total
}

// SumStorageCost is the total monthly storage cost of instances.
func SumStorageCost(instances []model.InstanceRecord) decimal.Decimal {
	total := decimal.Zero
	for _, instance := range instances {
		total = total.Add(instance.StorageMonthlyCost)
	}
	return total
}
