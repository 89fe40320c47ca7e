package response

import (
	"time"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/elC0mpa/aws-tagger/utils"
	"github.com/shopspring/decimal"
)

const currency = "USD"

// ConvertAccountInfo converts model.AccountInfo to response.AccountInfo
func ConvertAccountInfo(info *model.AccountInfo) *AccountInfo {
	if info == nil {
		return nil
	}
	return &AccountInfo{
		Provider:    info.Provider,
		AccountID:   info.AccountID,
		AccountName: info.AccountName,
	}
}

// ConvertInstanceCosts converts priced instances to a summary
func ConvertInstanceCosts(costs model.CostReport, selector string) InstanceCostSummary {
	instances := costs.Instances
	summary := InstanceCostSummary{
		Provider:     "aws",
		AccountID:    costs.AccountID,
		Selector:     selector,
		Currency:     currency,
		Total:        utils.SumTotal(instances).InexactFloat64(),
		ByDepartment: []GroupCost{},
		Instances:    make([]InstanceCost, 0, len(instances)),
	}
	if len(costs.FailedRegions) > 0 {
		summary.FailedRegions = costs.FailedRegionNames()
	}

	for _, group := range utils.CostByTag(instances, model.TagDepartment) {
		summary.ByDepartment = append(summary.ByDepartment, GroupCost{
			Name:      group.Name,
			Instances: group.Instances,
			Total:     group.Total.InexactFloat64(),
		})
	}

	for _, instance := range instances {
		summary.Instances = append(summary.Instances, ConvertInstance(instance))
	}
	return summary
}

// ConvertInstance converts one model.InstanceRecord
func ConvertInstance(instance model.InstanceRecord) InstanceCost {
	name, _ := instance.TagValue(model.TagName)

	result := InstanceCost{
		ID:          instance.ID,
		Name:        name,
		Region:      instance.Region,
		Type:        instance.Type,
		State:       instance.State,
		Tags:        make([]Tag, 0, len(instance.Tags)),
		Volumes:     make([]VolumeCost, 0, len(instance.AttachedVolumes)),
		ComputeCost: instance.ComputeMonthlyCost.InexactFloat64(),
		StorageCost: instance.StorageMonthlyCost.InexactFloat64(),
		TotalCost:   instance.TotalMonthlyCost.InexactFloat64(),
	}
	if !instance.LaunchTime.IsZero() {
		result.LaunchTime = instance.LaunchTime.UTC().Format(time.RFC3339)
	}

	for _, tag := range instance.Tags {
		result.Tags = append(result.Tags, Tag{Key: tag.Key, Value: tag.Value})
	}
	for _, v := range instance.AttachedVolumes {
		result.Volumes = append(result.Volumes, VolumeCost{
			ID:          v.ID,
			Type:        v.Type,
			SizeGB:      v.SizeGB,
			IOPS:        v.IOPS,
			MonthlyCost: v.MonthlyCost.InexactFloat64(),
		})
	}
	return result
}

// ConvertServiceCosts converts Kubernetes service usage to a summary
func ConvertServiceCosts(cluster string, usages []model.ServiceUsage) ServiceCostSummary {
	summary := ServiceCostSummary{
		Cluster:  cluster,
		Currency: currency,
		Services: make([]ServiceCost, 0, len(usages)),
	}

	total := decimal.Zero
	for _, u := range usages {
		total = total.Add(u.CPUCost).Add(u.RAMCost)
		summary.Services = append(summary.Services, ServiceCost{
			Name:      u.ServiceName,
			Namespace: u.Namespace,
			Owner:     u.Owner,
			PodCount:  u.PodCount,
			CPUPerPod: u.CPUPerPod.InexactFloat64(),
			RAMPerPod: u.RAMPerPod.InexactFloat64(),
			CPUTotal:  u.CPUTotal.InexactFloat64(),
			RAMTotal:  u.RAMTotal.InexactFloat64(),
			CPUCost:   u.CPUCost.InexactFloat64(),
			RAMCost:   u.RAMCost.InexactFloat64(),
		})
	}
	summary.Total = total.InexactFloat64()
	return summary
}
