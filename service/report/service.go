package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/shopspring/decimal"
)

func NewService(run model.RunContext) *service {
	return &service{
		run: run,
	}
}

// SelectorValue maps a user supplied selector to the value FilterByTag
// expects. The common department disables filtering.
func SelectorValue(selector string) string {
	if selector == "" || strings.EqualFold(selector, model.CommonSelector) {
		return model.AllSelector
	}
	return selector
}

// FilterByTag keeps the instances carrying at least one tag with exactly
// tagKey and tagValue. The all sentinel returns every instance.
func (s *service) FilterByTag(instances []model.InstanceRecord, tagKey, tagValue string) []model.InstanceRecord {
	if tagValue == model.AllSelector {
		return instances
	}

	filtered := make([]model.InstanceRecord, 0)
	for _, instance := range instances {
		for _, tag := range instance.Tags {
			if tag.Key == tagKey && tag.Value == tagValue {
				filtered = append(filtered, instance)
				break
			}
		}
	}
	return filtered
}

// Project turns priced instances into report rows ordered as model.ReportHeader.
func (s *service) Project(instances []model.InstanceRecord) [][]any {
	rows := make([][]any, 0, len(instances))
	for _, instance := range instances {
		row := make([]any, model.ReportColumnCount)
		row[model.ColRegion] = instance.Region
		row[model.ColInstanceName] = tagOrEmpty(instance, model.TagName)
		row[model.ColID] = instance.ID
		row[model.ColType] = instance.Type
		row[model.ColState] = instance.State
		row[model.ColPublicIP] = instance.PublicIP
		row[model.ColLaunchTime] = formatLaunchTime(instance)
		row[model.ColDepartment] = tagOrEmpty(instance, model.TagDepartment)
		row[model.ColTeam] = tagOrEmpty(instance, model.TagTeam)
		row[model.ColTeamOwner] = tagOrEmpty(instance, model.TagTeamOwner)
		row[model.ColProject] = tagOrEmpty(instance, model.TagProject)
		row[model.ColFinance] = tagOrEmpty(instance, model.TagFinance)
		row[model.ColEnvironment] = tagOrEmpty(instance, model.TagEnvironment)
		row[model.ColComputeCost] = cell(instance.ComputeMonthlyCost)
		row[model.ColStorageCost] = cell(instance.StorageMonthlyCost)
		row[model.ColTotalCost] = cell(instance.TotalMonthlyCost)
		row[model.ColVolumeSizes] = formatSizes(instance.VolumeSizes())
		rows = append(rows, row)
	}
	return rows
}

// ProjectKube turns service usages into rows ordered as model.KubeReportHeader.
func (s *service) ProjectKube(usages []model.ServiceUsage) [][]any {
	rows := make([][]any, 0, len(usages))
	for _, u := range usages {
		rows = append(rows, []any{
			u.ServiceName,
			u.Namespace,
			u.Owner,
			u.PodCount,
			cell(u.CPUPerPod),
			cell(u.RAMPerPod),
			cell(u.CPUTotal),
			cell(u.RAMTotal),
			cell(u.CPUCost),
			cell(u.RAMCost),
		})
	}
	return rows
}

// FileName is the path of the instance report for a selector and account.
func (s *service) FileName(selector, accountID string) string {
	name := fmt.Sprintf("AWS-report-%s-%s-(%s)%s", stripSpaces(selector), accountID, s.run.Date(), reportExtension)
	return filepath.Join(s.run.ReportsDir, name)
}

// KubeFileName is the path of the Kubernetes report for a cluster.
func (s *service) KubeFileName(cluster string) string {
	name := fmt.Sprintf("kube-report-(%s)-(%s)%s", stripSpaces(cluster), s.run.Date(), reportExtension)
	return filepath.Join(s.run.ReportsDir, name)
}

func tagOrEmpty(instance model.InstanceRecord, key string) string {
	value, _ := instance.TagValue(key)
	return value
}

func formatLaunchTime(instance model.InstanceRecord) string {
	if instance.LaunchTime.IsZero() {
		return ""
	}
	return instance.LaunchTime.UTC().Format(launchTimeLayout)
}

func formatSizes(sizes []int32) string {
	parts := make([]string, 0, len(sizes))
	for _, size := range sizes {
		parts = append(parts, fmt.Sprintf("%d", size))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// cell converts money to a spreadsheet number.
func cell(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
