package report

import (
	"github.com/elC0mpa/aws-tagger/model"
)

const (
	launchTimeLayout = "2006-01-02 15:04:05"
	reportExtension  = ".xlsx"
)

type service struct {
	run model.RunContext
}

type ReportService interface {
	FilterByTag(instances []model.InstanceRecord, tagKey, tagValue string) []model.InstanceRecord
	Project(instances []model.InstanceRecord) [][]any
	ProjectKube(usages []model.ServiceUsage) [][]any
	FileName(selector, accountID string) string
	KubeFileName(cluster string) string
}
