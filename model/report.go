package model

// ReportColumn is a column of the exported instance report. The same enum
// drives export and re-import so positions cannot drift apart.
type ReportColumn int

const (
	ColRegion ReportColumn = iota
	ColInstanceName
	ColID
	ColType
	ColState
	ColPublicIP
	ColLaunchTime
	ColDepartment
	ColTeam
	ColTeamOwner
	ColProject
	ColFinance
	ColEnvironment
	ColComputeCost
	ColStorageCost
	ColTotalCost
	ColVolumeSizes
)

var reportColumnNames = [...]string{
	ColRegion:       "Region",
	ColInstanceName: "Instance name",
	ColID:           "ID",
	ColType:         "Type",
	ColState:        "State",
	ColPublicIP:     "Public IP",
	ColLaunchTime:   "Launch time",
	ColDepartment:   "Department",
	ColTeam:         "Team",
	ColTeamOwner:    "Team Owner",
	ColProject:      "Project",
	ColFinance:      "Finance",
	ColEnvironment:  "Environment",
	ColComputeCost:  "Compute monthly cost (USD)",
	ColStorageCost:  "Storage monthly cost (USD)",
	ColTotalCost:    "Compute + Storage monthly cost (USD)",
	ColVolumeSizes:  "Block devices size (GB)",
}

// ReportColumnCount is the number of columns in the instance report.
const ReportColumnCount = len(reportColumnNames)

func (c ReportColumn) String() string {
	if c < 0 || int(c) >= ReportColumnCount {
		return ""
	}
	return reportColumnNames[c]
}

// ReportHeader returns the header row of the instance report.
func ReportHeader() []string {
	return append([]string(nil), reportColumnNames[:]...)
}

// KubeReportHeader is the header row of the Kubernetes service report.
func KubeReportHeader() []string {
	return []string{
		"Service Name",
		"Namespace",
		"Owner",
		"Pod Count",
		"CPU(one pod)",
		"RAM(one pod)",
		"CPU(total)",
		"RAM(total)",
		"Price-per-CPU(USD)",
		"Price-per-RAM(USD)",
	}
}
