package model

import "time"

// CommonSelector is the department value that disables report filtering.
const CommonSelector = "common"

// AllSelector is the internal filter sentinel matching every instance.
const AllSelector = "__all__"

// Command is the CLI verb selected for a run.
type Command string

const (
	CommandReport     Command = "report"
	CommandUpdateTags Command = "update-tags"
	CommandKubeReport Command = "kube-report"
)

type Flags struct {
	Command Command

	// Common flags
	ConfigPath string
	// ConfigExplicit is set when --config was given on the command line.
	ConfigExplicit bool

	// report
	Department string
	TagKey     string

	// update-tags
	Filename string
	DryRun   bool
	Strict   bool

	// kube-report
	Kubeconfig  string
	KubeContext string
}

// RunContext carries per-run values built once at process start.
type RunContext struct {
	Started    time.Time
	ReportsDir string
}

// Date is the report date stamp used in file names.
func (r RunContext) Date() string {
	return r.Started.Format("2006-01-02")
}
