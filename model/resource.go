package model

// AccountInfo represents cloud account identity
type AccountInfo struct {
	Provider    string
	AccountID   string
	AccountName string
}

// Organizational tag keys managed by the report and tag update flows.
const (
	TagName        = "Name"
	TagDepartment  = "Department"
	TagTeam        = "Team"
	TagTeamOwner   = "TeamOwner"
	TagProject     = "Project"
	TagFinance     = "Finance"
	TagEnvironment = "Environment"
)

// TagUpdate is one parsed row of an edited report. Empty values are kept and
// applied as empty tag values.
type TagUpdate struct {
	Row         int
	InstanceID  string
	Region      string
	Department  string
	Team        string
	TeamOwner   string
	Project     string
	Finance     string
	Environment string
}

// Tags returns the full set of organizational tags written for the update, in
// the order they are sent to the provider.
func (u TagUpdate) Tags() []Tag {
	return []Tag{
		{Key: TagDepartment, Value: u.Department},
		{Key: TagTeamOwner, Value: u.TeamOwner},
		{Key: TagProject, Value: u.Project},
		{Key: TagFinance, Value: u.Finance},
		{Key: TagTeam, Value: u.Team},
		{Key: TagEnvironment, Value: u.Environment},
	}
}

// RowError is a table row rejected during parsing.
type RowError struct {
	Row    int
	Reason string
}

// TagFailure is a tag-set call the provider rejected.
type TagFailure struct {
	InstanceID string
	Region     string
	Err        error
}

// ReconcileResult summarizes a tag update batch.
type ReconcileResult struct {
	// DryRun is set when no tag-set call was issued and Applied lists the
	// planned updates.
	DryRun   bool
	Applied  []string
	Failed   []TagFailure
	Rejected []RowError
}

// FailedIDs returns the instance ids whose tag-set call failed.
func (r ReconcileResult) FailedIDs() []string {
	ids := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		ids = append(ids, f.InstanceID)
	}
	return ids
}
