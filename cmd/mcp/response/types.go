package response

// AccountInfo represents cloud account identity
type AccountInfo struct {
	Provider    string `json:"provider"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// Tag is a single instance tag
type Tag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// VolumeCost represents a priced EBS volume attached to an instance
type VolumeCost struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	SizeGB      int32   `json:"size_gb"`
	IOPS        *int32  `json:"iops,omitempty"`
	MonthlyCost float64 `json:"monthly_cost"`
}

// InstanceCost represents the estimated monthly cost of one instance
type InstanceCost struct {
	ID          string       `json:"id"`
	Name        string       `json:"name,omitempty"`
	Region      string       `json:"region"`
	Type        string       `json:"type"`
	State       string       `json:"state"`
	LaunchTime  string       `json:"launch_time,omitempty"`
	Tags        []Tag        `json:"tags"`
	Volumes     []VolumeCost `json:"volumes"`
	ComputeCost float64      `json:"compute_monthly_cost"`
	StorageCost float64      `json:"storage_monthly_cost"`
	TotalCost   float64      `json:"total_monthly_cost"`
}

// GroupCost is the summed monthly cost of one department
type GroupCost struct {
	Name      string  `json:"name"`
	Instances int     `json:"instances"`
	Total     float64 `json:"total_monthly_cost"`
}

// InstanceCostSummary is the priced inventory of an account
type InstanceCostSummary struct {
	Provider      string         `json:"provider"`
	AccountID     string         `json:"account_id"`
	Selector      string         `json:"selector"`
	Currency      string         `json:"currency"`
	Total         float64        `json:"total_monthly_cost"`
	ByDepartment  []GroupCost    `json:"by_department"`
	Instances     []InstanceCost `json:"instances"`
	FailedRegions []string       `json:"failed_regions,omitempty"`
}

// ServiceCost represents the approximated monthly cost of a Kubernetes service
type ServiceCost struct {
	Name      string  `json:"name"`
	Namespace string  `json:"namespace"`
	Owner     string  `json:"owner,omitempty"`
	PodCount  int     `json:"pod_count"`
	CPUPerPod float64 `json:"cpu_per_pod"`
	RAMPerPod float64 `json:"ram_gb_per_pod"`
	CPUTotal  float64 `json:"cpu_total"`
	RAMTotal  float64 `json:"ram_gb_total"`
	CPUCost   float64 `json:"cpu_monthly_cost"`
	RAMCost   float64 `json:"ram_monthly_cost"`
}

// ServiceCostSummary is the per-service cost of a cluster
type ServiceCostSummary struct {
	Cluster  string        `json:"cluster"`
	Currency string        `json:"currency"`
	Total    float64       `json:"total_monthly_cost"`
	Services []ServiceCost `json:"services"`
}
