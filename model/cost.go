package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceEntry is one normalized catalog price for a resource shape.
type PriceEntry struct {
	ShapeKey  string
	UnitPrice decimal.Decimal
	// Attributes is informational only (memory, vcpu).
	Attributes map[string]string
}

// PriceIndex maps a shape key (instance type, volume type) to its price.
type PriceIndex map[string]PriceEntry

// Lookup returns the entry for a shape key.
func (p PriceIndex) Lookup(shape string) (PriceEntry, bool) {
	entry, ok := p[shape]
	return entry, ok
}

// VolumeRecord is a priced EBS volume.
type VolumeRecord struct {
	ID          string
	SizeGB      int32
	IOPS        *int32
	Type        string
	MonthlyCost decimal.Decimal
}

// InstanceRecord is the reporting unit: a priced instance with its attached
// volumes copied in by value.
type InstanceRecord struct {
	ID                 string
	Type               string
	Region             string
	State              string
	PublicIP           string
	PrivateIP          string
	LaunchTime         time.Time
	Tags               []Tag
	AttachedVolumes    []VolumeRecord
	ComputeMonthlyCost decimal.Decimal
	StorageMonthlyCost decimal.Decimal
	TotalMonthlyCost   decimal.Decimal
}

// TagValue returns the first value for key and whether it was present.
func (i InstanceRecord) TagValue(key string) (string, bool) {
	for _, tag := range i.Tags {
		if tag.Key == key {
			return tag.Value, true
		}
	}
	return "", false
}

// VolumeSizes returns the attached volume sizes in attachment order.
func (i InstanceRecord) VolumeSizes() []int32 {
	sizes := make([]int32, 0, len(i.AttachedVolumes))
	for _, v := range i.AttachedVolumes {
		sizes = append(sizes, v.SizeGB)
	}
	return sizes
}

// CostReport is the priced, filtered inventory of one account. FailedRegions
// lists the regions left out because their listing failed.
type CostReport struct {
	AccountID     string
	Instances     []InstanceRecord
	FailedRegions []RegionFailure
}

// FailedRegionNames returns the names of the regions left out of the report.
func (r CostReport) FailedRegionNames() []string {
	names := make([]string, 0, len(r.FailedRegions))
	for _, f := range r.FailedRegions {
		names = append(names, f.Region)
	}
	return names
}
