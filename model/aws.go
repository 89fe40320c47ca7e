package model

import "time"

// AWS-specific models

// Tag is a single key/value pair as returned by the provider. Keys are not
// guaranteed to be unique on a resource.
type Tag struct {
	Key   string
	Value string
}

// RawInstance is an EC2 instance as listed in one region, before pricing.
type RawInstance struct {
	ID         string
	Type       string
	Region     string
	State      string
	PublicIP   string
	PrivateIP  string
	LaunchTime time.Time
	Tags       []Tag
	// VolumeIDs lists the EBS volume ids from the instance block device mappings.
	VolumeIDs []string
}

// RawVolume is an EBS volume as listed in one region, before pricing.
type RawVolume struct {
	ID     string
	Region string
	SizeGB int32
	IOPS   *int32
	Type   string
}

// Inventory is the merged result of listing every region.
type Inventory struct {
	Instances []RawInstance
	Volumes   []RawVolume
}

// RegionFailure records a region whose listing failed and was left out.
type RegionFailure struct {
	Region string
	Err    error
}
