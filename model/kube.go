package model

import "github.com/shopspring/decimal"

// OwnershipKey identifies a Kubernetes reporting unit.
type OwnershipKey struct {
	ServiceName string
	Namespace   string
}

// ServiceUsage is the approximated monthly cost of one service: the resource
// requests of one sampled pod multiplied by the number of pods behind it.
type ServiceUsage struct {
	OwnershipKey
	Owner     string
	PodCount  int
	CPUPerPod decimal.Decimal // cores
	RAMPerPod decimal.Decimal // GiB
	CPUTotal  decimal.Decimal
	RAMTotal  decimal.Decimal
	CPUCost   decimal.Decimal
	RAMCost   decimal.Decimal
}
