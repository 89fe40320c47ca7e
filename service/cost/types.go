package cost

import (
	"github.com/elC0mpa/aws-tagger/model"
	"github.com/shopspring/decimal"
)

// Rates holds the constants of the monthly cost formulas.
type Rates struct {
	HoursPerDay  decimal.Decimal
	DaysPerMonth decimal.Decimal
	// ProvisionedIOPSRate is charged per provisioned IOPS per month on
	// volume types listed in ProvisionedIOPSTypes.
	ProvisionedIOPSRate  decimal.Decimal
	ProvisionedIOPSTypes []string
}

// DefaultRates uses a 30.5 day month and the io1 per-IOPS tier.
func DefaultRates() Rates {
	return Rates{
		HoursPerDay:          decimal.NewFromInt(24),
		DaysPerMonth:         decimal.RequireFromString("30.5"),
		ProvisionedIOPSRate:  decimal.RequireFromString("0.065"),
		ProvisionedIOPSTypes: []string{"io1"},
	}
}

const (
	computePlaces = 2
	storagePlaces = 4
)

type service struct {
	rates     Rates
	iopsTypes map[string]bool
}

type CostService interface {
	PriceVolumes(volumes []model.RawVolume, index model.PriceIndex) []model.VolumeRecord
	PriceInstances(instances []model.RawInstance, volumes []model.VolumeRecord, index model.PriceIndex) []model.InstanceRecord
}
