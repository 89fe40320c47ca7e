package cost

import (
	"github.com/elC0mpa/aws-tagger/model"
	"github.com/shopspring/decimal"
)

func NewService(rates Rates) *service {
	iopsTypes := make(map[string]bool, len(rates.ProvisionedIOPSTypes))
	for _, t := range rates.ProvisionedIOPSTypes {
		iopsTypes[t] = true
	}
	return &service{
		rates:     rates,
		iopsTypes: iopsTypes,
	}
}

// PriceVolumes prices every volume. A volume type missing from the index
// costs zero.
func (s *service) PriceVolumes(volumes []model.RawVolume, index model.PriceIndex) []model.VolumeRecord {
	records := make([]model.VolumeRecord, 0, len(volumes))
	for _, v := range volumes {
		records = append(records, model.VolumeRecord{
			ID:          v.ID,
			SizeGB:      v.SizeGB,
			IOPS:        v.IOPS,
			Type:        v.Type,
			MonthlyCost: s.volumeCost(v, index),
		})
	}
	return records
}

func (s *service) volumeCost(v model.RawVolume, index model.PriceIndex) decimal.Decimal {
	entry, ok := index.Lookup(v.Type)
	if !ok {
		return decimal.Zero
	}

	cost := entry.UnitPrice.Mul(decimal.NewFromInt32(v.SizeGB))
	if s.iopsTypes[v.Type] && v.IOPS != nil {
		cost = cost.Add(s.rates.ProvisionedIOPSRate.Mul(decimal.NewFromInt32(*v.IOPS)))
	}
	return cost
}

// PriceInstances prices every instance and attaches the priced volumes named
// in its block device mappings. Mapped volumes that were not discovered are
// left out of the storage cost. Output order matches input order.
func (s *service) PriceInstances(instances []model.RawInstance, volumes []model.VolumeRecord, index model.PriceIndex) []model.InstanceRecord {
	byID := make(map[string]model.VolumeRecord, len(volumes))
	for _, v := range volumes {
		byID[v.ID] = v
	}

	records := make([]model.InstanceRecord, 0, len(instances))
	for _, raw := range instances {
		record := model.InstanceRecord{
			ID:                 raw.ID,
			Type:               raw.Type,
			Region:             raw.Region,
			State:              raw.State,
			PublicIP:           raw.PublicIP,
			PrivateIP:          raw.PrivateIP,
			LaunchTime:         raw.LaunchTime,
			Tags:               append([]model.Tag(nil), raw.Tags...),
			ComputeMonthlyCost: s.computeCost(raw.Type, index),
		}

		storage := decimal.Zero
		for _, id := range raw.VolumeIDs {
			volume, ok := byID[id]
			if !ok {
				continue
			}
			if volume.IOPS != nil {
				iops := *volume.IOPS
				volume.IOPS = &iops
			}
			record.AttachedVolumes = append(record.AttachedVolumes, volume)
			storage = storage.Add(volume.MonthlyCost)
		}

		record.StorageMonthlyCost = storage.Round(storagePlaces)
		record.TotalMonthlyCost = record.ComputeMonthlyCost.Add(record.StorageMonthlyCost).Round(storagePlaces)
		records = append(records, record)
	}

	return records
}

func (s *service) computeCost(instanceType string, index model.PriceIndex) decimal.Decimal {
	entry, ok := index.Lookup(instanceType)
	if !ok {
		return decimal.Zero
	}
	return entry.UnitPrice.Mul(s.rates.HoursPerDay).Mul(s.rates.DaysPerMonth).Round(computePlaces)
}
