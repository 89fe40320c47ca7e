package kube

import (
	"context"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/shopspring/decimal"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

const (
	podKind      = "Pod"
	perPodPlaces = 4
	costPlaces   = 2
)

// Prices converts requested resources into monthly cost.
type Prices struct {
	CPUHourPrice   decimal.Decimal
	RAMGBHourPrice decimal.Decimal
	HoursPerDay    decimal.Decimal
	DaysPerMonth   decimal.Decimal
}

type service struct {
	client     client.Reader
	prices     Prices
	ownerLabel string
}

type KubeService interface {
	Collect(ctx context.Context) ([]model.ServiceUsage, error)
}
