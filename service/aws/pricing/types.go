package awspricing

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/pricing"
)

type pricingAPI interface {
	pricing.GetProductsAPIClient
}

type service struct {
	client   pricingAPI
	location string
}

type PricingService interface {
	ComputePages(ctx context.Context, handle func(page []string) error) error
	StoragePages(ctx context.Context, handle func(page []string) error) error
}
