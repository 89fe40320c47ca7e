package awspricing

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/pricing"
	"github.com/aws/aws-sdk-go-v2/service/pricing/types"
)

const serviceCode = "AmazonEC2"

// NewService builds a catalog client. The Price List API is only served from
// a few regions, so pricingRegion is usually us-east-1 whatever the profile
// region is. location is the catalog location name, e.g. "US East (N. Virginia)".
func NewService(awsconfig aws.Config, pricingRegion, location string) *service {
	client := pricing.NewFromConfig(awsconfig, func(o *pricing.Options) {
		o.Region = pricingRegion
	})
	return &service{
		client:   client,
		location: location,
	}
}

// ComputePages streams Linux, shared tenancy, on-demand instance prices.
func (s *service) ComputePages(ctx context.Context, handle func(page []string) error) error {
	return s.pages(ctx, []types.Filter{
		termMatch("operatingSystem", "Linux"),
		termMatch("location", s.location),
		termMatch("tenancy", "Shared"),
		termMatch("preInstalledSw", "NA"),
		termMatch("capacitystatus", "Used"),
	}, handle)
}

// StoragePages streams EBS storage prices.
func (s *service) StoragePages(ctx context.Context, handle func(page []string) error) error {
	return s.pages(ctx, []types.Filter{
		termMatch("productFamily", "Storage"),
		termMatch("location", s.location),
	}, handle)
}

func (s *service) pages(ctx context.Context, filters []types.Filter, handle func(page []string) error) error {
	paginator := pricing.NewGetProductsPaginator(s.client, &pricing.GetProductsInput{
		ServiceCode:   aws.String(serviceCode),
		FormatVersion: aws.String("aws_v1"),
		Filters:       filters,
		MaxResults:    aws.Int32(100),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("failed to get %s products: %w", serviceCode, err)
		}
		if err := handle(page.PriceList); err != nil {
			return err
		}
	}

	return nil
}

func termMatch(field, value string) types.Filter {
	return types.Filter{
		Type:  types.FilterTypeTermMatch,
		Field: aws.String(field),
		Value: aws.String(value),
	}
}
