package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/elC0mpa/aws-tagger/model"
)

type ec2API interface {
	ec2.DescribeInstancesAPIClient
	ec2.DescribeVolumesAPIClient
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
	CreateTags(ctx context.Context, params *ec2.CreateTagsInput, optFns ...func(*ec2.Options)) (*ec2.CreateTagsOutput, error)
}

// clientFactory returns an EC2 client bound to a region.
type clientFactory func(region string) ec2API

type service struct {
	defaultRegion string
	clientFor     clientFactory
}

type EC2Service interface {
	GetRegions(ctx context.Context) ([]string, error)
	ListInstances(ctx context.Context, region string) ([]model.RawInstance, error)
	ListVolumes(ctx context.Context, region string) ([]model.RawVolume, error)
	SetTags(ctx context.Context, region, instanceID string, tags []model.Tag) error
}
