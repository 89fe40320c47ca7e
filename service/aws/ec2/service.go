package awsec2

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/elC0mpa/aws-tagger/model"
)

func NewService(awsconfig aws.Config) *service {
	return &service{
		defaultRegion: awsconfig.Region,
		clientFor: cachedClients(func(region string) ec2API {
			return ec2.NewFromConfig(awsconfig, func(o *ec2.Options) {
				o.Region = region
			})
		}),
	}
}

// cachedClients builds at most one client per region and is safe for
// concurrent use.
func cachedClients(newClient clientFactory) clientFactory {
	var mu sync.Mutex
	clients := make(map[string]ec2API)
	return func(region string) ec2API {
		mu.Lock()
		defer mu.Unlock()
		if client, ok := clients[region]; ok {
			return client
		}
		client := newClient(region)
		clients[region] = client
		return client
	}
}

// GetRegions returns the regions enabled for the account, sorted by name.
func (s *service) GetRegions(ctx context.Context) ([]string, error) {
	output, err := s.clientFor(s.defaultRegion).DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to describe regions: %w", err)
	}

	regions := make([]string, 0, len(output.Regions))
	for _, region := range output.Regions {
		regions = append(regions, aws.ToString(region.RegionName))
	}
	sort.Strings(regions)

	return regions, nil
}

// ListInstances returns every instance in the region in provider listing order.
func (s *service) ListInstances(ctx context.Context, region string) ([]model.RawInstance, error) {
	paginator := ec2.NewDescribeInstancesPaginator(s.clientFor(region), &ec2.DescribeInstancesInput{})

	var instances []model.RawInstance
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe instances in %s: %w", region, err)
		}
		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				instances = append(instances, toRawInstance(region, instance))
			}
		}
	}

	return instances, nil
}

// ListVolumes returns every EBS volume in the region.
func (s *service) ListVolumes(ctx context.Context, region string) ([]model.RawVolume, error) {
	paginator := ec2.NewDescribeVolumesPaginator(s.clientFor(region), &ec2.DescribeVolumesInput{})

	var volumes []model.RawVolume
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe volumes in %s: %w", region, err)
		}
		for _, volume := range page.Volumes {
			volumes = append(volumes, model.RawVolume{
				ID:     aws.ToString(volume.VolumeId),
				Region: region,
				SizeGB: aws.ToInt32(volume.Size),
				IOPS:   volume.Iops,
				Type:   string(volume.VolumeType),
			})
		}
	}

	return volumes, nil
}

// SetTags writes all tags on the instance in a single CreateTags call.
func (s *service) SetTags(ctx context.Context, region, instanceID string, tags []model.Tag) error {
	awsTags := make([]types.Tag, 0, len(tags))
	for _, tag := range tags {
		awsTags = append(awsTags, types.Tag{
			Key:   aws.String(tag.Key),
			Value: aws.String(tag.Value),
		})
	}

	_, err := s.clientFor(region).CreateTags(ctx, &ec2.CreateTagsInput{
		Resources: []string{instanceID},
		Tags:      awsTags,
	})
	if err != nil {
		return fmt.Errorf("%w: %s in %s: %v", model.ErrTagApply, instanceID, region, err)
	}
	return nil
}

func toRawInstance(region string, instance types.Instance) model.RawInstance {
	raw := model.RawInstance{
		ID:         aws.ToString(instance.InstanceId),
		Type:       string(instance.InstanceType),
		Region:     region,
		PublicIP:   aws.ToString(instance.PublicIpAddress),
		PrivateIP:  aws.ToString(instance.PrivateIpAddress),
		LaunchTime: aws.ToTime(instance.LaunchTime),
	}
	if instance.State != nil {
		raw.State = string(instance.State.Name)
	}

	for _, tag := range instance.Tags {
		raw.Tags = append(raw.Tags, model.Tag{
			Key:   aws.ToString(tag.Key),
			Value: aws.ToString(tag.Value),
		})
	}

	for _, mapping := range instance.BlockDeviceMappings {
		if mapping.Ebs != nil {
			raw.VolumeIDs = append(raw.VolumeIDs, aws.ToString(mapping.Ebs.VolumeId))
		}
	}

	return raw
}
