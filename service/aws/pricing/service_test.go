package awspricing

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePricing struct {
	pages  []*pricing.GetProductsOutput
	inputs []*pricing.GetProductsInput
	err    error
}

func (f *fakePricing) GetProducts(_ context.Context, params *pricing.GetProductsInput, _ ...func(*pricing.Options)) (*pricing.GetProductsOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	page := f.pages[len(f.inputs)]
	f.inputs = append(f.inputs, params)
	return page, nil
}

func filterValues(input *pricing.GetProductsInput) map[string]string {
	values := make(map[string]string)
	for _, f := range input.Filters {
		values[aws.ToString(f.Field)] = aws.ToString(f.Value)
	}
	return values
}

func TestComputePages_FiltersAndPaginates(t *testing.T) {
	fake := &fakePricing{pages: []*pricing.GetProductsOutput{
		{PriceList: []string{"a", "b"}, NextToken: aws.String("t1")},
		{PriceList: []string{"c"}},
	}}
	s := &service{client: fake, location: "US East (N. Virginia)"}

	var got [][]string
	err := s.ComputePages(context.Background(), func(page []string) error {
		got = append(got, page)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, got)
	require.Len(t, fake.inputs, 2)
	assert.Equal(t, "t1", aws.ToString(fake.inputs[1].NextToken))
	assert.Equal(t, map[string]string{
		"operatingSystem": "Linux",
		"location":        "US East (N. Virginia)",
		"tenancy":         "Shared",
		"preInstalledSw":  "NA",
		"capacitystatus":  "Used",
	}, filterValues(fake.inputs[0]))
	assert.Equal(t, "AmazonEC2", aws.ToString(fake.inputs[0].ServiceCode))
}

func TestStoragePages_Filters(t *testing.T) {
	fake := &fakePricing{pages: []*pricing.GetProductsOutput{{PriceList: []string{"x"}}}}
	s := &service{client: fake, location: "EU (Ireland)"}

	err := s.StoragePages(context.Background(), func([]string) error { return nil })

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"productFamily": "Storage",
		"location":      "EU (Ireland)",
	}, filterValues(fake.inputs[0]))
}

func TestPages_StopsOnHandlerError(t *testing.T) {
	fake := &fakePricing{pages: []*pricing.GetProductsOutput{
		{PriceList: []string{"a"}, NextToken: aws.String("t1")},
		{PriceList: []string{"b"}},
	}}
	s := &service{client: fake}
	boom := errors.New("boom")

	err := s.StoragePages(context.Background(), func([]string) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.Len(t, fake.inputs, 1)
}

func TestPages_WrapsAPIError(t *testing.T) {
	s := &service{client: &fakePricing{err: errors.New("throttled")}}

	err := s.ComputePages(context.Background(), func([]string) error { return nil })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}
