package kube

import (
	"context"
	"fmt"
	"sort"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

var bytesPerGiB = decimal.NewFromInt(1 << 30)

func NewService(c client.Reader, prices Prices, ownerLabel string) *service {
	return &service{
		client:     c,
		prices:     prices,
		ownerLabel: ownerLabel,
	}
}

// Collect estimates the monthly cost of every service backed by ready pods.
// A namespace that cannot be listed is logged and skipped.
func (s *service) Collect(ctx context.Context) ([]model.ServiceUsage, error) {
	logger := zerolog.Ctx(ctx)

	namespaces := &corev1.NamespaceList{}
	if err := s.client.List(ctx, namespaces); err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}

	var usages []model.ServiceUsage
	for _, ns := range namespaces.Items {
		nsUsages, err := s.collectNamespace(ctx, ns.Name)
		if err != nil {
			logger.Warn().Err(err).Str("namespace", ns.Name).Msg("Skipping namespace")
			continue
		}
		usages = append(usages, nsUsages...)
	}

	sort.SliceStable(usages, func(i, j int) bool {
		if usages[i].Namespace != usages[j].Namespace {
			return usages[i].Namespace < usages[j].Namespace
		}
		return usages[i].ServiceName < usages[j].ServiceName
	})

	logger.Info().Int("services", len(usages)).Int("namespaces", len(namespaces.Items)).Msg("Collected service usage")
	return usages, nil
}

func (s *service) collectNamespace(ctx context.Context, namespace string) ([]model.ServiceUsage, error) {
	logger := zerolog.Ctx(ctx)

	endpoints := &corev1.EndpointsList{}
	if err := s.client.List(ctx, endpoints, client.InNamespace(namespace)); err != nil {
		return nil, fmt.Errorf("failed to list endpoints: %w", err)
	}

	var usages []model.ServiceUsage
	for i := range endpoints.Items {
		ep := &endpoints.Items[i]
		podRef, podCount := readyPods(ep)
		if podRef == nil {
			continue
		}

		podNamespace := podRef.Namespace
		if podNamespace == "" {
			podNamespace = namespace
		}
		pod := &corev1.Pod{}
		if err := s.client.Get(ctx, types.NamespacedName{Namespace: podNamespace, Name: podRef.Name}, pod); err != nil {
			logger.Warn().Err(err).Str("namespace", namespace).Str("service", ep.Name).Msg("Failed to read sampled pod")
			continue
		}

		owner, err := s.owner(ctx, namespace, ep.Name)
		if err != nil {
			logger.Warn().Err(err).Str("namespace", namespace).Str("service", ep.Name).Msg("Failed to read service owner")
		}

		usages = append(usages, s.usage(namespace, ep.Name, owner, podCount, pod))
	}
	return usages, nil
}

// readyPods returns the first ready pod address and the number of ready
// addresses of an endpoints object.
func readyPods(ep *corev1.Endpoints) (*corev1.ObjectReference, int) {
	var sample *corev1.ObjectReference
	count := 0
	for _, subset := range ep.Subsets {
		for _, addr := range subset.Addresses {
			count++
			if sample == nil && addr.TargetRef != nil && addr.TargetRef.Kind == podKind {
				sample = addr.TargetRef
			}
		}
	}
	return sample, count
}

func (s *service) owner(ctx context.Context, namespace, name string) (string, error) {
	if s.ownerLabel == "" {
		return "", nil
	}
	svc := &corev1.Service{}
	if err := s.client.Get(ctx, types.NamespacedName{Namespace: namespace, Name: name}, svc); err != nil {
		if apierrors.IsNotFound(err) {
			return "", nil
		}
		return "", err
	}
	return svc.Labels[s.ownerLabel], nil
}

func (s *service) usage(namespace, name, owner string, podCount int, pod *corev1.Pod) model.ServiceUsage {
	cpu, ram := podRequests(pod)
	pods := decimal.NewFromInt(int64(podCount))
	cpuTotal := cpu.Mul(pods)
	ramTotal := ram.Mul(pods)
	hours := s.prices.HoursPerDay.Mul(s.prices.DaysPerMonth)

	return model.ServiceUsage{
		OwnershipKey: model.OwnershipKey{ServiceName: name, Namespace: namespace},
		Owner:        owner,
		PodCount:     podCount,
		CPUPerPod:    cpu.Round(perPodPlaces),
		RAMPerPod:    ram.Round(perPodPlaces),
		CPUTotal:     cpuTotal.Round(perPodPlaces),
		RAMTotal:     ramTotal.Round(perPodPlaces),
		CPUCost:      cpuTotal.Mul(s.prices.CPUHourPrice).Mul(hours).Round(costPlaces),
		RAMCost:      ramTotal.Mul(s.prices.RAMGBHourPrice).Mul(hours).Round(costPlaces),
	}
}

// podRequests sums container requests as CPU cores and memory GiB.
func podRequests(pod *corev1.Pod) (decimal.Decimal, decimal.Decimal) {
	cpu := decimal.Zero
	ram := decimal.Zero
	for _, c := range pod.Spec.Containers {
		if q, ok := c.Resources.Requests[corev1.ResourceCPU]; ok {
			cpu = cpu.Add(decimal.New(q.MilliValue(), -3))
		}
		if q, ok := c.Resources.Requests[corev1.ResourceMemory]; ok {
			ram = ram.Add(decimal.NewFromInt(q.Value()).Div(bytesPerGiB))
		}
	}
	return cpu, ram
}
