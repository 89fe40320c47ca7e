package kube

import (
	"fmt"

	"github.com/elC0mpa/aws-tagger/model"
	"k8s.io/client-go/tools/clientcmd"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// NewClient builds a cluster client from a kubeconfig path and context name.
// Empty values follow the usual kubeconfig loading rules. The returned name is
// the cluster of the selected context.
func NewClient(kubeconfig, kubeContext string) (client.Client, string, error) {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kubeconfig != "" {
		rules.ExplicitPath = kubeconfig
	}
	overrides := &clientcmd.ConfigOverrides{CurrentContext: kubeContext}
	loader := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, overrides)

	raw, err := loader.RawConfig()
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to load kubeconfig: %v", model.ErrConfiguration, err)
	}

	contextName := raw.CurrentContext
	if kubeContext != "" {
		contextName = kubeContext
	}
	kubeCtx, ok := raw.Contexts[contextName]
	if !ok {
		return nil, "", fmt.Errorf("%w: kubeconfig context %q not found", model.ErrConfiguration, contextName)
	}

	restCfg, err := loader.ClientConfig()
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to build cluster config: %v", model.ErrConfiguration, err)
	}

	c, err := client.New(restCfg, client.Options{})
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to create cluster client: %v", model.ErrConfiguration, err)
	}

	return c, kubeCtx.Cluster, nil
}
