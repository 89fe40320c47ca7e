package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/elC0mpa/aws-tagger/cmd/mcp/response"
	"github.com/elC0mpa/aws-tagger/model"
	"github.com/elC0mpa/aws-tagger/service/orchestrator"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// RegisterKubeTools registers the Kubernetes tools with the MCP server
func RegisterKubeTools(s *server.MCPServer, cfg model.Settings, logger zerolog.Logger) {
	s.AddTool(
		mcp.NewTool("kube_get_service_costs",
			mcp.WithDescription("Approximate the monthly cost of every Kubernetes service from one sampled pod's resource requests times its ready pod count"),
			mcp.WithString("kubeconfig",
				mcp.Description("Path to the kubeconfig file. Defaults to the usual loading rules"),
			),
			mcp.WithString("context",
				mcp.Description("Kubeconfig context. Defaults to the current context"),
			),
		),
		makeKubeServiceCostsHandler(cfg, logger),
	)
}

func makeKubeServiceCostsHandler(cfg model.Settings, logger zerolog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx = logger.WithContext(ctx)
		ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()

		flags := model.Flags{
			Command:     model.CommandKubeReport,
			Kubeconfig:  request.GetString("kubeconfig", ""),
			KubeContext: request.GetString("context", ""),
		}
		run := model.RunContext{Started: time.Now(), ReportsDir: cfg.ReportsDir}

		deps, err := orchestrator.BuildDependencies(ctx, flags, cfg, run)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure cluster access: %v", err)), nil
		}

		usages, err := orchestrator.NewService(deps, cfg, run).ServiceCosts(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to collect service costs: %v", err)), nil
		}

		return jsonResult(response.ConvertServiceCosts(deps.KubeCluster, usages))
	}
}
