package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/elC0mpa/aws-tagger/cmd/mcp/response"
	"github.com/elC0mpa/aws-tagger/model"
	awsconfig "github.com/elC0mpa/aws-tagger/service/aws/config"
	awssts "github.com/elC0mpa/aws-tagger/service/aws/sts"
	"github.com/elC0mpa/aws-tagger/service/orchestrator"
	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// RegisterAWSTools registers all AWS tools with the MCP server
func RegisterAWSTools(s *server.MCPServer, cfg model.Settings, logger zerolog.Logger) {
	// Account info
	s.AddTool(
		mcp.NewTool("aws_get_account_info",
			mcp.WithDescription("Get AWS account identity information including account ID and ARN"),
		),
		makeAWSAccountInfoHandler(cfg, logger),
	)

	// Instance costs
	s.AddTool(
		mcp.NewTool("aws_get_instance_costs",
			mcp.WithDescription("Estimate the monthly on-demand cost of every EC2 instance and its attached EBS volumes across all regions, optionally for one department"),
			mcp.WithString("department",
				mcp.Description("Tag value to filter on. Omit or use \"common\" for every instance"),
			),
			mcp.WithString("tag_key",
				mcp.Description("Tag key the department is matched against"),
				mcp.DefaultString(model.TagDepartment),
			),
		),
		makeAWSInstanceCostsHandler(cfg, logger),
	)
}

func makeAWSAccountInfoHandler(cfg model.Settings, logger zerolog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx = logger.WithContext(ctx)

		configSvc := awsconfig.NewService(cfg.MaxAttempts)
		awsCfg, err := configSvc.GetAWSCfg(ctx, cfg.Region, cfg.Profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		stsSvc := awssts.NewService(awsCfg)
		info, err := stsSvc.GetAccountInfo(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get account info: %v", err)), nil
		}

		return jsonResult(response.ConvertAccountInfo(info))
	}
}

func makeAWSInstanceCostsHandler(cfg model.Settings, logger zerolog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx = logger.WithContext(ctx)
		ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()

		department := request.GetString("department", model.CommonSelector)
		tagKey := request.GetString("tag_key", model.TagDepartment)

		run := model.RunContext{Started: time.Now(), ReportsDir: cfg.ReportsDir}
		flags := model.Flags{Command: model.CommandReport, Department: department, TagKey: tagKey}

		deps, err := orchestrator.BuildDependencies(ctx, flags, cfg, run)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		costs, err := orchestrator.NewService(deps, cfg, run).InstanceCosts(ctx, department, tagKey)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to price instances: %v", err)), nil
		}

		return jsonResult(response.ConvertInstanceCosts(costs, department))
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
