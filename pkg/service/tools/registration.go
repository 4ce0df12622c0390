package tools

import (
	"context"

	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
)

// RegisterTools registers the whole catalog on the MCP server.
func RegisterTools(mcpServer *server.MCPServer, deps ToolDependencies) error {
	for i := range toolConfigs {
		if err := RegisterTool(mcpServer, &toolConfigs[i], deps); err != nil {
			return errors.Wrapf(err, "failed to register tool %s", toolConfigs[i].Name)
		}
	}
	return nil
}

// RegisterTool registers a single tool. The mcp-go handler is a thin
// closure over Dispatch, which owns validation and fault containment.
func RegisterTool(mcpServer *server.MCPServer, config *ToolConfig, deps ToolDependencies) error {
	if config.Handler == nil {
		return errors.New("handler is required")
	}

	tool := mcp.Tool{
		Name:        config.Name,
		Description: config.Description,
		InputSchema: BuildToolSchema(*config),
	}

	name := config.Name
	mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return Dispatch(ctx, deps, name, req.GetArguments()), nil
	})

	if deps.Logger != nil {
		deps.Logger.Info("registered tool",
			slog.String("name", config.Name),
			slog.String("category", string(config.Category)))
	}

	return nil
}

// Dispatch runs one tool invocation end to end: registry lookup, argument
// validation, handler execution, envelope construction. It is the fault
// containment boundary: every failure, including a panic below the
// handler, comes back as an error envelope and never as a raised fault.
func Dispatch(ctx context.Context, deps ToolDependencies, name string, args map[string]interface{}) (result *mcp.CallToolResult) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(
		slog.String("tool", name),
		slog.String("call_id", uuid.New().String()))

	defer func() {
		if r := recover(); r != nil {
			log.Error("tool invocation panicked",
				slog.String("kind", string(kindUnknown)),
				slog.Any("panic", r))
			result = panicResult(r)
		}
	}()

	config, err := GetToolConfig(name)
	if err != nil {
		log.Warn("call to unknown tool")
		return errorResult(err)
	}

	values, err := config.Params.Validate(args)
	if err != nil {
		log.Debug("arguments rejected", slog.String("error", err.Error()))
		return errorResult(err)
	}

	out, err := config.Handler(ctx, deps, values)
	if err != nil {
		switch classify(err) {
		case kindValidation:
			log.Debug("arguments rejected in handler", slog.String("error", err.Error()))
		default:
			log.Error("backend call failed",
				slog.String("kind", string(kindBackend)),
				slog.String("error", err.Error()))
		}
		return errorResult(err)
	}

	return toolResult(out)
}
