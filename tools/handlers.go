package tools

import (
	"context"
	"encoding/json"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	apierrors "github.com/parkscout/nps-mcp-server/internal/errors"
	"github.com/parkscout/nps-mcp-server/internal/nps"
	"github.com/parkscout/nps-mcp-server/metrics"
	"github.com/parkscout/nps-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	npsClient *nps.Client
	logger    *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(npsClient *nps.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		npsClient: npsClient,
		logger:    logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "FindParks":
		register(h, server, tool, spec, h.npsClient.FindParksMCP)
	case "GetParkDetails":
		register(h, server, tool, spec, h.npsClient.GetParkDetailsMCP)
	case "GetAlerts":
		register(h, server, tool, spec, h.npsClient.GetAlertsMCP)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and
// logging. Every error from the method is converted into an Envelope
// delivered as a normal text response; the transport never sees a tool
// failure as a protocol fault.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		var zero Result
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			metrics.ErrorEnvelopes.WithLabelValues(spec.Name).Inc()
			h.logger.Warn("Tool call failed, returning error envelope",
				"tool", spec.Name,
				"error", err)
			return textResult(apierrors.FromError(err)), zero, nil
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return textResult(result), result, nil
	})
}

// textResult serializes a payload into a single pretty-printed text content
// block (2-space indent).
func textResult(payload any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		data, _ = json.MarshalIndent(apierrors.Envelope{
			Error:   "Serialization failed",
			Message: err.Error(),
		}, "", "  ")
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name}

	switch a := args.(type) {
	case nps.FindParksArgs:
		attrs = append(attrs, "state_code", a.StateCode, "query", a.Q)
	case nps.GetParkDetailsArgs:
		attrs = append(attrs, "park_code", a.ParkCode)
	case nps.GetAlertsArgs:
		attrs = append(attrs, "park_code", a.ParkCode, "query", a.Q)
	}

	switch r := result.(type) {
	case nps.FindParksResult:
		attrs = append(attrs, "results_count", len(r.Parks), "total_results", r.Total)
	case nps.ParkDetail:
		attrs = append(attrs, "park_name", r.Name)
	case nps.GetAlertsResult:
		attrs = append(attrs, "alerts_count", len(r.Alerts), "parks_with_alerts", len(r.AlertsByPark))
	}

	h.logger.Info("Tool executed", attrs...)
}
