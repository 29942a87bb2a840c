// Package tools exposes the document operations as MCP tools over stdio.
// Each tool binds its JSON arguments into a request shape, calls one
// service and answers with indented JSON text, or with a tool error that
// carries only the error message.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"time"

	"github.com/alexanderramin/projectionctl/internal/domain"
	"github.com/alexanderramin/projectionctl/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const serverName = "projectionctl"

// Server is the MCP tool catalogue bound to one set of services.
type Server struct {
	svc      *service.Services
	observer service.UseCaseObserver
	mcp      *server.MCPServer
	handlers map[string]server.ToolHandlerFunc
}

func NewServer(svc *service.Services, version string, observer service.UseCaseObserver) *Server {
	s := &Server{
		svc:      svc,
		observer: service.UseCaseObserverOrNoop(observer),
		mcp: server.NewMCPServer(
			serverName,
			version,
			server.WithToolCapabilities(true),
			server.WithRecovery(),
			server.WithInstructions(instructions),
		),
		handlers: make(map[string]server.ToolHandlerFunc),
	}
	s.registerDocumentTools()
	s.registerTodayTools()
	s.registerPlanTools()
	s.registerEventTools()
	s.registerMilestoneTools()
	s.registerConfigTools()
	s.registerProgressTools()
	return s
}

// ServeStdio answers JSON-RPC requests read from in until ctx is done or
// in is closed. Transport errors are logged through logger.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer, logger *slog.Logger) error {
	stdio := server.NewStdioServer(s.mcp)
	if logger != nil {
		stdio.SetErrorLogger(log.New(&slogWriter{logger: logger}, "", 0))
	}
	return stdio.Listen(ctx, in, out)
}

// ToolNames lists every registered tool.
func (s *Server) ToolNames() []string {
	names := make([]string, 0, len(s.handlers))
	for name := range s.handlers {
		names = append(names, name)
	}
	return names
}

// call dispatches a tool by name the way the MCP server would.
func (s *Server) call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	h, ok := s.handlers[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return h(ctx, req)
}

// addTool registers tool with a handler that binds arguments into Req,
// calls fn and encodes its result.
func addTool[Req any, Resp any](s *Server, tool mcp.Tool, fn func(context.Context, Req) (Resp, error)) {
	h := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		started := time.Now()
		args := request.GetArguments()

		var req Req
		var resp Resp
		err := bind(tool, args, &req)
		if err == nil {
			resp, err = fn(ctx, req)
		}

		s.observer.ObserveUseCase(ctx, service.UseCaseEvent{
			Name:      tool.Name,
			StartedAt: started,
			Duration:  time.Since(started),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"arguments": len(args)},
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		text, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(text)), nil
	}
	s.mcp.AddTool(tool, h)
	s.handlers[tool.Name] = h
}

// bind checks the tool's required arguments and decodes args into dst.
func bind(tool mcp.Tool, args map[string]any, dst any) error {
	for _, key := range tool.InputSchema.Required {
		v, ok := args[key]
		if !ok || v == nil {
			return &domain.ValidationError{Field: key, Problem: "is required"}
		}
	}
	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encoding arguments: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return &domain.ValidationError{Field: "arguments", Problem: err.Error()}
	}
	return nil
}

type slogWriter struct {
	logger *slog.Logger
}

func (w *slogWriter) Write(p []byte) (int, error) {
	w.logger.Error("mcp transport", "message", string(p))
	return len(p), nil
}

const instructions = `projectionctl edits a retirement projection document.
Call load_document with the document path before any other tool.
Date boundaries (start, end) are objects {"type","value","modifier?"} where type is keyword, year, date or milestone.
Years and dates are strings ("2059", "2030-06"); keywords are now, endOfPlan, beforeCurrentYear or never.
Milestone criteria are objects {"type","value","refId?",...}; refIds must name existing accounts, debts or milestones.`
