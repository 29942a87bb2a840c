package tools

import (
	"context"

	"github.com/alexanderramin/projectionctl/internal/contract"
	"github.com/alexanderramin/projectionctl/internal/domain"
	"github.com/mark3labs/mcp-go/mcp"
)

const referenceDescription = `Date boundary object {"type": keyword|year|date|milestone, "value": ..., "modifier"?: number|"include"|"exclude"}`

func (s *Server) registerDocumentTools() {
	docs := s.svc.Documents

	addTool(s, mcp.NewTool("load_document",
		mcp.WithDescription("Load a projection document from disk. Every other tool works on the loaded document."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to the JSON document")),
	), docs.Load)

	addTool(s, mcp.NewTool("current_document",
		mcp.WithDescription("Show the path, last update time and plan count of the loaded document."),
		mcp.WithReadOnlyHintAnnotation(true),
	), func(ctx context.Context, _ struct{}) (*contract.DocumentStatus, error) {
		return docs.Current(ctx)
	})

	addTool(s, mcp.NewTool("document_summary",
		mcp.WithDescription("Summarize accounts, debts, assets, net worth and plans of the loaded document."),
		mcp.WithReadOnlyHintAnnotation(true),
	), func(ctx context.Context, _ struct{}) (*contract.DocumentSummary, error) {
		return docs.Summary(ctx)
	})

	addTool(s, mcp.NewTool("validate_document",
		mcp.WithDescription("Audit the whole document: date boundaries, milestone criteria references and duplicate ids."),
		mcp.WithReadOnlyHintAnnotation(true),
	), func(ctx context.Context, _ struct{}) (*contract.ValidationReport, error) {
		return docs.Validate(ctx)
	})

	addTool(s, mcp.NewTool("check_date_reference",
		mcp.WithDescription("Validate a date boundary without changing anything."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("field", mcp.Description("Field name to use in error messages")),
		mcp.WithObject("reference", mcp.Required(), mcp.Description(referenceDescription)),
	), docs.CheckDateReference)

	addTool(s, mcp.NewTool("check_milestone_criteria",
		mcp.WithDescription("Validate milestone criteria against the loaded document without changing anything."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("planId", mcp.Description("Plan whose milestones resolve milestone refIds")),
		mcp.WithArray("criteria", mcp.Required(), mcp.Items(map[string]any{"type": "object"})),
	), func(ctx context.Context, req contract.CheckCriteriaRequest) ([]domain.Criterion, error) {
		return docs.CheckCriteria(ctx, req)
	})

	addTool(s, mcp.NewTool("recent_changes",
		mcp.WithDescription("List journaled changes, newest first."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithNumber("limit", mcp.Description("Maximum entries to return (default 20)")),
	), s.svc.Journal.Recent)
}
