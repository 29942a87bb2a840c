package tools

import (
	"context"
	"fmt"

	"github.com/alexanderramin/projectionctl/internal/contract"
	"github.com/alexanderramin/projectionctl/internal/domain"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPlanTools() {
	plans := s.svc.Plans

	addTool(s, mcp.NewTool("list_plans",
		mcp.WithDescription("List plans with their event and milestone counts."),
		mcp.WithReadOnlyHintAnnotation(true),
	), func(ctx context.Context, _ struct{}) ([]contract.PlanSummary, error) {
		return plans.List(ctx)
	})

	addTool(s, mcp.NewTool("get_plan",
		mcp.WithDescription("Get a full plan by id."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("planId", mcp.Required()),
	), func(ctx context.Context, req contract.PlanRequest) (*domain.Plan, error) {
		return plans.Get(ctx, req.PlanID)
	})

	addTool(s, mcp.NewTool("update_plan",
		mcp.WithDescription("Rename a plan or toggle whether it is active."),
		mcp.WithString("planId", mcp.Required()),
		mcp.WithString("name"),
		mcp.WithBoolean("active"),
	), plans.Update)

	addTool(s, mcp.NewTool("duplicate_plan",
		mcp.WithDescription("Copy a plan under a new id and name. Events and milestones keep their ids."),
		mcp.WithString("planId", mcp.Required()),
		mcp.WithString("name", mcp.Required()),
	), plans.Duplicate)

	addTool(s, mcp.NewTool("delete_plan",
		mcp.WithDescription("Delete a plan. The last remaining plan cannot be deleted."),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("planId", mcp.Required()),
	), func(ctx context.Context, req contract.PlanRequest) (*contract.DeleteResult, error) {
		return plans.Delete(ctx, req.PlanID)
	})
}

// eventTool names the tools of one event kind, e.g. add_income_event.
func eventTool(verb string, kind domain.EventKind) string {
	if verb == "list" {
		return fmt.Sprintf("list_%s_events", kind)
	}
	return fmt.Sprintf("%s_%s_event", verb, kind)
}

func (s *Server) registerEventTools() {
	events := s.svc.Events

	for _, kind := range domain.EventKinds {
		addTool(s, mcp.NewTool(eventTool("list", kind),
			mcp.WithDescription(fmt.Sprintf("List the %s events of a plan.", kind)),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithString("planId", mcp.Required()),
		), func(ctx context.Context, req contract.PlanRequest) ([]*domain.Event, error) {
			return events.List(ctx, kind, req.PlanID)
		})

		addTool(s, mcp.NewTool(eventTool("get", kind),
			mcp.WithDescription(fmt.Sprintf("Get a %s event.", kind)),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithString("planId", mcp.Required()),
			mcp.WithString("eventId", mcp.Required()),
		), func(ctx context.Context, req contract.EventRequest) (*domain.Event, error) {
			return events.Get(ctx, kind, req.PlanID, req.EventID)
		})

		addTool(s, mcp.NewTool(eventTool("add", kind),
			mcp.WithDescription(fmt.Sprintf("Add a %s event. start defaults to now, end to endOfPlan.", kind)),
			mcp.WithString("planId", mcp.Required()),
			mcp.WithString("name", mcp.Required()),
			mcp.WithString("type"),
			mcp.WithNumber("amount"),
			mcp.WithString("amountType"),
			mcp.WithString("frequency"),
			mcp.WithObject("start", mcp.Description(referenceDescription)),
			mcp.WithObject("end", mcp.Description(referenceDescription)),
		), func(ctx context.Context, req contract.AddEventRequest) (*domain.Event, error) {
			return events.Add(ctx, kind, req)
		})

		addTool(s, mcp.NewTool(eventTool("update", kind),
			mcp.WithDescription(fmt.Sprintf("Update the supplied fields of a %s event.", kind)),
			mcp.WithString("planId", mcp.Required()),
			mcp.WithString("eventId", mcp.Required()),
			mcp.WithString("name"),
			mcp.WithString("type"),
			mcp.WithNumber("amount"),
			mcp.WithString("amountType"),
			mcp.WithString("frequency"),
			mcp.WithObject("start", mcp.Description(referenceDescription)),
			mcp.WithObject("end", mcp.Description(referenceDescription)),
		), func(ctx context.Context, req contract.UpdateEventRequest) (*domain.Event, error) {
			return events.Update(ctx, kind, req)
		})

		addTool(s, mcp.NewTool(eventTool("delete", kind),
			mcp.WithDescription(fmt.Sprintf("Delete a %s event.", kind)),
			mcp.WithDestructiveHintAnnotation(true),
			mcp.WithString("planId", mcp.Required()),
			mcp.WithString("eventId", mcp.Required()),
		), func(ctx context.Context, req contract.EventRequest) (*contract.DeleteResult, error) {
			return events.Delete(ctx, kind, req.PlanID, req.EventID)
		})
	}
}

func (s *Server) registerMilestoneTools() {
	milestones := s.svc.Milestones
	criteria := mcp.Items(map[string]any{"type": "object"})

	addTool(s, mcp.NewTool("list_milestones",
		mcp.WithDescription("List the user-defined milestones of a plan."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("planId", mcp.Required()),
	), func(ctx context.Context, req contract.PlanRequest) ([]*domain.Milestone, error) {
		return milestones.List(ctx, req.PlanID)
	})

	addTool(s, mcp.NewTool("list_computed_milestones",
		mcp.WithDescription("List the milestones derived by the projection engine. They cannot be edited."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("planId", mcp.Required()),
	), func(ctx context.Context, req contract.PlanRequest) ([]*domain.Milestone, error) {
		return milestones.ListComputed(ctx, req.PlanID)
	})

	addTool(s, mcp.NewTool("get_milestone",
		mcp.WithDescription("Get a milestone."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("planId", mcp.Required()),
		mcp.WithString("milestoneId", mcp.Required()),
	), func(ctx context.Context, req contract.MilestoneRequest) (*domain.Milestone, error) {
		return milestones.Get(ctx, req.PlanID, req.MilestoneID)
	})

	addTool(s, mcp.NewTool("add_milestone",
		mcp.WithDescription("Add a milestone. Criteria refIds must resolve."),
		mcp.WithString("planId", mcp.Required()),
		mcp.WithString("name", mcp.Required()),
		mcp.WithString("icon"),
		mcp.WithString("color"),
		mcp.WithArray("criteria", criteria),
	), milestones.Add)

	addTool(s, mcp.NewTool("update_milestone",
		mcp.WithDescription("Update the supplied fields of a milestone. Supplied criteria replace the list."),
		mcp.WithString("planId", mcp.Required()),
		mcp.WithString("milestoneId", mcp.Required()),
		mcp.WithString("name"),
		mcp.WithString("icon"),
		mcp.WithString("color"),
		mcp.WithArray("criteria", criteria),
	), milestones.Update)

	addTool(s, mcp.NewTool("delete_milestone",
		mcp.WithDescription("Delete a milestone."),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("planId", mcp.Required()),
		mcp.WithString("milestoneId", mcp.Required()),
	), func(ctx context.Context, req contract.MilestoneRequest) (*contract.DeleteResult, error) {
		return milestones.Delete(ctx, req.PlanID, req.MilestoneID)
	})
}

// configTools maps each configuration block to its get/update tool names.
var configTools = []struct {
	block       domain.ConfigBlock
	get, update string
}{
	{domain.BlockVariables, "get_plan_variables", "update_plan_variables"},
	{domain.BlockWithdrawalStrategy, "get_withdrawal_strategy", "update_withdrawal_strategy"},
	{domain.BlockMonteCarlo, "get_montecarlo_settings", "update_montecarlo_settings"},
}

func (s *Server) registerConfigTools() {
	cfg := s.svc.Config

	for _, t := range configTools {
		block := t.block
		addTool(s, mcp.NewTool(t.get,
			mcp.WithDescription(fmt.Sprintf("Get the %s of a plan.", block)),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithString("planId", mcp.Required()),
		), func(ctx context.Context, req contract.PlanRequest) (domain.Record, error) {
			return cfg.Get(ctx, block, req.PlanID)
		})

		addTool(s, mcp.NewTool(t.update,
			mcp.WithDescription(fmt.Sprintf("Set keys of the %s of a plan. Keys not supplied are kept.", block)),
			mcp.WithString("planId", mcp.Required()),
			mcp.WithObject("values", mcp.Required()),
		), func(ctx context.Context, req contract.UpdateConfigRequest) (domain.Record, error) {
			return cfg.Update(ctx, block, req)
		})
	}
}

func (s *Server) registerProgressTools() {
	progress := s.svc.Progress

	addTool(s, mcp.NewTool("get_progress",
		mcp.WithDescription("List recorded net worth snapshots."),
		mcp.WithReadOnlyHintAnnotation(true),
	), func(ctx context.Context, _ struct{}) (*domain.Progress, error) {
		return progress.Get(ctx)
	})

	addTool(s, mcp.NewTool("record_progress",
		mcp.WithDescription("Append a snapshot of today's totals and net worth to the progress history."),
	), func(ctx context.Context, _ struct{}) (*domain.ProgressPoint, error) {
		return progress.Record(ctx)
	})
}
