// Package schedule runs workflows on cron expressions declared in their
// trigger node config.
package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressline/pressline/pkg/models"
	"github.com/pressline/pressline/pkg/persistence"
	"github.com/robfig/cron/v3"
)

// WorkflowRunner starts one run of a workflow graph.
type WorkflowRunner interface {
	Run(ctx context.Context, workflowID string, nodes []*models.WorkflowNode, triggerData map[string]any) (*models.WorkflowExecution, error)
}

// Scheduler scans published workflows for trigger nodes carrying a "cron"
// config entry and runs them on that schedule.
type Scheduler struct {
	workflows persistence.WorkflowRepository
	runner    WorkflowRunner
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewScheduler(workflows persistence.WorkflowRepository, runner WorkflowRunner, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		workflows: workflows,
		runner:    runner,
		logger:    logger.With("module", "scheduler"),
	}
}

// Start loads schedules from the store and begins dispatching. Workflows
// without a cron trigger entry are ignored; an invalid expression skips only
// its workflow.
func (s *Scheduler) Start(ctx context.Context) error {
	workflows, err := s.workflows.Workflows(ctx)
	if err != nil {
		return fmt.Errorf("failed to load workflows: %w", err)
	}

	s.cron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
		cron.Recover(cron.DefaultLogger),
	))

	registered := 0

	for _, workflow := range workflows {
		if workflow.Status != models.WorkflowStatusPublished {
			continue
		}

		for _, trigger := range workflow.TriggerNodes() {
			expr, _ := trigger.Config["cron"].(string)
			if expr == "" {
				continue
			}

			if _, err := cron.ParseStandard(expr); err != nil {
				s.logger.Error("Invalid cron expression, skipping workflow",
					"workflow_id", workflow.ID, "node_id", trigger.ID, "cron", expr, "error", err)

				continue
			}

			if err := s.register(ctx, workflow, expr); err != nil {
				return err
			}

			registered++
		}
	}

	s.logger.Info("Starting scheduler", "scheduled_workflows", registered)
	s.cron.Start()

	return nil
}

func (s *Scheduler) register(ctx context.Context, workflow *models.Workflow, expr string) error {
	workflowID := workflow.ID
	nodes := workflow.Nodes
	logger := s.logger.With("workflow_id", workflowID, "cron", expr)

	_, err := s.cron.AddFunc(expr, func() {
		logger.Info("Cron fired, starting workflow run")

		triggerData := map[string]any{
			"scheduled_at": time.Now().UTC().Format(time.RFC3339),
			"cron":         expr,
		}

		if _, err := s.runner.Run(ctx, workflowID, nodes, triggerData); err != nil {
			logger.Error("Scheduled run failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule workflow %s: %w", workflowID, err)
	}

	return nil
}

// Stop halts dispatching and waits for in-flight runs started by the cron
// to finish.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}

	s.logger.Info("Stopping scheduler")
	<-s.cron.Stop().Done()
}
