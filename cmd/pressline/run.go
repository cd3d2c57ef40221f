// Package main provides the pressline command-line runner.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/pressline/pressline/pkg/cmd"
	"github.com/pressline/pressline/pkg/graph"
	"github.com/pressline/pressline/pkg/log"
	"github.com/pressline/pressline/pkg/models"
	"github.com/pressline/pressline/pkg/workflow"
	cli "github.com/urfave/cli/v3"
)

func loadWorkflow(path string) (*models.Workflow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workflow file: %w", err)
	}

	var wf models.Workflow
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("failed to parse workflow file: %w", err)
	}

	if len(wf.Nodes) == 0 {
		return nil, errors.New("workflow has no nodes")
	}

	return &wf, nil
}

func runWorkflow(ctx context.Context, command *cli.Command) error {
	path := command.Args().First()
	if path == "" {
		return errors.New("usage: pressline run <workflow.json>")
	}

	wf, err := loadWorkflow(path)
	if err != nil {
		return err
	}

	logger := log.WithModule("cli")

	registry := cmd.NewRegistry(logger, cmd.ServiceConfig{
		DiscoveryURL:  command.String("discovery-url"),
		GenerationURL: command.String("generation-url"),
		PublishURL:    command.String("publish-url"),
		Timeout:       command.Duration("service-timeout"),
	})

	persistence, err := cmd.NewPersistence(command.String("database-url"))
	if err != nil {
		return err
	}

	defer func() {
		if err := persistence.Close(ctx); err != nil {
			logger.ErrorContext(ctx, "Failed to close persistence", "error", err)
		}
	}()

	executor := workflow.NewExecutor(registry, logger)
	fanout := workflow.NewFanOut(executor, logger).
		WithMaxConcurrency(command.Int("max-concurrency"))
	coordinator := workflow.NewCoordinator(persistence.ExecutionRepository(), fanout, nil, logger)

	execution, err := coordinator.Run(ctx, wf.ID, wf.Nodes, nil)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(execution, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	return nil
}

func validateWorkflow(_ context.Context, command *cli.Command) error {
	path := command.Args().First()
	if path == "" {
		return errors.New("usage: pressline validate <workflow.json>")
	}

	wf, err := loadWorkflow(path)
	if err != nil {
		return err
	}

	if _, err := graph.Order(wf.Nodes); err != nil {
		return fmt.Errorf("workflow graph is invalid: %w", err)
	}

	if len(wf.TriggerNodes()) == 0 {
		fmt.Println("warning: workflow has no trigger node; execution starts from the first node")
	}

	fmt.Printf("workflow %q is valid (%d nodes)\n", wf.Name, len(wf.Nodes))

	return nil
}
