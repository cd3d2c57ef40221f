// Package main provides the Pressline cron scheduler service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressline/pressline/pkg/cmd"
	"github.com/pressline/pressline/pkg/log"
	"github.com/pressline/pressline/pkg/schedule"
	"github.com/pressline/pressline/pkg/workflow"
	cli "github.com/urfave/cli/v3"
)

func main() {
	logger := log.WithModule("scheduler")

	command := &cli.Command{
		Name:                  "pressline-scheduler",
		Usage:                 "Run published workflows on their cron schedules",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "database-url",
				Usage:    "Database connection URL for persistence",
				Required: true,
				Sources:  cli.EnvVars("DATABASE_URL"),
			},
			&cli.StringFlag{
				Name:    "event-bus",
				Usage:   "Event bus provider (kafka, memory, none)",
				Value:   "none",
				Sources: cli.EnvVars("EVENT_BUS"),
			},
			&cli.StringFlag{
				Name:    "kafka-brokers",
				Usage:   "Comma-separated Kafka broker list",
				Sources: cli.EnvVars("KAFKA_BROKERS"),
			},
			&cli.StringFlag{
				Name:    "discovery-url",
				Usage:   "Base URL of the content discovery service",
				Sources: cli.EnvVars("DISCOVERY_SERVICE_URL"),
			},
			&cli.StringFlag{
				Name:    "generation-url",
				Usage:   "Base URL of the content generation service",
				Sources: cli.EnvVars("GENERATION_SERVICE_URL"),
			},
			&cli.StringFlag{
				Name:    "publish-url",
				Usage:   "Base URL of the article publishing service",
				Sources: cli.EnvVars("PUBLISH_SERVICE_URL"),
			},
			&cli.DurationFlag{
				Name:    "service-timeout",
				Usage:   "Timeout for collaborator service calls",
				Value:   60 * time.Second,
				Sources: cli.EnvVars("SERVICE_TIMEOUT"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger.InfoContext(ctx, "Initializing Pressline scheduler")

			registry := cmd.NewRegistry(logger, cmd.ServiceConfig{
				DiscoveryURL:  command.String("discovery-url"),
				GenerationURL: command.String("generation-url"),
				PublishURL:    command.String("publish-url"),
				Timeout:       command.Duration("service-timeout"),
			})

			persistence := cmd.MustNewPersistence(command.String("database-url"))

			defer func() {
				if err := persistence.Close(ctx); err != nil {
					logger.ErrorContext(ctx, "Failed to close persistence", "error", err)
				}
			}()

			eventBus := cmd.NewEventBus(
				command.String("event-bus"),
				command.String("kafka-brokers"),
				"pressline-scheduler",
				logger,
			)
			if eventBus != nil {
				defer func() {
					if err := eventBus.Close(); err != nil {
						logger.ErrorContext(ctx, "Failed to close event bus", "error", err)
					}
				}()
			}

			executor := workflow.NewExecutor(registry, logger)
			fanout := workflow.NewFanOut(executor, logger)
			coordinator := workflow.NewCoordinator(persistence.ExecutionRepository(), fanout, eventBus, logger)

			scheduler := schedule.NewScheduler(persistence.WorkflowRepository(), coordinator, logger)
			if err := scheduler.Start(ctx); err != nil {
				return err
			}

			defer scheduler.Stop()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
			case <-stop:
				logger.InfoContext(ctx, "Shutdown signal received")
			}

			return nil
		},
	}

	if err := command.Run(context.Background(), os.Args); err != nil {
		panic(err)
	}
}
