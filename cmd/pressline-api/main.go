package main

import (
	"context"
	"os"
	"time"

	"github.com/pressline/pressline/pkg/cmd"
	"github.com/pressline/pressline/pkg/log"
	cli "github.com/urfave/cli/v3"
)

const defaultPort = 9091

func main() {
	logger := log.WithModule("api")

	command := &cli.Command{
		Name:                  "pressline-api",
		Usage:                 "Create, manage and run content workflows",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
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

			logger.InfoContext(ctx, "Initializing Pressline API")

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
				"pressline-api",
				logger,
			)
			if eventBus != nil {
				defer func() {
					if err := eventBus.Close(); err != nil {
						logger.ErrorContext(ctx, "Failed to close event bus", "error", err)
					}
				}()
			}

			api := NewAPI(logger, persistence, registry, eventBus)

			if err := api.Start(command.Int("port")); err != nil {
				logger.ErrorContext(ctx, "Failed to start API server", "error", err)
			}

			return nil
		},
	}

	if err := command.Run(context.Background(), os.Args); err != nil {
		panic(err)
	}
}
