package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pressline/pressline/pkg/log"
	cli "github.com/urfave/cli/v3"
)

func main() {
	command := &cli.Command{
		Name:                  "pressline",
		Usage:                 "Run and validate content workflows",
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "run",
				Aliases:   []string{"r"},
				Usage:     "Execute a workflow definition from a JSON file",
				ArgsUsage: "<workflow.json>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "database-url",
						Usage:   "Database connection URL for persistence",
						Value:   "file://./data",
						Sources: cli.EnvVars("DATABASE_URL"),
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
					&cli.IntFlag{
						Name:  "max-concurrency",
						Usage: "Maximum parallel branch contexts per node",
						Value: 8,
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

					return runWorkflow(ctx, command)
				},
			},
			{
				Name:      "validate",
				Aliases:   []string{"v"},
				Usage:     "Validate a workflow definition without executing it",
				ArgsUsage: "<workflow.json>",
				Action: func(ctx context.Context, command *cli.Command) error {
					return validateWorkflow(ctx, command)
				},
			},
		},
	}

	if err := command.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
