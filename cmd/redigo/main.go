package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"redicore/envs"
	"redicore/internal/redigo"
	"redicore/internal/redigo/commands"
	"redicore/internal/server"
	"redicore/internal/telemetry"
)

type services struct {
	config     envs.Envs
	logger     hclog.Logger
	dispatcher *redigo.Dispatcher
	journal    *redigo.Journal
}

func bootstrap(c *cli.Context) (*services, error) {
	if !envs.LoadEnv() {
		fmt.Fprintln(c.App.ErrWriter, "Warning: .env file not found, using default values")
	}

	config, err := envs.Gets()
	if err != nil {
		return nil, err
	}
	if c.IsSet("databases") {
		config.Databases = c.Int("databases")
	}

	registry := redigo.NewRegistry()
	if err := commands.RegisterAll(registry); err != nil {
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}

	return &services{
		config:     config,
		logger:     telemetry.NewLogger(config, c.App.ErrWriter),
		dispatcher: redigo.NewDispatcher(redigo.NewEngine(config.Databases), registry),
		journal:    redigo.NewJournal(config.JournalCapacity),
	}, nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve commands over TCP, one command per line",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "address", Usage: "listen address (defaults to REDIGO_BIND:REDIGO_PORT)"},
		},
		Action: func(c *cli.Context) error {
			services, err := bootstrap(c)
			if err != nil {
				return err
			}

			address := services.config.Address()
			if c.IsSet("address") {
				address = c.String("address")
			}

			metrics, err := telemetry.NewMetrics(prometheus.DefaultRegisterer)
			if err != nil {
				return fmt.Errorf("failed to register metrics: %w", err)
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.NewServer(address, services.dispatcher, services.journal, metrics, services.logger).ListenAndServe(ctx)
		},
	}
}

func replCommand() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "read commands from stdin and print replies to stdout",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "dump", Usage: "print a JSON snapshot of every database on exit"},
			&cli.BoolFlag{Name: "journal", Usage: "print the write journal as JSON lines on exit"},
		},
		Action: func(c *cli.Context) error {
			services, err := bootstrap(c)
			if err != nil {
				return err
			}

			session := server.NewSession(services.dispatcher, services.journal, nil, services.logger)
			err = server.ServeLines(c.App.Reader, c.App.Writer, func(line string) (server.ClientResponse, bool, error) {
				response, quit := session.ExecuteLine(line)
				return response, quit, nil
			})
			if err != nil {
				return err
			}

			if c.Bool("journal") {
				// Entries evicted for capacity are gone; say how many so the output is not mistaken for complete
				if dropped := services.journal.Dropped(); dropped > 0 {
					services.logger.Warn("journal overflowed, oldest entries were dropped", "dropped", dropped, "capacity", services.config.JournalCapacity)
				}
				if err := services.journal.Flush(c.App.Writer); err != nil {
					return fmt.Errorf("failed to write journal: %w", err)
				}
			}
			if c.Bool("dump") {
				if err := redigo.WriteSnapshot(c.App.Writer, services.dispatcher.Engine()); err != nil {
					return fmt.Errorf("failed to write snapshot: %w", err)
				}
			}
			return nil
		},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "redigo",
		Usage: "in-memory key-value store",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "databases", Usage: "number of databases (overrides REDIGO_DATABASES)"},
		},
		Commands: []*cli.Command{
			serveCommand(),
			replCommand(),
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
