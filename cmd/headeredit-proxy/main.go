package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/iw2rmb/headeredit"
	"github.com/iw2rmb/headeredit/proxy"
)

type (
	// cmd corresponds to the top-level `headeredit-proxy` command.
	cmd struct {
		// Version is the sub-command to show the version.
		Version struct{} `cmd:"" help:"Show version."`
		// Serve is the default sub-command, so flags work without naming it.
		Serve cmdServe `cmd:"" default:"withargs" help:"Run the proxy server."`
	}
	// cmdServe corresponds to `headeredit-proxy serve`.
	cmdServe struct {
		Config          string        `help:"Path to a YAML proxy configuration file." type:"path"`
		Port            int           `help:"Port to listen on (default 3000)." env:"PORT"`
		Mode            string        `help:"Server mode: development or production." env:"APP_ENV"`
		EndpointHeader  string        `help:"Request header naming the target URL."`
		EndpointPattern string        `help:"Regular expression target URLs must match."`
		AllowedOrigin   []string      `name:"allowed-origin" help:"CORS origin to allow. Repeatable."`
		Timeout         time.Duration `help:"Upstream request timeout (default 60s)."`
	}
)

// config resolves the proxy configuration: defaults, then the file, then
// flags and environment.
func (c cmdServe) config() (proxy.Config, error) {
	cfg := proxy.DefaultConfig()
	if c.Config != "" {
		var err error
		if cfg, err = proxy.LoadConfig(c.Config); err != nil {
			return proxy.Config{}, err
		}
	}

	if c.Mode != "" {
		mode, err := proxy.ParseMode(c.Mode)
		if err != nil {
			return proxy.Config{}, err
		}
		cfg.Mode = mode
	}
	if c.Port != 0 {
		cfg.Port = c.Port
	}
	if c.EndpointHeader != "" {
		cfg.EndpointHeader = c.EndpointHeader
	}
	if c.EndpointPattern != "" {
		cfg.EndpointPattern = c.EndpointPattern
	}
	if len(c.AllowedOrigin) > 0 {
		cfg.AllowedOrigins = c.AllowedOrigin
	}
	if c.Timeout != 0 {
		cfg.Timeout = c.Timeout
	}
	return cfg, cfg.Validate()
}

type serveFn func(context.Context, proxy.Config) error

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	doMain(ctx, os.Stdout, os.Stderr, os.Args[1:], os.Exit, serve)
}

// doMain parses args and runs the selected command.
//
//   - stdout and stderr are the writers for output. Mainly for testing.
//   - exitFn is called on parse failures, help, and run errors. Mainly for testing.
//   - sf runs the server. Mainly for testing.
func doMain(ctx context.Context, stdout, stderr io.Writer, args []string, exitFn func(int), sf serveFn) {
	var c cmd
	parser, err := kong.New(&c,
		kong.Name("headeredit-proxy"),
		kong.Description("Development proxy forwarding browser requests to Salesforce endpoints."),
		kong.Writers(stdout, stderr),
		kong.Exit(exitFn),
	)
	if err != nil {
		log.Fatalf("Error creating parser: %v", err)
	}
	parsed, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	switch parsed.Command() {
	case "version":
		_, _ = fmt.Fprintf(stdout, "headeredit-proxy: %s\n", headeredit.Version())
	case "serve":
		cfg, err := c.Serve.config()
		if err == nil {
			err = sf(ctx, cfg)
		}
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "headeredit-proxy: %v\n", err)
			exitFn(1)
		}
	default:
		panic("unreachable")
	}
}

func serve(ctx context.Context, cfg proxy.Config) error {
	logger, err := proxy.NewLogger(cfg.Mode)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	s, err := proxy.New(cfg, logger)
	if err != nil {
		return err
	}
	if err := s.Run(ctx); err != nil {
		logger.Error("proxy failed", zap.Error(err))
		return err
	}
	return nil
}
