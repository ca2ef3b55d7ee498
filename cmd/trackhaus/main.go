package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/config"
	"github.com/trackhaus/trackhaus/migrations"
	"github.com/trackhaus/trackhaus/storage"
	_ "github.com/trackhaus/trackhaus/storage/mariadb" // mariadb storage interface
	"github.com/trackhaus/trackhaus/storage/sqldb"
	_ "github.com/trackhaus/trackhaus/storage/sqlite" // sqlite storage interface
	"github.com/trackhaus/trackhaus/telemetry"
	"github.com/trackhaus/trackhaus/util/buildinfo"
	"github.com/trackhaus/trackhaus/website"
)

type executeFn func(context.Context, config.Loader) error

type executeConfigFn func(context.Context, config.Config) error

type cmd struct {
	name     string
	synopsis string
	usage    string
	setFlags func(*flag.FlagSet)
	execute  executeFn
}

func (c cmd) Name() string     { return c.name }
func (c cmd) Synopsis() string { return c.synopsis }
func (c cmd) Usage() string    { return c.usage }
func (c cmd) SetFlags(f *flag.FlagSet) {
	if c.setFlags != nil {
		c.setFlags(f)
	}
}
func (c cmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	// extract extra arguments from the interface slice; it's fine if we panic here
	// because that is an unrecoverable programmer error
	errCh := args[0].(chan error)

	// add the subcommand name to the logging
	zerolog.Ctx(ctx).UpdateContext(func(zc zerolog.Context) zerolog.Context {
		return zc.Str("service", c.name)
	})

	// setup telemetry if wanted
	var telemetryMu sync.Mutex
	var telemetryShutdown func()
	defer func() {
		telemetryMu.Lock()
		if telemetryShutdown != nil {
			telemetryShutdown()
		}
		telemetryMu.Unlock()
	}()

	loader := func() (config.Config, error) {
		cfg, err := config.LoadFile(configFile, configEnvFile)
		if err != nil {
			return cfg, err
		}

		if !cfg.Conf().Telemetry.Use && !useTelemetry { // no telemetry
			return cfg, nil
		}

		// yes telemetry
		telemetryMu.Lock()
		defer telemetryMu.Unlock()
		if telemetryShutdown != nil {
			return cfg, nil
		}
		telemetryShutdown, err = telemetry.Init(ctx, cfg, c.name)
		if err != nil {
			zerolog.Ctx(ctx).Error().Ctx(ctx).Err(err).Msg("failed to initialize telemetry")
			return cfg, err
		}
		// swap in the traced versions of the database and router
		sqldb.DatabaseConnectFunc = telemetry.DatabaseConnect
		website.NewRouter = telemetry.NewRouter
		return cfg, nil
	}

	errCh <- c.execute(ctx, loader)
	return subcommands.ExitSuccess
}

// withConfig turns an executeConfigFn into an executeFn
func withConfig(fn executeConfigFn) executeFn {
	return func(ctx context.Context, l config.Loader) error {
		cfg, err := l()
		if err != nil {
			return err
		}
		return fn(ctx, cfg)
	}
}

type executeStorageFn func(context.Context, config.Config, trackhaus.StorageService) error

// withStorage turns an executeStorageFn into an executeConfigFn, the storage
// is only opened if the database schema is up to date
func withStorage(fn executeStorageFn) executeConfigFn {
	return func(ctx context.Context, cfg config.Config) error {
		err := migrations.CheckVersion(ctx, cfg)
		if err != nil {
			return err
		}

		store, err := storage.Open(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		return fn(ctx, cfg, store)
	}
}

var versionCmd = cmd{
	name:     "version",
	synopsis: "display version information of executable",
	usage: `version:
	display version information of executable`,
	execute: printVersion,
}

func printVersion(context.Context, config.Loader) error {
	if info, ok := debug.ReadBuildInfo(); ok {
		fmt.Printf("%s %s (%s)\n", info.Path, buildinfo.Version, buildinfo.GitTime)
		for _, mod := range info.Deps {
			fmt.Printf("\t%s %s\n", mod.Path, mod.Version)
		}
	} else {
		fmt.Printf("%s %s\n", "trackhaus", buildinfo.Version)
	}
	return nil
}

// configEnvFile will be resolved to the environment variable given here
var configEnvFile = "TRACKHAUS_CONFIG"

// configFile will be filled with the -config flag value
var configFile string

// logLevel will be filled with the -loglevel flag value
var logLevel string

// useTelemetry will be filled with the -telemetry flag value
var useTelemetry bool

var configCmd = cmd{
	name:     "config",
	synopsis: "display current configuration",
	usage: `config:
	display current configuration
	`,
	execute: printConfig,
}

func printConfig(_ context.Context, l config.Loader) error {
	// try and load the configuration, but otherwise just print the defaults
	cfg, err := l()
	if err != nil {
		cfg = config.TestConfig()
	}
	return cfg.Save(os.Stdout)
}

var serveCmd = cmd{
	name:     "serve",
	synopsis: "runs the HTTP API",
	usage: `serve:
	runs the HTTP API, the database schema has to be up to date
	`,
	execute: withConfig(withStorage(website.Execute)),
}

func main() {
	var disableStdout bool
	// setup configuration file as top-level flag
	flag.StringVar(&configFile, "config", "trackhaus.toml", "filepath to configuration file")
	flag.StringVar(&logLevel, "loglevel", "info", "loglevel to use")
	flag.BoolVar(&useTelemetry, "telemetry", false, "to enable telemetry")
	flag.BoolVar(&disableStdout, "disable-stdout", false, "set to true to stop logs being printed to stdout")

	// add all our top-level flags as important flags to subcommands
	flag.VisitAll(func(f *flag.Flag) {
		subcommands.ImportantFlag(f.Name)
	})
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(versionCmd, "")
	subcommands.Register(configCmd, "")
	subcommands.Register(serveCmd, "")

	subcommands.Register(&listenerCmd{}, "accounts")
	subcommands.Register(&statsCmd{}, "history")
	subcommands.Register(&playsCmd{}, "history")
	subcommands.Register(&migrateCmd{}, "migrate")

	flag.Parse()
	configEnvFile = os.Getenv(configEnvFile)

	// exit code passed to os.Exit
	var code int
	// setup logger

	var lo io.Writer = zerolog.ConsoleWriter{Out: os.Stdout}
	if disableStdout { // discard logs if asked for
		lo = io.Discard
	}

	logger := zerolog.New(lo).With().Timestamp().Logger()
	// change the level to what the flag told us
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		logger.Error().Err(err).Msg("failed to parse loglevel flag")
		os.Exit(1)
	}
	logger = logger.Level(level)

	// setup root context
	ctx := context.Background()
	ctx = logger.WithContext(ctx)

	// setup our error channel, we only use this channel if a nil error is returned by
	// executeCommand; because if it is a non-nil error we know our cmd.Execute finished
	// running; otherwise we have to wait for it to finish so we know it had the chance
	// to clean up resources
	errCh := make(chan error, 1)

	// call into another function so that we can use defers
	err = executeCommand(ctx, errCh)
	if err == nil {
		// executeCommand only returns nil when a signal asked us to stop running, this
		// means the command running has already been notified to shutdown and we will
		// wait for it to return
		<-errCh
	} else if exitErr, ok := err.(ExitError); ok {
		// we've received an ExitError which indicates a (potentially) different
		// failure exit code than the default
		code = exitErr.StatusCode()
	} else {
		// normal non-nil error, we exit with the default failure exit code
		code = 1
		// print the error if it's a non-ExitError since it's probably important
		log.Println("exit error:", err)
		logger.Fatal().Ctx(ctx).Err(err).Msg("exit")
	}

	os.Exit(code)
}

// executeCommand runs subcommands.Execute and handles OS signals
//
// if someone is asking us to shutdown by sending us a SIGINT executeCommand
// should (and does) return a nil error. Otherwise it should return the error
// given by subcommands.Execute
func executeCommand(ctx context.Context, errCh chan error) error {
	// setup context that is passed to the command
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	signalCh := make(chan os.Signal, 2)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	// run our command in another goroutine so we can
	// do signal handling on the main goroutine
	go func() {
		code := subcommands.Execute(ctx, errCh)
		// send a fake error over the errCh, this is so subcommands that don't use our
		// `cmd` type don't hang the process, mostly for internal subcommands we register
		errCh <- WithStatusCode(nil, int(code))
	}()

	// we only exit when either the command finishes running and tells us about
	// it through errCh; or when we receive a signal from outside
	select {
	case sig := <-signalCh:
		zerolog.Ctx(ctx).Info().Ctx(ctx).Str("signal", sig.String()).Msg("signal received")
		return nil
	case err := <-errCh:
		return err
	}
}

// WithStatusCode returns an ExitError with the given status code
func WithStatusCode(err error, code int) error {
	return exitError{err, code}
}

// ExitError is an error that can carry a statuscode to be passed to os.Exit;
type ExitError interface {
	error
	// StatusCode returns a status code to be passed to os.Exit
	StatusCode() int
}

type exitError struct {
	error
	code int
}

// StatusCode returns a status code to be passed to os.Exit
func (err exitError) StatusCode() int {
	return err.code
}

func (err exitError) Error() string {
	if err.error == nil {
		return fmt.Sprintf("exit status %d", err.code)
	}
	return err.error.Error()
}
