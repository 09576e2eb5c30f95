package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/zooyer/dxf-codec/config"
)

const appName = "dxfcodec"

func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	env := envFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	env.Log = env.Cfg.Logging.Prepare(appName)

	env.Log.Debug("Program started", zap.Strings("args", os.Args))
	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, _ *cli.Command) (err error) {
	env := envFromContext(ctx)
	env.Log.Debug("Program ended")
	// 终端上的 stdout/stderr 不支持 Sync
	if er := env.Log.Sync(); er != nil && !errors.Is(er, syscall.EINVAL) && !errors.Is(er, syscall.ENOTTY) {
		err = multierr.Append(err, fmt.Errorf("unable to sync log: %w", er))
	}
	return err
}

var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := envFromContext(ctx)
	env.Log.Error("Program ended with error", zap.Error(err))
	errWasHandled = env.Cfg != nil && env.Cfg.Logging.ConsoleLogger.Level != "none"
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)

	var (
		err  error
		data []byte
	)
	if cmd.Bool("default") {
		data, err = config.Prepare()
	} else {
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	fname := cmd.Args().Get(0)
	if len(fname) == 0 {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(fname, data, 0644)
}

func main() {
	ctx, stop := signal.NotifyContext(contextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            appName,
		Usage:           "reads and writes DXF drawing entities",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
		},
		Commands: []*cli.Command{
			{
				Name:      "dump",
				Usage:     "Prints entities of a DXF file",
				Action:    runDump,
				ArgsUsage: "SOURCE [DESTINATION]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "output `FORMAT` (yaml, msgpack, text), overrides configuration"},
				},
			},
			{
				Name:      "convert",
				Usage:     "Rewrites a DXF file with another format version",
				Action:    runConvert,
				ArgsUsage: "SOURCE DESTINATION",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "to", Usage: "output `VERSION` (R12, R2000, AC1032, ...), overrides configuration"},
					&cli.StringSliceFlag{Name: "set", Usage: "set block reference attribute, `TAG=VALUE` (may be repeated)"},
					&cli.StringFlag{Name: "block", Usage: "limit --set to references of block `NAME`"},
				},
			},
			{
				Name:      "dumpconfig",
				Usage:     "Dumps either default or actual configuration (YAML)",
				Action:    outputConfiguration,
				ArgsUsage: "[DESTINATION]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
			},
		},
	}

	var err error
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}
