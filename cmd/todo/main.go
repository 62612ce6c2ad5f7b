package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/idilsaglam/todo-remind/internal/config"
	"github.com/idilsaglam/todo-remind/internal/logging"
	"github.com/idilsaglam/todo-remind/internal/notify"
	"github.com/idilsaglam/todo-remind/internal/tui"
	"github.com/idilsaglam/todo-remind/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns an exit code (0 ok, 1 error, 2 usage).
func run(args []string) int {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	printExample := fs.Bool("print-config", false, "print a default config file and exit")
	cfg, err := config.Load(fs, args, os.Getenv)
	theme := ui.Named(cfg.Theme)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		ui.Fail(os.Stderr, theme, err.Error())
		return 2
	}
	if *printExample {
		if err := config.WriteExample(os.Stdout); err != nil {
			ui.Fail(os.Stderr, theme, "print config: "+err.Error())
			return 1
		}
		// stdout carries the TOML, keep it clean
		ui.OK(os.Stderr, theme, "default config printed")
		return 0
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		ui.Fail(os.Stderr, theme, err.Error())
		return 1
	}
	defer closer.Close()
	logger.Info("starting", "config", cfg.Path, "theme", cfg.Theme, "permission", cfg.Permission())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host := notify.NewDesktop(notify.DesktopOptions{
		Enabled:    cfg.Notifications.Enabled,
		Permission: cfg.Permission(),
	})
	if !host.Supported() {
		logger.Warn("desktop notifications unavailable")
	}

	m := tui.New(ctx, tui.Options{Theme: theme, Host: host, Logger: logger})
	if err := tui.Run(ctx, m, cfg.Mouse); err != nil && ctx.Err() == nil {
		logger.Error("tui exited", "err", err)
		ui.Fail(os.Stderr, theme, err.Error())
		return 1
	}
	logger.Info("bye")
	return 0
}
