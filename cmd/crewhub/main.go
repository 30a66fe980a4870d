// Package main is the entry point for the CrewHub desktop shell.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	crewhub "github.com/EKINSOL-DEV/crewhub"
	"github.com/EKINSOL-DEV/crewhub/internal/buildinfo"
	"github.com/EKINSOL-DEV/crewhub/internal/config"
	"github.com/EKINSOL-DEV/crewhub/internal/desktop"
	"github.com/EKINSOL-DEV/crewhub/internal/logging"
	"github.com/EKINSOL-DEV/crewhub/internal/models"
	"github.com/EKINSOL-DEV/crewhub/internal/notify"
	"github.com/EKINSOL-DEV/crewhub/internal/server"
	"github.com/EKINSOL-DEV/crewhub/internal/updater"
)

func main() {
	dev := flag.Bool("dev", false, "Serve window content from the dev server and enable devtools")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("crewhub %s (%s, built %s)\n", buildinfo.Version, buildinfo.CommitHash, buildinfo.BuildDate)
		return
	}

	// Ensure global directory exists
	if err := config.EnsureGlobalDir(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create global directory: %v\n", err)
		os.Exit(1)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}

	logger := buildLogger(*dev, settings.Log.Level)
	defer logger.Sync()

	logger.Info("starting crewhub shell",
		zap.String("version", buildinfo.Version),
		zap.Bool("dev", *dev))

	// Settings shared with goroutines; the watcher swaps the pointer
	// on every reload.
	var current atomic.Pointer[models.Settings]
	current.Store(settings)

	iconsDir, err := config.IconsDir()
	if err != nil {
		logger.Warn("icons directory unavailable, badge icons will not load", zap.Error(err))
	}

	notifier := notify.New(
		func() bool { return current.Load().Notifications.Enabled },
		"",
		logger,
	)

	// Declared up front so the shutdown hook can reach them; filled in
	// below, before the app runs.
	var (
		srv     *server.Server
		watcher *config.SettingsWatcher
	)

	devServerURL := ""
	if *dev {
		devServerURL = config.DevServerURL(settings)
	}

	app := desktop.New(desktop.Options{
		Logger:       logger,
		Assets:       crewhub.Assets,
		IconsDir:     iconsDir,
		DevServerURL: devServerURL,
		BackendURL:   func() string { return config.BackendURL(current.Load()) },
		Notifier:     notifier,
		OnShutdown: func() {
			logger.Info("shutting down")
			if watcher != nil {
				watcher.Stop()
			}
			if srv != nil {
				srv.Stop()
			}
			if err := config.RemoveShellInfo(); err != nil {
				logger.Warn("failed to remove shell info", zap.Error(err))
			}
			logger.Info("shell stopped")
		},
	})

	srv, err = server.New(server.Options{
		Port:     settings.Control.Port,
		Logger:   logger,
		Registry: app.Registry(),
		Badge:    app.Badge(),
		Notifier: notifier,
		Quit:     app.Quit,
	})
	if err != nil {
		logger.Fatal("failed to start control server", zap.Error(err))
	}
	go func() {
		if serveErr := srv.Serve(); serveErr != nil {
			logger.Error("control server error", zap.Error(serveErr))
		}
	}()
	logger.Info("control API listening",
		zap.String("host", "127.0.0.1"),
		zap.Int("port", srv.Port()))

	info := models.NewShellInfo(srv.Port(), os.Getpid(), uuid.New().String(), buildinfo.Version)
	if err := config.SaveShellInfo(info); err != nil {
		logger.Fatal("failed to write shell info", zap.Error(err))
	}

	watcher, err = config.NewSettingsWatcher(logger, func(updated *models.Settings) {
		current.Store(updated)
		if lvlErr := logger.SetLevel(updated.Log.Level); lvlErr != nil {
			logger.Warn("ignoring invalid log level from settings",
				zap.String("level", updated.Log.Level),
				zap.Error(lvlErr))
		}
	})
	if err != nil {
		logger.Warn("settings watcher unavailable, edits need a restart", zap.Error(err))
	} else if err := watcher.Start(); err != nil {
		logger.Warn("settings watcher failed to start, edits need a restart", zap.Error(err))
	}

	if settings.Updates.CheckOnStartup {
		go checkForUpdate(logger, notifier)
	}

	// Quit the UI loop on SIGINT/SIGTERM
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		app.Quit()
	}()

	// Blocks the main goroutine until quit (platform UI requirement).
	if err := app.Run(); err != nil {
		logger.Fatal("shell terminated", zap.Error(err))
	}
}

// buildLogger sets up console logging in dev mode and JSON logging to
// ~/.crewhub/logs/shell.log otherwise. Logging failures fall back to
// stdout rather than blocking startup.
func buildLogger(dev bool, level string) *logging.Logger {
	if dev {
		cfg := logging.DevelopmentConfig()
		if logger, err := logging.New(cfg); err == nil {
			return logger
		}
		return logging.NewDevelopment()
	}

	cfg := logging.DefaultConfig()
	cfg.Level = level

	if err := config.EnsureGlobalLogsDir(); err == nil {
		if logPath, pathErr := config.ShellLogFile(); pathErr == nil {
			cfg.OutputPaths = []string{logPath}
		}
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return logging.NewDefault()
	}
	return logger
}

// checkForUpdate reports a newer release through the log and, when
// enabled, a notification. Failures are debug noise only.
func checkForUpdate(logger *logging.Logger, notifier *notify.Notifier) {
	result, err := updater.CheckForUpdate()
	if err != nil {
		logger.Debug("update check failed", zap.Error(err))
		return
	}
	if !result.Available {
		return
	}

	logger.Info("update available",
		zap.String("current", result.CurrentVersion),
		zap.String("latest", result.LatestVersion),
		zap.String("release", result.ReleaseURL))

	title := "CrewHub update available"
	body := fmt.Sprintf("Version %s is out (you have %s). Run: crewhubctl update", result.LatestVersion, result.CurrentVersion)
	if err := notifier.Send(title, body); err != nil {
		logger.Debug("could not announce update", zap.Error(err))
	}
}
