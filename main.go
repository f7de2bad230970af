package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"glacier/backend"
)

// The native loop has to run on the thread that created the window, which
// for macOS and GTK is the main thread.
func init() {
	runtime.LockOSThread()
}

// main opens one window showing the engine and library versions and logs
// every message the page posts over the IPC bridge.
func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("glacier", flag.ContinueOnError)
	configPath := fs.String("config", "", "window config file (default: glacier.config in the working or user config directory)")
	devtools := fs.Bool("devtools", true, "enable the developer tools")
	title := fs.String("title", "", "window title (overrides config)")
	url := fs.String("url", "", "load this URL instead of the demo page")
	debug := fs.Bool("debug", false, "log at debug level")
	noColor := fs.Bool("no-color", false, "disable colored logs")
	installer := fs.String("webview2-installer", "", "WebView2 bootstrapper to run when the runtime is missing (Windows)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := backend.NewLogger(os.Stderr, level, *noColor)
	slog.SetDefault(logger)

	if err := ensureWebView2(*installer); err != nil {
		return err
	}

	cfgService := backend.NewConfigServiceAt(*configPath)
	if *configPath == "" {
		var err error
		if cfgService, err = backend.NewConfigService(); err != nil {
			return err
		}
	}
	opts := cfgService.GetConfig()
	opts.Devtools = *devtools
	slog.Debug("window config loaded", "path", cfgService.Path(), "options", opts)

	window, err := backend.NewWindow(&opts, backend.WithLogger(logger))
	if err != nil {
		return err
	}
	if *title != "" {
		if err := window.SetTitle(*title); err != nil {
			return err
		}
	}

	if *url != "" {
		err = window.LoadURL(*url)
	} else {
		var page string
		page, err = renderPage(newPageData(window.Title(), backend.GetWebviewVersion(), backend.GetLibVersion()))
		if err == nil {
			err = window.LoadHTML(page)
		}
	}
	if err != nil {
		_ = window.Close()
		return err
	}

	sigCtx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err = window.Create(sigCtx, func(data string) {
		logger.Info("IPC data", "data", data)
	})
	if err != nil && sigCtx.Err() == nil {
		return err
	}
	return nil
}
