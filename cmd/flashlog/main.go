package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/flashtools/flashlog/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := pflag.String("config", "", "override config path (optional)")
	listen := pflag.String("listen", "", "listen address host:port (overrides config)")
	port := pflag.Int("port", 0, "listen port on 127.0.0.1 (overrides config)")
	consoleMode := pflag.Bool("console", false, "plain console output instead of the TUI")
	excludes := pflag.StringArray("exclude", nil, "exclude senders containing this substring (repeatable)")
	noDownload := pflag.Bool("no-exclude-download", false, "do not exclude download subsystem logs by default")
	pflag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:         *configPath,
		Listen:             *listen,
		Port:               *port,
		Exclude:            *excludes,
		NoDownloadExcludes: *noDownload,
		Console:            *consoleMode,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "flashlog: %v\n", err)
		return 1
	}
	return 0
}
