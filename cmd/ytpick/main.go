// The ytpick command lists the video and audio formats of a URL and downloads the chosen
// pair with yt-dlp.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/ytget/ytpick/internal/config"
	"github.com/ytget/ytpick/internal/download"
	"github.com/ytget/ytpick/internal/logger"
	"github.com/ytget/ytpick/internal/metrics"
	"github.com/ytget/ytpick/internal/model"
	"github.com/ytget/ytpick/internal/platform"
	"github.com/ytget/ytpick/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppName = "ytpick"

func main() {
	var (
		verbose     = flag.Bool("verbose", false, "Enable debug logging on stderr")
		showVersion = flag.Bool("version", false, "Show version and exit")
		envFile     = flag.String("env", config.DefaultEnvFile, "Optional .env file with YTPICK_* settings")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s v%s\n\n", AppName, version)
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		for _, key := range config.Keys() {
			fmt.Fprintf(os.Stderr, "  %s\n", key)
		}
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("%s v%s\n", AppName, version)
		os.Exit(0)
	}

	if err := config.Load(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load %s: %v\n", *envFile, err)
		os.Exit(1)
	}

	settings := config.NewSettings()

	level := settings.GetLogLevel()
	if *verbose {
		level = "debug"
	}
	log := logger.New(logger.Options{
		Level: level,
		JSON:  settings.GetLogJSON(),
		Color: settings.GetColor(),
	})
	log.Debug("starting", "version", version)

	status, err := run(context.Background(), settings, log, os.Stdin, os.Stdout)
	if err != nil {
		log.Error("application error", "error", err)
		os.Exit(1)
	}

	log.Debug("stopped", "status", status)
}

// run wires the services together and executes one interactive session
func run(ctx context.Context, settings *config.Settings, log hclog.Logger, in io.Reader, out io.Writer) (model.RunStatus, error) {
	lang := settings.GetLanguage()
	if _, ok := settings.GetLanguageOptions()[lang]; !ok {
		log.Warn("unsupported language, using default", "language", lang, "default", ui.DefaultLanguage)
	}

	text := ui.NewLocalization()
	text.SetLanguage(lang)

	tool := platform.NewYTDLP(settings.GetBinary(), log)
	tool.SetTimeout(settings.GetFetchTimeout())

	m := metrics.New()

	svc := download.NewService(tool, settings.GetMergeFormat(), log)
	svc.SetRecorder(m)

	console := ui.NewConsole(out, text, settings.GetColor())
	session := ui.NewSession(ui.NewLineInput(in, out), console, svc, log)
	session.SetObserver(m)

	status, err := session.Run(ctx)
	if err == nil {
		logOutcome(log, session.RunID(), status)
	}

	if path := settings.GetMetricsFile(); path != "" {
		if werr := m.WriteTextfile(path); werr != nil {
			log.Warn("failed to write metrics file", "path", path, "error", werr)
		} else {
			log.Debug("metrics written", "path", path)
		}
	}

	return status, err
}

// logOutcome logs the run result at a level matching how it ended
func logOutcome(log hclog.Logger, runID string, status model.RunStatus) {
	switch {
	case status.IsSuccess():
		log.Info("run completed", "run_id", runID, "status", status)
	case status.IsSoftExit():
		log.Info("run ended without download", "run_id", runID, "status", status)
	default:
		log.Warn("run failed", "run_id", runID, "status", status)
	}
}
