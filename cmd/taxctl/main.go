/*
Package main implements the aliasdex command-line interface and IPC server.

aliasdex is a dictionary-backed auto-completion and exact lookup engine for
a tag taxonomy: canonical terms with multilingual aliases, category codes,
and popularity counts. It can operate as a MessagePack IPC server for
editor/generic client integrations, or as a standalone CLI for interactive
testing.

# Server Mode

The server loads one or more CSV catalogs from a directory and builds the
engine once at startup; thereafter fuzzy_search and query_words requests
are served from memory.

# CLI Mode

The CLI provides an interactive shell for debugging fuzzy_search and
query_words.

# Catalog Files

The catalog directory must contain one or more `*.csv` files following the
catalog format (key, category, count, optional quoted alias list), no
header row.

# Config

Server mode reads its limits from a `config.toml` file, and creates a
default one automatically if it does not exist. CLI mode does not read
the config file: its settings come from the command-line flags, whose
defaults are the built-in defaults.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aliasdex/aliasdex/internal/catalogfs"
	"github.com/aliasdex/aliasdex/internal/cli"
	"github.com/aliasdex/aliasdex/internal/logger"
	"github.com/aliasdex/aliasdex/pkg/config"
	"github.com/aliasdex/aliasdex/pkg/ipc"
	"github.com/aliasdex/aliasdex/taxonomy"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0-beta"
	AppName = "taxctl"
	gh      = "https://github.com/aliasdex/aliasdex"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to build the engine and dispatch to the CLI
// or IPC server. main() does not implement their logic, only the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configFile := flag.String("config", "", "Path to custom config.toml file")
	catalogDir := flag.String("catalog", defaultConfig.Catalog.Dir, "Directory containing *.csv catalog files")
	debugMode := flag.Bool("v", false, "Toggle verbose mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of results to return")
	noFilter := flag.Bool("no-filter", defaultConfig.CLI.DefaultNoFilter, "Disable input filtering (DBG only)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	log.Debugf("Using catalog dir at: %s", *catalogDir)

	blobs, err := catalogfs.LoadDir(*catalogDir)
	if err != nil {
		log.Fatalf("Failed to load catalogs: %v", err)
		os.Exit(1)
	}
	engineLogger := logger.Default(AppName)
	engine := taxonomy.New(blobs, taxonomy.WithLogger(engineLogger))
	log.Debugf("Engine built from %d catalog blob(s)", len(blobs))

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(engine, *limit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")

	appConfig, err := config.InitConfig(resolveConfigPath(*configFile))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	srv := ipc.NewServer(engine, appConfig, engineLogger)

	showStartupInfo(*catalogDir, len(blobs))

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// resolveConfigPath returns configFile if set, otherwise a sensible
// default in the current directory.
func resolveConfigPath(configFile string) string {
	if configFile != "" {
		return configFile
	}
	return "config.toml"
}

// printVersion prints a styled version banner.
func printVersion() {
	versionLogger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	versionLogger.SetStyles(styles)

	versionLogger.Print("")
	versionLogger.Print("[aliasdex] Fast tag taxonomy auto-completion and lookup!")
	versionLogger.Print("", "version", Version)
	versionLogger.Print("")
	versionLogger.Print("use --help to see available options")
	versionLogger.Print("")
	versionLogger.Print("Find out more at", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(catalogDir string, blobCount int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" aliasdex ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("catalog dir: ( %s ), %d blob(s) loaded", catalogDir, blobCount)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
