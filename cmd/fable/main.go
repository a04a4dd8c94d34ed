// Package main provides the FableShell CLI: it runs the bundled demo
// adventure on the interactive fiction engine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fableshell/internal/config"
	"fableshell/internal/game"
	"fableshell/internal/logger"
	"fableshell/internal/output"
	"fableshell/internal/theme"
	"fableshell/internal/version"
)

var (
	logLevel  string
	logFile   string
	themeName string
	noColor   bool

	settings *config.Settings
)

// rootCmd runs the demo adventure when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "fable",
	Short: "FableShell - an interactive fiction engine",
	Long: `FableShell is a command-interpretation engine for line-based interactive
fiction. Running it without arguments starts the bundled demo adventure.`,
	Run: runGame,
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.Formatted())
	},
}

// themesCmd lists the embedded themes.
var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Run: func(_ *cobra.Command, _ []string) {
		for _, name := range theme.Names() {
			fmt.Println(name)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Output theme (see 'fable themes')")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")

	for _, flag := range []string{"log-level", "log-file", "theme", "no-color"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(themesCmd)

	cobra.OnInitialize(initConfig)
}

// initConfig resolves settings with flags taking precedence over the
// environment and .env file, then configures the logger.
func initConfig() {
	settings = config.Load()
	if logLevel == "" {
		logLevel = settings.LogLevel
	}
	if logFile == "" {
		logFile = settings.LogFile
	}
	if themeName == "" {
		themeName = settings.Theme
	}
	if !noColor {
		noColor = settings.NoColor
	}

	if err := logger.Configure(logLevel, logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func runGame(_ *cobra.Command, _ []string) {
	logger.Info("Starting FableShell", "version", version.Version)

	printerOpts := []output.Option{}
	if noColor {
		printerOpts = append(printerOpts, output.PlainText())
	} else {
		th, err := theme.Load(themeName)
		if err != nil {
			logger.Fatal("Failed to load theme", "error", err)
		}
		printerOpts = append(printerOpts, output.WithStyles(th))
	}
	printer := output.NewPrinter(printerOpts...)

	g := game.New(
		game.WithPrinter(printer),
		game.WithStaticPrompt(settings.Prompt),
	)
	if err := buildDemoAdventure(g); err != nil {
		logger.Fatal("Failed to set up demo adventure", "error", err)
	}

	if err := g.Run(); err != nil {
		logger.Fatal("Game loop failed", "error", err)
	}
}
