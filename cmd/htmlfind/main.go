package main

import (
	"fmt"
	"os"

	"github.com/alevsk/htmlfind/internal/config"
	"github.com/alevsk/htmlfind/internal/logger"
	"github.com/alevsk/htmlfind/internal/query"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool
)

var cfg = &config.Config{}

var rootCmd = &cobra.Command{
	Use:   "htmlfind",
	Short: "htmlfind - find elements in static HTML pages",
	Long: `htmlfind looks up elements in a static HTML page by tag, id, name, class,
link text, a small CSS subset or the //tag XPath form, using regular
expressions over the raw page text.`,
	SilenceErrors: true, // We'll handle error printing ourselves
	SilenceUsage:  true, // We'll handle usage printing ourselves
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("error loading configuration: %w", err)
		}

		// flags override config due to highest precedence
		if debug {
			cfg.Debug = true
		}

		logger.Init(cfg)

		if configPath != "" || os.Getenv(config.HtmlfindConfigPathEnvVar) != "" {
			logger.Debug().Msgf("Using config file: %s", configPath)
		} else {
			logger.Debug().Msg("Using default configuration")
		}

		return nil
	},
}

func init() {
	query.Version = version

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: config.yml in current directory)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging and additional debug information")

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	// Custom error handling to show usage before error
	if err := rootCmd.Execute(); err != nil {
		cmd := rootCmd
		if c, _, err2 := rootCmd.Find(os.Args[1:]); err2 == nil {
			cmd = c
		}
		fmt.Println(cmd.UsageString())
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
