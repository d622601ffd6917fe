package main

import (
	"fmt"
	"strings"

	"github.com/alevsk/htmlfind/internal/finder"
	"github.com/alevsk/htmlfind/internal/query"
	"github.com/spf13/cobra"
)

var (
	findOpts     = &query.Options{}
	findBy       string
	findDocument string
)

var findCmd = &cobra.Command{
	Use:   "find [selector]",
	Short: "Find elements in an HTML page",
	Long: `Find elements in a static HTML page. The page defaults to finder.document
from the configuration.

Examples:
  # Count table rows
  htmlfind find --by tag tr

  # Look up an element by id in a specific page
  htmlfind find --by id primera -d ./testdata/index.html

  # Anchors whose text contains "Link", as JSON
  htmlfind find --by partial-link Link -o json

  # CSS subset: #id, .class, tag.class and tag
  htmlfind find "td.rojo"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := &query.Options{
			OutputFormat:    cfg.Finder.Output,
			IncludeMetadata: cfg.Finder.IncludeMetadata,
		}
		if cmd.Flags().Changed("output") || opts.OutputFormat == "" {
			opts.OutputFormat = findOpts.OutputFormat
		}
		if cmd.Flags().Changed("include-metadata") {
			opts.IncludeMetadata = findOpts.IncludeMetadata
		}

		source := cfg.Finder.Document
		if cmd.Flags().Changed("document") || source == "" {
			source = findDocument
		}

		result, err := query.New(opts).Run(cmd.Context(), source, findBy, args[0])
		if err != nil {
			return fmt.Errorf("find failed: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), result.OutputFormatted)
		return nil
	},
}

func strategyNames() []string {
	names := make([]string, 0, len(finder.Strategies()))
	for _, s := range finder.Strategies() {
		names = append(names, string(s))
	}
	return names
}

func init() {
	flags := findCmd.Flags()
	flags.StringVarP(&findBy, "by", "b", string(finder.StrategyCSSSelector),
		"lookup strategy ("+strings.Join(strategyNames(), ", ")+")")
	flags.StringVarP(&findDocument, "document", "d", "", "path to the HTML page to search")
	flags.StringVarP(&findOpts.OutputFormat, "output", "o", "table", "output format (table, json, yaml, markdown)")
	flags.BoolVar(&findOpts.IncludeMetadata, "include-metadata", true,
		"include metadata in the output")

	_ = findCmd.RegisterFlagCompletionFunc("by", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return strategyNames(), cobra.ShellCompDirectiveNoFileComp
	})
}
