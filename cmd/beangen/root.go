package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd returns the beangen command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "beangen",
		Short:        "Generate property accessors and meta-beans for Go beans",
		SilenceUsage: true,
	}
	flags := root.PersistentFlags()
	flags.String("config", defaultConfigFile, "configuration file, ignored when missing")
	flags.String("indent", "", "indentation of generated lines (default a tab)")
	flags.String("field-prefix", "", "prefix stripped from field names to derive property names")
	flags.Int("workers", 0, "number of files processed concurrently (default the number of CPUs)")
	flags.StringSlice("exclude", nil, "glob patterns of files to skip")
	flags.Bool("debug", false, "enable debug logs")

	root.AddCommand(
		newGenerateCmd(),
		newDescribeCmd(),
	)
	return root
}
