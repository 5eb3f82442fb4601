// Package cli implements the command-line interface of xref.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/replit/xref/internal/config"
	"github.com/replit/xref/internal/crossref"
	"github.com/replit/xref/internal/trace"
	"github.com/replit/xref/internal/util"
	"github.com/spf13/cobra"
)

// parseOutputFormat takes "table" or "json" and returns an
// outputFormat enum value.
func parseOutputFormat(formatStr string) outputFormat {
	switch formatStr {
	case "table":
		return outputFormatTable
	case "json":
		return outputFormatJSON
	default:
		util.Die(`Error: invalid format %#v (must be "table" or "json")`, formatStr)
		return 0
	}
}

// parsePolicy takes "wipe" or "preserve" and returns the rebuild
// policy.
func parsePolicy(policyStr string) crossref.RebuildPolicy {
	policy, err := crossref.ParseRebuildPolicy(policyStr)
	if err != nil {
		util.Die(`Error: invalid policy %#v (must be "wipe" or "preserve")`, policyStr)
	}
	return policy
}

// checkColor validates the --color option.
func checkColor(color string) {
	switch color {
	case "auto", "always", "never":
	default:
		util.Die(`Error: invalid color %#v (must be "auto", "always" or "never")`, color)
	}
}

// version is set at build time to a Git tag or the string
// "development version" when not tagging a release.
var version = "unknown version"

// getVersion returns a string that can be printed when calling 'xref
// --version'.
func getVersion() string {
	return "xref " + version
}

// traced wraps run in a span named after the command.
func traced(run func(args []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		span, _ := trace.StartSpan(cmd.Context(), "xref."+cmd.Name())
		defer span.Finish()
		run(args)
	}
}

// optionalFile splits off a leading FILE argument when there are more
// than n arguments.
func optionalFile(args []string, n int) (string, []string) {
	if len(args) > n {
		return args[0], args[1:]
	}
	return "", args
}

// DoCLI reads the command-line arguments and runs the appropriate
// code, then exits the process (or returns to indicate normal exit).
func DoCLI() {
	var formatStr string
	var policyStr string
	var sortRows bool
	var sortColumn string

	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:     "xref",
		Short:   "Cross-reference tables keyed by row and column",
		Version: getVersion(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			checkColor(config.Color)
			util.SetupLogging(config.Verbose)
		},
	}
	rootCmd.SetVersionTemplate(`{{.Version}}` + "\n")
	rootCmd.PersistentFlags().BoolVarP(
		&config.Quiet, "quiet", "q", false, "don't show progress messages",
	)
	rootCmd.PersistentFlags().BoolVar(
		&config.Verbose, "verbose", false, "write debug logs to stderr",
	)
	rootCmd.PersistentFlags().StringVar(
		&config.Color, "color", "auto", `use colour ("auto", "always" or "never")`,
	)
	rootCmd.PersistentFlags().BoolP(
		"help", "h", false, "display command-line usage",
	)
	rootCmd.PersistentFlags().BoolP(
		"version", "v", false, "display command version",
	)

	cmdDemo := &cobra.Command{
		Use:   "demo",
		Short: "Build and print the sample tables",
		Args:  cobra.NoArgs,
		Run: traced(func(args []string) {
			runDemo(parsePolicy(policyStr), parseOutputFormat(formatStr))
		}),
	}
	cmdDemo.Flags().SortFlags = false
	cmdDemo.Flags().StringVarP(
		&formatStr, "format", "f", "table", `output format ("table" or "json")`,
	)
	cmdDemo.Flags().StringVar(
		&policyStr, "policy", "wipe", `what to do with cells when axes are replaced ("wipe" or "preserve")`,
	)
	rootCmd.AddCommand(cmdDemo)

	cmdShow := &cobra.Command{
		Use:   "show [FILE]",
		Short: "Print a table document",
		Args:  cobra.MaximumNArgs(1),
		Run: traced(func(args []string) {
			filename, _ := optionalFile(args, 0)
			runShow(filename, parseOutputFormat(formatStr), sortOrder{byRowKey: sortRows, column: sortColumn})
		}),
	}
	cmdShow.Flags().SortFlags = false
	cmdShow.Flags().StringVarP(
		&formatStr, "format", "f", "table", `output format ("table" or "json")`,
	)
	cmdShow.Flags().BoolVar(
		&sortRows, "sort", false, "order rows by row key",
	)
	cmdShow.Flags().StringVar(
		&sortColumn, "sort-by", "", "order rows by the values in COLUMN",
	)
	rootCmd.AddCommand(cmdShow)

	cmdInfo := &cobra.Command{
		Use:   "info [FILE]",
		Short: "Show table document metadata",
		Args:  cobra.MaximumNArgs(1),
		Run: traced(func(args []string) {
			filename, _ := optionalFile(args, 0)
			runInfo(filename, parseOutputFormat(formatStr))
		}),
	}
	cmdInfo.Flags().SortFlags = false
	cmdInfo.Flags().StringVarP(
		&formatStr, "format", "f", "table", `output format ("table" or "json")`,
	)
	rootCmd.AddCommand(cmdInfo)

	cmdGet := &cobra.Command{
		Use:   "get [FILE] ROW COLUMN",
		Short: "Print one cell of a table document",
		Args:  cobra.RangeArgs(2, 3),
		Run: traced(func(args []string) {
			filename, keys := optionalFile(args, 2)
			runGet(filename, keys[0], keys[1])
		}),
	}
	rootCmd.AddCommand(cmdGet)

	cmdSet := &cobra.Command{
		Use:   "set FILE ROW COLUMN VALUE",
		Short: "Update one cell of a table document",
		Args:  cobra.ExactArgs(4),
		Run: traced(func(args []string) {
			runSet(args[0], args[1], args[2], args[3])
		}),
	}
	rootCmd.AddCommand(cmdSet)

	cmdConvert := &cobra.Command{
		Use:   "convert SRC DST",
		Short: "Re-encode a table document",
		Long:  "Re-encode a table document; formats are chosen by file extension",
		Args:  cobra.ExactArgs(2),
		Run: traced(func(args []string) {
			runConvert(args[0], args[1])
		}),
	}
	rootCmd.AddCommand(cmdConvert)

	specialArgs := map[string](func()){}
	for _, helpFlag := range []string{"-help", "-?"} {
		specialArgs[helpFlag] = func() {
			rootCmd.Usage()
			os.Exit(0)
		}
	}
	for _, versionFlag := range []string{"-version", "-V"} {
		specialArgs[versionFlag] = func() {
			fmt.Println(getVersion())
			os.Exit(0)
		}
	}

	if len(os.Args) >= 2 {
		fn, ok := specialArgs[os.Args[1]]
		if ok {
			fn()
		}
	}

	if trace.MaybeTrace(getVersion()) {
		defer trace.Stop()
	}
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		trace.Stop()
		os.Exit(1)
	}
}
