package cmd

import (
	"fmt"
	"strings"

	"filesbundler/pkg/bundle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bundleCmd aggregates source files under a directory into one output
// file. The directory defaults to the current one.
var bundleCmd = &cobra.Command{
	Use:   "bundle [directory]",
	Short: "Bundle source files into a single output file",
	Long: `Bundle walks the given directory (default "."), keeps the files matching
the requested languages, orders them, and writes them into one output
file. Build-artifact directories (bin, obj, debug) are always skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		languages, err := flags.GetString("language")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		output, _ := flags.GetString("output")
		note, _ := flags.GetBool("note")
		sortMode, _ := flags.GetString("sort")
		removeEmpty, _ := flags.GetBool("remove-empty-lines")
		author, _ := flags.GetString("author")
		excludes, _ := flags.GetStringArray("exclude")

		opts := bundle.Options{
			Output:           output,
			Note:             note,
			Sort:             bundle.SortMode(sortMode),
			RemoveEmptyLines: removeEmpty,
			Author:           author,
			ExcludeGlobs:     excludes,
			ConfirmOverwrite: confirmOverwrite,
		}
		if strings.EqualFold(strings.TrimSpace(languages), "all") {
			opts.AllLanguages = true
		} else {
			opts.Languages = strings.Split(languages, ",")
		}

		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		res, err := bundle.Bundle(opts, root, logger())
		if err != nil {
			return err
		}

		logger().Info("Bundle complete",
			zap.String("output", output),
			zap.Int("filesBundled", res.FilesBundled))
		fmt.Printf("Bundled %d files into %s\n", res.FilesBundled, output)
		return nil
	},
}

// confirmOverwrite asks the user before replacing an existing output
// file. Non-interactive runs decline, so scripted invocations never
// clobber a file without an explicit prior delete.
func confirmOverwrite(path string) bool {
	if !stdinIsTerminal() {
		return false
	}
	ok, err := promptYesNo(fmt.Sprintf("Output file %s already exists. Overwrite? (y/n): ", path))
	if err != nil {
		return false
	}
	return ok
}

func init() {
	bundleCmd.Flags().StringP("language", "l", "", "Comma-separated language list, or \"all\" (required)")
	bundleCmd.Flags().StringP("output", "o", "", "Destination path for the bundle")
	bundleCmd.Flags().BoolP("note", "n", false, "Emit a provenance comment before each file")
	bundleCmd.Flags().StringP("sort", "s", "name", "Sort order: name or type")
	bundleCmd.Flags().BoolP("remove-empty-lines", "r", false, "Drop empty and whitespace-only lines")
	bundleCmd.Flags().StringP("author", "a", "", "Author name for the leading provenance line")
	bundleCmd.Flags().StringArray("exclude", nil, "Glob pattern to exclude (repeatable)")
	_ = bundleCmd.MarkFlagRequired("language")

	RootCmd.AddCommand(bundleCmd)
}
