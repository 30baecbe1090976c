package cmd

import (
	"fmt"
	"strings"

	"filesbundler/pkg/language"
	"filesbundler/pkg/rsp"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// createRspCmd interactively collects the bundle settings and writes
// them as a single argument line into response.rsp, reusable as
// "filesbundler bundle @response.rsp".
var createRspCmd = &cobra.Command{
	Use:   "create-rsp",
	Short: "Interactively create a reusable response.rsp argument file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !stdinIsTerminal() {
			return fmt.Errorf("create-rsp requires an interactive terminal")
		}

		fmt.Printf("Known languages: %s\n", strings.Join(language.Tags(), ", "))
		languages, err := promptLine("Languages (comma-separated, or \"all\"): ")
		if err != nil {
			return err
		}
		output, err := promptLine("Output file path: ")
		if err != nil {
			return err
		}
		note, err := promptYesNo("Add a provenance comment per file? (y/n): ")
		if err != nil {
			return err
		}
		sortMode, err := promptLine("Sort order (name/type, default name): ")
		if err != nil {
			return err
		}
		removeEmpty, err := promptYesNo("Remove empty lines? (y/n): ")
		if err != nil {
			return err
		}
		author, err := promptLine("Author (optional): ")
		if err != nil {
			return err
		}

		values := rsp.Values{
			Languages:        languages,
			Output:           output,
			Note:             note,
			Sort:             sortMode,
			RemoveEmptyLines: removeEmpty,
			Author:           author,
		}
		if err := rsp.Write(rsp.DefaultFileName, values); err != nil {
			return err
		}

		logger().Info("Wrote response file", zap.String("file", rsp.DefaultFileName))
		fmt.Printf("Wrote %s. Reuse it with: filesbundler bundle @%s\n", rsp.DefaultFileName, rsp.DefaultFileName)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(createRspCmd)
}
