package cmd

import (
	"fmt"

	"github.com/RobsonDevCode/pkgscan/internal/configuration"
	scannerselectionservice "github.com/RobsonDevCode/pkgscan/internal/services/scannerSelectionService"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [target-path] [vulnerabilities-file]",
	Short: "scan projects for known vulnerable package versions",
	Long: `scan projects for known vulnerable package versions.

		   If no target is provided, every directory directly inside the current directory is scanned.
		   If a directory is provided, that project is scanned. A file scans the directory it lives in.
		   The optional second argument is a JSON or YAML file of extra vulnerable versions.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runScan,
}

var (
	vulnerabilitiesPath string
	outputFormat        string
	selectFlag          bool
	exportFlag          bool
)

func runScan(cmd *cobra.Command, args []string) error {
	if newScanSelectionWith == nil {
		return fmt.Errorf("scan selection has not been configured")
	}

	options := scannerselectionservice.ScanOptions{
		VulnerabilitiesPath: vulnerabilitiesPath,
		Format:              config.OutputSettings.Format,
		Interactive:         selectFlag,
		Export:              exportFlag,
	}

	if len(args) > 0 {
		options.TargetPath = args[0]
	}
	if len(args) > 1 {
		options.VulnerabilitiesPath = args[1]
	}

	if cmd.Flags().Changed("output") {
		if err := configuration.ValidateFormat(outputFormat); err != nil {
			return err
		}
		options.Format = outputFormat
	}

	scanSelection := newScanSelectionWith(config, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if _, err := scanSelection.Scan(cmd.Context(), options); err != nil {
		return err
	}

	return nil
}

func init() {
	scanCmd.Flags().StringVarP(&vulnerabilitiesPath, "vulnerabilities", "v", "", "JSON or YAML file of extra vulnerable package versions")
	scanCmd.Flags().StringVarP(&outputFormat, "output", "o", configuration.TextFormat, "Output format, text or table")
	scanCmd.Flags().BoolVarP(&selectFlag, "select", "s", false, "Choose which projects to scan when scanning a whole directory")
	scanCmd.Flags().BoolVarP(&exportFlag, "export", "e", false, "Export all findings to an excel file")

	rootCmd.AddCommand(scanCmd)
}
