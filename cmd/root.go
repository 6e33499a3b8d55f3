package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/RobsonDevCode/pkgscan/internal/configuration"
	scannerselectionservice "github.com/RobsonDevCode/pkgscan/internal/services/scannerSelectionService"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ScanSelectionFactory builds the scan pipeline once the configuration is known.
type ScanSelectionFactory func(config *configuration.Config, stdout io.Writer, stderr io.Writer) scannerselectionservice.ScannerSelectionService

var (
	configPath string
	noColor    bool

	config               *configuration.Config
	newScanSelectionWith ScanSelectionFactory
)

var rootCmd = &cobra.Command{
	Use:   "pkgscan",
	Short: "scan npm projects for known vulnerable package versions",
	Long: `pkgscan checks package.json, yarn.lock, package-lock.json and node_modules
of your projects against a list of known vulnerable package versions.

The built-in list covers the compromised chalk and debug releases. Extra
packages can be added with a JSON or YAML file of the form
{"<package>": ["<version>", ...]}.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}

		loaded, err := configuration.Load(configPath)
		if err != nil {
			return err
		}
		config = loaded

		return nil
	},
}

// cant DI directly into the command so we use a setter
func SetScanSelectionFactory(factory ScanSelectionFactory) {
	newScanSelectionWith = factory
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %s", err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", configuration.FilePath, "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("pkgscan {{.Version}}\n")
}
