package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/iconforge/cmd/iconforge/commands"
	"github.com/teranos/iconforge/logger"
)

var rootCmd = &cobra.Command{
	Use:   "iconforge",
	Short: "iconforge - Icon collection and Rust code generation",
	Long: `iconforge - Fetch icons and generate Rust icon modules.

iconforge ingests icons from the Iconify registry and from local SVG files,
normalizes them, and emits one generated Rust file per collection plus an
aggregating mod.rs that a Dioxus application compiles in.

Available commands:
  init    - Create the output directory and mod.rs manifest
  add     - Add icons by identifier, SVG file, or directory
  list    - List generated icons grouped by collection
  update  - Re-fetch all registry icons and regenerate the manifest
  config  - Manage iconforge configuration

Examples:
  iconforge init                       # Set up src/icons/mod.rs
  iconforge add mdi:home tabler:x      # Fetch two icons from the registry
  iconforge add ./assets/my-icons      # Import a directory of SVG files
  iconforge add mdi:home --skip-existing
  iconforge list                       # Show everything generated so far
  iconforge update                     # Refresh all registry icons`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(verbosity, jsonOutput); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON instead of console output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output directory for generated files (default from config: src/icons)")

	rootCmd.AddCommand(commands.InitCmd)
	rootCmd.AddCommand(commands.AddCmd)
	rootCmd.AddCommand(commands.ListCmd)
	rootCmd.AddCommand(commands.UpdateCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
