package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// AddCmd resolves inputs and emits them into the generated files.
var AddCmd = &cobra.Command{
	Use:   "add <input>...",
	Short: "Add icons by identifier, SVG file, or directory",
	Long: `Add icons to the generated module. Each input is one of:

  collection:icon-name   an icon fetched from the Iconify registry
  path/to/file.svg       a local SVG file (collection = parent directory name)
  path/to/directory      a directory scanned recursively for .svg files

Failures on individual inputs are reported and do not abort the rest.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		skipExisting, _ := cmd.Flags().GetBool("skip-existing")

		p, err := buildPipeline(cmd)
		if err != nil {
			return err
		}

		spinner, _ := pterm.DefaultSpinner.Start("Resolving icons...")
		report, err := p.Add(cmd.Context(), args, skipExisting)
		if err != nil {
			if spinner != nil {
				spinner.Fail("Add failed")
			}
			return err
		}
		if spinner != nil {
			spinner.Stop()
		}

		for _, name := range report.Added {
			pterm.Success.Printfln("Added %s", name)
		}
		for _, name := range report.Skipped {
			pterm.Info.Printfln("Skipped %s (already present)", name)
		}
		for _, failure := range report.Failures {
			pterm.Error.Printfln("Failed %s: %v", failure.Input, failure.Err)
		}

		if len(report.Added) == 0 && len(report.Failures) == 0 && len(report.Skipped) == 0 {
			pterm.Info.Println("Nothing to add")
		} else if len(report.Added) == 0 && len(report.Failures) > 0 {
			pterm.Warning.Println("No icons were added")
		}

		return nil
	},
}

func init() {
	AddCmd.Flags().Bool("skip-existing", false, "Skip identifiers already present in the generated files")
}
