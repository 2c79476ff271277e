package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// UpdateCmd re-fetches every registered icon through the registry.
var UpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Re-fetch all registry icons and regenerate the manifest",
	Long: `Re-fetch every generated icon from the registry and rewrite the mod.rs
manifest's fixed content. Icons imported from local SVG files cannot be
re-fetched and are reported as failures.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildPipeline(cmd)
		if err != nil {
			return err
		}

		spinner, _ := pterm.DefaultSpinner.Start("Updating icons...")
		report, err := p.Update(cmd.Context())
		if err != nil {
			if spinner != nil {
				spinner.Fail("Update failed")
			}
			return err
		}
		if spinner != nil {
			spinner.Stop()
		}

		for _, name := range report.Updated {
			pterm.Success.Printfln("Updated %s", name)
		}
		for _, failure := range report.Failures {
			pterm.Error.Printfln("Failed %s: %v", failure.Input, failure.Err)
		}

		if len(report.Updated) == 0 && len(report.Failures) == 0 {
			pterm.Info.Println("Nothing to update")
		}
		pterm.Info.Println("Manifest regenerated")

		return nil
	},
}
