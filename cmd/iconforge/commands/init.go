package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// InitCmd creates the output directory and the mod.rs manifest.
var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the output directory and mod.rs manifest",
	Long: `Create the output directory and write the mod.rs manifest with the shared
IconData type and Icon render component. Existing manifests are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildPipeline(cmd)
		if err != nil {
			return err
		}

		if err := p.Init(); err != nil {
			return err
		}

		pterm.Success.Println("Initialized icon module")
		return nil
	},
}
