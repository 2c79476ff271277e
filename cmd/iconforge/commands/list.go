package commands

import (
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// ListCmd prints the generated icons grouped by collection.
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated icons grouped by collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildPipeline(cmd)
		if err != nil {
			return err
		}

		byCollection, err := p.List()
		if err != nil {
			return err
		}

		if len(byCollection) == 0 {
			pterm.Info.Println("No icons generated yet")
			return nil
		}

		collections := make([]string, 0, len(byCollection))
		for collection := range byCollection {
			collections = append(collections, collection)
		}
		sort.Strings(collections)

		total := 0
		for _, collection := range collections {
			names := byCollection[collection]
			total += len(names)

			pterm.DefaultSection.Printfln("%s (%d)", collection, len(names))
			for _, name := range names {
				pterm.Printfln("  %s", name)
			}
		}

		pterm.Println()
		pterm.Info.Printfln("%d icons in %d collections", total, len(collections))
		return nil
	},
}
