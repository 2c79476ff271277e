package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/iconforge/config"
	"github.com/teranos/iconforge/logger"
	"github.com/teranos/iconforge/pipeline"
	"github.com/teranos/iconforge/registry"
)

// buildPipeline constructs the pipeline from configuration, with the global
// --output flag taking precedence over the configured directory.
func buildPipeline(cmd *cobra.Command) (*pipeline.Pipeline, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.Output.Dir
	}

	client := registry.NewClient(registry.Options{
		BaseURL:           cfg.Registry.BaseURL,
		Timeout:           cfg.Registry.Timeout(),
		RequestsPerMinute: cfg.Registry.RequestsPerMinute,
		Logger:            logger.Logger,
	})

	return pipeline.New(pipeline.Options{
		OutputDir: outputDir,
		Registry:  client,
		Logger:    logger.Logger,
	}), nil
}
