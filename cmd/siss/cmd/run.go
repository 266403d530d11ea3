package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Nach0t/siss/internal/common/app"
	"github.com/Nach0t/siss/internal/common/logging"
	"github.com/Nach0t/siss/internal/orchestrator"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Runs the frame pipeline",
		RunE:  runPipeline,
	}
	return cmd
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	summary, err := orchestrator.NewRunner(config).Run(app.CreateContextWithShutdown())
	if err != nil {
		return err
	}
	logging.Infof("Saved %d of %d produced frames at %.2f frames/s average", summary.Saved, summary.Produced, summary.AverageRate)
	return nil
}
