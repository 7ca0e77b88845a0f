// Package cli implements the geohash command line tool.
package cli

import (
	"os"

	"geohash-api/internal/service"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the geohash command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool
	svc := service.NewGeohashService()

	cmd := &cobra.Command{
		Use:           "geohash",
		Short:         "Encode, decode and walk geohash cells",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).
				With().Timestamp().Logger()
			cmd.SetContext(logger.WithContext(cmd.Context()))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newEncodeCmd(svc),
		newDecodeCmd(svc),
		newAdjacentCmd(svc),
		newNeighboursCmd(svc),
		newBatchCmd(svc),
	)

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := execute(NewRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd and reports a failure on the command's error stream.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		cmd.PrintErrln("Error:", err)
	}
	return err
}
