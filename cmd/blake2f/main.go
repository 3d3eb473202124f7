// Command blake2f runs the BLAKE2b compression function F on EIP-152 encoded
// inputs given as hex, either as arguments or one per line on stdin.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var cfg config

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cmd := &cobra.Command{
		Use:   "blake2f [hex-input...]",
		Short: "Run the BLAKE2b F compression function on EIP-152 encoded inputs",
		Long: "Each input is the 213 byte EIP-152 encoding of the arguments to F, in hex.\n" +
			"Inputs are read from the arguments, or one per line from stdin if there are none.\n" +
			"The 64 byte result is printed in hex for every input.",

		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.overrideRounds = cmd.Flags().Changed("rounds")
			if cfg.Verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			proc := newProcessor(&cfg, log, stdout)
			err := proc.run(cmd.Context(), args, stdin)
			if err != nil {
				log.WithError(err).Error("compression failed")
			}
			return err
		},
	}

	cfg.bind(cmd.Flags())

	return cmd
}
