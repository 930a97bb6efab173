// Command tpuvm assembles and runs RGAL programs against the TPU core.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	boardPath string
	verbose   bool
	log       = logrus.New()
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tpuvm",
		Short: "Assemble and run RGAL programs on the TPU virtual machine",
	}

	cmd.PersistentFlags().StringVar(&boardPath, "board", "", "path to a TOML board configuration file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log one line per clock tick")

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	}

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newStepCmd())
	cmd.AddCommand(newAsmCmd())

	return cmd
}

func main() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: false})

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
