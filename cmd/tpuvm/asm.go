package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"tpuvm/tpu"
)

func newAsmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "asm <program.rgal>",
		Short: "Assemble a program and print its decoded instructions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading program %s", args[0])
			}

			program, err := tpu.ParseProgram(string(source))
			if err != nil {
				return errors.Wrapf(err, "assembling %s", args[0])
			}

			t := tpu.NewBasic(program)
			fmt.Print(t.ProgramString())
			return nil
		},
	}
}
