package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// disableGCForRun turns the garbage collector off for the duration of
// a non-interactive run: the ROM and TPU state are allocated up front,
// so the tight tick loop that follows has nothing for the collector to
// usefully do, only cycles to steal from it.
func disableGCForRun() func() {
	key, ok := os.LookupEnv("GOGC")
	if !ok {
		key = "100"
	}
	gcPercent, err := strconv.ParseInt(key, 10, 32)
	if err != nil {
		gcPercent = 100
	}

	debug.SetGCPercent(-1)
	return func() { debug.SetGCPercent(int(gcPercent)) }
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <program.rgal>",
		Short: "Assemble a program and run it to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTPU(args[0])
			if err != nil {
				return err
			}

			restoreGC := disableGCForRun()
			defer restoreGC()

			var cycles uint64
			for !t.Halted() {
				t.Tick()
				cycles++
				if verbose {
					log.WithFields(logrus.Fields{
						"pc":     t.ProgramCounter(),
						"cycles": cycles,
					}).Debug("tick")
				}
			}

			log.WithFields(logrus.Fields{
				"reason": t.HaltedReason(),
				"cycles": cycles,
				"pc":     t.ProgramCounter(),
			}).Info("halted")

			fmt.Println(t.String())
			return nil
		},
	}
}
