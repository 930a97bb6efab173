package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tpuvm/tpu"
)

func newStepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "step <program.rgal>",
		Short: "Single-step a program interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTPU(args[0])
			if err != nil {
				return err
			}
			runDebugREPL(t)
			return nil
		},
	}
}

// runDebugREPL is the teacher's n/next, r/run, b/break <line> debug
// loop, adapted to drive a TPU one Step (not one Tick) at a time so a
// multi-cycle instruction still lands on a single REPL prompt.
func runDebugREPL(t *tpu.TPU) {
	fmt.Print("Commands:\n\tn or next: execute next instruction\n\tr or run: run program\n\tb or break <line>: break on line (or remove break on line)\n\n")

	printState(t)

	reader := bufio.NewReader(os.Stdin)
	waitForInput := true
	breakAtLines := make(map[int]struct{})
	lastBreakLine := -1

	for !t.Halted() {
		line := ""
		if waitForInput {
			fmt.Print("->")
			line, _ = reader.ReadString('\n')
			line = strings.ToLower(strings.TrimSpace(line))
		} else {
			pc := t.ProgramCounter()
			if _, ok := breakAtLines[pc]; ok && lastBreakLine != pc {
				fmt.Println("breakpoint")
				printState(t)
				waitForInput = true
				lastBreakLine = pc
				continue
			}
		}

		switch {
		case !waitForInput || line == "n" || line == "next":
			lastBreakLine = -1
			t.Step()
			if waitForInput {
				printState(t)
			}
		case line == "r" || line == "run":
			waitForInput = false
		case strings.HasPrefix(line, "b"):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				break
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Println("unknown line number:", err)
				break
			}
			if _, ok := breakAtLines[n]; ok {
				delete(breakAtLines, n)
			} else {
				breakAtLines[n] = struct{}{}
			}
		}
	}

	fmt.Println(t.String())
	fmt.Println("halted:", t.HaltedReason())
}

func printState(t *tpu.TPU) {
	if s := t.NextInstructionString(); s != "" {
		fmt.Println("  next instruction>", s)
	}
	fmt.Print(t.String())
}
