package main

import (
	"os"

	"github.com/pkg/errors"

	"tpuvm/tpu"
)

// loadTPU reads and assembles the RGAL source at path, then constructs a
// TPU from it using the configured board (or the default board if
// boardPath is empty).
func loadTPU(path string) (*tpu.TPU, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading program %s", path)
	}

	program, err := tpu.ParseProgram(string(source))
	if err != nil {
		return nil, errors.Wrapf(err, "assembling %s", path)
	}

	board, err := LoadBoard(boardPath)
	if err != nil {
		return nil, err
	}

	return board.NewTPU(program), nil
}
