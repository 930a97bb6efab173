package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"tpuvm/tpu"
)

// Board is everything the core constructor (spec.md §6) needs that
// doesn't come from the assembled ROM itself: network address and
// per-pin direction. Grounded in rcornwell-S370's viper/toml machine
// configuration pattern.
type Board struct {
	NetworkAddress uint16 `mapstructure:"network_address"`
	ROM            string `mapstructure:"rom"`
	DigitalInputs  []int  `mapstructure:"digital_inputs"`
	AnalogInputs   []int  `mapstructure:"analog_inputs"`
}

// defaultBoard matches tpu.NewBasic: address 0x1, every pin an output.
func defaultBoard() *Board {
	return &Board{NetworkAddress: 0x1}
}

// LoadBoard reads a TOML board file. An empty path returns defaultBoard
// unchanged, so the CLI works with no config at all.
func LoadBoard(path string) (*Board, error) {
	board := defaultBoard()
	if path == "" {
		return board, nil
	}

	var raw map[string]interface{}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, errors.Wrapf(err, "reading board file %s", path)
	}

	v := viper.New()
	if err := v.MergeConfigMap(raw); err != nil {
		return nil, errors.Wrapf(err, "merging board file %s", path)
	}
	if err := v.Unmarshal(board); err != nil {
		return nil, errors.Wrapf(err, "decoding board file %s", path)
	}
	return board, nil
}

// PinMasks expands the board's input-pin index lists into the fixed-size
// boolean arrays tpu.New expects. Out-of-range indices are ignored rather
// than rejected, since a board file is operator input, not ISA input.
func (b *Board) PinMasks() ([tpu.NumAnalogPins]bool, [tpu.NumDigitalPins]bool) {
	var analog [tpu.NumAnalogPins]bool
	for _, i := range b.AnalogInputs {
		if i >= 0 && i < tpu.NumAnalogPins {
			analog[i] = true
		}
	}

	var digital [tpu.NumDigitalPins]bool
	for _, i := range b.DigitalInputs {
		if i >= 0 && i < tpu.NumDigitalPins {
			digital[i] = true
		}
	}

	return analog, digital
}

// NewTPU builds a TPU from the board's configuration and a program.
func (b *Board) NewTPU(program []tpu.Instruction) *tpu.TPU {
	analog, digital := b.PinMasks()
	return tpu.New(b.NetworkAddress, analog, digital, program)
}
