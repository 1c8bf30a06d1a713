// Package config loads ls8 run settings from a TOML file.
//
//	verbose = true
//	output = "run.log"
//
//	[equates]
//	COUNT = "5"
package config

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	ErrConfigUnknownKey = errors.New(f("unknown configuration key"))
)

// Config holds the settings that may also be given on the command line.
type Config struct {
	Verbose bool              `toml:"verbose"` // Trace every instruction.
	Output  string            `toml:"output"`  // PRN output file, "-" for stdout.
	Equates map[string]string `toml:"equates"` // Assembler predefines.
}

// ErrConfig indicates which file failed to load.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// Default returns the settings used when no file is given.
func Default() (cfg *Config) {
	cfg = &Config{
		Output:  "-",
		Equates: map[string]string{},
	}

	return
}

// Load reads path on top of the defaults. Unknown keys are an error.
func Load(path string) (cfg *Config, err error) {
	defer func() {
		if err != nil {
			err = &ErrConfig{Path: path, Err: err}
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	cfg = Default()
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		cfg = nil
		return
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		cfg = nil
		err = errors.Join(ErrConfigUnknownKey, errors.New(undecoded[0].String()))
		return
	}

	return
}
