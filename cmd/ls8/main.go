// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/ls8/config"
	"github.com/ezrec/ls8/emulator"
)

func main() {
	var cfgfile string
	var save bool
	var output string
	var verbose bool

	flag.StringVar(&cfgfile, "config", "", ".toml settings file to use")
	flag.BoolVar(&save, "s", false, "Write the assembled program listing, do not execute")
	flag.StringVar(&output, "o", "", "PRN output (default stdout)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode, trace every instruction")

	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatalf("%v: %v", os.Args[0], emulator.ErrMissingProgram)
	}
	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	program := flag.Arg(0)

	cfg := config.Default()
	if len(cfgfile) != 0 {
		var err error
		cfg, err = config.Load(cfgfile)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	// Flags override the settings file.
	if verbose {
		cfg.Verbose = true
	}
	if len(output) != 0 {
		cfg.Output = output
	}

	emu := emulator.NewEmulator()
	emu.Verbose = cfg.Verbose
	emu.Equates = cfg.Equates

	if cfg.Output != "-" {
		ouf, err := os.Create(cfg.Output)
		if err != nil {
			log.Fatalf("%v: %v", cfg.Output, err)
		}
		defer ouf.Close()
		emu.Console.Output = ouf
	}

	err := emu.LoadFile(program)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	if save {
		err = emu.Listing(emu.Console.Output)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
		return
	}

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	err = emu.Run()
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}
}
