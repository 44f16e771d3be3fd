package main

import (
	"flag"
	"fmt"
	"os"

	"rickroll/internal/config"
	"rickroll/internal/logger"
	"rickroll/internal/runner"
	"rickroll/pkg/color"

	"github.com/charmbracelet/log"
)

// Main entry point for the Rickroll interpreter.
func main() {
	options := runner.Runner{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Debug, "d", false, "Debug mode, dump bytecode and log each stage")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.StringVar(&options.ConfigFile, "config", "", "Config file (default "+config.DefaultFile+" when present)")

	flag.Parse()
	args := flag.Args()

	if options.Help {
		fmt.Printf("Usage: %s [options] <file>\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	cfg, err := config.Load(options.ConfigFile)
	if err != nil {
		logger.Init(options.Debug, options.NoColor)
		log.Fatal("Invalid config", "error", err)
	}

	// flags only ever switch these on
	options.Debug = options.Debug || cfg.Debug
	options.NoColor = options.NoColor || cfg.NoColor
	options.Config = cfg

	logger.Init(options.Debug, options.NoColor)
	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) == 0 {
		log.Fatal("No input file provided", "help", fmt.Sprintf("%s -h", os.Args[0]))
	}

	options.SourceFile = args[0]

	if err := options.Run(); err != nil {
		fmt.Fprintln(os.Stderr, color.Error(err.Error()))
		os.Exit(1)
	}
}
