// Command assetgen draws the Phantom app icon and disk image background and
// writes every platform container format into the project tree.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phantom-term/assetgen"
	"github.com/phantom-term/assetgen/internal/config"
	"github.com/phantom-term/assetgen/internal/logging"
	"github.com/phantom-term/assetgen/pipeline"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "assetgen: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("assetgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "assetgen.yaml", "YAML config file; ignored when absent")
		root       = fs.String("root", "", "project root the outputs are written under")
		mark       = fs.String("mark", "", "icon mark: letter, ghost or terminal")
		skipDMG    = fs.Bool("skip-dmg", false, "do not render the disk image background")
		skipIcon   = fs.Bool("skip-icon", false, "do not render the app icon")
		verbose    = fs.Bool("v", false, "log debug diagnostics")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *root != "" {
		cfg.Root = *root
	}
	if *mark != "" {
		cfg.Icon.Mark = *mark
	}
	if *skipDMG {
		cfg.DMG.Enabled = false
	}
	if *skipIcon {
		cfg.Icon.Enabled = false
	}
	if *verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cfg.LogConfig(), stderr)
	defer logger.Close() //nolint:errcheck
	assetgen.SetLogger(logger.Logger)
	defer assetgen.SetLogger(nil)
	logger.Debug("configuration loaded", "root", cfg.Root, "logging", cfg.LogConfig().String())

	opts, err := cfg.PipelineOptions()
	if err != nil {
		return err
	}
	_, err = pipeline.New(append(opts, pipeline.WithReporter(stdout))...).Run()
	return err
}
