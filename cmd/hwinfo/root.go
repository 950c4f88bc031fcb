package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-hwintrinsic/hwi"
	"github.com/ajroetker/go-hwintrinsic/hwi/target"
)

type rootOptions struct {
	configFile string
	arch       string
	format     string
	logLevel   string
	disabled   []string
}

// app is the state the subcommands share once the global flags are parsed.
type app struct {
	cfg     *target.Config
	target  hwi.Target
	support *target.Support
	log     *logrus.Logger
}

func newRootCommand() *cobra.Command {
	var opts rootOptions
	a := &app{}
	root := &cobra.Command{
		Use:          "hwinfo",
		Short:        "Inspect hardware intrinsic tables",
		Long:         "Inspect the xarch and arm64 hardware intrinsic tables, resolve references and check the host CPU.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkEnvironmentVariables(cmd); err != nil {
				return err
			}
			return a.setup(cmd, &opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	pf.StringVar(&opts.arch, "arch", "", "architecture family: xarch, arm64 or native")
	pf.StringVarP(&opts.format, "format", "f", "", "output format: table, json or yaml")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringSliceVar(&opts.disabled, "disable", nil, "ISAs the compilation may not use, e.g. AVX2,FMA")

	root.AddCommand(
		newListCommand(a),
		newShowCommand(a),
		newResolveCommand(a),
		newVerifyCommand(a),
		newHostCommand(a),
		newCmpCommand(a),
	)
	return root
}

// setup merges the flags over the configuration and selects the target.
func (a *app) setup(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := target.LoadConfig(opts.configFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("arch") {
		cfg.Arch = opts.arch
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("disable") {
		cfg.DisabledISAs = append(cfg.DisabledISAs, opts.disabled...)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.log = logrus.New()
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetLevel(level)

	if a.target, err = cfg.Target(); err != nil {
		return err
	}
	if a.support, err = cfg.Support(a.target); err != nil {
		return err
	}
	a.cfg = cfg

	a.log.WithFields(logrus.Fields{
		"arch":        a.target.Arch(),
		"intrinsics":  a.target.Registry().Len(),
		"fingerprint": fmt.Sprintf("%016x", a.target.Registry().Fingerprint()),
		"isas":        len(a.support.ISAs()),
	}).Debug("Selected target.")
	return nil
}
