// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package command implements the top-level `uname` command.
package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/fx"

	"github.com/DataDog/uname/comp/core"
	"github.com/DataDog/uname/comp/core/config"
	complog "github.com/DataDog/uname/comp/core/log"
	"github.com/DataDog/uname/comp/core/platforminfo"
	"github.com/DataDog/uname/pkg/uname"
	"github.com/DataDog/uname/pkg/util/fxutil"
	"github.com/DataDog/uname/pkg/version"
)

const (
	// LoggerName is the name of the logger instance for this command.
	LoggerName = "UNAME"

	// envPrefix is the prefix of the environment variables the tool reads.
	envPrefix = "UNAME"
)

// cliParams are the command-line arguments for this command.
type cliParams struct {
	all              bool
	kernelName       bool
	nodename         bool
	kernelRelease    bool
	kernelVersion    bool
	machine          bool
	operatingSystem  bool
	processor        bool
	hardwarePlatform bool
}

// options maps the parsed flags onto the formatter's selection.
func (p *cliParams) options() uname.Options {
	return uname.Options{
		All:              p.all,
		KernelName:       p.kernelName,
		Nodename:         p.nodename,
		KernelRelease:    p.kernelRelease,
		KernelVersion:    p.kernelVersion,
		Machine:          p.machine,
		OperatingSystem:  p.operatingSystem,
		Processor:        p.processor,
		HardwarePlatform: p.hardwarePlatform,
	}
}

// MakeCommand makes the top-level cobra command for this tool.
func MakeCommand() *cobra.Command {
	cliParams := &cliParams{}

	cmd := &cobra.Command{
		Use:          "uname",
		Short:        "Print certain system information.",
		Long:         "Print certain system information. With no OPTION, same as -s.",
		Version:      version.Full(),
		SilenceUsage: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("extra operand %q\nTry '%s --help' for more information.", args[0], cmd.CommandPath())
			}
			return nil
		},
		RunE: func(*cobra.Command, []string) error {
			return fxutil.OneShot(run,
				fx.Supply(cliParams),
				fx.Supply(core.BundleParams{
					ConfigParams: config.NewParams(envPrefix),
					LogParams:    complog.ForOneShot(LoggerName, "off", true),
				}),
				core.Bundle(),
			)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&cliParams.all, "all", "a", false,
		"Behave as though all of the options -mnrsvo were specified.")
	flags.BoolVarP(&cliParams.kernelName, "kernel-name", "s", false,
		"print the kernel name.")
	flags.BoolVarP(&cliParams.nodename, "nodename", "n", false,
		"print the nodename (the nodename may be a name that the system is known by to a communications network).")
	flags.BoolVarP(&cliParams.kernelRelease, "kernel-release", "r", false,
		"print the operating system release.")
	flags.BoolVarP(&cliParams.kernelVersion, "kernel-version", "v", false,
		"print the operating system version.")
	flags.BoolVarP(&cliParams.machine, "machine", "m", false,
		"print the machine hardware name.")
	flags.BoolVarP(&cliParams.operatingSystem, "operating-system", "o", false,
		"print the operating system name.")
	flags.BoolVarP(&cliParams.processor, "processor", "p", false,
		"print the processor type (non-portable)")
	flags.BoolVarP(&cliParams.hardwarePlatform, "hardware-platform", "i", false,
		"print the hardware platform (non-portable)")

	// long spellings kept from older releases of the tool
	flags.SetNormalizeFunc(normalizeObsoleteFlags)

	// accepted everywhere, shown nowhere
	_ = flags.MarkHidden("processor")
	_ = flags.MarkHidden("hardware-platform")

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\nTry '%s --help' for more information.", err, cmd.CommandPath())
	})

	return cmd
}

// normalizeObsoleteFlags maps the obsolescent long spellings onto the
// current flag names: --sysname means --kernel-name and --release means
// --kernel-release.
func normalizeObsoleteFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "sysname":
		name = "kernel-name"
	case "release":
		name = "kernel-release"
	}
	return pflag.NormalizedName(name)
}

// run collects the host identity and prints the selected fields on a
// single line. The log component is required so that logging is
// configured before any collection runs.
func run(cliParams *cliParams, _ complog.Component, sys platforminfo.Component) error {
	info, err := sys.Get(context.Background())
	if err != nil {
		return fmt.Errorf("failed to obtain platform information: %w", err)
	}

	fmt.Println(uname.Format(cliParams.options(), info))
	return nil
}
