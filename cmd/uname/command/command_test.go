// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package command

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	complog "github.com/DataDog/uname/comp/core/log"
	"github.com/DataDog/uname/comp/core/platforminfo"
	"github.com/DataDog/uname/pkg/platform"
	"github.com/DataDog/uname/pkg/uname"
	"github.com/DataDog/uname/pkg/util/fxutil"
)

func TestNoFlags(t *testing.T) {
	fxutil.TestOneShotCommand(t, MakeCommand(), []string{}, run,
		func(cliParams *cliParams) {
			require.Equal(t, uname.Options{}, cliParams.options())
		})
}

func TestAllFlag(t *testing.T) {
	fxutil.TestOneShotCommand(t, MakeCommand(), []string{"--all"}, run,
		func(cliParams *cliParams) {
			require.True(t, cliParams.all)
			require.False(t, cliParams.processor)
			require.False(t, cliParams.hardwarePlatform)
		})
}

func TestCombinedShortFlags(t *testing.T) {
	fxutil.TestOneShotCommand(t, MakeCommand(), []string{"-snrvmo", "-p", "-i"}, run,
		func(cliParams *cliParams) {
			require.Equal(t, uname.Options{
				KernelName:       true,
				Nodename:         true,
				KernelRelease:    true,
				KernelVersion:    true,
				Machine:          true,
				OperatingSystem:  true,
				Processor:        true,
				HardwarePlatform: true,
			}, cliParams.options())
		})
}

func TestObsoleteLongSpellings(t *testing.T) {
	fxutil.TestOneShotCommand(t, MakeCommand(), []string{"--sysname", "--release"}, run,
		func(cliParams *cliParams) {
			require.True(t, cliParams.kernelName)
			require.True(t, cliParams.kernelRelease)
			require.False(t, cliParams.all)
		})
}

func TestHelpHidesNonPortableFlags(t *testing.T) {
	cmd := MakeCommand()
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())

	help := out.String()
	assert.Contains(t, help, "--kernel-name")
	assert.Contains(t, help, "--operating-system")
	assert.NotContains(t, help, "--processor")
	assert.NotContains(t, help, "--hardware-platform")
}

func TestExtraOperandRejected(t *testing.T) {
	cmd := MakeCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"badarg"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `extra operand "badarg"`)
	assert.Contains(t, err.Error(), "Try 'uname --help' for more information.")
}

func TestUnknownFlagRejected(t *testing.T) {
	cmd := MakeCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--bogus"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
	assert.Contains(t, err.Error(), "Try 'uname --help' for more information.")
}

func TestVersionFlag(t *testing.T) {
	cmd := MakeCommand()
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "uname version")
}

func TestRunPrintsSelectedFields(t *testing.T) {
	sys := platforminfo.NewMock(platforminfo.MockParams{
		Identity: &platform.Identity{
			Sysname:  "Linux",
			Nodename: "workbench",
			Release:  "6.5.0-14-generic",
			Version:  "#14-Ubuntu SMP",
			Machine:  "x86_64",
			OSName:   "GNU/Linux",
		},
	})

	out := captureStdout(t, func() {
		err := run(&cliParams{all: true}, complog.NewMock(t), sys)
		require.NoError(t, err)
	})
	require.Equal(t, "Linux workbench 6.5.0-14-generic #14-Ubuntu SMP x86_64 GNU/Linux\n", out)
}

func TestRunProviderFailure(t *testing.T) {
	sys := platforminfo.NewMock(platforminfo.MockParams{
		Err: errors.New("uname syscall: operation not permitted"),
	})

	out := captureStdout(t, func() {
		err := run(&cliParams{}, complog.NewMock(t), sys)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to obtain platform information")
		assert.Contains(t, err.Error(), "operation not permitted")
	})
	require.Empty(t, out)
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything fn wrote to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}
