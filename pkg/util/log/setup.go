// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package log

import (
	"fmt"
	"io"
	"strings"

	"github.com/cihub/seelog"
)

const logDateFormat = "2006-01-02 15:04:05 MST" // see time.Format for format syntax

// BuildLogger returns a seelog logger writing to w, accepting records at
// minLevel and above, with loggerName embedded in every line:
//
//	2006-01-02 15:04:05 UTC | UNAME | DEBUG | (pkg/platform/platform_linux.go:42) | message
func BuildLogger(w io.Writer, loggerName string, minLevel string) (seelog.LoggerInterface, error) {
	lvl, ok := seelog.LogLevelFromString(strings.ToLower(minLevel))
	if !ok {
		return nil, fmt.Errorf("unknown log level: %q", minLevel)
	}
	if lvl == seelog.Off {
		// seelog constraints cannot express "off" for writer loggers
		return seelog.Disabled, nil
	}
	format := fmt.Sprintf("%%Date(%s) | %s | %%LEVEL | (%%RelFile:%%Line) | %%Msg%%n", logDateFormat, loggerName)
	return seelog.LoggerFromWriterWithMinLevelAndFormat(w, lvl, format)
}
