package errors

import (
	"fmt"
	"io"
	"os"
)

var (
	// disableWarning is a global flag that controls whether warnings are disabled.
	disableWarning bool

	// warningPrefix is the prefix used for warning messages.
	warningPrefix = "warning"

	// warningOutput is the io.Writer where warning messages are sent, os.Stderr by default.
	warningOutput io.Writer = os.Stderr
)

// DisableWarning disables the global warning mechanism.
// After calling this function, no warnings will be output.
func DisableWarning() {
	disableWarning = true
}

// SetWarningOutput sets the output destination for warning messages.
func SetWarningOutput(output io.Writer) {
	warningOutput = output
}

// SetWarningPrefix sets the prefix prepended to all warning messages.
func SetWarningPrefix(prefix string) {
	warningPrefix = prefix
}

// SetWarningPrefixf is a formatted version of SetWarningPrefix.
func SetWarningPrefixf(s string, args ...any) {
	warningPrefix = fmt.Sprintf(s, args...)
}

func warn(msg string) {
	if warningPrefix != "" {
		_, _ = io.WriteString(warningOutput, warningPrefix)
		_, _ = io.WriteString(warningOutput, ": ")
	}
	_, _ = io.WriteString(warningOutput, msg)
	_, _ = warningOutput.Write([]byte{'\n'})
}

// Warning reports err and its causes on a single line without exiting,
// e.g. "warning: check a.toml: decode TOML: ...". A nil err is ignored.
func Warning(err error) {
	if disableWarning || err == nil {
		return
	}
	warn(Chain(err).String())
}

// Warningf writes a formatted warning message.
func Warningf(format string, a ...any) {
	if disableWarning {
		return
	}
	warn(fmt.Sprintf(format, a...))
}
