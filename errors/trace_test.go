package errors

import (
	"bytes"
	"fmt"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	//     /file1/file2/...func(...)
	regxMatchFunctionInfo = regexp.MustCompile(`(?m)^    \S+\(\.\.\.\)$`)
	//          file1/file2/x.go:111
	regxMatchFileAndLine = regexp.MustCompile(`(?m)^         \S+\.go:\d+$`)
)

func TestStackTrace(t *testing.T) {
	buf := bytes.Buffer{}
	StackTrace(&buf)
	tracebackString := buf.String()
	require.True(t, strings.HasPrefix(tracebackString, "Traceback:\n"))
	require.True(t, regxMatchFunctionInfo.MatchString(tracebackString))
	require.True(t, regxMatchFileAndLine.MatchString(tracebackString))
	require.Contains(t, tracebackString, "TestStackTrace")
}

func TestRangeFrames(t *testing.T) {
	assertFile := regexp.MustCompile(`(?m)file: \S+\n`)
	assertFunc := regexp.MustCompile(`(?m)func: \S+\n`)
	assertLine := regexp.MustCompile(`(?m)line: \d+\n`)

	tracer := GetTrace(2)
	buf := bytes.Buffer{}
	var first string
	tracer.RangeFrames(func(frame runtime.Frame) {
		if first == "" {
			first = frame.Function
		}
		_, _ = fmt.Fprintf(&buf, "file: %s\n", frame.File)
		_, _ = fmt.Fprintf(&buf, "func: %s\n", frame.Function)
		_, _ = fmt.Fprintf(&buf, "line: %d\n", frame.Line)
	})

	outString := buf.String()
	require.True(t, assertFile.MatchString(outString))
	require.True(t, assertFunc.MatchString(outString))
	require.True(t, assertLine.MatchString(outString))
	require.True(t, strings.HasSuffix(first, "TestRangeFrames"), first)
}

func TestRangeFramesDefaultHandle(t *testing.T) {
	buf := &bytes.Buffer{}
	defer SetErrOutput(errOutput)
	SetErrOutput(buf)
	GetTrace(2).RangeFrames(nil)
	require.True(t, regxMatchFunctionInfo.MatchString(buf.String()))
}

func TestGetTraceback(t *testing.T) {
	traceback := GetTraceback()
	require.Contains(t, traceback, "TestGetTraceback")
	require.Equal(t, traceback[:len("Traceback:\n")], "Traceback:\n")
}

func TestConstructorTrace(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"New", New("x")},
		{"Newf", Newf("x %d", 1)},
		{"Wrap", Wrap(New("x"), "y")},
		{"From", From(fmt.Errorf("x"))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var e *Error
			require.True(t, As(c.err, &e))
			require.Contains(t, e.Trace().String(), "TestConstructorTrace")
		})
	}
}
