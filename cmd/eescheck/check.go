package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stkali/ees/errors"
)

const (
	formatAuto = "auto"
	formatTOML = "toml"
	formatYAML = "yaml"
)

type checkOptions struct {
	format    string
	keepGoing bool
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Check that every FILE parses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.OutOrStdout(), args)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatAuto, "file format: auto, toml or yaml")
	cmd.Flags().BoolVarP(&opts.keepGoing, "keep-going", "k", false, "check every file, reporting each failure as a warning")
	return cmd
}

func (o *checkOptions) run(out io.Writer, files []string) error {
	switch o.format {
	case formatAuto, formatTOML, formatYAML:
	default:
		return errors.Bail("unsupported format %q, expected auto, toml or yaml", o.format)
	}
	failed := 0
	for _, file := range files {
		if err := checkFile(file, o.format); err != nil {
			err = errors.Wrap(err, "check %s", file)
			if !o.keepGoing {
				return err
			}
			errors.Warning(err)
			failed++
			continue
		}
		fmt.Fprintf(out, "%s: ok\n", file)
	}
	if failed > 0 {
		return errors.Newf("%d of %d files failed", failed, len(files))
	}
	return nil
}

// detectFormat picks the format of file from its extension.
func detectFormat(file string) (string, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return "", errors.Newf("cannot detect the format of %q, use --format", filepath.Base(file))
	}
}

func checkFile(file, format string) error {
	if format == formatAuto {
		var err error
		if format, err = detectFormat(file); err != nil {
			return err
		}
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrap(err, "read file")
	}
	if format == formatTOML {
		return checkTOML(data)
	}
	return checkYAML(data)
}

func checkTOML(data []byte) error {
	var doc map[string]any
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return errors.Wrap(err, "decode TOML")
	}
	return nil
}

// checkYAML decodes every document of a multi-document stream.
func checkYAML(data []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	for n := 0; ; n++ {
		var doc any
		if err := decoder.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return errors.Wrap(err, "decode YAML document %d", n)
		}
	}
}
