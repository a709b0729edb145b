/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/jplu/subtagreg/tables"
)

const defaultRegistryURL = "https://www.iana.org/assignments/language-subtag-registry/language-subtag-registry"

type compileFlags struct {
	url     string
	file    string
	output  string
	pkg     string
	timeout time.Duration
	verbose bool
	out     io.Writer
}

// newRootCommand returns the subtagreg command. The generated artifact
// goes to the --output path, or to out when --output is "-".
func newRootCommand(out io.Writer) *cobra.Command {
	flags := &compileFlags{out: out}
	cmd := &cobra.Command{
		Use:   "subtagreg",
		Short: "Compile the IANA language subtag registry into Go lookup tables",
		Long: `subtagreg reads a snapshot of the IANA language subtag registry,
compiles its records into sorted lookup tables, and renders them as a
standalone Go source file for embedding in a language-tag library.

The snapshot comes from the IANA server by default; pass --file to
compile a local copy instead.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd.Context(), flags)
		},
	}
	addCompileFlags(cmd.Flags(), flags)
	return cmd
}

func addCompileFlags(fs *pflag.FlagSet, flags *compileFlags) {
	fs.StringVar(&flags.url, "url", defaultRegistryURL, "URL of the registry to fetch")
	fs.StringVarP(&flags.file, "file", "f", "", "path of a local registry snapshot, overrides --url")
	fs.StringVarP(&flags.output, "output", "o", "iana_registry.go", `path of the generated file, "-" for standard output`)
	fs.StringVar(&flags.pkg, "package", "iana", "package name declared in the generated file")
	fs.DurationVar(&flags.timeout, "timeout", 30*time.Second, "time limit for fetching the registry")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "also report skipped records and fetch progress")
}

func runCompile(ctx context.Context, flags *compileFlags) error {
	logger, err := newLogger(flags.verbose)
	if err != nil {
		return errors.Wrap(err, "build logger")
	}
	defer logger.Sync() //nolint:errcheck // Flushing the logger on the way out is best effort.

	data, err := loadRegistry(ctx, flags, logger)
	if err != nil {
		return err
	}
	set, err := tables.Compile(bytes.NewReader(data), tables.Options{Logger: logger})
	if err != nil {
		return errors.Wrap(err, "compile registry")
	}
	logger.Info("compiled registry",
		zap.String("file_date", set.FileDate),
		zap.Int("languages", len(set.Languages)),
		zap.Int("scripts", len(set.Scripts)),
		zap.Int("regions", len(set.Regions)))
	return writeArtifact(flags, set)
}

// newLogger builds the command's logger. Routine progress is visible
// only with --verbose; anomalies always are.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

// writeArtifact renders the set to the configured destination. The
// artifact is buffered first so a failed run never truncates an
// existing file.
func writeArtifact(flags *compileFlags, set *tables.Set) error {
	if flags.output == "-" {
		return set.WriteGo(flags.out, flags.pkg)
	}
	var buf bytes.Buffer
	if err := set.WriteGo(&buf, flags.pkg); err != nil {
		return err
	}
	if err := os.WriteFile(flags.output, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", flags.output)
	}
	return nil
}
