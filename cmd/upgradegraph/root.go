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
	"io"

	"github.com/spf13/cobra"
)

type renderFlags struct {
	includeHotfixes bool

	in  io.Reader
	out io.Writer
}

// newRootCommand returns the upgradegraph command, reading JSON from in
// and writing DOT to out.
func newRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	flags := &renderFlags{in: in, out: out}
	cmd := &cobra.Command{
		Use:   "upgradegraph",
		Short: "Render an upgrade-graph JSON document as DOT",
		Long: `upgradegraph reads an upgrade graph as JSON on standard input and
writes the corresponding DOT digraph to standard output, ready for
Graphviz:

    curl -sH 'Accept:application/json' "$GRAPH_URL" | upgradegraph | dot -Tsvg > graph.svg

Hotfix and nightly versions are omitted unless --include-hotfixes is
given.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(flags)
		},
	}
	cmd.Flags().BoolVar(&flags.includeHotfixes, "include-hotfixes", false, "also render hotfix and nightly versions")
	return cmd
}

func runRender(flags *renderFlags) error {
	doc, err := decodeGraph(flags.in)
	if err != nil {
		return err
	}
	return renderDOT(flags.out, doc, flags.includeHotfixes)
}
