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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// graphDoc is the upgrade graph as served by an update service: nodes in
// service order and edges as [from, to] pairs of indices into nodes.
type graphDoc struct {
	Nodes []node   `json:"nodes"`
	Edges [][2]int `json:"edges"`
}

type node struct {
	Version  string            `json:"version"`
	Metadata map[string]string `json:"metadata"`
}

func decodeGraph(r io.Reader) (*graphDoc, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read graph")
	}
	var doc graphDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode graph")
	}
	return &doc, nil
}

// validate guards the index addressing the DOT output relies on: node
// versions must be unique and non-empty, edge endpoints in range.
func (g *graphDoc) validate() error {
	seen := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		if n.Version == "" {
			return errors.Errorf("node %d: empty version", i)
		}
		if prev, ok := seen[n.Version]; ok {
			return errors.Errorf("node %d: version %q already used by node %d", i, n.Version, prev)
		}
		seen[n.Version] = i
	}
	for i, e := range g.Edges {
		for _, end := range e {
			if end < 0 || end >= len(g.Nodes) {
				return errors.Errorf("edge %d: index %d out of range", i, end)
			}
		}
	}
	return nil
}

// isHotfix reports whether a version names a hotfix or nightly build.
func isHotfix(version string) bool {
	return strings.Contains(version, "hotfix") || strings.Contains(version, "nightly")
}

// renderDOT writes the graph as a DOT digraph. Unless includeHotfixes is
// set, hotfix and nightly nodes are dropped along with every edge that
// touches one. The emitted indices address the retained node order, with
// edges grouped by source node and each source's targets kept in input
// order.
func renderDOT(w io.Writer, doc *graphDoc, includeHotfixes bool) error {
	if err := doc.validate(); err != nil {
		return err
	}

	outgoing := make([][]int, len(doc.Nodes))
	for _, e := range doc.Edges {
		outgoing[e[0]] = append(outgoing[e[0]], e[1])
	}

	renumber := make([]int, len(doc.Nodes))
	retained := make([]int, 0, len(doc.Nodes))
	for i, n := range doc.Nodes {
		renumber[i] = -1
		if includeHotfixes || !isHotfix(n.Version) {
			renumber[i] = len(retained)
			retained = append(retained, i)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph Upgrades {\n")
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("  rankdir=BT;\n")
	for i, orig := range retained {
		n := doc.Nodes[orig]
		fmt.Fprintf(&buf, "  %d [ label=%s href=%s ];\n", i, dotQuote(n.Version), dotQuote(n.Metadata["url"]))
	}
	for i, orig := range retained {
		for _, target := range outgoing[orig] {
			if renumber[target] < 0 {
				continue
			}
			fmt.Fprintf(&buf, "  %d->%d;\n", i, renumber[target])
		}
	}
	buf.WriteString("}\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "write graph")
	}
	return nil
}

// dotQuote renders s as a double-quoted DOT string.
func dotQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
