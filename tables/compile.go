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

package tables

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/jplu/subtagreg/registry"
)

// Options configures a Compile run.
type Options struct {
	// Logger reports skipped records and registry anomalies. Nil
	// silences them.
	Logger *zap.Logger
}

// Compile reads one registry snapshot from r and builds its complete
// table set. The stream flows through a single forward pass: each raw
// record is classified, projected onto the tables it contributes to,
// and discarded. Records the classifier cannot place are logged and
// skipped; grammar violations, ambiguous fields, and oversized subtags
// abort the run with no partial result.
func Compile(r io.Reader, opts Options) (*Set, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	set := &Set{}
	tok := registry.NewTokenizer(r)
	for tok.Next() {
		raw := tok.Record()
		rec, skip, err := registry.Classify(raw)
		if err != nil {
			return nil, fmt.Errorf("record [%s]: %w", raw, err)
		}
		switch skip {
		case registry.SkipNone:
		case registry.SkipPrivateUse:
			logger.Debug("skipping private use range", zap.Stringer("record", raw))
			continue
		default:
			logger.Warn("unexpected record", zap.Stringer("record", raw))
			continue
		}
		if err := set.Add(rec); err != nil {
			return nil, err
		}
	}
	if err := tok.Err(); err != nil {
		return nil, err
	}
	if err := set.Finish(); err != nil {
		return nil, err
	}
	if set.FileDate == "" {
		logger.Warn("registry carries no File-Date record")
	}
	return set, nil
}
