// Copyright 2025 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package roup

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/ouankou/roup/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corpusCase is one directive sample with its expected renderings. The
// corpus lives in TOML files under testdata/corpus so new samples can be
// added without touching test code.
type corpusCase struct {
	Input    string      `toml:"input"`
	Language ir.Language `toml:"language"`
	Full     string      `toml:"full"`
	Plain    string      `toml:"plain"`
	Template string      `toml:"template"`
}

type corpusFile struct {
	Cases []corpusCase `toml:"case"`
}

func TestCorpusRoundTrips(t *testing.T) {
	paths, err := doublestar.FilepathGlob("testdata/corpus/**/*.toml")
	require.NoError(t, err)
	require.NotEmpty(t, paths, "no corpus files found")

	for _, path := range paths {
		var file corpusFile
		_, err := toml.DecodeFile(path, &file)
		require.NoError(t, err, "corpus file: %s", path)
		require.NotEmpty(t, file.Cases, "corpus file: %s", path)

		for _, sample := range file.Cases {
			directive, err := Parse(sample.Input, WithLanguage(sample.Language))
			require.NoError(t, err, "%s: input %q", path, sample.Input)

			if sample.Full != "" {
				assert.Equal(t, sample.Full, directive.String(), "%s: input %q", path, sample.Input)
			}
			if sample.Plain != "" {
				assert.Equal(t, sample.Plain, directive.PlainString(), "%s: input %q", path, sample.Input)
			}
			if sample.Template != "" {
				assert.Equal(t, sample.Template, directive.TemplateString(), "%s: input %q", path, sample.Input)
			}

			// every corpus sample must be render-parse stable
			reparsed, err := Parse(directive.String(), WithLanguage(sample.Language))
			require.NoError(t, err, "%s: rendered %q", path, directive.String())
			assert.Equal(t, directive.String(), reparsed.String(), "%s: input %q", path, sample.Input)
		}
	}
}
