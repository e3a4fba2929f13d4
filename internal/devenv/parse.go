// SPDX-License-Identifier: MIT

package devenv

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the tool-recognized descriptor location in the repository root.
const DefaultPath = "devenv.yaml"

// Parse decodes a descriptor payload using strict field checking.
// Unknown keys are rejected so typos fail at parse time rather than being
// silently ignored by the environment manager.
func Parse(data []byte) (Descriptor, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Descriptor{}, ErrEmptyDescriptor
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var d Descriptor
	if err := dec.Decode(&d); err != nil {
		return Descriptor{}, classifyParseError(err)
	}
	return d, nil
}

// Load reads and parses a descriptor file from disk.
func Load(path string) (Descriptor, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-supplied
	if err != nil {
		return Descriptor{}, fmt.Errorf("read descriptor %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return Descriptor{}, fmt.Errorf("parse descriptor %s: %w", path, err)
	}
	return d, nil
}

// classifyParseError maps strict-decoding failures onto sentinel errors so
// callers can branch with errors.Is.
func classifyParseError(err error) error {
	if strings.Contains(err.Error(), "not found in type") {
		return fmt.Errorf("%w: %v", ErrUnknownField, err)
	}
	return fmt.Errorf("decode descriptor: %w", err)
}
