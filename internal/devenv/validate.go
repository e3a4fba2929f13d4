// SPDX-License-Identifier: MIT

package devenv

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/motif-audio/motif/internal/validate"
)

// channelPattern accepts named release tracks or explicit versions ("1.24.4").
var channelPattern = regexp.MustCompile(`^(stable|beta|nightly|\d+\.\d+(\.\d+)?)$`)

// Validate performs structural validation of a descriptor, accumulating all
// errors rather than stopping at the first. It enforces the invariants the
// external tools assume: unique hook names, known lifecycle stages and
// resolvable toolchain channels.
func Validate(d Descriptor) error {
	v := validate.New()

	for i, pkg := range d.Packages {
		if strings.TrimSpace(pkg) == "" {
			v.AddError(fmt.Sprintf("packages[%d]", i), "package reference cannot be empty", pkg)
		}
	}

	for name, lang := range d.Languages {
		field := "languages." + name
		if strings.TrimSpace(name) == "" {
			v.AddError("languages", "language name cannot be empty", name)
			continue
		}
		if !lang.Enable {
			continue
		}
		channel := strings.TrimSpace(lang.Channel)
		if channel == "" {
			v.AddError(field+".channel", "enabled toolchain requires a channel", lang.Channel)
			continue
		}
		if !channelPattern.MatchString(channel) {
			v.AddError(field+".channel",
				"channel must be a release track (stable, beta, nightly) or a version",
				lang.Channel)
		}
	}

	// The YAML codec already rejects literally duplicated keys; re-check
	// normalized names so "Lint" and "lint" cannot coexist either.
	seen := make(map[string]string, len(d.GitHooks.Hooks))
	for name, hook := range d.GitHooks.Hooks {
		field := "git-hooks.hooks." + name
		if strings.TrimSpace(name) == "" {
			v.AddError("git-hooks.hooks", "hook name cannot be empty", name)
			continue
		}
		normalized := strings.ToLower(strings.TrimSpace(name))
		if prev, ok := seen[normalized]; ok {
			v.AddError(field, fmt.Sprintf("duplicate hook name (conflicts with %q)", prev), name)
		} else {
			seen[normalized] = name
		}

		if hook.Entry != "" && strings.TrimSpace(hook.Entry) == "" {
			v.AddError(field+".entry", "entry cannot be whitespace", hook.Entry)
		}
		for _, stage := range hook.Stages {
			v.OneOf(field+".stages", stage, KnownStages)
		}
	}

	return v.Err()
}
