// SPDX-License-Identifier: MIT

package devenv

import "sort"

// ResolvedHook is a hook as the hook runner would register it: defaults
// filled in, disabled hooks already filtered out.
type ResolvedHook struct {
	Name          string
	Entry         string
	PassFilenames bool
	Stages        []string
}

// Resolved is the provisioning view of a descriptor: what the environment
// manager installs and what the hook runner registers. Resolution is pure;
// resolving the same descriptor twice yields identical results.
type Resolved struct {
	DotenvEnabled bool
	// Packages is deduplicated, preserving first-occurrence order.
	// Duplicate references in the descriptor are idempotent.
	Packages []string
	// Toolchains maps enabled language names to their channel.
	Toolchains map[string]string
	// Hooks maps lifecycle stage to the hooks registered for it,
	// sorted by name for deterministic iteration.
	Hooks map[string][]ResolvedHook
}

// Resolve computes the provisioning plan for a descriptor. It assumes the
// descriptor has passed Validate.
func Resolve(d Descriptor) Resolved {
	r := Resolved{
		DotenvEnabled: d.Dotenv.Enable,
		Packages:      dedupe(d.Packages),
		Toolchains:    make(map[string]string),
		Hooks:         make(map[string][]ResolvedHook),
	}

	for name, lang := range d.Languages {
		if lang.Enable {
			r.Toolchains[name] = lang.Channel
		}
	}

	for name, hook := range d.GitHooks.Hooks {
		// A disabled hook never executes, whatever its other fields say.
		if !hook.Enable {
			continue
		}

		resolved := ResolvedHook{
			Name:          name,
			Entry:         hook.Entry,
			PassFilenames: true,
			Stages:        hook.Stages,
		}
		if resolved.Entry == "" {
			// Runner convention: builtin hooks are keyed by name.
			resolved.Entry = name
		}
		if hook.PassFilenames != nil {
			resolved.PassFilenames = *hook.PassFilenames
		}
		if len(resolved.Stages) == 0 {
			resolved.Stages = []string{StagePreCommit}
		}

		for _, stage := range resolved.Stages {
			r.Hooks[stage] = append(r.Hooks[stage], resolved)
		}
	}

	for stage := range r.Hooks {
		hooks := r.Hooks[stage]
		sort.Slice(hooks, func(i, j int) bool { return hooks[i].Name < hooks[j].Name })
	}

	return r
}

// RegisteredAt returns the hooks registered for a lifecycle stage.
func (r Resolved) RegisteredAt(stage string) []ResolvedHook {
	return r.Hooks[stage]
}

// HookNames returns the names of all registered hooks, sorted.
func (r Resolved) HookNames() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, hooks := range r.Hooks {
		for _, h := range hooks {
			if _, ok := seen[h.Name]; !ok {
				seen[h.Name] = struct{}{}
				names = append(names, h.Name)
			}
		}
	}
	sort.Strings(names)
	return names
}

func dedupe(refs []string) []string {
	seen := make(map[string]struct{}, len(refs))
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		out = append(out, ref)
	}
	return out
}
