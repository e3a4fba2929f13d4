// SPDX-License-Identifier: MIT

// Package devenv models the declarative development-environment descriptor
// (devenv.yaml): provisioned packages, language toolchains and git lifecycle
// hooks. The descriptor is pure data; provisioning and hook execution belong
// to the external environment manager and hook runner.
package devenv

// Lifecycle stages recognized by the hook runner.
const (
	StagePreCommit = "pre-commit"
	StagePrePush   = "pre-push"
	StageCommitMsg = "commit-msg"
)

// KnownStages lists the lifecycle stages a hook may bind to.
var KnownStages = []string{StagePreCommit, StagePrePush, StageCommitMsg}

// Descriptor is the root of the environment descriptor file.
type Descriptor struct {
	Dotenv    Dotenv              `yaml:"dotenv,omitempty"`
	Packages  []string            `yaml:"packages,omitempty"`
	Languages map[string]Language `yaml:"languages,omitempty"`
	GitHooks  GitHooks            `yaml:"git-hooks,omitempty"`
}

// Dotenv controls automatic loading of local .env variables.
type Dotenv struct {
	Enable bool `yaml:"enable"`
}

// Language declares a toolchain to activate at a release channel.
// Activation is all-or-nothing: an unavailable channel fails activation,
// it never falls back to another channel.
type Language struct {
	Enable  bool   `yaml:"enable"`
	Channel string `yaml:"channel,omitempty"`
}

// GitHooks wraps the named hook set.
type GitHooks struct {
	Hooks map[string]Hook `yaml:"hooks,omitempty"`
}

// Hook is a named check bound to git lifecycle stages.
//
// Entry is the invocation command; when absent the hook runner uses its
// builtin command keyed by the hook name. PassFilenames controls whether
// changed-file paths are appended as arguments (runner default: true).
// An empty Stages list means the runner's default stage.
type Hook struct {
	Enable        bool     `yaml:"enable"`
	Entry         string   `yaml:"entry,omitempty"`
	PassFilenames *bool    `yaml:"pass_filenames,omitempty"`
	Stages        []string `yaml:"stages,omitempty"`
}
