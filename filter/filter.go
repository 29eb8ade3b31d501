// Copyright (c) 2018 DDN. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package filter decides which mount table entries and selected values
// survive a run.
package filter

import (
	"regexp"

	"github.com/pkg/errors"

	"github.com/wastore/mountinfo/pkg/mntent"
)

// Stage identifies the check that rejected an entry.
type Stage int

// Checks in evaluation order.
const (
	Accepted Stage = iota
	PseudoRoot
	NodeInclude
	NodeExclude
	FstypeInclude
	FstypeExclude
	OptionsInclude
	OptionsExclude
	Target
)

var stageNames = [...]string{
	Accepted:       "accepted",
	PseudoRoot:     "pseudo-root",
	NodeInclude:    "node",
	NodeExclude:    "skip-node",
	FstypeInclude:  "fstype",
	FstypeExclude:  "skip-fstype",
	OptionsInclude: "options",
	OptionsExclude: "skip-options",
	Target:         "target",
}

// Stages lists every rejecting stage in evaluation order.
var Stages = []Stage{
	PseudoRoot,
	NodeInclude,
	NodeExclude,
	FstypeInclude,
	FstypeExclude,
	OptionsInclude,
	OptionsExclude,
	Target,
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Compile parses a POSIX extended regular expression. Matching is an
// unanchored search.
func Compile(expr string) (*regexp.Regexp, error) {
	re, err := regexp.CompilePOSIX(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid regex `%s'", expr)
	}
	return re, nil
}

// Config holds the record filters for one run. A nil regex disables its
// check and an empty Targets list allows every mount point.
type Config struct {
	NodeInclude    *regexp.Regexp
	NodeExclude    *regexp.Regexp
	FstypeInclude  *regexp.Regexp
	FstypeExclude  *regexp.Regexp
	OptionsInclude *regexp.Regexp
	OptionsExclude *regexp.Regexp
	Targets        []string
}

// Check returns the first stage that rejects e, or Accepted.
func (c *Config) Check(e *mntent.Entry) Stage {
	switch {
	case isPseudoRoot(e.Type):
		return PseudoRoot
	case c.NodeInclude != nil && !c.NodeInclude.MatchString(e.Fsname):
		return NodeInclude
	case c.NodeExclude != nil && c.NodeExclude.MatchString(e.Fsname):
		return NodeExclude
	case c.FstypeInclude != nil && !c.FstypeInclude.MatchString(e.Type):
		return FstypeInclude
	case c.FstypeExclude != nil && c.FstypeExclude.MatchString(e.Type):
		return FstypeExclude
	case c.OptionsInclude != nil && !c.OptionsInclude.MatchString(e.Opts):
		return OptionsInclude
	case c.OptionsExclude != nil && c.OptionsExclude.MatchString(e.Opts):
		return OptionsExclude
	case len(c.Targets) > 0 && !c.hasTarget(e.Dir):
		return Target
	}
	return Accepted
}

// Keep reports whether e passes every check.
func (c *Config) Keep(e *mntent.Entry) bool {
	return c.Check(e) == Accepted
}

func (c *Config) hasTarget(dir string) bool {
	for _, t := range c.Targets {
		if t == dir {
			return true
		}
	}
	return false
}

// PointConfig filters selected values after collection.
type PointConfig struct {
	Include *regexp.Regexp
	Skip    *regexp.Regexp
}

// Match reports whether v should be emitted.
func (p *PointConfig) Match(v string) bool {
	if p.Include != nil && !p.Include.MatchString(v) {
		return false
	}
	if p.Skip != nil && p.Skip.MatchString(v) {
		return false
	}
	return true
}
