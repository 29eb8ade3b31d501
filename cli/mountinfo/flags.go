// Copyright (c) 2018 DDN. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"regexp"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/wastore/mountinfo"
	"github.com/wastore/mountinfo/filter"
)

// regexValue compiles its argument when the flag is parsed. A repeated
// flag replaces the earlier expression.
type regexValue struct {
	re   **regexp.Regexp
	expr string
}

func (v *regexValue) String() string { return v.expr }

func (v *regexValue) Set(s string) error {
	re, err := filter.Compile(s)
	if err != nil {
		return err
	}
	*v.re = re
	v.expr = s
	return nil
}

func (v *regexValue) Type() string { return "regex" }

// fieldValue is one of several boolean flags sharing a Field; the last
// one given on the command line wins.
type fieldValue struct {
	field *mountinfo.Field
	value mountinfo.Field
}

func (v *fieldValue) String() string {
	return strconv.FormatBool(v.field != nil && *v.field == v.value)
}

func (v *fieldValue) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*v.field = v.value
	} else if *v.field == v.value {
		*v.field = mountinfo.TargetField
	}
	return nil
}

func (v *fieldValue) Type() string { return "bool" }

func addRegexFlag(fs *pflag.FlagSet, re **regexp.Regexp, name, shorthand, usage string) {
	fs.VarP(&regexValue{re: re}, name, shorthand, usage)
}

func addFieldFlag(fs *pflag.FlagSet, field *mountinfo.Field, value mountinfo.Field, name, shorthand, usage string) {
	f := fs.VarPF(&fieldValue{field: field, value: value}, name, shorthand, usage)
	f.NoOptDefVal = "true"
}

func addFlags(fs *pflag.FlagSet, opts *mountinfo.Options) {
	cfg, point := &opts.Filter, &opts.Point

	addRegexFlag(fs, &cfg.FstypeInclude, "fstype-regex", "f", "only show mounts whose type matches")
	addRegexFlag(fs, &cfg.FstypeExclude, "skip-fstype-regex", "F", "hide mounts whose type matches")
	addRegexFlag(fs, &cfg.NodeInclude, "node-regex", "n", "only show mounts whose node matches")
	addRegexFlag(fs, &cfg.NodeExclude, "skip-node-regex", "N", "hide mounts whose node matches")
	addRegexFlag(fs, &cfg.OptionsInclude, "options-regex", "o", "only show mounts whose options match")
	addRegexFlag(fs, &cfg.OptionsExclude, "skip-options-regex", "O", "hide mounts whose options match")
	addRegexFlag(fs, &point.Include, "point-regex", "p", "only print values that match")
	addRegexFlag(fs, &point.Skip, "skip-point-regex", "P", "do not print values that match")

	addFieldFlag(fs, &opts.Field, mountinfo.OptionsField, "options", "i", "print mount options")
	addFieldFlag(fs, &opts.Field, mountinfo.FstypeField, "fstype", "s", "print filesystem type")
	addFieldFlag(fs, &opts.Field, mountinfo.SourceField, "node", "t", "print mount node")
}
