// Copyright (c) 2018 DDN. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// mountinfo prints mounted filesystems matching the given filters.
//
//	mountinfo [-f regex] [-F regex] [-n regex] [-N regex] [-o regex]
//	          [-O regex] [-p regex] [-P regex] [-i|-s|-t] [-q] [mount-point...]
//
// Exits 0 if at least one value matched and 1 otherwise. -q or
// RC_QUIET=yes suppresses output.
package main

import (
	"os"
	"strings"

	"github.com/intel-hpdd/logging/alert"
	"github.com/intel-hpdd/logging/debug"
	metrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/wastore/mountinfo"
	"github.com/wastore/mountinfo/pkg/mntent"
)

const (
	exitMatched   = 0
	exitNoMatches = 1
)

// isQuiet follows RC_QUIET, which only counts when it is "yes". An
// explicit -q/--quiet overrides the environment.
func isQuiet(v *viper.Viper, fs *pflag.FlagSet) bool {
	q := v.GetString("quiet")
	if fs.Changed("quiet") {
		return q == "true"
	}
	return strings.EqualFold(q, "yes")
}

func isYes(s string) bool {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true
	}
	return false
}

func newCommand(src mountinfo.Source, status *int) *cobra.Command {
	opts := &mountinfo.Options{}

	v := viper.New()
	_ = v.BindEnv("quiet", "RC_QUIET")
	_ = v.BindEnv("debug", "MOUNTINFO_DEBUG")

	cmd := &cobra.Command{
		Use:   "mountinfo [flags] [mount-point...]",
		Short: "Print mounted filesystems matching the given filters",
		Long: `Print one field of every mounted filesystem that passes the filters,
in descending order. The mount point is printed unless --options, --fstype
or --node is given; the last of those wins.

Mount point arguments restrict the output to those exact mount points.`,
		Args: func(cmd *cobra.Command, args []string) error {
			return mountinfo.CheckMountPoints(args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbg := isYes(v.GetString("debug"))
			if dbg {
				debug.Enable()
			}
			opts.Filter.Targets = args
			opts.Quiet = isQuiet(v, cmd.Flags())

			res, err := mountinfo.Run(src, opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if dbg {
				metrics.WriteOnce(res.Metrics, cmd.ErrOrStderr())
			}

			*status = exitNoMatches
			if res.Emitted > 0 {
				*status = exitMatched
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.SortFlags = false
	addFlags(fs, opts)
	fs.BoolP("quiet", "q", false, "print nothing, only set the exit status")
	_ = v.BindPFlag("quiet", fs.Lookup("quiet"))
	fs.Bool("debug", false, "trace filter decisions on stderr")
	_ = v.BindPFlag("debug", fs.Lookup("debug"))

	return cmd
}

func main() {
	var status int
	cmd := newCommand(mntent.GetMounted, &status)
	if err := cmd.Execute(); err != nil {
		alert.Fatal(err)
	}
	os.Exit(status)
}
