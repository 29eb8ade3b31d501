// Copyright (c) 2018 DDN. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mountinfo prints mounted filesystems that match a set of
// filters.
package mountinfo

import (
	"fmt"
	"io"

	"github.com/intel-hpdd/logging/debug"
	"github.com/pkg/errors"
	metrics "github.com/rcrowley/go-metrics"

	"github.com/wastore/mountinfo/filter"
	"github.com/wastore/mountinfo/pkg/mntent"
	"github.com/wastore/mountinfo/pkg/sortedset"
)

// ErrNotMountPoint is returned for a requested mount point that is not an
// absolute path.
var ErrNotMountPoint = errors.New("is not a mount point")

// Source returns a snapshot of the mount table.
type Source func() (mntent.Entries, error)

// Options is the configuration for a single run.
type Options struct {
	Field  Field
	Filter filter.Config
	Point  filter.PointConfig
	// Quiet suppresses output without changing the result.
	Quiet bool
}

// Result describes a completed run.
type Result struct {
	// Emitted is the number of values that passed the point filter.
	Emitted int
	Metrics metrics.Registry
}

// CheckMountPoints verifies that every path is absolute.
func CheckMountPoints(paths []string) error {
	for _, p := range paths {
		if len(p) == 0 || p[0] != '/' {
			return errors.Wrapf(ErrNotMountPoint, "`%s'", p)
		}
	}
	return nil
}

// Run reads the mount table from src, filters it according to opts and
// writes one selected value per line to w in descending order.
func Run(src Source, opts *Options, w io.Writer) (*Result, error) {
	if err := CheckMountPoints(opts.Filter.Targets); err != nil {
		return nil, err
	}

	entries, err := src()
	if err != nil {
		return nil, errors.Wrap(err, "getmntinfo")
	}

	reg := metrics.NewRegistry()
	set, err := collect(entries, &opts.Filter, opts.Field, reg)
	if err != nil {
		return nil, err
	}

	n, err := emit(set.Descending(), &opts.Point, opts.Quiet, w, reg)
	if err != nil {
		return nil, err
	}
	return &Result{Emitted: n, Metrics: reg}, nil
}

func collect(entries mntent.Entries, cfg *filter.Config, field Field, reg metrics.Registry) (*sortedset.Set, error) {
	read := metrics.NewRegisteredCounter("records.read", reg)
	accepted := metrics.NewRegisteredCounter("records.accepted", reg)
	rejected := make(map[filter.Stage]metrics.Counter, len(filter.Stages))
	for _, s := range filter.Stages {
		rejected[s] = metrics.NewRegisteredCounter("records.rejected."+s.String(), reg)
	}

	var set sortedset.Set
	for _, e := range entries {
		read.Inc(1)
		if s := cfg.Check(e); s != filter.Accepted {
			debug.Printf("%s: rejected by %s filter", e, s)
			rejected[s].Inc(1)
			continue
		}
		v, err := field.Select(e)
		if err != nil {
			return nil, err
		}
		accepted.Inc(1)
		set.Insert(v)
	}
	return &set, nil
}

func emit(values []string, p *filter.PointConfig, quiet bool, w io.Writer, reg metrics.Registry) (int, error) {
	emitted := metrics.NewRegisteredCounter("points.emitted", reg)
	skipped := metrics.NewRegisteredCounter("points.skipped", reg)

	for _, v := range values {
		if !p.Match(v) {
			skipped.Inc(1)
			continue
		}
		if !quiet {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return 0, errors.Wrap(err, "write failed")
			}
		}
		emitted.Inc(1)
	}
	return int(emitted.Count()), nil
}
