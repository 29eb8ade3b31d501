// Copyright (c) 2018 DDN. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mountinfo

import (
	"github.com/pkg/errors"

	"github.com/wastore/mountinfo/pkg/mntent"
)

// ErrInvalidField is returned when a Field outside the known set is used.
var ErrInvalidField = errors.New("invalid mount field")

// Field selects which part of a mount entry is printed.
type Field int

const (
	// TargetField is the mount point and the default selection.
	TargetField Field = iota
	SourceField
	FstypeField
	OptionsField
)

func (f Field) String() string {
	switch f {
	case TargetField:
		return "target"
	case SourceField:
		return "source"
	case FstypeField:
		return "fstype"
	case OptionsField:
		return "options"
	}
	return "unknown"
}

// Select returns the value of field f in e.
func (f Field) Select(e *mntent.Entry) (string, error) {
	switch f {
	case TargetField:
		return e.Dir, nil
	case SourceField:
		return e.Fsname, nil
	case FstypeField:
		return e.Type, nil
	case OptionsField:
		return e.Opts, nil
	}
	return "", errors.Wrapf(ErrInvalidField, "%d", int(f))
}
