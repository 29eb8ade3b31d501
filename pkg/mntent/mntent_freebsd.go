// Copyright (c) 2018 DDN. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mntent

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// GetMounted returns a slice of filesystem entries from
// getfsstat(2).
func GetMounted() (Entries, error) {
	n, err := unix.Getfsstat(nil, unix.MNT_NOWAIT)
	if err != nil {
		return nil, errors.Wrap(err, "getfsstat")
	}

	buf := make([]unix.Statfs_t, n)
	n, err = unix.Getfsstat(buf, unix.MNT_NOWAIT)
	if err != nil {
		return nil, errors.Wrap(err, "getfsstat")
	}

	entries := make(Entries, 0, n)
	for _, fs := range buf[:n] {
		entries = append(entries, &Entry{
			Fsname: unix.ByteSliceToString(fs.Mntfromname[:]),
			Dir:    unix.ByteSliceToString(fs.Mntonname[:]),
			Type:   unix.ByteSliceToString(fs.Fstypename[:]),
			Opts:   FlagNames(uint64(fs.Flags)),
		})
	}
	return entries, nil
}
