// Copyright (c) 2018 DDN. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux && !freebsd

package mntent

// GetMounted returns a slice of filesystem entries from
// the mounted fs table.
func GetMounted() (Entries, error) {
	return nil, ErrUnimplemented
}
