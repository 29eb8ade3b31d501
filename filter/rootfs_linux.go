// Copyright (c) 2018 DDN. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package filter

// The kernel lists the initial rootfs under every namespace root.
func isPseudoRoot(fstype string) bool {
	return fstype == "rootfs"
}
