// Copyright (c) 2018 DDN. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mntent

import "strings"

// Mount flag bits as reported in statfs.f_flags on FreeBSD.
const (
	mntRdonly      = 0x00000001
	mntSynchronous = 0x00000002
	mntNoexec      = 0x00000004
	mntNosuid      = 0x00000008
	mntUnion       = 0x00000020
	mntAsync       = 0x00000040
	mntExported    = 0x00000100
	mntLocal       = 0x00001000
	mntQuota       = 0x00002000
	mntSuiddir     = 0x00100000
	mntSoftdep     = 0x00200000
	mntNosymfollow = 0x00400000
	mntGjournal    = 0x02000000
	mntMultilabel  = 0x04000000
	mntAcls        = 0x08000000
	mntNoatime     = 0x10000000
	mntNoclusterr  = 0x40000000
	mntNoclusterw  = 0x80000000
)

var optNames = []struct {
	flag uint64
	name string
}{
	{mntAsync, "asynchronous"},
	{mntExported, "NFS exported"},
	{mntLocal, "local"},
	{mntNoatime, "noatime"},
	{mntNoexec, "noexec"},
	{mntNosuid, "nosuid"},
	{mntNosymfollow, "nosymfollow"},
	{mntQuota, "with quotas"},
	{mntRdonly, "read-only"},
	{mntSynchronous, "synchronous"},
	{mntUnion, "union"},
	{mntNoclusterr, "noclusterr"},
	{mntNoclusterw, "noclusterw"},
	{mntSuiddir, "suiddir"},
	{mntSoftdep, "soft-updates"},
	{mntMultilabel, "multilabel"},
	{mntAcls, "acls"},
	{mntGjournal, "gjournal"},
}

// FlagNames renders a mount flag mask as a comma-joined list of option
// names. Bits without a name are dropped.
func FlagNames(flags uint64) string {
	var names []string
	for _, o := range optNames {
		if flags&o.flag != 0 {
			names = append(names, o.name)
		}
	}
	return strings.Join(names, ",")
}
