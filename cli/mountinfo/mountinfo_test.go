// Copyright (c) 2018 DDN. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/wastore/mountinfo"
	"github.com/wastore/mountinfo/pkg/mntent"

	. "github.com/smartystreets/goconvey/convey"
)

const testTable = `/dev/sda1 / ext4 rw,relatime 0 0
/dev/sda2 /home ext4 rw 0 0
tmpfs /tmp tmpfs rw,nosuid 0 0
`

func testSource() (mntent.Entries, error) {
	return mntent.ReadEntries(strings.NewReader(testTable))
}

func execute(args ...string) (string, int, error) {
	var out bytes.Buffer
	status := -1
	cmd := newCommand(testSource, &status)
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), status, err
}

func TestCommand(t *testing.T) {
	Convey("mountinfo", t, func() {
		t.Setenv("RC_QUIET", "")
		t.Setenv("MOUNTINFO_DEBUG", "")

		Convey("prints mount points in descending order by default", func() {
			out, status, err := execute()
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "/tmp\n/home\n/\n")
			So(status, ShouldEqual, exitMatched)
		})

		Convey("filters on fstype", func() {
			out, status, err := execute("-f", "ext4")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "/home\n/\n")
			So(status, ShouldEqual, exitMatched)
		})

		Convey("skips on options", func() {
			out, _, err := execute("--skip-options-regex", "nosuid")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "/home\n/\n")
		})

		Convey("lets the last selector win", func() {
			out, _, err := execute("--node", "-s")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "tmpfs\next4\n")

			out, _, err = execute("-s", "-t")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "tmpfs\n/dev/sda2\n/dev/sda1\n")

			out, _, err = execute("-is")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "tmpfs\next4\n")
		})

		Convey("prints options with -i", func() {
			out, _, err := execute("-i", "-O", "relatime")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "rw,nosuid\nrw\n")
		})

		Convey("replaces a repeated regex", func() {
			out, _, err := execute("-f", "tmpfs", "-f", "ext4")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "/home\n/\n")
		})

		Convey("restricts output to the given mount points", func() {
			out, status, err := execute("/tmp", "-p", "t")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "/tmp\n")
			So(status, ShouldEqual, exitMatched)
		})

		Convey("fails when no mount point matches", func() {
			out, status, err := execute("/var", "/srv")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "")
			So(status, ShouldEqual, exitNoMatches)
		})

		Convey("fails when the point filter skips everything", func() {
			out, status, err := execute("-P", ".")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "")
			So(status, ShouldEqual, exitNoMatches)
		})

		Convey("rejects relative mount points", func() {
			out, status, err := execute("relative/path")
			So(errors.Cause(err), ShouldEqual, mountinfo.ErrNotMountPoint)
			So(err.Error(), ShouldContainSubstring, "relative/path")
			So(out, ShouldEqual, "")
			So(status, ShouldEqual, -1)
		})

		Convey("rejects invalid regular expressions", func() {
			_, status, err := execute("-n", "sda(")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "invalid regex")
			So(status, ShouldEqual, -1)
		})

		Convey("honours RC_QUIET", func() {
			t.Setenv("RC_QUIET", "YES")
			out, status, err := execute("-f", "ext4")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "")
			So(status, ShouldEqual, exitMatched)
		})

		Convey("ignores RC_QUIET values other than yes", func() {
			for _, val := range []string{"no", "1", "true", "TRUE"} {
				t.Setenv("RC_QUIET", val)
				out, status, err := execute("-f", "ext4")
				So(err, ShouldBeNil)
				So(out, ShouldEqual, "/home\n/\n")
				So(status, ShouldEqual, exitMatched)
			}
		})

		Convey("is quiet with -q", func() {
			out, status, err := execute("-q", "-f", "ext4")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "")
			So(status, ShouldEqual, exitMatched)

			out, status, err = execute("--quiet", "/var")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "")
			So(status, ShouldEqual, exitNoMatches)
		})

		Convey("lets --quiet=false override RC_QUIET", func() {
			t.Setenv("RC_QUIET", "yes")
			out, _, err := execute("--quiet=false", "-f", "ext4")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "/home\n/\n")
		})

		Convey("resets the selector with --node=false", func() {
			out, _, err := execute("-t", "--node=false")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "/tmp\n/home\n/\n")

			out, _, err = execute("-s", "--node=false")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "tmpfs\next4\n")
		})
	})
}

func TestSourceError(t *testing.T) {
	Convey("an unreadable mount table is an error", t, func() {
		status := -1
		src := func() (mntent.Entries, error) {
			return nil, errors.New("open failed")
		}
		cmd := newCommand(src, &status)
		cmd.SetArgs([]string{})
		cmd.SetOut(&bytes.Buffer{})
		err := cmd.Execute()
		So(err, ShouldNotBeNil)
		So(status, ShouldEqual, -1)
	})
}

func debugRun(args ...string) (string, string) {
	var out, stderr bytes.Buffer
	status := -1
	cmd := newCommand(testSource, &status)
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&stderr)
	So(cmd.Execute(), ShouldBeNil)
	return out.String(), stderr.String()
}

func TestDebugMetrics(t *testing.T) {
	Convey("debug mode dumps the run counters", t, func() {
		t.Setenv("MOUNTINFO_DEBUG", "")

		Convey("with --debug", func() {
			out, stderr := debugRun("--debug", "-F", "tmpfs")
			So(out, ShouldEqual, "/home\n/\n")
			So(stderr, ShouldContainSubstring, "records.rejected.skip-fstype")
			So(stderr, ShouldContainSubstring, "points.emitted")
		})

		Convey("with MOUNTINFO_DEBUG=yes", func() {
			t.Setenv("MOUNTINFO_DEBUG", "yes")
			out, stderr := debugRun("-f", "ext4")
			So(out, ShouldEqual, "/home\n/\n")
			So(stderr, ShouldContainSubstring, "records.rejected.fstype")
		})

		Convey("not by default", func() {
			_, stderr := debugRun("-f", "ext4")
			So(stderr, ShouldNotContainSubstring, "records.read")
		})
	})
}
