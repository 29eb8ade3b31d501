// Copyright (c) 2018 DDN. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mntent

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnimplemented is returned by GetMounted on platforms without a
// mount table strategy.
var ErrUnimplemented = errors.New("not implemented")

// Entry is an entry in the mounted filesystem table.
type Entry struct {
	Fsname string
	Dir    string
	Type   string
	Opts   string
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s %s %s %s", e.Fsname, e.Dir, e.Type, e.Opts)
}

// Entries is a mount table snapshot in the order the OS reported it.
type Entries []*Entry

// ReadEntries parses a line-oriented mount table such as /proc/mounts.
//
// Each line contributes exactly one entry built from its first four
// space-separated fields. Trailing fields are ignored and short lines are
// kept with the missing fields left empty.
func ReadEntries(r io.Reader) (Entries, error) {
	var entries Entries
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			entries = append(entries, parseLine(line))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read failed")
		}
	}
	return entries, nil
}

func parseLine(line string) *Entry {
	line = strings.TrimRight(line, "\r\n")
	var fields [4]string
	copy(fields[:], strings.SplitN(line, " ", 5))
	return &Entry{
		Fsname: fields[0],
		Dir:    fields[1],
		Type:   fields[2],
		Opts:   fields[3],
	}
}
