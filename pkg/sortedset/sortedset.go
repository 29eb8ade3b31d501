// Copyright (c) 2018 DDN. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sortedset keeps a small ordered set of strings.
package sortedset

import "sort"

// Set holds unique strings in ascending byte-wise order. The zero value
// is an empty set.
type Set struct {
	values []string
}

// Insert adds v at its sorted position. It returns false if v is already
// present.
func (s *Set) Insert(v string) bool {
	i := sort.SearchStrings(s.values, v)
	if i < len(s.values) && s.values[i] == v {
		return false
	}
	s.values = append(s.values, "")
	copy(s.values[i+1:], s.values[i:])
	s.values[i] = v
	return true
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.values)
}

// Values returns the members in ascending order.
func (s *Set) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

// Descending returns the members in descending order.
func (s *Set) Descending() []string {
	out := make([]string, len(s.values))
	for i, v := range s.values {
		out[len(out)-1-i] = v
	}
	return out
}
