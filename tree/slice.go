// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"slices"
)

// IndexOf returns the index of the given node in the given slice,
// or -1 if it is not found.
func IndexOf(slice []Node, child Node) int {
	return slices.IndexFunc(slice, func(e Node) bool { return e == child })
}

// IndexByName returns the index of the first element in the given slice that
// has the given name, or -1 if none is found.
func IndexByName(slice []Node, name string) int {
	return slices.IndexFunc(slice, func(ch Node) bool { return ch.AsTree().Name == name })
}

// Move moves the element in the given slice at the given
// old position to the given new position and returns the
// resulting slice.
func Move[E any](s []E, from, to int) []E {
	temp := s[from]
	s = slices.Delete(s, from, from+1)
	s = slices.Insert(s, to, temp)
	return s
}

// Swap swaps the elements at the given two indices in the given slice.
func Swap[E any](s []E, i, j int) {
	s[i], s[j] = s[j], s[i]
}
