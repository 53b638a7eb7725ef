// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Codes are the physical key codes of keyboard events.
type Codes int32

const (
	CodeUnknown Codes = iota

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	Code0
	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9

	CodeReturnEnter
	CodeKeypadEnter
	CodeEscape
	CodeBackspace
	CodeTab
	CodeSpacebar
	CodeDelete
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeRightArrow
	CodeLeftArrow
	CodeDownArrow
	CodeUpArrow

	codesN
)

var codeNames = func() []string {
	names := make([]string, codesN)
	names[CodeUnknown] = "Unknown"
	for c := CodeA; c <= CodeZ; c++ {
		names[c] = string(rune('A' + c - CodeA))
	}
	for c := Code0; c <= Code9; c++ {
		names[c] = string(rune('0' + c - Code0))
	}
	specials := []string{"ReturnEnter", "KeypadEnter", "Escape", "Backspace", "Tab", "Spacebar",
		"Delete", "Home", "End", "PageUp", "PageDown", "RightArrow", "LeftArrow", "DownArrow", "UpArrow"}
	for i, s := range specials {
		names[CodeReturnEnter+Codes(i)] = s
	}
	return names
}()

func (c Codes) String() string {
	if c < 0 || c >= codesN {
		return fmt.Sprintf("Codes(%d)", int32(c))
	}
	return codeNames[c]
}

// SetString sets the code from its case insensitive name.
func (c *Codes) SetString(s string) error {
	for i, n := range codeNames {
		if strings.EqualFold(n, s) {
			*c = Codes(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type key.Codes", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (c Codes) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Codes) UnmarshalText(text []byte) error {
	return c.SetString(string(text))
}

// CodeFromRune returns the code of the key that types the given rune
// without modifiers, or [CodeUnknown] if there is none.
func CodeFromRune(r rune) Codes {
	r = unicode.ToUpper(r)
	switch {
	case r >= 'A' && r <= 'Z':
		return CodeA + Codes(r-'A')
	case r >= '0' && r <= '9':
		return Code0 + Codes(r-'0')
	case r == ' ':
		return CodeSpacebar
	case r == '\t':
		return CodeTab
	case r == '\r', r == '\n':
		return CodeReturnEnter
	}
	return CodeUnknown
}
