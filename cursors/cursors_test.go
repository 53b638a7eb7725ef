// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cursors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorText(t *testing.T) {
	assert.Len(t, Values(), 6)
	for _, c := range Values() {
		b, err := c.MarshalText()
		assert.NoError(t, err)
		var got Cursor
		assert.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, c, got)
	}
	var c Cursor
	assert.NoError(t, c.SetString(" HAND "))
	assert.Equal(t, Hand, c)
	assert.Error(t, c.SetString("pirate"))
	assert.Equal(t, "Cursor(42)", Cursor(42).String())
}
