// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/nanogui/events/key"
	"cogentcore.org/nanogui/math32"
)

func TestQueue(t *testing.T) {
	var q Queue
	q.Init()
	assert.Nil(t, q.NextEvent())

	q.Send(NewMouse(MouseDown, Left, math32.Vec2i(1, 2), 0))
	q.Send(NewKeyChar('a', key.Shift))
	q.Send(NewQuit())
	assert.Equal(t, uint64(3), q.Len())

	assert.Equal(t, MouseDown, q.NextEvent().Type())
	ev := q.NextEvent()
	require.Equal(t, KeyChar, ev.Type())
	assert.Equal(t, 'a', ev.(*Key).Rune)
	assert.Equal(t, key.CodeA, ev.(*Key).Code)
	assert.Equal(t, Quit, q.NextEvent().Type())
	assert.Nil(t, q.NextEvent())
	assert.Equal(t, uint64(0), q.Len())
}

func TestQueueConcurrentSend(t *testing.T) {
	var q Queue
	q.Init()
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				q.Send(NewMouseMove(NoButton, math32.Vec2i(0, 0), 0))
			}
		}()
	}
	wg.Wait()
	n := 0
	for q.NextEvent() != nil {
		n++
	}
	assert.Equal(t, 400, n)
}

func TestListeners(t *testing.T) {
	var ls Listeners
	var calls []string
	ls.Add(Scroll, func(ev Event) { calls = append(calls, "first") })
	ls.Add(Scroll, func(ev Event) {
		calls = append(calls, "second")
		ev.SetHandled()
	})
	ls.Call(NewScroll(math32.Vec2i(0, 0), math32.Vec2(0, 1), 0))
	assert.Equal(t, []string{"second"}, calls)

	calls = nil
	ls.Call(NewQuit())
	assert.Empty(t, calls)
}

func TestEventText(t *testing.T) {
	for _, tp := range TypesValues() {
		b, err := tp.MarshalText()
		require.NoError(t, err)
		var got Types
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, tp, got)
	}
	var bt Buttons
	require.NoError(t, bt.SetString("Right"))
	assert.Equal(t, Right, bt)
	assert.Error(t, bt.SetString("fourth"))

	ev := NewMouse(MouseUp, Left, math32.Vec2i(3, 4), key.Control)
	assert.True(t, ev.HasPos())
	assert.False(t, NewQuit().HasPos())
	assert.Contains(t, ev.String(), "mouse-up{Button: left, Pos: (3, 4), Mods: Control+")
	assert.Equal(t, key.Chord("Shift+a"), NewKeyChar('a', key.Shift).Chord())
	assert.Equal(t, math32.Vec2i(800, 600), NewWindowResize(math32.Vec2i(800, 600)).Size)
}
