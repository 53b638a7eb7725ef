// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"
	"slices"
	"time"

	"cogentcore.org/nanogui/colors"
	"cogentcore.org/nanogui/cursors"
	"cogentcore.org/nanogui/events"
	"cogentcore.org/nanogui/events/key"
	"cogentcore.org/nanogui/math32"
	"cogentcore.org/nanogui/paint"
	"cogentcore.org/nanogui/theme"
	"cogentcore.org/nanogui/tree"
)

const (
	// TooltipDelay is the default time the mouse has to rest
	// before a tooltip is shown.
	TooltipDelay = 500 * time.Millisecond

	// TooltipWidth is the width beyond which tooltips are wrapped.
	TooltipWidth = 150

	// TooltipFontSize is the font size of tooltips.
	TooltipFontSize = 15
)

// DefaultBackground is the background color of a new [Screen].
var DefaultBackground = colors.FromIntensity(77, 255)

// Screen is the root widget of a tree. It owns the drawing context,
// turns host input [events.Event]s into calls to the widget event
// methods, keeps track of the focus path and draws whole frames.
type Screen struct {
	WidgetBase

	// Context is the drawing context that the screen draws to.
	Context paint.Context `toml:"-" yaml:"-"`

	// Fonts is the font registry that font names are resolved in.
	Fonts *paint.Fonts `toml:"-" yaml:"-"`

	// Caption is the title of the host window.
	Caption string

	// Background is the color the frame is cleared to.
	Background colors.Color

	// FramebufferSize is the size of the framebuffer in pixels.
	FramebufferSize math32.Vector2i

	// PixelRatio is the ratio of framebuffer pixels to screen units.
	PixelRatio float32

	// Modifiers are the modifier keys held down in the last event.
	Modifiers key.Modifiers

	// MousePos is the last known mouse position.
	MousePos math32.Vector2i

	// MouseButton is the mouse button held down, if any.
	MouseButton events.Buttons

	// DragActive is whether a mouse drag is in progress.
	DragActive bool

	// DragWidget is the widget that receives drag events while
	// [Screen.DragActive] is set.
	DragWidget Widget `toml:"-" yaml:"-"`

	// LastInteraction is the time of the last event.
	LastInteraction time.Time

	// FocusPath is the focused widget followed by its ancestors,
	// up to and including the screen.
	FocusPath []Widget `toml:"-" yaml:"-"`

	// CurrentCursor is the cursor of the widget under the mouse.
	CurrentCursor cursors.Cursor

	// TooltipDelay is how long the mouse has to rest before a
	// tooltip is shown.
	TooltipDelay time.Duration

	// Now returns the current time. It can be replaced in tests.
	Now func() time.Time `toml:"-" yaml:"-"`

	listeners events.Listeners
	quit      bool
}

// NewScreen returns a new [Screen] of the given size, in screen units,
// that draws to the given context with a pixel ratio of 1.
func NewScreen(ctx paint.Context, size math32.Vector2i, caption string) *Screen {
	sc := tree.New[Screen]()
	sc.Name = "screen"
	sc.Context = ctx
	sc.Caption = caption
	sc.Size = size
	sc.FramebufferSize = size
	return sc
}

func (sc *Screen) Init() {
	sc.WidgetBase.Init()
	sc.Background = DefaultBackground
	sc.PixelRatio = 1
	sc.TooltipDelay = TooltipDelay
	sc.Now = time.Now
	sc.LastInteraction = sc.Now()
}

// SetFonts sets the font registry, and resolves the font handles
// of the theme in it.
func (sc *Screen) SetFonts(fonts *paint.Fonts) *Screen {
	sc.Fonts = fonts
	if sc.Theme != nil && fonts != nil {
		sc.Theme.LoadFonts(fonts)
	}
	return sc
}

// SetTheme sets the theme of the screen and all of its widgets,
// resolving its font handles in [Screen.Fonts].
func (sc *Screen) SetTheme(th *theme.Theme) *Screen {
	if th != nil && sc.Fonts != nil {
		th.LoadFonts(sc.Fonts)
	}
	sc.WidgetBase.SetTheme(th)
	return sc
}

// SetPixelRatio sets the pixel ratio, keeping the framebuffer size.
func (sc *Screen) SetPixelRatio(ratio float32) *Screen {
	if ratio <= 0 {
		ratio = 1
	}
	sc.PixelRatio = ratio
	sc.Size = sc.FramebufferSize.ToVector2().MulScalar(1 / ratio).ToVector2i()
	return sc
}

// On adds a listener that is called for every event of the given
// type before it is dispatched to the widgets. A listener can stop
// the dispatch with [events.Event.SetHandled].
func (sc *Screen) On(typ events.Types, fun func(ev events.Event)) {
	sc.listeners.Add(typ, fun)
}

// Quit marks the screen as closed.
func (sc *Screen) Quit() {
	sc.quit = true
}

// IsQuit returns whether [Screen.Quit] has been called or a
// quit event received.
func (sc *Screen) IsQuit() bool {
	return sc.quit
}

// UpdateLayout lays out the whole tree with [Screen.Context].
func (sc *Screen) UpdateLayout() {
	if sc.Context == nil {
		return
	}
	sc.PerformLayout(sc.Context)
}

// HandleEvent dispatches a host event to the widgets, returning
// whether a widget consumed it.
func (sc *Screen) HandleEvent(ev events.Event) bool {
	sc.LastInteraction = sc.Now()
	sc.Modifiers = ev.KeyMods()
	sc.listeners.Call(ev)
	if ev.IsHandled() {
		return true
	}
	switch ev.Type() {
	case events.MouseMove:
		me := ev.(*events.Mouse)
		return sc.mouseMove(me.Pos(), me.Button)
	case events.MouseDown, events.MouseUp:
		me := ev.(*events.Mouse)
		return sc.mouseButton(me.Pos(), me.Button, ev.Type() == events.MouseDown)
	case events.Scroll:
		se := ev.(*events.MouseScroll)
		sc.MousePos = se.Pos()
		if sc.modalBlocks() {
			return false
		}
		return sc.ScrollEvent(sc.MousePos, se.Delta)
	case events.KeyDown, events.KeyUp:
		ke := ev.(*events.Key)
		down := ev.Type() == events.KeyDown
		return sc.alongFocusPath(func(w Widget) bool {
			return w.KeyboardEvent(ke.Code, down, ke.Mods)
		})
	case events.KeyChar:
		ke := ev.(*events.Key)
		return sc.alongFocusPath(func(w Widget) bool {
			return w.KeyboardCharacterEvent(ke.Rune)
		})
	case events.WindowResize:
		re := ev.(*events.Resize)
		sc.FramebufferSize = re.Size
		sc.SetPixelRatio(sc.PixelRatio)
		sc.UpdateLayout()
		return true
	case events.Quit:
		sc.Quit()
		return true
	}
	return false
}

// alongFocusPath calls fun on the focused widgets, from the deepest
// up to the child of the screen, until one of them returns true.
func (sc *Screen) alongFocusPath(fun func(w Widget) bool) bool {
	for _, w := range sc.FocusPath {
		if w == Widget(sc) {
			break
		}
		if w.AsWidget().Focused && fun(w) {
			return true
		}
	}
	return false
}

// modalBlocks returns whether the top-level widget on the focus path
// is a modal window that does not contain the mouse.
func (sc *Screen) modalBlocks() bool {
	if len(sc.FocusPath) < 2 {
		return false
	}
	win, ok := sc.FocusPath[len(sc.FocusPath)-2].(*Window)
	return ok && win.Modal && !win.Contains(sc.MousePos)
}

// relativeToParent returns p in the frame of the parent of w.
func relativeToParent(w Widget, p math32.Vector2i) math32.Vector2i {
	if pwb := w.AsWidget().parentWidget(); pwb != nil {
		return p.Sub(pwb.AbsolutePosition())
	}
	return p
}

func (sc *Screen) updateCursor(p math32.Vector2i) {
	if w := sc.FindWidget(p); w != nil {
		sc.CurrentCursor = w.AsWidget().Cursor
	}
}

func (sc *Screen) mouseMove(p math32.Vector2i, button events.Buttons) bool {
	rel := p.Sub(sc.MousePos)
	sc.MouseButton = button
	handled := false
	if sc.DragActive {
		handled = sc.DragWidget.MouseDragEvent(relativeToParent(sc.DragWidget, p), rel, button, sc.Modifiers)
	} else {
		sc.updateCursor(p)
	}
	if !handled {
		handled = sc.MouseMotionEvent(p, rel, button, sc.Modifiers)
	}
	sc.MousePos = p
	return handled
}

func (sc *Screen) mouseButton(p math32.Vector2i, button events.Buttons, down bool) bool {
	sc.MousePos = p
	if sc.modalBlocks() {
		return false
	}
	if down {
		sc.MouseButton = button
	} else {
		sc.MouseButton = events.NoButton
	}
	drop := sc.FindWidget(p)
	if sc.DragActive && !down && drop != sc.DragWidget {
		sc.DragWidget.MouseButtonEvent(relativeToParent(sc.DragWidget, p), button, false, sc.Modifiers)
	}
	if drop != nil {
		sc.CurrentCursor = drop.AsWidget().Cursor
	}
	if down && (button == events.Left || button == events.Right) {
		sc.DragWidget = drop
		if sc.DragWidget == Widget(sc) {
			sc.DragWidget = nil
		}
		sc.DragActive = sc.DragWidget != nil
		if !sc.DragActive {
			sc.UpdateFocus(nil)
		}
	} else {
		sc.DragActive = false
		sc.DragWidget = nil
	}
	return sc.MouseButtonEvent(p, button, down, sc.Modifiers)
}

// UpdateFocus makes w the focused widget. Widgets that lose the
// focus get a [Widget.FocusEvent] of false, and then the widgets on
// the new focus path that did not have it get one of true, starting
// from the screen. Windows on the path are moved to the front.
// A nil widget clears the focus.
func (sc *Screen) UpdateFocus(w Widget) {
	var path []Widget
	if w != nil {
		w.AsWidget().WalkUp(func(n tree.Node) bool {
			if cw, _ := AsWidget(n); cw != nil {
				path = append(path, cw)
			}
			return tree.Continue
		})
	}
	for _, old := range sc.FocusPath {
		if old.AsWidget().Focused && !slices.Contains(path, old) {
			old.FocusEvent(false)
		}
	}
	sc.FocusPath = path
	for i := len(path) - 1; i >= 0; i-- {
		if !path[i].AsWidget().Focused {
			path[i].FocusEvent(true)
		}
	}
	for _, pw := range path {
		if win, ok := pw.(*Window); ok {
			sc.MoveWindowToFront(win)
		}
	}
	if w != nil {
		slog.Debug("core.Screen: focus", "widget", w.AsWidget().Path(), "depth", len(path))
	} else {
		slog.Debug("core.Screen: focus cleared")
	}
}

// MoveWindowToFront moves the given window to the end of the
// children of its parent, so that it is drawn last.
func (sc *Screen) MoveWindowToFront(win *Window) {
	if win.Parent == nil {
		return
	}
	pb := win.Parent.AsTree()
	idx := win.IndexInParent()
	if idx < 0 {
		return
	}
	pb.Children = tree.Move(pb.Children, idx, len(pb.Children)-1)
}

// DrawWidgets draws a whole frame: it clears the background,
// draws the tree and the tooltip of the widget under the mouse.
// It does nothing if the screen is not visible.
func (sc *Screen) DrawWidgets() {
	if !sc.Visible || sc.Context == nil {
		return
	}
	ctx := sc.Context
	ctx.BeginFrame(sc.Size.X, sc.Size.Y, sc.PixelRatio)
	ctx.BeginPath()
	ctx.Rect(0, 0, float32(sc.Size.X), float32(sc.Size.Y))
	ctx.FillColor(sc.Background)
	ctx.Fill()
	sc.Draw(ctx)
	sc.drawTooltip(ctx)
	ctx.EndFrame()
}

func (sc *Screen) drawTooltip(ctx paint.Context) {
	if sc.Now().Sub(sc.LastInteraction) < sc.TooltipDelay {
		return
	}
	w := sc.FindWidget(sc.MousePos)
	if w == nil || w.AsWidget().Tooltip == "" {
		return
	}
	wb := w.AsWidget()
	pos := wb.AbsolutePosition().ToVector2().Add(math32.Vec2(float32(wb.Size.X)/2, float32(wb.Size.Y)+10))
	ctx.Save()
	if sc.Theme != nil {
		ctx.FontFace(sc.Theme.FontNormal)
	}
	ctx.FontSize(TooltipFontSize)
	ctx.TextAlign(paint.AlignLeft | paint.AlignTop)
	bb := ctx.TextBoxBounds(pos.X, pos.Y, TooltipWidth, wb.Tooltip)
	h := bb.Size().X / 2
	ctx.BeginPath()
	ctx.RoundedRect(bb.Min.X-4-h, bb.Min.Y-4, bb.Size().X+8, bb.Size().Y+8, 3)
	px := (bb.Max.X+bb.Min.X)/2 - h
	ctx.MoveTo(px, bb.Min.Y-10)
	ctx.LineTo(px+7, bb.Min.Y+1)
	ctx.LineTo(px-7, bb.Min.Y+1)
	ctx.FillColor(colors.FromIntensity(0, 204))
	ctx.Fill()
	ctx.FillColor(colors.White)
	ctx.TextBox(pos.X-h, pos.Y, TooltipWidth, wb.Tooltip)
	ctx.Restore()
}
