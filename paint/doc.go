// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint defines the drawing context that widgets render through,
// along with the font registry and the text layout helpers shared by
// the concrete backends in paint/raster, paint/ggpaint and paint/recorder.
//
// Coordinates are float32 device-independent units. The context keeps a
// save / restore stack of state (translation, font, colors, alignment),
// in the manner of nanovg.
package paint
