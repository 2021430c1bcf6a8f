// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render paints grob descriptors on a gg.Context.
//
// Descriptors position themselves in normalised parent coordinates
// (npc), where (0, 0) is the bottom-left of a viewport and (1, 1) its
// top-right. A [Viewport] maps npc to pixels; a [Painter] draws
// descriptors into viewports.
//
//	dc := gg.NewContext(400, 300)
//	p, err := render.NewPainter(dc)
//	if err != nil { ... }
//	defer p.Close()
//	err = p.Draw(g, render.Full(dc))
//
// Sizes in descriptors are in points. By default one point is one
// pixel; use [WithDPI] to scale.
package render
