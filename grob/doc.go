// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package grob defines drawable primitive descriptors produced from
// resolved theme elements.
//
// A descriptor records geometry in normalised parent coordinates (npc):
// (0, 0) is the bottom-left and (1, 1) the top-right of the viewport it
// is drawn into. Style parameters are fully resolved, with colours,
// line caps and dash patterns expressed as gogpu/gg types, so a renderer
// can paint a descriptor without consulting the theme again.
//
// Descriptors are plain values; they carry no drawing state.
package grob
