// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"github.com/gogpu/ggplot/grob"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts maps font families and faces to font sources. The empty family
// is the Go font family and is always present; unknown families fall
// back to it.
//
// Fonts is safe for concurrent use.
type Fonts struct {
	mu       sync.RWMutex
	families map[string]*[4]*text.FontSource
}

// NewFonts returns Fonts holding the Go fonts as the default family.
func NewFonts() (*Fonts, error) {
	f := &Fonts{families: make(map[string]*[4]*text.FontSource)}
	for face, data := range map[grob.FontFace][]byte{
		grob.FacePlain:      goregular.TTF,
		grob.FaceBold:       gobold.TTF,
		grob.FaceItalic:     goitalic.TTF,
		grob.FaceBoldItalic: gobolditalic.TTF,
	} {
		src, err := text.NewFontSource(data)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("render: load Go %v font: %w", face, err)
		}
		f.register("", face, src)
	}
	return f, nil
}

// Register makes src the given face of family. Fonts takes ownership
// of src and closes it in Close.
func (f *Fonts) Register(family string, face grob.FontFace, src *text.FontSource) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.register(family, face, src)
}

func (f *Fonts) register(family string, face grob.FontFace, src *text.FontSource) {
	fam := f.families[family]
	if fam == nil {
		fam = new([4]*text.FontSource)
		f.families[family] = fam
	}
	if old := fam[face]; old != nil && old != src {
		_ = old.Close()
	}
	fam[face] = src
}

// Face returns a face of the given family, style and pixel size. A
// missing style falls back to the family's plain face, and a missing
// family to the default family. Face returns nil after Close.
func (f *Fonts) Face(family string, face grob.FontFace, size float64) text.Face {
	if face < grob.FacePlain || face > grob.FaceBoldItalic {
		face = grob.FacePlain
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, name := range []string{family, ""} {
		fam := f.families[name]
		if fam == nil {
			continue
		}
		if src := fam[face]; src != nil {
			return src.Face(size)
		}
		if src := fam[grob.FacePlain]; src != nil {
			return src.Face(size)
		}
	}
	return nil
}

// Close releases every registered font source.
func (f *Fonts) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var errs []error
	for _, fam := range f.families {
		for i, src := range fam {
			if src != nil {
				errs = append(errs, src.Close())
				fam[i] = nil
			}
		}
	}
	clear(f.families)
	return errors.Join(errs...)
}
