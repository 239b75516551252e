// Package svgdoc renders the icon geometry as an SVG document.
package svgdoc

import (
	"fmt"
	"strings"

	"dandelion/features"
	"dandelion/filaments"
	"dandelion/utils"
)

const DefaultBackground = "#0b0b0b"

type Document struct {
	// Size is the width and height of the square canvas.
	Size      int
	Core      features.Point
	Seed      features.Point
	Filaments []filaments.Filament
	// Background fills the canvas. Empty leaves it transparent.
	Background string
}

type writer struct {
	b strings.Builder
}

func (w *writer) line(format string, args ...interface{}) {
	fmt.Fprintf(&w.b, format, args...)
	w.b.WriteByte('\n')
}

// PathData is the move-then-quadratic path of one filament.
func PathData(f filaments.Filament) string {
	return fmt.Sprintf("M %.2f %.2f Q %.2f %.2f %.2f %.2f",
		f.Start.X, f.Start.Y, f.Control.X, f.Control.Y, f.End.X, f.End.Y)
}

// StemData is the cubic curve from the core down to the seed.
func StemData(core, seed features.Point) string {
	c1 := core.Add(-35, 95)
	c2 := seed.Add(18, -70)
	return fmt.Sprintf("M %.2f %.2f C %.2f %.2f %.2f %.2f %.2f %.2f",
		core.X, core.Y, c1.X, c1.Y, c2.X, c2.Y, seed.X, seed.Y)
}

func writeDefs(w *writer) {
	w.line(`  <defs>`)
	w.line(`    <radialGradient id="glow" cx="50%%" cy="50%%" r="50%%">`)
	w.line(`      <stop offset="0%%" stop-color="#f7efe2" stop-opacity="0.95"/>`)
	w.line(`      <stop offset="38%%" stop-color="#d7b486" stop-opacity="0.55"/>`)
	w.line(`      <stop offset="100%%" stop-color="#000000" stop-opacity="0"/>`)
	w.line(`    </radialGradient>`)
	w.line(`    <filter id="softGlow" x="-50%%" y="-50%%" width="200%%" height="200%%">`)
	w.line(`      <feGaussianBlur stdDeviation="18" result="blur"/>`)
	w.line(`      <feMerge>`)
	w.line(`        <feMergeNode in="blur"/>`)
	w.line(`        <feMergeNode in="SourceGraphic"/>`)
	w.line(`      </feMerge>`)
	w.line(`    </filter>`)
	w.line(`    <linearGradient id="seedGrad" x1="0" y1="0" x2="1" y2="1">`)
	w.line(`      <stop offset="0%%" stop-color="#8a6b46"/>`)
	w.line(`      <stop offset="55%%" stop-color="#5a4026"/>`)
	w.line(`      <stop offset="100%%" stop-color="#3b2818"/>`)
	w.line(`    </linearGradient>`)
	w.line(`  </defs>`)
}

// Build returns the document text. The output depends only on doc, so equal
// documents render to identical bytes.
func Build(doc Document) string {
	var w writer
	cx, cy := doc.Core.X, doc.Core.Y
	sx, sy := doc.Seed.X, doc.Seed.Y

	w.line(`<?xml version="1.0" encoding="UTF-8"?>`)
	w.line(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, doc.Size, doc.Size, doc.Size, doc.Size)
	writeDefs(&w)
	if doc.Background != "" {
		w.line(`  <rect width="%d" height="%d" fill="%s"/>`, doc.Size, doc.Size, doc.Background)
	}
	w.line(`  <circle cx="%.2f" cy="%.2f" r="135" fill="url(#glow)" filter="url(#softGlow)"/>`, cx, cy)
	w.line(`  <circle cx="%.2f" cy="%.2f" r="18" fill="#f8f1e6" opacity="0.35"/>`, cx, cy)
	w.line(`  <g fill="none" stroke-linecap="round" stroke-linejoin="round">`)
	for _, f := range doc.Filaments {
		w.line(`    <path d="%s" stroke="%s" stroke-width="%.2f" opacity="%.2f"/>`, PathData(f), f.Stroke.Hex(), f.Width, f.Opacity)
	}
	w.line(`  </g>`)
	w.line(`  <circle cx="%.2f" cy="%.2f" r="4" fill="#f8efe3"/>`, cx, cy)
	w.line(`  <path d="%s" fill="none" stroke="#cdb68c" stroke-width="2" stroke-linecap="round"/>`, StemData(doc.Core, doc.Seed))
	w.line(`  <ellipse cx="%.2f" cy="%.2f" rx="16" ry="36" fill="url(#seedGrad)" transform="rotate(-20 %.2f %.2f)"/>`, sx, sy, sx, sy)
	w.b.WriteString(`</svg>`)
	return w.b.String()
}

func WriteFile(name string, doc Document) error {
	return utils.CreateTextFile(name, Build(doc))
}
