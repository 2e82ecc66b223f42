package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/muhzinmohammed/infinite-canvas-notes/board"
)

const (
	canvasColor = "#f4f1ea"
	stringColor = "#8b5a2b"
	borderColor = "#00000033"

	snapshotPad = 60.0
)

var noteFill = map[string]string{
	"yellow": "#f7e86d",
	"pink":   "#f8b8d0",
	"blue":   "#a8d8f0",
	"green":  "#b8e6b8",
	"orange": "#fcd29f",
	"purple": "#d9c2f0",
}

// PNG rasterizes the whole board into a w×h image: strings underneath, notes
// on top, everything scaled to fit. Meant for the HTTP snapshot endpoint, not
// for live rendering — the browser draws the live board itself.
func PNG(s *board.State, w, h int) ([]byte, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("render png: invalid size %dx%d", w, h)
	}

	dc := gg.NewContext(w, h)
	dc.SetHexColor(canvasColor)
	dc.Clear()

	minX, minY, maxX, maxY, found := boardBounds(s)
	if found {
		bw := maxX - minX + 2*snapshotPad
		bh := maxY - minY + 2*snapshotPad
		scale := math.Min(float64(w)/bw, float64(h)/bh)
		if scale > 1 {
			scale = 1
		}
		dc.Translate(float64(w)/2, float64(h)/2)
		dc.Scale(scale, scale)
		dc.Translate(-(minX+maxX)/2, -(minY+maxY)/2)
	}

	for _, c := range s.Connections {
		pts := c.Points()
		if pts == nil {
			continue
		}
		dc.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.SetHexColor(stringColor)
		dc.SetLineWidth(StringStrokeWidth)
		dc.Stroke()
	}

	for _, n := range s.Notes {
		fill, ok := noteFill[n.Color]
		if !ok {
			fill = noteFill[board.DefaultColor]
		}
		dc.DrawRoundedRectangle(n.X, n.Y, n.W, n.H, 8)
		dc.SetHexColor(fill)
		dc.FillPreserve()
		dc.SetHexColor(borderColor)
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("render png: %w", err)
	}
	return buf.Bytes(), nil
}

func boardBounds(s *board.State) (minX, minY, maxX, maxY float64, found bool) {
	add := func(x, y float64) {
		if !found {
			minX, maxX = x, x
			minY, maxY = y, y
			found = true
			return
		}
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	for _, n := range s.Notes {
		add(n.X, n.Y)
		add(n.X+n.W, n.Y+n.H)
	}
	for _, c := range s.Connections {
		for _, p := range c.Points() {
			add(p.X, p.Y)
		}
	}
	return
}
