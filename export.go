package main

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var (
	errNothingToExport = errors.New("nothing to export")
	errExportTooLarge  = errors.New("diagram too large to export")
)

const exportPadding = 20.0

func exportFilename(now time.Time) string {
	return "blockdraw-" + now.Format("20060102-150405") + ".png"
}

// diagramBounds is the world rect covering every block, port, label and line.
func diagramBounds(d *Diagram) (Rect, bool) {
	var bounds Rect
	has := false
	grow := func(r Rect) {
		if !has {
			bounds, has = r, true
			return
		}
		bounds = bounds.Union(r)
	}
	for _, b := range d.Blocks() {
		grow(b.Bounds())
		for _, p := range b.Ports {
			r := p.Bounds()
			r.Height += p.Size + 12
			grow(r)
		}
	}
	for _, l := range d.Lines() {
		grow(Rect{X: l.Start.X, Y: l.Start.Y}.Union(Rect{X: l.End.X, Y: l.End.Y}))
	}
	return bounds, has
}

// ExportPNG draws the diagram at one pixel per world unit and saves it to path.
func ExportPNG(d *Diagram, path string) error {
	bounds, ok := diagramBounds(d)
	if !ok {
		return errNothingToExport
	}
	minX := bounds.X - exportPadding
	minY := bounds.Y - exportPadding
	imageWidth := int(bounds.Width + 2*exportPadding)
	imageHeight := int(bounds.Height + 2*exportPadding)
	if imageWidth > maxExportSide || imageHeight > maxExportSide {
		return fmt.Errorf("%w: %dx%d pixels", errExportTooLarge, imageWidth, imageHeight)
	}

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}

	// Lines first so blocks cover them.
	for _, l := range d.Lines() {
		drawLinePNG(dc, l, minX, minY)
	}
	for _, b := range d.Blocks() {
		drawBlockPNG(dc, b, ttfFont, minX, minY)
		for _, p := range b.Ports {
			drawPortPNG(dc, p, ttfFont, minX, minY)
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

func fontFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func drawLinePNG(dc *gg.Context, l *Line, minX, minY float64) {
	dc.SetColor(colorRGBA(l.Stroke))
	dc.SetLineWidth(l.StrokeWidth)
	dc.SetDash(l.Dash...)
	dc.DrawLine(l.Start.X-minX, l.Start.Y-minY, l.End.X-minX, l.End.Y-minY)
	dc.Stroke()
	dc.SetDash()
}

func drawBlockPNG(dc *gg.Context, b *Block, f *truetype.Font, minX, minY float64) {
	r := b.Bounds()
	dc.SetColor(colorRGBA(b.Color))
	dc.DrawRectangle(r.X-minX, r.Y-minY, r.Width, r.Height)
	dc.Fill()

	dc.SetFontFace(fontFace(f, 16))
	dc.SetColor(color.White)
	dc.DrawStringAnchored(b.Label, b.Center.X-minX, b.Center.Y-minY, 0.5, 0.5)
}

func drawPortPNG(dc *gg.Context, p *Port, f *truetype.Font, minX, minY float64) {
	r := p.Bounds()
	dc.SetColor(colorRGBA(portColor(p.Side)))
	dc.DrawRectangle(r.X-minX, r.Y-minY, r.Width, r.Height)
	dc.Fill()

	dc.SetFontFace(fontFace(f, 12))
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(p.Label, p.Center.X-minX, p.Center.Y+p.Size-minY, 0.5, 0.5)
}
