// Package render draws snapshots of the smartcab world
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/samuelfneumann/smartcab/environment"
	"github.com/samuelfneumann/smartcab/environment/smartcab"
	"github.com/samuelfneumann/smartcab/traffic"
)

// Sizes in pixels
const (
	CellSize  = 80.0
	Margin    = 50.0
	CarRadius = 12.0
)

var (
	Background  = color.RGBA{255, 255, 255, 255}
	Road        = color.RGBA{170, 170, 170, 255}
	GreenLight  = color.RGBA{0, 170, 0, 255}
	Destination = color.RGBA{220, 20, 60, 255}
	DummyCar    = color.RGBA{30, 90, 200, 255}
	PrimaryCar  = color.RGBA{255, 140, 0, 255}
	Windshield  = color.RGBA{20, 20, 20, 255}
	Text        = color.RGBA{0, 0, 0, 255}
)

// Size returns the size in pixels of the image of a world with cols x
// rows intersections
func Size(cols, rows int) (width, height int) {
	return int(2*Margin + float64(cols-1)*CellSize),
		int(2*Margin + float64(rows-1)*CellSize)
}

// Centre returns the pixel coordinates of the centre of intersection l
func Centre(l environment.Location) (x, y float64) {
	return Margin + float64(l.X)*CellSize, Margin + float64(l.Y)*CellSize
}

// Draw draws the world: the roads, the open direction of each traffic
// light, the destination, and every car with its heading
func Draw(w *smartcab.World) image.Image {
	cols, rows := w.Dims()
	width, height := Size(cols, rows)

	dc := gg.NewContext(width, height)
	dc.SetColor(Background)
	dc.Clear()

	// Roads
	dc.SetColor(Road)
	dc.SetLineWidth(4.0)
	for x := 0; x < cols; x++ {
		cx, _ := Centre(environment.Location{X: x})
		dc.DrawLine(cx, 0, cx, float64(height))
	}
	for y := 0; y < rows; y++ {
		_, cy := Centre(environment.Location{Y: y})
		dc.DrawLine(0, cy, float64(width), cy)
	}
	dc.Stroke()

	// Lights, drawn along the axis that has the green light
	dc.SetColor(GreenLight)
	dc.SetLineWidth(6.0)
	half := CellSize / 4
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			l := environment.Location{X: x, Y: y}
			cx, cy := Centre(l)
			if w.LightAt(l).NorthSouth() {
				dc.DrawLine(cx, cy-half, cx, cy+half)
			} else {
				dc.DrawLine(cx-half, cy, cx+half, cy)
			}
		}
	}
	dc.Stroke()

	// Destination
	dx, dy := Centre(w.Destination())
	dc.SetColor(Destination)
	dc.SetLineWidth(3.0)
	dc.DrawCircle(dx, dy, 2*CarRadius)
	dc.Stroke()

	for _, car := range w.Dummies() {
		drawCar(dc, car, DummyCar)
	}
	drawCar(dc, w.Primary(), PrimaryCar)

	dc.SetColor(Text)
	dc.DrawString(fmt.Sprintf("t = %d  deadline = %d", w.Time(),
		w.Deadline()), 10, 15)

	return dc.Image()
}

// drawCar draws a car as a filled circle with a dot towards its heading
func drawCar(dc *gg.Context, car smartcab.Car, c color.Color) {
	x, y := Centre(car.Location)
	dc.SetColor(c)
	dc.DrawCircle(x, y, CarRadius)
	dc.Fill()

	h := car.Heading
	if h == (traffic.Heading{}) {
		return
	}
	dc.SetColor(Windshield)
	dc.DrawCircle(x+0.6*CarRadius*float64(h.DX),
		y+0.6*CarRadius*float64(h.DY), CarRadius/4)
	dc.Fill()
}

// Snapshot draws the world and saves it as a PNG to filename
func Snapshot(w *smartcab.World, filename string) error {
	if err := gg.SavePNG(filename, Draw(w)); err != nil {
		return fmt.Errorf("snapshot: could not save %v: %v", filename, err)
	}
	return nil
}
