package widget

import (
	"github.com/AllenDang/giu"
	"image"
	"image/color"
	"math"
	"time"
)

var spinnerColor = color.RGBA{R: 140, G: 184, B: 255, A: 255}

type LoadingWidget struct {
	label string
}

func Loading(label string) *LoadingWidget {
	return &LoadingWidget{label: label}
}

func (s *LoadingWidget) Build() {
	regionWidth, regionHeight := giu.GetAvailableRegion()
	start := giu.GetCursorScreenPos()
	center := start.Add(image.Pt(int(regionWidth/2), int(regionHeight/2)))

	canvas := giu.GetCanvas()
	drawSpinner(canvas, center, 24)
	canvas.AddText(image.Pt(center.X-len(s.label)*7/2, center.Y+40), captionColor, s.label)
	giu.Dummy(regionWidth, regionHeight).Build()

	// keep the spinner moving
	giu.Update()
}

// drawSpinner draws a rotating arc of dots around center.
func drawSpinner(canvas *giu.Canvas, center image.Point, radius float64) {
	const dots = 12
	phase := float64(time.Now().UnixNano()/int64(time.Millisecond)%1200) / 1200
	for i := 0; i < dots; i++ {
		angle := 2 * math.Pi * (float64(i)/dots + phase)
		p := image.Pt(center.X+int(radius*math.Cos(angle)), center.Y+int(radius*math.Sin(angle)))
		alpha := uint8(255 * (i + 1) / dots)
		canvas.AddCircleFilled(p, float32(radius/8), color.RGBA{R: spinnerColor.R, G: spinnerColor.G, B: spinnerColor.B, A: alpha})
	}
}
