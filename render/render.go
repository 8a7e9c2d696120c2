// Package render draws planned trajectories and benchmark histograms as images.
package render

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"

	"go.viam.com/carplan/motionplan"
	"go.viam.com/carplan/motionplan/segments"
	"go.viam.com/carplan/spatialmath"
)

var font *truetype.Font

// init sets up the fonts we want to use.
func init() {
	var err error
	font, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

var (
	forwardColor  = color.RGBA{0, 150, 0, 255}
	backwardColor = color.RGBA{200, 0, 0, 255}
	startColor    = color.RGBA{0, 0, 200, 255}
	goalColor     = color.RGBA{200, 120, 0, 255}
)

// Options control the size and decoration of a rendered plan.
type Options struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
	// Border around the trajectory, in pixels.
	Margin float64 `json:"margin" yaml:"margin"`
	// Draw the turning circles at the start and goal.
	ShowCircles bool `json:"show_circles" yaml:"show_circles"`
	// Print the path word and length in the corner.
	ShowLabel bool `json:"show_label" yaml:"show_label"`
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 600, Margin: 40, ShowLabel: true}
}

// Validate checks that the image has room to draw in.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.Errorf("image size must be positive, got %dx%d", o.Width, o.Height)
	}
	if o.Margin < 0 || 2*o.Margin >= float64(min(o.Width, o.Height)) {
		return errors.Errorf("margin %v does not fit a %dx%d image", o.Margin, o.Width, o.Height)
	}
	return nil
}

// viewport maps world coordinates to pixels, keeping the aspect ratio and flipping y so that +y is up.
type viewport struct {
	min    r2.Point
	scale  float64
	offset r2.Point
	height float64
}

func newViewport(points []r2.Point, opts Options) viewport {
	rect := r2.RectFromPoints(points...)
	size := rect.Size()
	w := float64(opts.Width) - 2*opts.Margin
	h := float64(opts.Height) - 2*opts.Margin
	scale := math.Min(w/math.Max(size.X, 1e-9), h/math.Max(size.Y, 1e-9))
	if size.X == 0 && size.Y == 0 {
		scale = 1
	}
	return viewport{
		min:   rect.Lo(),
		scale: scale,
		offset: r2.Point{
			X: opts.Margin + (w-size.X*scale)/2,
			Y: opts.Margin + (h-size.Y*scale)/2,
		},
		height: float64(opts.Height),
	}
}

func (v viewport) toPixel(p r2.Point) r2.Point {
	q := p.Sub(v.min).Mul(v.scale).Add(v.offset)
	return r2.Point{X: q.X, Y: v.height - q.Y}
}

// DrawPlan renders the waypoints of a plan, colored by gear, with arrows at the start and goal.
func DrawPlan(plan *motionplan.Plan, opts Options) (image.Image, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if plan == nil || len(plan.Poses) == 0 {
		return nil, errors.New("plan has no waypoints to draw")
	}

	points := make([]r2.Point, 0, len(plan.Poses)+4)
	for _, pose := range plan.Poses {
		points = append(points, pose.Point())
	}
	points = append(points, plan.Goal.Point())
	if opts.ShowCircles {
		for _, pose := range []spatialmath.Pose{plan.Start, plan.Goal} {
			for _, c := range turningCenters(pose, plan.TurningRadius) {
				r := r2.Point{X: plan.TurningRadius, Y: plan.TurningRadius}
				points = append(points, c.Add(r), c.Sub(r))
			}
		}
	}
	vp := newViewport(points, opts)

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(color.White)
	dc.Clear()

	if opts.ShowCircles {
		dc.SetColor(color.RGBA{180, 180, 180, 255})
		dc.SetLineWidth(1)
		for _, pose := range []spatialmath.Pose{plan.Start, plan.Goal} {
			for _, c := range turningCenters(pose, plan.TurningRadius) {
				px := vp.toPixel(c)
				dc.DrawCircle(px.X, px.Y, plan.TurningRadius*vp.scale)
				dc.Stroke()
			}
		}
	}

	dc.SetLineWidth(2)
	for i := 1; i < len(plan.Poses); i++ {
		if plan.Gears[i] == segments.Backward {
			dc.SetColor(backwardColor)
		} else {
			dc.SetColor(forwardColor)
		}
		a := vp.toPixel(plan.Poses[i-1].Point())
		b := vp.toPixel(plan.Poses[i].Point())
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
		dc.Stroke()
	}

	drawArrow(dc, vp, plan.Start, startColor)
	drawArrow(dc, vp, plan.Goal, goalColor)

	if opts.ShowLabel {
		dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: 14}))
		dc.SetColor(color.Black)
		dc.DrawString(labelFor(plan), 8, 18)
	}
	return dc.Image(), nil
}

// SavePNG writes the image to path.
func SavePNG(path string, img image.Image) error {
	return errors.Wrapf(gg.SavePNG(path, img), "failed to save %s", path)
}

func labelFor(plan *motionplan.Plan) string {
	word := plan.Path.Word()
	if word == "" {
		word = "(at goal)"
	}
	return word + "  " + formatLength(plan.Length())
}

func formatLength(l float64) string {
	return "length " + strconv.FormatFloat(l, 'f', 3, 64)
}

func turningCenters(pose spatialmath.Pose, radius float64) []r2.Point {
	left := pose.Heading().Ortho().Mul(radius)
	return []r2.Point{pose.Point().Add(left), pose.Point().Sub(left)}
}

func drawArrow(dc *gg.Context, vp viewport, pose spatialmath.Pose, c color.Color) {
	const length = 18.
	tail := vp.toPixel(pose.Point())
	// pixel y grows downwards
	dir := r2.Point{X: math.Cos(pose.Theta()), Y: -math.Sin(pose.Theta())}
	head := tail.Add(dir.Mul(length))
	side := dir.Ortho().Mul(length / 3)
	back := head.Sub(dir.Mul(length / 2))

	dc.SetColor(c)
	dc.SetLineWidth(3)
	dc.DrawLine(tail.X, tail.Y, head.X, head.Y)
	dc.Stroke()
	dc.MoveTo(head.X, head.Y)
	dc.LineTo(back.X+side.X, back.Y+side.Y)
	dc.LineTo(back.X-side.X, back.Y-side.Y)
	dc.ClosePath()
	dc.Fill()
	dc.DrawCircle(tail.X, tail.Y, 4)
	dc.Fill()
}
