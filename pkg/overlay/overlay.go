package overlay

import (
	"errors"
	"image"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Detection is one model-identified region on an X-ray: a class label plus
// bounding geometry. X and Y are the centroid of the axis-aligned bounding
// box. Points, when present, outline the detected region in image pixel
// coordinates.
type Detection struct {
	Class      string  `json:"class"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Confidence float64 `json:"confidence,omitempty"`
	Points     []Point `json:"points,omitempty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LabelBox is the on-image rectangle reserved for a detection's caption.
type LabelBox struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

const (
	labelPad     = 5.0
	maxNudges    = 10
	fillAlpha    = 0.4
	labelBgAlpha = 0.7
	baseFontSize = 16.0
)

var ErrNilImage = errors.New("overlay: nil source image")

var (
	fontOnce   sync.Once
	fontParsed *truetype.Font
	fontErr    error
)

func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		fontParsed, fontErr = truetype.Parse(goregular.TTF)
	})
	return fontParsed, fontErr
}

func newFace(size float64) (font.Face, error) {
	f, err := loadFont()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

// Intersects reports whether two label boxes collide. Touching edges count
// as a collision, so adjacent captions still get nudged apart.
func Intersects(a, b LabelBox) bool {
	return !(a.X2 < b.X1 || a.X1 > b.X2 || a.Y2 < b.Y1 || a.Y1 > b.Y2)
}

func candidateBox(x, y, textW, textH float64) LabelBox {
	return LabelBox{
		X1: x - labelPad,
		Y1: y - textH - 2*labelPad,
		X2: x + textW + labelPad,
		Y2: y + labelPad,
	}
}

// placeLabel searches for a caption position that avoids the already placed
// boxes. Even iterations shift up, odd iterations shift right. The search
// gives up after maxNudges attempts and accepts the last candidate, so a
// crowded image can still end up with residual overlap.
func placeLabel(x, y, textW, textH float64, placed []LabelBox) (LabelBox, float64, float64, int) {
	box := candidateBox(x, y, textW, textH)
	nudges := 0

	for overlapsAny(box, placed) && nudges < maxNudges {
		if nudges%2 == 0 {
			y -= textH + 2*labelPad + 5
		} else {
			x += textW + 2*labelPad + 5
		}
		box = candidateBox(x, y, textW, textH)
		nudges++
	}

	return box, x, y, nudges
}

func overlapsAny(box LabelBox, placed []LabelBox) bool {
	for _, p := range placed {
		if Intersects(box, p) {
			return true
		}
	}
	return false
}

// Render draws the detections over img and returns a new image of the same
// dimensions: translucent polygon fills for detections that carry an
// outline, and one caption per detection placed by the nudge search.
// Detections are processed strictly in input order; each placement depends
// on all previous ones, which is part of the contract.
func Render(img image.Image, detections []Detection, colors map[string]string) (*image.NRGBA, error) {
	return render(img, detections, colors, baseFontSize, nil)
}

// RenderCollect is Render plus the accepted caption boxes in placement
// order, for callers that will add more captions incrementally and need the
// occupied positions.
func RenderCollect(img image.Image, detections []Detection, colors map[string]string) (*image.NRGBA, []LabelBox, error) {
	boxes := make([]LabelBox, 0, len(detections))
	out, err := render(img, detections, colors, baseFontSize, func(box LabelBox) {
		boxes = append(boxes, box)
	})
	if err != nil {
		return nil, nil, err
	}
	return out, boxes, nil
}

// RenderOne adds a single caption (and fill, if the detection has an
// outline) on top of an already annotated image. The font size is scaled by
// the image width so late additions match captions drawn at upload time.
// placed holds the boxes already on the image; the accepted box is returned
// so the caller can persist it for the next addition.
func RenderOne(img image.Image, det Detection, colors map[string]string, placed []LabelBox) (*image.NRGBA, LabelBox, error) {
	scale := float64(img.Bounds().Dx()) / 1000.0
	if scale < 0.5 {
		scale = 0.5
	}

	var accepted LabelBox
	out, err := render(img, []Detection{det}, colors, baseFontSize*scale, func(box LabelBox) {
		accepted = box
	}, placed...)
	if err != nil {
		return nil, LabelBox{}, err
	}
	return out, accepted, nil
}

func render(img image.Image, detections []Detection, colors map[string]string, fontSize float64, onPlaced func(LabelBox), placed ...LabelBox) (*image.NRGBA, error) {
	if img == nil {
		return nil, ErrNilImage
	}

	face, err := newFace(fontSize)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContextForImage(img)
	dc.SetFontFace(face)

	boxes := make([]LabelBox, len(placed))
	copy(boxes, placed)

	for _, det := range detections {
		hex, ok := colors[det.Class]
		if !ok {
			hex = defaultColor
		}
		r, g, b := hexRGB(hex)

		if len(det.Points) >= 3 {
			dc.SetRGBA(float64(r)/255, float64(g)/255, float64(b)/255, fillAlpha)
			dc.MoveTo(det.Points[0].X, det.Points[0].Y)
			for _, p := range det.Points[1:] {
				dc.LineTo(p.X, p.Y)
			}
			dc.ClosePath()
			dc.Fill()
		}

		anchorX := det.X - det.Width/2
		anchorY := det.Y - det.Height/2

		textW, textH := dc.MeasureString(det.Class)

		box, x, y, _ := placeLabel(anchorX, anchorY, textW, textH, boxes)
		boxes = append(boxes, box)
		if onPlaced != nil {
			onPlaced(box)
		}

		dc.SetRGBA(0, 0, 0, labelBgAlpha)
		dc.DrawRectangle(box.X1, box.Y1, box.X2-box.X1, box.Y2-box.Y1)
		dc.Fill()

		dc.SetRGB255(int(r), int(g), int(b))
		dc.DrawString(det.Class, x, y)
	}

	return finish(dc.Image()), nil
}

// finish applies the uniform contrast/brightness pass (v*1.1 + 5, clamped)
// that the annotated output always gets, detections or not.
func finish(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i] = clamp(float64(out.Pix[i])*1.1 + 5)
		out.Pix[i+1] = clamp(float64(out.Pix[i+1])*1.1 + 5)
		out.Pix[i+2] = clamp(float64(out.Pix[i+2])*1.1 + 5)
	}
	return out
}

func clamp(v float64) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
