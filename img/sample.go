package img

import (
	"math"

	"github.com/banshee-data/sightline/semerr"
)

// Sample bilinearly interpolates the image at continuous point p under the
// pixel-center convention, returning one value per channel. Between the
// border pixel centers and the image edge, sampling clamps to the border
// row or column. A point outside [0, w] x [0, h] is a BoundsError.
func Sample[T Float](im Image[T], p PointF) ([]T, error) {
	if !im.Domain().Contains(p) {
		return nil, &semerr.BoundsError{X: p.X, Y: p.Y, Width: im.w, Height: im.h}
	}

	u := p.X - 0.5
	v := p.Y - 0.5
	x0 := int(math.Floor(u))
	y0 := int(math.Floor(v))
	fx := u - float64(x0)
	fy := v - float64(y0)

	x1 := clampIdx(x0+1, im.w-1)
	y1 := clampIdx(y0+1, im.h-1)
	x0 = clampIdx(x0, im.w-1)
	y0 = clampIdx(y0, im.h-1)

	ch := im.Channels()
	out := make([]T, ch)
	for c := 0; c < ch; c++ {
		v00 := float64(im.data[(y0*im.w+x0)*ch+c])
		v10 := float64(im.data[(y0*im.w+x1)*ch+c])
		v01 := float64(im.data[(y1*im.w+x0)*ch+c])
		v11 := float64(im.data[(y1*im.w+x1)*ch+c])
		top := (1-fx)*v00 + fx*v10
		bot := (1-fx)*v01 + fx*v11
		out[c] = T((1-fy)*top + fy*bot)
	}
	return out, nil
}

func clampIdx(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}
