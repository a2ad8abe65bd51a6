package turtle

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// BoundingBox is an integer extent. XMin <= XMax and YMin <= YMax.
type BoundingBox struct {
	XMin, XMax int
	YMin, YMax int
}

func (b BoundingBox) Width() int {
	return b.XMax - b.XMin
}

func (b BoundingBox) Height() int {
	return b.YMax - b.YMin
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", b.XMin, b.XMax, b.YMin, b.YMax)
}

// Extent returns the bounding box of the walk described by symbols, starting
// at the origin. The box always contains the origin.
func Extent(symbols string, length, angle float64) (BoundingBox, error) {
	var acc extentAccumulator
	if err := walk(symbols, vec.Vec2{}, length, angle, &acc); err != nil {
		return BoundingBox{}, err
	}
	return boxFromFloat(acc.xmin, acc.xmax, acc.ymin, acc.ymax)
}

type extentAccumulator struct {
	xmin, xmax float64
	ymin, ymax float64
}

func (a *extentAccumulator) line(_, to vec.Vec2) {
	a.xmin = math.Min(a.xmin, to.X)
	a.xmax = math.Max(a.xmax, to.X)
	a.ymin = math.Min(a.ymin, to.Y)
	a.ymax = math.Max(a.ymax, to.Y)
}

func (a *extentAccumulator) restore(vec.Vec2) {}

// boxFromFloat rounds a real-valued extent outwards to integers.
func boxFromFloat(xmin, xmax, ymin, ymax float64) (BoundingBox, error) {
	if xmin > xmax || ymin > ymax {
		return BoundingBox{}, fmt.Errorf("%w: x [%g, %g], y [%g, %g]", ErrInvalidExtent, xmin, xmax, ymin, ymax)
	}
	return BoundingBox{
		XMin: int(math.Floor(xmin)),
		XMax: int(math.Ceil(xmax)),
		YMin: int(math.Floor(ymin)),
		YMax: int(math.Ceil(ymax)),
	}, nil
}
