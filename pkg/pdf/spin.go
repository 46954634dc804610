package pdf

import (
	"fmt"
	"math"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Spin prepends a rotation-about-center transform to each page's content.
// A positive angle spins counter-clockwise. The media box is untouched, so
// the paper size and stated orientation stay as they were.
func (d *PDFDocument) Spin(angle float64, pages []int) error {
	for _, nr := range pages {
		if err := d.spinPage(nr, angle); err != nil {
			return err
		}
	}
	return nil
}

func (d *PDFDocument) spinPage(nr int, angle float64) error {
	pageDict, _, attrs, err := d.ctx.PageDict(nr, false)
	if err != nil {
		return fmt.Errorf("failed to get page dict for page %d: %w", nr, err)
	}

	box := attrs.MediaBox
	if attrs.CropBox != nil {
		box = attrs.CropBox
	}
	var cx, cy float64
	if box != nil {
		cx = box.LL.X + box.Width()/2
		cy = box.LL.Y + box.Height()/2
	} else {
		// US Letter default, matching pdfcpu's fallback.
		cx, cy = 612.0/2, 792.0/2
	}

	sd, err := d.ctx.NewStreamDictForBuf([]byte(SpinOp(angle, cx, cy)))
	if err != nil {
		return fmt.Errorf("failed to build content stream for page %d: %w", nr, err)
	}
	if err := sd.Encode(); err != nil {
		return fmt.Errorf("failed to encode content stream for page %d: %w", nr, err)
	}
	ir, err := d.ctx.IndRefForNewObject(*sd)
	if err != nil {
		return fmt.Errorf("failed to register content stream for page %d: %w", nr, err)
	}

	// Prepending means the transform applies to everything the page
	// already draws.
	switch obj := pageDict["Contents"].(type) {
	case types.IndirectRef:
		pageDict["Contents"] = types.Array{*ir, obj}
	case types.Array:
		pageDict["Contents"] = append(types.Array{*ir}, obj...)
	default:
		pageDict["Contents"] = *ir
	}
	return nil
}

// SpinOp returns the content-stream operation for a pure rotation by angle
// degrees counter-clockwise about (cx, cy): the rotation matrix combined
// with the translation that keeps the center fixed.
//
// With A the rotation and r0 the center, the fixed point requires
// t = r0 - A·r0.
func SpinOp(angle, cx, cy float64) string {
	rad := angle * math.Pi / 180
	c := math.Cos(rad)
	s := math.Sin(rad)
	tx := cx - c*cx + s*cy
	ty := cy - s*cx - c*cy
	return fmt.Sprintf("%.5f %.5f %.5f %.5f %.5f %.5f cm\n", c, s, -s, c, tx, ty)
}
