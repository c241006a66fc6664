package collider

import "image"

// rowSpan is the horizontal extent of opaque pixels within one image row.
type rowSpan struct {
	minX, maxX int
	opaque     bool
}

// FromImage approximates an image's opaque silhouette as a vertical stack
// of circles. Rows are grouped into bands of height/10 consecutive rows;
// each band becomes one circle whose center x is the mean of the per-row
// span midpoints, whose radius is half the widest span in the band, and
// whose center y sits at the band's bottom edge in image coordinates.
//
// Images shorter than 10 rows produce no circles. Bands containing only
// transparent rows are skipped, though they still advance the vertical
// offset so later circles stay aligned with the sprite.
func FromImage(img image.Image) []Circle {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	rowsPerBand := height / 10
	if rowsPerBand < 1 || width == 0 {
		return nil
	}

	spans := make([]rowSpan, height)
	for y := 0; y < height; y++ {
		span := rowSpan{}
		for x := 0; x < width; x++ {
			_, _, _, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a == 0 {
				continue
			}
			if !span.opaque {
				span.minX = x
				span.opaque = true
			}
			span.maxX = x
		}
		spans[y] = span
	}

	var circles []Circle
	offset := 0.0
	for start := 0; start < height; start += rowsPerBand {
		end := start + rowsPerBand
		if end > height {
			end = height
		}
		bandHeight := float64(end - start)

		minX, maxX := 0, 0
		midSum := 0.0
		opaqueRows := 0
		for y := start; y < end; y++ {
			span := spans[y]
			if !span.opaque {
				continue
			}
			if opaqueRows == 0 || span.minX < minX {
				minX = span.minX
			}
			if opaqueRows == 0 || span.maxX > maxX {
				maxX = span.maxX
			}
			midSum += float64(span.minX+span.maxX) / 2
			opaqueRows++
		}

		offset += bandHeight
		if opaqueRows == 0 {
			continue
		}

		circles = append(circles, Circle{
			X: midSum / float64(opaqueRows),
			Y: offset,
			R: float64(maxX-minX) / 2,
		})
	}

	return circles
}
