package hal

import "image"

// rgbaSnapshotter is implemented by framebuffers that copy their pixels
// under their own lock.
type rgbaSnapshotter interface {
	snapshotRGBA(dst *image.RGBA, scratch []byte)
}

// Snapshot returns a copy of fb as an RGBA image. Only RGB565 framebuffers are supported.
func Snapshot(fb Framebuffer) (*image.RGBA, error) {
	if fb == nil || fb.Format() != PixelFormatRGB565 {
		return nil, ErrNotImplemented
	}
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	if s, ok := fb.(rgbaSnapshotter); ok {
		s.snapshotRGBA(img, make([]byte, fb.Height()*fb.StrideBytes()))
		return img, nil
	}

	buf := fb.Buffer()
	stride := fb.StrideBytes()
	for y := 0; y < fb.Height(); y++ {
		row := buf[y*stride:]
		if len(row) > fb.Width()*2 {
			row = row[:fb.Width()*2]
		}
		expandRGB565(img.Pix[y*img.Stride:], row)
	}
	return img, nil
}
