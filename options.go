package ppm

// DecodeOptions holds the header validation policy.
type DecodeOptions struct {
	// Reject zero width, height or depth as a format error
	rejectZero bool

	// Ceilings; zero means unlimited
	maxPixels uint64
	maxDepth  uint32
}

// defaultOptions returns the default decode options.
func defaultOptions() DecodeOptions {
	return DecodeOptions{
		rejectZero: true,
		maxPixels:  0,
		maxDepth:   0,
	}
}

// validate applies the policy to a decoded header.
func (o DecodeOptions) validate(h Header) error {
	if o.rejectZero {
		switch {
		case h.Width == 0:
			return newFormatError("width is zero")
		case h.Height == 0:
			return newFormatError("height is zero")
		case h.Depth == 0:
			return newFormatError("depth is zero")
		}
	}
	if o.maxPixels > 0 && h.Pixels() > o.maxPixels {
		return newFormatError("%dx%d image exceeds the limit of %d pixels", h.Width, h.Height, o.maxPixels)
	}
	if o.maxDepth > 0 && h.Depth > o.maxDepth {
		return newFormatError("depth %d exceeds the limit of %d", h.Depth, o.maxDepth)
	}
	return nil
}
