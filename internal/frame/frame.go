// Package frame defines the payload that flows through the pipeline: a raw
// RGBA image, owned by exactly one stage at a time.
package frame

import "time"

// Frame is one synthetic image. Pix holds raw RGBA pixel data with a stride
// of 4*Width; ownership passes to whoever receives the frame, so it is never
// mutated after creation.
type Frame struct {
	Pix       []byte
	Width     int
	Height    int
	CreatedAt time.Time
}

// Size returns the payload size in bytes.
func (f Frame) Size() int {
	return len(f.Pix)
}
