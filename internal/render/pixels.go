package render

// FillRGBA converts the frame into opaque RGBA bytes in buf, which must hold
// at least 4*W*H bytes. Shorter buffers are left untouched.
func (f *Frame) FillRGBA(buf []byte) {
	if len(buf) < 4*len(f.pix) {
		return
	}
	for i, c := range f.pix {
		base := i * 4
		buf[base+0] = uint8(c >> 16)
		buf[base+1] = uint8(c >> 8)
		buf[base+2] = uint8(c)
		buf[base+3] = 0xff
	}
}
