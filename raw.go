package aural

// RawAttr describes the shape of a raw PCM region: bit depth,
// channel count, and sample rate.
type RawAttr struct {
	BitDepth   int // 8 or 16
	Channels   int // 1 (mono) or 2 (stereo)
	SampleRate int // Hz
}

// RawPCM is a growable, owned region of interleaved PCM sample bytes
// plus the attributes describing how to interpret them. It backs both
// Buffer uploads (whole-file decode) and Stream chunk reads.
type RawPCM struct {
	data []byte
	attr RawAttr
}

// NewRawPCM returns an empty RawPCM.
func NewRawPCM() *RawPCM {
	return &RawPCM{}
}

// Attr returns the PCM's current attributes.
func (r *RawPCM) Attr() RawAttr { return r.attr }

// SetAttr replaces the PCM's attributes without touching its data.
func (r *RawPCM) SetAttr(a RawAttr) { r.attr = a }

// Size returns the number of bytes currently holding valid data.
// Unlike the backing slice's capacity, this is the "used" length.
func (r *RawPCM) Size() int { return len(r.data) }

// Data returns the backing bytes. The slice is owned by the RawPCM;
// callers must not retain it past the RawPCM's next mutation.
func (r *RawPCM) Data() []byte { return r.data }

// Reset truncates the PCM to zero length without releasing its
// backing capacity, so a caller can reuse it for the next chunk pull.
func (r *RawPCM) Reset() { r.data = r.data[:0] }

// EnsureSize grows the backing slice, if necessary, so that it can
// hold at least n bytes, doubling capacity the way the original's
// realloc-based grow strategy does. It never shrinks.
func (r *RawPCM) EnsureSize(n int) {
	if cap(r.data) >= n {
		return
	}
	grown := cap(r.data)
	if grown == 0 {
		grown = n
	}
	for grown < n {
		grown *= 2
	}
	next := make([]byte, len(r.data), grown)
	copy(next, r.data)
	r.data = next
}

// Append grows the PCM by appending b to its data and returns the new
// size.
func (r *RawPCM) Append(b []byte) int {
	r.EnsureSize(len(r.data) + len(b))
	r.data = append(r.data, b...)
	return len(r.data)
}

// SetData replaces the PCM's bytes wholesale (used by a full decode
// into a fresh region), along with its attributes.
func (r *RawPCM) SetData(b []byte, attr RawAttr) {
	r.data = b
	r.attr = attr
}
