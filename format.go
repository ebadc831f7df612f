package aural

import (
	"encoding/binary"
	"io"
)

// Format identifies the audio container/codec a Stream or Buffer
// source file is encoded in.
type Format int

const (
	FormatUnknown Format = iota
	FormatWAV
	FormatOggVorbis
	FormatMPEG
	FormatFLAC
)

func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatOggVorbis:
		return "ogg vorbis"
	case FormatMPEG:
		return "mpeg"
	case FormatFLAC:
		return "flac"
	default:
		return "unknown"
	}
}

// SniffFormat peeks at the first 12 bytes of r (which must be
// positioned at the start of the file) and identifies its container
// by magic bytes, the same three 4-byte words the original format
// sniffer reads. It does not consume more than it needs to decide,
// but it does not rewind r either; callers sniffing a seekable source
// should seek back to 0 afterward.
func SniffFormat(r io.Reader) (Format, error) {
	var magic [12]byte
	n, err := io.ReadFull(r, magic[:])
	if err != nil && n < 4 {
		return FormatUnknown, newErr("SniffFormat", ErrBadAudio)
	}

	w0 := binary.LittleEndian.Uint32(magic[0:4])
	w1 := binary.LittleEndian.Uint32(magic[4:8])
	w2 := binary.LittleEndian.Uint32(magic[8:12])

	const (
		riff = 0x46464952 // "RIFF" little-endian
		wave = 0x45564157 // "WAVE"
		oggs = 0x5367674f // "OggS"
		apet = 0x54455041 // "APET"
		agex = 0x58454741 // "AGEX"
	)

	switch w0 {
	case riff:
		if w2 == wave {
			return FormatWAV, nil
		}
	case oggs:
		return FormatOggVorbis, nil
	case apet:
		if w1 == agex {
			return FormatMPEG, nil
		}
	}

	// ID3v1 "TAG", ID3v2 "ID3", or an MPEG frame sync word, each
	// checked the same masked way the original magic-number compare
	// does to tolerate the trailing byte not mattering.
	const (
		tagMask = 0x00474154 // "TAG\0" little-endian, low 3 bytes
		id3Mask = 0x00334449 // "ID3\0"
		syncW   = 0xf0ff
	)
	if w0&0x00ffffff == tagMask&0x00ffffff ||
		w0&0x00ffffff == id3Mask&0x00ffffff ||
		w0&syncW == syncW {
		return FormatMPEG, nil
	}

	// flac isn't in the original catalog; recognized here as a bonus
	// format (see SPEC_FULL.md domain-stack expansion) via its own
	// "fLaC" magic, independent of the RIFF/Ogg/MPEG cascade above.
	if w0 == 0x43614c66 { // "fLaC"
		return FormatFLAC, nil
	}

	return FormatUnknown, newErr("SniffFormat", ErrBadAudio)
}

// EnsureFormatKnown returns fmt unchanged if it is already known, or
// sniffs r for it otherwise.
func EnsureFormatKnown(r io.Reader, fmt Format) (Format, error) {
	if fmt != FormatUnknown {
		return fmt, nil
	}
	return SniffFormat(r)
}
