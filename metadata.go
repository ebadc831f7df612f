package aural

import (
	"github.com/bogem/id3v2/v2"
	flac "github.com/go-flac/go-flac"
	"github.com/go-flac/flacpicture"
)

// CoverArt is an image embedded alongside a track's audio data.
type CoverArt struct {
	MIME string
	Data []byte
}

// Metadata is the descriptive tag information a file may carry
// alongside its PCM content. This is not part of the original
// library's contract (it has no concept of tags at all) but is a
// useful, additive accessor, read straight from a file path by
// ReadMetadata, since the corpus already brings an ID3/FLAC-picture
// stack along for the ride.
type Metadata struct {
	Title  string
	Artist string
	Album  string
	Cover  *CoverArt
}

// ReadMetadata extracts whatever tag data path's container format
// supports. MPEG files are read via ID3v2 (github.com/bogem/id3v2);
// FLAC files carry their picture in a METADATA_BLOCK_PICTURE, parsed
// via github.com/go-flac/go-flac + github.com/go-flac/flacpicture. WAV
// and Ogg Vorbis carry no tag format this engine reads, so it returns
// an empty, non-nil Metadata rather than an error.
func ReadMetadata(path string, format Format) (*Metadata, error) {
	switch format {
	case FormatMPEG:
		return readID3Metadata(path)
	case FormatFLAC:
		return readFLACMetadata(path)
	default:
		return &Metadata{}, nil
	}
}

func readID3Metadata(path string) (*Metadata, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, newErr("ReadMetadata", ErrCannotOpenFile)
	}
	defer tag.Close()

	md := &Metadata{Title: tag.Title(), Artist: tag.Artist(), Album: tag.Album()}
	pictures := tag.GetFrames(tag.CommonID("Attached picture"))
	for _, f := range pictures {
		pic, ok := f.(id3v2.PictureFrame)
		if !ok {
			continue
		}
		md.Cover = &CoverArt{MIME: pic.MimeType, Data: pic.Picture}
		break
	}
	return md, nil
}

func readFLACMetadata(path string) (*Metadata, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return nil, newErr("ReadMetadata", ErrCannotOpenFile)
	}

	md := &Metadata{}
	for _, block := range f.Meta {
		if block.Type != flac.Picture {
			continue
		}
		pic, err := flacpicture.ParseFromMetaDataBlock(*block)
		if err != nil {
			continue
		}
		md.Cover = &CoverArt{MIME: pic.MIME, Data: pic.ImageData}
		break
	}
	return md, nil
}
