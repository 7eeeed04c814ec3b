package pattern

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"life-sim/internal/core"
)

// Format identifies an external pattern representation.
type Format int

const (
	// FormatUnknown is returned when no format matches.
	FormatUnknown Format = iota
	// FormatBinary is the rows/cols header plus one byte per cell dump.
	FormatBinary
	// FormatRLE is the run-length text format.
	FormatRLE
	// FormatImage is any raster image decodable by the image package.
	FormatImage
)

func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatRLE:
		return "rle"
	case FormatImage:
		return "image"
	default:
		return "unknown"
	}
}

var extFormats = map[string]Format{
	".gol":  FormatBinary,
	".rle":  FormatRLE,
	".png":  FormatImage,
	".gif":  FormatImage,
	".jpg":  FormatImage,
	".jpeg": FormatImage,
	".bmp":  FormatImage,
	".tif":  FormatImage,
	".tiff": FormatImage,
}

// DetectFormat picks a format from the file extension of name.
func DetectFormat(name string) Format {
	return extFormats[strings.ToLower(filepath.Ext(name))]
}

// Decode parses data in the given format. Images are decoded without
// inversion.
func Decode(data []byte, format Format) (*core.Grid, error) {
	switch format {
	case FormatBinary:
		return DecodeBinary(data)
	case FormatRLE:
		return DecodeRLE(bytes.NewReader(data))
	case FormatImage:
		return DecodeImage(bytes.NewReader(data), false)
	default:
		return nil, &DecodeError{Format: format, Err: ErrUnknownFormat}
	}
}

// ReadFile loads and decodes the pattern stored at path, choosing the
// decoder by extension.
func ReadFile(path string) (*core.Grid, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	g, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Encode serialises g in the given format. Images cannot be written.
func Encode(g *core.Grid, format Format) ([]byte, error) {
	switch format {
	case FormatBinary:
		return EncodeBinary(g), nil
	case FormatRLE:
		return []byte(EncodeRLEString(g)), nil
	default:
		return nil, fmt.Errorf("encode %s: %w", format, ErrUnknownFormat)
	}
}
