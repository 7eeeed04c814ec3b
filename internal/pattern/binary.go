package pattern

import (
	"encoding/binary"
	"fmt"
	"io"

	"life-sim/internal/core"
)

// binaryHeaderLen is the size of the rows/cols header: two big-endian int32.
const binaryHeaderLen = 8

// EncodeBinary serialises g as <rows:int32><cols:int32><cell:byte>*rows*cols,
// big-endian, one byte (0 or 1) per cell.
func EncodeBinary(g *core.Grid) []byte {
	cells := g.Cells()
	out := make([]byte, binaryHeaderLen+len(cells))
	binary.BigEndian.PutUint32(out[0:4], uint32(int32(g.Rows())))
	binary.BigEndian.PutUint32(out[4:8], uint32(int32(g.Cols())))
	for i, c := range cells {
		if c {
			out[binaryHeaderLen+i] = 1
		}
	}
	return out
}

// WriteBinary writes the binary encoding of g to w.
func WriteBinary(w io.Writer, g *core.Grid) error {
	if _, err := w.Write(EncodeBinary(g)); err != nil {
		return fmt.Errorf("write binary pattern: %w", err)
	}
	return nil
}

// DecodeBinary parses the binary dump. Any non-zero cell byte is live and
// bytes after the payload are ignored.
func DecodeBinary(data []byte) (*core.Grid, error) {
	if len(data) < binaryHeaderLen {
		return nil, &DecodeError{Format: FormatBinary, Pos: len(data), Err: ErrTruncated}
	}
	rows := int64(int32(binary.BigEndian.Uint32(data[0:4])))
	cols := int64(int32(binary.BigEndian.Uint32(data[4:8])))
	if rows <= 0 || cols <= 0 {
		return nil, &DecodeError{
			Format: FormatBinary,
			Err:    fmt.Errorf("%w: %dx%d", ErrDimensions, cols, rows),
		}
	}
	if rows > core.MaxSide || cols > core.MaxSide {
		return nil, &DecodeError{
			Format: FormatBinary,
			Err:    fmt.Errorf("%w: %dx%d exceeds %d per side", ErrDimensions, cols, rows, core.MaxSide),
		}
	}
	total := rows * cols
	payload := data[binaryHeaderLen:]
	if int64(len(payload)) < total {
		return nil, &DecodeError{
			Format: FormatBinary,
			Pos:    len(data),
			Err:    fmt.Errorf("%w: need %d cells, have %d", ErrTruncated, total, len(payload)),
		}
	}

	g := core.NewGrid(int(cols), int(rows))
	cells := g.Cells()
	for i := range cells {
		cells[i] = payload[i] != 0
	}
	return g, nil
}

// ReadBinary reads all of r and decodes it as a binary dump.
func ReadBinary(r io.Reader) (*core.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read binary pattern: %w", err)
	}
	return DecodeBinary(data)
}
