package pattern

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"life-sim/internal/core"
)

// rleLineWidth is the column at which EncodeRLE wraps body lines.
const rleLineWidth = 70

// DecodeRLE parses the run-length text format. Comment (#) and blank lines
// before the "x = <cols>, y = <rows>" header are skipped; extra header
// fields such as rule are ignored. Body characters other than digits, b, o,
// $ and ! are ignored.
func DecodeRLE(r io.Reader) (*core.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var dec *rleDecoder
	line := 0
	for sc.Scan() {
		line++
		text := sc.Bytes()
		if dec == nil {
			trimmed := bytes.TrimSpace(text)
			if len(trimmed) == 0 || trimmed[0] == '#' {
				continue
			}
			cols, rows, err := parseRLEHeader(string(trimmed))
			if err != nil {
				return nil, &DecodeError{Format: FormatRLE, Pos: line, Err: err}
			}
			dec = newRLEDecoder(cols, rows)
			continue
		}
		if dec.feed(text) {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &DecodeError{Format: FormatRLE, Pos: line, Err: err}
	}
	if dec == nil {
		return nil, &DecodeError{Format: FormatRLE, Pos: line, Err: fmt.Errorf("%w: no x/y header", ErrBadHeader)}
	}
	return dec.grid, nil
}

// DecodeRLEString is DecodeRLE over a string.
func DecodeRLEString(s string) (*core.Grid, error) {
	return DecodeRLE(strings.NewReader(s))
}

func parseRLEHeader(line string) (int, int, error) {
	cols, rows := -1, -1
	for _, field := range strings.Split(line, ",") {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return 0, 0, fmt.Errorf("%w: field %q", ErrBadHeader, strings.TrimSpace(field))
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "x", "y":
			n, err := strconv.Atoi(value)
			if err != nil {
				return 0, 0, fmt.Errorf("%w: %s = %q", ErrBadHeader, key, value)
			}
			if key == "x" {
				cols = n
			} else {
				rows = n
			}
		}
	}
	if cols < 0 || rows < 0 {
		return 0, 0, fmt.Errorf("%w: missing x or y", ErrBadHeader)
	}
	if cols == 0 || rows == 0 || cols > core.MaxSide || rows > core.MaxSide {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrDimensions, cols, rows)
	}
	return cols, rows, nil
}

// rleDecoder is the body state machine: a pending repeat count and a cursor
// that wraps to the next row explicitly on $ or implicitly at the right edge.
type rleDecoder struct {
	grid     *core.Grid
	cols     int
	rows     int
	x, y     int
	count    int
	hasCount bool
	limit    int
	done     bool
}

func newRLEDecoder(cols, rows int) *rleDecoder {
	return &rleDecoder{
		grid:  core.NewGrid(cols, rows),
		cols:  cols,
		rows:  rows,
		limit: cols*rows + 1,
	}
}

// feed consumes one body line and reports whether decoding has finished.
func (d *rleDecoder) feed(line []byte) bool {
	for _, ch := range line {
		if d.done {
			return true
		}
		switch {
		case ch >= '0' && ch <= '9':
			d.count = d.count*10 + int(ch-'0')
			if d.count > d.limit {
				d.count = d.limit
			}
			d.hasCount = true
		case ch == 'b' || ch == 'o':
			d.run(ch == 'o', d.take())
		case ch == '$':
			d.newlines(d.take())
		case ch == '!':
			d.done = true
		}
	}
	return d.done
}

func (d *rleDecoder) take() int {
	n := 1
	if d.hasCount {
		n = d.count
	}
	d.count, d.hasCount = 0, false
	return n
}

// run writes n cells. The cursor wraps to the next row only when another
// cell has to be written past the right edge, so a $ after a full row moves
// down exactly one row.
func (d *rleDecoder) run(alive bool, n int) {
	cells := d.grid.Cells()
	for i := 0; i < n; i++ {
		if d.x >= d.cols {
			d.x = 0
			d.y++
		}
		if d.y >= d.rows {
			d.done = true
			return
		}
		cells[d.y*d.cols+d.x] = alive
		d.x++
	}
}

func (d *rleDecoder) newlines(n int) {
	d.x = 0
	d.y += n
	if d.y >= d.rows {
		d.done = true
	}
}

// EncodeRLE writes g in the run-length text format. Trailing dead cells of a
// row are omitted and consecutive row ends are merged into a counted $.
func EncodeRLE(w io.Writer, g *core.Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "x = %d, y = %d, rule = B3/S23\n", g.Cols(), g.Rows())

	enc := rleWriter{w: bw}
	prev := 0
	cells := g.Cells()
	for y := 0; y < g.Rows(); y++ {
		row := cells[y*g.Cols() : (y+1)*g.Cols()]
		end := len(row)
		for end > 0 && !row[end-1] {
			end--
		}
		if end == 0 {
			continue
		}
		if y > prev {
			enc.token(y-prev, '$')
		}
		prev = y
		for x := 0; x < end; {
			run := 1
			for x+run < end && row[x+run] == row[x] {
				run++
			}
			tag := byte('b')
			if row[x] {
				tag = 'o'
			}
			enc.token(run, tag)
			x += run
		}
	}
	enc.token(1, '!')
	bw.WriteByte('\n')
	return bw.Flush()
}

// EncodeRLEString returns the RLE encoding of g.
func EncodeRLEString(g *core.Grid) string {
	var sb strings.Builder
	_ = EncodeRLE(&sb, g)
	return sb.String()
}

type rleWriter struct {
	w   *bufio.Writer
	col int
}

func (e *rleWriter) token(n int, tag byte) {
	tok := string(tag)
	if n > 1 {
		tok = strconv.Itoa(n) + tok
	}
	if e.col+len(tok) > rleLineWidth {
		e.w.WriteByte('\n')
		e.col = 0
	}
	e.w.WriteString(tok)
	e.col += len(tok)
}
