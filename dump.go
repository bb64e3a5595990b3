package tegaki

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// dumpHeaderLines is the number of lines preceding the records of a dump.
const dumpHeaderLines = 2

// Dump is an in-memory GlyphWiki dump mapping glyph names to KAGE descriptors.
// It is read-only once built and safe for concurrent use.
type Dump struct {
	data  map[string]string
	names []string
}

var _ Lookup = (*Dump)(nil)

// OpenDump reads the dump stored at path. Gzip compressed files are
// decompressed transparently.
func OpenDump(path string) (*Dump, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open the dump file: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	var r io.Reader = br
	if magic, err := br.Peek(2); err == nil && bytes.Equal(magic, []byte{0x1f, 0x8b}) {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("unable to decompress the dump file: %w", err)
		}
		defer gz.Close()
		r = gz
	}
	return ReadDump(r)
}

// ReadDump parses a dump in the table layout of GlyphWiki: two header lines
// followed by "name | related | data" records. Lines with a different number
// of columns, such as the footer, are ignored.
func ReadDump(r io.Reader) (*Dump, error) {
	d := &Dump{data: make(map[string]string)}

	br := bufio.NewReader(r)
	for lineNo := 0; ; lineNo++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("unable to read the dump at line %d: %w", lineNo+1, err)
		}
		if lineNo >= dumpHeaderLines {
			if cols := strings.Split(strings.TrimRight(line, "\r\n"), "|"); len(cols) == 3 {
				d.data[strings.TrimSpace(cols[0])] = strings.TrimSpace(cols[2])
			}
		}
		if err == io.EOF {
			break
		}
	}

	d.names = make([]string, 0, len(d.data))
	for name := range d.data {
		d.names = append(d.names, name)
	}
	sort.Strings(d.names)

	return d, nil
}

// Get returns the descriptor of the named glyph.
func (d *Dump) Get(name string) (string, bool) {
	data, ok := d.data[name]
	return data, ok
}

// Len returns the number of glyphs in the dump.
func (d *Dump) Len() int {
	return len(d.data)
}

// Names returns the glyph names in lexicographic order.
// The returned slice must not be modified.
func (d *Dump) Names() []string {
	return d.names
}

// Each calls fn for every glyph in lexicographic name order until fn returns an error.
func (d *Dump) Each(fn func(name, data string) error) error {
	for _, name := range d.names {
		if err := fn(name, d.data[name]); err != nil {
			return err
		}
	}
	return nil
}
