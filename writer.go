package tegaki

import (
	"bufio"
	"io"
	"strconv"
)

// FeatureWriter serializes feature vectors in the line layout consumed by the
// index loader: a metadata line "timestamp version dimension count" followed
// by one "name v1,v2,..." line per glyph.
type FeatureWriter struct {
	w   *bufio.Writer
	buf []byte
}

// NewFeatureWriter returns a buffered FeatureWriter writing to w.
// Flush must be called once all the features have been written.
func NewFeatureWriter(w io.Writer) *FeatureWriter {
	return &FeatureWriter{w: bufio.NewWriter(w)}
}

// WriteMetadata writes the header line. timestamp is the modification time of
// the dump in milliseconds and count the number of glyphs it holds.
func (fw *FeatureWriter) WriteMetadata(timestamp int64, version string, dimen, count int) error {
	b := fw.buf[:0]
	b = strconv.AppendInt(b, timestamp, 10)
	b = append(b, ' ')
	b = append(b, version...)
	b = append(b, ' ')
	b = strconv.AppendInt(b, int64(dimen), 10)
	b = append(b, ' ')
	b = strconv.AppendInt(b, int64(count), 10)
	return fw.writeLine(b)
}

// WriteFeature writes the feature line of one glyph.
func (fw *FeatureWriter) WriteFeature(name string, feature []float64) error {
	b := append(fw.buf[:0], name...)
	b = append(b, ' ')
	return fw.writeLine(appendVector(b, feature))
}

// WriteVector writes a bare comma separated feature line.
func (fw *FeatureWriter) WriteVector(feature []float64) error {
	return fw.writeLine(appendVector(fw.buf[:0], feature))
}

func (fw *FeatureWriter) writeLine(b []byte) error {
	b = append(b, '\n')
	fw.buf = b
	_, err := fw.w.Write(b)
	return err
}

func appendVector(b []byte, feature []float64) []byte {
	for i, v := range feature {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendFloat(b, v, 'g', -1, 64)
	}
	return b
}

// Flush writes any buffered data to the underlying writer.
func (fw *FeatureWriter) Flush() error {
	return fw.w.Flush()
}
