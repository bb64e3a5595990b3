package tegaki

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreview_RenderStrokes(t *testing.T) {
	assert := assert.New(t)

	strokes := []Stroke{{{X: 20, Y: 100}, {X: 180, Y: 100}}}
	img := RenderStrokes(strokes, PreviewOptions{Size: 64, StrokeWidth: 20})

	assert.Equal(64, img.Bounds().Dx())
	assert.Equal(64, img.Bounds().Dy())

	corner := img.NRGBAAt(1, 1)
	assert.Equal([3]uint8{0xff, 0xff, 0xff}, [3]uint8{corner.R, corner.G, corner.B})

	center := img.NRGBAAt(32, 31)
	assert.Less(center.G, uint8(0x80))
	assert.Greater(center.R, center.G)
}

func TestPreview_Defaults(t *testing.T) {
	img := RenderStrokes(nil, PreviewOptions{})
	assert.Equal(t, defaultPreviewOptions.Size, img.Bounds().Dx())

	for i := 0; i < len(img.Pix); i++ {
		if img.Pix[i] != 0xff {
			t.Fatalf("expected a blank image, got %#x at offset %d", img.Pix[i], i)
		}
	}
}

func TestPreview_Summary(t *testing.T) {
	strokes := []Stroke{{{X: 20, Y: 20}, {X: 100, Y: 150}, {X: 180, Y: 20}}}

	plain := RenderStrokes(strokes, PreviewOptions{Size: 48})
	summary := RenderStrokes(strokes, PreviewOptions{Size: 48, Summary: true})
	assert.NotEqual(t, plain.Pix, summary.Pix)
}

func TestPreview_EncodePNG(t *testing.T) {
	img := RenderStrokes([]Stroke{{{X: 0, Y: 0}, {X: 200, Y: 200}}}, PreviewOptions{Size: 32})

	var buf bytes.Buffer
	require.NoError(t, EncodePreview(&buf, img))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestPreview_CrossingStrokesAreMultiplied(t *testing.T) {
	strokes := []Stroke{
		{{X: 20, Y: 100}, {X: 180, Y: 100}},
		{{X: 100, Y: 20}, {X: 100, Y: 180}},
	}
	img := RenderStrokes(strokes, PreviewOptions{Size: 64, StrokeWidth: 20})

	brightness := func(x, y int) int {
		c := img.NRGBAAt(x, y)
		return int(c.R) + int(c.G) + int(c.B)
	}
	assert.Less(t, brightness(32, 31), brightness(12, 31))
	assert.Less(t, brightness(32, 31), brightness(32, 12))
}
