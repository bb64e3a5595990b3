package tegaki

import (
	"context"
	"fmt"
	"log"
	"runtime"

	"github.com/esimov/tegaki/utils"
	"golang.org/x/sync/errgroup"
)

const (
	// maxWorkers sets the maximum number of concurrently running workers.
	maxWorkers = 64
	// defaultBatchSize is the number of glyphs encoded between two writes.
	defaultBatchSize = 512
)

// skipReason tells why a glyph did not produce a feature vector.
type skipReason int

const (
	notSkipped skipReason = iota
	skipAlias
	skipRejected
	skipEmpty
)

func (r skipReason) String() string {
	switch r {
	case skipAlias:
		return "alias"
	case skipRejected:
		return "not a target glyph"
	case skipEmpty:
		return "no strokes"
	}
	return ""
}

// Stats summarizes an index build.
type Stats struct {
	Total    int // glyphs in the dump
	Aliases  int // glyphs redirecting to another glyph
	Rejected int // glyphs refused by the name filter
	Empty    int // glyphs without any stroke
	Written  int // feature vectors written
}

// Builder encodes every target glyph of a dump and writes the feature vectors.
type Builder struct {
	// Workers is the number of glyphs encoded concurrently.
	// Values out of range default to the number of CPUs.
	Workers int
	// BatchSize is the number of glyphs encoded between two writes.
	BatchSize int
	// Filter selects the glyph names to encode. Defaults to IsTargetGlyphName.
	Filter func(name string) bool
	// Progress, if set, is advanced once per processed glyph.
	Progress *utils.Progress
	// Logger, if set, receives the name of every skipped glyph.
	Logger *log.Logger
}

// result holds the outcome of encoding a single glyph.
type result struct {
	feature []float64
	skip    skipReason
}

// Build encodes the glyphs of d in lexicographic name order and writes them to fw.
// Glyphs are encoded concurrently within a batch, but written in order, so the
// output does not depend on the number of workers. fw is flushed on success.
func (b *Builder) Build(ctx context.Context, d *Dump, fw *FeatureWriter) (Stats, error) {
	workers := b.Workers
	if workers <= 0 || workers > maxWorkers {
		workers = runtime.NumCPU()
	}
	batchSize := b.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	filter := b.Filter
	if filter == nil {
		filter = IsTargetGlyphName
	}

	names := d.Names()
	stats := Stats{Total: len(names)}
	results := make([]result, batchSize)

	for lo := 0; lo < len(names); lo += batchSize {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		batch := names[lo:utils.Min(lo+batchSize, len(names))]

		var g errgroup.Group
		g.SetLimit(workers)
		for i, name := range batch {
			i, name := i, name
			g.Go(func() error {
				results[i] = encode(d, name, filter)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return stats, err
		}

		for i, name := range batch {
			res := results[i]
			switch res.skip {
			case skipAlias:
				stats.Aliases++
			case skipRejected:
				stats.Rejected++
			case skipEmpty:
				stats.Empty++
			default:
				if err := fw.WriteFeature(name, res.feature); err != nil {
					return stats, fmt.Errorf("unable to write the feature of %s: %w", name, err)
				}
				stats.Written++
			}
			if res.skip != notSkipped && b.Logger != nil {
				b.Logger.Printf("skipping %s: %v", name, res.skip)
			}
			results[i] = result{}
		}
		if b.Progress != nil {
			b.Progress.Add(len(batch))
		}
	}

	if err := fw.Flush(); err != nil {
		return stats, fmt.Errorf("unable to flush the features: %w", err)
	}
	return stats, nil
}

// EncodeGlyph expands and encodes the named glyph. It reports false when the
// glyph is unknown, an alias or has no strokes.
func EncodeGlyph(l Lookup, name string) ([]float64, bool) {
	res := encode(l, name, func(string) bool { return true })
	if res.skip != notSkipped {
		return nil, false
	}
	return res.feature, true
}

func encode(l Lookup, name string, filter func(string) bool) result {
	data, ok := l.Get(name)
	if !ok {
		return result{skip: skipEmpty}
	}
	if IsAlias(data) {
		return result{skip: skipAlias}
	}
	if !filter(name) {
		return result{skip: skipRejected}
	}
	strokes := NewExpander(l).Expand(data)
	if len(strokes) == 0 {
		return result{skip: skipEmpty}
	}
	return result{feature: Feature(strokes)}
}
