package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/esimov/tegaki"
	"github.com/esimov/tegaki/utils"
	"golang.org/x/term"
)

const HelpBanner = `
╔╦╗┌─┐┌─┐┌─┐┬┌─┬
 ║ ├┤ │ ┬├─┤├┴┐│
 ╩ └─┘└─┘┴ ┴┴ ┴┴

Handwritten kanji feature encoder.
`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var cli struct {
	Version kong.VersionFlag `short:"v" help:"Print version information and quit."`

	Build   buildCmd   `cmd:"" help:"Encode every kanji of a GlyphWiki dump into a feature index."`
	Feature featureCmd `cmd:"" help:"Print the feature line of the named glyphs."`
	Preview previewCmd `cmd:"" help:"Render an expanded glyph to a PNG image."`
	Encode  encodeCmd  `cmd:"" help:"Encode hand-drawn strokes read as JSON."`
}

type buildCmd struct {
	Dump       string `arg:"" help:"Path or URL of the GlyphWiki dump, optionally gzipped."`
	Output     string `short:"o" default:"-" help:"Destination of the feature index."`
	Workers    int    `short:"w" env:"TEGAKI_WORKERS" help:"Number of glyphs encoded concurrently. Defaults to the number of CPUs."`
	Batch      int    `default:"512" help:"Number of glyphs encoded between two writes."`
	All        bool   `help:"Encode every non alias glyph, not only kanji."`
	NoProgress bool   `help:"Do not show the progress indicator."`
	Verbose    bool   `help:"Log every skipped glyph."`
}

func (c *buildCmd) Run(ctx context.Context) error {
	dump, mtime, err := loadDump(c.Dump)
	if err != nil {
		return err
	}

	dst, err := createOutput(c.Output)
	if err != nil {
		return err
	}
	defer dst.Close()

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var progress *utils.Progress
	if !c.NoProgress {
		msg := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ TEGAKI", utils.StatusMessage),
			utils.DecorateText("is encoding the glyphs...", utils.DefaultMessage))
		progress = utils.NewProgress(os.Stderr, msg, dump.Len(), 100*time.Millisecond)
	}

	b := &tegaki.Builder{
		Workers:   workers,
		BatchSize: c.Batch,
		Progress:  progress,
	}
	if c.All {
		b.Filter = func(string) bool { return true }
	}
	if c.Verbose {
		b.Logger = log.New(os.Stderr, "", 0)
	}

	fw := tegaki.NewFeatureWriter(dst)
	if err := fw.WriteMetadata(mtime.UnixMilli(), tegaki.ModelVersion, tegaki.ColSize, dump.Len()); err != nil {
		return fmt.Errorf("unable to write the metadata: %w", err)
	}

	now := time.Now()
	if progress != nil {
		progress.Start()
	}
	stats, err := b.Build(ctx, dump, fw)
	if progress != nil {
		progress.StopMsg = fmt.Sprintf("%s %s\n",
			utils.DecorateText("⚡ TEGAKI", utils.StatusMessage),
			utils.DecorateText("is encoding the glyphs... ✔", utils.DefaultMessage))
		progress.Stop()
	}
	if err != nil {
		return err
	}

	log.Printf("%s %s glyphs written (%s aliases, %s rejected, %s empty) in %s\n",
		utils.DecorateText("✔", utils.SuccessMessage),
		utils.FormatCount(stats.Written),
		utils.FormatCount(stats.Aliases),
		utils.FormatCount(stats.Rejected),
		utils.FormatCount(stats.Empty),
		utils.FormatTime(time.Since(now)),
	)
	return nil
}

type featureCmd struct {
	Dump  string   `arg:"" help:"Path or URL of the GlyphWiki dump, optionally gzipped."`
	Names []string `arg:"" help:"Glyph names, e.g. u6f22."`
}

func (c *featureCmd) Run() error {
	dump, _, err := loadDump(c.Dump)
	if err != nil {
		return err
	}

	fw := tegaki.NewFeatureWriter(os.Stdout)
	for _, name := range c.Names {
		feature, ok := tegaki.EncodeGlyph(dump, name)
		if !ok {
			log.Println(utils.DecorateText(fmt.Sprintf("%s: no strokes to encode", name), utils.ErrorMessage))
			continue
		}
		if err := fw.WriteFeature(name, feature); err != nil {
			return err
		}
	}
	return fw.Flush()
}

type previewCmd struct {
	Dump    string `arg:"" help:"Path or URL of the GlyphWiki dump, optionally gzipped."`
	Name    string `arg:"" help:"Glyph name, e.g. u6f22."`
	Output  string `short:"o" required:"" help:"Destination PNG file, or - for stdout."`
	Size    int    `short:"s" default:"256" help:"Side length of the image in pixels."`
	Summary bool   `help:"Overlay the start, middle and end point of every stroke."`
}

func (c *previewCmd) Run() error {
	dump, _, err := loadDump(c.Dump)
	if err != nil {
		return err
	}

	data, ok := dump.Get(c.Name)
	if !ok {
		return fmt.Errorf("glyph %s not found", c.Name)
	}
	strokes := tegaki.Expand(data, dump)
	if len(strokes) == 0 {
		return fmt.Errorf("glyph %s has no strokes", c.Name)
	}

	img := tegaki.RenderStrokes(strokes, tegaki.PreviewOptions{
		Size:    c.Size,
		Summary: c.Summary,
	})

	dst, err := createOutput(c.Output)
	if err != nil {
		return err
	}
	defer dst.Close()

	return tegaki.EncodePreview(dst, img)
}

type encodeCmd struct {
	Input string `arg:"" optional:"" default:"-" help:"JSON file holding the strokes as [[[x,y],...],...], or - for stdin."`
}

func (c *encodeCmd) Run() error {
	var src io.Reader
	if c.Input == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("`-` should be used with a pipe for stdin")
		}
		src = os.Stdin
	} else {
		f, err := os.Open(c.Input)
		if err != nil {
			return fmt.Errorf("unable to open the strokes file: %w", err)
		}
		defer f.Close()
		src = f
	}

	strokes, err := tegaki.ReadStrokes(src)
	if err != nil {
		return err
	}

	fw := tegaki.NewFeatureWriter(os.Stdout)
	if err := fw.WriteVector(tegaki.Feature(strokes)); err != nil {
		return err
	}
	return fw.Flush()
}

func main() {
	log.SetFlags(0)

	kctx := kong.Parse(&cli,
		kong.Name("tegaki"),
		kong.Description(HelpBanner),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("%s (model %s, %d columns)", Version, tegaki.ModelVersion, tegaki.ColSize),
		},
	)

	// Capture CTRL-C signal and cancel the running command.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	kctx.BindTo(ctx, (*context.Context)(nil))

	if err := kctx.Run(); err != nil {
		stop()
		log.Fatalf(utils.DecorateText(fmt.Sprintf("Error: %v\n", err), utils.ErrorMessage))
	}
}

// loadDump opens the dump found at src, downloading it first if src is an URL.
// It also returns the modification time of the dump.
func loadDump(src string) (*tegaki.Dump, time.Time, error) {
	path := src
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadFile(src)
		if err != nil {
			return nil, time.Time{}, err
		}
		f.Close()
		defer os.Remove(f.Name())
		path = f.Name()
	}

	fs, err := os.Stat(path)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("unable to open the dump: %w", err)
	}
	dump, err := tegaki.OpenDump(path)
	if err != nil {
		return nil, time.Time{}, err
	}
	return dump, fs.ModTime(), nil
}

// createOutput returns the destination file, or stdout for the pipe name.
func createOutput(out string) (io.WriteCloser, error) {
	if out == pipeName {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(out)
	if err != nil {
		return nil, fmt.Errorf("unable to create the output file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
