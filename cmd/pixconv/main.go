// Command pixconv decodes an image, converts it to a pixconv format and
// writes either the raw samples or a re-encoded image.
//
//	pixconv -in photo.bmp -format AZYXPreBytes -out dump.raw
//	pixconv -in photo.png -format GrayBytes -out gray.tiff
//	cat photo.webp | pixconv -in - -format ZYXAPreBytes -out bgra.png
//	pixconv -list
package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gputypes"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/pixconv"
	"github.com/gogpu/pixconv/internal/image"
)

type config struct {
	in      string
	out     string
	format  string
	workers int
	lang    string
	list    bool
	verbose bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.in, "in", "", "input image (png, jpeg, bmp, tiff, webp), - for stdin")
	flag.StringVar(&cfg.out, "out", "", "output file: .raw for samples, or png, jpg, bmp, tiff")
	flag.StringVar(&cfg.format, "format", "XYZABytes", "target pixel format (see -list)")
	flag.IntVar(&cfg.workers, "workers", 0, "conversion goroutines, 0 for GOMAXPROCS")
	flag.StringVar(&cfg.lang, "lang", "en", "BCP 47 language tag for number formatting in the summary")
	flag.BoolVar(&cfg.list, "list", false, "list pixel formats and exit")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()

	if err := run(cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("pixconv: %v", err)
	}
}

func run(cfg config, stdin io.Reader, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	pixconv.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	if cfg.list {
		return listFormats(stdout)
	}
	if cfg.in == "" || cfg.out == "" {
		return errors.New("both -in and -out are required")
	}

	tag := language.English
	if cfg.lang != "" {
		var err error
		if tag, err = language.Parse(cfg.lang); err != nil {
			return fmt.Errorf("-lang: %w", err)
		}
	}

	to, err := pixconv.ParseFormat(cfg.format)
	if err != nil {
		return err
	}

	src, err := decodeInput(cfg.in, stdin)
	if err != nil {
		return err
	}
	pixconv.Logger().Info("decoded", "path", cfg.in, "format", src.Format().String(),
		"width", src.Width(), "height", src.Height())

	dst, err := src.Convert(to, image.WithWorkers(cfg.workers))
	if err != nil {
		return err
	}
	defer image.PutToDefault(dst)
	pixconv.Logger().Debug("converted", "conversion", pixconv.MustLookup(src.Format(), to).Describe())

	if strings.EqualFold(filepath.Ext(cfg.out), ".raw") {
		err = writeRawFile(cfg.out, dst)
	} else {
		err = dst.Save(cfg.out)
	}
	if err != nil {
		return err
	}

	p := message.NewPrinter(tag)
	_, err = p.Fprintf(stdout, "%s: %d x %d %v, %d bytes\n",
		cfg.out, dst.Width(), dst.Height(), dst.Format(), dst.ByteSize())
	return err
}

// decodeInput decodes the file at path, or all of stdin for "-".
func decodeInput(path string, stdin io.Reader) (*image.ImageBuf, error) {
	if path != "-" {
		return image.DecodeFile(path)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return image.DecodeBytes(data)
}

func listFormats(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, f := range pixconv.Formats() {
		info := f.Info()
		fmt.Fprintf(bw, "%-14s %d bytes/pixel  %-5v alpha=%-8v premultiplied=%-5v texture=%s\n",
			f, info.BytesPerPixel, info.Storage, info.Alpha, info.IsPremultiplied, textureName(f))
	}
	return bw.Flush()
}

// textureName names the GPU texture format sharing f's layout, or "-".
func textureName(f pixconv.Format) string {
	tf, ok := f.TextureFormat()
	if !ok {
		return "-"
	}
	switch tf {
	case gputypes.TextureFormatR8Unorm:
		return "R8Unorm"
	case gputypes.TextureFormatRGBA8Unorm:
		return "RGBA8Unorm"
	case gputypes.TextureFormatBGRA8Unorm:
		return "BGRA8Unorm"
	}
	return fmt.Sprint(uint32(tf))
}

func writeRawFile(path string, buf *image.ImageBuf) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := writeRaw(f, buf); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	pixconv.Logger().Info("wrote raw samples", "path", path, "format", buf.Format().String(),
		"width", buf.Width(), "height", buf.Height(), "bytes", buf.ByteSize())
	return nil
}

// writeRaw writes the rows of buf without padding. Words are written
// big-endian, so the first sample of each pixel comes first.
func writeRaw(w io.Writer, buf *image.ImageBuf) error {
	bw := bufio.NewWriter(w)
	var scratch []byte
	for y := range buf.Height() {
		if row := buf.Row(y); row != nil {
			if _, err := bw.Write(row); err != nil {
				return err
			}
			continue
		}
		scratch = scratch[:0]
		for _, v := range buf.RowWords(y) {
			scratch = binary.BigEndian.AppendUint32(scratch, v)
		}
		if _, err := bw.Write(scratch); err != nil {
			return err
		}
	}
	return bw.Flush()
}
