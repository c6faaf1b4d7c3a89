package render

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/matzehuels/algoviz/pkg/errors"
)

// rsvgTool is the librsvg command-line converter.
const rsvgTool = "rsvg-convert"

// install is appended to the error when rsvg-convert is missing.
const install = "install librsvg (brew install librsvg, apt install librsvg2-bin)"

// Raster formats reachable from SVG.
const (
	PDF = "pdf"
	PNG = "png"
)

// ToPDF converts an SVG snapshot to PDF.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return convert(ctx, svg, PDF)
}

// ToPNG converts an SVG snapshot to PNG. A scale of 2 doubles the resolution.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	return convert(ctx, svg, PNG, "-z", strconv.FormatFloat(scale, 'f', 2, 64))
}

// Available reports whether rsvg-convert is on PATH.
func Available() bool {
	_, err := exec.LookPath(rsvgTool)
	return err == nil
}

func convert(ctx context.Context, svg []byte, format string, extra ...string) ([]byte, error) {
	if !Available() {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "%s export needs %s: %s", format, rsvgTool, install)
	}

	cmd := exec.CommandContext(ctx, rsvgTool, append([]string{"-f", format}, extra...)...)
	cmd.Stdin = bytes.NewReader(svg)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: %s", rsvgTool, strings.TrimSpace(stderr.String()))
	}
	return out.Bytes(), nil
}
