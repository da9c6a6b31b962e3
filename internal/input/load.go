// SPDX-License-Identifier: MIT

package input

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression selects the layer wrapped around a document.
type Compression int

const (
	// CompressionAuto sniffs the magic bytes.
	CompressionAuto Compression = iota
	CompressionNone
	CompressionGzip
	CompressionZstd
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// ParseCompression maps a flag value to a Compression.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return CompressionAuto, nil
	case "none":
		return CompressionNone, nil
	case "gzip", "gz":
		return CompressionGzip, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	}

	return CompressionAuto, fmt.Errorf("%w: unknown compression %q", ErrCompression, s)
}

// Load reads, decompresses and parses the document at path.
// The path "-" reads standard input.
func Load(path string, c Compression) (Document, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(filepath.Clean(path))
	}
	if err != nil {
		return Document{}, err
	}

	data, err := Decompress(raw, c)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Decompress strips the compression layer from raw.
func Decompress(raw []byte, c Compression) ([]byte, error) {
	if c == CompressionAuto {
		switch {
		case bytes.HasPrefix(raw, zstdMagic):
			c = CompressionZstd
		case bytes.HasPrefix(raw, gzipMagic):
			c = CompressionGzip
		default:
			c = CompressionNone
		}
	}

	switch c {
	case CompressionNone:
		return raw, nil
	case CompressionGzip:
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCompression, err)
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCompression, err)
		}
		return out, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCompression, err)
		}
		defer zr.Close()
		out, err := zr.DecodeAll(raw, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCompression, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: mode %d", ErrCompression, c)
	}
}
