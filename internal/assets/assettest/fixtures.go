// Package assettest writes button image fixtures for tests.
package assettest

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"math-helper/internal/buttons"
)

// PNG returns an encoded w x h image.
func PNG(t testing.TB, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{B: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// WriteFamily writes a 120x60 PNG under root for every definition in family,
// except the file names listed in skip.
func WriteFamily(t testing.TB, root string, family buttons.Family, skip ...string) {
	t.Helper()
	skipped := make(map[string]bool, len(skip))
	for _, name := range skip {
		skipped[name] = true
	}

	dir := filepath.Join(root, filepath.FromSlash(family.ImageDir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := PNG(t, 120, 60)
	for _, def := range family.Definitions {
		if skipped[def.FileName] {
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, def.FileName), data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}
