package main

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestImage_ShouldDecodeBmp(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	src.Set(1, 1, color.NRGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), "bg.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("could not create the image file: %v", err)
	}
	if err := bmp.Encode(f, src); err != nil {
		t.Fatalf("could not encode the image: %v", err)
	}
	f.Close()

	img, err := loadBackground(path)
	if err != nil {
		t.Fatalf("loadBackground returned %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("Image size expected to be 4x3. Got %v", img.Bounds().Size())
	}
}

func TestImage_ShouldRejectNonImages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("not an image at all"), 0644); err != nil {
		t.Fatalf("could not write the file: %v", err)
	}
	if _, err := decodeImg(path); err == nil {
		t.Error("A text file should not be decoded as an image")
	}
	if _, err := decodeImg(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("A missing file should be reported")
	}
}
