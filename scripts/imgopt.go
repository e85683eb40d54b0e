package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// One-shot optimizer for the marketing site's image assets: walks a
// directory, resizes anything over the max dimension and re-encodes as JPEG.
//
//	go run scripts/imgopt.go -dir ./public/assets/img -max 1600 -quality 80
func main() {
	dir := flag.String("dir", ".", "directory to scan for images")
	maxDim := flag.Int("max", 1600, "maximum width/height in pixels")
	quality := flag.Int("quality", 80, "JPEG quality")
	flag.Parse()

	err := filepath.Walk(*dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		optimized, err := compressImage(data, *maxDim, *quality)
		if err != nil {
			fmt.Printf("skip %s: %v\n", path, err)
			return nil
		}
		if len(optimized) >= len(data) {
			fmt.Printf("keep %s (%d bytes)\n", path, len(data))
			return nil
		}

		out := strings.TrimSuffix(path, ext) + ".jpg"
		if err := os.WriteFile(out, optimized, 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d -> %d bytes)\n", out, len(data), len(optimized))
		return nil
	})
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func compressImage(data []byte, maxDimension int, quality int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// New dimensions maintaining aspect ratio
	newWidth, newHeight := width, height
	if width >= height && width > maxDimension {
		newWidth = maxDimension
		newHeight = int(float64(height) * float64(maxDimension) / float64(width))
	} else if height > width && height > maxDimension {
		newHeight = maxDimension
		newWidth = int(float64(width) * float64(maxDimension) / float64(height))
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
