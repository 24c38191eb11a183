package qr

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"github.com/skip2/go-qrcode"
)

type Config struct {
	Content       string
	Version       int  // Smallest symbol version to use (1-40)
	Fit           bool // Grow past Version when the content does not fit
	BoxSize       int  // Pixels per module
	Border        int  // Quiet zone width in modules
	RecoveryLevel int
	Foreground    color.Color
	Background    color.Color
	LogoPath      string
	LogoScale     float64 // Logo side relative to the symbol side
}

// Image encodes Content and draws the symbol with the configured geometry and colors
func (c *Config) Image() (image.Image, error) {
	if c.BoxSize <= 0 {
		return nil, fmt.Errorf("box size must be positive, got %d", c.BoxSize)
	}
	if c.Border < 0 {
		return nil, fmt.Errorf("border must not be negative, got %d", c.Border)
	}
	if c.Foreground == nil || c.Background == nil {
		return nil, fmt.Errorf("foreground and background colors are required")
	}

	level := qrcode.RecoveryLevel(c.RecoveryLevel)
	if c.LogoPath != "" {
		level = qrcode.Highest
	}

	qr, err := c.encode(level)
	if err != nil {
		return nil, err
	}

	// Quiet zone is drawn below with our own border width
	qr.DisableBorder = true
	bitmap := qr.Bitmap()
	modules := len(bitmap)

	side := (modules + 2*c.Border) * c.BoxSize
	dc := gg.NewContext(side, side)

	// Draw background
	dc.SetColor(c.Background)
	dc.Clear()

	// Draw dark modules
	box := float64(c.BoxSize)
	for y, row := range bitmap {
		for x, dark := range row {
			if !dark {
				continue
			}
			dc.DrawRectangle(float64(x+c.Border)*box, float64(y+c.Border)*box, box, box)
		}
	}
	dc.SetColor(c.Foreground)
	dc.Fill()

	if c.LogoPath != "" {
		if err = c.drawLogo(dc, modules*c.BoxSize); err != nil {
			return nil, err
		}
	}

	return dc.Image(), nil
}

// Generate creates a QR code with the given configuration and returns it as PNG bytes
func (c *Config) Generate() ([]byte, error) {
	img, err := c.Image()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err = png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Config) encode(level qrcode.RecoveryLevel) (*qrcode.QRCode, error) {
	version := c.Version
	if version < 1 {
		version = 1
	}

	if !c.Fit {
		qr, err := qrcode.NewWithForcedVersion(c.Content, version, level)
		if err != nil {
			return nil, fmt.Errorf("encode content at version %d: %w", version, err)
		}
		return qr, nil
	}

	qr, err := qrcode.New(c.Content, level)
	if err != nil {
		return nil, fmt.Errorf("encode content: %w", err)
	}
	if qr.VersionNumber < version {
		qr, err = qrcode.NewWithForcedVersion(c.Content, version, level)
		if err != nil {
			return nil, fmt.Errorf("encode content at version %d: %w", version, err)
		}
	}
	return qr, nil
}

func (c *Config) drawLogo(dc *gg.Context, symbolSide int) error {
	logo, err := gg.LoadImage(c.LogoPath)
	if err != nil {
		return fmt.Errorf("load logo: %w", err)
	}

	logoSize := uint(float64(symbolSide) * c.LogoScale)
	if logoSize == 0 {
		return nil
	}
	resizedLogo := resize.Resize(logoSize, logoSize, logo, resize.Lanczos3)

	center := float64(dc.Width()) / 2

	// Logo sits on a background disc so dark modules do not bleed into it
	dc.SetColor(c.Background)
	dc.DrawCircle(center, center, float64(logoSize)*0.75)
	dc.Fill()

	dc.DrawImageAnchored(resizedLogo, int(center), int(center), 0.5, 0.5)
	return nil
}
