package service

import (
	"fmt"
	"os"

	"github.com/kaw393939/qrgen/internal/domain/common/errorz"
	"github.com/kaw393939/qrgen/internal/domain/dto"
	"github.com/kaw393939/qrgen/internal/domain/utils/validator"
	"github.com/kaw393939/qrgen/pkg/generator"
	"github.com/kaw393939/qrgen/pkg/logger/types"
	qr "github.com/kaw393939/qrgen/pkg/qrcode"
)

type QrService struct {
	logger *types.Logger
	qrCFG  qr.Config
	exit   func(code int)
}

func NewQrService(logger *types.Logger, qrCFG qr.Config, logoPath string) *QrService {
	qrCFG.LogoPath = logoPath
	return &QrService{
		logger: logger,
		qrCFG:  qrCFG,
		exit:   os.Exit,
	}
}

// IsValidURL logs and rejects anything that is not a well-formed URL
func (s *QrService) IsValidURL(candidate string) bool {
	if validator.URL(candidate) {
		return true
	}
	s.logger.Errorf("Invalid URL provided: %s", candidate)
	return false
}

// CreateDirectory terminates the process with status 1 when path can not be created
func (s *QrService) CreateDirectory(path string) {
	if err := generator.EnsureDir(path); err != nil {
		s.logger.Errorf("Failed to create directory %s: %v", path, err)
		_ = s.logger.Sync()
		s.exit(1)
	}
}

// GenerateQRCode never returns an error; the outcome is in the result and the log
func (s *QrService) GenerateQRCode(data, path, fillColor, backColor string) dto.QRResult {
	if !s.IsValidURL(data) {
		return dto.NewSkippedQR(path, fmt.Errorf("%w: %s", errorz.InvalidURL, data))
	}

	if err := s.writeQR(data, path, fillColor, backColor); err != nil {
		s.logger.Errorf("Error generating or saving QR code: %v", err)
		return dto.NewFailedQR(path, err)
	}

	s.logger.Infof("QR code successfully saved to %s", path)
	return dto.NewSavedQR(path)
}

func (s *QrService) writeQR(data, path, fillColor, backColor string) error {
	fill, err := qr.ParseColor(fillColor)
	if err != nil {
		return fmt.Errorf("fill color: %w", err)
	}
	back, err := qr.ParseColor(backColor)
	if err != nil {
		return fmt.Errorf("back color: %w", err)
	}

	cfg := s.qrCFG
	cfg.Content = data
	cfg.Foreground = fill
	cfg.Background = back

	encoded, err := cfg.Generate()
	if err != nil {
		return err
	}
	return generator.SavePNG(path, encoded)
}
