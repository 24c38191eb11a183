package qrgen

import (
	"time"

	"github.com/kaw393939/qrgen/internal/adapters/config"
	"github.com/kaw393939/qrgen/internal/domain/dto"
	"github.com/kaw393939/qrgen/internal/domain/service"
	"github.com/kaw393939/qrgen/pkg/generator"
	"github.com/kaw393939/qrgen/pkg/logger"
	"github.com/kaw393939/qrgen/pkg/logger/types"
	qr "github.com/kaw393939/qrgen/pkg/qrcode"
)

type App struct {
	Config *config.Config
	Logger *types.Logger
	QR     *service.QrService
	Output *generator.Output
	Now    func() time.Time
}

func New(cfg *config.Config) (*App, error) {
	appLogger, err := logger.Named("qrgen")
	if err != nil {
		return nil, err
	}
	qrLogger, err := logger.Named("qr")
	if err != nil {
		return nil, err
	}

	return &App{
		Config: cfg,
		Logger: appLogger,
		QR:     service.NewQrService(qrLogger, qr.Classic, cfg.LogoPath),
		Output: generator.NewOutput(cfg.WorkDir, cfg.Directory),
		Now:    time.Now,
	}, nil
}

// Start runs a single generation. Only an uncreatable output directory stops the process.
func (a *App) Start() dto.QRResult {
	loc := a.Config.TimeLocation
	if loc == nil {
		loc = time.Local
	}
	path := a.Output.Path(a.Now().In(loc))

	a.QR.CreateDirectory(a.Output.Dir)

	result := a.QR.GenerateQRCode(a.Config.URL, path, a.Config.FillColor, a.Config.BackColor)
	a.Logger.Debugf("QR generation finished: status=%s path=%s", result.Status, result.Path)
	return result
}
