package dto

// QRStatus is the outcome of a single generation request
type QRStatus int

const (
	QRSaved QRStatus = iota
	QRSkipped
	QRFailed
)

func (s QRStatus) String() string {
	switch s {
	case QRSaved:
		return "saved"
	case QRSkipped:
		return "skipped"
	case QRFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type QRResult struct {
	Status QRStatus
	Path   string
	Err    error
}

func NewSavedQR(path string) QRResult {
	return QRResult{Status: QRSaved, Path: path}
}

func NewSkippedQR(path string, err error) QRResult {
	return QRResult{Status: QRSkipped, Path: path, Err: err}
}

func NewFailedQR(path string, err error) QRResult {
	return QRResult{Status: QRFailed, Path: path, Err: err}
}

// OK reports whether the file was written
func (r QRResult) OK() bool {
	return r.Status == QRSaved
}
