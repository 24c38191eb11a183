package qr

import "github.com/skip2/go-qrcode"

// Classic is the plain square-module style: smallest version the payload
// allows, 10 px modules and a 5 module quiet zone.
var Classic = Config{
	Version:       1,
	Fit:           true,
	BoxSize:       10,
	Border:        5,
	RecoveryLevel: int(qrcode.Medium),
	LogoScale:     0.2,
}
