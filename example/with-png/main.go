package main

import (
	"github.com/yeqown/go-qrcode/v2"

	"github.com/Mictilt/qrsvg/writer/standard"
)

func main() {
	qrc, err := qrcode.NewWith("https://github.com/Mictilt/qrsvg",
		qrcode.WithEncodingMode(qrcode.EncModeByte),
		qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart),
	)
	if err != nil {
		panic(err)
	}

	// same geometry as the SVG writer, one module is 20px
	w, err := standard.New("qrcode.png",
		standard.WithQRWidth(20),
	)
	if err != nil {
		panic(err)
	}
	if err = qrc.Save(w); err != nil {
		panic(err)
	}

	// blue circles on a transparent background, scaled to 512px
	w2, err := standard.New("qrcode-circle.png",
		standard.WithQRWidth(20),
		standard.WithCircleShape(),
		standard.WithFgColorRGBHex("#0066CC"),
		standard.WithBgTransparent(),
		standard.WithResolution(512),
	)
	if err != nil {
		panic(err)
	}
	if err = qrc.Save(w2); err != nil {
		panic(err)
	}

	// JPEG without quiet zone
	w3, err := standard.New("qrcode.jpeg",
		standard.WithQRWidth(10),
		standard.WithBorderWidth(0),
		standard.WithBuiltinImageEncoder(standard.JPEG_FORMAT),
	)
	if err != nil {
		panic(err)
	}
	if err = qrc.Save(w3); err != nil {
		panic(err)
	}

	println("QR codes saved as qrcode.png, qrcode-circle.png and qrcode.jpeg")
}
