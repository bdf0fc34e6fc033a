package main

import (
	"fmt"

	"github.com/yeqown/go-qrcode/v2"

	"github.com/Mictilt/qrsvg"
	"github.com/Mictilt/qrsvg/writer/svg"
)

func main() {
	qrc, err := qrcode.NewWith("https://github.com/Mictilt/qrsvg",
		qrcode.WithEncodingMode(qrcode.EncModeByte),
		qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart),
	)
	if err != nil {
		panic(err)
	}

	// save QR code as SVG file, 4 modules of quiet zone
	w, err := svg.New("./qrcode.svg")
	if err != nil {
		panic(err)
	}
	if err = qrc.Save(w); err != nil {
		panic(err)
	}

	// no quiet zone, bigger picture
	w2, err := svg.New("./qrcode_borderless.svg",
		svg.WithBorder(0),
		svg.WithPixelSize(400),
	)
	if err != nil {
		panic(err)
	}
	if err = qrc.Save(w2); err != nil {
		panic(err)
	}

	// several lines in one symbol, rendered without a writer
	text, err := qrsvg.JoinInputs([]string{"https://a.example", "", "https://b.example"})
	if err != nil {
		panic(err)
	}
	grid, err := qrsvg.Encode(text, qrsvg.WithLevel(qrsvg.LevelMedium))
	if err != nil {
		panic(err)
	}
	doc, err := svg.Render(grid, 4)
	if err != nil {
		panic(err)
	}

	fmt.Print(doc)
}
