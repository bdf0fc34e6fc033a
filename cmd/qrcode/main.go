// Command qrcode renders QR codes as SVG or PNG, or serves the web form.
//
//	qrcode render -o site.svg https://example.com
//	qrcode render -f png -o - https://a.example https://b.example > qr.png
//	qrcode serve --config config.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/Mictilt/qrsvg"
	"github.com/Mictilt/qrsvg/internal/config"
	"github.com/Mictilt/qrsvg/internal/logging"
	"github.com/Mictilt/qrsvg/internal/web"
	"github.com/Mictilt/qrsvg/writer/standard"
	"github.com/Mictilt/qrsvg/writer/svg"
)

// _defaultModuleWidth is the PNG module width in pixels when --size is unset.
const _defaultModuleWidth = 20

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "qrcode",
		Usage:     "render QR codes as SVG",
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			renderCommand(),
			serveCommand(),
		},
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "encode TEXT, one line per argument, and write the symbol",
		ArgsUsage: "TEXT...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "qrcode.svg",
				Usage:   "output file, - for stdout",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "svg",
				Usage:   "svg or png",
			},
			&cli.IntFlag{
				Name:    "border",
				Aliases: []string{"b"},
				Value:   4,
				Usage:   "quiet zone in modules",
			},
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Value:   "low",
				Usage:   "error correction level: low, medium, quart, high",
			},
			&cli.IntFlag{
				Name:  "size",
				Usage: "svg width/height in pixels (default 200), or png module width (default 20)",
			},
		},
		Action: render,
	}
}

func render(c *cli.Context) error {
	text, err := qrsvg.JoinInputs(c.Args().Slice())
	if err != nil {
		return errors.New("nothing to encode, pass at least one non-empty TEXT")
	}

	level, err := qrsvg.ParseLevel(c.String("level"))
	if err != nil {
		return err
	}

	grid, err := qrsvg.Encode(text, qrsvg.WithLevel(level))
	if err != nil {
		return errors.Wrap(err, "encode")
	}

	out, err := openOutput(c.App.Writer, c.String("output"))
	if err != nil {
		return err
	}

	var w gridWriter
	switch strings.ToLower(c.String("format")) {
	case "svg":
		w = svg.NewWithWriter(out,
			svg.WithBorder(c.Int("border")),
			svg.WithPixelSize(c.Int("size")),
		)
	case "png":
		width := c.Int("size")
		if width > 255 || width <= 0 {
			width = _defaultModuleWidth
		}
		w = standard.NewWithWriter(out,
			standard.WithBorderWidth(c.Int("border")),
			standard.WithQRWidth(uint8(width)),
		)
	default:
		_ = out.Close()
		return errors.Errorf("unknown format %q", c.String("format"))
	}

	if err = w.WriteGrid(grid); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

type gridWriter interface {
	WriteGrid(grid qrsvg.ModuleGrid) error
	Close() error
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func openOutput(stdout io.Writer, name string) (io.WriteCloser, error) {
	if name == "-" {
		return nopCloser{stdout}, nil
	}

	fd, err := os.Create(name)
	if err != nil {
		return nil, errors.Wrap(err, "create output")
	}
	return fd, nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the web form",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file, defaults to $CONFIG_PATH or config.yaml",
			},
		},
		Action: serve,
	}
}

func serve(c *cli.Context) (err error) {
	// config loading panics on invalid values
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("startup failed: %v", r)
		}
	}()

	var cfg config.Config
	if path := c.String("config"); path != "" {
		cfg = config.LoadPath(path)
	} else {
		cfg = config.Load()
	}

	logging.InitLogger(
		cfg.Logger.File,
		cfg.Logger.MaxSizeMB,
		cfg.Logger.MaxBackups,
		cfg.Logger.MaxAgeDays,
		cfg.Logger.Compress,
		cfg.Logger.Level,
	)

	store := web.NewStorage(cfg)
	defer store.Close()

	app, err := web.New(cfg, store)
	if err != nil {
		return err
	}

	listenErr := make(chan error, 1)
	go func() {
		logging.Info("Listening", "addr", cfg.Server.Addr)
		listenErr <- app.Listen(cfg.Server.Addr)
	}()

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigint)

	select {
	case err := <-listenErr:
		return errors.Wrap(err, "listen")
	case <-sigint:
	}

	logging.Warn("Shutdown signal received, closing server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logging.Error("Server forced to shutdown", "error", err)
	}

	logging.Info("Server stopped cleanly")
	return nil
}
