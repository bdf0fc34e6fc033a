package web

import (
	"bytes"
	"embed"
	"encoding/base64"
	"html/template"
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/pkg/errors"
	"github.com/rs/xid"

	"github.com/Mictilt/qrsvg"
	"github.com/Mictilt/qrsvg/internal/config"
	"github.com/Mictilt/qrsvg/internal/form"
	"github.com/Mictilt/qrsvg/internal/logging"
	"github.com/Mictilt/qrsvg/writer/standard"
	"github.com/Mictilt/qrsvg/writer/svg"
)

//go:embed templates/index.html
var templatesFS embed.FS

const (
	_sessionFieldsKey = "fields"

	_svgKeyPrefix  = "svg:"
	_textKeyPrefix = "text:"
)

// Handler serves the form. The field counter lives in the session, rendered
// documents in the shared storage until cfg.Download.TTL expires.
type Handler struct {
	cfg      config.Config
	level    qrsvg.Level
	store    fiber.Storage
	sessions *session.Store
	tmpl     *template.Template
}

// NewHandler parses the page template and the configured level.
func NewHandler(cfg config.Config, store fiber.Storage) (*Handler, error) {
	level, err := qrsvg.ParseLevel(cfg.QR.Level)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}

	return &Handler{
		cfg:   cfg,
		level: level,
		store: store,
		sessions: session.New(session.Config{
			Storage: store,
		}),
		tmpl: tmpl,
	}, nil
}

type field struct {
	Key   string
	Label string
	Value string
}

type result struct {
	Preview  template.URL
	SVG      string
	PNG      string
	Filename string
}

type page struct {
	Fields   []field
	Warnings []string
	Result   *result
}

// Index renders the empty form with the session's field count.
func (h *Handler) Index(c *fiber.Ctx) error {
	counter, _, err := h.counter(c)
	if err != nil {
		return err
	}

	return h.render(c, &page{Fields: h.fields(c, counter)})
}

// AddField shows one more field, warning at the maximum.
func (h *Handler) AddField(c *fiber.Ctx) error {
	counter, sess, err := h.counter(c)
	if err != nil {
		return err
	}

	p := &page{}
	if err := counter.Add(); errors.Is(err, form.ErrMaxFields) {
		logging.Warn("Field limit reached", "max", counter.Max())
		p.Warnings = append(p.Warnings, form.MaxFieldsWarning)
	}
	if err := h.saveCounter(sess, counter); err != nil {
		return err
	}

	p.Fields = h.fields(c, counter)
	return h.render(c, p)
}

// RemoveField hides the last field, keeping at least one.
func (h *Handler) RemoveField(c *fiber.Ctx) error {
	counter, sess, err := h.counter(c)
	if err != nil {
		return err
	}

	counter.Remove()
	if err := h.saveCounter(sess, counter); err != nil {
		return err
	}

	return h.render(c, &page{Fields: h.fields(c, counter)})
}

// Generate joins the non-empty fields, encodes and renders them, and keeps
// the document for download.
func (h *Handler) Generate(c *fiber.Ctx) error {
	counter, _, err := h.counter(c)
	if err != nil {
		return err
	}

	p := &page{Fields: h.fields(c, counter)}
	inputs := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		inputs[i] = f.Value
	}

	text, err := qrsvg.JoinInputs(inputs)
	if err != nil {
		p.Warnings = append(p.Warnings, form.EmptyWarning)
		return h.render(c, p)
	}

	grid, err := qrsvg.Encode(text, qrsvg.WithLevel(h.level))
	if err != nil {
		logging.Warn("Encoding failed", "error", err, "bytes", len(text))
		p.Warnings = append(p.Warnings, form.TooLongWarning)
		return h.render(c, p)
	}

	doc, err := svg.Render(grid, h.cfg.QR.Border, svg.WithPixelSize(h.cfg.QR.PixelSize))
	if err != nil {
		return err
	}

	id := xid.New().String()
	if err := h.store.Set(_svgKeyPrefix+id, []byte(doc), h.cfg.Download.TTL); err != nil {
		return errors.Wrap(err, "store svg")
	}
	if err := h.store.Set(_textKeyPrefix+id, []byte(text), h.cfg.Download.TTL); err != nil {
		return errors.Wrap(err, "store text")
	}

	logging.Info("QR code generated", "id", id, "size", grid.Size(), "fields", len(strings.Split(text, "\n")))

	p.Result = &result{
		Preview:  template.URL("data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(doc))),
		SVG:      "/download/" + id,
		PNG:      "/download/" + id + "/png",
		Filename: h.cfg.Download.Filename,
	}
	return h.render(c, p)
}

// DownloadSVG sends the stored document byte for byte.
func (h *Handler) DownloadSVG(c *fiber.Ctx) error {
	doc, err := h.lookup(_svgKeyPrefix, c.Params("id"))
	if err != nil {
		return err
	}

	c.Attachment(h.cfg.Download.Filename)
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(doc)
}

// DownloadPNG re-encodes the stored text and rasterizes it.
func (h *Handler) DownloadPNG(c *fiber.Ctx) error {
	text, err := h.lookup(_textKeyPrefix, c.Params("id"))
	if err != nil {
		return err
	}

	grid, err := qrsvg.Encode(string(text), qrsvg.WithLevel(h.level))
	if err != nil {
		return errors.Wrap(err, "re-encode stored text")
	}

	var buf bytesCloser
	w := standard.NewWithWriter(&buf,
		standard.WithBorderWidth(h.cfg.QR.Border),
		standard.WithQRWidth(uint8(h.cfg.QR.BlockWidth)),
	)
	if err := w.WriteGrid(grid); err != nil {
		return err
	}

	filename := strings.TrimSuffix(h.cfg.Download.Filename, path.Ext(h.cfg.Download.Filename)) + ".png"
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, standard.PNG_FORMAT.ContentType())
	return c.Send(buf.Bytes())
}

func (h *Handler) lookup(prefix, id string) ([]byte, error) {
	if _, err := xid.FromString(id); err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Not Found")
	}

	data, err := h.store.Get(prefix + id)
	if err != nil {
		return nil, errors.Wrap(err, "read storage")
	}
	if data == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "QR code expired or unknown")
	}
	return data, nil
}

func (h *Handler) counter(c *fiber.Ctx) (form.Counter, *session.Session, error) {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return form.Counter{}, nil, errors.Wrap(err, "load session")
	}

	n, _ := sess.Get(_sessionFieldsKey).(int)
	return form.NewCounter(n, h.cfg.Form.MaxFields), sess, nil
}

func (h *Handler) saveCounter(sess *session.Session, counter form.Counter) error {
	sess.Set(_sessionFieldsKey, counter.N())
	return errors.Wrap(sess.Save(), "save session")
}

// fields lists the counter's fields with the values posted in this request.
func (h *Handler) fields(c *fiber.Ctx, counter form.Counter) []field {
	fields := make([]field, counter.N())
	for i := range fields {
		key := form.FieldKey(i)
		fields[i] = field{
			Key:   key,
			Label: form.FieldLabel(i),
			Value: c.FormValue(key),
		}
	}
	return fields
}

func (h *Handler) render(c *fiber.Ctx, p *page) error {
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, p); err != nil {
		return errors.Wrap(err, "render page")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

type bytesCloser struct {
	bytes.Buffer
}

func (b *bytesCloser) Close() error { return nil }
