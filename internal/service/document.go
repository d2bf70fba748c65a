package service

import (
	"bytes"
	"context"
	"regexp"
	"strconv"
	"time"

	"github.com/deppfellow/docgen/internal/document"
	"github.com/deppfellow/docgen/internal/middleware"
	"github.com/deppfellow/docgen/internal/model"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// DocumentService renders validated payloads into downloadable PDFs.
type DocumentService struct {
	renderer *document.Renderer
	logger   *zerolog.Logger
	now      func() time.Time
}

// NewDocumentService builds a DocumentService around renderer.
func NewDocumentService(renderer *document.Renderer, logger *zerolog.Logger) *DocumentService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &DocumentService{
		renderer: renderer,
		logger:   logger,
		now:      time.Now,
	}
}

// Invoice renders inv. The payload must already be validated.
func (s *DocumentService) Invoice(ctx context.Context, inv *model.Invoice) (*model.Attachment, error) {
	var voucherNo model.Text
	if inv.ClientInfo != nil {
		voucherNo = inv.ClientInfo.VoucherNo
	}

	filename := s.Filename("invoice", voucherNo)

	return s.render(ctx, filename, inv.Items.Len(), func(buf *bytes.Buffer) error {
		return s.renderer.RenderInvoice(buf, inv)
	})
}

// Voucher renders v. The payload must already be validated.
func (s *DocumentService) Voucher(ctx context.Context, v *model.Voucher) (*model.Attachment, error) {
	var voucherNo model.Text
	if v.VoucherInfo != nil {
		voucherNo = v.VoucherInfo.VoucherNo
	}

	filename := s.Filename("voucher", voucherNo)

	return s.render(ctx, filename, v.Flights.Len()+v.Itineraries.Len(), func(buf *bytes.Buffer) error {
		return s.renderer.RenderVoucher(buf, v)
	})
}

// Filename builds "<kind>-<id>.pdf". id is the document number, or the
// current Unix time in milliseconds when it is empty; every character outside
// [A-Za-z0-9_-] becomes "_".
func (s *DocumentService) Filename(kind string, id model.Text) string {
	raw := id.String()
	if raw == "" {
		raw = strconv.FormatInt(s.now().UnixMilli(), 10)
	}
	return kind + "-" + unsafeFilenameChars.ReplaceAllString(raw, "_") + ".pdf"
}

// render runs draw into a buffer so a failed render never produces a partial
// download.
func (s *DocumentService) render(ctx context.Context, filename string, entries int, draw func(*bytes.Buffer) error) (*model.Attachment, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "render cancelled")
	}

	logger := middleware.LoggerFromContext(ctx, s.logger)
	start := time.Now()

	var buf bytes.Buffer
	if err := draw(&buf); err != nil {
		logger.Error().Err(err).Str("filename", filename).Msg("render failed")
		return nil, errors.Wrapf(err, "render %s", filename)
	}

	logger.Debug().
		Str("filename", filename).
		Int("entries", entries).
		Int("size_bytes", buf.Len()).
		Dur("render_duration", time.Since(start)).
		Msg("document rendered")

	return &model.Attachment{
		Filename:    filename,
		ContentType: model.ContentTypePDF,
		Data:        buf.Bytes(),
	}, nil
}
