package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/deppfellow/docgen/internal/document"
	"github.com/deppfellow/docgen/internal/errs"
	"github.com/deppfellow/docgen/internal/logger"
	"github.com/deppfellow/docgen/internal/model"
	"github.com/deppfellow/docgen/internal/service"
	"github.com/deppfellow/docgen/internal/validation"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	inPath  string
	outPath string
)

// render invoice|voucher: validate a payload file and write the PDF.
func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a payload file to PDF without the HTTP server",
	}

	cmd.PersistentFlags().StringVar(&inPath, "in", "", "JSON payload file")
	cmd.PersistentFlags().StringVar(&outPath, "out", "", "output PDF (default: the download filename in the current directory)")
	_ = cmd.MarkPersistentFlagRequired("in")

	cmd.AddCommand(
		renderKindCmd("invoice", "Render an invoice payload", func(s *service.DocumentService, data []byte) (*model.Attachment, error) {
			var inv model.Invoice
			if err := decodePayload(data, &inv); err != nil {
				return nil, err
			}
			return s.Invoice(context.Background(), &inv)
		}),
		renderKindCmd("voucher", "Render a voucher payload", func(s *service.DocumentService, data []byte) (*model.Attachment, error) {
			var v model.Voucher
			if err := decodePayload(data, &v); err != nil {
				return nil, err
			}
			return s.Voucher(context.Background(), &v)
		}),
	)
	return cmd
}

func renderKindCmd(use, short string, run func(*service.DocumentService, []byte) (*model.Attachment, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(inPath)
			if err != nil {
				return err
			}

			log := logger.NewLogger(cfg.Observability)
			renderer := document.NewRenderer(
				document.WithCompression(cfg.Render.Compress),
				document.WithCreator(cfg.Render.Creator),
				document.WithAuthor(cfg.Render.Author),
			)

			att, err := run(service.NewDocumentService(renderer, &log), data)
			if err != nil {
				return err
			}

			out := outPath
			if out == "" {
				out = att.Filename
			}
			if err := os.WriteFile(out, att.Data, 0o644); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, len(att.Data))
			return nil
		},
	}
}

// decodePayload applies the same validation as the HTTP endpoints.
func decodePayload(data []byte, payload validation.Validatable) error {
	if err := json.Unmarshal(data, payload); err != nil {
		return errors.Wrap(err, "decode payload")
	}

	if err := validation.Validate(payload); err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) && len(httpErr.Missing) > 0 {
			return fmt.Errorf("%s: %v", httpErr.Message, httpErr.Missing)
		}
		return err
	}
	return nil
}
