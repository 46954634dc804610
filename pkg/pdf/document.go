package pdf

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFDocument implements Document and Editor using pdfcpu.
type PDFDocument struct {
	ctx      *model.Context
	filepath string
}

// Open opens a PDF file and returns an editable document.
func Open(filepath string) (*PDFDocument, error) {
	return OpenWithPassword(filepath, "")
}

// OpenWithPassword opens a password-protected PDF file.
func OpenWithPassword(filepath string, password string) (*PDFDocument, error) {
	conf := model.NewDefaultConfiguration()
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}

	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}

	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("invalid PDF: %w", err)
	}

	return &PDFDocument{ctx: ctx, filepath: filepath}, nil
}

// PageCount returns the total number of pages.
func (d *PDFDocument) PageCount() int {
	return d.ctx.PageCount
}

// Filepath returns the path the document was opened from.
func (d *PDFDocument) Filepath() string {
	return d.filepath
}

// Close releases resources associated with the document. pdfcpu holds no
// open file handles once the context is read.
func (d *PDFDocument) Close() error {
	d.ctx = nil
	return nil
}

// Collect replaces the page sequence with the given 1-based page numbers in
// order, duplicating and dropping pages as the order dictates.
func (d *PDFDocument) Collect(order []int) error {
	rs, err := d.reader()
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := api.Collect(rs, &out, pageStrings(order), nil); err != nil {
		return fmt.Errorf("failed to collect pages: %w", err)
	}
	return d.reload(out.Bytes())
}

// Rotate adds a clockwise rotation delta in degrees to the given pages.
func (d *PDFDocument) Rotate(delta int, pages []int) error {
	if delta%360 == 0 || len(pages) == 0 {
		return nil
	}
	rs, err := d.reader()
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := api.Rotate(rs, &out, delta, pageStrings(pages), nil); err != nil {
		return fmt.Errorf("failed to rotate pages: %w", err)
	}
	return d.reload(out.Bytes())
}

// SaveAs writes the document to path.
func (d *PDFDocument) SaveAs(path string) error {
	if err := api.WriteContextFile(d.ctx, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// reader serializes the current context for the pdfcpu stream-based APIs.
func (d *PDFDocument) reader() (*bytes.Reader, error) {
	var buf bytes.Buffer
	if err := api.WriteContext(d.ctx, &buf); err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return bytes.NewReader(buf.Bytes()), nil
}

// reload replaces the context with a freshly parsed one.
func (d *PDFDocument) reload(b []byte) error {
	ctx, err := api.ReadContext(bytes.NewReader(b), model.NewDefaultConfiguration())
	if err != nil {
		return fmt.Errorf("failed to reload document: %w", err)
	}
	d.ctx = ctx
	return nil
}

func pageStrings(pages []int) []string {
	out := make([]string, len(pages))
	for i, p := range pages {
		out[i] = strconv.Itoa(p)
	}
	return out
}
