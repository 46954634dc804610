package pdf

import (
	"fmt"

	gopdf "github.com/dslipak/pdf"
	lpdf "github.com/ledongthuc/pdf"
)

// ExtractText returns the plain text of the given 1-based pages. The
// ledongthuc reader is tried first as it has the more accurate extraction;
// dslipak serves as the fallback.
func ExtractText(filepath string, pages []int) ([]string, error) {
	texts, err := extractTextLedongthuc(filepath, pages)
	if err == nil {
		return texts, nil
	}
	return extractTextDslipak(filepath, pages)
}

func extractTextLedongthuc(filepath string, pages []int) ([]string, error) {
	f, r, err := lpdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with ledongthuc: %w", err)
	}
	defer f.Close()

	texts := make([]string, 0, len(pages))
	for _, nr := range pages {
		if nr < 1 || nr > r.NumPage() {
			return nil, fmt.Errorf("page %d out of range [1, %d]", nr, r.NumPage())
		}
		p := r.Page(nr)
		if p.V.IsNull() {
			texts = append(texts, "")
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", nr, err)
		}
		texts = append(texts, text)
	}
	return texts, nil
}

func extractTextDslipak(filepath string, pages []int) ([]string, error) {
	r, err := gopdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with dslipak: %w", err)
	}

	texts := make([]string, 0, len(pages))
	for _, nr := range pages {
		if nr < 1 || nr > r.NumPage() {
			return nil, fmt.Errorf("page %d out of range [1, %d]", nr, r.NumPage())
		}
		p := r.Page(nr)
		if p.V.IsNull() {
			texts = append(texts, "")
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", nr, err)
		}
		texts = append(texts, text)
	}
	return texts, nil
}
