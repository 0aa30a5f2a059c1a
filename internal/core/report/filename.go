package report

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FileName returns an ascii file name for the rendered laudo
// e.g. "laudo-padaria-sao-joao-l2025-07.pdf"
func FileName(meta EntityMeta) string {
	parts := []string{"laudo"}
	if s := Slug(meta.CompanyName); s != "" {
		parts = append(parts, s)
	}
	switch {
	case meta.LoteCode != "":
		if s := Slug(meta.LoteCode); s != "" {
			parts = append(parts, s)
		}
	case meta.LoteID > 0:
		parts = append(parts, "lote-"+strconv.FormatInt(meta.LoteID, 10))
	}
	return strings.Join(parts, "-") + ".pdf"
}

// Slug folds accents, lowercases and collapses anything outside [a-z0-9] into single dashes
func Slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	dash := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
