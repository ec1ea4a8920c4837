package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/kahvecikaan/catalog-api/internal/repository"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// symbolWords spells out symbols that would otherwise be dropped from a slug
var symbolWords = strings.NewReplacer(
	"&", "and",
	"$", "dollar",
	"%", "percent",
	"<", "less",
	">", "greater",
	"|", "or",
	"€", "euro",
	"£", "pound",
	"¥", "yen",
	"¢", "cent",
	"ß", "ss",
	"æ", "ae",
	"Æ", "AE",
	"ø", "o",
	"Ø", "O",
	"đ", "d",
	"Đ", "D",
	"ł", "l",
	"Ł", "L",
)

// Slugify turns a title into a lowercase, dash separated identifier made of
// ASCII letters and digits. Whitespace and dashes separate words; any other
// punctuation is dropped, so "Men's T-Shirt" becomes "mens-t-shirt".
func Slugify(title string) string {
	s := symbolWords.Replace(title)

	stripMarks := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}

	var b strings.Builder
	separate := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if separate && b.Len() > 0 {
				b.WriteByte('-')
			}
			separate = false
			b.WriteRune(r)
		case r == '-', unicode.IsSpace(r):
			separate = true
		}
	}
	return b.String()
}

// SlugGenerator derives page URLs that are not yet used by any product
type SlugGenerator struct {
	repo repository.ProductRepository
	now  func() time.Time
}

func NewSlugGenerator(repo repository.ProductRepository) *SlugGenerator {
	return &SlugGenerator{repo: repo, now: time.Now}
}

// Generate returns the slug of title, suffixed with the current Unix time in
// milliseconds when a product already uses the plain slug. Only one suffix is
// tried; a collision on the suffixed value surfaces later as a duplicate key.
func (g *SlugGenerator) Generate(ctx context.Context, title string) (string, error) {
	slug := Slugify(title)
	if slug == "" {
		return "", nil
	}

	exists, err := g.repo.PageURLExists(ctx, slug)
	if err != nil {
		return "", err
	}
	if !exists {
		return slug, nil
	}

	return fmt.Sprintf("%s-%d", slug, g.now().UnixMilli()), nil
}
