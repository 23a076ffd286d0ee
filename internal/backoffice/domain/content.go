package domain

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// TechnicalSheet is an editable technique page of the public site. Editing is
// gated by the edit_content capability; only published sheets are served to
// the marketing pages.
type TechnicalSheet struct {
	ID        string
	Title     string
	Slug      string
	Content   string
	Category  string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SheetCategories is the closed set of technical sheet categories.
var SheetCategories = []string{
	"techniques-base",
	"techniques-avancees",
	"armes",
	"etiquette",
	"histoire",
	"autre",
}

func ValidSheetCategory(c string) bool {
	for _, v := range SheetCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Video is a pedagogical video reference managed by content creators.
type Video struct {
	ID          string
	Title       string
	URL         string
	Description string
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Slugify derives a URL slug from a title: diacritics stripped, lowercased,
// non-alphanumeric runs collapsed to single hyphens.
func Slugify(title string) string {
	decomposed := norm.NFD.String(strings.ToLower(title))

	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from decomposition
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
