package models

// ReferenceKind names a localized lookup table.
type ReferenceKind string

const (
	ReferenceCategory    ReferenceKind = "categories"
	ReferenceRegion      ReferenceKind = "regions"
	ReferenceArticleType ReferenceKind = "article_types"
	ReferenceTag         ReferenceKind = "tags"
)

// Valid reports whether the kind maps to a known table.
func (k ReferenceKind) Valid() bool {
	switch k {
	case ReferenceCategory, ReferenceRegion, ReferenceArticleType, ReferenceTag:
		return true
	}
	return false
}

// ReferenceItem is a row of any localized lookup table.
type ReferenceItem struct {
	ID     int64  `db:"id"`
	Key    string `db:"key"`
	NameUz string `db:"name_uz"`
	NameRu string `db:"name_ru"`
	NameEn string `db:"name_en"`
}

// Name returns the label for lang, falling back to the Uzbek label when the
// translation is missing.
func (r ReferenceItem) Name(lang Lang) string {
	var name string
	switch lang {
	case LangRu:
		name = r.NameRu
	case LangEn:
		name = r.NameEn
	default:
		name = r.NameUz
	}
	if name == "" {
		return r.NameUz
	}
	return name
}
