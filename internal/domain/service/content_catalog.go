package service

import "devotional/internal/domain/entity"

// ContentCatalog resolves localized push content
type ContentCatalog interface {
	// Resolve returns content for language, falling back to the default language
	// when language is empty or unsupported.
	Resolve(language string) entity.LocalizedContent

	// Languages lists the supported language codes
	Languages() []string
}
