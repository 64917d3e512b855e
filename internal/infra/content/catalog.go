// Package content provides the localized daily push texts.
package content

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"devotional/config"
	"devotional/internal/domain/entity"
	"devotional/internal/domain/service"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// catalogs for local runs
	_ "gocloud.dev/blob/gcsblob"  // gs:// catalogs in production
	"gopkg.in/yaml.v3"
)

// Entry is the title and body for one language
type Entry struct {
	Title string `yaml:"title" validate:"required"`
	Body  string `yaml:"body" validate:"required"`
}

// Document is the on-disk catalog format
type Document struct {
	ImageURL  string           `yaml:"imageUrl" validate:"omitempty,url"`
	Languages map[string]Entry `yaml:"languages" validate:"required,min=1,dive,keys,required,endkeys"`
}

// DefaultDocument is the built-in catalog used when no override is configured
func DefaultDocument() Document {
	return Document{
		Languages: map[string]Entry{
			"es": {
				Title: "Devocional Diario",
				Body:  "¡Es hora de tu devocional diario!\n¡Recuerda conectarte hoy, con la palabra de Dios!",
			},
			"en": {
				Title: "Daily Devotional",
				Body:  "It's time for your daily devotional!\nRemember to connect today with the word of God!",
			},
			"pt": {
				Title: "Devocional Diário",
				Body:  "É hora do seu devocional diário!\nLembre-se de se conectar hoje com a palavra de Deus!",
			},
			"fr": {
				Title: "Dévotion Quotidienne",
				Body:  "C'est l'heure de votre dévotion quotidienne !\nN'oubliez pas de vous connecter aujourd'hui avec la parole de Dieu !",
			},
		},
	}
}

type catalog struct {
	defaultLanguage string
	imageURL        string
	entries         map[string]Entry
	languages       []string
}

// CatalogParams holds dependencies for the content catalog
type CatalogParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewCatalog builds the catalog from the built-in texts, replaced by the
// configured blob document when one is set
func NewCatalog(params CatalogParams) (service.ContentCatalog, error) {
	cfg := params.Config.Dispatch
	doc := DefaultDocument()

	if cfg.CatalogBucket != "" {
		bucket, err := blob.OpenBucket(params.Ctx, cfg.CatalogBucket)
		if err != nil {
			return nil, errors.Wrapf(err, "open catalog bucket %s", cfg.CatalogBucket)
		}
		defer bucket.Close()

		doc, err = LoadDocument(params.Ctx, bucket, cfg.CatalogKey)
		if err != nil {
			return nil, err
		}

		params.Logger.Info("Loaded push content catalog",
			slog.String("bucket", cfg.CatalogBucket),
			slog.String("key", cfg.CatalogKey),
			slog.Int("languages", len(doc.Languages)),
		)
	}

	// The configured image applies unless the document names its own
	if doc.ImageURL == "" {
		doc.ImageURL = cfg.ImageURL
	}

	return New(doc, cfg.DefaultLanguage)
}

// LoadDocument reads and validates a YAML catalog from bucket
func LoadDocument(ctx context.Context, bucket *blob.Bucket, key string) (Document, error) {
	raw, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return Document{}, errors.Wrapf(err, "read catalog %s", key)
	}

	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Document{}, errors.Wrapf(err, "parse catalog %s", key)
	}

	if err := validator.New().Struct(doc); err != nil {
		return Document{}, errors.Wrapf(err, "invalid catalog %s", key)
	}

	return doc, nil
}

// New builds a catalog from doc. defaultLanguage must be one of its languages.
func New(doc Document, defaultLanguage string) (service.ContentCatalog, error) {
	entries := make(map[string]Entry, len(doc.Languages))
	for code, entry := range doc.Languages {
		entries[normalizeLanguage(code)] = entry
	}

	defaultLanguage = normalizeLanguage(defaultLanguage)
	if _, ok := entries[defaultLanguage]; !ok {
		return nil, errors.Errorf("default language %q missing from catalog", defaultLanguage)
	}

	languages := make([]string, 0, len(entries))
	for code := range entries {
		languages = append(languages, code)
	}
	slices.Sort(languages)

	return &catalog{
		defaultLanguage: defaultLanguage,
		imageURL:        doc.ImageURL,
		entries:         entries,
		languages:       languages,
	}, nil
}

// Resolve returns the entry for language, trying the base subtag ("es" for
// "es-CO") before falling back to the default language
func (c *catalog) Resolve(language string) entity.LocalizedContent {
	code := normalizeLanguage(language)

	entry, ok := c.entries[code]
	if !ok {
		base, _, _ := strings.Cut(code, "-")
		code = base
		entry, ok = c.entries[code]
	}
	if !ok {
		code = c.defaultLanguage
		entry = c.entries[code]
	}

	return entity.LocalizedContent{
		Language: code,
		Title:    entry.Title,
		Body:     entry.Body,
		ImageURL: c.imageURL,
	}
}

// Languages lists the supported language codes
func (c *catalog) Languages() []string {
	return slices.Clone(c.languages)
}

func normalizeLanguage(code string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(code)), "_", "-")
}
