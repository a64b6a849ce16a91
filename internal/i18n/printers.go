package i18n

import (
	"io/fs"
	"sort"

	"golang.org/x/text/message"
)

// Printers loads every translation dictionary found in dir and returns one
// message printer per available language, keyed by its two-letter code.
// Messages without a translation fall back to fallbackLang.
func Printers(dir fs.FS, fallbackLang string) (map[string]*message.Printer, error) {
	cat, err := NewCatalogFromFolder(dir, fallbackLang)
	if err != nil {
		return nil, err
	}

	message.DefaultCatalog = cat

	printers := make(map[string]*message.Printer, len(cat.Languages()))
	for _, tag := range cat.Languages() {
		printers[tag.String()] = message.NewPrinter(tag)
	}
	return printers, nil
}

// SupportedLanguages returns the sorted language codes of the given
// printers, suitable for building the language-prefixed route group.
func SupportedLanguages(printers map[string]*message.Printer) []string {
	languages := make([]string, 0, len(printers))
	for lang := range printers {
		languages = append(languages, lang)
	}
	sort.Strings(languages)
	return languages
}
