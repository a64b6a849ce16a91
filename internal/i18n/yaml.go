package i18n

import (
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v2"
)

type yamlDictionary struct {
	entries map[string]string
}

func (d *yamlDictionary) Lookup(key string) (data string, ok bool) {
	if value, ok := d.entries[key]; ok {
		// \x02 is STX (start of text), which marks the value as a literal message
		return "\x02" + value, true
	}
	return "", false
}

// NewCatalogFromFolder reads all the yml translation files at the root of
// dir and builds a message catalog out of them. Each file must be named
// after the two-letter code of its language, e.g. "es.yml" for Spanish.
func NewCatalogFromFolder(dir fs.FS, fallbackLang string) (catalog.Catalog, error) {
	files, err := fs.ReadDir(dir, ".")
	if err != nil {
		return nil, err
	}
	translations := map[string]catalog.Dictionary{}
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".yml" {
			continue
		}
		contents, err := fs.ReadFile(dir, file.Name())
		if err != nil {
			return nil, err
		}
		dict, err := parseDict(contents)
		if err != nil {
			return nil, err
		}
		lang := strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
		translations[lang] = dict
	}
	fallback := language.MustParse(fallbackLang)
	return catalog.NewFromMap(translations, catalog.Fallback(fallback))
}

func parseDict(file []byte) (catalog.Dictionary, error) {
	entries := map[string]string{}
	if err := yaml.Unmarshal(file, &entries); err != nil {
		return nil, err
	}
	return &yamlDictionary{entries: entries}, nil
}
