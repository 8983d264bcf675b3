package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// BaseLocale is the source locale every other catalog must cover.
const BaseLocale = "en"

//go:embed locales/*.json
var embeddedLocales embed.FS

//go:embed catalog.schema.json
var catalogSchema []byte

type catalogFile struct {
	Locale   string            `json:"locale"`
	Messages map[string]string `json:"messages"`
}

// Bundle holds the messages of every loaded locale, registered in an x/text
// catalog for formatting.
type Bundle struct {
	tags     []language.Tag
	messages map[language.Tag]map[string]string
	builder  *catalog.Builder
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedLocales)
}

// LoadFromFS loads locales/*.json from fsys. Every file is validated against
// the catalog schema and every locale must define all base locale keys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.json")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}

	base := language.Make(BaseLocale)
	b := &Bundle{
		messages: map[language.Tag]map[string]string{},
		builder:  catalog.NewBuilder(catalog.Fallback(base)),
	}

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		file, err := parseCatalog(schema, data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if err := b.add(path, file); err != nil {
			return nil, err
		}
	}

	baseMessages, ok := b.messages[base]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	for _, tag := range b.tags {
		for key := range baseMessages {
			if _, ok := b.messages[tag][key]; !ok {
				return nil, fmt.Errorf("locale %s is missing key %q", tag, key)
			}
		}
	}

	// Base locale first so language matching falls back to it.
	sort.SliceStable(b.tags, func(i, j int) bool {
		return b.tags[i] == base && b.tags[j] != base
	})
	return b, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal(catalogSchema, &def); err != nil {
		return nil, fmt.Errorf("parse catalog schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	const url = "schema://catalog.json"
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add catalog schema: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	return compiled, nil
}

func parseCatalog(schema *jsonschema.Schema, data []byte) (catalogFile, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return catalogFile{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		return catalogFile{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var file catalogFile
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&file); err != nil {
		return catalogFile{}, fmt.Errorf("decode: %w", err)
	}
	return file, nil
}

func (b *Bundle) add(path string, file catalogFile) error {
	tag, err := language.Parse(file.Locale)
	if err != nil {
		return fmt.Errorf("catalog %s: parse locale %q: %w", path, file.Locale, err)
	}
	if _, exists := b.messages[tag]; exists {
		return fmt.Errorf("catalog %s: locale %q already defined", path, tag)
	}

	messages := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		if err := b.builder.SetString(tag, key, value); err != nil {
			return fmt.Errorf("catalog %s: register %q: %w", path, key, err)
		}
		messages[key] = value
	}
	b.messages[tag] = messages
	b.tags = append(b.tags, tag)
	return nil
}

// Tags returns the loaded locales, base locale first.
func (b *Bundle) Tags() []language.Tag {
	out := make([]language.Tag, len(b.tags))
	copy(out, b.tags)
	return out
}

// Raw returns the unformatted message for key in tag, falling back to the
// base locale.
func (b *Bundle) Raw(tag language.Tag, key string) (string, bool) {
	if msg, ok := b.messages[tag][key]; ok {
		return msg, true
	}
	msg, ok := b.messages[language.Make(BaseLocale)][key]
	return msg, ok
}

// Keys returns the sorted message keys of the base locale.
func (b *Bundle) Keys() []string {
	base := b.messages[language.Make(BaseLocale)]
	keys := make([]string, 0, len(base))
	for k := range base {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// splitList splits a "|" separated message into its trimmed, non-empty parts.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, "|") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
