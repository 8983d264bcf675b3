// Package i18n provides the localized strings for the UI and the templated
// question texts.
package i18n

import (
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CheerKey is the "|" separated list of praise shown after a correct answer.
const CheerKey = "CheerMessages"

// Localizer renders messages in the active language. It is safe for
// concurrent use.
type Localizer struct {
	bundle  *Bundle
	matcher language.Matcher

	mu      sync.RWMutex
	tag     language.Tag
	printer *message.Printer
	subs    map[int]func(language.Tag)
	nextSub int
}

// New creates a localizer over bundle with the system language active.
func New(bundle *Bundle) *Localizer {
	l := &Localizer{
		bundle:  bundle,
		matcher: language.NewMatcher(bundle.Tags()),
		subs:    map[int]func(language.Tag){},
	}
	l.tag = l.match(SystemLanguage())
	l.printer = message.NewPrinter(l.tag, message.Catalog(bundle.builder))
	return l
}

// NewDefault creates a localizer over the embedded catalogs.
func NewDefault() (*Localizer, error) {
	b, err := LoadEmbedded()
	if err != nil {
		return nil, err
	}
	return New(b), nil
}

// Supported returns the selectable languages, base locale first.
func (l *Localizer) Supported() []language.Tag {
	return l.bundle.Tags()
}

// Language returns the active language.
func (l *Localizer) Language() language.Tag {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tag
}

// SetLanguage switches to the supported language closest to tag and notifies
// subscribers. An empty tag selects the system language. Returns the
// language now active.
func (l *Localizer) SetLanguage(tag string) language.Tag {
	if strings.TrimSpace(tag) == "" {
		tag = SystemLanguage()
	}
	matched := l.match(tag)

	l.mu.Lock()
	l.tag = matched
	l.printer = message.NewPrinter(matched, message.Catalog(l.bundle.builder))
	subs := make([]func(language.Tag), 0, len(l.subs))
	for _, fn := range l.subs {
		subs = append(subs, fn)
	}
	l.mu.Unlock()

	for _, fn := range subs {
		fn(matched)
	}
	return matched
}

// Subscribe registers fn to be called after every language change. The
// returned func removes the subscription.
func (l *Localizer) Subscribe(fn func(language.Tag)) (unsubscribe func()) {
	l.mu.Lock()
	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.subs, id)
			l.mu.Unlock()
		})
	}
}

// Text formats the message for key with args in the active language. The
// base locale is used when the active one lacks key; an unknown key is
// returned as is.
func (l *Localizer) Text(key string, args ...any) string {
	l.mu.RLock()
	tag, p := l.tag, l.printer
	l.mu.RUnlock()

	if _, ok := l.bundle.Raw(tag, key); !ok {
		return key
	}
	return p.Sprintf(key, args...)
}

// Cheers returns the praise messages of the active language.
func (l *Localizer) Cheers() []string {
	raw, _ := l.bundle.Raw(l.Language(), CheerKey)
	return splitList(raw)
}

// CategoryName returns the display name of a category key such as
// "Category_Addition".
func (l *Localizer) CategoryName(key string) string {
	return l.Text(key)
}

func (l *Localizer) match(tag string) language.Tag {
	t, err := language.Parse(normalizeTag(tag))
	if err != nil {
		return l.bundle.Tags()[0]
	}
	_, idx, _ := l.matcher.Match(t)
	return l.bundle.Tags()[idx]
}

// SystemLanguage returns the language tag from the POSIX locale variables,
// or the base locale when none is set.
func SystemLanguage() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(name)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		return normalizeTag(v)
	}
	return BaseLocale
}

// normalizeTag turns "sv_SE.UTF-8" into "sv-SE".
func normalizeTag(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(s, "_", "-")
}
