// Package greeting renders the localized hello message.
package greeting

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/louisbranch/roman/internal/platform/i18n/catalog"
)

const (
	messageKey     = "web.greeting"
	defaultNameKey = "web.greeting.default_name"
)

// Greeter renders greetings from a catalog bundle.
type Greeter struct {
	bundle *catalog.Bundle
}

// New returns a Greeter over bundle, or the embedded catalog when nil.
func New(bundle *catalog.Bundle) Greeter {
	if bundle == nil {
		bundle = catalog.Default()
	}
	return Greeter{bundle: bundle}
}

// Greeting returns "Hello, {name}!" in locale. A blank name greets the
// localized default ("World").
func (g Greeter) Greeting(locale, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name, _ = g.bundle.Message(locale, defaultNameKey)
	}
	text, ok := g.bundle.Message(locale, messageKey)
	if !ok {
		return "Hello, " + name + "!"
	}
	tmpl, err := template.New(messageKey).Parse(text)
	if err != nil {
		return text
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]string{"Name": name}); err != nil {
		return text
	}
	return buf.String()
}

// Greeting greets name in the base locale.
func Greeting(name string) string {
	return New(nil).Greeting(catalog.BaseLocale, name)
}
