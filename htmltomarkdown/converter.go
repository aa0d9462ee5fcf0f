// Package htmltomarkdown renders extracted documentation HTML as Markdown.
package htmltomarkdown

import (
	"net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/docsearch"
)

// Ensure Converter implements docsearch.Converter at compile time.
var _ docsearch.Converter = (*Converter)(nil)

// Converter implements docsearch.Converter with tables kept as Markdown
// tables so API reference pages survive chunking.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert renders html as Markdown, resolving relative links against pageURL.
func (c *Converter) Convert(html, pageURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docsearch.Errorf(docsearch.EINVALID, "empty HTML input")
	}

	var markdown string
	var err error
	if origin := originOf(pageURL); origin != "" {
		markdown, err = c.conv.ConvertString(html, converter.WithDomain(origin))
	} else {
		markdown, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", docsearch.WrapError(docsearch.EINTERNAL, err, "convert %s", pageURL)
	}
	return strings.TrimSpace(markdown), nil
}

// originOf returns the scheme and host of pageURL, or "" if it is not absolute.
func originOf(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
