package services

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdownOnce   sync.Once
	markdownEngine goldmark.Markdown
	richTextPolicy *bluemonday.Policy
)

func initRichText() {
	markdownOnce.Do(func() {
		markdownEngine = goldmark.New(
			goldmark.WithExtensions(extension.Typographer),
		)

		// Content copy only needs emphasis, inline code and links
		p := bluemonday.NewPolicy()
		p.AllowElements("p", "strong", "em", "code", "br")
		p.AllowAttrs("href").OnElements("a")
		p.AllowStandardURLs()
		p.RequireNoReferrerOnLinks(true)
		richTextPolicy = p
	})
}

// RenderMarkdown converts a markdown snippet to sanitized HTML
func RenderMarkdown(src string) (string, error) {
	initRichText()

	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return string(bytes.TrimSpace(richTextPolicy.SanitizeBytes(buf.Bytes()))), nil
}
