package services

import (
	"errors"
	"fmt"
	"io"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
)

// PageMarkdown converts the <main> element of a rendered page to markdown
func PageMarkdown(r io.Reader) ([]byte, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	main := findElement(doc, "main")
	if main == nil {
		return nil, errors.New("page has no <main> element")
	}

	md, err := htmltomarkdown.ConvertNode(main)
	if err != nil {
		return nil, fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}
	return md, nil
}
