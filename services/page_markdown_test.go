package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageMarkdown(t *testing.T) {
	doc := `<html><head><title>ignored</title></head><body>
		<main>
			<section id="services"><h2>What We Do</h2><p>Websites and <strong>SaaS</strong></p>
			<ul><li>CMS Integration</li><li>SEO Optimization</li></ul></section>
		</main>
	</body></html>`

	md, err := PageMarkdown(strings.NewReader(doc))
	require.NoError(t, err)

	out := string(md)
	assert.Contains(t, out, "## What We Do")
	assert.Contains(t, out, "**SaaS**")
	assert.Contains(t, out, "CMS Integration")
	assert.NotContains(t, out, "ignored")
}

func TestPageMarkdownWithoutMain(t *testing.T) {
	_, err := PageMarkdown(strings.NewReader(`<html><body><p>no main</p></body></html>`))
	assert.ErrorContains(t, err, "no <main>")
}
