package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAnchors(t *testing.T) {
	t.Run("clean document", func(t *testing.T) {
		doc := `<html><body>
			<nav><a href="#services">Services</a><a href="#contact">Contact</a><a href="mailto:x@y.z">Mail</a></nav>
			<section id="services"></section>
			<section id="contact"><a href="#services">Back</a></section>
		</body></html>`
		report, err := CheckAnchors(strings.NewReader(doc))
		require.NoError(t, err)
		assert.NoError(t, report.Err())
		assert.Equal(t, []string{"services", "contact", "services"}, report.Links)
		assert.Equal(t, map[string]int{"services": 1, "contact": 1}, report.Sections)
	})

	t.Run("dangling link", func(t *testing.T) {
		doc := `<a href="#pricing">Pricing</a><section id="services"></section>`
		report, err := CheckAnchors(strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, []string{"pricing"}, report.Dangling)
		assert.ErrorContains(t, report.Err(), "#pricing has no target")
	})

	t.Run("duplicate id", func(t *testing.T) {
		doc := `<a href="#cases">Cases</a><section id="cases"></section><section id="cases"></section>`
		report, err := CheckAnchors(strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, []string{"cases"}, report.Duplicates)
		assert.Error(t, report.Err())
	})

	t.Run("target is not a section", func(t *testing.T) {
		doc := `<a href="#logo">Logo</a><div id="logo"></div>`
		report, err := CheckAnchors(strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, []string{"logo"}, report.NotSections)
	})

	t.Run("bare hash ignored", func(t *testing.T) {
		report, err := CheckAnchors(strings.NewReader(`<a href="#">Top</a>`))
		require.NoError(t, err)
		assert.Empty(t, report.Links)
		assert.NoError(t, report.Err())
	})
}
