// Package content holds the static page content. The YAML document is embedded
// at build time, so the content of a running binary never changes.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"deltasylva_site/models"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteYAML []byte

// Load decodes and validates the embedded site content
func Load() (*models.Site, error) {
	return Parse(siteYAML)
}

// MustLoad is Load for program initialisation; it panics on invalid content
func MustLoad() *models.Site {
	site, err := Load()
	if err != nil {
		panic(fmt.Sprintf("content: %v", err))
	}
	return site
}

// Parse decodes a site document. Unknown fields are rejected so typos in the
// content file fail the build instead of silently dropping text.
func Parse(data []byte) (*models.Site, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var site models.Site
	if err := dec.Decode(&site); err != nil {
		return nil, fmt.Errorf("failed to decode site content: %w", err)
	}
	if err := Validate(&site); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks the structural invariants of the page: section ids are set
// and unique, and every in-page link targets an existing section.
func Validate(site *models.Site) error {
	var errs []error

	ids := make(map[string]bool)
	for _, id := range site.SectionIDs() {
		if id == "" {
			errs = append(errs, errors.New("section with empty id"))
			continue
		}
		if ids[id] {
			errs = append(errs, fmt.Errorf("duplicate section id %q", id))
		}
		ids[id] = true
	}

	for _, link := range site.Links() {
		if !ids[link.Target] {
			errs = append(errs, fmt.Errorf("link %q targets unknown section %q", link.Label, link.Target))
		}
	}

	for i, card := range site.Services.Cards {
		if card.Title == "" {
			errs = append(errs, fmt.Errorf("service card %d has no title", i))
		}
	}
	for i, c := range site.Cases.Cases {
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("case study %d has no name", i))
		}
	}
	for i, step := range site.Process.Steps {
		if step.Title == "" {
			errs = append(errs, fmt.Errorf("process step %d has no title", i))
		}
	}

	if site.Contact.Email.URL == "" {
		errs = append(errs, errors.New("contact email link is empty"))
	}

	return errors.Join(errs...)
}
