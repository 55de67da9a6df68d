package services

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// AnchorReport summarises in-page navigation of a rendered document
type AnchorReport struct {
	// Sections maps every section id to the number of elements carrying it
	Sections map[string]int
	// Links lists every fragment link target in document order
	Links []string
	// Duplicates lists ids used by more than one element
	Duplicates []string
	// Dangling lists link targets with no matching element
	Dangling []string
	// NotSections lists link targets that exist but are not <section> elements
	NotSections []string
}

// Err returns nil when every fragment link resolves to exactly one section
func (r *AnchorReport) Err() error {
	var errs []error
	for _, id := range r.Duplicates {
		errs = append(errs, fmt.Errorf("duplicate id %q", id))
	}
	for _, id := range r.Dangling {
		errs = append(errs, fmt.Errorf("link to #%s has no target", id))
	}
	for _, id := range r.NotSections {
		errs = append(errs, fmt.Errorf("link to #%s does not target a section", id))
	}
	return errors.Join(errs...)
}

// CheckAnchors parses an HTML document and verifies its fragment links
func CheckAnchors(r io.Reader) (*AnchorReport, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	ids := make(map[string]int)
	tags := make(map[string]string)
	report := &AnchorReport{Sections: make(map[string]int)}

	walk(doc, func(n *html.Node) {
		if id := attr(n, "id"); id != "" {
			ids[id]++
			tags[id] = n.Data
			if n.Data == "section" {
				report.Sections[id]++
			}
		}
		if n.Data == "a" {
			if href := attr(n, "href"); strings.HasPrefix(href, "#") && len(href) > 1 {
				report.Links = append(report.Links, href[1:])
			}
		}
	})

	for id, count := range ids {
		if count > 1 {
			report.Duplicates = append(report.Duplicates, id)
		}
	}
	sort.Strings(report.Duplicates)

	seen := make(map[string]bool)
	for _, target := range report.Links {
		if seen[target] {
			continue
		}
		seen[target] = true
		switch {
		case ids[target] == 0:
			report.Dangling = append(report.Dangling, target)
		case tags[target] != "section":
			report.NotSections = append(report.NotSections, target)
		}
	}

	return report, nil
}

// walk visits every element node depth-first in document order
func walk(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// findElement returns the first element with the given tag name
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
