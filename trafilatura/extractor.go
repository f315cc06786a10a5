// Package trafilatura provides a selector-free mdharvest.Extractor for
// sites without a known layout profile.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/pkruczek/mdharvest"
	"golang.org/x/net/html"
)

// Ensure Extractor implements mdharvest.Extractor at compile time.
var _ mdharvest.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to locate an article's title and content
// region heuristically.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw page HTML and returns the title and content region.
// Pages where no article content can be located yield ENOTFOUND, matching
// the selector-based extractor's skip semantics.
func (e *Extractor) Extract(rawHTML string) (*mdharvest.ExtractResult, error) {
	if rawHTML == "" {
		return nil, mdharvest.Errorf(mdharvest.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, mdharvest.Errorf(mdharvest.ENOTFOUND, "no extractable content: %v", err)
	}

	if result.ContentNode == nil {
		return nil, mdharvest.Errorf(mdharvest.ENOTFOUND, "no content region located")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, mdharvest.Errorf(mdharvest.EINTERNAL, "render content region: %v", err)
	}

	return &mdharvest.ExtractResult{
		Title:       strings.TrimSpace(result.Metadata.Title),
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
