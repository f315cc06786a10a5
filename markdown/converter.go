// Package markdown implements the site-tuned HTML to Markdown conversion
// engine. It operates over a fixed allow-list of element kinds, each bound
// to a handler producing zero or more output lines, and walks every allowed
// element within the content root in document order.
package markdown

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkruczek/mdharvest"
	"golang.org/x/net/html"
)

// Ensure Converter implements mdharvest.Converter at compile time.
var _ mdharvest.Converter = (*Converter)(nil)

// HandlerFunc produces the Markdown lines for one element of its kind.
// Returning nil emits nothing.
type HandlerFunc func(c *Converter, sel *goquery.Selection) []string

// Converter converts a content region to Markdown via tag dispatch.
//
// The traversal is flat: every allowed element anywhere under the content
// root is visited in document order, regardless of nesting depth. An
// allowed inline element nested inside an allowed block element is
// therefore emitted twice: once inside the block's own text and again as
// its own line. WithSkipNested switches to consumed-subtree semantics,
// where descendants of an already-emitted element are not revisited.
type Converter struct {
	base       *url.URL
	skipNested bool
	handlers   map[string]HandlerFunc
	selector   string
}

// Option configures a Converter.
type Option func(*Converter)

// WithBaseURL sets the base used to resolve relative link and image URLs.
func WithBaseURL(base *url.URL) Option {
	return func(c *Converter) {
		c.base = base
	}
}

// WithSkipNested suppresses the re-emission of allowed elements nested
// inside an already-emitted element.
func WithSkipNested() Option {
	return func(c *Converter) {
		c.skipNested = true
	}
}

// NewConverter creates a Converter with the default handler table.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		handlers: make(map[string]HandlerFunc, len(defaultHandlers)),
	}
	for tag, h := range defaultHandlers {
		c.handlers[tag] = h
	}
	for _, opt := range opts {
		opt(c)
	}
	c.rebuildSelector()
	return c
}

// Register binds a handler to an element kind, adding the kind to the
// allow-list if it is new. Existing handlers are replaced.
func (c *Converter) Register(tag string, h HandlerFunc) {
	c.handlers[tag] = h
	c.rebuildSelector()
}

func (c *Converter) rebuildSelector() {
	tags := make([]string, 0, len(c.handlers))
	for tag := range c.handlers {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	c.selector = strings.Join(tags, ", ")
}

// Convert transforms a content region into Markdown. Emitted lines are
// joined with single newlines and the result is trimmed.
func (c *Converter) Convert(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", mdharvest.Errorf(mdharvest.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", mdharvest.Errorf(mdharvest.EINVALID, "failed to parse HTML: %v", err)
	}

	var lines []string
	var consumed map[*html.Node]bool
	if c.skipNested {
		consumed = make(map[*html.Node]bool)
	}

	doc.Find(c.selector).Each(func(_ int, sel *goquery.Selection) {
		node := sel.Get(0)
		h, ok := c.handlers[node.Data]
		if !ok {
			return
		}
		if c.skipNested && underConsumed(node, consumed) {
			return
		}
		out := h(c, sel)
		if out == nil {
			return
		}
		lines = append(lines, out...)
		if c.skipNested {
			consumed[node] = true
		}
	})

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// underConsumed reports whether any ancestor of node has already emitted.
func underConsumed(node *html.Node, consumed map[*html.Node]bool) bool {
	for p := node.Parent; p != nil; p = p.Parent {
		if consumed[p] {
			return true
		}
	}
	return false
}

// resolve resolves a link or image URL against the configured base.
// Without a base, URLs pass through untouched.
func (c *Converter) resolve(raw string) string {
	if c.base == nil || raw == "" {
		return raw
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return c.base.ResolveReference(ref).String()
}

const nbsp = "\u00a0"

var spaceRun = regexp.MustCompile(`[ \t\r\n\f]+`)

// textSegments collects the element's text nodes in document order. Each
// segment has internal whitespace runs collapsed to single spaces and is
// trimmed of Unicode whitespace at the edges, NBSP included, so elements
// holding only NBSP filler read as empty. Interior NBSPs survive.
func textSegments(sel *goquery.Selection) []string {
	var segs []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(spaceRun.ReplaceAllString(n.Data, " ")); s != "" {
				segs = append(segs, s)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return segs
}

// collapseText joins the element's text segments with single spaces. Used
// by the block-level handlers (paragraphs, list items, quotes, cells).
func collapseText(sel *goquery.Selection) string {
	return strings.Join(textSegments(sel), " ")
}

// concatText joins the element's text segments with no separator. Used
// where inline fragments form one token: headings, definition terms,
// inline code, and link text.
func concatText(sel *goquery.Selection) string {
	return strings.Join(textSegments(sel), "")
}

// defaultHandlers is the conversion rule table: the allow-list of element
// kinds and their emission rules. Kinds mapped to noop are part of the
// vocabulary but emit nothing of their own (their content is rendered by
// an enclosing handler, or not at all). Block handlers space-join their
// text segments; headings, definition terms, inline code, and link text
// concatenate them.
var defaultHandlers = map[string]HandlerFunc{
	"h1":         heading(1),
	"h2":         heading(2),
	"h3":         heading(3),
	"h4":         heading(4),
	"h5":         heading(5),
	"h6":         heading(6),
	"p":          paragraph,
	"span":       paragraph,
	"br":         lineBreak,
	"hr":         horizontalRule,
	"strong":     noop,
	"b":          noop,
	"em":         noop,
	"i":          noop,
	"u":          noop,
	"ul":         list,
	"ol":         list,
	"li":         noop,
	"blockquote": blockquote,
	"dl":         noop,
	"dt":         definitionTerm,
	"dd":         definition,
	"table":      table,
	"thead":      noop,
	"tbody":      noop,
	"tfoot":      noop,
	"tr":         noop,
	"th":         noop,
	"td":         noop,
	"figure":     figure,
	"figcaption": noop,
	"img":        image,
	"pre":        preformatted,
	"code":       inlineCode,
	"a":          hyperlink,
	"div":        noop,
}

func noop(_ *Converter, _ *goquery.Selection) []string {
	return nil
}

func heading(level int) HandlerFunc {
	prefix := strings.Repeat("#", level) + " "
	return func(_ *Converter, sel *goquery.Selection) []string {
		text := concatText(sel)
		if text == "" {
			return nil
		}
		return []string{prefix + text + "\n"}
	}
}

func paragraph(_ *Converter, sel *goquery.Selection) []string {
	text := collapseText(sel)
	if text == "" || text == nbsp {
		return nil
	}
	return []string{text + "\n"}
}

// lineBreak emits an empty line: a segment boundary, no content.
func lineBreak(_ *Converter, _ *goquery.Selection) []string {
	return []string{""}
}

func horizontalRule(_ *Converter, _ *goquery.Selection) []string {
	return []string{"\n---\n"}
}

// list renders the direct list-item children as bullet lines. Ordered
// lists are bulleted too; numbering is not preserved.
func list(_ *Converter, sel *goquery.Selection) []string {
	lines := []string{}
	sel.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		if text := collapseText(li); text != "" {
			lines = append(lines, "- "+text)
		}
	})
	return append(lines, "")
}

func blockquote(_ *Converter, sel *goquery.Selection) []string {
	text := collapseText(sel)
	if text == "" {
		return nil
	}
	return []string{"> " + text + "\n"}
}

func definitionTerm(_ *Converter, sel *goquery.Selection) []string {
	text := concatText(sel)
	if text == "" {
		return nil
	}
	return []string{"**" + text + "**"}
}

func definition(_ *Converter, sel *goquery.Selection) []string {
	text := collapseText(sel)
	if text == "" {
		return nil
	}
	return []string{": " + text + "\n"}
}

// table flattens rows into key/value bullets: first cell bolded, second
// cell as the value. Rows with fewer than two cells or empty cell text are
// dropped; table semantics beyond the two-column shape are not preserved.
func table(_ *Converter, sel *goquery.Selection) []string {
	lines := []string{""}
	sel.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("th, td")
		if cells.Length() < 2 {
			return
		}
		left := collapseText(cells.Eq(0))
		right := collapseText(cells.Eq(1))
		if left == "" || right == "" {
			return
		}
		lines = append(lines, "- **"+left+"** "+right)
	})
	return append(lines, "")
}

func figure(c *Converter, sel *goquery.Selection) []string {
	var lines []string

	img := sel.Find("img").First()
	if src, ok := img.Attr("src"); ok && src != "" {
		alt := strings.TrimSpace(img.AttrOr("alt", ""))
		lines = append(lines, "!["+alt+"]("+c.resolve(src)+")")
	}

	if caption := sel.Find("figcaption").First(); caption.Length() > 0 {
		if text := collapseText(caption); text != "" {
			lines = append(lines, "*"+text+"*\n")
		}
	}

	return lines
}

// image handles standalone images; images inside a figure are rendered by
// the figure handler.
func image(c *Converter, sel *goquery.Selection) []string {
	if goquery.NodeName(sel.Parent()) == "figure" {
		return nil
	}
	src, ok := sel.Attr("src")
	if !ok || src == "" {
		return nil
	}
	alt := sel.AttrOr("alt", "")
	return []string{"![" + alt + "](" + c.resolve(src) + ")\n"}
}

// preformatted emits a fenced code block with the raw text verbatim.
func preformatted(_ *Converter, sel *goquery.Selection) []string {
	code := sel.Text()
	if strings.TrimSpace(code) == "" {
		return nil
	}
	return []string{"```\n" + code + "\n```\n"}
}

func inlineCode(_ *Converter, sel *goquery.Selection) []string {
	text := concatText(sel)
	if text == "" {
		return nil
	}
	return []string{"`" + text + "`"}
}

func hyperlink(c *Converter, sel *goquery.Selection) []string {
	href, ok := sel.Attr("href")
	text := concatText(sel)
	if !ok || href == "" || text == "" {
		return nil
	}
	return []string{"[" + text + "](" + c.resolve(href) + ")"}
}
