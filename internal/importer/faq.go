package importer

import (
	"strings"

	"golang.org/x/net/html"

	"knowbot/internal/phrase"
)

// QA is one question/answer pair extracted from a page
type QA struct {
	Question string
	Answer   string
}

// Extractor pulls Q/A pairs out of FAQ-shaped HTML. Two structures are
// recognized: definition lists (dt/dd) and headings followed by
// paragraphs. Everything else on the page is ignored.
type Extractor struct{}

// NewExtractor creates a new FAQ extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// blockKind classifies the flat blocks the pairing pass walks over
type blockKind int

const (
	blockHeading blockKind = iota
	blockParagraph
	blockTerm
	blockDefinition
)

type block struct {
	kind blockKind
	text string
}

// Extract parses the HTML and returns Q/A pairs in document order,
// de-duplicated on the normalized question.
func (e *Extractor) Extract(htmlContent string) ([]QA, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}

	blocks := collectBlocks(doc)
	return dedupePairs(pairBlocks(blocks)), nil
}

// collectBlocks flattens the document into heading/paragraph/term/
// definition blocks in document order
func collectBlocks(doc *html.Node) []block {
	var blocks []block

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "nav", "footer":
				return
			case "h1", "h2", "h3", "h4":
				blocks = append(blocks, block{blockHeading, nodeText(n)})
				return
			case "p", "li":
				blocks = append(blocks, block{blockParagraph, nodeText(n)})
				return
			case "dt":
				blocks = append(blocks, block{blockTerm, nodeText(n)})
				return
			case "dd":
				blocks = append(blocks, block{blockDefinition, nodeText(n)})
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return blocks
}

// pairBlocks matches questions with the text that answers them: a term
// with its following definitions, or a heading with its following
// paragraphs up to the next heading.
func pairBlocks(blocks []block) []QA {
	var pairs []QA

	for i := 0; i < len(blocks); i++ {
		b := blocks[i]

		switch b.kind {
		case blockTerm:
			var answer []string
			for i+1 < len(blocks) && blocks[i+1].kind == blockDefinition {
				i++
				answer = append(answer, blocks[i].text)
			}
			pairs = appendPair(pairs, b.text, answer)

		case blockHeading:
			var answer []string
			for i+1 < len(blocks) && blocks[i+1].kind == blockParagraph {
				i++
				answer = append(answer, blocks[i].text)
			}
			pairs = appendPair(pairs, b.text, answer)
		}
	}

	return pairs
}

func appendPair(pairs []QA, question string, answer []string) []QA {
	q := strings.TrimSpace(question)
	a := strings.TrimSpace(strings.Join(answer, " "))
	if q == "" || a == "" {
		return pairs
	}
	return append(pairs, QA{Question: q, Answer: a})
}

// dedupePairs removes pairs repeating an earlier question; the first
// occurrence wins, mirroring the store's collision convention.
func dedupePairs(pairs []QA) []QA {
	seen := make(map[string]bool)
	var unique []QA
	for _, p := range pairs {
		key := phrase.Key(p.Question)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, p)
	}
	return unique
}

// nodeText extracts the visible text beneath a node
func nodeText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if buf.Len() > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}
