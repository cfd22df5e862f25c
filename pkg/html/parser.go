// Package html implements a recursive-descent parser for a restricted
// subset of HTML markup.
//
// The grammar is deliberately small: tags named by ASCII alphanumerics,
// attributes of the form name="value" with word-character values, and
// text runs between tags. There is no entity decoding, no comments, no
// error recovery; the first malformed construct aborts the whole parse.
// Self-closing tags (<br/>) are accepted and produce childless
// elements.
package html

import (
	"fmt"
	"strings"

	"github.com/luffy84217/my-first-browser-engine/pkg/dom"
)

// DefaultMaxDepth bounds element nesting when Config.MaxDepth is zero.
const DefaultMaxDepth = 512

// Config keeps configuration options when parsing.
type Config struct {
	// MaxDepth bounds element nesting depth. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Parse parses input into a document tree and returns the root node.
// A document with multiple top-level siblings is wrapped in a
// synthetic attribute-less "html" element. Empty (or all-space) input
// is an error: no node can be produced from it.
func Parse(input string) (dom.Node, error) {
	return ParseWithConfig(input, Config{})
}

// ParseWithConfig is Parse with explicit configuration.
func ParseWithConfig(input string, cfg Config) (dom.Node, error) {
	maxDepth := cfg.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &parser{src: input, maxDepth: maxDepth}

	nodes, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		// parseNodes only stops early at a closing tag, so this is a
		// stray close with no matching open.
		return nil, &MatchError{Offset: p.pos, Want: "end of input", Got: p.describe(p.pos)}
	}
	if len(nodes) == 0 {
		return nil, &MatchError{Offset: p.pos, Want: "a node", Got: "end of input"}
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return dom.Element{Tag: "html", Children: nodes}, nil
}

// parser carries the whole parse state: the immutable source text and
// a cursor, plus the running element nesting depth. Control state
// beyond that lives entirely on the call stack of the grammar rules.
type parser struct {
	src      string
	pos      int
	depth    int
	maxDepth int
}

func (p *parser) atEnd() bool { return p.pos >= len(p.src) }

// peek returns the byte at the cursor plus offset, or 0 at or past
// end of input.
func (p *parser) peek(offset int) byte {
	if p.pos+offset >= len(p.src) {
		return 0
	}
	return p.src[p.pos+offset]
}

func (p *parser) startsWith(literal string) bool {
	return strings.HasPrefix(p.src[p.pos:], literal)
}

// expect consumes literal at the cursor, or fails without moving.
func (p *parser) expect(literal string) error {
	if !p.startsWith(literal) {
		return &MatchError{Offset: p.pos, Want: fmt.Sprintf("%q", literal), Got: p.describe(p.pos)}
	}
	p.pos += len(literal)
	return nil
}

// consumeWhile consumes the longest run of bytes satisfying pred and
// returns it. A zero-length run is a match failure; want names the
// expected class in the error.
func (p *parser) consumeWhile(pred func(byte) bool, want string) (string, error) {
	start := p.pos
	for !p.atEnd() && pred(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", &MatchError{Offset: start, Want: want, Got: p.describe(start)}
	}
	return p.src[start:p.pos], nil
}

// skipSpaces advances past ASCII spaces. Only U+0020 counts; tabs and
// newlines are not part of the grammar.
func (p *parser) skipSpaces() {
	for !p.atEnd() && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *parser) describe(off int) string {
	if off >= len(p.src) {
		return "end of input"
	}
	return fmt.Sprintf("%q", p.src[off])
}

func isTagNameByte(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func isAttrNameByte(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '-'
}

func isWordByte(c byte) bool {
	return isTagNameByte(c) || c == '_'
}

func isText(c byte) bool { return c != '<' }

func (p *parser) parseTagName() (string, error) {
	return p.consumeWhile(isTagNameByte, "tag name")
}

// parseNode dispatches on a single byte of lookahead: '<' opens an
// element, anything else starts a text run.
func (p *parser) parseNode() (dom.Node, error) {
	if p.peek(0) == '<' {
		return p.parseElement()
	}
	return p.parseText()
}

// parseText consumes the run of characters up to the next '<'. Text
// that runs off the end of the input is unterminated and fails; the
// grammar has no trailing-text production.
func (p *parser) parseText() (dom.Node, error) {
	content, err := p.consumeWhile(isText, "text")
	if err != nil {
		return nil, err
	}
	if p.atEnd() {
		return nil, &MatchError{Offset: p.pos, Want: `"<"`, Got: "end of input"}
	}
	return dom.Text{Content: content}, nil
}

// parseAttributes reads name="value" pairs until the cursor sits at
// '>' or at a self-closing "/>". Duplicate names overwrite silently,
// last one wins.
func (p *parser) parseAttributes() (map[string]string, error) {
	attrs := make(map[string]string)
	for {
		p.skipSpaces()
		if p.atEnd() || p.peek(0) == '>' || p.startsWith("/>") {
			return attrs, nil
		}
		name, err := p.consumeWhile(isAttrNameByte, "attribute name")
		if err != nil {
			return nil, err
		}
		if err := p.expect(`="`); err != nil {
			return nil, err
		}
		value, err := p.consumeWhile(isWordByte, "attribute value")
		if err != nil {
			return nil, err
		}
		if err := p.expect(`"`); err != nil {
			return nil, err
		}
		attrs[name] = value
	}
}

// parseElement parses one element: open tag, attributes, children,
// and the verbatim closing tag. "/>" after the attribute list closes
// the element immediately with no children.
func (p *parser) parseElement() (dom.Node, error) {
	if p.depth >= p.maxDepth {
		return nil, &DepthError{Offset: p.pos, Limit: p.maxDepth}
	}
	p.depth++
	defer func() { p.depth-- }()

	if err := p.expect("<"); err != nil {
		return nil, err
	}
	tag, err := p.parseTagName()
	if err != nil {
		return nil, err
	}
	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}

	if p.startsWith("/>") {
		p.pos += 2
		return dom.Element{Tag: tag, Attributes: attrs}, nil
	}
	if err := p.expect(">"); err != nil {
		return nil, err
	}

	children, err := p.parseNodes()
	if err != nil {
		return nil, err
	}

	if err := p.expect("</" + tag + ">"); err != nil {
		return nil, err
	}
	return dom.Element{Tag: tag, Attributes: attrs, Children: children}, nil
}

// parseNodes accumulates sibling nodes until end of input or a
// closing-tag marker. The "</" lookahead is how recursion inside
// parseElement knows where its children end.
func (p *parser) parseNodes() ([]dom.Node, error) {
	var nodes []dom.Node
	for {
		p.skipSpaces()
		if p.atEnd() || p.startsWith("</") {
			return nodes, nil
		}
		n, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
}
