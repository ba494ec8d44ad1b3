// Package sexpr implements a tiny S-expression mini-language for building
// bembo.Doc values interactively, used by cmd/bembofmt. It is not part of
// the bembo algebra itself — just a convenient front end for exercising it.
//
// Grammar:
//
//	doc      := STRING | "(" op ")"
//	op       := "text" STRING | "char" STRING | "nil" | "line" | "softline"
//	          | "softbreak" | "concat" doc* | "vcat" doc* | "nest" INT doc
//	          | "group" doc | "join" doc* | "sep" doc doc*
//	          | "angles"|"braces"|"brackets"|"quotes"|"dquotes"|"parens" doc
package sexpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/phroun/bembo"
)

type tokenKind int

const (
	tokLParen tokenKind = iota
	tokRParen
	tokAtom
	tokString
)

type token struct {
	kind tokenKind
	text string
}

func tokenize(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen})
			i++
		case c == '"':
			end := i + 1
			var sb strings.Builder
			for end < len(src) && src[end] != '"' {
				if src[end] == '\\' && end+1 < len(src) {
					switch src[end+1] {
					case 'n':
						sb.WriteByte('\n')
					case 't':
						sb.WriteByte('\t')
					case '"':
						sb.WriteByte('"')
					case '\\':
						sb.WriteByte('\\')
					default:
						sb.WriteByte(src[end+1])
					}
					end += 2
					continue
				}
				sb.WriteByte(src[end])
				end++
			}
			if end >= len(src) {
				return nil, errors.New("unterminated string literal")
			}
			toks = append(toks, token{kind: tokString, text: sb.String()})
			i = end + 1
		default:
			end := i
			for end < len(src) && !strings.ContainsRune(" \t\n\r()", rune(src[end])) {
				end++
			}
			toks = append(toks, token{kind: tokAtom, text: src[i:end]})
			i = end
		}
	}
	return toks, nil
}

// Parse reads a single Doc expression from src.
func Parse(src string) (bembo.Doc, error) {
	toks, err := tokenize(src)
	if err != nil {
		return bembo.Nil(), err
	}
	if len(toks) == 0 {
		return bembo.Nil(), errors.New("empty expression")
	}
	p := &parser{toks: toks}
	d, err := p.parseDoc()
	if err != nil {
		return bembo.Nil(), err
	}
	if p.pos != len(p.toks) {
		return bembo.Nil(), errors.Errorf("trailing input after expression at token %d", p.pos)
	}
	return d, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

func (p *parser) parseDoc() (bembo.Doc, error) {
	t, ok := p.next()
	if !ok {
		return bembo.Nil(), errors.New("unexpected end of input")
	}

	switch t.kind {
	case tokString:
		return bembo.Text(t.text), nil
	case tokAtom:
		return bembo.Nil(), errors.Errorf("unexpected bare atom %q; wrap operators in parentheses", t.text)
	case tokRParen:
		return bembo.Nil(), errors.New("unexpected ')'")
	case tokLParen:
		return p.parseForm()
	}
	return bembo.Nil(), errors.Errorf("unrecognized token %+v", t)
}

func (p *parser) parseForm() (bembo.Doc, error) {
	op, ok := p.next()
	if !ok || op.kind != tokAtom {
		return bembo.Nil(), errors.New("expected an operator name after '('")
	}

	var d bembo.Doc
	var err error

	switch strings.ToLower(op.text) {
	case "nil":
		d = bembo.Nil()
	case "line":
		d = bembo.Line()
	case "softline":
		d = bembo.SoftLine()
	case "softbreak":
		d = bembo.SoftBreak()
	case "text":
		d, err = p.parseTextArg(bembo.Text)
	case "char":
		d, err = p.parseCharArg()
	case "concat":
		d, err = p.parseVariadic(bembo.Concat)
	case "vcat":
		d, err = p.parseVariadic(bembo.VCat)
	case "join":
		d, err = p.parseVariadic(bembo.Join)
	case "nest":
		d, err = p.parseNest()
	case "group":
		d, err = p.parseUnary(bembo.Group)
	case "angles":
		d, err = p.parseUnary(bembo.Angles)
	case "braces":
		d, err = p.parseUnary(bembo.Braces)
	case "brackets":
		d, err = p.parseUnary(bembo.Brackets)
	case "quotes":
		d, err = p.parseUnary(bembo.Quotes)
	case "dquotes":
		d, err = p.parseUnary(bembo.DQuotes)
	case "parens":
		d, err = p.parseUnary(bembo.Parens)
	case "sep":
		d, err = p.parseSep()
	default:
		return bembo.Nil(), errors.Errorf("unknown operator %q", op.text)
	}
	if err != nil {
		return bembo.Nil(), err
	}

	if err := p.expectRParen(op.text); err != nil {
		return bembo.Nil(), err
	}
	return d, nil
}

func (p *parser) expectRParen(op string) error {
	t, ok := p.next()
	if !ok || t.kind != tokRParen {
		return errors.Errorf("missing ')' closing (%s ...)", op)
	}
	return nil
}

func (p *parser) parseTextArg(ctor func(string) bembo.Doc) (bembo.Doc, error) {
	t, ok := p.next()
	if !ok || t.kind != tokString {
		return bembo.Nil(), errors.New("text requires one string argument")
	}
	return ctor(t.text), nil
}

func (p *parser) parseCharArg() (bembo.Doc, error) {
	t, ok := p.next()
	if !ok || t.kind != tokString || len([]rune(t.text)) != 1 {
		return bembo.Nil(), errors.New("char requires exactly one character")
	}
	return bembo.Char([]rune(t.text)[0]), nil
}

func (p *parser) parseVariadic(ctor func(...bembo.Doc) bembo.Doc) (bembo.Doc, error) {
	var docs []bembo.Doc
	for {
		t, ok := p.peek()
		if !ok {
			return bembo.Nil(), errors.New("unterminated form")
		}
		if t.kind == tokRParen {
			return ctor(docs...), nil
		}
		d, err := p.parseDoc()
		if err != nil {
			return bembo.Nil(), err
		}
		docs = append(docs, d)
	}
}

func (p *parser) parseUnary(ctor func(bembo.Doc) bembo.Doc) (bembo.Doc, error) {
	d, err := p.parseDoc()
	if err != nil {
		return bembo.Nil(), err
	}
	return ctor(d), nil
}

func (p *parser) parseNest() (bembo.Doc, error) {
	t, ok := p.next()
	if !ok || t.kind != tokAtom {
		return bembo.Nil(), errors.New("nest requires an integer indent argument")
	}
	k, err := strconv.Atoi(t.text)
	if err != nil {
		return bembo.Nil(), errors.Wrapf(err, "invalid nest indent %q", t.text)
	}
	d, err := p.parseDoc()
	if err != nil {
		return bembo.Nil(), err
	}
	return bembo.Nest(k, d), nil
}

func (p *parser) parseSep() (bembo.Doc, error) {
	sep, err := p.parseDoc()
	if err != nil {
		return bembo.Nil(), errors.Wrap(err, "sep requires a separator document first")
	}
	var docs []bembo.Doc
	for {
		t, ok := p.peek()
		if !ok {
			return bembo.Nil(), errors.New("unterminated sep form")
		}
		if t.kind == tokRParen {
			return bembo.Sep(sep, docs...), nil
		}
		d, err := p.parseDoc()
		if err != nil {
			return bembo.Nil(), err
		}
		docs = append(docs, d)
	}
}

// ErrorContext formats a short hint for REPL users without leaking the
// full recursive-descent call stack.
func ErrorContext(err error) string {
	return fmt.Sprintf("parse error: %v", err)
}
