package surface

import (
	"fmt"

	"github.com/polylambda/bidi/internal/synx"
)

// Parser is a recursive-descent reader over a Lexer, grounded on the
// teacher's internal/parser.Parser shape: a two-token lookahead buffer and
// an accumulated error slice rather than panicking on the first mistake.
type Parser struct {
	l *Lexer

	curToken  Token
	peekToken Token

	errs []error
}

// NewParser wraps l in a Parser, primed with the first two tokens.
func NewParser(l *Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.curToken = p.peekToken
	p.peekToken = p.l.Next()
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errs = append(p.errs, fmt.Errorf("surface: line %d, column %d: %s",
		p.curToken.Line, p.curToken.Column, fmt.Sprintf(format, args...)))
}

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() []error {
	return p.errs
}

func (p *Parser) expect(t TokenType, what string) bool {
	if p.curToken.Type != t {
		p.errorf("expected %s, found %q", what, p.curToken.Literal)
		return false
	}
	return true
}

// Parse reads src as a single term, returning the first accumulated error
// if parsing failed. This is the package's public entry point (SPEC_FULL.md
// §6's surface.Parse(src string) (synx.Term, error)).
func Parse(src string) (synx.Term, error) {
	p := NewParser(New(src))
	term := p.parseTerm()
	if p.curToken.Type != EOF {
		p.errorf("unexpected trailing token %q", p.curToken.Literal)
	}
	if len(p.errs) > 0 {
		return nil, p.errs[0]
	}
	return term, nil
}

// ParseType reads src as a single type, for callers that only need to parse
// a type. (e : A) annotations inside terms use the same grammar via parseType.
func ParseType(src string) (synx.Type, error) {
	p := NewParser(New(src))
	ty := p.parseType()
	if p.curToken.Type != EOF {
		p.errorf("unexpected trailing token %q", p.curToken.Literal)
	}
	if len(p.errs) > 0 {
		return nil, p.errs[0]
	}
	return ty, nil
}

func (p *Parser) parseTerm() synx.Term {
	switch p.curToken.Type {
	case LET:
		return p.parseLet()
	case BACKSLASH:
		return p.parseAbs()
	default:
		return p.parseApp()
	}
}

func (p *Parser) parseLet() synx.Term {
	p.next() // consume "let"
	if !p.expect(IDENT, "identifier") {
		return nil
	}
	name := synx.NewName(p.curToken.Literal)
	p.next()
	if !p.expect(EQUALS, "'='") {
		return nil
	}
	p.next()
	bound := p.parseTerm()
	if !p.expect(IN, "'in'") {
		return nil
	}
	p.next()
	body := p.parseTerm()
	return synx.ELet{Name: name, Bound: bound, Body: body}
}

func (p *Parser) parseAbs() synx.Term {
	p.next() // consume "\"
	if !p.expect(IDENT, "identifier") {
		return nil
	}
	name := synx.NewName(p.curToken.Literal)
	p.next()
	if !p.expect(DOT, "'.'") {
		return nil
	}
	p.next()
	body := p.parseTerm()
	return synx.EAbs{ArgName: name, ArgType: synx.Unset{}, Body: body}
}

// parseApp reads a left-associative chain of atoms as applications: e1 e2
// e3 parses as (e1 e2) e3.
func (p *Parser) parseApp() synx.Term {
	fn := p.parseAtom()
	if fn == nil {
		return nil
	}
	for p.startsAtom() {
		arg := p.parseAtom()
		if arg == nil {
			return nil
		}
		fn = synx.EApp{Fn: fn, Arg: arg, Result: synx.Unset{}}
	}
	return fn
}

func (p *Parser) startsAtom() bool {
	switch p.curToken.Type {
	case LPAREN, IDENT:
		return true
	default:
		return false
	}
}

func (p *Parser) parseAtom() synx.Term {
	switch p.curToken.Type {
	case IDENT:
		name := synx.NewName(p.curToken.Literal)
		p.next()
		return synx.EVar{Name: name, Type: synx.Unset{}}

	case LPAREN:
		p.next() // consume "("
		if p.curToken.Type == RPAREN {
			p.next()
			return synx.EUnit{}
		}
		inner := p.parseTerm()
		if p.curToken.Type == COLON {
			p.next()
			declared := p.parseType()
			if !p.expect(RPAREN, "')'") {
				return nil
			}
			p.next()
			return synx.EAnn{Body: inner, Declared: declared}
		}
		if !p.expect(RPAREN, "')'") {
			return nil
		}
		p.next()
		return inner

	default:
		p.errorf("expected a term, found %q", p.curToken.Literal)
		return nil
	}
}

// parseType implements: type := "forall" IDENT "." type | arrow-type
func (p *Parser) parseType() synx.Type {
	if p.curToken.Type == FORALL {
		p.next()
		if !p.expect(IDENT, "identifier") {
			return nil
		}
		name := synx.NewName(p.curToken.Literal)
		p.next()
		if !p.expect(DOT, "'.'") {
			return nil
		}
		p.next()
		body := p.parseType()
		return synx.TForall{Name: name, Body: body}
	}
	return p.parseArrowType()
}

// parseArrowType implements: arrow-type := atom-type ("->" arrow-type)?
// Right-associative, matching A -> B -> C as A -> (B -> C).
func (p *Parser) parseArrowType() synx.Type {
	domain := p.parseAtomType()
	if domain == nil {
		return nil
	}
	if p.curToken.Type == ARROW {
		p.next()
		codomain := p.parseArrowType()
		return synx.TFun{Domain: domain, Codomain: codomain}
	}
	return domain
}

// parseAtomType implements: atom-type := "Unit" | IDENT | "(" type ")"
// "Unit" is recognized by its literal spelling rather than as a reserved
// keyword, so it still lexes as a plain IDENT token.
func (p *Parser) parseAtomType() synx.Type {
	switch p.curToken.Type {
	case IDENT:
		lit := p.curToken.Literal
		p.next()
		if lit == "Unit" {
			return synx.TUnit{}
		}
		return synx.TUVar{Name: synx.NewName(lit)}

	case LPAREN:
		p.next()
		inner := p.parseType()
		if !p.expect(RPAREN, "')'") {
			return nil
		}
		p.next()
		return inner

	default:
		p.errorf("expected a type, found %q", p.curToken.Literal)
		return nil
	}
}
