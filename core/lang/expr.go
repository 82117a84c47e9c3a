package lang

import (
	"strconv"
	"strings"
)

// ExprKind tags the node types of the expression language. The language is
// deliberately tiny: literals, variable references and parenthesized calls.
type ExprKind int

const (
	ExprString ExprKind = iota
	ExprNumber
	ExprVar
	ExprCall
)

// Expr is one node of a parsed canonical expression.
type Expr struct {
	Kind ExprKind
	Str  string  // ExprString
	Num  float64 // ExprNumber
	Name string  // ExprVar, and the target of ExprCall
	Args []Expr  // ExprCall
}

func StringExpr(s string) Expr { return Expr{Kind: ExprString, Str: s} }
func NumberExpr(n float64) Expr {
	return Expr{Kind: ExprNumber, Num: n}
}
func VarExpr(name string) Expr { return Expr{Kind: ExprVar, Name: name} }
func CallExpr(name string, args ...Expr) Expr {
	return Expr{Kind: ExprCall, Name: name, Args: args}
}

// String renders the expression back as canonical text.
func (e Expr) String() string {
	switch e.Kind {
	case ExprString:
		return QuoteLiteral(e.Str)
	case ExprNumber:
		return strconv.FormatFloat(e.Num, 'g', -1, 64)
	case ExprVar:
		return e.Name
	case ExprCall:
		parts := []string{e.Name}
		for _, a := range e.Args {
			parts = append(parts, a.String())
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return ""
	}
}

// QuoteLiteral wraps s in a double-quoted string literal, escaping
// backslashes and embedded quotes.
func QuoteLiteral(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\', '"':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Parse turns canonical text into a single expression. Trailing input after
// the expression is a parse error, as is any malformed form.
func Parse(text string) (Expr, error) {
	p := &parser{input: text}
	expr, err := p.parseExpr()
	if err != nil {
		return Expr{}, err
	}
	p.skipSpaces()
	if !p.eof() {
		return Expr{}, Errorf(ParseError, "unexpected trailing input at offset %d", p.pos)
	}
	return expr, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) eof() bool { return p.pos >= len(p.input) }

func (p *parser) peek() byte { return p.input[p.pos] }

func (p *parser) skipSpaces() {
	for !p.eof() && (p.peek() == ' ' || p.peek() == '\t') {
		p.pos++
	}
}

func (p *parser) parseExpr() (Expr, error) {
	p.skipSpaces()
	if p.eof() {
		return Expr{}, Errorf(ParseError, "unexpected end of input")
	}

	switch p.peek() {
	case '(':
		return p.parseCall()
	case ')':
		return Expr{}, Errorf(ParseError, "unexpected ')' at offset %d", p.pos)
	case '"':
		return p.parseString()
	default:
		return p.parseAtom()
	}
}

func (p *parser) parseCall() (Expr, error) {
	p.pos++ // consume '('
	p.skipSpaces()

	head, err := p.parseName()
	if err != nil {
		return Expr{}, err
	}

	call := Expr{Kind: ExprCall, Name: head}
	for {
		p.skipSpaces()
		if p.eof() {
			return Expr{}, Errorf(ParseError, "missing ')' in call to %q", head)
		}
		if p.peek() == ')' {
			p.pos++
			return call, nil
		}

		arg, err := p.parseExpr()
		if err != nil {
			return Expr{}, err
		}
		call.Args = append(call.Args, arg)
	}
}

func (p *parser) parseName() (string, error) {
	start := p.pos
	for !p.eof() && !strings.ContainsRune(" \t()\"", rune(p.peek())) {
		p.pos++
	}
	if p.pos == start {
		return "", Errorf(ParseError, "expected a command name at offset %d", start)
	}
	return p.input[start:p.pos], nil
}

func (p *parser) parseString() (Expr, error) {
	p.pos++ // consume opening quote
	var b strings.Builder
	for {
		if p.eof() {
			return Expr{}, Errorf(ParseError, "unterminated string literal")
		}
		switch c := p.peek(); c {
		case '"':
			p.pos++
			return StringExpr(b.String()), nil
		case '\\':
			p.pos++
			if p.eof() {
				return Expr{}, Errorf(ParseError, "unterminated string literal")
			}
			b.WriteByte(p.peek())
			p.pos++
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
}

func (p *parser) parseAtom() (Expr, error) {
	tok, err := p.parseName()
	if err != nil {
		return Expr{}, err
	}
	if n, err := strconv.ParseFloat(tok, 64); err == nil {
		return NumberExpr(n), nil
	}
	return VarExpr(tok), nil
}
