package graphcalc

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal number.
	tokenNum
	// tokenIdent is a variable, constant, or function name.
	tokenIdent
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open bracket, (.
	tokenOpen
	// tokenClose is a close bracket, ).
	tokenClose
	// tokenSep is a function arguments separator, ,.
	tokenSep
)

//go:generate stringer -type=tokenKind -trimprefix=token

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the number of runes consumed so far.
	col int
	eof bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// tokenize scans all of src. The result always ends with an EOF token unless
// there is an error, in which case the error is the first invalid token.
func tokenize(src string) ([]lexToken, error) {
	l := lex(strings.NewReader(src))
	var toks []lexToken
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.kind == tokenEOF {
			return toks, nil
		}
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input. The first time EOF is encountered,
// the result is an EOF token with a nil error. Subsequent calls return an
// empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eof = true
				return lexToken{kind: tokenEOF, pos: l.col + 1}, nil
			}
			return lexToken{pos: l.col}, err
		}
		tok := lexToken{pos: l.col}
		switch {
		case unicode.IsSpace(r):
			continue
		case isDigit(r), r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return lexToken{pos: tok.pos}, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		case unicode.IsLetter(r):
			l.unreadRune()
			l.scanIdent()
			tok.text = l.buf.String()
			tok.kind = tokenIdent
			return tok, nil
		case r == ',':
			tok.text = ","
			tok.kind = tokenSep
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.text = string(r)
			tok.kind = tokenOp
			return tok, nil
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return lexToken{pos: tok.pos}, l.error(tok.pos, "")
		}
	}
}

// scanNum scans a run of digits containing at most one decimal point.
func (l *lexer) scanNum() error {
	start := l.col + 1
	var dig, dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if r == '.' {
			l.buf.WriteRune(r)
			if dot {
				return l.error(start, "number")
			}
			dot = true
			continue
		}
		if !isDigit(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		dig = true
	}
	if !dig {
		return l.error(start, "number")
	}
	return nil
}

// scanIdent scans a run of letters. The caller has already checked that the
// first rune is a letter.
func (l *lexer) scanIdent() {
	for {
		r, err := l.readRune()
		if err != nil {
			// Only EOF is possible from a strings.Reader, and we have scanned
			// at least one rune.
			return
		}
		if !unicode.IsLetter(r) {
			l.unreadRune()
			return
		}
		l.buf.WriteRune(r)
	}
}

func (l *lexer) error(col int, kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  col,
	}
}

// LexError indicates an invalid token. It implements InputError and matches
// ErrLex.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the position of the start of the invalid token.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Is(target error) bool {
	return target == ErrLex
}
