package compile

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// TokenKind classifies tokens of declaration values.
type TokenKind uint8

// Kinds of tokens
const (
	TokenEOF        TokenKind = iota
	TokenIdent                // auto
	TokenString               // "Helvetica", quotes removed
	TokenNumber               // 1.5
	TokenPercentage           // 50%
	TokenDimension            // 12px
	TokenHash                 // #fff, '#' removed
	TokenFunction             // rgb(, name without '('
	TokenComma                // ,
	TokenCloseParen           // )
	TokenDelim                // any other single character, e.g. '!' or '/'
	TokenOther                // tokens no property grammar accepts
)

var tokenKindNames = [...]string{"EOF", "ident", "string", "number", "percentage",
	"dimension", "hash", "function", "comma", "close-paren", "delim", "other"}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("token(%d)", uint8(k))
}

// Token is a token of a declaration value. For numeric tokens, Num holds
// the value and Unit the lower-case unit suffix of dimensions.
type Token struct {
	Kind TokenKind
	Text string
	Num  float64
	Unit string
}

// Ident returns the lower-case text of an identifier token, or "" for
// other kinds of tokens.
func (t Token) Ident() string {
	if t.Kind != TokenIdent {
		return ""
	}
	return strings.ToLower(t.Text)
}

func (t Token) String() string {
	switch t.Kind {
	case TokenEOF:
		return "<EOF>"
	case TokenString:
		return strconv.Quote(t.Text)
	}
	return t.Text
}

// TokenStream is a cursor over the tokens of one declaration value.
// It moves forward only, except for explicit resets to a saved position.
type TokenStream struct {
	tokens []Token
	pos    int
	end    int
}

// NewTokenStream wraps a slice of tokens.
func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens, end: len(tokens)}
}

// Tokenize splits a declaration value into tokens, dropping white space and
// comments.
func Tokenize(value string) (*TokenStream, error) {
	lexer := css.NewLexer(parse.NewInputString(value))
	var tokens []Token
	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("tokenizing %q: %w", value, err)
			}
			return NewTokenStream(tokens), nil
		case css.WhitespaceToken, css.CommentToken:
			continue
		}
		tok, err := convertToken(tt, string(data))
		if err != nil {
			return nil, fmt.Errorf("tokenizing %q: %w", value, err)
		}
		tokens = append(tokens, tok)
	}
}

func convertToken(tt css.TokenType, text string) (Token, error) {
	tok := Token{Text: text}
	var err error
	switch tt {
	case css.IdentToken:
		tok.Kind = TokenIdent
	case css.StringToken:
		tok.Kind = TokenString
		tok.Text = unquote(text)
	case css.NumberToken:
		tok.Kind = TokenNumber
		tok.Num, err = strconv.ParseFloat(text, 64)
	case css.PercentageToken:
		tok.Kind = TokenPercentage
		tok.Num, err = strconv.ParseFloat(strings.TrimSuffix(text, "%"), 64)
		tok.Unit = "%"
	case css.DimensionToken:
		tok.Kind = TokenDimension
		n := numericPrefix(text)
		tok.Num, err = strconv.ParseFloat(text[:n], 64)
		tok.Unit = strings.ToLower(text[n:])
	case css.HashToken:
		tok.Kind = TokenHash
		tok.Text = text[1:]
	case css.FunctionToken:
		tok.Kind = TokenFunction
		tok.Text = strings.ToLower(strings.TrimSuffix(text, "("))
	case css.CommaToken:
		tok.Kind = TokenComma
	case css.RightParenthesisToken:
		tok.Kind = TokenCloseParen
	case css.DelimToken:
		tok.Kind = TokenDelim
	default:
		tok.Kind = TokenOther
	}
	return tok, err
}

// numericPrefix returns the length of the number at the start of a
// dimension token.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
		i++
	}
	// exponent, but not units starting with 'e' such as 'em' or 'ex'
	if i+1 < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		j := i // hex escape: 1–6 hex digits, optionally followed by a space
		for j < len(s) && j-i < 6 && isHex(s[j]) {
			j++
		}
		if j == i {
			if s[i] != '\n' { // escaped newline is a line continuation
				b.WriteByte(s[i])
			}
			continue
		}
		r, _ := strconv.ParseUint(s[i:j], 16, 32)
		if r == 0 || r > unicode.MaxRune || (r >= 0xd800 && r <= 0xdfff) {
			r = unicode.ReplacementChar
		}
		b.WriteRune(rune(r))
		if j < len(s) && s[j] == ' ' {
			j++
		}
		i = j - 1
	}
	return b.String()
}

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Pos returns the current position.
func (ts *TokenStream) Pos() int {
	return ts.pos
}

// Reset moves the stream back to a position returned by Pos.
func (ts *TokenStream) Reset(pos int) {
	if pos >= 0 && pos <= ts.end {
		ts.pos = pos
	}
}

// AtEnd is true if all tokens have been consumed.
func (ts *TokenStream) AtEnd() bool {
	return ts.pos >= ts.end
}

// Remaining returns the number of unconsumed tokens.
func (ts *TokenStream) Remaining() int {
	return ts.end - ts.pos
}

// Peek returns the next token without consuming it.
func (ts *TokenStream) Peek() Token {
	if ts.AtEnd() {
		return Token{Kind: TokenEOF}
	}
	return ts.tokens[ts.pos]
}

// Next consumes and returns the next token.
func (ts *TokenStream) Next() Token {
	tok := ts.Peek()
	if !ts.AtEnd() {
		ts.pos++
	}
	return tok
}

// cutImportant removes a trailing '!important' from the visible range of
// the stream. It returns the previous end for restoring.
func (ts *TokenStream) cutImportant() (bool, int) {
	end := ts.end
	if ts.end-ts.pos >= 2 {
		bang, imp := ts.tokens[ts.end-2], ts.tokens[ts.end-1]
		if bang.Kind == TokenDelim && bang.Text == "!" && imp.Ident() == "important" {
			ts.end -= 2
			return true, end
		}
	}
	return false, end
}
