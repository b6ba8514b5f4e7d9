// SPDX-License-Identifier: MIT

package expr

import "strconv"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokPow
	tokLParen
	tokRParen
	tokComma
	tokDot
)

type token struct {
	kind tokenKind
	pos  int
	text string
	num  float64
}

// lex splits src into tokens. Whitespace separates tokens and is otherwise
// ignored.
func lex(src string) ([]token, error) {
	var (
		toks []token
		i    int
	)
	for i < len(src) {
		c := rune(src[i])
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || (c == '.' && i+1 < len(src) && isDigit(rune(src[i+1]))):
			start := i
			i = scanNumber(src, i)
			v, err := strconv.ParseFloat(src[start:i], 64)
			if err != nil {
				return nil, &SyntaxError{Pos: start, Msg: "malformed number " + strconv.Quote(src[start:i])}
			}
			toks = append(toks, token{kind: tokNumber, pos: start, text: src[start:i], num: v})
		case isIdentStart(c):
			start := i
			for i < len(src) && (isIdentStart(rune(src[i])) || isDigit(rune(src[i]))) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, pos: start, text: src[start:i]})
		default:
			kind, width := punct(src, i)
			if kind == tokEOF {
				return nil, &SyntaxError{Pos: i, Msg: "unexpected character " + strconv.QuoteRune(c)}
			}
			toks = append(toks, token{kind: kind, pos: i, text: src[i : i+width]})
			i += width
		}
	}

	return append(toks, token{kind: tokEOF, pos: len(src)}), nil
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isIdentStart(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// scanNumber consumes digits, an optional fraction and an optional exponent.
func scanNumber(src string, i int) int {
	for i < len(src) && isDigit(rune(src[i])) {
		i++
	}
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isDigit(rune(src[i])) {
			i++
		}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isDigit(rune(src[j])) {
			i = j
			for i < len(src) && isDigit(rune(src[i])) {
				i++
			}
		}
	}

	return i
}

func punct(src string, i int) (tokenKind, int) {
	switch src[i] {
	case '+':
		return tokPlus, 1
	case '-':
		return tokMinus, 1
	case '*':
		if i+1 < len(src) && src[i+1] == '*' {
			return tokPow, 2
		}
		return tokStar, 1
	case '/':
		return tokSlash, 1
	case '%':
		return tokPercent, 1
	case '(':
		return tokLParen, 1
	case ')':
		return tokRParen, 1
	case ',':
		return tokComma, 1
	case '.':
		return tokDot, 1
	}

	return tokEOF, 0
}
