package formula

import (
	"sort"
	"strings"
	"unicode"
)

// Variables maps variable names to their values for one evaluation call.
// Keys are case-sensitive. The engine never stores a binding between calls.
type Variables map[string]float64

// MaxFormulaLength caps formula text as a defensive bound against
// pathological nesting. Stored cabinet formulas are a few dozen characters.
const MaxFormulaLength = 512

// Tokenizer splits formula text into tokens using only the allow-listed
// vocabulary: the caller's variable names, the registered function names,
// decimal numbers and the operator characters. Any other character is a
// tokenization failure.
type Tokenizer struct {
	varNames []string
	input    []rune
	pos      int
}

// NewTokenizer builds a tokenizer for one variable binding. Variable names
// are matched longest-first so that a name like H_drawer is never split
// into H followed by leftover characters.
func NewTokenizer(vars Variables) *Tokenizer {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return &Tokenizer{varNames: names}
}

// Tokenize converts formula text into a token stream terminated by EOF.
// Example: "W - 2*T" -> [VARIABLE:W MINUS NUMBER:2 STAR VARIABLE:T EOF].
func (t *Tokenizer) Tokenize(input string) ([]Token, error) {
	t.input = []rune(strings.TrimSpace(input))
	t.pos = 0

	var tokens []Token
	for t.pos < len(t.input) {
		t.skipWhitespace()
		if t.pos >= len(t.input) {
			break
		}

		start := t.pos
		switch {
		case t.matchVariable(&tokens):
		case t.matchFunc(&tokens):
		case t.matchNumber(&tokens):
		case t.matchOperator(&tokens):
		default:
			return nil, &InvalidFormulaError{
				Pos:    start + 1,
				Reason: "disallowed token " + describeRune(t.input[start]),
			}
		}
	}

	tokens = append(tokens, Token{Type: EOF, Pos: len(t.input)})
	return tokens, nil
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(t.input[t.pos]) {
		t.pos++
	}
}

// matchVariable consumes the longest variable name starting at the current
// position. A match must not be followed by another identifier character,
// otherwise "Wx" would validate against a binding containing only W.
func (t *Tokenizer) matchVariable(tokens *[]Token) bool {
	rest := string(t.input[t.pos:])
	for _, name := range t.varNames {
		if !strings.HasPrefix(rest, name) {
			continue
		}
		end := t.pos + len([]rune(name))
		if end < len(t.input) && isIdentChar(t.input[end]) {
			continue
		}
		*tokens = append(*tokens, Token{Type: VARIABLE, Value: name, Pos: t.pos + 1})
		t.pos = end
		return true
	}
	return false
}

// matchFunc consumes an allow-listed function name. The name only counts as
// a function token when it is immediately followed by an open parenthesis.
func (t *Tokenizer) matchFunc(tokens *[]Token) bool {
	rest := string(t.input[t.pos:])
	for name := range allowedFunctions {
		if !strings.HasPrefix(rest, name) {
			continue
		}
		end := t.pos + len(name)
		if end >= len(t.input) || t.input[end] != '(' {
			continue
		}
		*tokens = append(*tokens, Token{Type: FUNC, Value: name, Pos: t.pos + 1})
		t.pos = end
		return true
	}
	return false
}

// matchNumber consumes a decimal literal: digits with at most one fractional
// part. A second '.' ends the literal and is tokenized on its own, where the
// parser rejects it.
func (t *Tokenizer) matchNumber(tokens *[]Token) bool {
	start := t.pos
	for t.pos < len(t.input) && unicode.IsDigit(t.input[t.pos]) {
		t.pos++
	}
	if t.pos == start {
		return false
	}
	if t.pos < len(t.input) && t.input[t.pos] == '.' {
		mark := t.pos
		t.pos++
		for t.pos < len(t.input) && unicode.IsDigit(t.input[t.pos]) {
			t.pos++
		}
		if t.pos == mark+1 {
			// trailing dot is not part of the literal
			t.pos = mark
		}
	}
	*tokens = append(*tokens, Token{Type: NUMBER, Value: string(t.input[start:t.pos]), Pos: start + 1})
	return true
}

func (t *Tokenizer) matchOperator(tokens *[]Token) bool {
	ch := t.input[t.pos]
	var typ TokenType
	switch ch {
	case '+':
		typ = PLUS
	case '-':
		typ = MINUS
	case '*':
		typ = STAR
	case '/':
		typ = SLASH
	case '(':
		typ = LPAREN
	case ')':
		typ = RPAREN
	case ',':
		typ = COMMA
	case '.':
		typ = DOT
	default:
		return false
	}
	*tokens = append(*tokens, Token{Type: typ, Value: string(ch), Pos: t.pos + 1})
	t.pos++
	return true
}

func isIdentChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

func describeRune(ch rune) string {
	if unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' {
		return "identifier starting with " + string(ch)
	}
	return string(ch)
}
