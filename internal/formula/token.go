package formula

type TokenType int

const (
	EOF TokenType = iota
	NUMBER
	VARIABLE
	FUNC
	PLUS
	MINUS
	STAR
	SLASH
	LPAREN
	RPAREN
	COMMA
	DOT
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case VARIABLE:
		return "VARIABLE"
	case FUNC:
		return "FUNC"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case STAR:
		return "STAR"
	case SLASH:
		return "SLASH"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case COMMA:
		return "COMMA"
	case DOT:
		return "DOT"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its type and literal value.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}
