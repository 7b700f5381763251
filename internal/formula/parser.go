package formula

import (
	"fmt"
	"math"
	"strconv"
)

// expr is a node of the parsed expression tree. Trees are built per
// evaluation call and abandoned on return; nothing is cached or shared.
type expr interface {
	eval(vars Variables) (float64, error)
}

type numberExpr struct {
	value float64
}

func (e numberExpr) eval(Variables) (float64, error) {
	return e.value, nil
}

type variableExpr struct {
	name string
}

func (e variableExpr) eval(vars Variables) (float64, error) {
	v, ok := vars[e.name]
	if !ok {
		return 0, &UnboundVariableError{Name: e.name}
	}
	return v, nil
}

type negateExpr struct {
	operand expr
}

func (e negateExpr) eval(vars Variables) (float64, error) {
	v, err := e.operand.eval(vars)
	if err != nil {
		return 0, err
	}
	return -v, nil
}

type binaryExpr struct {
	op    TokenType
	left  expr
	right expr
}

func (e binaryExpr) eval(vars Variables) (float64, error) {
	l, err := e.left.eval(vars)
	if err != nil {
		return 0, err
	}
	r, err := e.right.eval(vars)
	if err != nil {
		return 0, err
	}
	var v float64
	switch e.op {
	case PLUS:
		v = l + r
	case MINUS:
		v = l - r
	case STAR:
		v = l * r
	default:
		v = l / r
	}
	// catch non-finite intermediates here, not just the final result:
	// 1/(1/0) would otherwise evaluate to a finite 0
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &EvaluationError{Reason: "non-finite intermediate result"}
	}
	return v, nil
}

type callExpr struct {
	fn   Func
	args []expr
}

func (e callExpr) eval(vars Variables) (float64, error) {
	args := make([]float64, len(e.args))
	for i, arg := range e.args {
		v, err := arg.eval(vars)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	return e.fn.Call(args), nil
}

// parser is a recursive-descent parser over the token stream with the usual
// precedence: unary minus and function calls bind tightest, then * and /,
// then + and -, all left-associative. Parentheses override precedence.
type parser struct {
	tokens []Token
	pos    int
}

func parse(tokens []Token) (expr, error) {
	p := &parser{tokens: tokens}
	root, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != EOF {
		return nil, &SyntaxError{Pos: tok.Pos, Reason: "unexpected " + tok.Type.String()}
	}
	return root, nil
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Type != EOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseSum() (expr, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op.Type != PLUS && op.Type != MINUS {
			return left, nil
		}
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = binaryExpr{op: op.Type, left: left, right: right}
	}
}

func (p *parser) parseProduct() (expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op.Type != STAR && op.Type != SLASH {
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryExpr{op: op.Type, left: left, right: right}
	}
}

func (p *parser) parseUnary() (expr, error) {
	if p.peek().Type == MINUS {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return negateExpr{operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (expr, error) {
	tok := p.next()
	switch tok.Type {
	case NUMBER:
		v, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, &SyntaxError{Pos: tok.Pos, Reason: "malformed number " + tok.Value}
		}
		return numberExpr{value: v}, nil

	case VARIABLE:
		return variableExpr{name: tok.Value}, nil

	case FUNC:
		return p.parseCall(tok)

	case LPAREN:
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.Type != RPAREN {
			return nil, &SyntaxError{Pos: closing.Pos, Reason: "missing closing parenthesis"}
		}
		return inner, nil

	case EOF:
		return nil, &SyntaxError{Pos: tok.Pos, Reason: "unexpected end of formula"}

	default:
		return nil, &SyntaxError{Pos: tok.Pos, Reason: "unexpected " + tok.Type.String()}
	}
}

// parseCall parses the parenthesized argument list of an allow-listed
// function. The argument count must match the function's arity exactly.
func (p *parser) parseCall(fnTok Token) (expr, error) {
	fn, ok := LookupFunc(fnTok.Value)
	if !ok {
		return nil, &SyntaxError{Pos: fnTok.Pos, Reason: "unknown function " + fnTok.Value}
	}
	if open := p.next(); open.Type != LPAREN {
		return nil, &SyntaxError{Pos: open.Pos, Reason: "expected ( after " + fn.Name}
	}

	var args []expr
	if p.peek().Type != RPAREN {
		for {
			arg, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().Type != COMMA {
				break
			}
			p.next()
		}
	}
	closing := p.next()
	if closing.Type != RPAREN {
		return nil, &SyntaxError{Pos: closing.Pos, Reason: "missing closing parenthesis in " + fn.Name + " call"}
	}
	if len(args) != fn.Arity {
		return nil, &SyntaxError{
			Pos:    fnTok.Pos,
			Reason: fmt.Sprintf("%s expects %d argument(s), got %d", fn.Name, fn.Arity, len(args)),
		}
	}
	return callExpr{fn: fn, args: args}, nil
}
