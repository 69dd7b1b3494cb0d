// By Navid M (c)
// Date: 2025
// License: GPL3
//
// Constant-expression evaluator for the text inside `[...]` brackets,
// reduced once after parameter substitution. Built as a participle v2
// grammar — see SPEC_FULL.md §4.9a for why a batch tokenize-then-parse
// library fits this one component of the preprocessor and nothing else
// in it.

package preprocessor

import (
	"errors"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Hex", Pattern: `0[xX][0-9a-fA-F]+[uUlL]*`},
	{Name: "Number", Pattern: `[0-9]+[uUlL]*`},
	{Name: "LShift", Pattern: `<<`},
	{Name: "RShift", Pattern: `>>`},
	{Name: "OrOr", Pattern: `\|\|`},
	{Name: "AndAnd", Pattern: `&&`},
	{Name: "Or", Pattern: `\|`},
	{Name: "Xor", Pattern: `\^`},
	{Name: "And", Pattern: `&`},
	{Name: "Plus", Pattern: `\+`},
	{Name: "Minus", Pattern: `-`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Slash", Pattern: `/`},
	{Name: "Percent", Pattern: `%`},
	{Name: "Tilde", Pattern: `~`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
})

type exprPrimary struct {
	Hex    *string      `parser:"  @Hex"`
	Number *string      `parser:"| @Number"`
	Sub    *exprOrLevel `parser:"| \"(\" @@ \")\""`
}

type exprUnary struct {
	Ops     []string     `parser:"@(\"+\" | \"-\" | \"~\")*"`
	Primary *exprPrimary `parser:"@@"`
}

type exprMulOp struct {
	Op    string     `parser:"@(\"*\" | \"/\" | \"%\")"`
	Right *exprUnary `parser:"@@"`
}

type exprMulLevel struct {
	Left *exprUnary   `parser:"@@"`
	Ops  []*exprMulOp `parser:"@@*"`
}

type exprAddOp struct {
	Op    string        `parser:"@(\"+\" | \"-\")"`
	Right *exprMulLevel `parser:"@@"`
}

type exprAddLevel struct {
	Left *exprMulLevel `parser:"@@"`
	Ops  []*exprAddOp  `parser:"@@*"`
}

type exprShiftOp struct {
	Op    string        `parser:"@(\"<<\" | \">>\")"`
	Right *exprAddLevel `parser:"@@"`
}

type exprShiftLevel struct {
	Left *exprAddLevel  `parser:"@@"`
	Ops  []*exprShiftOp `parser:"@@*"`
}

type exprAndOp struct {
	Op    string          `parser:"@And"`
	Right *exprShiftLevel `parser:"@@"`
}

type exprAndLevel struct {
	Left *exprShiftLevel `parser:"@@"`
	Ops  []*exprAndOp    `parser:"@@*"`
}

type exprXorOp struct {
	Op    string        `parser:"@Xor"`
	Right *exprAndLevel `parser:"@@"`
}

type exprXorLevel struct {
	Left *exprAndLevel `parser:"@@"`
	Ops  []*exprXorOp  `parser:"@@*"`
}

type exprOrOp struct {
	Op    string        `parser:"@Or"`
	Right *exprXorLevel `parser:"@@"`
}

type exprOrLevel struct {
	Left *exprXorLevel `parser:"@@"`
	Ops  []*exprOrOp   `parser:"@@*"`
}

var constExprParser = participle.MustBuild[exprOrLevel](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

var errDivideByZero = errors.New("division or modulo by zero")

// evaluateConstantExpression parses and evaluates expression, returning
// ok=false for anything the grammar rejects (including a bare "||" or
// "&&", which the lexer tokenizes whole and no rule in this grammar
// accepts) or that fails at evaluation time (division/modulo by zero).
func evaluateConstantExpression(expression string) (int64, bool) {
	ast, err := constExprParser.ParseString("", expression)
	if err != nil {
		return 0, false
	}

	value, err := ast.eval()
	if err != nil {
		return 0, false
	}

	return value, true
}

func (e *exprOrLevel) eval() (int64, error) {
	value, err := e.Left.eval()
	if err != nil {
		return 0, err
	}
	for _, op := range e.Ops {
		right, err := op.Right.eval()
		if err != nil {
			return 0, err
		}
		value |= right
	}
	return value, nil
}

func (e *exprXorLevel) eval() (int64, error) {
	value, err := e.Left.eval()
	if err != nil {
		return 0, err
	}
	for _, op := range e.Ops {
		right, err := op.Right.eval()
		if err != nil {
			return 0, err
		}
		value ^= right
	}
	return value, nil
}

func (e *exprAndLevel) eval() (int64, error) {
	value, err := e.Left.eval()
	if err != nil {
		return 0, err
	}
	for _, op := range e.Ops {
		right, err := op.Right.eval()
		if err != nil {
			return 0, err
		}
		value &= right
	}
	return value, nil
}

func (e *exprShiftLevel) eval() (int64, error) {
	value, err := e.Left.eval()
	if err != nil {
		return 0, err
	}
	for _, op := range e.Ops {
		right, err := op.Right.eval()
		if err != nil {
			return 0, err
		}
		if op.Op == "<<" {
			value <<= uint64(right)
		} else {
			value >>= uint64(right)
		}
	}
	return value, nil
}

func (e *exprAddLevel) eval() (int64, error) {
	value, err := e.Left.eval()
	if err != nil {
		return 0, err
	}
	for _, op := range e.Ops {
		right, err := op.Right.eval()
		if err != nil {
			return 0, err
		}
		if op.Op == "+" {
			value += right
		} else {
			value -= right
		}
	}
	return value, nil
}

func (e *exprMulLevel) eval() (int64, error) {
	value, err := e.Left.eval()
	if err != nil {
		return 0, err
	}
	for _, op := range e.Ops {
		right, err := op.Right.eval()
		if err != nil {
			return 0, err
		}
		switch op.Op {
		case "*":
			value *= right
		case "/":
			if right == 0 {
				return 0, errDivideByZero
			}
			value /= right
		case "%":
			if right == 0 {
				return 0, errDivideByZero
			}
			value %= right
		}
	}
	return value, nil
}

func (e *exprUnary) eval() (int64, error) {
	value, err := e.Primary.eval()
	if err != nil {
		return 0, err
	}
	for i := len(e.Ops) - 1; i >= 0; i-- {
		switch e.Ops[i] {
		case "-":
			value = -value
		case "~":
			value = ^value
		}
	}
	return value, nil
}

func (e *exprPrimary) eval() (int64, error) {
	switch {
	case e.Hex != nil:
		return parseHexLiteral(*e.Hex), nil
	case e.Number != nil:
		return parseDecimalLiteral(*e.Number), nil
	case e.Sub != nil:
		return e.Sub.eval()
	default:
		return 0, errors.New("empty expression")
	}
}

func trimNumericSuffix(digits string) string {
	end := len(digits)
	for end > 0 {
		c := digits[end-1]
		if c == 'u' || c == 'U' || c == 'l' || c == 'L' {
			end--
			continue
		}
		break
	}
	return digits[:end]
}

// parseDecimalLiteral parses a decimal literal into an int64, first
// dropping any trailing u/U/l/L suffix letters, wrapping modulo 2^64 on
// overflow rather than failing, per the bracket-evaluator testable
// property in spec §8.
func parseDecimalLiteral(raw string) int64 {
	digits := trimNumericSuffix(raw)
	var value uint64
	for i := 0; i < len(digits); i++ {
		value = value*10 + uint64(digits[i]-'0')
	}
	return int64(value)
}

func parseHexLiteral(raw string) int64 {
	digits := trimNumericSuffix(raw)
	digits = strings.TrimPrefix(digits, "0x")
	digits = strings.TrimPrefix(digits, "0X")

	var value uint64
	for i := 0; i < len(digits); i++ {
		value = value*16 + uint64(hexDigitValue(digits[i]))
	}
	return int64(value)
}

func hexDigitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return 0
	}
}
