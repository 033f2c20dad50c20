package parser

import "github.com/jscore-dev/jscore/internal/token"

// Precedence levels, lowest to highest, mirroring funvibe-funxy's
// LOWEST/PREFIX/CALL precedence-climbing ladder but with the operator set
// and binding rules of the ECMAScript expression grammar (§4.3).
const (
	LOWEST = iota
	COMMA
	ASSIGN
	CONDITIONAL
	NULLISH
	LOGICAL_OR
	LOGICAL_AND
	BIT_OR
	BIT_XOR
	BIT_AND
	EQUALITY
	RELATIONAL
	SHIFT
	ADDITIVE
	MULTIPLICATIVE
	EXPONENT
	UNARY
	POSTFIX
	CALL
	MEMBER
)

var binaryPrecedence = map[token.Kind]int{
	token.PipePipe:   LOGICAL_OR,
	token.AmpAmp:     LOGICAL_AND,
	token.QuestionQuestion: NULLISH,
	token.Pipe:       BIT_OR,
	token.Caret:      BIT_XOR,
	token.Amp:        BIT_AND,
	token.EQ:         EQUALITY,
	token.NEQ:        EQUALITY,
	token.EQStrict:   EQUALITY,
	token.NEQStrict:  EQUALITY,
	token.LT:         RELATIONAL,
	token.GT:         RELATIONAL,
	token.LTE:        RELATIONAL,
	token.GTE:        RELATIONAL,
	token.LShift:     SHIFT,
	token.RShift:     SHIFT,
	token.URShift:    SHIFT,
	token.Plus:       ADDITIVE,
	token.Minus:      ADDITIVE,
	token.Star:       MULTIPLICATIVE,
	token.Slash:      MULTIPLICATIVE,
	token.Percent:    MULTIPLICATIVE,
	token.StarStar:   EXPONENT,
}

var assignOps = map[token.Kind]bool{
	token.Assign: true, token.PlusAssign: true, token.MinusAssign: true,
	token.StarAssign: true, token.SlashAssign: true, token.PercentAssign: true,
	token.StarStarAssign: true, token.LShiftAssign: true, token.RShiftAssign: true,
	token.URShiftAssign: true, token.AmpAssign: true, token.PipeAssign: true,
	token.CaretAssign: true, token.AmpAmpAssign: true, token.PipePipeAssign: true,
	token.QuestionQuestionAssign: true,
}

func (p *Parser) peekPrecedence() int {
	if assignOps[p.peekToken.Kind] {
		return ASSIGN
	}
	switch p.peekToken.Kind {
	case token.Comma:
		return COMMA
	case token.Question:
		return CONDITIONAL
	case token.LParen, token.QuestionDot:
		return CALL
	case token.Dot, token.LBracket:
		return MEMBER
	case token.PlusPlus, token.MinusMinus:
		if !p.peekToken.PrecededByNewline {
			return POSTFIX
		}
		return LOWEST
	}
	if prec, ok := binaryPrecedence[p.peekToken.Kind]; ok {
		return prec
	}
	if p.peekToken.IsKeyword("instanceof") || (p.allowIn && p.peekToken.IsKeyword("in")) {
		return RELATIONAL
	}
	return LOWEST
}
