package parser

import (
	"strconv"
	"strings"

	"github.com/RobinBoers/signo/interp"
	"github.com/RobinBoers/signo/token"
)

// parseNumberLexeme parses a Number token's lexeme: one containing a
// '.' parses as a float, otherwise as an integer.
func parseNumberLexeme(lexeme string, pos token.Position) (interp.Number, error) {
	if strings.Contains(lexeme, ".") {
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return interp.Number{}, interp.LexErrorf(pos, "invalid number literal: %q", lexeme)
		}
		return interp.FloatNumber(f), nil
	}
	i, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return interp.Number{}, interp.LexErrorf(pos, "invalid number literal: %q", lexeme)
	}
	return interp.IntNumber(i), nil
}
