package types

import (
	"regexp"
	"strings"
)

var (
	matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
	matchAllCap   = regexp.MustCompile("([a-z0-9])([A-Z])")
	nonAlphaNum   = regexp.MustCompile(`[^a-z0-9]+`)

	kebabSeparators = regexp.MustCompile(`[/{}\[\]:]`)
	kebabCamel      = regexp.MustCompile(`([a-z])([A-Z])`)
	kebabSpaces     = regexp.MustCompile(`[\s_]+`)

	pascalWordStart = regexp.MustCompile(`(?:^\w|[A-Z]|\b\w)`)
	pascalSpaces    = regexp.MustCompile(`\s+`)
)

// ToSnakeCase converts a string to snake_case case.
// If the result starts with a digit, it prepends "n_" to make it a valid Go identifier.
func ToSnakeCase(input string) string {
	snake := matchFirstCap.ReplaceAllString(input, "${1}_${2}")
	snake = matchAllCap.ReplaceAllString(snake, "${1}_${2}")
	snake = strings.ToLower(snake)
	snake = nonAlphaNum.ReplaceAllString(snake, "_")
	snake = strings.Trim(snake, "_")

	if len(snake) > 0 && snake[0] >= '0' && snake[0] <= '9' {
		snake = "n_" + snake
	}
	return snake
}

// ToKebabCase converts a string to kebab-case.
// Path-like characters (/ { } [ ] :) are treated as word separators.
func ToKebabCase(input string) string {
	res := strings.TrimSpace(kebabSeparators.ReplaceAllString(input, " "))
	res = kebabCamel.ReplaceAllString(res, "${1}-${2}")
	res = kebabSpaces.ReplaceAllString(res, "-")
	return strings.ToLower(res)
}

// ToPascalCase upper-cases the first letter of every word and removes whitespace.
// Letters that are not at a word start keep their case.
func ToPascalCase(input string) string {
	res := pascalWordStart.ReplaceAllStringFunc(input, strings.ToUpper)
	return pascalSpaces.ReplaceAllString(res, "")
}
