package chain

import (
	"strconv"
	"strings"
)

// ParseScript splits a chain script into lines and parses it.
func ParseScript(src string) ([]Step, error) {
	return Parse(strings.Split(src, "\n"))
}

// Parse parses every non-blank line into a Step. Parsing is strict:
// all lines are attempted first, and if any line fails the whole
// script is rejected with every parse error reported. No partial
// result is returned for a script with syntax errors.
func Parse(lines []string) ([]Step, error) {
	var steps []Step
	var errs ParseErrors
	for n, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		action, err := parseLine(line)
		if err != nil {
			errs = append(errs, &ParseError{Line: n + 1, Source: line, Reason: err.Error()})
			continue
		}
		steps = append(steps, Step{Line: n + 1, Source: line, Action: action})
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return steps, nil
}

func parseLine(line string) (Action, error) {
	if strings.HasPrefix(line, "#") {
		return Comment{Text: strings.TrimSpace(strings.TrimPrefix(line, "#"))}, nil
	}

	keyword, rest := splitWord(line)
	switch keyword {
	case "group":
		if rest == "" {
			return nil, errEmptyField("group name")
		}
		return SelectGroup{Name: rest}, nil

	case "mine":
		qtyField, name := splitWord(rest)
		qty, err := parseNumber(qtyField, "quantity")
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, errEmptyField("ingredient name")
		}
		return Mine{Quantity: qty, Ingredient: name}, nil

	case "all":
		ingredient, recipe, err := splitInto(rest)
		if err != nil {
			return nil, err
		}
		return AllInto{Ingredient: ingredient, Recipe: recipe}, nil

	case "use":
		fracField, tail := splitWord(rest)
		frac, err := parseNumber(fracField, "fraction")
		if err != nil {
			return nil, err
		}
		ingredient, recipe, err := splitInto(tail)
		if err != nil {
			return nil, err
		}
		return UseInto{Fraction: frac, Ingredient: ingredient, Recipe: recipe}, nil

	default:
		return nil, errUnknownDirective(keyword)
	}
}

// splitWord splits off the first whitespace-delimited word and returns
// it with the trimmed remainder.
func splitWord(s string) (word, rest string) {
	s = strings.TrimSpace(s)
	if n := strings.IndexAny(s, " \t"); n >= 0 {
		return s[:n], strings.TrimSpace(s[n:])
	}
	return s, ""
}

// splitInto splits "<ingredient> into <recipe>" on the first "into"
// keyword.
func splitInto(s string) (ingredient, recipe string, err error) {
	parts := strings.SplitN(s, " into ", 2)
	if len(parts) != 2 {
		return "", "", errMissingInto()
	}
	ingredient = strings.TrimSpace(parts[0])
	recipe = strings.TrimSpace(parts[1])
	if ingredient == "" {
		return "", "", errEmptyField("ingredient name")
	}
	if recipe == "" {
		return "", "", errEmptyField("recipe name")
	}
	return ingredient, recipe, nil
}

func parseNumber(field, what string) (float64, error) {
	if field == "" {
		return 0, errEmptyField(what)
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, errBadNumber(what, field)
	}
	return v, nil
}
