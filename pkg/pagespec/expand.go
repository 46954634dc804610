package pagespec

import "strings"

// ExpandBrackets expands compound group tokens of the form [a,b,c]<suffix>
// into one token per group member, each with the suffix appended. Tokens
// without a leading bracket pass through unchanged.
//
// A comma after the closing bracket is ambiguous (suffix continuation vs. a
// new top-level spec) and is rejected.
func ExpandBrackets(specs []string) ([]string, error) {
	var out []string
	for _, tok := range specs {
		t := strings.TrimSpace(tok)
		if !strings.HasPrefix(t, "[") {
			out = append(out, tok)
			continue
		}
		closing := strings.Index(t, "]")
		if closing < 0 {
			return nil, &SyntaxError{Token: tok, Reason: "missing closing bracket"}
		}
		inner := t[1:closing]
		suffix := t[closing+1:]
		if strings.Contains(suffix, ",") {
			return nil, &SyntaxError{
				Token:  tok,
				Reason: "found a comma after the closing bracket",
			}
		}
		if strings.TrimSpace(inner) == "" {
			return nil, &SyntaxError{Token: tok, Reason: "empty bracket group"}
		}
		for _, member := range strings.Split(inner, ",") {
			m := strings.TrimSpace(member)
			if m == "" {
				return nil, &SyntaxError{Token: tok, Reason: "empty member in bracket group"}
			}
			out = append(out, m+suffix)
		}
	}
	return out, nil
}

// Flatten splits comma-joined tokens into individual specs, dropping empty
// entries. It runs after ExpandBrackets, so no commas inside brackets
// remain.
func Flatten(specs []string) []string {
	var out []string
	for _, tok := range specs {
		for _, part := range strings.Split(tok, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// ParseSpecs runs the full front end over raw command-line tokens: bracket
// expansion, comma flattening, then grammar parsing of each token.
func ParseSpecs(specs []string) ([]PageSpec, error) {
	expanded, err := ExpandBrackets(specs)
	if err != nil {
		return nil, err
	}
	var out []PageSpec
	for _, tok := range Flatten(expanded) {
		ps, err := Parse(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, ps)
	}
	return out, nil
}
