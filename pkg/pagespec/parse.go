package pagespec

import (
	"strconv"
	"strings"
	"unicode"
)

// Parse parses one spec token (post bracket expansion) into a PageSpec.
//
// Grammar, rotation and qualifier keywords case-insensitive:
//
//	spec      := [handle] range [rotation] [qualifier] {exclusion}
//	handle    := one or two letters immediately preceding a digit or 'end'
//	range     := pageref ['-' pageref]
//	pageref   := integer | 'end'
//	rotation  := 'north' | 'south' | 'east' | 'west'
//	qualifier := 'even' | 'odd'
//	exclusion := '~' range
//
// A bare handle selects the whole document (1-end). The 'end' keyword is
// matched lowercase only, so a two-letter handle can never collide with it.
func Parse(token string) (PageSpec, error) {
	p := &specParser{raw: token, s: stripSpace(token)}
	if p.s == "" {
		return PageSpec{}, &SyntaxError{Token: token, Reason: "empty spec"}
	}
	return p.parse()
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

type specParser struct {
	raw     string
	s       string
	pos     int
	rotSeen bool
}

func (p *specParser) parse() (PageSpec, error) {
	spec := PageSpec{Raw: p.raw}

	spec.Handle = p.handle()

	// A bare handle means the entire document.
	if spec.Handle != "" && p.pos == len(p.s) {
		spec.Start, spec.End = Literal(1), End
		return spec, nil
	}

	start, err := p.pageRef()
	if err != nil {
		return PageSpec{}, err
	}
	spec.Start, spec.End = start, start
	if p.eat('-') {
		if spec.End, err = p.pageRef(); err != nil {
			return PageSpec{}, err
		}
	}

	for p.pos < len(p.s) {
		switch {
		case p.eat('~'):
			om, err := p.omission()
			if err != nil {
				return PageSpec{}, err
			}
			spec.Omissions = append(spec.Omissions, om)
		case p.keyword("north"):
			if err := p.setRotation(&spec, North); err != nil {
				return PageSpec{}, err
			}
		case p.keyword("south"):
			if err := p.setRotation(&spec, South); err != nil {
				return PageSpec{}, err
			}
		case p.keyword("east"):
			if err := p.setRotation(&spec, East); err != nil {
				return PageSpec{}, err
			}
		case p.keyword("west"):
			if err := p.setRotation(&spec, West); err != nil {
				return PageSpec{}, err
			}
		case p.keyword("even"):
			spec.Even = true
		case p.keyword("odd"):
			spec.Odd = true
		default:
			return PageSpec{}, &SyntaxError{
				Token:  p.raw,
				Reason: "unexpected " + strconv.Quote(p.s[p.pos:]),
			}
		}
	}
	return spec, nil
}

// North is the zero rotation, so "already seen" needs its own flag rather
// than a sentinel value.
func (p *specParser) setRotation(spec *PageSpec, r Rotation) error {
	if p.rotSeen {
		return &SyntaxError{Token: p.raw, Reason: "multiple rotation keywords"}
	}
	p.rotSeen = true
	spec.Rotation = r
	return nil
}

// handle consumes a one-or-two letter handle prefix, if present. Per the
// grammar a handle must immediately precede a digit or the 'end' keyword,
// or constitute the whole token.
func (p *specParser) handle() string {
	s := p.s
	if isLetter(s[0]) && len(s) <= 2 && allLetters(s) && s != "end" {
		p.pos = len(s)
		return s
	}
	for _, l := range []int{2, 1} {
		if len(s) <= l || !allLetters(s[:l]) {
			continue
		}
		rest := s[l:]
		if isDigit(rest[0]) || strings.HasPrefix(rest, "end") {
			p.pos = l
			return s[:l]
		}
	}
	return ""
}

func (p *specParser) pageRef() (PageRef, error) {
	if strings.HasPrefix(p.s[p.pos:], "end") {
		p.pos += len("end")
		return End, nil
	}
	start := p.pos
	for p.pos < len(p.s) && isDigit(p.s[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return PageRef{}, &SyntaxError{Token: p.raw, Reason: "expected page number or 'end'"}
	}
	n, err := strconv.Atoi(p.s[start:p.pos])
	if err != nil {
		return PageRef{}, &SyntaxError{Token: p.raw, Reason: "bad page number"}
	}
	return Literal(n), nil
}

func (p *specParser) omission() (Omission, error) {
	start, err := p.pageRef()
	if err != nil {
		return Omission{}, err
	}
	om := Omission{Start: start, End: start}
	if p.eat('-') {
		if om.End, err = p.pageRef(); err != nil {
			return Omission{}, err
		}
	}
	return om, nil
}

func (p *specParser) eat(c byte) bool {
	if p.pos < len(p.s) && p.s[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *specParser) keyword(kw string) bool {
	if len(p.s)-p.pos < len(kw) {
		return false
	}
	if !strings.EqualFold(p.s[p.pos:p.pos+len(kw)], kw) {
		return false
	}
	p.pos += len(kw)
	return true
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

func allLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return true
}
