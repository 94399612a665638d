package model

import "fmt"

type Category uint8

const (
	CategoryNone Category = iota
	CategoryJack
	CategoryHandstream
	CategoryJumpstream
	CategorySinglestream
)

var categoryNames = [...]string{
	CategoryNone:         "None",
	CategoryJack:         "Jack",
	CategoryHandstream:   "Handstream",
	CategoryJumpstream:   "Jumpstream",
	CategorySinglestream: "Singlestream",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Unknown"
}

type SubPattern uint8

const (
	SubNone SubPattern = iota

	// jack
	SubChordjack
	SubDenseChordjack
	SubChordStream
	SubSpeedjack

	// jumpstream
	SubLightJs
	SubAnchorJs
	SubJS
	SubJT

	// handstream
	SubLightHs
	SubAnchorHs
	SubDenseHs
	SubHS

	SubSinglestream

	// SubAll only appears in rollups, never on a measure.
	SubAll
)

var subPatternLabels = map[SubPattern]string{
	SubChordjack:      "Chordjack",
	SubDenseChordjack: "Dense Chordjack",
	SubChordStream:    "ChordStream",
	SubSpeedjack:      "Speedjack",
	SubLightJs:        "Light JS",
	SubAnchorJs:       "Anchor JS",
	SubJS:             "JS",
	SubJT:             "JT",
	SubLightHs:        "Light HS",
	SubAnchorHs:       "Anchor HS",
	SubDenseHs:        "Dense HS",
	SubHS:             "HS",
	SubSinglestream:   "Singlestream",
}

// subPatternsOf is the closed set of sub-patterns each category may carry.
var subPatternsOf = map[Category][]SubPattern{
	CategoryJack:         {SubChordjack, SubDenseChordjack, SubChordStream, SubSpeedjack, SubAll},
	CategoryJumpstream:   {SubLightJs, SubAnchorJs, SubJS, SubJT, SubAll},
	CategoryHandstream:   {SubLightHs, SubAnchorHs, SubDenseHs, SubHS, SubAll},
	CategorySinglestream: {SubSinglestream, SubAll},
	CategoryNone:         {SubNone},
}

// Pattern is a secondary category together with its sub-pattern.
// The zero value is the unclassified pattern.
type Pattern struct {
	Category Category
	Sub      SubPattern
}

var NonePattern = Pattern{}

func Jack(sub SubPattern) Pattern         { return Pattern{CategoryJack, sub} }
func Handstream(sub SubPattern) Pattern   { return Pattern{CategoryHandstream, sub} }
func Jumpstream(sub SubPattern) Pattern   { return Pattern{CategoryJumpstream, sub} }
func Singlestream(sub SubPattern) Pattern { return Pattern{CategorySinglestream, sub} }

// SubPatternsOf returns the sub-patterns allowed for a category.
func SubPatternsOf(c Category) []SubPattern {
	subs := subPatternsOf[c]
	res := make([]SubPattern, len(subs))
	copy(res, subs)
	return res
}

// Valid reports whether the sub-pattern belongs to the category's closed set.
func (p Pattern) Valid() bool {
	for _, sub := range subPatternsOf[p.Category] {
		if sub == p.Sub {
			return true
		}
	}
	return false
}

func (p Pattern) IsNone() bool {
	return p.Category == CategoryNone
}

// ToAll collapses the pattern to its category rollup.
func (p Pattern) ToAll() Pattern {
	if p.Category == CategoryNone {
		return NonePattern
	}
	return Pattern{p.Category, SubAll}
}

// Less orders patterns by category then sub-pattern.
func (p Pattern) Less(other Pattern) bool {
	if p.Category != other.Category {
		return p.Category < other.Category
	}
	return p.Sub < other.Sub
}

func (p Pattern) String() string {
	switch {
	case p.Category == CategoryNone:
		return "None"
	case p.Sub == SubAll:
		return "All " + p.Category.String()
	}
	if label, ok := subPatternLabels[p.Sub]; ok {
		return label
	}
	return p.Category.String()
}

func (p Pattern) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid pattern %v/%d", p.Category, p.Sub)
	}
	return []byte(p.String()), nil
}

func (p *Pattern) UnmarshalText(text []byte) error {
	parsed, err := ParsePattern(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

var patternsByLabel = func() map[string]Pattern {
	res := make(map[string]Pattern)
	for category, subs := range subPatternsOf {
		for _, sub := range subs {
			p := Pattern{category, sub}
			res[p.String()] = p
		}
	}
	return res
}()

// ParsePattern is the inverse of Pattern.String.
func ParsePattern(label string) (Pattern, error) {
	if p, ok := patternsByLabel[label]; ok {
		return p, nil
	}
	return NonePattern, fmt.Errorf("unknown pattern label %q", label)
}

// Scores maps a pattern to its accumulated weighted value.
type Scores = map[Pattern]float64

type PatternScore struct {
	Pattern Pattern `json:"pattern"`
	Score   float64 `json:"score"`
}
