package model

import "golang.org/x/exp/slices"

type Measure struct {
	StartTime int     `json:"start_time"`
	Notes     []Note  `json:"notes"`
	NPM       int     `json:"npm"`
	Pattern   Pattern `json:"pattern"`
	Value     float64 `json:"value"`
}

// TotalActive counts every pressed column across the measure.
func (m *Measure) TotalActive() int {
	var total int
	for _, n := range m.Notes {
		total += n.ActiveCount()
	}
	return total
}

// KeyCount is the column width of the measure's notes.
func (m *Measure) KeyCount() int {
	if len(m.Notes) == 0 {
		return 0
	}
	return len(m.Notes[0].Columns)
}

// Measures keeps measures keyed by start time, iterated in ascending order.
type Measures struct {
	byStart map[int]*Measure
	starts  []int
}

func NewMeasures() *Measures {
	return &Measures{byStart: make(map[int]*Measure)}
}

func (ms *Measures) Len() int {
	return len(ms.starts)
}

func (ms *Measures) Get(start int) (*Measure, bool) {
	m, ok := ms.byStart[start]
	return m, ok
}

// Add appends a note to the measure starting at start, creating the measure
// on first use.
func (ms *Measures) Add(start int, n Note) *Measure {
	m, ok := ms.byStart[start]
	if !ok {
		m = &Measure{StartTime: start}
		ms.byStart[start] = m
		i, _ := slices.BinarySearch(ms.starts, start)
		ms.starts = slices.Insert(ms.starts, i, start)
	}
	m.Notes = append(m.Notes, n)
	m.NPM += n.ActiveCount()
	return m
}

// All returns the measures ordered by start time.
func (ms *Measures) All() []*Measure {
	res := make([]*Measure, 0, len(ms.starts))
	for _, start := range ms.starts {
		res = append(res, ms.byStart[start])
	}
	return res
}
