package pattern

import "github.com/jsphweid/patterndex/model"

// columns pressed more often than this make a jumpstream anchored
const anchorThreshold = 3

// chord jacks spread over fewer presses than this are not chordstream
const chordStreamMinActive = 6

func refineJack(m *model.Measure) model.SubPattern {
	c := CountTags(m.Notes)
	switch {
	case c.Hand > c.Jump+c.Single:
		return model.SubDenseChordjack
	case c.Quad > 0 && c.Jump+c.Hand+c.Quad > c.Single:
		return model.SubChordjack
	case JackCount(m.Notes) <= 1 && m.TotalActive() > chordStreamMinActive:
		return model.SubChordStream
	default:
		return model.SubSpeedjack
	}
}

func refineJumpstream(m *model.Measure) model.SubPattern {
	if HasConsecutiveJumps(m.Notes) {
		return model.SubJT
	}

	var busiest int
	for _, count := range ColumnCounts(m.Notes, m.KeyCount()) {
		if count > busiest {
			busiest = count
		}
	}

	c := CountTags(m.Notes)
	switch {
	case busiest > anchorThreshold:
		return model.SubAnchorJs
	case c.Jump < c.Single:
		return model.SubLightJs
	default:
		return model.SubJS
	}
}

// refineHandstream never yields HS or Anchor HS: with a jump count that is
// either zero or positive, Light HS and Dense HS cover every measure.
func refineHandstream(m *model.Measure) model.SubPattern {
	if CountTags(m.Notes).Jump == 0 {
		return model.SubLightHs
	}
	return model.SubDenseHs
}

// Refine resolves the sub-pattern for a measure already placed in category.
func Refine(category model.Category, m *model.Measure) model.Pattern {
	switch category {
	case model.CategoryJack:
		return model.Jack(refineJack(m))
	case model.CategoryJumpstream:
		return model.Jumpstream(refineJumpstream(m))
	case model.CategoryHandstream:
		return model.Handstream(refineHandstream(m))
	case model.CategorySinglestream:
		return model.Singlestream(model.SubSinglestream)
	default:
		return model.NonePattern
	}
}
