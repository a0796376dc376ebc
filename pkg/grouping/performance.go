package grouping

import "math"

// TermTotal is one term's credit and weighted-grade sum for a student.
type TermTotal struct {
	TermYearID int64
	Credits    float64
	Weighted   float64
}

// Performance is a term's figures together with the running cumulative values.
type Performance struct {
	TermYearID         int64
	Credits            float64
	CumulativeCredits  float64
	Weighted           float64
	CumulativeWeighted float64
	GPA                float64
	CumulativeGPA      float64
}

// Accumulate walks terms in ascending order keeping running sums and returns the
// results newest term first.
func Accumulate(terms []TermTotal) []Performance {
	out := make([]Performance, len(terms))
	var credits, weighted float64
	for i, t := range terms {
		credits += t.Credits
		weighted += t.Weighted
		out[len(terms)-1-i] = Performance{
			TermYearID:         t.TermYearID,
			Credits:            t.Credits,
			CumulativeCredits:  Round2(credits),
			Weighted:           t.Weighted,
			CumulativeWeighted: Round2(weighted),
			GPA:                Ratio(t.Weighted, t.Credits),
			CumulativeGPA:      Ratio(weighted, credits),
		}
	}
	return out
}

// Ratio divides weighted by credits rounded to two decimals; zero credits yield 0.
func Ratio(weighted, credits float64) float64 {
	if credits == 0 {
		return 0
	}
	return Round2(weighted / credits)
}

// Round2 rounds half away from zero to two decimals.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
