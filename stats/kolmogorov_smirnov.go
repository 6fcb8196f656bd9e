package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

type Confidence = int

const (
	C90 Confidence = iota
	C95
	C97d5
	C99
	C99d5
	C99d9
)

// coefficients are KS-coefficients.
// Retrieved from: https://www.webdepot.umontreal.ca/Usagers/angers/MonDepotPublic/STT3500H10/Critical_KS.pdf
var coefficients = map[Confidence]float64{
	C90:   1.22,
	C95:   1.36,
	C97d5: 1.48,
	C99:   1.63,
	C99d5: 1.73,
	C99d9: 1.95,
}

// KolmogorovSmirnovTestRejection performs a two-tailed KS-test, returning true
// if rejected (i.e., the two sample sets come from different distributions)
// and false if the candidate set is consistent with the control set.
func KolmogorovSmirnovTestRejection(control []float64, candidate []float64, confidence Confidence) bool {
	coeff, ok := coefficients[confidence]
	if !ok {
		panic(fmt.Sprintf("unexpected confidence %v, see Confidence type", confidence))
	}
	if len(control) == 0 || len(candidate) == 0 {
		panic(fmt.Sprintf("KolmogorovSmirnovTestRejection() expected non-empty samples; got len(control) = %d, len(candidate) = %d", len(control), len(candidate)))
	}

	criticalValue := coeff * math.Sqrt(float64(len(control)+len(candidate))/float64(len(control)*len(candidate)))

	// Copy the input slices so we can sort them.
	sortedControl := make([]float64, len(control))
	copy(sortedControl, control)
	sort.Float64s(sortedControl)

	sortedCandidate := make([]float64, len(candidate))
	copy(sortedCandidate, candidate)
	sort.Float64s(sortedCandidate)

	// Pass in nil weights as gonum's stat package allows inputs to be
	// weighted, which is not relevant to timing samples.
	testStatistic := stat.KolmogorovSmirnov(sortedControl, nil, sortedCandidate, nil)

	return testStatistic > criticalValue
}
