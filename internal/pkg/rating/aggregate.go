package rating

// FormStat is one form's contribution to a faculty-level aggregate.
type FormStat struct {
	FormID        int64
	Average       float64
	ResponseCount int
}

// FacultyOverall is the response-count-weighted mean of per-form averages:
// sum(avg*n)/sum(n). A flat mean-of-means would let a form with one
// respondent dilute a form with fifty to equal weight. Zero responses over
// all forms yields 0.
func FacultyOverall(forms []FormStat) float64 {
	weighted, total := 0.0, 0
	for _, f := range forms {
		weighted += f.Average * float64(f.ResponseCount)
		total += f.ResponseCount
	}
	if total == 0 {
		return 0
	}
	return weighted / float64(total)
}

// MeanResponseAverage is the flat mean of ResponseAverage over a form's
// responses; this is the per-form "average" that FacultyOverall weights.
func MeanResponseAverage(responses []Response) float64 {
	if len(responses) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range responses {
		sum += ResponseAverage(r)
	}
	return sum / float64(len(responses))
}

// Band is the display bucket a 0-10 average falls into wherever ratings are
// color-coded.
type Band string

const (
	BandGood   Band = "good"
	BandMedium Band = "medium"
	BandPoor   Band = "poor"
	// BandNoData marks an exact zero average, rendered as a dash rather
	// than "0.0".
	BandNoData Band = "no_data"
)

// BandFor buckets an average: >=7 good, [5,7) medium, (0,5) poor, 0 no data.
func BandFor(avg float64) Band {
	switch {
	case avg >= 7:
		return BandGood
	case avg >= 5:
		return BandMedium
	case avg > 0:
		return BandPoor
	default:
		return BandNoData
	}
}
