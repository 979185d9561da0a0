// Package rating converts raw answer values into a common 0-10 scale and
// aggregates them for display. The question type is embedded on each stored
// response item at submission time, so the mapping here applies uniformly to
// historical data even after the live question bank changes.
//
// Single yes/no ratings are normalized linearly (0 maps to 0, 1 maps to 10),
// the same rule the averaged path uses. The source system disagreed with
// itself here (one call site mapped a raw 0 to 1 instead of 0); the linear
// rule is the only one consistent under averaging and is the convention in
// force throughout this codebase.
package rating

// QuestionType discriminates how a raw rating value is interpreted.
type QuestionType string

const (
	// QuestionTypeYesNo records answers as 0 or 1.
	QuestionTypeYesNo QuestionType = "yes_no"
	// QuestionTypeScale3 records answers as 1, 2 or 3.
	QuestionTypeScale3 QuestionType = "scale_3"
	// QuestionTypeScale10 records answers as 1 through 10.
	QuestionTypeScale10 QuestionType = "scale_1_10"
)

// Item is one answered question within a response, with the question type
// captured at submission time.
type Item struct {
	ParameterID  int64
	Rating       float64
	QuestionType QuestionType
}

// Response is one student's completed submission.
type Response struct {
	ID    int64
	Items []Item
}

// Normalize maps a raw rating onto the 0-10 scale. An unknown or empty
// question type falls back to identity; responses recorded before the type
// was tracked are all on the 1-10 scale already.
func Normalize(raw float64, qt QuestionType) float64 {
	switch qt {
	case QuestionTypeYesNo:
		return raw * 10
	case QuestionTypeScale3:
		return raw / 3 * 10
	default:
		return raw
	}
}

// ValidRaw reports whether a raw value lies in the question type's recording
// domain. The rule functions themselves stay total; this is for write-time
// validation at the submission endpoint.
func ValidRaw(raw float64, qt QuestionType) bool {
	switch qt {
	case QuestionTypeYesNo:
		return raw == 0 || raw == 1
	case QuestionTypeScale3:
		return raw == 1 || raw == 2 || raw == 3
	default:
		return raw >= 1 && raw <= 10 && raw == float64(int(raw))
	}
}

// ResponseAverage is the mean normalized rating over every item in the
// response. A response with no items yields 0, not NaN.
func ResponseAverage(r Response) float64 {
	if len(r.Items) == 0 {
		return 0
	}
	sum := 0.0
	for _, it := range r.Items {
		sum += Normalize(it.Rating, it.QuestionType)
	}
	return sum / float64(len(r.Items))
}

// ParameterAverage is the mean RAW rating for one question across every
// response that answered it. It deliberately stays on the recording scale:
// display code re-normalizes per question type, and average-then-normalize is
// not the same as normalize-then-average for the 3-point scale, so each call
// site must apply exactly one of the two consistently.
func ParameterAverage(responses []Response, parameterID int64) float64 {
	sum, n := 0.0, 0
	for _, r := range responses {
		for _, it := range r.Items {
			if it.ParameterID == parameterID {
				sum += it.Rating
				n++
			}
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
