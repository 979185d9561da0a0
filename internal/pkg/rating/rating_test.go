package rating

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		qt   QuestionType
		want float64
	}{
		{"yes maps to 10", 1, QuestionTypeYesNo, 10},
		{"no maps to 0", 0, QuestionTypeYesNo, 0},
		{"scale_3 low", 1, QuestionTypeScale3, 10.0 / 3},
		{"scale_3 mid", 2, QuestionTypeScale3, 20.0 / 3},
		{"scale_3 high", 3, QuestionTypeScale3, 10},
		{"scale_1_10 identity", 7, QuestionTypeScale10, 7},
		{"missing type falls back to identity", 5, "", 5},
		{"unknown type falls back to identity", 5, "stars_5", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw, tt.qt); !almostEqual(got, tt.want) {
				t.Errorf("Normalize(%v, %q) = %v, want %v", tt.raw, tt.qt, got, tt.want)
			}
		})
	}
}

func TestNormalizeYesNoAverageIsLinear(t *testing.T) {
	// mean of normalized 0/1 ratings must equal 10 * mean(raw); the linear
	// single-value rule keeps the two paths consistent.
	raws := []float64{1, 0, 1, 1}
	sumNorm := 0.0
	sumRaw := 0.0
	for _, r := range raws {
		sumNorm += Normalize(r, QuestionTypeYesNo)
		sumRaw += r
	}
	if !almostEqual(sumNorm/4, sumRaw/4*10) {
		t.Errorf("averaged normalization diverged: %v vs %v", sumNorm/4, sumRaw/4*10)
	}
}

func TestValidRaw(t *testing.T) {
	tests := []struct {
		raw  float64
		qt   QuestionType
		want bool
	}{
		{0, QuestionTypeYesNo, true},
		{1, QuestionTypeYesNo, true},
		{2, QuestionTypeYesNo, false},
		{1, QuestionTypeScale3, true},
		{3, QuestionTypeScale3, true},
		{0, QuestionTypeScale3, false},
		{4, QuestionTypeScale3, false},
		{1, QuestionTypeScale10, true},
		{10, QuestionTypeScale10, true},
		{0, QuestionTypeScale10, false},
		{11, QuestionTypeScale10, false},
		{7.5, QuestionTypeScale10, false},
	}

	for _, tt := range tests {
		if got := ValidRaw(tt.raw, tt.qt); got != tt.want {
			t.Errorf("ValidRaw(%v, %q) = %v, want %v", tt.raw, tt.qt, got, tt.want)
		}
	}
}

func TestResponseAverage(t *testing.T) {
	r := Response{Items: []Item{
		{ParameterID: 1, Rating: 1, QuestionType: QuestionTypeYesNo},
		{ParameterID: 2, Rating: 3, QuestionType: QuestionTypeScale3},
	}}
	if got := ResponseAverage(r); !almostEqual(got, 10) {
		t.Errorf("ResponseAverage = %v, want 10", got)
	}

	mixed := Response{Items: []Item{
		{ParameterID: 1, Rating: 0, QuestionType: QuestionTypeYesNo},
		{ParameterID: 2, Rating: 8, QuestionType: QuestionTypeScale10},
	}}
	if got := ResponseAverage(mixed); !almostEqual(got, 4) {
		t.Errorf("ResponseAverage = %v, want 4", got)
	}
}

func TestResponseAverageEmpty(t *testing.T) {
	if got := ResponseAverage(Response{}); got != 0 {
		t.Errorf("ResponseAverage of empty response = %v, want 0", got)
	}
}

func TestParameterAverageStaysRaw(t *testing.T) {
	responses := []Response{
		{ID: 1, Items: []Item{{ParameterID: 5, Rating: 2, QuestionType: QuestionTypeScale3}}},
		{ID: 2, Items: []Item{{ParameterID: 5, Rating: 3, QuestionType: QuestionTypeScale3}}},
		{ID: 3, Items: []Item{{ParameterID: 6, Rating: 9, QuestionType: QuestionTypeScale10}}},
	}

	// Raw scale, not normalized: (2+3)/2, never (6.67+10)/2.
	if got := ParameterAverage(responses, 5); !almostEqual(got, 2.5) {
		t.Errorf("ParameterAverage = %v, want 2.5", got)
	}
	if got := ParameterAverage(responses, 6); !almostEqual(got, 9) {
		t.Errorf("ParameterAverage = %v, want 9", got)
	}
}

func TestParameterAverageNoMatches(t *testing.T) {
	responses := []Response{
		{ID: 1, Items: []Item{{ParameterID: 5, Rating: 2, QuestionType: QuestionTypeScale3}}},
	}
	if got := ParameterAverage(responses, 99); got != 0 {
		t.Errorf("ParameterAverage over zero matches = %v, want 0", got)
	}
	if got := ParameterAverage(nil, 5); got != 0 {
		t.Errorf("ParameterAverage over nil responses = %v, want 0", got)
	}
}
