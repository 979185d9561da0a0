package rating

import "testing"

func TestFacultyOverallWeightsByResponseCount(t *testing.T) {
	forms := []FormStat{
		{FormID: 1, Average: 8.0, ResponseCount: 5},
		{FormID: 2, Average: 2.0, ResponseCount: 1},
	}

	// (8*5 + 2*1) / 6 = 7, not the flat mean 5.
	got := FacultyOverall(forms)
	if !almostEqual(got, 42.0/6) {
		t.Errorf("FacultyOverall = %v, want 7", got)
	}
}

func TestFacultyOverallNoResponses(t *testing.T) {
	forms := []FormStat{
		{FormID: 1, Average: 0, ResponseCount: 0},
		{FormID: 2, Average: 0, ResponseCount: 0},
	}
	if got := FacultyOverall(forms); got != 0 {
		t.Errorf("FacultyOverall with no responses = %v, want 0", got)
	}
	if got := FacultyOverall(nil); got != 0 {
		t.Errorf("FacultyOverall(nil) = %v, want 0", got)
	}
}

func TestMeanResponseAverage(t *testing.T) {
	responses := []Response{
		{Items: []Item{{Rating: 1, QuestionType: QuestionTypeYesNo}}},  // 10
		{Items: []Item{{Rating: 6, QuestionType: QuestionTypeScale10}}}, // 6
	}
	if got := MeanResponseAverage(responses); !almostEqual(got, 8) {
		t.Errorf("MeanResponseAverage = %v, want 8", got)
	}
	if got := MeanResponseAverage(nil); got != 0 {
		t.Errorf("MeanResponseAverage(nil) = %v, want 0", got)
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		avg  float64
		want Band
	}{
		{9.5, BandGood},
		{7, BandGood},
		{6.99, BandMedium},
		{5, BandMedium},
		{4.99, BandPoor},
		{0.1, BandPoor},
		{0, BandNoData},
	}
	for _, tt := range tests {
		if got := BandFor(tt.avg); got != tt.want {
			t.Errorf("BandFor(%v) = %q, want %q", tt.avg, got, tt.want)
		}
	}
}
