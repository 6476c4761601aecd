package models

import (
	"math"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestRegressionModel_Predict(t *testing.T) {
	m := &RegressionModel{Name: "test", Intercept: 5.7191, Coefficient: 0.5859}

	got, err := m.Predict(30)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := 5.7191 + 0.5859*30
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %v, got %v", want, got)
	}

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := m.Predict(bad); err == nil {
			t.Errorf("expected error for input %v", bad)
		}
	}
}

func TestRegressionModel_PredictTrainedRange(t *testing.T) {
	m := &RegressionModel{
		Name:        "ranged",
		Intercept:   1,
		Coefficient: 1,
		MinInput:    floatPtr(10),
		MaxInput:    floatPtr(80),
	}

	if _, err := m.Predict(9.99); err == nil {
		t.Error("expected error below trained range")
	}
	if _, err := m.Predict(80.01); err == nil {
		t.Error("expected error above trained range")
	}
	for _, x := range []float64{10, 45, 80} {
		if _, err := m.Predict(x); err != nil {
			t.Errorf("input %v: expected no error, got %v", x, err)
		}
	}
}

func TestRegressionModel_PredictOverflow(t *testing.T) {
	m := &RegressionModel{Name: "huge", Coefficient: math.MaxFloat64}
	if _, err := m.Predict(10); err == nil {
		t.Error("expected error for non-finite prediction")
	}
}

func TestRegressionModel_Validate(t *testing.T) {
	tests := []struct {
		name    string
		model   RegressionModel
		wantErr bool
	}{
		{"valid", RegressionModel{Name: "m", Intercept: 1, Coefficient: 0.5}, false},
		{"missing name", RegressionModel{Intercept: 1, Coefficient: 0.5}, true},
		{"nan intercept", RegressionModel{Name: "m", Intercept: math.NaN(), Coefficient: 0.5}, true},
		{"inf coefficient", RegressionModel{Name: "m", Intercept: 1, Coefficient: math.Inf(1)}, true},
		{"inverted range", RegressionModel{Name: "m", MinInput: floatPtr(50), MaxInput: floatPtr(10)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.model.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAdviceCode_Severity(t *testing.T) {
	tests := map[AdviceCode]Severity{
		AdviceMatch:         SeverityOk,
		AdviceSlightlySmall: SeverityWarning,
		AdviceSlightlyLarge: SeverityWarning,
		AdviceTooSmall:      SeverityError,
		AdviceTooLarge:      SeverityError,
	}
	for code, want := range tests {
		if got := code.Severity(); got != want {
			t.Errorf("%s: expected %s, got %s", code, want, got)
		}
	}
}
