package formula

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		formula  string
		vars     Variables
		expected float64
	}{
		{
			name:     "width minus two thicknesses",
			formula:  "W - 2*T",
			vars:     Variables{"W": 24, "T": 0.75},
			expected: 22.5,
		},
		{
			name:     "half width with reveal",
			formula:  "W/2 - 0.5",
			vars:     Variables{"W": 24},
			expected: 11.5,
		},
		{
			name:     "rounded half drawer height",
			formula:  "round(H_drawer / 2)",
			vars:     Variables{"H_drawer": 7},
			expected: 4,
		},
		{
			name:     "min of two panels",
			formula:  "min(W - 2*T, D)",
			vars:     Variables{"W": 24, "T": 0.75, "D": 12},
			expected: 12,
		},
		{
			name:     "nested calls",
			formula:  "max(floor(W / 7), ceil(T))",
			vars:     Variables{"W": 24, "T": 0.75},
			expected: 3,
		},
		{
			name:     "single variable",
			formula:  "D_drawer",
			vars:     Variables{"D_drawer": 11},
			expected: 11,
		},
		{
			name:     "plain number",
			formula:  "19.25",
			vars:     Variables{},
			expected: 19.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.formula, tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluate_RoundHalfAwayFromZero(t *testing.T) {
	vars := Variables{"H": 7}

	got, err := Evaluate("round(H / 2)", vars)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)

	got, err = Evaluate("round(-H / 2)", vars)
	require.NoError(t, err)
	assert.Equal(t, -4.0, got)
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	vars := Variables{"W": 24, "T": 0.75}

	_, err := Evaluate("W / (T - T)", vars)
	require.Error(t, err)

	var ee *EvaluationError
	assert.True(t, errors.As(err, &ee), "expected *EvaluationError, got %T", err)
}

func TestEvaluate_NonFiniteIntermediate(t *testing.T) {
	vars := Variables{"W": 24}

	// 1/(1/0) would collapse back to 0 if the inner division were let through
	_, err := Evaluate("1 / (1 / (W - W))", vars)
	require.Error(t, err)

	var ee *EvaluationError
	assert.True(t, errors.As(err, &ee), "expected *EvaluationError, got %T", err)
}

func TestEvaluate_ValidationRunsFirst(t *testing.T) {
	vars := Variables{"W": 24}

	_, err := Evaluate("X + 1", vars)
	require.Error(t, err)

	var ife *InvalidFormulaError
	assert.True(t, errors.As(err, &ife), "expected *InvalidFormulaError, got %T", err)
}

func TestEvaluate_ArityMismatch(t *testing.T) {
	vars := Variables{"W": 24}

	_, err := Evaluate("min(W)", vars)
	require.Error(t, err)

	var se *SyntaxError
	assert.True(t, errors.As(err, &se), "expected *SyntaxError, got %T", err)
}

func TestEvaluate_Idempotent(t *testing.T) {
	vars := Variables{"W": 24, "T": 0.75, "H_drawer": 6}

	first, err := Evaluate("max(W - 2*T, round(H_drawer / 2))", vars)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		got, err := Evaluate("max(W - 2*T, round(H_drawer / 2))", vars)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestEvaluate_Concurrent(t *testing.T) {
	vars := Variables{"W": 24, "T": 0.75}

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 200; j++ {
				v, err := Evaluate("W - 2*T", vars)
				if err != nil {
					done <- err
					return
				}
				if v != 22.5 {
					done <- errors.New("unexpected result")
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-done)
	}
}
