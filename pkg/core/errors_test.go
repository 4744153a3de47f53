package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCategoryString(t *testing.T) {
	tests := []struct {
		category ErrorCategory
		want     string
	}{
		{ErrCategoryNone, "none"},
		{ErrCategoryConfig, "config"},
		{ErrCategoryElement, "element"},
		{ErrCategoryGesture, "gesture"},
		{ErrCategoryConnection, "connection"},
		{ErrorCategory(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.category.String(); got != tt.want {
			t.Errorf("ErrorCategory(%d).String() = %q, want %q", tt.category, got, tt.want)
		}
	}
}

func TestSentinelMatchingSurvivesCopies(t *testing.T) {
	err := ErrElementNotFound.
		WithMessage("element not found after 5 probe attempts").
		WithDetails(map[string]interface{}{"probeAttempts": 5})

	if !errors.Is(err, ErrElementNotFound) {
		t.Error("decorated error should still match its sentinel")
	}
	if errors.Is(err, ErrGestureFailed) {
		t.Error("decorated error should not match a different sentinel")
	}
}

func TestWithCauseUnwraps(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := ErrServerUnreachable.WithCause(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause through Unwrap")
	}
	if got := err.Error(); got != "could not connect to automation server: connection refused" {
		t.Errorf("unexpected error string: %q", got)
	}
}

func TestWithDetailsMerges(t *testing.T) {
	base := ErrInvalidCropFactors.WithDetails(map[string]interface{}{"upper": 0.5})
	merged := base.WithDetails(map[string]interface{}{"lower": 0.4})

	if merged.Details["upper"] != 0.5 || merged.Details["lower"] != 0.4 {
		t.Errorf("details not merged: %v", merged.Details)
	}
	if _, ok := base.Details["lower"]; ok {
		t.Error("WithDetails must not mutate the receiver")
	}
}

func TestSentinelCategories(t *testing.T) {
	tests := []struct {
		err  *GestureError
		want ErrorCategory
	}{
		{ErrInvalidCropFactors, ErrCategoryConfig},
		{ErrDegenerateRegion, ErrCategoryConfig},
		{ErrInvalidArgument, ErrCategoryConfig},
		{ErrElementNotFound, ErrCategoryElement},
		{ErrGestureFailed, ErrCategoryGesture},
		{ErrViewportUnavailable, ErrCategoryConnection},
		{ErrServerUnreachable, ErrCategoryConnection},
	}
	for _, tt := range tests {
		if tt.err.Category != tt.want {
			t.Errorf("%s: category = %v, want %v", tt.err.Code, tt.err.Category, tt.want)
		}
	}
}

func TestBoundsCenter(t *testing.T) {
	tests := []struct {
		bounds Bounds
		want   Point
	}{
		{Bounds{X: 20, Y: 20, Width: 40, Height: 20}, Point{X: 40, Y: 30}},
		{Bounds{X: 0, Y: 0, Width: 5, Height: 5}, Point{X: 2, Y: 2}}, // floor division
		{Bounds{X: 100, Y: 200, Width: 0, Height: 0}, Point{X: 100, Y: 200}},
	}
	for _, tt := range tests {
		if got := tt.bounds.Center(); got != tt.want {
			t.Errorf("Center(%+v) = %+v, want %+v", tt.bounds, got, tt.want)
		}
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{X: 10, Y: 10, Width: 20, Height: 20}
	if !b.Contains(10, 10) {
		t.Error("top-left corner should be inside")
	}
	if b.Contains(30, 30) {
		t.Error("exclusive far edge should be outside")
	}
}
