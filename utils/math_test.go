package utils

import (
	"testing"

	"go.viam.com/test"
)

func TestClamp(t *testing.T) {
	test.That(t, Clamp(0.5, 0, 1), test.ShouldEqual, 0.5)
	test.That(t, Clamp(-0.2, 0, 1), test.ShouldEqual, 0.0)
	test.That(t, Clamp(1.7, 0, 1), test.ShouldEqual, 1.0)
}

func TestMinMaxInt(t *testing.T) {
	test.That(t, MinInt(3, 7), test.ShouldEqual, 3)
	test.That(t, MinInt(7, 3), test.ShouldEqual, 3)
	test.That(t, MaxInt(3, 7), test.ShouldEqual, 7)
	test.That(t, MaxInt(7, 3), test.ShouldEqual, 7)
}
