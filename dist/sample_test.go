// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

func TestSampleShapeAndRange(t *testing.T) {
	d := Must(J(Must(Uniform(0, 1)), Must(Normal(0, 1))))
	samples, err := d.Sample(50, rand.NewSource(1))
	require.NoError(t, err)
	if len(samples) != 2 || len(samples[0]) != 50 {
		t.Fatalf("shape: got (%d, %d)", len(samples), len(samples[0]))
	}
	for _, x := range samples[0] {
		if x < 0 || x > 1 {
			t.Errorf("uniform draw %v outside [0, 1]", x)
		}
	}
}

func TestSampleDeterministic(t *testing.T) {
	d := Must(Normal(2, 3))
	a, err := d.Sample1(20, rand.NewSource(42))
	require.NoError(t, err)
	b, err := d.Sample1(20, rand.NewSource(42))
	require.NoError(t, err)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed, different draw at %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestSampleDependent(t *testing.T) {
	// The second component is a deterministic shift of the first;
	// each joint draw must realize the shared component once and
	// reuse it.
	u := Must(Uniform(0, 1))
	v := Must(Shift(u, 1))
	d := Must(J(u, v))
	samples, err := d.Sample(30, rand.NewSource(7))
	require.NoError(t, err)
	for j := 0; j < 30; j++ {
		if !aeq(samples[0][j]+1, samples[1][j]) {
			t.Errorf("draw %d: %v + 1 != %v", j, samples[0][j], samples[1][j])
		}
	}
}

func TestSampleMean(t *testing.T) {
	d := Must(Normal(5, 1))
	xs, err := d.Sample1(4000, rand.NewSource(3))
	require.NoError(t, err)
	mean := floats.Sum(xs) / float64(len(xs))
	if !aeqTol(5, mean, 0.1) {
		t.Errorf("sample mean: want about 5, got %v", mean)
	}
}
