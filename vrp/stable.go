// SPDX-License-Identifier: MIT
// Package vrp — numeric stabilization helpers.

package vrp

import "math"

// roundScale controls reported-value stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting optimality.
const roundScale = 1e9

// round9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// isInf reports x == +Inf (open window / unlimited bound marker).
func isInf(x float64) bool { return math.IsInf(x, 1) }
