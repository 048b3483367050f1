// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math64 implements the vector, quaternion and matrix primitives
// used throughout the physics core. Unlike math32, every quantity here is
// a float64: the simulation accumulates many small corrections per tick and
// the extra precision keeps long-running worlds from drifting.
package math64

import "math"

const Pi = math.Pi
const degreeToRadiansFactor = math.Pi / 180
const radianToDegreesFactor = 180.0 / math.Pi

// Max is the largest finite extent the engine will ever report for an AABB.
// It stands in for +/-infinity on the fallback axis-unaligned plane AABB so
// that downstream envelope math (Extend) stays finite.
const Max = math.MaxFloat64

var Infinity = math.Inf(1)

// Epsilon is the tolerance used throughout the core for near-parallel edge
// folding, almost-zero vector checks and plane/axis alignment tests.
const Epsilon = 1e-6

func DegToRad(degrees float64) float64 { return degrees * degreeToRadiansFactor }
func RadToDeg(radians float64) float64 { return radians * radianToDegreesFactor }

// Clamp clamps x to the closed interval [a, b].
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

func Abs(v float64) float64     { return math.Abs(v) }
func Acos(v float64) float64    { return math.Acos(v) }
func Asin(v float64) float64    { return math.Asin(v) }
func Atan(v float64) float64    { return math.Atan(v) }
func Atan2(y, x float64) float64 { return math.Atan2(y, x) }
func Ceil(v float64) float64    { return math.Ceil(v) }
func Cos(v float64) float64     { return math.Cos(v) }
func Floor(v float64) float64   { return math.Floor(v) }
func Sin(v float64) float64     { return math.Sin(v) }
func Sqrt(v float64) float64    { return math.Sqrt(v) }
func Max64(a, b float64) float64 { return math.Max(a, b) }
func Min64(a, b float64) float64 { return math.Min(a, b) }
func Pow(a, b float64) float64  { return math.Pow(a, b) }
func IsNaN(v float64) bool      { return math.IsNaN(v) }
