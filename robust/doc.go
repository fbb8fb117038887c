// Package robust implements Shewchuk-style adaptive exact geometric
// predicates on top of non-overlapping floating-point expansions.
//
// The package is organized bottom-up:
//
//	expansion.go    - two_sum/two_product/split and expansion merge/scale
//	bounds.go       - machine epsilon, splitter, per-predicate error bounds
//	scalar.go       - the generic Scalar[T] contract and the F64 instance
//	f32.go          - the F32 instance, backed by github.com/aurelien-rainone/math32
//	rational.go     - the Rat instance, backed by math/big
//	orientation.go  - the three-stage adaptive orientation predicate
//	incircle.go     - the three-stage adaptive in-circle predicate
//	circumcircle.go - the circumcircle determinant predicate
//	projection.go   - signed projection length
//
// Every predicate returns a value whose sign is exact; only its magnitude is
// a correctly-rounded approximation. A returned zero means "on the line" or
// "on the circle". Predicates are pure, reentrant and never return an error.
package robust
