package robust

import "sync"

// constants holds the machine epsilon (half-ulp relative error) and the
// splitter (2^ceil(p/2)+1) for one floating-point kind, derived once by the
// classical doubling loop.
type constants[F Float] struct {
	Epsilon  F
	Splitter F
}

// computeEpsilonSplitter derives epsilon and splitter by halving epsilon
// (and doubling splitter every other step) until 1+epsilon rounds back to
// 1, per spec.md L2. Pure and deterministic:
// safe to memoize once per process.
func computeEpsilonSplitter[F Float]() (epsilon, splitter F) {
	everyOther := true
	epsilon, splitter = 1, 1
	var check, lastCheck F = 1, 1
	for {
		lastCheck = check
		epsilon /= 2
		if everyOther {
			splitter *= 2
		}
		everyOther = !everyOther
		check = 1 + epsilon
		if check == 1 || check == lastCheck {
			break
		}
	}
	splitter++
	return epsilon, splitter
}

var f64Constants = sync.OnceValue(func() constants[float64] {
	e, s := computeEpsilonSplitter[float64]()
	return constants[float64]{Epsilon: e, Splitter: s}
})

var f32Constants = sync.OnceValue(func() constants[float32] {
	e, s := computeEpsilonSplitter[float32]()
	return constants[float32]{Epsilon: e, Splitter: s}
})

// epsilonSplitter returns the memoized epsilon/splitter pair for F,
// computing it (once, process-wide, concurrency-safe) on first use.
func epsilonSplitter[F Float]() (epsilon, splitter F) {
	var zero F
	switch any(zero).(type) {
	case float64:
		c := f64Constants()
		return F(c.Epsilon), F(c.Splitter)
	case float32:
		c := f32Constants()
		return F(c.Epsilon), F(c.Splitter)
	default:
		panic("robust: unsupported float kind")
	}
}

func fabs[F Float](v F) F {
	if v < 0 {
		return -v
	}
	return v
}

// DeterminantError bounds the error of the cheap (non-adaptive) orientation
// filter given the magnitude of its already-computed determinant.
func DeterminantError[F Float](det F) F {
	eps, _ := epsilonSplitter[F]()
	return (3 + 8*eps) * eps * fabs(det)
}

// SignedMeasureFirstError bounds stage 1 of the parallelogram predicate.
func SignedMeasureFirstError[F Float](upperBound F) F {
	eps, _ := epsilonSplitter[F]()
	return eps * (3 + 16*eps) * upperBound
}

// SignedMeasureSecondError bounds stage 2 of the parallelogram predicate.
func SignedMeasureSecondError[F Float](upperBound F) F {
	eps, _ := epsilonSplitter[F]()
	return eps * (2 + 12*eps) * upperBound
}

// SignedMeasureThirdError bounds stage 3 of the parallelogram predicate.
func SignedMeasureThirdError[F Float](upperBound F) F {
	eps, _ := epsilonSplitter[F]()
	return eps * eps * (9 + 64*eps) * upperBound
}

// CocircularFirstError bounds stage 1 of the in-circle predicate.
func CocircularFirstError[F Float](upperBound F) F {
	eps, _ := epsilonSplitter[F]()
	return (10 + 96*eps) * eps * upperBound
}

// CocircularSecondError bounds stage 2 of the in-circle predicate.
func CocircularSecondError[F Float](upperBound F) F {
	eps, _ := epsilonSplitter[F]()
	return eps * (4 + 48*eps) * upperBound
}

// CocircularThirdError bounds stage 3 of the in-circle predicate.
func CocircularThirdError[F Float](upperBound F) F {
	eps, _ := epsilonSplitter[F]()
	return eps * eps * (44 + 576*eps) * upperBound
}

// CircumcircleErrorA/B/C bound the three refinement stages of the
// circumcircle determinant form; they use the same coefficients as
// CocircularFirstError, CocircularSecondError and CocircularThirdError.
func CircumcircleErrorA[F Float](permanent F) F {
	eps, _ := epsilonSplitter[F]()
	return (10 + 96*eps) * eps * permanent
}

func CircumcircleErrorB[F Float](permanent F) F {
	eps, _ := epsilonSplitter[F]()
	return eps * (4 + 48*eps) * permanent
}

func CircumcircleErrorC[F Float](permanent F) F {
	eps, _ := epsilonSplitter[F]()
	return eps * eps * (44 + 576*eps) * permanent
}
