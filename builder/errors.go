package builder

import "errors"

// ErrTooFewVertices indicates n is below the minimum of the requested topology.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates a WithX option received a meaningless value.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates a nil constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")
