// Package builder defines shared constants used by the instance generators.
package builder

// Method names used to prefix errors with the constructor name.
const (
	// MethodEuclidean is the canonical name for the Euclidean constructor.
	MethodEuclidean = "Euclidean"
	// MethodRandom is the canonical name for the Random constructor.
	MethodRandom = "Random"
	// MethodBuild is the canonical name for the Build dispatcher.
	MethodBuild = "Build"
	// MethodWeight is the canonical name for the NewWeightFn parser.
	MethodWeight = "NewWeightFn"
)

// MinNodes is the smallest instance any constructor emits.
const MinNodes = 1

// DefaultSide is the edge length of the square that Euclidean samples points from.
const DefaultSide = 1000.0

// Default bounds of the Random kind's uniform weight distribution.
const (
	DefaultMinWeight = 1.0
	DefaultMaxWeight = 100.0
)

// DefaultRoundDigits disables rounding of generated distances.
const DefaultRoundDigits = -1

// MaxRoundDigits bounds WithRoundDigits; float64 carries ~15 significant digits.
const MaxRoundDigits = 15
