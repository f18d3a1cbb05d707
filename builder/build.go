package builder

import (
	"slices"

	"github.com/katalvlaran/lvtour/matrix"
)

// Kind names an instance family.
type Kind string

const (
	// KindEuclidean selects Euclidean.
	KindEuclidean Kind = "euclidean"
	// KindRandom selects Random.
	KindRandom Kind = "random"
)

// Kinds lists every supported Kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindEuclidean, KindRandom}
}

// ParseKind validates s as a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !slices.Contains(Kinds(), k) {
		return "", builderErrorf(MethodBuild, ErrUnknownKind, "%q (want one of %v)", s, Kinds())
	}

	return k, nil
}

// Build generates an instance of the given kind.
func Build(kind Kind, n int, opts ...BuilderOption) (*matrix.Dense, error) {
	switch kind {
	case KindEuclidean:
		return Euclidean(n, opts...)
	case KindRandom:
		return Random(n, opts...)
	default:
		return nil, builderErrorf(MethodBuild, ErrUnknownKind, "%q", kind)
	}
}
