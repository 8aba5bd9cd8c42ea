package feature

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/banshee-data/sightline/img"
	"github.com/banshee-data/sightline/semerr"
)

// Described is the descriptor surface Set needs: dimensionality and the
// declared metric. Both Descriptor and BinaryDescriptor implement it.
type Described interface {
	Dim() int
	Metric() Metric
}

var (
	_ Described = Descriptor{}
	_ Described = BinaryDescriptor{}
)

// Set is one extraction result: the keypoints found in a single image and
// their descriptors, in matching order. Construction checks that the
// slices are parallel, that every keypoint was detected in the set's
// domain, and that every descriptor agrees on metric and dimensionality,
// so a matcher can trust any Set it receives. Each set carries a fresh
// provenance ID.
type Set[D Described] struct {
	id     uuid.UUID
	domain img.Domain
	kps    []Keypoint
	descs  []D
	metric Metric
	dim    int
}

// NewSet validates and assembles an extraction result, adopting both
// slices. An empty set (a detector that found nothing) is valid.
func NewSet[D Described](domain img.Domain, kps []Keypoint, descs []D) (Set[D], error) {
	if len(kps) != len(descs) {
		return Set[D]{}, &semerr.SizeError{Len: len(descs), Want: len(kps)}
	}
	for _, k := range kps {
		if !k.Domain().Equal(domain) {
			return Set[D]{}, &semerr.DomainError{A: k.Domain().String(), B: domain.String()}
		}
	}
	s := Set[D]{id: uuid.New(), domain: domain, kps: kps, descs: descs}
	if len(descs) > 0 {
		s.metric = descs[0].Metric()
		s.dim = descs[0].Dim()
		for _, d := range descs[1:] {
			if d.Metric() != s.metric {
				return Set[D]{}, &semerr.MetricError{Requested: string(d.Metric()), Declared: string(s.metric)}
			}
			if d.Dim() != s.dim {
				return Set[D]{}, &semerr.DimensionError{Got: d.Dim(), Want: s.dim}
			}
		}
	}
	return s, nil
}

// ID returns the set's provenance ID.
func (s Set[D]) ID() uuid.UUID { return s.id }

// Domain returns the image domain the set was extracted from.
func (s Set[D]) Domain() img.Domain { return s.domain }

// Len returns the number of keypoints.
func (s Set[D]) Len() int { return len(s.kps) }

// Metric returns the metric every descriptor declares, empty for an empty
// set.
func (s Set[D]) Metric() Metric { return s.metric }

// Dim returns the dimensionality shared by every descriptor, 0 for an
// empty set.
func (s Set[D]) Dim() int { return s.dim }

// Keypoints returns the keypoints in extraction order. The slice aliases
// the set's storage and must be treated as read-only.
func (s Set[D]) Keypoints() []Keypoint { return s.kps }

// Descriptors returns the descriptors parallel to Keypoints. The slice
// aliases the set's storage and must be treated as read-only.
func (s Set[D]) Descriptors() []D { return s.descs }

// Compatible reports whether two sets can be matched against each other:
// same image domain (DomainError), same metric (MetricError), same
// dimensionality (DimensionError). When either set is empty the descriptor
// checks are vacuous and only the domains must agree.
func (s Set[D]) Compatible(o Set[D]) error {
	if !s.domain.Equal(o.domain) {
		return &semerr.DomainError{A: s.domain.String(), B: o.domain.String()}
	}
	if s.Len() == 0 || o.Len() == 0 {
		return nil
	}
	if s.metric != o.metric {
		return &semerr.MetricError{Requested: string(o.metric), Declared: string(s.metric)}
	}
	if s.dim != o.dim {
		return &semerr.DimensionError{Got: o.dim, Want: s.dim}
	}
	return nil
}

// String returns the set's ID, size and domain.
func (s Set[D]) String() string {
	return fmt.Sprintf("feature set %s: %d keypoints in %s", s.id, len(s.kps), s.domain)
}
