package feature

// Metric identifies the distance a descriptor is meant to be compared
// under. Descriptors declare their metric at construction; Distance
// rejects any other.
type Metric string

const (
	// L2 is Euclidean distance on float vectors.
	L2 Metric = "l2"
	// Cosine is cosine distance (1 - cosine similarity) on float vectors.
	// Descriptors are never normalized implicitly; a zero-norm vector has
	// no direction and its cosine distance is NaN.
	Cosine Metric = "cosine"
	// Hamming is bit-count distance, carried only by BinaryDescriptor.
	Hamming Metric = "hamming"
)

// String returns the string representation of Metric.
func (m Metric) String() string { return string(m) }
