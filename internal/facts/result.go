package facts

// Kind classifies the outcome of a fetch.
type Kind int

const (
	KindOK Kind = iota

	// KindUnavailable covers transport failures: DNS, refused connections,
	// timeouts, truncated bodies.
	KindUnavailable

	// KindBadStatus is a non-2xx HTTP response.
	KindBadStatus

	// KindMalformed is a 2xx response whose body could not be used.
	KindMalformed

	// KindCrashed is a fetcher that panicked inside the aggregator.
	KindCrashed
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindUnavailable:
		return "unavailable"
	case KindBadStatus:
		return "bad_status"
	case KindMalformed:
		return "malformed"
	case KindCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one fetch.
//
// Text is always the user-facing string: the labeled fact on success, the
// provider's apology or labeled error otherwise. Err is nil only for KindOK.
type Result struct {
	Provider string
	Kind     Kind
	Text     string
	Err      error
}

// OK reports whether the fetch produced a fact.
func (r Result) OK() bool {
	return r.Kind == KindOK
}
