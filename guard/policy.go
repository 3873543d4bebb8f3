package guard

import "sort"

// Policy declares which HTTP errors raise and which are suppressed.
//
// A policy operates in one of two modes:
//
//   - Raise-all (default, zero value): every error raises except status
//     codes in the exception set. Transport errors always raise.
//   - Explicit: only status codes in the set raise; every other status
//     code AND all transport errors are suppressed.
//
// The asymmetry around transport errors is deliberate: an explicit raise
// list is exhaustive, so anything not on it — including network failures —
// is suppressed.
//
// Policies are immutable after construction and safe to share across
// concurrent guards.
type Policy struct {
	explicit bool
	codes    map[int]struct{}
}

// Default returns the raise-all policy with no exceptions. Nothing is
// suppressed; failures must be opted out explicitly.
func Default() Policy {
	return Policy{}
}

// RaiseAllExcept returns a raise-all policy that suppresses the given
// status codes. Use it when a known permanent-failure class (say, 404)
// is acceptable while everything else, transport failures included,
// must surface.
func RaiseAllExcept(codes ...int) Policy {
	return Policy{codes: codeSet(codes)}
}

// RaiseOnly returns an explicit policy: only the given status codes
// raise. All other status codes and all transport errors are suppressed.
func RaiseOnly(codes ...int) Policy {
	return Policy{explicit: true, codes: codeSet(codes)}
}

// RaisesAll reports whether the policy is in raise-all mode.
func (p Policy) RaisesAll() bool { return !p.explicit }

// Codes returns a sorted copy of the policy's status code set: the
// suppression exceptions in raise-all mode, the raise list in explicit
// mode.
func (p Policy) Codes() []int {
	out := make([]int, 0, len(p.codes))
	for c := range p.codes {
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}

// ShouldRaiseStatus reports whether a status error with the given code
// must propagate under this policy.
func (p Policy) ShouldRaiseStatus(code int) bool {
	_, listed := p.codes[code]
	if p.explicit {
		return listed
	}
	return !listed
}

// ShouldRaiseTransport reports whether a transport error must propagate
// under this policy. Raise-all mode always raises transport errors;
// explicit mode always suppresses them.
func (p Policy) ShouldRaiseTransport() bool {
	return !p.explicit
}

func codeSet(codes []int) map[int]struct{} {
	if len(codes) == 0 {
		return nil
	}
	set := make(map[int]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}
