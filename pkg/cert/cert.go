// Package cert defines the certificates emitted by the series-parallel
// recognizer and the authenticator that re-verifies each of them against
// the input graph, independently of how it was produced.
//
// The certificate set is closed and small, so each kind is a concrete
// type implementing Certificate rather than a subclass hierarchy: a
// positive SP decomposition, and five negative witnesses (K4 subdivision,
// K23 subdivision, T4 theta-four configuration, a cut vertex in three or
// more blocks, and a block containing three cut vertices).
//
// Authenticate returns nil when the certificate is genuine and an
// AUTH_REJECTED error describing the first inconsistency otherwise. A
// successful verification is memoized, so authentication is idempotent
// and a repeated call is free.
package cert

import (
	"github.com/MathioL132/GSP-SP-OP/pkg/errors"
	"github.com/MathioL132/GSP-SP-OP/pkg/graph"
)

// Certificate is one verifiable witness for the SP / non-SP verdict.
type Certificate interface {
	// Authenticate re-verifies the certificate against g. It returns nil
	// if the witness is genuinely present in (or, for the positive
	// certificate, reconstructs) the graph.
	Authenticate(g *graph.Graph) error

	// Kind returns a short stable identifier: "sp-decomposition", "k4",
	// "k23", "t4", "three-component-cut", or "three-cut-block".
	Kind() string

	// Describe returns a one-line human-readable description of the
	// witness for the stdout summary.
	Describe() string
}

// Result is the outcome of a recognition run: the verdict plus exactly
// one certificate justifying it.
type Result struct {
	IsSP   bool
	Reason Certificate
}

// Authenticate verifies the carried certificate against g. A result
// without a certificate is rejected with MISSING_CERTIFICATE.
func (r *Result) Authenticate(g *graph.Graph) error {
	if r.Reason == nil {
		return errors.New(errors.ErrCodeMissingCert, "no certificate generated")
	}
	return r.Reason.Authenticate(g)
}

// reject builds the uniform authentication-rejection error.
func reject(format string, args ...any) error {
	return errors.New(errors.ErrCodeAuthRejected, format, args...)
}
