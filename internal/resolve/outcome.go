// Package resolve runs single resolution attempts against the answer tiers
// and classifies what happened.
package resolve

import (
	"context"
	"errors"
)

// Classified causes carried in Outcome.Err. Match with errors.Is.
var (
	ErrAmbiguous = errors.New("ambiguous query")
	ErrNotFound  = errors.New("not found")
	ErrTransport = errors.New("transport failure")
	ErrParse     = errors.New("parse failure")
)

// Kind tags an Outcome.
type Kind int

const (
	KindSuccess Kind = iota + 1
	KindAmbiguous
	KindNotFound
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindAmbiguous:
		return "ambiguous"
	case KindNotFound:
		return "not_found"
	case KindFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Outcome is the result of one resolution attempt. Snippet is set only for
// KindSuccess. Link is set for successes and, on the fallback tier, also for
// failures. Err holds the cause of every non-success.
type Outcome struct {
	Kind    Kind
	Snippet string
	Link    string
	Err     error
}

func Success(snippet, link string) Outcome {
	return Outcome{Kind: KindSuccess, Snippet: snippet, Link: link}
}

func Ambiguous(cause error) Outcome { return Outcome{Kind: KindAmbiguous, Err: cause} }

func NotFound(cause error) Outcome { return Outcome{Kind: KindNotFound, Err: cause} }

func Failure(cause error) Outcome { return Outcome{Kind: KindFailure, Err: cause} }

// OK reports whether the attempt produced an answer.
func (o Outcome) OK() bool { return o.Kind == KindSuccess }

// Resolver performs one attempt for a normalized query.
type Resolver interface {
	Resolve(ctx context.Context, query string) Outcome
}
