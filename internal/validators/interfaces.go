// Package validators checks scan record payloads before they reach the
// store. Failures are reported as [ValidationError] values that carry the
// offending field and a client-facing message.
package validators

import "context"

// Validator checks a request payload. fields optionally narrows the check
// to the named payload fields; with no fields every rule applies.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
