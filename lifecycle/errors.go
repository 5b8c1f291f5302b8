package lifecycle

import "fmt"

// ValidationError reports a malformed or out-of-range input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AuthenticationError reports a write operation attempted without a
// usable caller identity.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return e.Reason
}

// AuthorizationError reports a caller whose derived pseudonym does not
// own the resource for an owner-only operation. It carries no detail
// about the resource on purpose.
type AuthorizationError struct{}

func (e *AuthorizationError) Error() string {
	return "operation not allowed for this account"
}

// NotFoundError reports a missing resource. Requests past their TTL are
// reported the same way even when the physical record still exists.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// BusinessRuleError reports a well-formed call that asks for an illegal
// transition, e.g. responding to a non-open request.
type BusinessRuleError struct {
	Reason string
}

func (e *BusinessRuleError) Error() string {
	return e.Reason
}

// ConflictError reports a lost race on an atomic conditional write. The
// correct follow-up is to re-read the resource, never to retry the
// mutation.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}
