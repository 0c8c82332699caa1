package alias

import "fmt"

// InvalidAliasError reports a malformed or inconsistent alias
// configuration. Table construction is all-or-nothing: any entry failing
// schema validation, an illegal merge, or a table-wide rule aborts the
// build with this error.
type InvalidAliasError struct {
	Reason string
}

func (e *InvalidAliasError) Error() string {
	return "invalid PCI alias definition: " + e.Reason
}

func invalidAliasf(format string, args ...any) error {
	return &InvalidAliasError{Reason: fmt.Sprintf(format, args...)}
}
