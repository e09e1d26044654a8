package errs

import (
	"errors"
)

// Kind groups errors by who is expected to act on them
type Kind int

const (
	KindNone Kind = iota
	// KindStructural the input does not satisfy the command grammar
	KindStructural
	// KindParse a single token failed type conversion
	KindParse
	// KindFlag flag specific grammar violations
	KindFlag
	// KindAmbiguity configuration errors such as a missing type resolver
	KindAmbiguity
	KindPermission
	// KindExecution failures raised by or around the executor itself
	KindExecution
)

func (k Kind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindParse:
		return "parse"
	case KindFlag:
		return "flag"
	case KindAmbiguity:
		return "ambiguity"
	case KindPermission:
		return "permission"
	case KindExecution:
		return "execution"
	default:
		return "none"
	}
}

var kinds = []struct {
	kind Kind
	errs []error
}{
	{KindStructural, []error{ErrUnknownCommand, ErrUnknownSubCommand, ErrMissingRequiredParameter,
		ErrMissingSubCommand, ErrTooManyArguments, ErrEmptyInput, ErrTokenize}},
	{KindParse, []error{ErrInvalidNumber, ErrNumberOutOfRange, ErrInvalidEnum, ErrInvalidUUID, ErrInvalidBoolean,
		ErrInvalidTime, ErrInvalidDuration, ErrInvalidEntryFormat, ErrMissingSeparator, ErrWrongEntryArity,
		ErrInvalidValue}},
	{KindFlag, []error{ErrShortHandFlag, ErrShortHandFlagTypes, ErrUnknownFlag, ErrFlagExpectsValue}},
	{KindAmbiguity, []error{ErrUnknownType, ErrGreedyNotLast, ErrGreedyNotText, ErrDuplicateParameter,
		ErrDuplicateCommand, ErrEmptyCommandName, ErrNilCommand, ErrNoExecutor, ErrLoadSettings}},
	{KindPermission, []error{ErrPermissionDenied}},
	{KindExecution, []error{ErrExecution, ErrExecutionPanic, ErrAsyncCancelled, ErrCooldownActive}},
}

// KindOf classifies err. Groups are checked in declaration order, so a parse error
// wrapped by a structural one is reported as structural. Unrecognised errors are
// treated as execution errors.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	for _, group := range kinds {
		for _, sentinel := range group.errs {
			if errors.Is(err, sentinel) {
				return group.kind
			}
		}
	}

	return KindExecution
}

// IsUserError reports whether err should be shown to the command source verbatim
func IsUserError(err error) bool {
	switch KindOf(err) {
	case KindStructural, KindParse, KindFlag, KindPermission:
		return true
	default:
		return errors.Is(err, ErrCooldownActive)
	}
}
