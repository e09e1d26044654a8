package errs

import (
	"github.com/VelixDevelopments/Imperat-sub001/i18n"
)

// Structural errors: the token stream does not satisfy the command's grammar
var (
	ErrUnknownCommand           = i18n.NewError(ErrUnknownCommandKey)
	ErrUnknownSubCommand        = i18n.NewError(ErrUnknownSubCommandKey)
	ErrMissingRequiredParameter = i18n.NewError(ErrMissingRequiredParameterKey)
	ErrMissingSubCommand        = i18n.NewError(ErrMissingSubCommandKey)
	ErrTooManyArguments         = i18n.NewError(ErrTooManyArgumentsKey)
	ErrEmptyInput               = i18n.NewError(ErrEmptyInputKey)
	ErrTokenize                 = i18n.NewError(ErrTokenizeKey)
)

// Parse errors: a single token failed type conversion
var (
	ErrInvalidNumber      = i18n.NewError(ErrInvalidNumberKey)
	ErrNumberOutOfRange   = i18n.NewError(ErrNumberOutOfRangeKey)
	ErrInvalidEnum        = i18n.NewError(ErrInvalidEnumKey)
	ErrInvalidUUID        = i18n.NewError(ErrInvalidUUIDKey)
	ErrInvalidBoolean     = i18n.NewError(ErrInvalidBooleanKey)
	ErrInvalidTime        = i18n.NewError(ErrInvalidTimeKey)
	ErrInvalidDuration    = i18n.NewError(ErrInvalidDurationKey)
	ErrInvalidEntryFormat = i18n.NewError(ErrInvalidEntryFormatKey)
	ErrMissingSeparator   = i18n.NewError(ErrMissingSeparatorKey)
	ErrWrongEntryArity    = i18n.NewError(ErrWrongEntryArityKey)
	ErrInvalidValue       = i18n.NewError(ErrInvalidValueKey)
)

// Flag errors
var (
	ErrShortHandFlag      = i18n.NewError(ErrShortHandFlagKey)
	ErrShortHandFlagTypes = i18n.NewError(ErrShortHandFlagTypesKey)
	ErrUnknownFlag        = i18n.NewError(ErrUnknownFlagKey)
	ErrFlagExpectsValue   = i18n.NewError(ErrFlagExpectsValueKey)
)

// Configuration errors: raised while registering commands or looking up resolvers
var (
	ErrUnknownType        = i18n.NewError(ErrUnknownTypeKey)
	ErrGreedyNotLast      = i18n.NewError(ErrGreedyNotLastKey)
	ErrGreedyNotText      = i18n.NewError(ErrGreedyNotTextKey)
	ErrDuplicateParameter = i18n.NewError(ErrDuplicateParameterKey)
	ErrDuplicateCommand   = i18n.NewError(ErrDuplicateCommandKey)
	ErrEmptyCommandName   = i18n.NewError(ErrEmptyCommandNameKey)
	ErrNilCommand         = i18n.NewError(ErrNilCommandKey)
	ErrNoExecutor         = i18n.NewError(ErrNoExecutorKey)
	ErrLoadSettings       = i18n.NewError(ErrLoadSettingsKey)
)

var (
	ErrPermissionDenied = i18n.NewError(ErrPermissionDeniedKey)
	ErrExecution        = i18n.NewError(ErrExecutionKey)
	ErrExecutionPanic   = i18n.NewError(ErrExecutionPanicKey)
	ErrAsyncCancelled   = i18n.NewError(ErrAsyncCancelledKey)
	ErrCooldownActive   = i18n.NewError(ErrCooldownActiveKey)
)
