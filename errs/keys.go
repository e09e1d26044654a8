// Package errs contains the error taxonomy of the dispatcher together with the
// translation keys used to render each error.
package errs

const (
	prefixKey = "imperat"
)

// Error prefixes
const (
	ErrorPrefixKey      = prefixKey + ".error"
	StructuralPrefixKey = ErrorPrefixKey + ".syntax"
	ParseErrorPathKey   = ErrorPrefixKey + ".parse"
	FlagPrefixKey       = ErrorPrefixKey + ".flag"
	ConfigPrefixKey     = ErrorPrefixKey + ".config"
	ExecPrefixKey       = ErrorPrefixKey + ".exec"
)

// Structural errors
const (
	ErrUnknownCommandKey           = StructuralPrefixKey + ".unknown_command"
	ErrUnknownSubCommandKey        = StructuralPrefixKey + ".unknown_sub_command"
	ErrMissingRequiredParameterKey = StructuralPrefixKey + ".missing_required_parameter"
	ErrMissingSubCommandKey        = StructuralPrefixKey + ".missing_sub_command"
	ErrTooManyArgumentsKey         = StructuralPrefixKey + ".too_many_arguments"
	ErrEmptyInputKey               = StructuralPrefixKey + ".empty_input"
	ErrTokenizeKey                 = StructuralPrefixKey + ".tokenize"
)

// Parse errors
const (
	ErrInvalidNumberKey      = ParseErrorPathKey + ".number"
	ErrNumberOutOfRangeKey   = ParseErrorPathKey + ".number_range"
	ErrInvalidEnumKey        = ParseErrorPathKey + ".enum"
	ErrInvalidUUIDKey        = ParseErrorPathKey + ".uuid"
	ErrInvalidBooleanKey     = ParseErrorPathKey + ".boolean"
	ErrInvalidTimeKey        = ParseErrorPathKey + ".time"
	ErrInvalidDurationKey    = ParseErrorPathKey + ".duration"
	ErrInvalidEntryFormatKey = ParseErrorPathKey + ".entry_format"
	ErrMissingSeparatorKey   = ParseErrorPathKey + ".entry_missing_separator"
	ErrWrongEntryArityKey    = ParseErrorPathKey + ".entry_wrong_arity"
	ErrInvalidValueKey       = ParseErrorPathKey + ".value"
)

// Flag errors
const (
	ErrShortHandFlagKey      = FlagPrefixKey + ".short_hand_mixed"
	ErrShortHandFlagTypesKey = FlagPrefixKey + ".short_hand_types"
	ErrUnknownFlagKey        = FlagPrefixKey + ".unknown"
	ErrFlagExpectsValueKey   = FlagPrefixKey + ".expects_value"
)

// Configuration errors
const (
	ErrUnknownTypeKey        = ConfigPrefixKey + ".unknown_type"
	ErrGreedyNotLastKey      = ConfigPrefixKey + ".greedy_not_last"
	ErrGreedyNotTextKey      = ConfigPrefixKey + ".greedy_not_text"
	ErrDuplicateParameterKey = ConfigPrefixKey + ".duplicate_parameter"
	ErrDuplicateCommandKey   = ConfigPrefixKey + ".duplicate_command"
	ErrEmptyCommandNameKey   = ConfigPrefixKey + ".empty_command_name"
	ErrNilCommandKey         = ConfigPrefixKey + ".nil_command"
	ErrNoExecutorKey         = ConfigPrefixKey + ".no_executor"
	ErrLoadSettingsKey       = ConfigPrefixKey + ".load_settings"
)

// Permission and execution errors
const (
	ErrPermissionDeniedKey = ErrorPrefixKey + ".permission_denied"
	ErrExecutionKey        = ExecPrefixKey + ".failed"
	ErrExecutionPanicKey   = ExecPrefixKey + ".panic"
	ErrAsyncCancelledKey   = ExecPrefixKey + ".async_cancelled"
	ErrCooldownActiveKey   = ExecPrefixKey + ".cooldown"
)
