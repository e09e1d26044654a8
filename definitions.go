package imperat

import (
	"context"
)

// Source issues commands and receives replies
type Source interface {
	Name() string
	Reply(message string)
}

// ErrorReplier is implemented by sources that present error replies differently
type ErrorReplier interface {
	ReplyError(message string)
}

// ExecutorFunc callback - invoked with the resolved arguments once a usage is fully bound
type ExecutorFunc func(src Source, ctx *ResolvedContext) error

// PermissionChecker reports whether src holds permission. Empty permissions are never checked.
type PermissionChecker func(src Source, permission string) bool

// DefaultValueFunc supplies the raw default of an omitted optional parameter. The raw value is
// resolved through the parameter's type like any other token.
type DefaultValueFunc func(src Source) (string, bool)

// SuggestionFunc supplies completion candidates for a parameter
type SuggestionFunc func(src Source) []string

// ConfigureParameterFunc is used when defining Parameter options
type ConfigureParameterFunc func(param *Parameter, err *error)

// ConfigureUsageFunc is used when defining Usage options
type ConfigureUsageFunc func(usage *Usage, err *error)

// ConfigureCommandFunc is used when defining Command options
type ConfigureCommandFunc func(command *Command)

// ConfigureDispatcherFunc is used when defining Dispatcher options
type ConfigureDispatcherFunc func(d *Dispatcher, err *error)

// AttachmentMode controls where a sub-command's usages hang below its parent
type AttachmentMode int

const (
	// AttachEmpty places the sub-command literal directly after the parent's name:
	//	parent <sub> ...
	AttachEmpty AttachmentMode = iota
	// AttachMain places the sub-command literal after the parameters of the parent's main usage:
	//	parent <main params> <sub> ...
	AttachMain
)

// String returns the name of the attachment mode
func (m AttachmentMode) String() string {
	if m == AttachMain {
		return "main"
	}

	return "empty"
}

type contextKey struct{}

// WithSource stores src in ctx, executors calling into other code can retrieve it with SourceFrom
func WithSource(ctx context.Context, src Source) context.Context {
	return context.WithValue(ctx, contextKey{}, src)
}

// SourceFrom returns the Source stored by WithSource
func SourceFrom(ctx context.Context) (Source, bool) {
	src, ok := ctx.Value(contextKey{}).(Source)
	return src, ok
}
