package imperat

import (
	"github.com/VelixDevelopments/Imperat-sub001/errs"
)

// WithDefault sets a constant raw default, resolved through the parameter's type
func WithDefault(raw string) ConfigureParameterFunc {
	return func(param *Parameter, err *error) {
		param.defaultFunc = func(Source) (string, bool) {
			return raw, true
		}
	}
}

// WithDefaultFunc sets a default computed per source
func WithDefaultFunc(fn DefaultValueFunc) ConfigureParameterFunc {
	return func(param *Parameter, err *error) {
		param.defaultFunc = fn
	}
}

// WithSuggestions sets a fixed list of completion candidates
func WithSuggestions(values ...string) ConfigureParameterFunc {
	return func(param *Parameter, err *error) {
		param.suggestFunc = func(Source) []string {
			return values
		}
	}
}

// WithSuggestionFunc sets a completion provider computed per source
func WithSuggestionFunc(fn SuggestionFunc) ConfigureParameterFunc {
	return func(param *Parameter, err *error) {
		param.suggestFunc = fn
	}
}

// WithParamDescription the description will be used in usage output presented to the user
func WithParamDescription(description string) ConfigureParameterFunc {
	return func(param *Parameter, err *error) {
		param.description = description
	}
}

// WithParamPermission requires permission to supply the parameter explicitly. Its suggestions
// are hidden from sources lacking it.
func WithParamPermission(permission string) ConfigureParameterFunc {
	return func(param *Parameter, err *error) {
		param.permission = permission
	}
}

// WithAliases adds alternative names to a flag. Single character aliases can be grouped
// behind one marker, e.g. -sf.
func WithAliases(aliases ...string) ConfigureParameterFunc {
	return func(param *Parameter, err *error) {
		if param.flag == nil {
			*err = errs.ErrUnknownFlag.WithArgs(param.name)
			return
		}
		param.flag.aliases = append(param.flag.aliases, aliases...)
	}
}

// AsGreedy makes a text parameter absorb every remaining token
func AsGreedy() ConfigureParameterFunc {
	return func(param *Parameter, err *error) {
		param.greedy = true
	}
}

// AsOptional allows the parameter to be omitted
func AsOptional() ConfigureParameterFunc {
	return func(param *Parameter, err *error) {
		param.optional = true
	}
}
