package i18n

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	Format(provider MessageProvider) string
}

// MessageProvider renders the message registered for key with args
type MessageProvider interface {
	Sprintf(key string, args ...interface{}) string
}

// LanguageProvider implements MessageProvider for one language of a bundle
type LanguageProvider struct {
	bundle *Bundle
	lang   language.Tag
}

// NewLanguageProvider returns a provider serving messages in lang, falling back to the
// bundle's default language.
func NewLanguageProvider(bundle *Bundle, lang language.Tag) *LanguageProvider {
	return &LanguageProvider{bundle: bundle, lang: lang}
}

func (p *LanguageProvider) Sprintf(key string, args ...interface{}) string {
	if p.bundle == nil {
		if len(args) == 0 {
			return key
		}
		return fmt.Sprintf(key, args...)
	}

	return p.bundle.TL(p.lang, key, args...)
}

// TrError represents a translatable error with optional formatting arguments
// and error wrapping support. It implements both the TranslatableError interface
// and the standard error interface.
//
// Example usage:
//
//	err := NewError("imperat.error.parse.number")
//	err = err.WithArgs("abc", "int")
//	err = err.Wrap(originalError)
type TrError struct {
	// The sentinel error value for comparison with errors.Is
	sentinel error
	// The translation key
	key string
	// Optional format arguments
	args []interface{}
	// Optional wrapped error
	wrapped error
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
	}
}

// Error returns the default message, formatted with args if provided
func (e *TrError) Error() string {
	return e.Format(getDefaultProvider())
}

// Format renders the error using the messages of provider
func (e *TrError) Format(provider MessageProvider) string {
	msg := provider.Sprintf(e.key, e.args...)

	if e.wrapped != nil {
		var tr TranslatableError
		if errors.As(e.wrapped, &tr) {
			return fmt.Sprintf("%s: %s", msg, tr.Format(provider))
		}
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     args,
		wrapped:  e.wrapped,
	}
}

// Wrap returns a new error that wraps another error
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     e.args,
		wrapped:  err,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel || target == e
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

// Package-level provider management
var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider allows users to set their own provider
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	if defaultProvider != nil {
		defer defaultProviderMux.RUnlock()
		return defaultProvider
	}
	defaultProviderMux.RUnlock()

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = NewLanguageProvider(Default(), language.English)
	}
	return defaultProvider
}
