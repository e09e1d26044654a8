package imperat

import (
	"strings"

	"github.com/VelixDevelopments/Imperat-sub001/types"
)

// FlagDescriptor identifies a flag by name and aliases. A nil input type makes it a switch.
type FlagDescriptor struct {
	name      string
	aliases   []string
	inputType *types.Type
}

func (f *FlagDescriptor) Name() string {
	return f.name
}

func (f *FlagDescriptor) Aliases() []string {
	return f.aliases
}

// InputType returns the value type of a value flag, nil for switches
func (f *FlagDescriptor) InputType() *types.Type {
	return f.inputType
}

// IsSwitch reports whether the flag takes no value
func (f *FlagDescriptor) IsSwitch() bool {
	return f.inputType == nil
}

// Names returns the name followed by the aliases
func (f *FlagDescriptor) Names() []string {
	return append([]string{f.name}, f.aliases...)
}

// Matches reports whether name is the flag's name or one of its aliases
func (f *FlagDescriptor) Matches(name string, caseSensitive bool) bool {
	for _, n := range f.Names() {
		if n == name || (!caseSensitive && strings.EqualFold(n, name)) {
			return true
		}
	}

	return false
}
