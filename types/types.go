// Package types describes the semantic value types a command parameter can
// declare. A Type is only a descriptor: conversion from raw tokens is done by the
// resolvers of the resolve package, looked up by the descriptor.
package types

import (
	"strings"
)

// Kind is the structural category of a Type
type Kind int

const (
	KindCustom Kind = iota
	KindString
	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindEnum
	KindUUID
	KindTime
	KindDuration
	KindArray
	KindCollection
	KindMap
	KindOptional
	KindAsync
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint:
		return "uint"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindEnum:
		return "enum"
	case KindUUID:
		return "uuid"
	case KindTime:
		return "time"
	case KindDuration:
		return "duration"
	case KindArray:
		return "array"
	case KindCollection:
		return "collection"
	case KindMap:
		return "map"
	case KindOptional:
		return "optional"
	case KindAsync:
		return "async"
	default:
		return "custom"
	}
}

// IsNumeric reports whether values of this kind are numbers
func (k Kind) IsNumeric() bool {
	return k >= KindInt && k <= KindFloat64
}

// IsInteger reports whether values of this kind are whole numbers
func (k Kind) IsInteger() bool {
	return k >= KindInt && k <= KindUint64
}

// IsUnsigned reports whether values of this kind cannot be negative
func (k Kind) IsUnsigned() bool {
	return k >= KindUint && k <= KindUint64
}

// BitSize returns the width of numeric kinds, 0 for platform sized or non numeric kinds
func (k Kind) BitSize() int {
	switch k {
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	default:
		return 0
	}
}

// IsComposite reports whether the kind wraps one or more inner types
func (k Kind) IsComposite() bool {
	return k >= KindArray && k <= KindAsync
}

// Type describes the value a parameter expects
type Type struct {
	kind Kind
	name string
	elem *Type
	key  *Type
	enum *enumSpec
}

// Kind returns the structural kind of t
func (t *Type) Kind() Kind {
	return t.kind
}

// Name returns the name resolvers are registered under
func (t *Type) Name() string {
	return t.name
}

// Elem returns the element type of composite types, the value type of maps
func (t *Type) Elem() *Type {
	return t.elem
}

// Key returns the key type of maps
func (t *Type) Key() *Type {
	return t.key
}

// Constants returns the declared constant names of an enum type
func (t *Type) Constants() []string {
	if t.enum == nil {
		return nil
	}

	return t.enum.names
}

// EnumValue returns the value bound to the enum constant name
func (t *Type) EnumValue(name string) (any, bool) {
	if t.enum == nil {
		return nil, false
	}
	v, ok := t.enum.values[name]

	return v, ok
}

// IsText reports whether t accepts free text
func (t *Type) IsText() bool {
	return t != nil && t.kind == KindString
}

// Equal reports structural equality of two descriptors
func (t *Type) Equal(other *Type) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	if t.kind != other.kind || t.name != other.name {
		return false
	}

	return t.elem.Equal(other.elem) && t.key.Equal(other.key)
}

// String renders the descriptor the way it is shown in usage hints
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.kind {
	case KindArray:
		return t.elem.String() + "[]"
	case KindCollection:
		return "collection<" + t.elem.String() + ">"
	case KindMap:
		return "map<" + t.key.String() + "," + t.elem.String() + ">"
	case KindOptional:
		return "optional<" + t.elem.String() + ">"
	case KindAsync:
		return "async<" + t.elem.String() + ">"
	}

	return t.name
}

func primitive(kind Kind) *Type {
	return &Type{kind: kind, name: kind.String()}
}

// Built-in descriptors
var (
	String   = primitive(KindString)
	Bool     = primitive(KindBool)
	Int      = primitive(KindInt)
	Int8     = primitive(KindInt8)
	Int16    = primitive(KindInt16)
	Int32    = primitive(KindInt32)
	Int64    = primitive(KindInt64)
	Uint     = primitive(KindUint)
	Uint8    = primitive(KindUint8)
	Uint16   = primitive(KindUint16)
	Uint32   = primitive(KindUint32)
	Uint64   = primitive(KindUint64)
	Float32  = primitive(KindFloat32)
	Float64  = primitive(KindFloat64)
	UUID     = primitive(KindUUID)
	Time     = primitive(KindTime)
	Duration = primitive(KindDuration)
)

// Custom declares a type resolved by a resolver registered under name
func Custom(name string) *Type {
	return &Type{kind: KindCustom, name: name}
}

// ArrayOf describes a single token holding a delimited list of elem values
func ArrayOf(elem *Type) *Type {
	return &Type{kind: KindArray, name: KindArray.String(), elem: elem}
}

// CollectionOf describes consecutive tokens each holding one elem value
func CollectionOf(elem *Type) *Type {
	return &Type{kind: KindCollection, name: KindCollection.String(), elem: elem}
}

// MapOf describes consecutive key=value tokens
func MapOf(key, value *Type) *Type {
	return &Type{kind: KindMap, name: KindMap.String(), key: key, elem: value}
}

// OptionalOf describes a value which resolves to an empty OptionalValue instead of failing
func OptionalOf(elem *Type) *Type {
	return &Type{kind: KindOptional, name: KindOptional.String(), elem: elem}
}

// AsyncOf describes a value resolved off the calling goroutine, delivered as a *Future
func AsyncOf(elem *Type) *Type {
	return &Type{kind: KindAsync, name: KindAsync.String(), elem: elem}
}

type enumSpec struct {
	names  []string
	values map[string]any
}

// Enum declares an enum type whose resolved values are the constant names themselves
func Enum(name string, constants ...string) *Type {
	spec := &enumSpec{values: make(map[string]any, len(constants))}
	for _, c := range constants {
		c = strings.ToUpper(c)
		spec.names = append(spec.names, c)
		spec.values[c] = c
	}

	return &Type{kind: KindEnum, name: name, enum: spec}
}

// EnumOf declares an enum type bound to Go values. Constants are kept in the order of names.
func EnumOf[T any](name string, names []string, values map[string]T) *Type {
	spec := &enumSpec{values: make(map[string]any, len(values))}
	for _, n := range names {
		v, ok := values[n]
		if !ok {
			continue
		}
		upper := strings.ToUpper(n)
		spec.names = append(spec.names, upper)
		spec.values[upper] = v
	}

	return &Type{kind: KindEnum, name: name, enum: spec}
}
