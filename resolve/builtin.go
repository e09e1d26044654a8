package resolve

import (
	"strings"
	"time"

	"github.com/VelixDevelopments/Imperat-sub001/errs"
	"github.com/VelixDevelopments/Imperat-sub001/internal/util"
	"github.com/VelixDevelopments/Imperat-sub001/parse"
	"github.com/VelixDevelopments/Imperat-sub001/types"
	"github.com/araddon/dateparse"
	"github.com/google/uuid"
)

type stringResolver struct{}

func (stringResolver) MatchesInput(string, Param) bool {
	return true
}

func (stringResolver) Resolve(_ *Context, in parse.Input, _ Param) (any, error) {
	return in.Current(), nil
}

type boolResolver struct{}

func parseBool(raw string) (bool, bool) {
	switch strings.ToLower(raw) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	}

	return false, false
}

func (boolResolver) MatchesInput(raw string, _ Param) bool {
	_, ok := parseBool(raw)
	return ok
}

func (boolResolver) Resolve(_ *Context, in parse.Input, _ Param) (any, error) {
	raw := in.Current()
	v, ok := parseBool(raw)
	if !ok {
		return nil, errs.ErrInvalidBoolean.WithArgs(raw)
	}

	return v, nil
}

func (boolResolver) Suggest(*Context, Param) []string {
	return []string{"true", "false"}
}

// numericResolver handles every numeric kind, range checked against the kind's bit size
type numericResolver struct {
	kind types.Kind
}

func (r numericResolver) fits(n util.Number) bool {
	bits := r.kind.BitSize()
	switch {
	case r.kind == types.KindFloat32 || r.kind == types.KindFloat64:
		return n.FitsFloat(bits)
	case r.kind.IsUnsigned():
		return n.FitsUint(bits)
	default:
		return n.FitsInt(bits)
	}
}

func (r numericResolver) MatchesInput(raw string, _ Param) bool {
	n, ok := util.ParseNumeric(raw)
	return ok && r.fits(n)
}

func (r numericResolver) Resolve(_ *Context, in parse.Input, _ Param) (any, error) {
	raw := in.Current()
	n, ok := util.ParseNumeric(raw)
	if !ok {
		return nil, errs.ErrInvalidNumber.WithArgs(raw, r.kind.String())
	}
	if !r.fits(n) {
		if r.kind.IsInteger() && n.IsFloat {
			return nil, errs.ErrInvalidNumber.WithArgs(raw, r.kind.String())
		}
		return nil, errs.ErrNumberOutOfRange.WithArgs(raw, r.kind.String())
	}

	return r.convert(n), nil
}

func (r numericResolver) convert(n util.Number) any {
	switch r.kind {
	case types.KindInt:
		return int(n.Int)
	case types.KindInt8:
		return int8(n.Int)
	case types.KindInt16:
		return int16(n.Int)
	case types.KindInt32:
		return int32(n.Int)
	case types.KindInt64:
		return n.Int
	case types.KindFloat32:
		return float32(n.AsFloat())
	case types.KindFloat64:
		return n.AsFloat()
	}

	u := n.Uint
	if n.IsInt {
		u = uint64(n.Int)
	}
	switch r.kind {
	case types.KindUint8:
		return uint8(u)
	case types.KindUint16:
		return uint16(u)
	case types.KindUint32:
		return uint32(u)
	case types.KindUint64:
		return u
	default:
		return uint(u)
	}
}

type uuidResolver struct{}

func (uuidResolver) MatchesInput(raw string, _ Param) bool {
	return uuid.Validate(raw) == nil
}

func (uuidResolver) Resolve(_ *Context, in parse.Input, _ Param) (any, error) {
	raw := in.Current()
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errs.ErrInvalidUUID.WithArgs(raw).Wrap(err)
	}

	return id, nil
}

type timeResolver struct{}

func (timeResolver) MatchesInput(raw string, _ Param) bool {
	_, err := dateparse.ParseAny(raw)
	return err == nil
}

func (timeResolver) Resolve(_ *Context, in parse.Input, _ Param) (any, error) {
	raw := in.Current()
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return nil, errs.ErrInvalidTime.WithArgs(raw)
	}

	return t, nil
}

type durationResolver struct{}

func (durationResolver) MatchesInput(raw string, _ Param) bool {
	_, err := time.ParseDuration(raw)
	return err == nil
}

func (durationResolver) Resolve(_ *Context, in parse.Input, _ Param) (any, error) {
	raw := in.Current()
	d, err := time.ParseDuration(raw)
	if err != nil {
		return nil, errs.ErrInvalidDuration.WithArgs(raw)
	}

	return d, nil
}

func (durationResolver) Suggest(*Context, Param) []string {
	return []string{"30s", "5m", "1h", "24h"}
}
