package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/handheld/hhvm"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case hhvm.Instruction:
		d := starlark.NewDict(3)
		d.SetKey(starlark.String("op"), starlark.String(v.Op.String()))
		d.SetKey(starlark.String("arg"), starlark.MakeInt64(int64(v.Arg)))
		d.SetKey(starlark.String("text"), starlark.String(v.String()))
		return d

	case hhvm.Result:
		d := starlark.NewDict(4)
		d.SetKey(starlark.String("outcome"), starlark.String(v.Outcome.String()))
		switch v.Outcome {
		case hhvm.OutcomeFault:
			d.SetKey(starlark.String("fault"), starlark.String(v.Fault.String()))
			d.SetKey(starlark.String("ip"), starlark.MakeInt(v.IP))
		default:
			d.SetKey(starlark.String("accumulator"), starlark.MakeInt64(v.Accumulator))
		}
		return d

	case bool:
		return starlark.Bool(v)
	case string:
		return starlark.String(v)
	case int:
		return starlark.MakeInt(v)
	case int64:
		return starlark.MakeInt64(v)

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(value.NumField())
		for i := range value.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				toStarlarkValue(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return starlark.None
		}
		return toStarlarkValue(value.Elem().Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
