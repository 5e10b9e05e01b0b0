package nbt

import (
	"fmt"
	"math"
	"sort"
)

// Field is one named entry of an ordered Compound.
type Field struct {
	Name  string
	Value any
}

// Compound is a compound whose entries are written in slice order.
// map[string]any is also accepted by WriteValue and is written in key order.
type Compound []Field

// WriteValue writes v as a named tag, choosing the tag type from the Go type:
//
//	bool, int8 -> Byte; int16 -> Short; int32 -> Int; int -> Int, or Long when
//	out of int32 range; int64 -> Long; float32 -> Float; float64 -> Double;
//	string -> String; []byte, []int32, []int64 -> arrays; []any -> List;
//	map[string]any, Compound -> Compound.
//
// List elements must all map to the same tag type.
func (w *Writer) WriteValue(name string, v any) {
	tag, err := tagOf(v)
	if err != nil {
		w.fail(fmt.Errorf("nbt: %s: %w", name, err))
		return
	}
	w.writeTagHeader(tag, name)
	w.writePayload(v)
}

func tagOf(v any) (byte, error) {
	switch val := v.(type) {
	case bool, int8, uint8:
		return TagByte, nil
	case int16:
		return TagShort, nil
	case int32:
		return TagInt, nil
	case int:
		if val < math.MinInt32 || val > math.MaxInt32 {
			return TagLong, nil
		}
		return TagInt, nil
	case int64:
		return TagLong, nil
	case float32:
		return TagFloat, nil
	case float64:
		return TagDouble, nil
	case string:
		return TagString, nil
	case []byte:
		return TagByteArray, nil
	case []int32:
		return TagIntArray, nil
	case []int64:
		return TagLongArray, nil
	case []any:
		if _, err := listElemTag(val); err != nil {
			return 0, err
		}
		return TagList, nil
	case map[string]any, Compound:
		return TagCompound, nil
	default:
		return 0, fmt.Errorf("unsupported value type %T", v)
	}
}

func listElemTag(list []any) (byte, error) {
	if len(list) == 0 {
		return TagEnd, nil
	}
	elem, err := tagOf(list[0])
	if err != nil {
		return 0, err
	}
	for i, e := range list[1:] {
		t, err := tagOf(e)
		if err != nil {
			return 0, err
		}
		if t != elem {
			return 0, fmt.Errorf("list element %d has tag %d, want %d", i+1, t, elem)
		}
	}
	return elem, nil
}

func (w *Writer) writePayload(v any) {
	switch val := v.(type) {
	case bool:
		if val {
			w.putByte(1)
		} else {
			w.putByte(0)
		}
	case int8:
		w.putByte(byte(val))
	case uint8:
		w.putByte(val)
	case int16:
		w.putUint16(uint16(val))
	case int32:
		w.putInt32(val)
	case int:
		if val < math.MinInt32 || val > math.MaxInt32 {
			w.putInt64(int64(val))
		} else {
			w.putInt32(int32(val))
		}
	case int64:
		w.putInt64(val)
	case float32:
		w.putInt32(int32(math.Float32bits(val)))
	case float64:
		w.putInt64(int64(math.Float64bits(val)))
	case string:
		w.putString(val)
	case []byte:
		w.putInt32(int32(len(val)))
		w.write(val)
	case []int32:
		w.putInt32(int32(len(val)))
		for _, e := range val {
			w.putInt32(e)
		}
	case []int64:
		w.putInt32(int32(len(val)))
		for _, e := range val {
			w.putInt64(e)
		}
	case []any:
		elem, err := listElemTag(val)
		if err != nil {
			w.fail(err)
			return
		}
		w.putByte(elem)
		w.putInt32(int32(len(val)))
		for _, e := range val {
			w.writePayload(e)
		}
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			w.WriteValue(k, val[k])
		}
		w.putByte(TagEnd)
	case Compound:
		for _, f := range val {
			w.WriteValue(f.Name, f.Value)
		}
		w.putByte(TagEnd)
	default:
		w.fail(fmt.Errorf("nbt: unsupported value type %T", v))
	}
}
