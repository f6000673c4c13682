package jsonous

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// CycleSentinel replaces any value that refers back to one of its ancestors
// when rendering error text.
const CycleSentinel = "[Circular]"

// SafeStringify renders an arbitrary value as a JSON-shaped display string
// for error messages. Unlike a bare JSON marshal it never fails: cyclic
// references are replaced with CycleSentinel and unmarshalable values fall
// back to their fmt rendering. Cycle tracking is identity-based and local to
// a single call, so concurrent and repeated renders never interfere.
func SafeStringify(v any) string {
	var b strings.Builder
	writeValue(&b, reflect.ValueOf(v), map[uintptr]struct{}{})
	return b.String()
}

func writeValue(b *strings.Builder, rv reflect.Value, seen map[uintptr]struct{}) {
	if !rv.IsValid() {
		b.WriteString("null")
		return
	}
	switch rv.Kind() {
	case reflect.Interface:
		writeValue(b, rv.Elem(), seen)
	case reflect.Pointer:
		if rv.IsNil() {
			b.WriteString("null")
			return
		}
		ptr := rv.Pointer()
		if _, ok := seen[ptr]; ok {
			b.WriteString(strconv.Quote(CycleSentinel))
			return
		}
		seen[ptr] = struct{}{}
		writeValue(b, rv.Elem(), seen)
		delete(seen, ptr)
	case reflect.Map:
		if rv.IsNil() {
			b.WriteString("null")
			return
		}
		ptr := rv.Pointer()
		if _, ok := seen[ptr]; ok {
			b.WriteString(strconv.Quote(CycleSentinel))
			return
		}
		seen[ptr] = struct{}{}
		keys := make([]string, 0, rv.Len())
		byKey := make(map[string]reflect.Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := fmt.Sprint(iter.Key().Interface())
			keys = append(keys, k)
			byKey[k] = iter.Value()
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(k))
			b.WriteByte(':')
			writeValue(b, byKey[k], seen)
		}
		b.WriteByte('}')
		delete(seen, ptr)
	case reflect.Slice:
		if rv.IsNil() {
			b.WriteString("null")
			return
		}
		ptr := rv.Pointer()
		if _, ok := seen[ptr]; ok {
			b.WriteString(strconv.Quote(CycleSentinel))
			return
		}
		seen[ptr] = struct{}{}
		writeSeq(b, rv, seen)
		delete(seen, ptr)
	case reflect.Array:
		writeSeq(b, rv, seen)
	case reflect.String:
		b.WriteString(strconv.Quote(rv.String()))
	case reflect.Bool:
		b.WriteString(strconv.FormatBool(rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		b.WriteString(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		b.WriteString(strconv.FormatFloat(rv.Float(), 'g', -1, 64))
	case reflect.Struct:
		t := rv.Type()
		b.WriteByte('{')
		wrote := false
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			if wrote {
				b.WriteByte(',')
			}
			wrote = true
			b.WriteString(strconv.Quote(sf.Name))
			b.WriteByte(':')
			writeValue(b, rv.Field(i), seen)
		}
		b.WriteByte('}')
	default:
		b.WriteString(fmt.Sprintf("%v", rv))
	}
}

func writeSeq(b *strings.Builder, rv reflect.Value, seen map[uintptr]struct{}) {
	b.WriteByte('[')
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		writeValue(b, rv.Index(i), seen)
	}
	b.WriteByte(']')
}
