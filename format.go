package xraw

import (
	"reflect"
	"unicode/utf8"
	"unsafe"
)

// Minimal printf-style formatting for the raw path. fmt is off limits
// here: it allocates, and it would grow past the fixed line buffer. The
// subset low-level call sites actually use is implemented directly:
//
//	%v %s %q %d %u %x %X %f %g %t %c %p %%
//
// No width or precision flags. Unknown verbs are echoed as %!<verb>,
// missing arguments print %!(MISSING), surplus arguments are ignored.
func (lb *lineBuffer) formatf(format string, args []any) {
	ai := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			lb.writeByte(c)
			continue
		}
		i++
		if i >= len(format) {
			lb.writeString("%!")
			return
		}
		verb := format[i]
		if verb == '%' {
			lb.writeByte('%')
			continue
		}
		if ai >= len(args) {
			lb.writeString("%!(MISSING)")
			continue
		}
		lb.writeVerb(verb, args[ai])
		ai++
	}
}

func (lb *lineBuffer) writeVerb(verb byte, v any) {
	switch verb {
	case 'v', 's':
		lb.writeValue(v)
	case 'q':
		switch s := v.(type) {
		case string:
			lb.writeQuoted(s)
		case []byte:
			lb.writeQuotedBytes(s)
		default:
			lb.writeByte('"')
			lb.writeValue(v)
			lb.writeByte('"')
		}
	case 'd', 'u':
		lb.writeIntVerb(v)
	case 'x', 'X':
		lb.writeHexVerb(v, verb == 'X')
	case 'f', 'g':
		switch f := v.(type) {
		case float64:
			lb.writeFloat64(f)
		case float32:
			lb.writeFloat64(float64(f))
		default:
			lb.writeValue(v)
		}
	case 't':
		if b, ok := v.(bool); ok {
			lb.writeBool(b)
		} else {
			lb.writeValue(v)
		}
	case 'c':
		lb.writeRune(v)
	case 'p':
		lb.writePointer(v)
	default:
		lb.writeString("%!")
		lb.writeByte(verb)
	}
}

func (lb *lineBuffer) writeBool(b bool) {
	if b {
		lb.writeString("true")
	} else {
		lb.writeString("false")
	}
}

func (lb *lineBuffer) writeIntVerb(v any) {
	switch n := v.(type) {
	case int:
		lb.writeInt64(int64(n))
	case int8:
		lb.writeInt64(int64(n))
	case int16:
		lb.writeInt64(int64(n))
	case int32:
		lb.writeInt64(int64(n))
	case int64:
		lb.writeInt64(n)
	case uint:
		lb.writeUint64(uint64(n))
	case uint8:
		lb.writeUint64(uint64(n))
	case uint16:
		lb.writeUint64(uint64(n))
	case uint32:
		lb.writeUint64(uint64(n))
	case uint64:
		lb.writeUint64(n)
	case uintptr:
		lb.writeUint64(uint64(n))
	default:
		lb.writeValue(v)
	}
}

func (lb *lineBuffer) writeHexVerb(v any, upper bool) {
	d := digits
	if upper {
		d = upperDigits
	}
	switch n := v.(type) {
	case int:
		lb.writeHex(uint64(n), upper)
	case int32:
		lb.writeHex(uint64(n), upper)
	case int64:
		lb.writeHex(uint64(n), upper)
	case uint:
		lb.writeHex(uint64(n), upper)
	case uint8:
		lb.writeHex(uint64(n), upper)
	case uint16:
		lb.writeHex(uint64(n), upper)
	case uint32:
		lb.writeHex(uint64(n), upper)
	case uint64:
		lb.writeHex(n, upper)
	case uintptr:
		lb.writeHex(uint64(n), upper)
	case string:
		for i := 0; i < len(n); i++ {
			lb.writeByte(d[n[i]>>4])
			lb.writeByte(d[n[i]&0xf])
		}
	case []byte:
		for _, c := range n {
			lb.writeByte(d[c>>4])
			lb.writeByte(d[c&0xf])
		}
	default:
		lb.writeValue(v)
	}
}

// writePointer renders %p as "0x" plus the address in lowercase hex.
// uintptr and unsafe.Pointer stay reflection-free; other reference kinds
// go through reflect.Value.Pointer, which does not allocate.
func (lb *lineBuffer) writePointer(v any) {
	var p uintptr
	switch pv := v.(type) {
	case uintptr:
		p = pv
	case unsafe.Pointer:
		p = uintptr(pv)
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Map, reflect.Func, reflect.Slice:
			p = rv.Pointer()
		default:
			lb.writeString("%!p")
			return
		}
	}
	lb.writeString("0x")
	lb.writeHex(uint64(p), false)
}

func (lb *lineBuffer) writeRune(v any) {
	var r rune
	switch c := v.(type) {
	case rune:
		r = c
	case int:
		r = rune(c)
	case byte:
		r = rune(c)
	default:
		lb.writeValue(v)
		return
	}
	if r < utf8.RuneSelf {
		lb.writeByte(byte(r))
		return
	}
	var tmp [4]byte
	lb.writeBytes(utf8.AppendRune(tmp[:0], r))
}

// writeValue renders an argument by dynamic type, the same set of cases
// the structured side special-cases before falling back to reflection.
// There is no reflection fallback here: calling Error/String on an
// argument is as far as the raw path goes, and whether those allocate is
// the argument's business.
func (lb *lineBuffer) writeValue(v any) {
	switch vv := v.(type) {
	case nil:
		lb.writeString("<nil>")
	case string:
		lb.writeString(vv)
	case []byte:
		lb.writeBytes(vv)
	case bool:
		lb.writeBool(vv)
	case int:
		lb.writeInt64(int64(vv))
	case int8:
		lb.writeInt64(int64(vv))
	case int16:
		lb.writeInt64(int64(vv))
	case int32:
		lb.writeInt64(int64(vv))
	case int64:
		lb.writeInt64(vv)
	case uint:
		lb.writeUint64(uint64(vv))
	case uint8:
		lb.writeUint64(uint64(vv))
	case uint16:
		lb.writeUint64(uint64(vv))
	case uint32:
		lb.writeUint64(uint64(vv))
	case uint64:
		lb.writeUint64(vv)
	case uintptr:
		lb.writeUint64(uint64(vv))
	case float32:
		lb.writeFloat64(float64(vv))
	case float64:
		lb.writeFloat64(vv)
	case Severity:
		lb.writeString(vv.String())
	case error:
		lb.writeString(vv.Error())
	case interface{ String() string }:
		lb.writeString(vv.String())
	default:
		lb.writeString("(UNKNOWN TYPE)")
	}
}
