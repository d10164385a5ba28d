package xraw

import (
	"math"
	"strconv"
)

const digits = "0123456789abcdef"
const upperDigits = "0123456789ABCDEF"
const minInt64Str = "-9223372036854775808"

// lineBuffer appends into a fixed-capacity byte slice and silently drops
// whatever does not fit. The backing array is stack-local to each emit
// call and is never reallocated; all write methods are allocation-free.
type lineBuffer struct {
	buf   []byte // len grows toward cap, cap is fixed
	trunc bool
}

func (lb *lineBuffer) writeByte(c byte) {
	if len(lb.buf) >= cap(lb.buf) {
		lb.trunc = true
		return
	}
	lb.buf = append(lb.buf, c)
}

func (lb *lineBuffer) writeString(s string) {
	free := cap(lb.buf) - len(lb.buf)
	if len(s) > free {
		s = s[:free]
		lb.trunc = true
	}
	lb.buf = append(lb.buf, s...)
}

func (lb *lineBuffer) writeBytes(p []byte) {
	free := cap(lb.buf) - len(lb.buf)
	if len(p) > free {
		p = p[:free]
		lb.trunc = true
	}
	lb.buf = append(lb.buf, p...)
}

func (lb *lineBuffer) writeInt64(v int64) {
	if v < 0 {
		if v == -1<<63 {
			lb.writeString(minInt64Str)
			return
		}
		lb.writeByte('-')
		v = -v
	}
	lb.writeUint64(uint64(v))
}

func (lb *lineBuffer) writeUint64(v uint64) {
	if v == 0 {
		lb.writeByte('0')
		return
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	lb.writeBytes(tmp[i:])
}

func (lb *lineBuffer) writeHex(v uint64, upper bool) {
	d := digits
	if upper {
		d = upperDigits
	}
	if v == 0 {
		lb.writeByte('0')
		return
	}
	var tmp [16]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = d[v&0xf]
		v >>= 4
	}
	lb.writeBytes(tmp[i:])
}

func (lb *lineBuffer) writeFloat64(f float64) {
	if math.IsNaN(f) {
		lb.writeString("NaN")
		return
	}
	if math.IsInf(f, 1) {
		lb.writeString("+Inf")
		return
	}
	if math.IsInf(f, -1) {
		lb.writeString("-Inf")
		return
	}
	var tmp [32]byte
	lb.writeBytes(strconv.AppendFloat(tmp[:0], f, 'g', -1, 64))
}

// writeQuoted writes s in double quotes with minimal escaping. Control
// bytes come out as \xNN; no Unicode interpretation happens here.
func (lb *lineBuffer) writeQuoted(s string) {
	lb.writeByte('"')
	for i := 0; i < len(s); i++ {
		lb.writeQuotedByte(s[i])
	}
	lb.writeByte('"')
}

// writeQuotedBytes is writeQuoted for a byte slice, avoiding the string
// conversion that would allocate.
func (lb *lineBuffer) writeQuotedBytes(p []byte) {
	lb.writeByte('"')
	for _, c := range p {
		lb.writeQuotedByte(c)
	}
	lb.writeByte('"')
}

func (lb *lineBuffer) writeQuotedByte(c byte) {
	switch {
	case c == '"' || c == '\\':
		lb.writeByte('\\')
		lb.writeByte(c)
	case c == '\n':
		lb.writeString(`\n`)
	case c == '\r':
		lb.writeString(`\r`)
	case c == '\t':
		lb.writeString(`\t`)
	case c < 0x20 || c == 0x7f:
		lb.writeString(`\x`)
		lb.writeByte(digits[c>>4])
		lb.writeByte(digits[c&0xf])
	default:
		lb.writeByte(c)
	}
}

// writePad2 writes v as exactly two decimal digits (timestamp fields).
func (lb *lineBuffer) writePad2(v int) {
	if v < 0 || v > 99 {
		v = 0
	}
	lb.writeByte(byte('0' + v/10))
	lb.writeByte(byte('0' + v%10))
}

// terminate guarantees the line ends in a newline, sacrificing the last
// payload byte when the buffer is already full.
func (lb *lineBuffer) terminate() {
	if len(lb.buf) == cap(lb.buf) {
		if n := len(lb.buf); n > 0 {
			lb.buf[n-1] = '\n'
		}
		return
	}
	lb.buf = append(lb.buf, '\n')
}
