package notelines

import (
	"cmp"
	"strconv"
)

// NoteBox is one note interval on the beat axis of a sequencer line.
// Start must not exceed End. Note boxes are ordered by (Start, End).
//
// NoteBox คือช่วงของโน้ตหนึ่งตัวบนแกนจังหวะ (beat) ของไลน์ในซีเควนเซอร์
// ค่า Start ต้องไม่มากกว่า End และเรียงลำดับตาม (Start, End)
type NoteBox struct {
	Start float32
	End   float32
}

// Contains reports whether the beat lies inside the interval, inclusive on
// both ends.
// Contains คืนค่า true หาก beat อยู่ภายในช่วงของโน้ต (รวมขอบทั้งสองด้าน)
func (n NoteBox) Contains(beat float32) bool {
	return n.Start <= beat && n.End >= beat
}

// Compare orders two note boxes by (Start, End). It returns a negative
// value, zero, or a positive value in the usual comparator convention.
// Compare เปรียบเทียบโน้ตสองตัวตามลำดับ (Start, End)
func (n NoteBox) Compare(other NoteBox) int {
	if c := cmp.Compare(n.Start, other.Start); c != 0 {
		return c
	}
	return cmp.Compare(n.End, other.End)
}

// String renders the interval as "|start, end|", the cell form used by the
// structural renderer.
func (n NoteBox) String() string {
	return "|" + formatBeat(n.Start) + ", " + formatBeat(n.End) + "|"
}

// formatBeat พิมพ์ค่า beat แบบสั้นที่สุด เช่น 1 แทน 1.0 และ 2.5 คงเป็น 2.5
func formatBeat(beat float32) string {
	return strconv.FormatFloat(float64(beat), 'g', -1, 32)
}
