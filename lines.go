package notelines

// NoteLines is the multi-line index: a fixed-size set of independent skip
// lists, one per horizontal line of the grid, all sharing one note arena,
// one node arena, and one level generator.
//
// NoteLines คือดัชนีแบบหลายไลน์ ประกอบด้วย skip list อิสระจำนวนคงที่
// หนึ่งตัวต่อหนึ่งไลน์ของกริด โดยทุกไลน์ใช้ arena และตัวสร้างเลขสุ่มร่วมกัน
type NoteLines struct {
	store *store
	lines []NoteSkipList
}

// NewNoteLines creates lineCount independent empty lines.
// NewNoteLines สร้างไลน์ว่างที่เป็นอิสระต่อกันตามจำนวน lineCount
func NewNoteLines(lineCount int, opts ...Option) *NoteLines {
	st := newStore(opts...)
	lines := make([]NoteSkipList, lineCount)
	for i := range lines {
		lines[i] = newNoteSkipList(st)
	}
	return &NoteLines{store: st, lines: lines}
}

// LineCount returns the number of lines in the index.
// LineCount คืนค่าจำนวนไลน์ทั้งหมดในดัชนี
func (nl *NoteLines) LineCount() int {
	return len(nl.lines)
}

// Line returns the skip list backing one line. The line index must be
// below LineCount; out-of-range indexes are a fatal caller error.
// Line คืนค่า skip list ของไลน์ที่ระบุ
// index ที่อยู่นอกขอบเขตถือเป็นบั๊กของผู้เรียกและจะ panic
func (nl *NoteLines) Line(lineIx int) *NoteSkipList {
	return &nl.lines[lineIx]
}

// Insert adds a note to the given line.
// Insert เพิ่มโน้ตเข้าไลน์ที่ระบุ
func (nl *NoteLines) Insert(lineIx int, note NoteBox) {
	nl.lines[lineIx].Insert(note)
}

// Remove deletes the note containing the beat from the given line, as
// NoteSkipList.Remove does.
// Remove ลบโน้ตที่ครอบคลุม beat ออกจากไลน์ที่ระบุ
func (nl *NoteLines) Remove(lineIx int, beat float32) (NoteBox, bool) {
	return nl.lines[lineIx].Remove(beat)
}

// Gap is the free interval around a queried beat. Start is the end of the
// nearest note before the beat, or 0 when nothing precedes it. End is the
// start of the nearest note at or after the beat and is only meaningful
// when Bounded is true; an unbounded gap extends to the end of the line.
//
// Gap คือช่วงว่างรอบตำแหน่ง beat ที่สอบถาม
// Start คือจุดจบของโน้ตที่อยู่ก่อนหน้า (หรือ 0 หากไม่มี)
// End คือจุดเริ่มของโน้ตถัดไป และมีความหมายเฉพาะเมื่อ Bounded เป็น true
type Gap struct {
	Start   float32
	End     float32
	Bounded bool
}

// GetBounds returns the free gap surrounding the beat on the given line.
// It reports false when the beat falls inside an existing note, meaning
// there is no free gap at that position.
//
// GetBounds คืนค่าช่วงว่างรอบ beat บนไลน์ที่ระบุ
// คืนค่า false เมื่อ beat ตกอยู่ภายในโน้ตที่มีอยู่แล้ว
// ซึ่งหมายความว่าไม่มีช่วงว่าง ณ ตำแหน่งนั้น
func (nl *NoteLines) GetBounds(lineIx int, beat float32) (Gap, bool) {
	line := &nl.lines[lineIx]
	st := nl.store

	// An empty line is one big unbounded gap.
	if line.head.IsNil() {
		return Gap{}, true
	}

	head := st.nodes.Get(line.head)
	if head.contains(st, beat) {
		return Gap{}, false
	}
	if headStart := st.notes.Get(head.note).Start; headStart > beat {
		// Everything sits after the beat; no search needed.
		return Gap{End: headStart, Bounded: true}, true
	}

	var preceding [Levels]Handle[noteNode]
	for i := range preceding {
		preceding[i] = line.head
	}
	line.search(beat, &preceding)

	pred := st.nodes.Get(preceding[0])
	predEnd := st.notes.Get(pred.note).End
	following := pred.links[0]
	if following.IsNil() {
		return Gap{Start: predEnd}, true
	}
	followingNode := st.nodes.Get(following)
	if followingNode.contains(st, beat) {
		return Gap{}, false
	}
	return Gap{Start: predEnd, End: st.notes.Get(followingNode.note).Start, Bounded: true}, true
}
