package notelines

// Iterator walks the notes of one line in (Start, End) order. The typical
// use is:
//
//	it := line.NewIterator()
//	for it.Next() {
//		note := it.Note()
//		// ...
//	}
//
// An iterator is read-only and yields copies of the note records. It must
// not be used across mutations of the line it was created from.
//
// Iterator ใช้วนลูปโน้ตของหนึ่งไลน์ตามลำดับ (Start, End)
// Iterator เป็นแบบอ่านอย่างเดียวและคืนสำเนาของโน้ต
// ห้ามใช้ข้ามการแก้ไขไลน์ที่มันถูกสร้างขึ้นมา
type Iterator struct {
	store   *store
	start   Handle[noteNode]
	current Handle[noteNode]
	started bool
}

// NewIterator creates an iterator positioned before the first note of the
// line. A call to Next is required to advance to the first note.
// NewIterator สร้าง Iterator ที่ชี้ไปยังตำแหน่งก่อนโน้ตตัวแรกของไลน์
// ต้องเรียก Next ก่อนเพื่อเลื่อนไปยังโน้ตตัวแรก
func (sl *NoteSkipList) NewIterator() *Iterator {
	return &Iterator{
		store: sl.store,
		start: sl.head,
	}
}

// Next moves the iterator to the next note and reports whether one exists.
// Next เลื่อน Iterator ไปยังโน้ตถัดไป และคืนค่า true หากยังมีโน้ตเหลืออยู่
func (it *Iterator) Next() bool {
	if !it.started {
		it.started = true
		it.current = it.start
	} else if !it.current.IsNil() {
		it.current = it.store.nodes.Get(it.current).links[0]
	}
	return !it.current.IsNil()
}

// Note returns a copy of the note at the current position. It must only be
// called after Next has returned true.
// Note คืนสำเนาของโน้ต ณ ตำแหน่งปัจจุบัน
// ควรเรียกใช้หลังจากที่ Next คืนค่า true เท่านั้น
func (it *Iterator) Note() NoteBox {
	return *it.store.notes.Get(it.store.nodes.Get(it.current).note)
}

// Reset moves the iterator back before the first note, so the line can be
// walked again with the same iterator.
// Reset เลื่อน Iterator กลับไปก่อนโน้ตตัวแรก เพื่อวนลูปซ้ำได้อีกครั้ง
func (it *Iterator) Reset() {
	it.started = false
	it.current = 0
}
