// Package notelines implements an in-memory ordered-interval index for a
// sequencer grid. Each horizontal line of the grid owns an independent
// probabilistic skip list of non-overlapping note intervals, backed by two
// shared slab arenas, and answers "what note precedes/follows/contains this
// beat" queries in O(log n) expected time.
//
// The index is single-owner: no operation blocks, and nothing is
// synchronized internally. Concurrent mutation requires external locking.
//
// Package notelines คือดัชนีช่วงโน้ตแบบ in-memory สำหรับกริดของซีเควนเซอร์
// แต่ละไลน์ของกริดมี skip list ของตัวเองที่เก็บช่วงโน้ตที่ไม่ซ้อนทับกัน
// และตอบคำถามว่าโน้ตตัวใดอยู่ก่อน/หลัง/ครอบคลุมตำแหน่ง beat ที่กำหนด
// ภายในเวลาเฉลี่ย O(log n)
package notelines

// NoteSkipList is the ordered note index for a single line. It holds only
// an optional head handle; nodes and notes live in the shared arenas. The
// list does not verify that inserted intervals avoid overlapping existing
// ones - that is the caller's contract, and query results over overlapping
// data are unspecified.
//
// NoteSkipList คือดัชนีโน้ตแบบเรียงลำดับของหนึ่งไลน์
// ตัว list เก็บเพียง handle ของโหนดหัว ส่วนโหนดและโน้ตอยู่ใน arena ที่ใช้ร่วมกัน
// list จะไม่ตรวจสอบการซ้อนทับของช่วงโน้ต ซึ่งเป็นหน้าที่ของผู้เรียก
type NoteSkipList struct {
	store  *store
	head   Handle[noteNode]
	length int
}

func newNoteSkipList(st *store) NoteSkipList {
	return NoteSkipList{store: st}
}

// Len returns the number of notes in the line.
// Len คืนค่าจำนวนโน้ตในไลน์
func (sl *NoteSkipList) Len() int {
	return sl.length
}

// Head returns the first note in the line, if any.
// Head คืนค่าโน้ตตัวแรกในไลน์ (ถ้ามี)
func (sl *NoteSkipList) Head() (NoteBox, bool) {
	if sl.head.IsNil() {
		return NoteBox{}, false
	}
	return *sl.store.notes.Get(sl.store.nodes.Get(sl.head).note), true
}

// search walks top-down from the head and records, for every level, the
// handle of the last node whose interval still ends before target. The
// caller must pre-fill preceding with the head handle and must only call
// search when the head's interval ends at or before target; starting past
// the target is a caller bug and panics.
//
// A shortcut is taken only while the interval behind it ends strictly
// before target. Taking a shortcut advances every level at or below the
// current one to that node, then the descent restarts from the top level
// at the shortcut node, because the shortcut node may itself carry longer
// links than the level it was reached through.
//
// search ไล่จากชั้นบนสุดลงมาเพื่อบันทึกโหนดสุดท้ายที่ช่วงโน้ตยังจบก่อน target
// ในแต่ละชั้น ผู้เรียกต้องเติม preceding ด้วย handle ของโหนดหัวไว้ก่อน
func (sl *NoteSkipList) search(target float32, preceding *[Levels]Handle[noteNode]) {
	st := sl.store
	cur := sl.head
	if st.notes.Get(st.nodes.Get(cur).note).End > target {
		panic("notelines: search started from a node past the target beat")
	}

	level := Levels - 1
	for {
		n := st.nodes.Get(cur)
		if link := n.links[level]; !link.IsNil() {
			shortcut := st.nodes.Get(link)
			if st.notes.Get(shortcut.note).End < target {
				// Taking the shortcut also advances every lower
				// level to at least this node.
				for l := level; l >= 0; l-- {
					preceding[l] = link
				}
				cur = link
				level = Levels - 1
				continue
			}
			// cur is the largest node below target in this level.
			preceding[level] = cur
		}
		if level == 0 {
			return
		}
		level--
	}
}

// Insert adds a note to the line. It always inserts; overlap with existing
// notes is never checked.
//
// A new node is linked in at a randomly drawn level. Three cases:
// an empty line makes the node the head outright; a note sorting before
// the current head replaces it, inheriting the old head's links above the
// drawn level; anything else is spliced in after its per-level
// predecessors found by search.
//
// Insert เพิ่มโน้ตเข้าไลน์โดยไม่ตรวจสอบการซ้อนทับ
// มีสามกรณี: ไลน์ว่างให้โหนดใหม่เป็นหัวทันที, โน้ตที่เรียงก่อนหัวปัจจุบัน
// จะเข้าแทนที่หัวและรับช่วงลิงก์ระยะไกลของหัวเก่ามา,
// กรณีอื่นจะถูกแทรกต่อจากโหนดก่อนหน้าของแต่ละชั้นที่ search หาไว้
func (sl *NoteSkipList) Insert(note NoteBox) {
	st := sl.store
	noteKey := st.notes.Insert(note)
	nodeKey := st.nodes.Insert(noteNode{note: noteKey})
	sl.length++

	if sl.head.IsNil() {
		sl.head = nodeKey
		return
	}

	level := st.nextLevel()
	head := st.nodes.Get(sl.head)
	newNode := st.nodes.Get(nodeKey)

	if st.notes.Get(head.note).End > note.Start {
		// The new note sorts before the head, so it becomes the new
		// head. Levels up to the drawn one point at the old head;
		// levels above it steal the old head's longer shortcuts, which
		// the old head must then give up.
		for i := 0; i <= level; i++ {
			newNode.links[i] = sl.head
		}
		for i := level + 1; i < Levels; i++ {
			newNode.links[i] = head.links[i]
			head.links[i] = 0
		}
		sl.head = nodeKey
		return
	}

	var preceding [Levels]Handle[noteNode]
	for i := range preceding {
		preceding[i] = sl.head
	}
	sl.search(note.Start, &preceding)

	// Splice the new node in after its predecessor at every level up to
	// the drawn one. Levels above it stay untouched: the node simply does
	// not participate there and existing shortcuts keep skipping over it.
	for i := 0; i <= level; i++ {
		pred := st.nodes.Get(preceding[i])
		newNode.links[i] = pred.links[i]
		pred.links[i] = nodeKey
	}
}

// Remove deletes the note whose interval contains the beat, inclusive on
// both ends, and returns it. It reports false and removes nothing when no
// note contains the beat. If two adjacent notes share the exact boundary
// beat (which already violates the non-overlap contract), the earlier one
// is removed.
//
// Remove ลบโน้ตที่ช่วงครอบคลุม beat ที่กำหนด (รวมขอบทั้งสองด้าน) และคืนค่าโน้ตนั้น
// หากไม่มีโน้ตใดครอบคลุม beat จะคืนค่า false โดยไม่แก้ไขอะไร
func (sl *NoteSkipList) Remove(beat float32) (NoteBox, bool) {
	if sl.head.IsNil() {
		return NoteBox{}, false
	}
	st := sl.store
	head := st.nodes.Get(sl.head)
	headNote := *st.notes.Get(head.note)

	if headNote.Contains(beat) {
		// Mirror of head replacement on insert: the successor becomes
		// the new head and inherits every link the old head held above
		// the successor's own height.
		removed := sl.head
		noteKey := head.note
		next := head.links[0]
		if !next.IsNil() {
			nextNode := st.nodes.Get(next)
			for i := 1; i < Levels; i++ {
				if head.links[i] != next {
					nextNode.links[i] = head.links[i]
				}
			}
		}
		sl.head = next
		st.notes.Remove(noteKey)
		st.nodes.Remove(removed)
		sl.length--
		return headNote, true
	}

	if headNote.Start > beat {
		// The beat falls before every note in the line.
		return NoteBox{}, false
	}

	// The head ends before the beat here, so the search precondition holds.
	var preceding [Levels]Handle[noteNode]
	for i := range preceding {
		preceding[i] = sl.head
	}
	sl.search(beat, &preceding)

	victim := st.nodes.Get(preceding[0]).links[0]
	if victim.IsNil() {
		return NoteBox{}, false
	}
	victimNode := st.nodes.Get(victim)
	if !victimNode.contains(st, beat) {
		return NoteBox{}, false
	}
	note := *st.notes.Get(victimNode.note)

	// Relink every level that referenced the victim to its successor at
	// that level.
	for i := 0; i < Levels; i++ {
		pred := st.nodes.Get(preceding[i])
		if pred.links[i] == victim {
			pred.links[i] = victimNode.links[i]
		}
	}
	st.notes.Remove(victimNode.note)
	st.nodes.Remove(victim)
	sl.length--
	return note, true
}

// Range calls f for every note in the line in (Start, End) order, stopping
// early if f returns false.
// Range วนลูปโน้ตทุกตัวในไลน์ตามลำดับ และหยุดก่อนกำหนดหาก f คืนค่า false
func (sl *NoteSkipList) Range(f func(NoteBox) bool) {
	st := sl.store
	for cur := sl.head; !cur.IsNil(); {
		n := st.nodes.Get(cur)
		if !f(*st.notes.Get(n.note)) {
			return
		}
		cur = n.links[0]
	}
}
