package notelines

// noteNode คือโหนดแต่ละตัวใน skip list ของหนึ่งไลน์
// โหนดไม่ได้เก็บโน้ตโดยตรง แต่เก็บ handle ไปยัง arena ของโน้ต
// และเก็บลิงก์หนึ่งช่องต่อชั้น โดยช่อง 0 คือ "โหนดถัดไป" ตามลำดับจริง
type noteNode struct {
	note Handle[NoteBox]
	// links[0] is the authoritative next-in-order pointer. links[k] for
	// k > 0, when present, must reach a node that following links[0]
	// also reaches. A nil handle ends the chain at that level.
	links [Levels]Handle[noteNode]
}

// contains reports whether the node's note interval contains the beat.
func (n *noteNode) contains(st *store, beat float32) bool {
	return st.notes.Get(n.note).Contains(beat)
}
