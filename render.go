package notelines

import "strings"

// The structural renderer draws the live link structure of one line as one
// row per level, highest level first, so a list like
//
//	|1, 2|------------------------->x
//	|1, 2|----------------->|4, 5|->x
//	|1, 2|----------------->|4, 5|->x
//	|1, 2|--------->|3, 4|->|4, 5|->x
//	|1, 2|->|2, 3|->|3, 4|->|4, 5|->x
//
// can be compared byte-for-byte in tests. A node that participates in a
// level prints its cell there; a node skipped over by a longer shortcut
// prints a dash run of the same width, and the run ends in '>' exactly
// where the shortcut's arrow head lands. Every row ends in 'x'.
//
// Rendering a node is not a pure function of the node: whether a dash run
// carries an arrow head depends on which earlier node's shortcut is flying
// over it. renderCursors carries that context - the next node expected at
// each level - across the walk. The renderer is purely diagnostic and
// never touches list state.

// renderCursors holds, per level, the handle of the next node expected to
// appear at that level. It is owned by the Render call and reset to the
// head before the walk starts.
// renderCursors เก็บ handle ของโหนดถัดไปที่คาดว่าจะปรากฏในแต่ละชั้น
// เป็นสถานะชั่วคราวที่ Render เป็นเจ้าของ และถูกรีเซ็ตเป็นโหนดหัวก่อนเริ่มไล่
type renderCursors [Levels]Handle[noteNode]

// Render produces the deterministic multi-row text form of the line's link
// structure.
// Render สร้างข้อความหลายแถวที่แสดงโครงสร้างลิงก์ของไลน์อย่างตายตัว
func (sl *NoteSkipList) Render() string {
	var cursors renderCursors
	for i := range cursors {
		cursors[i] = sl.head
	}

	var rows [Levels]strings.Builder
	for cur := sl.head; !cur.IsNil(); cur = sl.store.nodes.Get(cur).links[0] {
		block := sl.renderNode(cur, &cursors)
		for i := range block {
			rows[i].WriteString(block[i])
		}
	}

	var b strings.Builder
	for i := range rows {
		b.WriteString(rows[i].String())
		b.WriteByte('x')
		if i != Levels-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// renderNode returns one row fragment per level for a single node, highest
// level first, updating the cursors as the node is visited.
func (sl *NoteSkipList) renderNode(key Handle[noteNode], cursors *renderCursors) [Levels]string {
	st := sl.store
	n := st.nodes.Get(key)
	cell := st.notes.Get(n.note).String()
	next := n.links[0]

	var rows [Levels]string
	for level := Levels - 1; level >= 0; level-- {
		link := n.links[level]

		// Does this fragment end in an arrow head? Yes when the next
		// thing to the right at this level is the node's own successor:
		// either the node links straight to it, or the shortcut flying
		// over us comes down exactly on it. The last node always points
		// its arrows at the trailing 'x'.
		var hasNext bool
		switch {
		case next.IsNil():
			hasNext = true
		case !link.IsNil():
			hasNext = link == next
		default:
			hasNext = cursors[level] == next
		}

		row := Levels - 1 - level
		if cursors[level] == key {
			// The node participates in this level: print its cell
			// and expect its link target next.
			cursors[level] = link
			rows[row] = cell + "-" + marker(hasNext)
		} else {
			// Skipped over at this level: a dash run as wide as the
			// cell keeps the rows aligned.
			rows[row] = strings.Repeat("-", len(cell)+1) + marker(hasNext)
		}
	}
	return rows
}

func marker(hasNext bool) string {
	if hasNext {
		return ">"
	}
	return "-"
}
