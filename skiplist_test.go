package notelines

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectNotes drains a line into a slice via Range.
func collectNotes(sl *NoteSkipList) []NoteBox {
	var notes []NoteBox
	sl.Range(func(n NoteBox) bool {
		notes = append(notes, n)
		return true
	})
	return notes
}

// checkLevelConsistency verifies the structural invariant behind every
// shortcut: the level-0 chain is strictly increasing, and every higher-level
// link lands on a node that following the level-0 chain also reaches.
func checkLevelConsistency(t *testing.T, sl *NoteSkipList) {
	t.Helper()
	st := sl.store

	for cur := sl.head; !cur.IsNil(); cur = st.nodes.Get(cur).links[0] {
		n := st.nodes.Get(cur)
		if next := n.links[0]; !next.IsNil() {
			here := *st.notes.Get(n.note)
			there := *st.notes.Get(st.nodes.Get(next).note)
			require.Negative(t, here.Compare(there), "level-0 chain out of order: %v before %v", here, there)
		}
		for level := 1; level < Levels; level++ {
			link := n.links[level]
			if link.IsNil() {
				continue
			}
			reached := false
			for probe := n.links[0]; !probe.IsNil(); probe = st.nodes.Get(probe).links[0] {
				if probe == link {
					reached = true
					break
				}
			}
			require.True(t, reached, "level %d shortcut points at a node unreachable via level 0", level)
		}
	}
}

func TestInsertOrdering(t *testing.T) {
	nl := NewNoteLines(1, WithSeed(7))
	line := nl.Line(0)

	line.Insert(NoteBox{Start: 1, End: 2})
	line.Insert(NoteBox{Start: 5, End: 10})
	line.Insert(NoteBox{Start: 3, End: 4})

	want := []NoteBox{{Start: 1, End: 2}, {Start: 3, End: 4}, {Start: 5, End: 10}}
	assert.Equal(t, want, collectNotes(line))
	assert.Equal(t, 3, line.Len())
	checkLevelConsistency(t, line)
}

func TestInsertHeadReplacement(t *testing.T) {
	nl := NewNoteLines(1, WithSeed(7))
	line := nl.Line(0)

	line.Insert(NoteBox{Start: 5, End: 10})
	line.Insert(NoteBox{Start: 1, End: 2})

	head, ok := line.Head()
	require.True(t, ok)
	assert.Equal(t, NoteBox{Start: 1, End: 2}, head)
	assert.Equal(t, []NoteBox{{Start: 1, End: 2}, {Start: 5, End: 10}}, collectNotes(line))
	checkLevelConsistency(t, line)
}

func TestInsertEmptyLine(t *testing.T) {
	nl := NewNoteLines(1, WithSeed(7))
	line := nl.Line(0)

	_, ok := line.Head()
	assert.False(t, ok)

	line.Insert(NoteBox{Start: 2, End: 3})
	head, ok := line.Head()
	require.True(t, ok)
	assert.Equal(t, NoteBox{Start: 2, End: 3}, head)
	assert.Equal(t, 1, line.Len())
}

// Insert 500 adjacent one-beat notes in shuffled order and verify that
// iteration matches a reference sort of the same set, at several points
// during the build.
func TestBulkInsertion(t *testing.T) {
	nl := NewNoteLines(1, WithSeed(42), WithNoteCapacity(500), WithNodeCapacity(500))
	line := nl.Line(0)

	notes := make([]NoteBox, 0, 500)
	for i := 0; i < 500; i++ {
		notes = append(notes, NoteBox{Start: float32(i * 2), End: float32(i*2 + 1)})
	}
	shuffle := rand.New(rand.NewPCG(42, 42))
	shuffle.Shuffle(len(notes), func(i, j int) {
		notes[i], notes[j] = notes[j], notes[i]
	})

	for i, note := range notes {
		line.Insert(note)
		if i%100 == 99 {
			checkLevelConsistency(t, line)
		}
	}

	want := slices.Clone(notes)
	slices.SortFunc(want, NoteBox.Compare)
	assert.Equal(t, want, collectNotes(line))
	assert.Equal(t, 500, line.Len())
	checkLevelConsistency(t, line)
}

// Two indexes built with the same seed must end up with identical link
// structure, not just identical contents.
func TestInsertDeterministicWithSeed(t *testing.T) {
	build := func() *NoteLines {
		nl := NewNoteLines(1, WithSeed(99))
		for i := 0; i < 64; i++ {
			nl.Insert(0, NoteBox{Start: float32(i * 3), End: float32(i*3 + 2)})
		}
		return nl
	}

	assert.Equal(t, build().Line(0).Render(), build().Line(0).Render())
}

func TestRemoveFromEmptyLine(t *testing.T) {
	nl := NewNoteLines(1, WithSeed(7))
	_, ok := nl.Remove(0, 1.0)
	assert.False(t, ok)
}

func TestRemoveSingleNote(t *testing.T) {
	cases := []struct {
		name string
		beat float32
		hit  bool
	}{
		{"BeforeNote", 1.5, false},
		{"AtStart", 2.0, true},
		{"Inside", 3.0, true},
		{"AtEnd", 4.0, true},
		{"AfterNote", 4.5, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nl := NewNoteLines(1, WithSeed(7))
			nl.Insert(0, NoteBox{Start: 2, End: 4})

			removed, ok := nl.Remove(0, tc.beat)
			require.Equal(t, tc.hit, ok)
			if !tc.hit {
				assert.Equal(t, 1, nl.Line(0).Len())
				return
			}

			assert.Equal(t, NoteBox{Start: 2, End: 4}, removed)
			assert.Equal(t, 0, nl.Line(0).Len())
			// Both arena slots must be freed.
			assert.Equal(t, 0, nl.store.notes.Len())
			assert.Equal(t, 0, nl.store.nodes.Len())
			// The whole line reads as one free gap again.
			gap, free := nl.GetBounds(0, 3.0)
			require.True(t, free)
			assert.Equal(t, Gap{}, gap)
		})
	}
}

func TestRemoveHeadWithSuccessors(t *testing.T) {
	nl := NewNoteLines(1, WithSeed(21))
	line := nl.Line(0)
	for i := 0; i < 32; i++ {
		line.Insert(NoteBox{Start: float32(i * 2), End: float32(i*2 + 1)})
	}

	removed, ok := line.Remove(0.5)
	require.True(t, ok)
	assert.Equal(t, NoteBox{Start: 0, End: 1}, removed)

	head, ok := line.Head()
	require.True(t, ok)
	assert.Equal(t, NoteBox{Start: 2, End: 3}, head)
	assert.Equal(t, 31, line.Len())
	checkLevelConsistency(t, line)
}

func TestRemoveMiddleNote(t *testing.T) {
	nl := NewNoteLines(1, WithSeed(7))
	line := nl.Line(0)
	line.Insert(NoteBox{Start: 1, End: 2})
	line.Insert(NoteBox{Start: 3, End: 4})
	line.Insert(NoteBox{Start: 5, End: 6})

	removed, ok := line.Remove(3.5)
	require.True(t, ok)
	assert.Equal(t, NoteBox{Start: 3, End: 4}, removed)
	assert.Equal(t, []NoteBox{{Start: 1, End: 2}, {Start: 5, End: 6}}, collectNotes(line))
	checkLevelConsistency(t, line)

	// A beat in the gap the note left behind now misses.
	_, ok = line.Remove(3.5)
	assert.False(t, ok)
}

// Tear a seeded line half down and rebuild it, exercising slot reuse in
// both arenas along the way.
func TestRemoveAndReinsertBulk(t *testing.T) {
	nl := NewNoteLines(1, WithSeed(1234))
	line := nl.Line(0)
	for i := 0; i < 200; i++ {
		line.Insert(NoteBox{Start: float32(i * 2), End: float32(i*2 + 1)})
	}

	for i := 0; i < 200; i += 2 {
		_, ok := line.Remove(float32(i*2) + 0.5)
		require.True(t, ok)
	}
	assert.Equal(t, 100, line.Len())
	assert.Equal(t, 100, nl.store.notes.Len())
	checkLevelConsistency(t, line)

	for i := 0; i < 200; i += 2 {
		line.Insert(NoteBox{Start: float32(i * 2), End: float32(i*2 + 1)})
	}
	assert.Equal(t, 200, line.Len())
	checkLevelConsistency(t, line)

	notes := collectNotes(line)
	require.Len(t, notes, 200)
	assert.True(t, slices.IsSortedFunc(notes, NoteBox.Compare))
}

// The search precondition - the starting node must not already be past the
// target - is enforced unconditionally.
func TestSearchPreconditionPanics(t *testing.T) {
	nl := NewNoteLines(1, WithSeed(7))
	line := nl.Line(0)
	line.Insert(NoteBox{Start: 5, End: 10})

	var preceding [Levels]Handle[noteNode]
	for i := range preceding {
		preceding[i] = line.head
	}
	assert.Panics(t, func() { line.search(3.0, &preceding) })
}

// Level draws follow P(level = k) = 2^-(k+1), with the leftover mass on the
// top level, and are reproducible for a fixed seed.
func TestLevelDistribution(t *testing.T) {
	const draws = 200_000
	st := newStore(WithSeed(5))

	var counts [Levels]int
	for i := 0; i < draws; i++ {
		level := st.nextLevel()
		require.GreaterOrEqual(t, level, 0)
		require.Less(t, level, Levels)
		counts[level]++
	}

	want := [Levels]float64{0.5, 0.25, 0.125, 0.0625, 0.0625}
	for level, count := range counts {
		got := float64(count) / draws
		assert.InDelta(t, want[level], got, 0.01, "level %d frequency", level)
	}

	// Same seed, same sequence.
	st1, st2 := newStore(WithSeed(5)), newStore(WithSeed(5))
	for i := 0; i < 1000; i++ {
		require.Equal(t, st1.nextLevel(), st2.nextLevel())
	}
}
