package notelines

import (
	"math/rand/v2"
	"testing"
)

// สร้างไลน์ที่มีโน้ตติดกันจำนวน n ตัวไว้สำหรับ benchmark ฝั่งอ่าน
func buildBenchLine(n int) *NoteLines {
	nl := NewNoteLines(1, WithSeed(1), WithNoteCapacity(n), WithNodeCapacity(n))
	for i := 0; i < n; i++ {
		nl.Insert(0, NoteBox{Start: float32(i * 2), End: float32(i*2 + 1)})
	}
	return nl
}

func BenchmarkLevelGeneration(b *testing.B) {
	st := newStore(WithSeed(1))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		st.nextLevel()
	}
}

func BenchmarkInsertAscending(b *testing.B) {
	nl := NewNoteLines(1, WithSeed(1), WithNoteCapacity(b.N), WithNodeCapacity(b.N))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nl.Insert(0, NoteBox{Start: float32(i * 2), End: float32(i*2 + 1)})
	}
}

func BenchmarkInsertShuffled(b *testing.B) {
	notes := make([]NoteBox, b.N)
	for i := range notes {
		notes[i] = NoteBox{Start: float32(i * 2), End: float32(i*2 + 1)}
	}
	shuffle := rand.New(rand.NewPCG(1, 1))
	shuffle.Shuffle(len(notes), func(i, j int) {
		notes[i], notes[j] = notes[j], notes[i]
	})

	nl := NewNoteLines(1, WithSeed(1), WithNoteCapacity(b.N), WithNodeCapacity(b.N))
	b.ReportAllocs()
	b.ResetTimer()
	for _, note := range notes {
		nl.Insert(0, note)
	}
}

func BenchmarkGetBounds(b *testing.B) {
	const lineNotes = 1 << 16
	nl := buildBenchLine(lineNotes)
	beats := rand.New(rand.NewPCG(2, 2))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nl.GetBounds(0, beats.Float32()*float32(lineNotes*2))
	}
}

func BenchmarkRemoveReinsert(b *testing.B) {
	const lineNotes = 1 << 14
	nl := buildBenchLine(lineNotes)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		slot := (i % lineNotes) * 2
		nl.Remove(0, float32(slot)+0.5)
		nl.Insert(0, NoteBox{Start: float32(slot), End: float32(slot) + 1})
	}
}
