package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // Import for side effects: registers pprof handlers
	"os"
	"strconv"
	"time"

	"github.com/INLOpen/notelines"
)

func main() {
	// เปิด pprof endpoint ผ่าน HTTP server ซึ่งทำงานใน goroutine แยกต่างหาก
	go func() {
		fmt.Println("Starting pprof server on http://localhost:6060/debug/pprof/")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			log.Fatalf("pprof server failed: %v", err)
		}
	}()

	// รอให้ server เริ่มทำงานสักครู่
	time.Sleep(100 * time.Millisecond)

	lineCount, noteCount := parseArgs()

	fmt.Println("Starting note insertion workload...")
	fmt.Printf(" - Lines: %d\n", lineCount)
	fmt.Printf(" - Notes per line: %d\n", noteCount)

	nl := notelines.NewNoteLines(lineCount,
		notelines.WithNoteCapacity(lineCount*noteCount),
		notelines.WithNodeCapacity(lineCount*noteCount),
	)

	// เพิ่มโน้ตจำนวนมากเพื่อสร้างภาระงานให้ CPU และ allocator
	for ix := 0; ix < lineCount; ix++ {
		for i := 0; i < noteCount; i++ {
			nl.Insert(ix, notelines.NoteBox{
				Start: float32(i * 2),
				End:   float32(i*2 + 1),
			})
		}
	}

	total := 0
	for ix := 0; ix < lineCount; ix++ {
		total += nl.Line(ix).Len()
	}
	fmt.Printf("Finished inserting %d notes across %d lines.\n", total, lineCount)
	fmt.Println("Program is keeping alive for profiling. Press Ctrl+C to exit.")

	// ทำให้โปรแกรมทำงานค้างไว้เพื่อให้เราสามารถเชื่อมต่อ pprof server ได้
	select {}
}

// parseArgs แยกวิเคราะห์ arguments จาก command-line
// Usage: go run ./cmd/profiler [lines] [notes_per_line]
// Example: go run ./cmd/profiler 16 500000
func parseArgs() (lineCount, noteCount int) {
	lineCount = 8
	noteCount = 250_000

	if len(os.Args) > 1 {
		if n, err := strconv.Atoi(os.Args[1]); err == nil {
			lineCount = n
		}
	}
	if len(os.Args) > 2 {
		if n, err := strconv.Atoi(os.Args[2]); err == nil {
			noteCount = n
		}
	}
	return lineCount, noteCount
}
