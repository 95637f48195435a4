// notedump builds a seeded random note grid and prints the structural
// rendering of each line's skip list, together with a few gap probes.
// It exists to eyeball the link structure the index builds for a given
// seed; the exact same bytes are what the golden render tests compare.
//
// notedump สร้างกริดโน้ตแบบสุ่มตาม seed ที่กำหนด แล้วพิมพ์โครงสร้างลิงก์
// ของ skip list แต่ละไลน์ออกมาเพื่อใช้ตรวจสอบด้วยสายตา
package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/INLOpen/notelines"
)

const (
	dumpCmdUse   = "notedump"
	dumpCmdShort = "Dump the skip list structure of a randomly filled note grid"

	linesFlag   = "lines"
	linesUsage  = "number of grid lines"
	notesFlag   = "notes"
	notesUsage  = "number of notes per line"
	seedFlag    = "seed"
	seedUsage   = "seed for note placement and level generation"
	probesFlag  = "probes"
	probesUsage = "number of gap probes per line"
)

func main() {
	if err := newDumpCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newDumpCommand() *cobra.Command {
	var (
		lineCount int
		noteCount int
		seed      uint64
		probes    int
	)

	cmd := &cobra.Command{
		Use:   dumpCmdUse,
		Short: dumpCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDump(cmd, lineCount, noteCount, seed, probes)
		},
	}

	cmd.Flags().IntVar(&lineCount, linesFlag, 4, linesUsage)
	cmd.Flags().IntVar(&noteCount, notesFlag, 12, notesUsage)
	cmd.Flags().Uint64Var(&seed, seedFlag, 42, seedUsage)
	cmd.Flags().IntVar(&probes, probesFlag, 3, probesUsage)

	return cmd
}

func runDump(cmd *cobra.Command, lineCount, noteCount int, seed uint64, probes int) error {
	nl := notelines.NewNoteLines(lineCount,
		notelines.WithSeed(seed),
		notelines.WithNoteCapacity(lineCount*noteCount),
		notelines.WithNodeCapacity(lineCount*noteCount),
	)

	rng := rand.New(rand.NewPCG(seed, seed))
	lineEnds := fillGrid(nl, rng, lineCount, noteCount)

	header := color.New(color.FgCyan, color.Bold)
	probe := color.New(color.FgYellow)

	out := cmd.OutOrStdout()
	for ix := 0; ix < lineCount; ix++ {
		header.Fprintf(out, "line %d (%d notes)\n", ix, nl.Line(ix).Len())
		fmt.Fprintln(out, nl.Line(ix).Render())

		for p := 0; p < probes; p++ {
			beat := rng.Float32() * lineEnds[ix]
			gap, free := nl.GetBounds(ix, beat)
			switch {
			case !free:
				probe.Fprintf(out, "  beat %.2f: occupied\n", beat)
			case gap.Bounded:
				probe.Fprintf(out, "  beat %.2f: free in [%g, %g]\n", beat, gap.Start, gap.End)
			default:
				probe.Fprintf(out, "  beat %.2f: free from %g, unbounded\n", beat, gap.Start)
			}
		}
		fmt.Fprintln(out)
	}
	return nil
}

// fillGrid inserts noteCount non-overlapping notes per line by walking a
// cursor forward with random gaps and lengths, then returns each line's
// final end beat so probes can target the occupied region.
func fillGrid(nl *notelines.NoteLines, rng *rand.Rand, lineCount, noteCount int) []float32 {
	ends := make([]float32, lineCount)
	for ix := 0; ix < lineCount; ix++ {
		cursor := float32(0)
		for i := 0; i < noteCount; i++ {
			start := cursor + 0.25 + rng.Float32()*2
			end := start + 0.25 + rng.Float32()*3
			nl.Insert(ix, notelines.NoteBox{Start: start, End: end})
			cursor = end
		}
		ends[ix] = cursor + 1
	}
	return ends
}
