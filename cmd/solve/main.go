// Command solve is the single-shot CLI entry point: it parses the §6
// external-interface fields from flags, runs the driver once, and prints
// the piece,x,y,rot|... result, or -1 if no perfect clear exists within
// the requested height range. Mirrors cmd/shell's executable-path +
// config-load + logger-setup boilerplate, but as a single-shot command
// instead of an interactive shell.
package main

import (
	"fmt"
	"os"

	"github.com/namsral/flag"
	"github.com/rs/zerolog/log"

	"github.com/tetris-pc/pcsolve/config"
	"github.com/tetris-pc/pcsolve/driver"
	"github.com/tetris-pc/pcsolve/logging"
	"github.com/tetris-pc/pcsolve/piece"
)

func main() {
	var fieldStr, queue, hold, searchType string
	var height, maxHeight, combo int
	var swap, b2b, twoLine, benchMode bool
	var runs int

	fs := flag.NewFlagSet("pcsolve", flag.ContinueOnError)
	fs.StringVar(&fieldStr, "field", "__________", "field rows, bottom-up, '/'-separated, '_' empty")
	fs.StringVar(&queue, "queue", "", "queued piece letters, e.g. TILJSZO")
	fs.StringVar(&hold, "hold", "E", "held piece letter, E for empty, X to disable hold")
	fs.IntVar(&height, "height", 0, "target clear height")
	fs.IntVar(&maxHeight, "max-height", 10, "tallest height the driver will step up to")
	fs.BoolVar(&swap, "swap", false, "prefer most line clears over least")
	fs.StringVar(&searchType, "search-type", "fast", "fast, tspin, allspin, or tetrios2")
	fs.IntVar(&combo, "combo", 0, "combo count carried into the search")
	fs.BoolVar(&b2b, "b2b", false, "back-to-back state carried into the search")
	fs.BoolVar(&twoLine, "two-line", false, "compute two-line PC hold-priority dominance")
	fs.BoolVar(&benchMode, "bench", false, "run the driver `runs` times and print a timing histogram")
	fs.IntVar(&runs, "runs", 20, "iteration count for -bench")

	var pcfg config.ProcessConfig
	if err := pcfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logging.Setup(pcfg.LogLevel)

	system := piece.SRS
	if pcfg.RotationSystem == "srs+" {
		system = piece.SRSPlus
	}

	req := driver.Request{
		FieldRows:  splitRows(fieldStr),
		Queue:      queue,
		Hold:       holdByte(hold),
		Height:     height,
		MaxHeight:  maxHeight,
		Swap:       swap,
		SearchType: parseSearchType(searchType),
		Combo:      combo,
		B2B:        b2b,
		TwoLine:    twoLine,
		System:     system,
	}

	if benchMode {
		runBench(req, runs)
		return
	}

	result, err := driver.Solve(req)
	if err != nil {
		log.Error().Err(err).Msg("solve failed")
		fmt.Println("-1")
		os.Exit(1)
	}
	if !result.Solved {
		fmt.Println("-1")
		return
	}
	fmt.Println(formatSolution(result.Solution))
}

func splitRows(s string) []string {
	var rows []string
	cur := make([]byte, 0, 10)
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			rows = append(rows, string(cur))
			cur = cur[:0]
			continue
		}
		cur = append(cur, s[i])
	}
	rows = append(rows, string(cur))
	return rows
}

func holdByte(s string) byte {
	if len(s) == 0 {
		return 'E'
	}
	return s[0]
}

func parseSearchType(s string) driver.SearchType {
	switch s {
	case "tspin":
		return driver.TSpin
	case "allspin":
		return driver.AllSpins
	case "tetrios2":
		return driver.TETRIOS2
	default:
		return driver.Fast
	}
}
