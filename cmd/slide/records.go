package main

import (
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slide/internal/platform/tui"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

var (
	flagRecordsSize  int
	flagRecordsLimit int
	flagRecordsJSON  bool
	flagRecordsTUI   bool
	flagRecordsClear bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show the best solved rounds",
	Long: `Display the best solved rounds. Fewer moves rank first; ties go to
the faster round.

Examples:
  slide records
  slide records --size 4
  slide records --json
  slide records --tui
  slide records --size 3 --clear`,
	Run: runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagRecordsSize, "size", 0, "Board size (0 = all sizes)")
	recordsCmd.Flags().IntVar(&flagRecordsLimit, "limit", 10, "Number of rounds to show")
	recordsCmd.Flags().BoolVar(&flagRecordsJSON, "json", false, "Print rounds as JSON")
	recordsCmd.Flags().BoolVar(&flagRecordsTUI, "tui", false, "Browse records interactively")
	recordsCmd.Flags().BoolVar(&flagRecordsClear, "clear", false, "Delete the records of --size (or all)")
}

// jsonRound is the --json shape of a record.
type jsonRound struct {
	Round      string    `json:"round"`
	Size       int       `json:"size"`
	Moves      int       `json:"moves"`
	DurationMs int64     `json:"duration_ms"`
	Picture    string    `json:"picture,omitempty"`
	Player     string    `json:"player,omitempty"`
	SolvedAt   time.Time `json:"solved_at"`
}

func runRecords(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening records database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRecordsClear {
		if err := store.ClearRounds(flagRecordsSize); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Records cleared.")
		return
	}

	if flagRecordsTUI {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
			height = h
		}
		if err := tui.RunRecords(store, flagRecordsSize, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	rounds, err := store.TopRounds(flagRecordsSize, flagRecordsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
		os.Exit(1)
	}

	if flagRecordsJSON {
		out := make([]jsonRound, len(rounds))
		for i, r := range rounds {
			out[i] = jsonRound{
				Round:      r.RoundID,
				Size:       r.Size,
				Moves:      r.Moves,
				DurationMs: r.Duration.Milliseconds(),
				Picture:    r.Content,
				Player:     r.Player,
				SolvedAt:   r.CreatedAt,
			}
		}
		data, err := sonic.ConfigStd.MarshalIndent(out, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	title := "Best Rounds - all sizes"
	if flagRecordsSize > 0 {
		title = fmt.Sprintf("Best Rounds - %dx%d", flagRecordsSize, flagRecordsSize)
	}
	fmt.Println(title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds solved yet.")
		fmt.Println()
		fmt.Println("Play 'slide play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-5s  %-6s  %-8s  %-12s  %s\n", "Rank", "Size", "Moves", "Time", "Picture", "Solved")
	fmt.Printf("  %-4s  %-5s  %-6s  %-8s  %-12s  %s\n", "----", "----", "-----", "----", "-------", "------")
	for i, r := range rounds {
		size := fmt.Sprintf("%dx%d", r.Size, r.Size)
		fmt.Printf("  %-4d  %-5s  %-6s  %-8s  %-12s  %s\n",
			i+1, size, humanize.Comma(int64(r.Moves)), r.Duration.Round(time.Second),
			r.Content, humanize.Time(r.CreatedAt))
	}

	if flagRecordsSize > 0 {
		stats, err := store.GetSizeStats(flagRecordsSize)
		if err == nil && stats.Solved > 0 {
			fmt.Println()
			fmt.Printf("Solved %s times, %.1f moves on average, %s played in total.\n",
				humanize.Comma(int64(stats.Solved)), stats.AvgMoves, stats.TotalTime.Round(time.Second))
		}
	}
}
