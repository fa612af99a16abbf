// Command trackinfo prints track lengths and the attached displays in a
// terminal, with titles shortened to the terminal width.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/digero/maestro-desk/internal/display"
	"github.com/digero/maestro-desk/internal/playback"
	"github.com/digero/maestro-desk/internal/textfit"
	"github.com/digero/maestro-desk/internal/x11"
)

const defaultWidth = 80

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	lengthStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func main() {
	width := flag.Int("width", 0, "output width in cells (default: terminal width)")
	at := flag.Duration("at", 0, "show position and remaining time at this offset")
	marker := flag.String("marker", textfit.Ellipsis, "marker for shortened titles")
	displays := flag.Bool("displays", false, "list attached displays")
	source := flag.String("source", display.SourceAuto, "display source: auto, x11, screens or file")
	layout := flag.String("layout", "", "YAML display layout for -source file")
	flag.Parse()

	if *displays {
		if err := listDisplays(*source, *layout); err != nil {
			log.Fatalf("Failed to list displays: %v", err)
		}
		return
	}

	cols := *width
	if cols <= 0 {
		cols = terminalWidth()
	}

	status := 0
	for _, path := range flag.Args() {
		if err := printTrack(path, cols, *marker, *at); err != nil {
			log.Printf("%s: %v", path, err)
			status = 1
		}
	}
	os.Exit(status)
}

func printTrack(path string, cols int, marker string, at time.Duration) error {
	track, err := playback.Open(path)
	if err != nil {
		return err
	}
	defer track.Close()

	label := track.LengthLabel()
	if at > 0 {
		if err := track.Seek(at); err != nil {
			return err
		}
		label = track.PositionLabel() + " " + track.RemainingLabel()
	}

	length := " " + lengthStyle.Render(label)
	budget := float32(cols) - textfit.StyledMeasurer{}.Width(length)
	title := textfit.Fit(track.Title, budget, textfit.CellMeasurer{}, marker)

	fmt.Println(titleStyle.Render(title) + length)
	return nil
}

func listDisplays(source, layout string) error {
	var conn *x11.Connection
	if source == display.SourceAuto || source == display.SourceX11 {
		if c, err := x11.NewConnection(); err == nil {
			conn = c
			defer conn.Close()
		}
	}

	enum, err := display.Select(source, layout, conn)
	if err != nil {
		return err
	}

	primary, err := enum.PrimarySize()
	if err != nil {
		return err
	}
	rects, err := enum.Displays()
	if err != nil {
		return err
	}

	fmt.Printf("primary %dx%d\n", primary.Width, primary.Height)
	for i, r := range rects {
		fmt.Printf("%d: %s\n", i, r)
	}
	return nil
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}
