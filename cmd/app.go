package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	colorize "github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/nocount/scryglass/internal/art"
	"github.com/nocount/scryglass/internal/card"
	"github.com/nocount/scryglass/internal/config"
	"github.com/nocount/scryglass/internal/report"
	"github.com/nocount/scryglass/internal/scryfall"
)

// layoutSpacing is the gap between card art and the report in side-by-side
// layout.
const layoutSpacing = 4

// app wires the lookup client, image fetcher, and configuration behind the
// CLI commands. All terminal output happens on the caller's goroutine;
// network calls run on worker goroutines and report back over channels.
type app struct {
	cfg      *config.Config
	client   *scryfall.Client
	fetcher  *art.Fetcher
	cacheDir string
}

type lookupResult struct {
	card *card.Card
	err  error
}

type artResult struct {
	rendered string
	err      error
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %v", err)
	}

	if !cfg.Color {
		colorize.NoColor = true
	}

	return &app{
		cfg:      cfg,
		client:   scryfall.NewClient(cfg.APIBaseURL, time.Duration(cfg.LookupTimeoutSeconds)*time.Second),
		fetcher:  art.NewFetcher(time.Duration(cfg.ImageTimeoutSeconds) * time.Second),
		cacheDir: config.GetArtCacheDir(),
	}, nil
}

// runInteractive reads card names from in until EOF, resolving and
// displaying each one. The prompt does not reappear while a search is in
// flight, so at most one lookup and one image fetch run at a time. Lookup
// failures are reported and the prompt returns, never ending the session.
func (a *app) runInteractive(in io.Reader) error {
	fmt.Println(colorize.HiWhiteString("Scryglass") + " — type a card name to search, Ctrl+D to quit.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Print(colorize.CyanString("card> "))
		if !scanner.Scan() {
			break
		}

		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			fmt.Println(colorize.YellowString("Please enter a card name"))
			continue
		}

		fmt.Printf("Searching for '%s'...\n", name)
		if err := a.search(name); err != nil {
			fmt.Println(colorize.RedString(lookupErrorMessage(err)))
		}
	}

	fmt.Println()
	return scanner.Err()
}

// search resolves a card name and displays the result. The lookup runs on a
// worker goroutine; its result is drained here before any output.
func (a *app) search(name string) error {
	results := make(chan lookupResult, 1)
	go func() {
		c, err := a.client.Named(context.Background(), name)
		results <- lookupResult{card: c, err: err}
	}()

	res := <-results
	if res.err != nil {
		return res.err
	}

	fmt.Println(colorize.GreenString("Found: %s", res.card.Name))
	a.display(res.card)
	return nil
}

// display renders a card's report and art. The image is fetched and
// rendered concurrently with report formatting, then both are laid out
// side by side when the terminal is wide enough.
func (a *app) display(c *card.Card) {
	artCh := a.startArtFetch(c)
	lines := report.Format(c)

	if artCh == nil {
		a.printReport(lines)
		return
	}

	res := <-artCh
	if res.err != nil {
		a.printReport(lines)
		if errors.Is(res.err, card.ErrNoImage) {
			fmt.Println(colorize.YellowString("No image available"))
		} else {
			fmt.Println(colorize.YellowString("Failed to load image: %v", res.err))
		}
		return
	}

	a.printSideBySide(strings.Split(strings.TrimRight(res.rendered, "\n"), "\n"), lines)
}

// startArtFetch kicks off image download and ANSI rendering on a worker
// goroutine, returning a channel carrying the single result. A nil channel
// means art is disabled.
func (a *app) startArtFetch(c *card.Card) <-chan artResult {
	if noArt {
		return nil
	}

	results := make(chan artResult, 1)

	imageURL, err := c.BestImageURL()
	if err != nil {
		results <- artResult{err: err}
		return results
	}

	go func() {
		if cached, ok := art.Cached(a.cacheDir, imageURL); ok {
			results <- artResult{rendered: cached}
			return
		}

		img, err := a.fetcher.Fetch(context.Background(), imageURL)
		if err != nil {
			results <- artResult{err: err}
			return
		}

		rendered := art.ToANSI(img, a.cfg.ArtColumns)
		if err := art.Store(a.cacheDir, imageURL, rendered); err != nil {
			logrus.WithError(err).Debug("store art cache")
		}
		results <- artResult{rendered: rendered}
	}()

	return results
}

// printReport prints the formatted card report with a left margin.
func (a *app) printReport(lines []string) {
	fmt.Println()
	for _, line := range lines {
		fmt.Println("  " + line)
	}
	fmt.Println()
}

// printSideBySide lays out card art on the left and the report on the
// right. When the terminal is too narrow for both, the art is printed above
// the report instead.
func (a *app) printSideBySide(artLines, infoLines []string) {
	maxArtWidth := 0
	for _, line := range artLines {
		if w := art.VisibleWidth(line); w > maxArtWidth {
			maxArtWidth = w
		}
	}

	maxInfoWidth := 0
	for _, line := range infoLines {
		if len([]rune(line)) > maxInfoWidth {
			maxInfoWidth = len([]rune(line))
		}
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	infoStartCol := maxArtWidth + layoutSpacing
	if infoStartCol+maxInfoWidth+2 > width {
		// Not enough columns for both, stack vertically
		fmt.Println()
		for _, line := range artLines {
			fmt.Println("  " + line)
		}
		a.printReport(infoLines)
		return
	}

	fmt.Println()
	maxLines := max(len(artLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Print("  ")
		if i < len(artLines) {
			fmt.Print(artLines[i])
			fmt.Print(strings.Repeat(" ", infoStartCol-art.VisibleWidth(artLines[i])))
		} else {
			fmt.Print(strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Print(infoLines[i])
		}

		fmt.Println()
	}
	fmt.Println()
}

// lookupErrorMessage maps each lookup failure class to its user-facing
// message.
func lookupErrorMessage(err error) string {
	var notFound *scryfall.NotFoundError
	if errors.As(err, &notFound) {
		return notFound.Details
	}

	var httpErr *scryfall.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Sprintf("API error: %d", httpErr.Status)
	}

	if errors.Is(err, scryfall.ErrTimeout) {
		return "Request timed out. Please try again."
	}
	if errors.Is(err, scryfall.ErrConnection) {
		return "Connection error. Check your internet connection."
	}

	return fmt.Sprintf("Error: %v", err)
}

// max returns the maximum of two integers
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
