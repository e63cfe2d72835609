package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rohmanhakim/parks-explorer/internal/config"
	"github.com/rohmanhakim/parks-explorer/internal/extractor"
	"github.com/rohmanhakim/parks-explorer/internal/pipeline"
	"github.com/spf13/cobra"
)

const headerRule = "----------------------------------"

// runInteractive drives the prompt loop on the command's configured
// input and output streams. Lookup failures are reported and the loop
// goes on; only "exit" or end of input ends the session.
func runInteractive(cmd *cobra.Command, p *pipeline.Pipeline, cfg config.Config) {
	interactiveSession(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), p, cfg)
}

func interactiveSession(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	p *pipeline.Pipeline,
	cfg config.Config,
) {
	if ctx == nil {
		ctx = context.Background()
	}
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, `Enter a state name (e.g. Michigan, michigan) or "exit": `)
		if !scanner.Scan() {
			return
		}
		state := strings.TrimSpace(scanner.Text())
		if state == "" {
			continue
		}
		if strings.EqualFold(state, "exit") {
			return
		}

		sites, err := p.SitesForState(ctx, state)
		if err != nil {
			fmt.Fprintf(out, "[Error] %s\n", err)
			continue
		}

		shown := sites
		if len(shown) > cfg.MaxListed() {
			shown = shown[:cfg.MaxListed()]
		}
		printSiteList(out, state, shown)

		if !siteDetailSession(ctx, scanner, out, p, shown) {
			return
		}
	}
}

// siteDetailSession runs the numbered-choice loop for one state
// listing. Returns false when the whole session should end.
func siteDetailSession(
	ctx context.Context,
	scanner *bufio.Scanner,
	out io.Writer,
	p *pipeline.Pipeline,
	shown []extractor.Site,
) bool {
	for {
		fmt.Fprint(out, `Choose the number for detail search or "exit" or "back": `)
		if !scanner.Scan() {
			return false
		}
		choice := strings.TrimSpace(scanner.Text())

		switch {
		case strings.EqualFold(choice, "exit"):
			return false
		case strings.EqualFold(choice, "back"):
			return true
		}

		number, err := strconv.Atoi(choice)
		if err != nil || number < 1 || number > len(shown) {
			fmt.Fprintln(out, "[Error] Invalid input")
			continue
		}

		site := shown[number-1]
		places, err := p.NearbyPlaces(ctx, site)
		if err != nil {
			fmt.Fprintf(out, "[Error] %s\n", err)
			continue
		}
		printPlaces(out, site.Name, places)
	}
}

func printSiteList(out io.Writer, state string, sites []extractor.Site) {
	fmt.Fprintln(out, headerRule)
	fmt.Fprintf(out, "List of national sites in %s\n", state)
	fmt.Fprintln(out, headerRule)
	for i, site := range sites {
		fmt.Fprintf(out, "[%d] %s\n", i+1, site.Info())
	}
}

func printPlaces(out io.Writer, siteName string, places []extractor.PlaceResult) {
	fmt.Fprintln(out, headerRule)
	fmt.Fprintf(out, "Places near %s\n", siteName)
	fmt.Fprintln(out, headerRule)
	for _, place := range places {
		fmt.Fprintf(out, "- %s\n", place.Info())
	}
}
