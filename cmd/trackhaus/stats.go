package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/subcommands"
	"github.com/olekukonko/tablewriter"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/analytics"
	"github.com/trackhaus/trackhaus/config"
	"github.com/trackhaus/trackhaus/errors"
)

// listenerArg parses the first positional argument as a listener id
func listenerArg(f *flag.FlagSet) (trackhaus.ListenerID, error) {
	const op errors.Op = "cmd/trackhaus.listenerArg"

	if f.NArg() < 1 {
		return 0, errors.E(op, errors.InvalidArgument, errors.Info("missing listener id argument"))
	}
	id, err := trackhaus.ParseListenerID(f.Arg(0))
	if err != nil {
		return 0, errors.E(op, errors.InvalidArgument, err)
	}
	return id, nil
}

type statsCmd struct{}

func (statsCmd) Name() string     { return "stats" }
func (statsCmd) Synopsis() string { return "shows the listening statistics of a listener" }
func (statsCmd) Usage() string {
	return `stats <listener id>:
	shows the listening statistics of a listener
`
}
func (*statsCmd) SetFlags(*flag.FlagSet) {}

func (s *statsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	return cmd{
		name: s.Name(),
		execute: withConfig(withStorage(func(ctx context.Context, _ config.Config, store trackhaus.StorageService) error {
			id, err := listenerArg(f)
			if err != nil {
				return err
			}

			stats, err := analytics.NewService(store).UserStats(ctx, id)
			if err != nil {
				return err
			}
			return renderStats(os.Stdout, stats, time.Now())
		})),
	}.Execute(ctx, f, args...)
}

type playsCmd struct {
	limit  int
	offset int
}

func (playsCmd) Name() string     { return "plays" }
func (playsCmd) Synopsis() string { return "shows the play history of a listener, newest first" }
func (playsCmd) Usage() string {
	return `plays [-limit n] [-offset n] <listener id>:
	shows the play history of a listener, newest first
`
}
func (p *playsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.limit, "limit", analytics.DefaultLimit, "amount of plays to show")
	f.IntVar(&p.offset, "offset", 0, "amount of plays to skip")
}

func (p *playsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	return cmd{
		name: p.Name(),
		execute: withConfig(withStorage(func(ctx context.Context, _ config.Config, store trackhaus.StorageService) error {
			id, err := listenerArg(f)
			if err != nil {
				return err
			}

			plays, err := analytics.NewService(store).UserPlays(ctx, id, p.limit, p.offset)
			if err != nil {
				return err
			}
			return renderPlays(os.Stdout, plays, time.Now())
		})),
	}.Execute(ctx, f, args...)
}

// renderStats writes stats as a set of tables to w, relative times are
// relative to now
func renderStats(w io.Writer, stats trackhaus.Stats, now time.Time) error {
	o := stats.Overall
	fmt.Fprintf(w, "plays:          %s\n", humanize.Comma(o.TotalPlays))
	fmt.Fprintf(w, "unique tracks:  %s\n", humanize.Comma(o.UniqueTracks))
	fmt.Fprintf(w, "unique artists: %s\n", humanize.Comma(o.UniqueArtists))
	fmt.Fprintf(w, "listening time: %s\n", time.Duration(o.TotalTimeSeconds)*time.Second)
	fmt.Fprintf(w, "first play:     %s\n", humanize.RelTime(o.FirstPlay, now, "ago", "from now"))
	fmt.Fprintf(w, "last play:      %s\n", humanize.RelTime(o.LastPlay, now, "ago", "from now"))

	tops := []struct {
		title string
		items []trackhaus.TopItem
	}{
		{"Track", stats.TopTracks},
		{"Artist", stats.TopArtists},
		{"Album", stats.TopAlbums},
		{"Station", stats.TopStations},
	}
	for _, top := range tops {
		fmt.Fprintln(w)
		if err := renderTop(w, top.title, top.items, now); err != nil {
			return err
		}
	}

	fmt.Fprintln(w)
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rating", "Plays"})
	for _, rc := range stats.RatingDistribution {
		if err := table.Append([]string{rc.Rating.String(), humanize.Comma(rc.PlayCount)}); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderTop(w io.Writer, title string, items []trackhaus.TopItem, now time.Time) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", title, "Plays", "Last Played"})
	for i, item := range items {
		err := table.Append([]string{
			strconv.Itoa(i + 1),
			item.Name,
			humanize.Comma(item.PlayCount),
			humanize.RelTime(item.LastPlayed, now, "ago", "from now"),
		})
		if err != nil {
			return err
		}
	}
	return table.Render()
}

// renderPlays writes plays as a table to w
func renderPlays(w io.Writer, plays []trackhaus.Play, now time.Time) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Title", "Artist", "Album", "Station", "Rating", "Played"})
	for _, p := range plays {
		err := table.Append([]string{
			p.ID.String(),
			p.Track.Title,
			p.Artist.Name,
			p.Album.Title,
			p.Station.Name,
			p.Rating.String(),
			humanize.RelTime(p.OccurredAt, now, "ago", "from now"),
		})
		if err != nil {
			return err
		}
	}
	return table.Render()
}
