package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
	_ "time/tzdata" // America/Sao_Paulo on hosts without zoneinfo

	"arthub_checkout/internal/usecase"
)

const (
	displayLayout = "02/01/2006 15:04:05"
	messageWidth  = 60
)

func clearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

func renderView(w io.Writer, view usecase.LogView, loc *time.Location) {
	status := "ONLINE"
	if !view.Online {
		status = "OFFLINE"
		if view.LastError != "" {
			status += " (" + view.LastError + ")"
		}
	}
	fetched := "never"
	if !view.FetchedAt.IsZero() {
		fetched = view.FetchedAt.In(loc).Format(displayLayout)
	}
	fmt.Fprintf(w, "%s  showing %d of %d  last fetch %s\n\n", status, len(view.Entries), view.Total, fetched)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tSTATUS\tROUTE\tSTAGE\tEMAIL\tERROR\tTRACE\tMESSAGE")
	for _, e := range view.Entries {
		errCol := "-"
		if e.ErrorClass != "" || e.ErrorCode != "" {
			errCol = strings.Trim(string(e.ErrorClass)+"/"+e.ErrorCode, "/")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Timestamp.In(loc).Format(displayLayout),
			strings.ToUpper(string(e.Status)),
			e.Route,
			e.Stage,
			orDash(e.Email()),
			errCol,
			shortTrace(e.TraceID),
			orDash(oneLine(e.Message, messageWidth)),
		)
	}
	_ = tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func shortTrace(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return orDash(id)
}

func oneLine(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
