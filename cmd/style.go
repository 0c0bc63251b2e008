package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/showdown/domain/poker"
	"github.com/luca-patrignani/showdown/domain/showdown"
	"github.com/luca-patrignani/showdown/ledger"
)

func renderRank(h poker.Hand, r poker.HandRank, desc string, plain bool) string {
	kickers := make([]string, len(r.Kickers))
	for i, k := range r.Kickers {
		kickers[i] = k.String()
	}
	if plain {
		s := h.String() + "\n" + r.Category.String() + ": " + strings.Join(kickers, " ") + "\n"
		if desc != "" {
			s += "reference: " + desc + "\n"
		}
		return s
	}

	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := pterm.BgGreen.Sprint(h.Pretty()) + "\n" +
		pterm.LightCyan(r.Category.String()) + ": " + strings.Join(kickers, " ")
	if desc != "" {
		body += "\n" + pterm.FgGray.Sprint(desc)
	}
	return pbox.WithTitle(pterm.LightYellow("|RANK|")).WithTitleTopCenter().Sprintln(body)
}

func renderMatch(m showdown.Match, res poker.ComparisonResult, plain bool) string {
	if plain {
		return res.Describe() + "\n"
	}

	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	black := "Black: " + pterm.BgGreen.Sprint(m.Black.Pretty())
	white := "White: " + pterm.BgGreen.Sprint(m.White.Pretty())

	var outcome string
	switch res.Winner {
	case poker.Tie:
		outcome = pterm.LightYellow(res.Describe())
	case poker.First, poker.Second:
		outcome = pterm.LightGreen(res.Describe())
	}
	return pbox.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprintln(black + "\n" + white + "\n\n" + outcome)
}

// renderBlock prints a ledger block as plain lines.
func renderBlock(b ledger.Block) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "block %d: %s\n", b.Index, b.Hash)
	if b.Record.Black != "" {
		fmt.Fprintf(&sb, "black: %s\nwhite: %s\n", b.Record.Black, b.Record.White)
	}
	fmt.Fprintf(&sb, "outcome: %s\n", b.Record.Outcome)
	if b.Metadata.Source != "" {
		fmt.Fprintf(&sb, "source: %s\n", b.Metadata.Source)
	}
	for _, k := range slices.Sorted(maps.Keys(b.Metadata.Extra)) {
		fmt.Fprintf(&sb, "%s: %s\n", k, b.Metadata.Extra[k])
	}
	return sb.String()
}
