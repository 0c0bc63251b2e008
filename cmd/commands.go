package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luca-patrignani/showdown/domain/deck"
	"github.com/luca-patrignani/showdown/domain/poker"
	"github.com/luca-patrignani/showdown/domain/showdown"
	"github.com/luca-patrignani/showdown/ledger"
)

func rankCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rank <hand>",
		Short:   "Classify a hand and list its kickers",
		Example: `  showdown rank "AH KD 9C 7D 4S"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := poker.ParseHand(strings.Join(args, " "))
			if err != nil {
				return err
			}
			desc, err := h.Describe()
			if err != nil {
				a.logger.Warn("reference evaluation failed", "hand", h.String(), "error", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderRank(h, h.Rank(), desc, a.cfg.Plain))
			return nil
		},
	}
}

func compareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <black> <white>",
		Short: "Compare two hands, Black first",
		Example: `  showdown compare "2H 3D 5S 9C KD" "2C 3H 4S 8C AH"
  showdown compare 2H 3D 5S 9C KD 2C 3H 4S 8C AH`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 && len(args) != 2*poker.HandSize {
				return fmt.Errorf("expected 2 quoted hands or %d card tokens, got %d arguments", 2*poker.HandSize, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			blackText, whiteText := splitHands(args)
			black, err := poker.ParseHand(blackText)
			if err != nil {
				return fmt.Errorf("black hand: %w", err)
			}
			white, err := poker.ParseHand(whiteText)
			if err != nil {
				return fmt.Errorf("white hand: %w", err)
			}
			m := showdown.Match{Black: black, White: white}
			fmt.Fprint(cmd.OutOrStdout(), renderMatch(m, m.Play(), a.cfg.Plain))
			return nil
		},
	}
}

func splitHands(args []string) (string, string) {
	if len(args) == 2 {
		return args[0], args[1]
	}
	return strings.Join(args[:poker.HandSize], " "), strings.Join(args[poker.HandSize:], " ")
}

func playCmd(a *app) *cobra.Command {
	var ledgerPath string

	c := &cobra.Command{
		Use:   "play [file]",
		Short: `Play "Black: ... White: ..." lines from a file or stdin`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			source := "stdin"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
				source = args[0]
			}

			matches, err := showdown.ReadMatches(in)
			if err != nil {
				return err
			}
			a.logger.Debug("matches read", "source", source, "count", len(matches))

			if !cmd.Flags().Changed("ledger") {
				ledgerPath = a.cfg.Ledger.Path
			}
			return playMatches(cmd.OutOrStdout(), a, matches, ledger.Metadata{Source: source}, ledgerPath)
		},
	}

	c.Flags().StringVarP(&ledgerPath, "ledger", "l", "", "write a hash-chained JSON ledger of the results to this path")
	return c
}

func dealCmd(a *app) *cobra.Command {
	var (
		seed       string
		rounds     int
		ledgerPath string
	)

	c := &cobra.Command{
		Use:   "deal",
		Short: "Deal random hands to Black and White and play them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Deal.Seed
			}
			if !cmd.Flags().Changed("rounds") {
				rounds = a.cfg.Deal.Rounds
			}
			if !cmd.Flags().Changed("ledger") {
				ledgerPath = a.cfg.Ledger.Path
			}
			if rounds < 1 {
				return fmt.Errorf("rounds must be at least 1, got %d", rounds)
			}

			stream := deck.RandomStream()
			if seed != "" {
				stream = deck.NewSeededStream([]byte(seed))
			}
			d := deck.NewDeck()
			matches := make([]showdown.Match, 0, rounds)
			for i := 0; i < rounds; i++ {
				d.Shuffle(stream)
				black, err := d.DealHand()
				if err != nil {
					return err
				}
				white, err := d.DealHand()
				if err != nil {
					return err
				}
				matches = append(matches, showdown.Match{Black: black, White: white})
			}
			a.logger.Debug("hands dealt", "rounds", rounds, "seeded", seed != "")
			meta := ledger.Metadata{
				Source: "deal",
				Extra:  map[string]string{"rounds": strconv.Itoa(rounds)},
			}
			if seed != "" {
				meta.Extra["seed"] = seed
			}
			return playMatches(cmd.OutOrStdout(), a, matches, meta, ledgerPath)
		},
	}

	c.Flags().StringVarP(&seed, "seed", "s", "", "seed for a reproducible deal")
	c.Flags().IntVarP(&rounds, "rounds", "n", 1, "number of matches to deal")
	c.Flags().StringVarP(&ledgerPath, "ledger", "l", "", "write a hash-chained JSON ledger of the results to this path")
	return c
}

// playMatches prints every match result and, when ledgerPath is set, records
// them in a ledger saved at that path. Every block carries meta.
func playMatches(w io.Writer, a *app, matches []showdown.Match, meta ledger.Metadata, ledgerPath string) error {
	l := ledger.NewLedger()
	for _, m := range matches {
		res := m.Play()
		fmt.Fprint(w, renderMatch(m, res, a.cfg.Plain))
		if _, err := l.Append(ledger.NewRecord(m.Black, m.White, res), meta); err != nil {
			return err
		}
	}
	if ledgerPath == "" {
		return nil
	}
	if err := saveLedger(l, ledgerPath); err != nil {
		return err
	}
	a.logger.Info("ledger written", "path", ledgerPath, "blocks", l.Len(), "head", l.Latest().Hash)
	return nil
}

func verifyCmd(a *app) *cobra.Command {
	var block int

	c := &cobra.Command{
		Use:     "verify <ledger.json>",
		Short:   "Check the hash chain of a ledger and show one of its blocks",
		Example: `  showdown verify results.json --block 1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			// Load refuses a broken chain.
			l, err := ledger.Load(f)
			if err != nil {
				return fmt.Errorf("ledger %s: %w", args[0], err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "ledger ok: %d blocks, head %s\n", l.Len(), l.Latest().Hash)
			a.logger.Debug("ledger verified", "path", args[0], "blocks", l.Len())

			if !cmd.Flags().Changed("block") {
				return nil
			}
			b, err := l.GetByIndex(block)
			if err != nil {
				return err
			}
			fmt.Fprint(w, renderBlock(b))
			return nil
		},
	}

	c.Flags().IntVarP(&block, "block", "b", 0, "print the block at this index")
	return c
}

func saveLedger(l *ledger.Ledger, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create ledger: %w", err)
	}
	if err := l.Save(f); err != nil {
		f.Close()
		return fmt.Errorf("save ledger: %w", err)
	}
	return f.Close()
}
