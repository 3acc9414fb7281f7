package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fadedpez/hanabi/internal/config"
	"github.com/fadedpez/hanabi/internal/logging"
	"github.com/fadedpez/hanabi/pkg/cards"
	"github.com/fadedpez/hanabi/pkg/deck"
)

var (
	cfg    *config.Config
	logger *logging.Logger
)

// paints maps each card color to its terminal rendering
var paints = map[cards.Color]*color.Color{
	cards.Red:    color.New(color.FgRed),
	cards.Green:  color.New(color.FgGreen),
	cards.Blue:   color.New(color.FgBlue),
	cards.White:  color.New(color.FgHiWhite),
	cards.Yellow: color.New(color.FgYellow),
}

// render returns the card's display name painted in its own color
func render(c cards.Card) string {
	if paint, ok := paints[c.Color()]; ok {
		return paint.Sprint(c.Name())
	}
	return c.Name()
}

var rootCmd = &cobra.Command{
	Use:   "hanabi",
	Short: "Inspect and deal fireworks cards",
	Long: `Hanabi is a command-line tool for working with fireworks cards.
It parses card abbreviations like "R1", shows the color set, and deals
shuffled decks.`,
	SilenceUsage: true,
}

var showCmd = &cobra.Command{
	Use:   "show [abbreviation]...",
	Short: "Parse card abbreviations and display them",
	Long: `Show parses one or more card abbreviations and prints each card's
display name and abbreviation.

Examples:
  hanabi show G1
  hanabi show R1 Y4 W5`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed bool
		for _, arg := range args {
			card, err := cards.ParseCard(arg)
			if err != nil {
				logger.LogError(err)
				fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
				failed = true
				continue
			}
			fmt.Printf("%s  (%s)\n", render(card), card.Abbreviation())
		}
		if failed {
			return fmt.Errorf("some abbreviations could not be parsed")
		}
		return nil
	},
}

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the defined colors and their letters",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%d colors, ranks 1..%d:\n", cards.NumberOfColors, cards.RankLimit)
		for _, c := range cards.Colors() {
			name := c.String()
			if paint, ok := paints[c]; ok {
				name = paint.Sprint(name)
			}
			fmt.Printf("  %c  %s\n", c.Letter(), name)
		}
	},
}

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Shuffle a fresh deck and deal a hand",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := cmd.Flags().GetInt("count")
		if err != nil {
			return err
		}
		if n < 1 {
			return fmt.Errorf("count must be at least 1, got %d", n)
		}

		d := deck.New()
		d.Shuffle()
		hand := d.Draw(n)

		logger.Debug("deal %s: drew %d of %d cards", d.ID, len(hand), len(hand)+d.Remaining())

		rendered := make([]string, 0, len(hand))
		for _, card := range hand {
			rendered = append(rendered, render(card))
		}
		fmt.Printf("deal %s: %s\n", d.ID, strings.Join(rendered, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(dealCmd)
}

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	logger = logging.NewLogger(logging.ParseLevel(cfg.LogLevel))
	if cfg.NoColor {
		color.NoColor = true
	}
	dealCmd.Flags().IntP("count", "n", cfg.DealSize, "number of cards to deal")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
