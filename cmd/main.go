package main

import (
	"crypto/cipher"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/pinochle/config"
	"github.com/luca-patrignani/pinochle/domain/deck"
	"github.com/luca-patrignani/pinochle/domain/meld"
	"github.com/luca-patrignani/pinochle/domain/pinochle"
	"github.com/luca-patrignani/pinochle/domain/table"
)

const usage = `usage:
  %[1]s [deal]           deal PINOCHLE_ROUNDS hands to four players and show their meld
  %[1]s meld <cards...>  show the meld of the given cards, e.g. %[1]s meld JD QS KH QH
`

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Create a new slog handler with the PTerm logger at the configured level
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(cfg.LogLevel)))
	logger := slog.New(handler)

	ev := meld.NewEvaluator(
		meld.WithRules(cfg.Rules),
		meld.WithTracer(meld.LogTracer(logger)),
	)

	args := os.Args[1:]
	mode := "deal"
	if len(args) > 0 {
		mode, args = args[0], args[1:]
	}
	switch mode {
	case "deal":
		printBanner()
		err = playRounds(cfg, ev, logger)
	case "meld":
		err = showMeld(ev, args)
	default:
		fmt.Fprintf(os.Stderr, usage, os.Args[0])
		os.Exit(2)
	}
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func printBanner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("inochle", pterm.FgDarkGray.ToStyle()),
	).Render()
}

func playRounds(cfg config.Config, ev meld.Evaluator, logger *slog.Logger) error {
	tb, err := table.New(cfg.Players)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("Playing %d round(s) with %s rules", cfg.Rounds, cfg.Rules.Name)
	for round := 1; round <= cfg.Rounds; round++ {
		logger.Info("Starting a new deal", "round", round, "dealer", tb.Players[tb.Dealer].Name)

		spinner, _ := pterm.DefaultSpinner.Start("Shuffling the cards ...")
		d := deck.New()
		d.Shuffle(shuffleStream(cfg.Seed, round))
		spinner.Success()

		spinner, _ = pterm.DefaultSpinner.Start("Dealing the hands ...")
		if err := tb.Deal(d, table.PacketSize); err != nil {
			spinner.Fail()
			return err
		}
		spinner.Success()

		melds, err := tb.EvaluateMeld(ev)
		if err != nil {
			return err
		}
		credited := tb.ScoreMeld(melds)
		if err := printTable(tb, melds, credited); err != nil {
			return err
		}
		tb.NextDealer()
	}
	return nil
}

// shuffleStream returns a random stream, or a stream derived from seed and
// round when a seed is configured so that every round of a replay differs.
func shuffleStream(seed string, round int) cipher.Stream {
	if seed == "" {
		return deck.RandomStream()
	}
	return deck.SeededStream([]byte(fmt.Sprintf("%s/%d", seed, round)))
}

func showMeld(ev meld.Evaluator, args []string) error {
	if len(args) == 0 {
		return errors.New("no cards given")
	}
	cards, err := pinochle.ParseCards(strings.Join(args, " "))
	if err != nil {
		return err
	}
	res, err := ev.Evaluate(cards)
	if err != nil {
		return err
	}
	hand, err := pinochle.NewHand(cards...)
	if err != nil {
		return err
	}
	panel, err := getMeldPanel("|MELD|", hand.Snapshot(), res, true)
	if err != nil {
		return err
	}
	return pterm.DefaultPanel.WithPanels([][]pterm.Panel{{panel}}).Render()
}

func ptermLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case l <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case l <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
