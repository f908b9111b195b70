package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/openfacepoker/engine/internal/eval"
	"github.com/openfacepoker/engine/internal/state"
)

// InspectCmd validates a JSON state record and pretty prints it.
type InspectCmd struct {
	File     string `kong:"arg,optional,help='Path to a JSON state record (stdin if omitted)'"`
	Sanitize bool   `kong:"help='Omit the deck from output'"`
	JSON     bool   `kong:"help='Emit canonical JSON instead of a rendered view'"`
}

func (c *InspectCmd) Run() error {
	data, err := c.read()
	if err != nil {
		return err
	}

	rec, err := state.Decode(data)
	if err != nil {
		return fmt.Errorf("invalid state record: %w", err)
	}
	if c.Sanitize {
		rec = rec.Sanitized()
	}

	if c.JSON {
		out, err := rec.Encode()
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	printRecord(rec)
	return nil
}

func (c *InspectCmd) read() ([]byte, error) {
	if c.File == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(c.File)
}

func printRecord(rec *state.Record) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("%s, %d players", rec.Variant, rec.PlayerCount)))

	gs := rec.GameState
	fmt.Printf("%s round %d, action %d, first to act %d, next to act %d\n",
		labelStyle.Render("Turn: "), gs.RoundNumber, gs.RoundActionNumber, gs.FirstToAct, gs.NextToAct)
	if len(gs.Deck) > 0 {
		fmt.Printf("%s %d dealt, %d remaining\n",
			labelStyle.Render("Deck: "), gs.DeckPointer, len(gs.Deck)-gs.DeckPointer)
	} else {
		fmt.Printf("%s %s\n", labelStyle.Render("Deck: "), warningStyle.Render("sanitized"))
	}

	for _, key := range sortedKeys(rec.Players) {
		player := rec.Players[key]
		fmt.Println()
		fmt.Printf("%s score %d\n",
			labelStyle.Render(fmt.Sprintf("Player %d:", player.PlayerNumber)), player.Score)
		if len(player.Cards) > 0 {
			fmt.Printf("  holding: %s\n", renderCards(player.Cards))
		}
		if placement, ok := gs.Placements[key]; ok {
			printRow("top   ", placement.TopRow, 3)
			printRow("middle", placement.MiddleRow, 5)
			printRow("bottom", placement.BottomRow, 5)
		}
	}
}

func printRow(name string, codes []string, capacity int) {
	line := fmt.Sprintf("  %s %s", name, renderCards(codes))
	if len(codes) == capacity {
		if class, err := classifyRow(codes); err == nil {
			line += fmt.Sprintf("  (%s)", class)
		}
	}
	fmt.Println(line)
}

func classifyRow(codes []string) (string, error) {
	hand := ""
	for _, code := range codes {
		hand += code
	}
	return eval.ClassifyHand(hand)
}

func sortedKeys(players map[string]state.PlayerRecord) []string {
	keys := make([]string, 0, len(players))
	for key := range players {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.Atoi(keys[i])
		b, _ := strconv.Atoi(keys[j])
		return a < b
	})
	return keys
}
