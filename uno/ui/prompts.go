package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

var drawCommands = map[string]bool{"DRAW": true, "-": true}

// Console reads a human player's choices line by line and re-prompts on text it cannot parse.
type Console struct {
	in      *bufio.Reader
	printer *Printer
}

func NewConsole(in io.Reader, printer *Printer) *Console {
	return &Console{in: bufio.NewReader(in), printer: printer}
}

func (c *Console) promptString(message string) (string, error) {
	for {
		c.printer.Println(message)
		line, err := c.in.ReadString('\n')
		input := strings.TrimSpace(line)
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%v: %w", err, consts.ErrorsInputClosed)
		}
		if input == "" {
			if err != nil {
				return "", consts.ErrorsInputClosed
			}
			c.printer.Println("Invalid text input")
			continue
		}
		return input, nil
	}
}

func (c *Console) promptUppercaseString(message string) (string, error) {
	input, err := c.promptString(message)
	return strings.ToUpper(input), err
}

func (c *Console) SelectCard(gameState game.State, hand []card.Card) (int, bool, error) {
	c.printer.Println(gameState)

	labels := runeSequence{}
	cardOptions := make(map[string]int, len(hand))
	cardSelectionLines := []string{"Your hand:"}
	playable := 0
	for index, handCard := range hand {
		number := strconv.Itoa(index + 1)
		cardOptions[number] = index
		option := number
		if label, ok := labels.next(); ok {
			cardOptions[string(label)] = index
			option = fmt.Sprintf("%s or %s", string(label), number)
		}
		marker := " "
		if game.Playable(handCard, gameState.LastPlayedCard) {
			marker = "*"
			playable++
		}
		cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("%s %s (enter %s)", marker, handCard, option))
	}
	c.printer.Printlns(cardSelectionLines)
	if playable == 0 {
		c.printer.Printfln("None of your cards match %s!", gameState.LastPlayedCard)
	}

	for {
		selectedLabel, err := c.promptUppercaseString("Select a card to play, or 'draw':")
		if err != nil {
			return 0, false, err
		}
		if drawCommands[selectedLabel] {
			return 0, true, nil
		}
		index, found := cardOptions[selectedLabel]
		if !found {
			c.printer.Printfln("No card assigned to '%s'", selectedLabel)
			continue
		}
		return index, false, nil
	}
}

func (c *Console) SelectColor(gameState game.State) (color.Color, error) {
	colorMessage := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
	for {
		colorName, err := c.promptString(colorMessage)
		if err != nil {
			return color.Wild, err
		}
		chosenColor, err := color.ByName(colorName)
		if err != nil {
			c.printer.Printfln("Unknown color '%s'", colorName)
			continue
		}
		return chosenColor, nil
	}
}

func (c *Console) Reject(reason error) {
	c.printer.Println(reason)
}
