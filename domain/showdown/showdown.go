// Package showdown reads head-to-head matches written as
//
//	Black: 2H 3D 5S 9C KD  White: 2C 3H 4S 8C AH
//
// and plays them with the poker package.
package showdown

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/luca-patrignani/showdown/domain/poker"
)

const (
	blackLabel = "Black:"
	whiteLabel = "White:"
)

// ErrMalformedLine is returned when a line does not name both players.
var ErrMalformedLine = errors.New("malformed showdown line")

// Match pairs the hand played by Black with the hand played by White.
type Match struct {
	Black poker.Hand
	White poker.Hand
}

// Play compares the two hands, Black first.
func (m Match) Play() poker.ComparisonResult {
	return poker.Compare(m.Black, m.White)
}

func (m Match) String() string {
	return blackLabel + " " + m.Black.String() + "  " + whiteLabel + " " + m.White.String()
}

// ParseLine parses a single "Black: ... White: ..." line.
func ParseLine(line string) (Match, error) {
	line = strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(line, blackLabel)
	if !ok {
		return Match{}, fmt.Errorf("%w: expected line to start with %q", ErrMalformedLine, blackLabel)
	}
	blackText, whiteText, ok := strings.Cut(rest, whiteLabel)
	if !ok {
		return Match{}, fmt.Errorf("%w: missing %q", ErrMalformedLine, whiteLabel)
	}

	black, err := poker.ParseHand(blackText)
	if err != nil {
		return Match{}, fmt.Errorf("black hand: %w", err)
	}
	white, err := poker.ParseHand(whiteText)
	if err != nil {
		return Match{}, fmt.Errorf("white hand: %w", err)
	}
	return Match{Black: black, White: white}, nil
}

// ReadMatches parses one match per line. Blank lines and lines starting
// with '#' are skipped. Errors name the 1-based line number.
func ReadMatches(r io.Reader) ([]Match, error) {
	var matches []Match
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		matches = append(matches, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}
