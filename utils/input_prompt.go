package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"aiforge/constants/lipgloss"
)

// ConfirmPrompt asks the user to confirm an action on the named target.
// Anything other than y/yes declines.
func ConfirmPrompt(target string, reader *bufio.Reader) (bool, error) {
	fmt.Print(lipgloss.BlueSky.Render(fmt.Sprintf("%s [y/N]: ", target)))

	answer, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, fmt.Errorf("error reading input: %w", err)
	}

	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes", nil
}
