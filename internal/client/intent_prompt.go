package client

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var intentReplyRegex = regexp.MustCompile(`(\d+)\s*\|?\s*(.*)`)

// buildIntentPrompt asks the model to pick one numbered tool and echo the
// car model mentioned in the message. The reply format is kept rigid so it
// can be parsed without a second call.
func buildIntentPrompt(message string, tools []string) string {
	var b strings.Builder
	b.WriteString("You route customer messages for a used car dealership assistant.\n")
	b.WriteString("Available tools:\n")
	for i, tool := range tools {
		fmt.Fprintf(&b, "%d. %s\n", i+1, tool)
	}
	b.WriteString("\nReply with exactly one line: the tool number, a pipe character, ")
	b.WriteString("and the car model mentioned in the message (or the word none).\n")
	b.WriteString("Example: 1|toyota corolla\n\n")
	fmt.Fprintf(&b, "Message: %q\n", message)
	return b.String()
}

// parseIntentReply extracts the tool choice and car name from a model reply.
func parseIntentReply(reply string, tools []string) (Intent, error) {
	matches := intentReplyRegex.FindStringSubmatch(strings.TrimSpace(reply))
	if len(matches) < 3 {
		return Intent{}, fmt.Errorf("unparseable intent reply: %q", reply)
	}

	idx, err := strconv.Atoi(matches[1])
	if err != nil || idx < 1 || idx > len(tools) {
		return Intent{}, fmt.Errorf("intent reply tool number out of range: %q", reply)
	}

	car := strings.TrimSpace(matches[2])
	if strings.EqualFold(car, "none") {
		car = ""
	}

	return Intent{Tool: tools[idx-1], CarName: car}, nil
}
