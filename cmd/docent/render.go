package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/docent"
)

// renderMessage writes a message as it appears in a conversation.
func renderMessage(w io.Writer, msg *docent.Message) {
	switch msg.Role {
	case docent.RoleUser:
		fmt.Fprint(w, "You: ")
		if msg.Content != "" {
			fmt.Fprint(w, msg.Content)
		}
		if a := msg.Attachment; a != nil {
			if msg.Content != "" {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "[%s]", a.Name)
		}
		fmt.Fprintln(w)
	default:
		fmt.Fprintln(w, "Assistant:")
		renderAnswer(w, msg)
	}
}

// renderAnswer writes an assistant message followed by numbered sources.
func renderAnswer(w io.Writer, msg *docent.Message) {
	fmt.Fprintln(w, msg.Content)
	if len(msg.Sources) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sources:")
	for i, s := range msg.Sources {
		fmt.Fprintf(w, "  %d. %s\n", i+1, s)
	}
}
