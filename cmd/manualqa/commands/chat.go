// ABOUTME: Chat command for an interactive question session over a manual PDF
// ABOUTME: Ingests the PDF once, then answers questions from stdin until EOF
package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewChatCmd creates the chat command
func NewChatCmd() *cobra.Command {
	var topK int

	cmd := &cobra.Command{
		Use:   "chat <pdf-path>",
		Short: "Interactive question session over a manual PDF",
		Long: `Ingest a manual PDF once and answer questions interactively.

Type a question and press enter. Type "exit" or "quit" (or press Ctrl-D)
to leave the session. A failed question does not end the session.`,
		Args: cobra.ExactArgs(1),
		Example: `  manualqa chat fm3-21.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(topK)
			if err != nil {
				return err
			}

			if err := ingestPDF(service, args[0], cmd.OutOrStdout()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					break
				}
				question := strings.TrimSpace(scanner.Text())
				if question == "" {
					continue
				}
				if question == "exit" || question == "quit" {
					break
				}

				result, err := service.AskQuestion(question)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
					continue
				}
				renderAnswer(out, result)
				fmt.Fprintln(out)
			}

			return scanner.Err()
		},
	}

	cmd.Flags().IntVarP(&topK, "top-k", "k", 0, "Number of passages to retrieve (default from RETRIEVAL_K)")

	return cmd
}
