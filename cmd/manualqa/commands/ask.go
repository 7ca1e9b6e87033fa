// ABOUTME: Ask command for one-shot question answering over a manual PDF
// ABOUTME: Ingests the PDF, answers a single question, prints citations
package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	var topK int

	cmd := &cobra.Command{
		Use:   "ask <pdf-path> <question>",
		Short: "Answer one question from a manual PDF",
		Long: `Ingest a manual PDF and answer a single question grounded in its text.

The knowledge base is built fresh for each invocation and discarded when
the command exits.`,
		Args: cobra.MinimumNArgs(2),
		Example: `  # Ask about resupply procedures
  manualqa ask fm3-21.pdf "How do I request resupply?"

  # Retrieve five passages instead of the default three
  manualqa ask --top-k 5 fm3-21.pdf "What is the chain of command?"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(topK)
			if err != nil {
				return err
			}

			if err := ingestPDF(service, args[0], cmd.OutOrStdout()); err != nil {
				return err
			}

			question := strings.Join(args[1:], " ")
			result, err := service.AskQuestion(question)
			if err != nil {
				return err
			}

			renderAnswer(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&topK, "top-k", "k", 0, "Number of passages to retrieve (default from RETRIEVAL_K)")

	return cmd
}
