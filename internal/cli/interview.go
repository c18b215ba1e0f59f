package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/mockify/internal/model"
)

func newAskCmd() *cobra.Command {
	var req model.AIRequest

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Ask the AI endpoint for the configured mode for a question",
		Long: `Ask posts to /ai/local when the AI mode is local and /ai/cloud otherwise.
Use --ai-mode or --profile to pick the target.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result AIResult
			if err := app.AIRouter.AskAI(cmd.Context(), req).Decode(&result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Type, "type", "interview_question", "Prompt type")
	cmd.Flags().StringVar(&req.Company, "company", "", "Target company")
	cmd.Flags().StringVar(&req.Role, "role", "", "Role interviewed for")
	cmd.Flags().StringVar(&req.Difficulty, "difficulty", "", "Difficulty: Easy, Medium, Hard")

	return cmd
}

func newInterviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interview",
		Short: "Interview commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Check the backend and fetch the opening question",
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome := app.Bootstrapper.Start(cmd.Context())

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(QuestionResult{
				Connected: outcome.Connected,
				Question:  outcome.Question,
				Error:     outcome.Error,
			})
			return nil
		},
	})

	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var (
		transcriptFile string
		ictx           model.InterviewContext
	)

	cmd := &cobra.Command{
		Use:   "analyze [transcript]",
		Short: "Score an interview transcript",
		Long: `Analyze sends a transcript to /interview/analyze and prints the report.
The transcript is the argument, the contents of --file, or stdin when neither is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transcript, err := readTranscript(cmd, args, transcriptFile)
			if err != nil {
				return err
			}

			var result struct {
				Analysis model.Analysis `json:"analysis"`
			}
			body := map[string]any{"transcript": transcript, "context": ictx}
			if err := app.Client.Post(cmd.Context(), "/interview/analyze", body).Decode(&result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result.Analysis)
			return nil
		},
	}

	cmd.Flags().StringVarP(&transcriptFile, "file", "f", "", "Read the transcript from a file")
	cmd.Flags().StringVar(&ictx.Company, "company", "", "Target company")
	cmd.Flags().StringVar(&ictx.Role, "role", "", "Role interviewed for")
	cmd.Flags().StringVar(&ictx.Round, "round", "", "Interview round")
	cmd.Flags().StringVar(&ictx.Difficulty, "difficulty", "", "Difficulty")

	return cmd
}
