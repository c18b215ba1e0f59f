package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/mockify/internal/client"
	"github.com/mcoot/mockify/internal/model"
)

func newResumeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Screen resumes with the backend's ATS scorer",
	}

	cmd.AddCommand(newResumeAnalyzeCmd())
	cmd.AddCommand(newResumeRankCmd())
	cmd.AddCommand(newResumeHistoryCmd())
	cmd.AddCommand(newResumeClearCmd())

	return cmd
}

func newResumeAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <file>",
		Short: "Get an ATS report for one resume (txt, pdf or docx)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := readResumes("resume", args)
			if err != nil {
				return err
			}

			var report model.ResumeReport
			if err := app.Client.Upload(cmd.Context(), "/resume/analyze", files, nil).Decode(&report); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(report)
			return nil
		},
	}
}

func newResumeRankCmd() *cobra.Command {
	var filters model.RankFilters

	cmd := &cobra.Command{
		Use:   "rank <file>...",
		Short: "Score several resumes against a role and list them best first",
		Long: `Rank scores every resume against the role and filters and prints them best first.
The first --top resumes are shortlisted and kept in the backend's history.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := readResumes("resumes", args)
			if err != nil {
				return err
			}

			prefers := "no"
			if filters.PrefersProjects {
				prefers = "yes"
			}
			fields := map[string]string{
				"role":             filters.Role,
				"main_language":    filters.MainLanguage,
				"candidate_type":   filters.CandidateType,
				"prefers_projects": prefers,
				"exp_years":        strconv.Itoa(filters.ExperienceYears),
				"top_n":            strconv.Itoa(filters.TopN),
			}

			var ranked []model.RankedResume
			if err := app.Client.Upload(cmd.Context(), "/resume/analyze_batch", files, fields).Decode(&ranked); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(RankResult{TopN: filters.TopN, Resumes: ranked})
			return nil
		},
	}

	cmd.Flags().StringVar(&filters.Role, "role", "Any", "Target role")
	cmd.Flags().StringVar(&filters.MainLanguage, "language", "None", "Required main language")
	cmd.Flags().StringVar(&filters.CandidateType, "candidate-type", model.CandidateAny, "Candidate type: any, fresher, professional")
	cmd.Flags().BoolVar(&filters.PrefersProjects, "prefers-projects", false, "Require project work (freshers)")
	cmd.Flags().IntVar(&filters.ExperienceYears, "experience", 0, "Expected years of experience (professionals)")
	cmd.Flags().IntVar(&filters.TopN, "top", model.DefaultRankTopN, "How many resumes to shortlist")

	return cmd
}

func newResumeHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show past resume analyses",
		RunE: func(cmd *cobra.Command, args []string) error {
			var history model.ResumeHistory
			if err := app.Client.Get(cmd.Context(), "/resume/history").Decode(&history); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(history)
			return nil
		},
	}
}

func newResumeClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the resume analysis history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Client.Post(cmd.Context(), "/resume/clear_history", nil).Err(); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage("Resume history cleared")
			return nil
		},
	}
}

// readResumes loads each path as an upload in field
func readResumes(field string, paths []string) ([]client.File, error) {
	files := make([]client.File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read resume: %w", err)
		}
		files = append(files, client.File{Field: field, Name: filepath.Base(p), Data: data})
	}
	return files, nil
}
