package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"englishcoach/models"
	"englishcoach/services"
	"englishcoach/viewstate"

	"github.com/spf13/cobra"
)

type practiceFlags struct {
	model       string
	level       string
	topic       string
	writingType string
	tenses      []string
	count       int
}

func newPracticeCmd() *cobra.Command {
	var model string

	practiceCmd := &cobra.Command{
		Use:   "practice",
		Short: "Practice in the terminal",
	}
	practiceCmd.PersistentFlags().StringVarP(&model, "model", "m", "", "model id (default: first configured model)")

	// Each subcommand owns its flags so defaults do not overwrite one another.
	newSub := func(use, short string, run func(*session, *practiceFlags) error) (*cobra.Command, *practiceFlags) {
		f := &practiceFlags{}
		cmd := &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				f.model = model
				return runPractice(cmd, f, run)
			},
		}
		practiceCmd.AddCommand(cmd)
		return cmd, f
	}

	paragraphCmd, pf := newSub("paragraph", "Translate a generated paragraph and get corrections", runParagraph)
	paragraphCmd.Flags().StringVar(&pf.topic, "topic", models.ParagraphTopics[0], "paragraph topic")
	paragraphCmd.Flags().IntVar(&pf.count, "count", 1, "number of paragraphs (1-5)")

	tenseCmd, tf := newSub("tense", "Answer multiple-choice tense questions", runTense)
	tenseCmd.Flags().StringSliceVar(&tf.tenses, "tenses", []string{"Present Simple"}, "comma-separated tense names")
	tenseCmd.Flags().IntVar(&tf.count, "count", models.QuestionCounts[0], "number of questions (1-20)")

	readingCmd, rf := newSub("reading", "Read a passage and answer five questions", runReading)
	readingCmd.Flags().StringVar(&rf.level, "level", models.Levels[0].ID, "beginner, intermediate or advanced")
	readingCmd.Flags().StringVar(&rf.topic, "topic", models.ReadingTopics[0], "passage topic")

	writingCmd, wf := newSub("writing", "Write to a generated prompt and get scored feedback", runWriting)
	writingCmd.Flags().StringVar(&wf.level, "level", models.Levels[0].ID, "beginner, intermediate or advanced")
	writingCmd.Flags().StringVar(&wf.writingType, "type", models.WritingTypes[0], "writing type")
	writingCmd.Flags().StringVar(&wf.topic, "topic", models.WritingTopics[0], "writing topic")

	return practiceCmd
}

// session carries the terminal streams through one practice run.
type session struct {
	cmd      *cobra.Command
	practice *services.Practice
	in       *bufio.Reader
	out      io.Writer
	model    string
}

func (s *session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

// ask prints prompt and reads one trimmed line. EOF yields what was read so far.
func (s *session) ask(prompt string) (string, error) {
	s.printf("%s", prompt)
	line, err := s.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
	case errors.Is(err, io.EOF):
		return "", io.EOF
	default:
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func runPractice(cmd *cobra.Command, f *practiceFlags, run func(*session, *practiceFlags) error) error {
	_, practice, err := loadPractice()
	if err != nil {
		return err
	}
	model := f.model
	if model == "" {
		if list := practice.ListModels(); len(list) > 0 {
			model = list[0].ID
		}
	}
	s := &session{
		cmd:      cmd,
		practice: practice,
		in:       bufio.NewReader(cmd.InOrStdin()),
		out:      cmd.OutOrStdout(),
		model:    model,
	}
	return run(s, f)
}

func runParagraph(s *session, f *practiceFlags) error {
	ctx := s.cmd.Context()
	screen := viewstate.NewParagraphScreen(s.model)
	if err := screen.SetParams(s.model, f.topic, f.count); err != nil {
		return err
	}
	if err := screen.Generate(ctx, s.practice); err != nil {
		return errors.New(screen.Paragraph.Error)
	}
	s.printf("%s\n\n", screen.Paragraph.Value)

	answer, err := s.ask(fmt.Sprintf("Your %s translation (leave empty to see one): ", s.practice.TranslationLanguage()))
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if answer == "" {
		if err := screen.Translate(ctx, s.practice); err != nil {
			return errors.New(screen.Translation.Error)
		}
		s.printf("\n%s\n", screen.Translation.Value)
		return nil
	}

	if err := screen.SetUserTranslation(answer); err != nil {
		return err
	}
	if err := screen.Correct(ctx, s.practice); err != nil {
		return errors.New(screen.Correction.Error)
	}
	s.printf("\n%s\n", screen.Correction.Value)
	return nil
}

func runTense(s *session, f *practiceFlags) error {
	screen := viewstate.NewTenseScreen(s.model)
	if err := screen.SetParams(s.model, f.tenses, f.count); err != nil {
		return err
	}
	if err := screen.Generate(s.cmd.Context(), s.practice); err != nil {
		return errors.New(screen.Questions.Error)
	}
	return s.quiz(screen.Questions.Value, screen.SelectAnswer, screen.CheckAnswers)
}

func runReading(s *session, f *practiceFlags) error {
	screen := viewstate.NewReadingScreen(s.model)
	if err := screen.SetParams(s.model, f.level, f.topic); err != nil {
		return err
	}
	if err := screen.Generate(s.cmd.Context(), s.practice); err != nil {
		return errors.New(screen.Exercise.Error)
	}
	s.printf("%s\n\n", screen.Exercise.Value.Passage)
	return s.quiz(screen.Exercise.Value.Questions, screen.SelectAnswer, screen.CheckAnswers)
}

// quiz asks every question, then prints the score with explanations.
func (s *session) quiz(questions []models.TenseQuestion, selectAnswer func(int, string) error, check func() (models.Score, error)) error {
	for i, q := range questions {
		s.printf("%d. %s\n", i+1, q.Question)
		for _, opt := range q.Options {
			s.printf("   %s\n", opt)
		}
		for {
			answer, err := s.ask("Answer (A-D, empty to skip): ")
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return err
			}
			if answer == "" {
				break
			}
			if err := selectAnswer(i, answer); err != nil {
				s.printf("Please answer with A, B, C or D.\n")
				continue
			}
			break
		}
		s.printf("\n")
	}

	score, err := check()
	if err != nil {
		return err
	}
	for _, r := range score.Results {
		mark := "✗"
		if r.Correct {
			mark = "✓"
		}
		s.printf("%s %d. your answer: %s, correct: %s\n   %s\n", mark, r.Index+1, orDash(r.Answer), r.CorrectAnswer, questions[r.Index].Explanation)
	}
	s.printf("\nScore: %d/%d\n", score.Correct, score.Total)
	return nil
}

func runWriting(s *session, f *practiceFlags) error {
	ctx := s.cmd.Context()
	screen := viewstate.NewWritingScreen(s.model)
	if err := screen.SetParams(s.model, f.level, f.writingType, f.topic); err != nil {
		return err
	}
	if err := screen.GeneratePrompt(ctx, s.practice); err != nil {
		return errors.New(screen.Prompt.Error)
	}

	task := screen.Prompt.Value
	s.printf("%s\n\n%s\n\nRequirements:\n", task.Title, task.Prompt)
	for _, r := range task.Requirements {
		s.printf("  - %s\n", r)
	}
	s.printf("Word count: %s   Time limit: %s\n", task.WordCount, task.TimeLimit)
	for _, tip := range task.Tips {
		s.printf("Tip: %s\n", tip)
	}
	s.printf("\nWrite your text. Finish with a line containing only a single dot.\n")

	var lines []string
	for {
		line, err := s.in.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == "." {
			break
		}
		if line != "" {
			lines = append(lines, trimmed)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("read input: %w", err)
		}
	}
	if err := screen.SetText(strings.Join(lines, "\n")); err != nil {
		return err
	}
	s.printf("(%d words)\n\n", screen.WordCount())

	if err := screen.Evaluate(ctx, s.practice); err != nil {
		return errors.New(screen.Feedback.Error)
	}
	printFeedback(s, screen.Feedback.Value)
	return nil
}

func printFeedback(s *session, fb models.WritingFeedback) {
	s.printf("Overall score: %d/10\n\nStrengths:\n", fb.OverallScore)
	for _, v := range fb.Strengths {
		s.printf("  - %s\n", v)
	}
	s.printf("Improvements:\n")
	for _, v := range fb.Improvements {
		s.printf("  - %s\n", v)
	}
	s.printf("Grammar %d/10\n", fb.Grammar.Score)
	for _, v := range fb.Grammar.Issues {
		s.printf("  - %s\n", v)
	}
	s.printf("Vocabulary %d/10: %s\n", fb.Vocabulary.Score, fb.Vocabulary.Feedback)
	s.printf("Structure %d/10: %s\n", fb.Structure.Score, fb.Structure.Feedback)
	s.printf("Content %d/10: %s\n", fb.Content.Score, fb.Content.Feedback)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
