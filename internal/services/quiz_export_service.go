package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/xuri/excelize/v2"

	"github.com/cosmiclearn/learning-service/internal/models"
)

const quizSheet = "Quiz"

type quizExportService struct {
	ai     AIService
	logger *slog.Logger
}

func NewQuizExportService(ai AIService, logger *slog.Logger) QuizExportService {
	return &quizExportService{ai: ai, logger: logger}
}

func (s *quizExportService) ExportQuiz(ctx context.Context, documentIDs []uint) ([]byte, error) {
	payload, err := s.ai.GenerateQuiz(ctx, documentIDs)
	if err != nil {
		return nil, err
	}

	quiz := s.decodeQuiz(payload)

	data, err := buildQuizWorkbook(&quiz)
	if err != nil {
		return nil, fmt.Errorf("failed to build quiz workbook: %w", err)
	}

	s.logger.Info("Quiz exported", "questions", len(quiz.Questions), "bytes", len(data))
	return data, nil
}

// decodeQuiz reads questions one at a time so a malformed field only blanks
// its own cell. Entries that are not objects are skipped.
func (s *quizExportService) decodeQuiz(payload models.AIPayload) models.Quiz {
	var quiz models.Quiz

	items, ok := payload["questions"].([]interface{})
	if !ok {
		if _, present := payload["questions"]; present {
			s.logger.Warn("Quiz payload questions is not a list")
		}
		return quiz
	}

	for i, item := range items {
		fields, ok := item.(map[string]interface{})
		if !ok {
			s.logger.Warn("Skipping quiz question with unexpected shape", "index", i)
			continue
		}

		q := models.QuizQuestion{CorrectAnswer: -1}
		q.Question, _ = fields["question"].(string)
		if options, ok := fields["options"].([]interface{}); ok {
			for _, opt := range options {
				q.Options = append(q.Options, fmt.Sprint(opt))
			}
		}
		if idx, ok := answerIndex(fields["correctAnswer"], q.Options); ok {
			q.CorrectAnswer = idx
		} else {
			s.logger.Warn("Quiz question has unusable correct answer", "index", i, "value", fields["correctAnswer"])
		}
		quiz.Questions = append(quiz.Questions, q)
	}

	return quiz
}

// answerIndex accepts an option index, a numeric string, an option letter
// or the text of an option.
func answerIndex(v interface{}, options []string) (int, bool) {
	switch a := v.(type) {
	case float64:
		if a == math.Trunc(a) {
			return int(a), true
		}
	case string:
		a = strings.TrimSpace(a)
		if n, err := strconv.Atoi(a); err == nil {
			return n, true
		}
		if len(a) == 1 {
			if c := unicode.ToUpper(rune(a[0])); c >= 'A' && c <= 'Z' {
				return int(c - 'A'), true
			}
		}
		for i, opt := range options {
			if strings.EqualFold(opt, a) {
				return i, true
			}
		}
	}
	return 0, false
}

// buildQuizWorkbook writes one row per question: number, text, one column
// per option and the letter of the correct option.
func buildQuizWorkbook(quiz *models.Quiz) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", quizSheet); err != nil {
		return nil, err
	}

	maxOptions := 0
	for _, q := range quiz.Questions {
		maxOptions = max(maxOptions, len(q.Options))
	}

	header := []interface{}{"No.", "Question"}
	for i := 0; i < maxOptions; i++ {
		header = append(header, "Option "+optionLetter(i))
	}
	header = append(header, "Correct Answer")
	if err := f.SetSheetRow(quizSheet, "A1", &header); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(quizSheet, "A1", lastHeader, bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(quizSheet, "B", "B", 60); err != nil {
		return nil, err
	}

	for i, q := range quiz.Questions {
		row := []interface{}{i + 1, q.Question}
		for j := 0; j < maxOptions; j++ {
			if j < len(q.Options) {
				row = append(row, q.Options[j])
			} else {
				row = append(row, "")
			}
		}
		correct := ""
		if q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options) {
			correct = optionLetter(q.CorrectAnswer)
		}
		row = append(row, correct)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(quizSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func optionLetter(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprint(i + 1)
}
