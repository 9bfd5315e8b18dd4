package quiz

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Question is one trivia card.
type Question struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// Bank is an immutable ordered list of questions.
type Bank struct {
	questions []Question
}

type bankFile struct {
	Questions []Question `yaml:"questions" json:"questions"`
}

// ErrEmptyBank is returned when a question file holds no usable entries.
var ErrEmptyBank = errors.New("quiz: question bank is empty")

//go:embed questions.yaml
var defaultQuestions []byte

// DefaultBank returns the built-in question set.
func DefaultBank() Bank {
	bank, err := parseBank(defaultQuestions, false)
	if err != nil {
		panic(fmt.Sprintf("quiz: built-in bank is invalid: %v", err))
	}
	return bank
}

// NewBank copies questions into a bank. It fails when the list is empty or an
// entry has blank text.
func NewBank(questions []Question) (Bank, error) {
	if len(questions) == 0 {
		return Bank{}, ErrEmptyBank
	}
	cleaned := make([]Question, 0, len(questions))
	for i, q := range questions {
		q.Question = strings.TrimSpace(q.Question)
		q.Answer = strings.TrimSpace(q.Answer)
		if q.Question == "" || q.Answer == "" {
			return Bank{}, fmt.Errorf("quiz: entry %d needs both a question and an answer", i+1)
		}
		cleaned = append(cleaned, q)
	}
	return Bank{questions: cleaned}, nil
}

// LoadBank reads a question bank from a YAML or JSON file, chosen by
// extension.
func LoadBank(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bank{}, fmt.Errorf("read question bank: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	bank, err := parseBank(data, ext == ".json")
	if err != nil {
		return Bank{}, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return bank, nil
}

func parseBank(data []byte, asJSON bool) (Bank, error) {
	var file bankFile
	if asJSON {
		if err := json.Unmarshal(data, &file); err != nil {
			return Bank{}, fmt.Errorf("parse json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Bank{}, fmt.Errorf("parse yaml: %w", err)
		}
	}
	return NewBank(file.Questions)
}

// Len returns the number of questions.
func (b Bank) Len() int {
	return len(b.questions)
}

// At returns the question at index i.
func (b Bank) At(i int) Question {
	return b.questions[i]
}
