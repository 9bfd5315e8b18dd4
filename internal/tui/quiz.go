package tui

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/fotoquantum/internal/content"
	"github.com/csheth/fotoquantum/internal/quiz"
)

type quizModel struct {
	presenterDeps
	quiz *quiz.Presenter
	rng  quiz.Intn
}

func newQuizModel(deps presenterDeps, bank quiz.Bank, rng quiz.Intn) *quizModel {
	return &quizModel{presenterDeps: deps, quiz: quiz.NewPresenter(bank), rng: rng}
}

func (m *quizModel) Mode() content.Mode     { return content.ModeQuiz }
func (m *quizModel) Init() tea.Cmd          { return nil }
func (m *quizModel) Handle(tea.Msg) tea.Cmd { return nil }
func (m *quizModel) Close()                 {}

func (m *quizModel) Actions() []action {
	return []action{actionNextQuestion, actionToggleAnswer}
}

func (m *quizModel) Available(action) bool { return true }

func (m *quizModel) Do(a action) tea.Cmd {
	switch a {
	case actionNextQuestion:
		idx := m.quiz.Next(m.rng)
		m.metrics.QuestionDrawn()
		log.Printf("[quiz] %s drew question %d of %d", shortID(m.id), idx+1, m.quiz.Len())
	case actionToggleAnswer:
		m.quiz.ToggleAnswer()
		if m.quiz.AnswerVisible() {
			m.metrics.AnswerRevealed()
		}
	}
	return nil
}

func (m *quizModel) Stats() []string {
	return []string{
		fmt.Sprintf("Question %d/%d", m.quiz.Index()+1, m.quiz.Len()),
		fmt.Sprintf("Drawn %s", humanize.Comma(int64(m.quiz.Asked()))),
	}
}

func (m *quizModel) View(l pageLayout) string {
	width := l.wrapWidth(6)
	q := m.quiz.Current()
	parts := []string{
		sectionHeaderStyle.Render("QUANTUM QUIZ"),
		"",
		questionStyle.Render(wordwrap.String(fmt.Sprintf("%q", q.Question), width)),
	}
	toggle := "show answer"
	if m.quiz.AnswerVisible() {
		toggle = "hide answer"
		parts = append(parts, "", answerBoxStyle.Render(wordwrap.String(q.Answer, width-4)))
	}
	parts = append(parts,
		"",
		helperStyle.Render(indentMultiline(fmt.Sprintf("n: new question   a: %s", toggle), "  ")),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
