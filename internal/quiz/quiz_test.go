package quiz

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBankHasFiveQuestions(t *testing.T) {
	bank := DefaultBank()
	require.Equal(t, 5, bank.Len())
	assert.Contains(t, bank.At(0).Question, "quantum leap")
	for i := 0; i < bank.Len(); i++ {
		assert.NotEmpty(t, bank.At(i).Answer)
	}
}

func TestNextNeverRepeats(t *testing.T) {
	p := NewPresenter(DefaultBank())
	rng := rand.New(rand.NewSource(1))
	seen := map[int]bool{}
	prev := p.Index()
	for i := 0; i < 1000; i++ {
		got := p.Next(rng)
		require.NotEqual(t, prev, got)
		require.GreaterOrEqual(t, got, 0)
		require.Less(t, got, p.Len())
		seen[got] = true
		prev = got
	}
	assert.Len(t, seen, 5, "every question should eventually be drawn")
	assert.Equal(t, 1000, p.Asked())
}

func TestNextWithTwoQuestionsAlternates(t *testing.T) {
	bank, err := NewBank([]Question{{"a?", "a"}, {"b?", "b"}})
	require.NoError(t, err)
	p := NewPresenter(bank)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10; i++ {
		want := 1 - p.Index()
		assert.Equal(t, want, p.Next(rng))
	}
}

func TestNextWithSingleQuestionTerminates(t *testing.T) {
	bank, err := NewBank([]Question{{"only?", "yes"}})
	require.NoError(t, err)
	p := NewPresenter(bank)
	p.ToggleAnswer()
	assert.Equal(t, 0, p.Next(rand.New(rand.NewSource(9))))
	assert.False(t, p.AnswerVisible())
}

func TestNextHidesAnswer(t *testing.T) {
	p := NewPresenter(DefaultBank())
	p.ToggleAnswer()
	require.True(t, p.AnswerVisible())
	p.Next(rand.New(rand.NewSource(5)))
	assert.False(t, p.AnswerVisible())
}

func TestToggleAnswerOnlyFlipsVisibility(t *testing.T) {
	p := NewPresenter(DefaultBank())
	p.ToggleAnswer()
	assert.True(t, p.AnswerVisible())
	assert.Equal(t, 0, p.Index())
	assert.Zero(t, p.Asked())
	p.ToggleAnswer()
	assert.False(t, p.AnswerVisible())
}

func TestNewBankRejectsBadInput(t *testing.T) {
	_, err := NewBank(nil)
	assert.True(t, errors.Is(err, ErrEmptyBank))

	_, err = NewBank([]Question{{Question: "  ", Answer: "x"}})
	assert.Error(t, err)
}

func TestLoadBankYAMLAndJSON(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "bank.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("questions:\n  - question: Q1\n    answer: A1\n"), 0o644))
	jsonPath := filepath.Join(dir, "bank.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"questions":[{"question":"Q1","answer":"A1"},{"question":"Q2","answer":"A2"}]}`), 0o644))

	bank, err := LoadBank(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 1, bank.Len())
	assert.Equal(t, "A1", bank.At(0).Answer)

	bank, err = LoadBank(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 2, bank.Len())
	assert.Equal(t, "Q2", bank.At(1).Question)
}

func TestLoadBankErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadBank(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("questions: []\n"), 0o644))
	_, err = LoadBank(empty)
	assert.True(t, errors.Is(err, ErrEmptyBank))

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0o644))
	_, err = LoadBank(broken)
	assert.Error(t, err)
}
