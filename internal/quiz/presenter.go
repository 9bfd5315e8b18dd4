package quiz

// Intn is the slice of math/rand the presenter needs.
type Intn interface {
	Intn(n int) int
}

// Presenter tracks the displayed question and whether its answer is shown.
type Presenter struct {
	bank          Bank
	index         int
	answerVisible bool
	asked         int
}

// NewPresenter starts on the first question with the answer hidden.
func NewPresenter(bank Bank) *Presenter {
	return &Presenter{bank: bank}
}

// Current returns the displayed question.
func (p *Presenter) Current() Question {
	return p.bank.At(p.index)
}

// Index returns the position of the displayed question in the bank.
func (p *Presenter) Index() int {
	return p.index
}

// AnswerVisible reports whether the answer is revealed.
func (p *Presenter) AnswerVisible() bool {
	return p.answerVisible
}

// Asked counts the questions drawn with Next.
func (p *Presenter) Asked() int {
	return p.asked
}

// Len returns the size of the underlying bank.
func (p *Presenter) Len() int {
	return p.bank.Len()
}

// Next draws a different question uniformly at random and hides the answer.
// A single-question bank keeps its only question.
func (p *Presenter) Next(rng Intn) int {
	n := p.bank.Len()
	if n > 1 {
		idx := rng.Intn(n - 1)
		if idx >= p.index {
			idx++
		}
		p.index = idx
	}
	p.answerVisible = false
	p.asked++
	return p.index
}

// ToggleAnswer shows or hides the answer.
func (p *Presenter) ToggleAnswer() {
	p.answerVisible = !p.answerVisible
}
