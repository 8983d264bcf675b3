package engine

import "fmt"

// Localization keys for templated questions.
const (
	KeyAlgebra     = "Question_Algebra"
	KeyWordProblem = "Question_WordProblem"
	KeyGraph       = "Question_Graph"
)

type generator func(e *Engine) Question

var generators = map[Category]generator{
	Addition:       (*Engine).addition,
	Subtraction:    (*Engine).subtraction,
	Multiplication: (*Engine).multiplication,
	Division:       (*Engine).division,
	Algebra:        (*Engine).algebra,
	ProblemSolving: (*Engine).wordProblem,
	Graphs:         (*Engine).graph,
}

// gradeMultiplier is the base operand range per grade before difficulty
// scaling.
func gradeMultiplier(grade int) int {
	switch grade {
	case 0:
		return 10
	case 1:
		return 15
	case 2:
		return 20
	case 3:
		return 30
	case 4:
		return 50
	default:
		return 100
	}
}

// operands draws the two base operands. b is never zero.
func (e *Engine) operands() (int, int) {
	baseMax := gradeMultiplier(e.player.Grade) + e.difficulty*5
	a := e.between(0, baseMax)
	b := e.between(1, baseMax)
	return a, b
}

func (e *Engine) addition() Question {
	a, b := e.operands()
	return Question{Text: fmt.Sprintf("%d + %d = ?", a, b), Answer: float64(a + b)}
}

// subtraction keeps the draw order, so answers may be negative.
func (e *Engine) subtraction() Question {
	a, b := e.operands()
	return Question{Text: fmt.Sprintf("%d - %d = ?", a, b), Answer: float64(a - b)}
}

// productOperands draws factors from the times table at low grades and
// difficulties, and from a grade-scaled range otherwise.
func (e *Engine) productOperands() (int, int) {
	d := e.difficulty
	if e.player.Grade <= 2 || d <= 3 {
		hi := min(12, 5+d)
		return e.between(1, hi), e.between(1, hi)
	}

	var hi int
	switch e.player.Grade {
	case 3:
		hi = 15 + d*2
	case 4:
		hi = 20 + d*3
	default:
		hi = 30 + d*4
	}
	return e.between(1, hi), e.between(1, hi)
}

func (e *Engine) multiplication() Question {
	a, b := e.productOperands()
	return Question{Text: fmt.Sprintf("%d × %d = ?", a, b), Answer: float64(a * b)}
}

// division shows a×b ÷ b so the quotient is always the whole number a.
func (e *Engine) division() Question {
	a, b := e.productOperands()
	return Question{Text: fmt.Sprintf("%d ÷ %d = ?", a*b, b), Answer: float64(a)}
}

func (e *Engine) algebra() Question {
	d := e.difficulty
	var maxX, maxM, maxB int
	switch e.player.Grade {
	case 3:
		maxX, maxM, maxB = 10+d, 5+d, 10+d
	case 4:
		maxX, maxM, maxB = 15+d*2, 8+d, 20+d*2
	default:
		maxX, maxM, maxB = 20+d*2, 12+d*2, 30+d*3
	}

	x := e.between(1, maxX)
	m := e.between(1, maxM)
	b := e.between(0, maxB)
	y := m*x + b
	return Question{Text: e.template(KeyAlgebra, m, b, y), Answer: float64(x)}
}

func (e *Engine) wordProblem() Question {
	d := e.difficulty
	var maxApples int
	switch e.player.Grade {
	case 3:
		maxApples = 10 + d*2
	case 4:
		maxApples = 20 + d*3
	default:
		maxApples = 30 + d*4
	}

	apples := e.between(3, maxApples)
	eaten := e.between(1, apples)
	return Question{Text: e.template(KeyWordProblem, apples, eaten), Answer: float64(apples - eaten)}
}

// graph asks for the slope of the line through (0, y1) and (x2, y2).
func (e *Engine) graph() Question {
	d := e.difficulty
	maxCoord, maxSlope := 15+d*3, 8+d*2
	if e.player.Grade == 4 {
		maxCoord, maxSlope = 10+d*2, 5+d
	}

	x1 := 0
	y1 := e.between(0, maxCoord)
	x2 := e.between(1, maxCoord)
	slope := e.between(-maxSlope, maxSlope+1)
	y2 := y1 + slope*(x2-x1)
	return Question{Text: e.template(KeyGraph, x1, y1, x2, y2), Answer: float64(slope)}
}
