package engine

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaptenjon/mathquest/internal/i18n"
	"github.com/kaptenjon/mathquest/internal/player"
)

// stubText renders templates as "key:arg,arg,..." so tests can read the
// operands back.
type stubText struct{}

func (stubText) Text(key string, args ...any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return key + ":" + strings.Join(parts, ",")
}

func newTestEngine(t *testing.T, grade int) *Engine {
	t.Helper()
	e := New(&player.Player{}, stubText{}, WithRand(rand.New(rand.NewPCG(1, 2))))
	e.SetPlayer("Test", grade, "")
	return e
}

func templateArgs(t *testing.T, text, key string) []int {
	t.Helper()
	rest, ok := strings.CutPrefix(text, key+":")
	require.True(t, ok, "text %q does not use template %s", text, key)
	var out []int
	for _, f := range strings.Split(rest, ",") {
		n, err := strconv.Atoi(f)
		require.NoError(t, err)
		out = append(out, n)
	}
	return out
}

// binaryOperands splits "a op b = ?" into its parts.
func binaryOperands(t *testing.T, text string) (int, string, int) {
	t.Helper()
	f := strings.Fields(text)
	require.Len(t, f, 5, "unexpected question text %q", text)
	require.Equal(t, "=", f[3])
	require.Equal(t, "?", f[4])
	a, err := strconv.Atoi(f[0])
	require.NoError(t, err)
	b, err := strconv.Atoi(f[2])
	require.NoError(t, err)
	return a, f[1], b
}

func TestGenerate_ArithmeticAnswersMatchText(t *testing.T) {
	ops := map[Category]string{
		Addition:       "+",
		Subtraction:    "-",
		Multiplication: "×",
		Division:       "÷",
	}
	for grade := player.MinGrade; grade <= player.MaxGrade; grade++ {
		for _, d := range []int{1, 4, MaxDifficulty(grade)} {
			e := newTestEngine(t, grade)
			e.difficulty = d
			for c, op := range ops {
				for _, q := range e.Generate(c, 50) {
					a, gotOp, b := binaryOperands(t, q.Text)
					require.Equal(t, op, gotOp)
					assert.Equal(t, c, q.Category)

					var want float64
					switch c {
					case Addition:
						want = float64(a + b)
					case Subtraction:
						want = float64(a - b)
					case Multiplication:
						want = float64(a * b)
					case Division:
						require.NotZero(t, b)
						require.Zero(t, a%b, "division %q is not exact", q.Text)
						want = float64(a / b)
					}
					assert.Equal(t, want, q.Answer, "grade %d difficulty %d: %s", grade, d, q.Text)
				}
			}
		}
	}
}

func TestGenerate_OperandRanges(t *testing.T) {
	e := newTestEngine(t, 0)
	e.difficulty = 2
	base := 10 + 2*5
	for _, q := range e.Generate(Addition, 200) {
		a, _, b := binaryOperands(t, q.Text)
		assert.GreaterOrEqual(t, a, 0)
		assert.Less(t, a, base)
		assert.GreaterOrEqual(t, b, 1)
		assert.Less(t, b, base)
	}

	// Times-table range at low difficulty.
	for _, q := range e.Generate(Multiplication, 200) {
		a, _, b := binaryOperands(t, q.Text)
		assert.GreaterOrEqual(t, a, 1)
		assert.Less(t, a, 7)
		assert.GreaterOrEqual(t, b, 1)
		assert.Less(t, b, 7)
	}
}

func TestGenerate_Algebra(t *testing.T) {
	for _, grade := range []int{3, 4, 5} {
		e := newTestEngine(t, grade)
		e.difficulty = 3
		for _, q := range e.Generate(Algebra, 50) {
			args := templateArgs(t, q.Text, KeyAlgebra)
			require.Len(t, args, 3)
			m, b, y := args[0], args[1], args[2]
			x := int(q.Answer)
			assert.GreaterOrEqual(t, x, 1)
			assert.GreaterOrEqual(t, m, 1)
			assert.GreaterOrEqual(t, b, 0)
			assert.Equal(t, y, m*x+b)
		}
	}
}

func TestGenerate_WordProblem(t *testing.T) {
	e := newTestEngine(t, 3)
	for _, q := range e.Generate(ProblemSolving, 50) {
		args := templateArgs(t, q.Text, KeyWordProblem)
		require.Len(t, args, 2)
		apples, eaten := args[0], args[1]
		assert.GreaterOrEqual(t, apples, 3)
		assert.GreaterOrEqual(t, eaten, 1)
		assert.Less(t, eaten, apples)
		assert.Equal(t, float64(apples-eaten), q.Answer)
	}
}

func TestGenerate_Graph(t *testing.T) {
	for _, grade := range []int{4, 5} {
		e := newTestEngine(t, grade)
		e.difficulty = 2
		maxSlope := 8 + 2*2
		if grade == 4 {
			maxSlope = 5 + 2
		}
		for _, q := range e.Generate(Graphs, 50) {
			args := templateArgs(t, q.Text, KeyGraph)
			require.Len(t, args, 4)
			x1, y1, x2, y2 := args[0], args[1], args[2], args[3]
			slope := int(q.Answer)
			assert.Zero(t, x1)
			assert.GreaterOrEqual(t, x2, 1)
			assert.Equal(t, y2-y1, slope*(x2-x1))
			assert.LessOrEqual(t, slope, maxSlope)
			assert.GreaterOrEqual(t, slope, -maxSlope)
		}
	}
}

func TestGenerateQuestions_Count(t *testing.T) {
	e := newTestEngine(t, 1)
	assert.Empty(t, e.GenerateQuestions("Category_Addition", 0))
	assert.Empty(t, e.GenerateQuestions("Category_Addition", -3))
	assert.Len(t, e.GenerateQuestions("Category_Addition", 4), 4)
	assert.Len(t, e.Generate(Graphs, 1), 1)
}

func TestGenerateQuestions_UnknownKeyFallsBackToAddition(t *testing.T) {
	e := newTestEngine(t, 1)
	for _, q := range e.GenerateQuestions("Category_Geometry", 5) {
		assert.Equal(t, Addition, q.Category)
		_, op, _ := binaryOperands(t, q.Text)
		assert.Equal(t, "+", op)
	}
}

func TestGenerate_LocalizedOperandsUngrouped(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")
	text, err := i18n.NewDefault()
	require.NoError(t, err)

	e := New(&player.Player{}, text, WithRand(rand.New(rand.NewPCG(1, 2))))
	e.SetPlayer("x", 5, "")
	assert.Equal(t, "If y = 12x + 0 and y = 1295, what is x?", e.template(KeyAlgebra, 12, 0, 1295))

	text.SetLanguage("sv")
	assert.Equal(t, "Om y = 12x + 0 och y = 1295, vad är x?", e.template(KeyAlgebra, 12, 0, 1295))
}

func TestGenerate_WithoutTemplaterUsesKey(t *testing.T) {
	e := New(&player.Player{}, nil, WithRand(rand.New(rand.NewPCG(3, 4))))
	e.SetPlayer("x", 3, "")
	q := e.Generate(Algebra, 1)[0]
	assert.Equal(t, KeyAlgebra, q.Text)
}

func TestAdjustDifficulty_ThresholdAndCeiling(t *testing.T) {
	tests := []struct {
		grade     int
		threshold int
		ceiling   int
	}{
		{0, 3, 6},
		{1, 3, 6},
		{2, 2, 8},
		{3, 2, 8},
		{4, 1, 10},
		{5, 1, 10},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("grade%d", tt.grade), func(t *testing.T) {
			e := newTestEngine(t, tt.grade)
			for i := 1; i < tt.threshold; i++ {
				e.AdjustDifficulty(true)
			}
			assert.Equal(t, 1, e.Difficulty(), "difficulty rose before the threshold")
			e.AdjustDifficulty(true)
			assert.Equal(t, 2, e.Difficulty())

			for range 100 {
				e.AdjustDifficulty(true)
			}
			assert.Equal(t, tt.ceiling, e.Difficulty())
			assert.Equal(t, tt.threshold+100, e.Streak())
		})
	}
}

func TestAdjustDifficulty_WrongAnswer(t *testing.T) {
	e := newTestEngine(t, 1)
	e.difficulty, e.streak = 5, 4
	e.AdjustDifficulty(false)
	assert.Equal(t, 3, e.Difficulty())
	assert.Zero(t, e.Streak())

	e.difficulty = 2
	e.AdjustDifficulty(false)
	assert.Equal(t, 1, e.Difficulty(), "difficulty never drops below 1")
	e.AdjustDifficulty(false)
	assert.Equal(t, 1, e.Difficulty())

	e = newTestEngine(t, 3)
	e.difficulty = 5
	e.AdjustDifficulty(false)
	assert.Equal(t, 4, e.Difficulty())
}

func TestBonus(t *testing.T) {
	tests := []struct {
		streak int
		want   int
	}{
		{0, 0}, {2, 0}, {3, 1}, {4, 1}, {5, 2}, {6, 2}, {7, 3}, {20, 3},
	}
	for _, tt := range tests {
		if got := Bonus(tt.streak); got != tt.want {
			t.Errorf("Bonus(%d) = %d, want %d", tt.streak, got, tt.want)
		}
	}
}

func TestBonus_AppliesToStreakAfterAnswer(t *testing.T) {
	e := newTestEngine(t, 2)
	e.AdjustDifficulty(true)
	e.AdjustDifficulty(true)
	require.Equal(t, 2, e.Streak())

	e.AdjustDifficulty(true)
	total := BasePoints + Bonus(e.Streak())
	assert.Equal(t, 2, total)

	unlocked := e.AwardPoints(total)
	assert.Empty(t, unlocked)
	assert.Equal(t, 2, e.Player().Points)
}

func TestAwardPoints_ReturnsUnlocks(t *testing.T) {
	e := newTestEngine(t, 2)
	e.Player().Points = 49
	assert.Equal(t, []string{"avatar_dragon.png"}, e.AwardPoints(1))
}

func TestSetPlayer_ResetsState(t *testing.T) {
	e := newTestEngine(t, 4)
	for range 4 {
		e.AdjustDifficulty(true)
	}
	require.Equal(t, 5, e.Difficulty())

	e.SetPlayer("Other", 9, "avatar_panda.png")
	assert.Equal(t, 1, e.Difficulty())
	assert.Zero(t, e.Streak())
	assert.Equal(t, player.MaxGrade, e.Player().Grade)
	assert.Equal(t, "avatar_panda.png", e.Player().Avatar)
}

func TestCategories(t *testing.T) {
	e := newTestEngine(t, 0)
	assert.Equal(t, []Category{Subtraction, Addition}, e.Categories())

	e.SetPlayer("x", 3, "")
	assert.Equal(t, []Category{Subtraction, Division, Multiplication, Algebra, ProblemSolving}, e.Categories())

	e.SetPlayer("x", 5, "")
	assert.Equal(t, []Category{Division, Multiplication, Algebra, Graphs, ProblemSolving}, e.Categories())

	assert.Nil(t, CategoriesForGrade(7))
}

func TestCategoriesForGrade_ReturnsCopy(t *testing.T) {
	got := CategoriesForGrade(2)
	got[0] = Graphs
	assert.Equal(t, Subtraction, CategoriesForGrade(2)[0])
}

func TestParseCategory(t *testing.T) {
	for _, c := range AllCategories() {
		got, ok := ParseCategory(c.Key())
		require.True(t, ok, c.Key())
		assert.Equal(t, c, got)
	}
	got, ok := ParseCategory("nope")
	assert.False(t, ok)
	assert.Equal(t, Addition, got)
}

func TestQuestionCheck(t *testing.T) {
	q := Question{Answer: 12}
	assert.True(t, q.Check(12))
	assert.True(t, q.Check(12.00005))
	assert.False(t, q.Check(12.001))
	assert.False(t, q.Check(-12))
}

func TestRoll(t *testing.T) {
	e := newTestEngine(t, 0)
	assert.Zero(t, e.Roll(0))
	for range 100 {
		n := e.Roll(3)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 3)
	}
}
