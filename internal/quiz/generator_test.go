package quiz

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/aldrik-cruze/historical-news/internal/model"
)

func newTestGenerator() *Generator {
	return NewGenerator(rand.New(rand.NewPCG(1, 2)))
}

func apolloEvent() model.EventRecord {
	return model.EventRecord{
		Text: "Apollo 11 successfully landed the first humans on the Moon",
		Year: 1969,
		Type: model.TypeEvent,
	}
}

func findQuestion(t *testing.T, questions []model.QuizQuestion, promptPart string) model.QuizQuestion {
	t.Helper()
	for _, q := range questions {
		if strings.Contains(q.Prompt, promptPart) {
			return q
		}
	}
	t.Fatalf("no question with prompt containing %q", promptPart)
	return model.QuizQuestion{}
}

func assertOptionInvariants(t *testing.T, q model.QuizQuestion) {
	t.Helper()

	if len(q.Options) < 2 || len(q.Options) > 4 {
		t.Errorf("question %q has %d options", q.Prompt, len(q.Options))
	}

	correctCount := 0
	seen := map[string]int{}
	for _, opt := range q.Options {
		seen[opt]++
		if opt == q.CorrectAnswer {
			correctCount++
		}
	}
	if correctCount != 1 {
		t.Errorf("question %q contains correct answer %d times", q.Prompt, correctCount)
	}
	for opt, n := range seen {
		if n > 1 {
			t.Errorf("question %q has duplicate option %q", q.Prompt, opt)
		}
	}
}

func TestGenerate_YearQuestionComesFirst(t *testing.T) {
	questions := newTestGenerator().Generate(apolloEvent())

	first := questions[0]
	assert.Equal(t, "1969", first.CorrectAnswer)
	assert.Equal(t, 4, len(first.Options))
}

func TestGenerate_CenturyAndDecadeFor1969(t *testing.T) {
	questions := newTestGenerator().Generate(apolloEvent())

	century := findQuestion(t, questions, "century")
	assert.Equal(t, "20th century", century.CorrectAnswer)

	decade := findQuestion(t, questions, "decade")
	assert.Equal(t, "1960s", decade.CorrectAnswer)
}

func TestGenerate_AtMostFiveQuestions(t *testing.T) {
	event := model.EventRecord{
		Text: "The Treaty of Versailles was signed in the Hall of Mirrors",
		Year: 1919,
		Type: model.TypeEvent,
	}

	questions := newTestGenerator().Generate(event)

	assert.Equal(t, maxQuestions, len(questions))

	content := findQuestion(t, questions, "kind of action")
	assert.Equal(t, "A treaty or agreement was signed", content.CorrectAnswer)
}

func TestGenerate_ShortTextSkipsBlankButKeepsDateQuestions(t *testing.T) {
	event := model.EventRecord{Text: "Rome sacked again", Year: 455, Type: model.TypeEvent}

	questions := newTestGenerator().Generate(event)

	for _, q := range questions {
		if strings.HasPrefix(q.Prompt, "Fill in the blank") {
			t.Errorf("blank question emitted for %d-word text", len(strings.Fields(event.Text)))
		}
	}

	assert.Equal(t, "455", questions[0].CorrectAnswer)
	findQuestion(t, questions, "century")
	findQuestion(t, questions, "decade")
}

func TestGenerate_NoKeywordMatchOmitsContentQuestion(t *testing.T) {
	event := model.EventRecord{
		Text: "Halley's Comet makes its closest recorded approach to Earth",
		Year: 837,
		Type: model.TypeEvent,
	}

	questions := newTestGenerator().Generate(event)

	for _, q := range questions {
		if strings.Contains(q.Prompt, "kind of action") {
			t.Error("content question emitted without a keyword match")
		}
	}
}

func TestGenerate_OptionInvariantsHoldAcrossEvents(t *testing.T) {
	events := []model.EventRecord{
		apolloEvent(),
		{Text: "The Treaty of Versailles was signed", Year: 1919, Type: model.TypeEvent},
		{Text: "Rome sacked again", Year: 455, Type: model.TypeEvent},
		{Text: "Cleopatra", Year: -30, Type: model.TypeDeath},
		{Text: "x", Year: 0, Type: ""},
		{Text: "The Battle of Hastings decided the English succession", Year: 1066, Type: model.TypeEvent},
	}

	g := newTestGenerator()
	for _, event := range events {
		questions := g.Generate(event)
		if len(questions) == 0 {
			t.Fatalf("no questions for %q", event.Text)
		}
		if len(questions) > maxQuestions {
			t.Fatalf("%d questions for %q", len(questions), event.Text)
		}
		for _, q := range questions {
			assertOptionInvariants(t, q)
		}
	}
}

func TestGenerate_SameSeedSameQuiz(t *testing.T) {
	first := NewGenerator(rand.New(rand.NewPCG(7, 7))).Generate(apolloEvent())
	second := NewGenerator(rand.New(rand.NewPCG(7, 7))).Generate(apolloEvent())

	assert.Equal(t, first, second)
}

func TestGenerate_BlankQuestionBlanksAMeaningfulWord(t *testing.T) {
	event := model.EventRecord{
		Text: "Renegade astronomers quietly mapped distant uncharted galaxies",
		Year: 1923,
		Type: model.TypeEvent,
	}

	questions := newTestGenerator().Generate(event)
	blank := findQuestion(t, questions, "Fill in the blank")

	assert.Equal(t, true, strings.Contains(blank.Prompt, "_____"))
	assert.Equal(t, false, strings.Contains(blank.Prompt, blank.CorrectAnswer))
	if len(blank.CorrectAnswer) <= 4 {
		t.Errorf("blanked word %q too short", blank.CorrectAnswer)
	}
}

func TestBlankWord_WholeWordsOnly(t *testing.T) {
	got := blankWord("Grasslands near the old lands were ceded", "lands")
	assert.Equal(t, "Grasslands near the old _____ were ceded", got)
}

func TestBlankWord_PreservesPunctuation(t *testing.T) {
	got := blankWord("The Treaty of Versailles, signed today", "Versailles")
	assert.Equal(t, "The Treaty of _____, signed today", got)
}

func TestEraFor(t *testing.T) {
	assert.Equal(t, "Ancient", eraFor(-30))
	assert.Equal(t, "Ancient", eraFor(475))
	assert.Equal(t, "Medieval", eraFor(476))
	assert.Equal(t, "Medieval", eraFor(1499))
	assert.Equal(t, "Early Modern", eraFor(1500))
	assert.Equal(t, "Early Modern", eraFor(1799))
	assert.Equal(t, "Modern", eraFor(1800))
	assert.Equal(t, "Modern", eraFor(1944))
	assert.Equal(t, "Contemporary", eraFor(1945))
	assert.Equal(t, "Contemporary", eraFor(2026))
}

func TestClassify(t *testing.T) {
	treaty, ok := classify("The Treaty of Versailles was signed")
	assert.Equal(t, true, ok)
	assert.Equal(t, "treaty", treaty.name)

	battle, ok := classify("The Battle of Hastings")
	assert.Equal(t, true, ok)
	assert.Equal(t, "battle", battle.name)

	founding, ok := classify("The city was founded on seven hills")
	assert.Equal(t, true, ok)
	assert.Equal(t, "founding", founding.name)

	_, ok = classify("Halley's Comet approaches Earth")
	assert.Equal(t, false, ok)
}

func TestOrdinal(t *testing.T) {
	assert.Equal(t, "1st", ordinal(1))
	assert.Equal(t, "2nd", ordinal(2))
	assert.Equal(t, "3rd", ordinal(3))
	assert.Equal(t, "4th", ordinal(4))
	assert.Equal(t, "11th", ordinal(11))
	assert.Equal(t, "12th", ordinal(12))
	assert.Equal(t, "13th", ordinal(13))
	assert.Equal(t, "20th", ordinal(20))
	assert.Equal(t, "21st", ordinal(21))
	assert.Equal(t, "102nd", ordinal(102))
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 19, floorDiv(1968, 100))
	assert.Equal(t, 196, floorDiv(1969, 10))
	assert.Equal(t, -1, floorDiv(-5, 10))
	assert.Equal(t, -1, floorDiv(-100, 101))
	assert.Equal(t, 0, floorDiv(0, 100))
}
