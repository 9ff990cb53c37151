package quiz

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/aldrik-cruze/historical-news/internal/model"
)

const maxQuestions = 5

// Generator synthesizes multiple-choice questions from a single event
// record using layered text heuristics. It never fails: heuristics that
// cannot derive an answer are skipped, and the year question is always
// derivable, so the result is never empty.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator takes an explicit source so callers (and tests) control
// option order and distractor offsets.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

func (g *Generator) Generate(event model.EventRecord) []model.QuizQuestion {
	g.mu.Lock()
	defer g.mu.Unlock()

	questions := []model.QuizQuestion{
		g.yearQuestion(event),
		g.centuryQuestion(event),
		g.decadeQuestion(event),
		g.eraQuestion(event),
	}
	if q, ok := g.contentQuestion(event); ok {
		questions = append(questions, q)
	}
	if q, ok := g.blankQuestion(event); ok {
		questions = append(questions, q)
	}
	if q, ok := g.typeQuestion(event); ok {
		questions = append(questions, q)
	}

	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions
}

func (g *Generator) yearQuestion(event model.EventRecord) model.QuizQuestion {
	correct := strconv.Itoa(event.Year)

	used := map[string]struct{}{correct: {}}
	distractors := make([]string, 0, 3)
	for len(distractors) < 3 {
		delta := 10 + g.rng.IntN(31)
		if g.rng.IntN(2) == 0 {
			delta = -delta
		}
		candidate := strconv.Itoa(event.Year + delta)
		if _, taken := used[candidate]; taken {
			continue
		}
		used[candidate] = struct{}{}
		distractors = append(distractors, candidate)
	}

	return g.assemble(
		fmt.Sprintf("In which year did the event %q occur?", event.Text),
		correct, distractors, model.DifficultyEasy,
	)
}

func (g *Generator) centuryQuestion(event model.EventRecord) model.QuizQuestion {
	century := floorDiv(event.Year-1, 100) + 1
	correct := ordinal(century) + " century"
	distractors := []string{
		ordinal(century+1) + " century",
		ordinal(century-1) + " century",
		ordinal(century-2) + " century",
	}

	return g.assemble(
		fmt.Sprintf("In which century did %q take place?", event.Text),
		correct, distractors, model.DifficultyMedium,
	)
}

func (g *Generator) decadeQuestion(event model.EventRecord) model.QuizQuestion {
	decade := floorDiv(event.Year, 10) * 10
	correct := strconv.Itoa(decade) + "s"
	distractors := []string{
		strconv.Itoa(decade-10) + "s",
		strconv.Itoa(decade+10) + "s",
		strconv.Itoa(decade+20) + "s",
	}

	return g.assemble(
		fmt.Sprintf("The event %q happened in which decade?", event.Text),
		correct, distractors, model.DifficultyEasy,
	)
}

func (g *Generator) eraQuestion(event model.EventRecord) model.QuizQuestion {
	correct := eraFor(event.Year)

	rest := make([]string, 0, 4)
	for _, label := range eraLabels() {
		if label != correct {
			rest = append(rest, label)
		}
	}
	g.rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })

	return g.assemble(
		fmt.Sprintf("Which historical era does %q belong to?", event.Text),
		correct, rest[:3], model.DifficultyMedium,
	)
}

func (g *Generator) contentQuestion(event model.EventRecord) (model.QuizQuestion, bool) {
	matched, ok := classify(event.Text)
	if !ok {
		return model.QuizQuestion{}, false
	}

	others := make([]string, 0, len(eventCategories)-1)
	for _, c := range eventCategories {
		if c.name != matched.name {
			others = append(others, c.answer)
		}
	}
	g.rng.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })

	q := g.assemble(
		"What kind of action occurred in this event?",
		matched.answer, others[:3], model.DifficultyMedium,
	)
	return q, true
}

func (g *Generator) blankQuestion(event model.EventRecord) (model.QuizQuestion, bool) {
	words := strings.Fields(event.Text)
	if len(words) < 5 {
		return model.QuizQuestion{}, false
	}

	candidates := make([]string, 0, 3)
	for _, word := range words {
		trimmed := strings.Trim(word, `.,;:()"'`)
		if len(trimmed) <= 4 || !isAlphabetic(trimmed) {
			continue
		}
		if _, stop := stopWords[strings.ToLower(trimmed)]; stop {
			continue
		}
		candidates = append(candidates, trimmed)
		if len(candidates) == 3 {
			break
		}
	}
	if len(candidates) == 0 {
		return model.QuizQuestion{}, false
	}

	correct := candidates[g.rng.IntN(len(candidates))]
	blanked := blankWord(event.Text, correct)

	distractors := make([]string, 0, len(actionVerbs))
	for _, verb := range actionVerbs {
		if !strings.EqualFold(verb, correct) {
			distractors = append(distractors, verb)
		}
	}
	g.rng.Shuffle(len(distractors), func(i, j int) { distractors[i], distractors[j] = distractors[j], distractors[i] })

	q := g.assemble(
		"Fill in the blank: "+blanked,
		correct, distractors[:3], model.DifficultyHard,
	)
	return q, true
}

func (g *Generator) typeQuestion(event model.EventRecord) (model.QuizQuestion, bool) {
	if event.Type == "" {
		return model.QuizQuestion{}, false
	}

	distractors := make([]string, 0, 2)
	for _, kind := range []string{model.TypeEvent, model.TypeBirth, model.TypeDeath} {
		if kind != event.Type {
			distractors = append(distractors, kind)
		}
	}

	q := g.assemble(
		fmt.Sprintf("What kind of record is %q?", event.Text),
		event.Type, distractors, model.DifficultyEasy,
	)
	return q, true
}

// assemble enforces the option invariants: the correct answer appears
// exactly once, no duplicate strings, 2-4 options, shuffled order.
func (g *Generator) assemble(prompt, correct string, distractors []string, difficulty string) model.QuizQuestion {
	options := []string{correct}
	seen := map[string]struct{}{correct: {}}
	for _, d := range distractors {
		if len(options) == 4 {
			break
		}
		if _, dup := seen[d]; dup || d == "" {
			continue
		}
		seen[d] = struct{}{}
		options = append(options, d)
	}

	g.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return model.QuizQuestion{
		Prompt:        prompt,
		CorrectAnswer: correct,
		Options:       options,
		Difficulty:    difficulty,
	}
}

// blankWord replaces the first whole-word occurrence of word, keeping any
// surrounding punctuation. A plain substring replace would blank inside a
// longer word ("lands" in "Grasslands").
func blankWord(text, word string) string {
	fields := strings.Fields(text)
	for i, field := range fields {
		if strings.Trim(field, `.,;:()"'`) == word {
			fields[i] = strings.Replace(field, word, "_____", 1)
			break
		}
	}
	return strings.Join(fields, " ")
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ordinal(n int) string {
	suffix := "th"
	abs := n
	if abs < 0 {
		abs = -abs
	}
	if abs%100 < 11 || abs%100 > 13 {
		switch abs % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

func isAlphabetic(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(word) > 0
}
