package model

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type QuizQuestion struct {
	Prompt        string
	CorrectAnswer string
	Options       []string
	Difficulty    string
}

type QuizSession struct {
	ID        string
	Event     EventRecord
	Questions []QuizQuestion
	Answers   map[int]string
	Revealed  bool
}

// Score counts questions whose recorded selection equals the correct answer.
// Unanswered questions never count.
func (s *QuizSession) Score() int {
	score := 0
	for i, q := range s.Questions {
		if answer, ok := s.Answers[i]; ok && answer == q.CorrectAnswer {
			score++
		}
	}
	return score
}
