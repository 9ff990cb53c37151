package handler

type EventResponse struct {
	Text        string `json:"text"`
	Year        int    `json:"year"`
	Type        string `json:"type"`
	ImageURL    string `json:"image_url"`
	PageURL     string `json:"page_url"`
	ReadingTime string `json:"reading_time"`
}

type FeedResponse struct {
	Events  []EventResponse `json:"events"`
	Total   int             `json:"total"`
	Visible int             `json:"visible"`
	Query   string          `json:"query,omitempty"`
	Message string          `json:"message,omitempty"`
}

type QuizRequest struct {
	Text     string `json:"text" binding:"required"`
	Year     *int   `json:"year" binding:"required"`
	Type     string `json:"type"`
	ImageURL string `json:"image_url"`
	PageURL  string `json:"page_url"`
}

type QuestionResponse struct {
	Prompt     string   `json:"prompt"`
	Options    []string `json:"options"`
	Difficulty string   `json:"difficulty,omitempty"`
}

type QuizResponse struct {
	ID            string             `json:"id"`
	Event         EventResponse      `json:"event"`
	Questions     []QuestionResponse `json:"questions"`
	QuestionCount int                `json:"question_count"`
}

type AnswerRequest struct {
	Index  *int   `json:"index" binding:"required"`
	Option string `json:"option" binding:"required"`
}

type ResultQuestionResponse struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Selected      string   `json:"selected,omitempty"`
	Answered      bool     `json:"answered"`
	Correct       bool     `json:"correct"`
}

type RevealResponse struct {
	ID        string                   `json:"id"`
	Score     int                      `json:"score"`
	Total     int                      `json:"total"`
	Questions []ResultQuestionResponse `json:"questions"`
}
