package models

type AIFeature string

const (
	FeatureCalendar    AIFeature = "calendar"
	FeatureAssistant   AIFeature = "assistant"
	FeatureMindMap     AIFeature = "mindmap"
	FeatureSummary     AIFeature = "summary"
	FeatureHint        AIFeature = "hint"
	FeatureQuiz        AIFeature = "quiz"
	FeaturePlagiarism  AIFeature = "plagiarism"
	FeatureSuggestions AIFeature = "suggestions"
)

// AIPayload is a JSON object produced by the completion service. It is
// returned to clients as-is; an unusable reply becomes an empty payload.
type AIPayload map[string]any

type AssistantResponse struct {
	Response string `json:"response"`
}

type CalendarEvent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Type        string `json:"type"`
}

type CalendarDay struct {
	Date   int `json:"date"`
	Events []struct {
		Type string `json:"type"`
	} `json:"events"`
}

type Calendar struct {
	Days   []CalendarDay   `json:"days"`
	Events []CalendarEvent `json:"events"`
}

type MindMapNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type MindMapEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type MindMap struct {
	Nodes []MindMapNode `json:"nodes"`
	Edges []MindMapEdge `json:"edges"`
}

type LectureSummary struct {
	KeyPoints []string `json:"keyPoints"`
	Summary   string   `json:"summary"`
}

type Hint struct {
	Hint        string `json:"hint"`
	Explanation string `json:"explanation"`
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
}

type PlagiarismResult struct {
	Score float64 `json:"score"`
}

type TeachingSuggestions struct {
	Suggestions []string `json:"suggestions"`
}
