package models

// LoginRequest is not tag validated: missing fields fail as bad credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string   `json:"username" validate:"required,username"`
	Password string   `json:"password" validate:"required,min=6"`
	Name     string   `json:"name" validate:"omitempty,max=100"`
	Role     UserRole `json:"role" validate:"omitempty,user_role"`
}

type UserEnvelope struct {
	User *User `json:"user"`
}

type CalendarRequest struct {
	StudentID uint `json:"studentId"`
}

// AssistantRequest keeps the question raw so a non-string value can be
// rejected with a clear message.
type AssistantRequest struct {
	Question any `json:"question"`
}

type LectureRequest struct {
	LectureID uint `json:"lectureId"`
}

type HintRequest struct {
	AssignmentID uint `json:"assignmentId"`
	QuestionID   uint `json:"questionId"`
}

type QuizRequest struct {
	DocumentIDs []uint `json:"documentIds"`
}

type PlagiarismRequest struct {
	SubmissionID uint `json:"submissionId"`
}

type SuggestionsRequest struct {
	StudentIDs []uint `json:"studentIds"`
}
