package models

import (
	"time"

	"gorm.io/datatypes"
)

type Subject struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:200"`
	Description string    `json:"description" gorm:"type:text"`
	Icon        string    `json:"icon" gorm:"size:100"`
	Color       string    `json:"color" gorm:"size:50"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Lecture struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SubjectID uint      `json:"subjectId" gorm:"index"`
	Title     string    `json:"title" gorm:"not null;size:200"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
}

type Assignment struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Title           string     `json:"title" gorm:"not null;size:200"`
	Description     string     `json:"description" gorm:"type:text"`
	Deadline        *time.Time `json:"deadline"`
	Submitted       bool       `json:"submitted"`
	Checked         bool       `json:"checked"`
	PlagiarismScore *int       `json:"plagiarismScore,omitempty"`
	SubjectID       uint       `json:"subjectId" gorm:"index"`
	StudentID       uint       `json:"studentId" gorm:"index"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type Submission struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	AssignmentID    uint      `json:"assignmentId" gorm:"index"`
	StudentID       uint      `json:"studentId" gorm:"index"`
	Content         string    `json:"content" gorm:"type:text"`
	SubmittedAt     time.Time `json:"submittedAt"`
	PlagiarismScore *int      `json:"plagiarismScore,omitempty"`
}

type Document struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Title      string         `json:"title" gorm:"not null;size:200"`
	Type       string         `json:"type" gorm:"size:20"`
	Tags       datatypes.JSON `json:"tags"`
	UploadedAt time.Time      `json:"uploadedAt"`
	TeacherID  uint           `json:"teacherId" gorm:"index"`
	SubjectID  uint           `json:"subjectId" gorm:"index"`
}

type StudentProgress struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	StudentID     uint      `json:"studentId" gorm:"index"`
	SubjectID     uint      `json:"subjectId" gorm:"index"`
	Progress      int       `json:"progress"`
	Attendance    int       `json:"attendance"`
	Participation int       `json:"participation"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (StudentProgress) TableName() string {
	return "student_progress"
}

// AIContent is one stored output of an AI feature.
type AIContent struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Feature    AIFeature      `json:"feature" gorm:"not null;size:40;index"`
	SubjectRef string         `json:"subjectRef" gorm:"size:200"`
	Content    datatypes.JSON `json:"content"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func (AIContent) TableName() string {
	return "ai_generated_content"
}

type ChatSender string

const (
	SenderUser ChatSender = "user"
	SenderAI   ChatSender = "ai"
)

type ChatMessage struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Sender    ChatSender `json:"sender" gorm:"not null;size:10"`
	Content   string     `json:"content" gorm:"type:text"`
	CreatedAt time.Time  `json:"createdAt"`
}
