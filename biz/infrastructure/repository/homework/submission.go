package homework

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission 作业提交，(homework, student) 全局唯一
// MaxScore 和 LatePenalty 在提交时从作业快照冻结，批改时不回读作业当前值
type Submission struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HomeworkID string             `bson:"homework_id" json:"homeworkId"`
	StudentID  string             `bson:"student_id" json:"studentId"`
	ClassID    string             `bson:"class_id" json:"classId"`

	Content     string       `bson:"content" json:"content"`
	Attachments []Attachment `bson:"attachments,omitempty" json:"attachments,omitempty"`
	Notes       string       `bson:"notes,omitempty" json:"notes,omitempty"`

	Status      string    `bson:"status" json:"status"` // submitted/graded
	SubmittedAt time.Time `bson:"submitted_at" json:"submittedAt"`
	IsLate      bool      `bson:"is_late" json:"isLate"`

	// 批改结果
	Score       *int64    `bson:"score,omitempty" json:"score,omitempty"`
	MaxScore    int64     `bson:"max_score" json:"maxScore"`
	Percentage  *int64    `bson:"percentage,omitempty" json:"percentage,omitempty"`
	GradeLetter string    `bson:"grade_letter,omitempty" json:"gradeLetter,omitempty"`
	Feedback    string    `bson:"feedback,omitempty" json:"feedback,omitempty"`
	GradedAt    time.Time `bson:"graded_at,omitempty" json:"gradedAt,omitempty"`
	GradedBy    string    `bson:"graded_by,omitempty" json:"gradedBy,omitempty"`

	AttemptNumber int64  `bson:"attempt_number" json:"attemptNumber"`
	LatePenalty   int64  `bson:"late_penalty" json:"latePenalty"`
	FinalScore    *int64 `bson:"final_score,omitempty" json:"finalScore,omitempty"`

	CreateTime time.Time `bson:"create_time" json:"createTime"`
	UpdateTime time.Time `bson:"update_time" json:"updateTime"`
}
