package homework

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attachment 附件元信息，路径为对象存储的不透明引用
type Attachment struct {
	Name     string `bson:"name" json:"name"`
	Path     string `bson:"path" json:"path"`
	Size     int64  `bson:"size,omitempty" json:"size,omitempty"`
	MimeType string `bson:"mime_type,omitempty" json:"mimeType,omitempty"`
}

type Homework struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Instructions string             `bson:"instructions,omitempty" json:"instructions,omitempty"`
	ClassID      string             `bson:"class_id" json:"classId"`
	TeacherID    string             `bson:"teacher_id" json:"teacherId"`

	DueDate time.Time `bson:"due_date" json:"dueDate"`
	Status  string    `bson:"status" json:"status"` // draft/published/closed

	Points              int64        `bson:"points" json:"points"`
	AllowLateSubmission bool         `bson:"allow_late_submission" json:"allowLateSubmission"`
	LatePenalty         int64        `bson:"late_penalty" json:"latePenalty"` // 迟交扣分百分比
	MaxAttempts         int64        `bson:"max_attempts" json:"maxAttempts"`
	Attachments         []Attachment `bson:"attachments,omitempty" json:"attachments,omitempty"`

	// 缓存的统计字段，仅作展示参考，分析接口总是从提交行重算
	TotalSubmissions int64 `bson:"total_submissions" json:"totalSubmissions"`
	AverageScore     int64 `bson:"average_score" json:"averageScore"`

	CreateTime time.Time `bson:"create_time" json:"createTime"`
	UpdateTime time.Time `bson:"update_time" json:"updateTime"`
}
