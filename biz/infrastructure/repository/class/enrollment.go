package class

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enrollment 学生-班级关系记录
// 同一(student, class)只有一行，退班再入班翻转status而不是新建行
type Enrollment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID string             `bson:"student_id" json:"studentId"`
	ClassID   string             `bson:"class_id" json:"classId"`
	Status    string             `bson:"status" json:"status"` // enrolled/completed/dropped/suspended
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`

	EnrolledAt  time.Time `bson:"enrolled_at" json:"enrolledAt"`
	CompletedAt time.Time `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
	DroppedAt   time.Time `bson:"dropped_at,omitempty" json:"droppedAt,omitempty"`

	CreateTime time.Time `bson:"create_time" json:"createTime"`
	UpdateTime time.Time `bson:"update_time" json:"updateTime"`
}
