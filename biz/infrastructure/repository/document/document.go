package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Document struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	ClassID     string             `bson:"class_id" json:"classId"`
	TeacherID   string             `bson:"teacher_id" json:"teacherId"`

	// 文件引用，path为对象存储key
	FileName string `bson:"file_name" json:"fileName"`
	FilePath string `bson:"file_path" json:"filePath"`
	FileSize int64  `bson:"file_size,omitempty" json:"fileSize,omitempty"`
	MimeType string `bson:"mime_type,omitempty" json:"mimeType,omitempty"`

	IsActive bool `bson:"is_active" json:"isActive"`

	CreateTime time.Time `bson:"create_time" json:"createTime"`
	UpdateTime time.Time `bson:"update_time" json:"updateTime"`
}
