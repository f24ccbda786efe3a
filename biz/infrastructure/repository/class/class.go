package class

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Class struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Code        string             `bson:"code" json:"code"` // 唯一班级代码，统一大写
	Description string             `bson:"description" json:"description"`

	// 班主任与学生名册
	HomeroomTeacher string   `bson:"homeroom_teacher,omitempty" json:"homeroomTeacher,omitempty"`
	Students        []string `bson:"students" json:"students"`

	MaxStudents int64 `bson:"max_students" json:"maxStudents"`
	IsActive    bool  `bson:"is_active" json:"isActive"`

	CreateTime time.Time `bson:"create_time" json:"createTime"`
	UpdateTime time.Time `bson:"update_time" json:"updateTime"`
}
