package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"first_name" json:"firstName"`
	LastName  string             `bson:"last_name" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"` // bcrypt哈希，不参与序列化
	Role      string             `bson:"role" json:"role"`  // admin/teacher/student
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Avatar    string             `bson:"avatar,omitempty" json:"avatar,omitempty"`

	// 班级关系：学生的当前班级、老师的任教班级
	CurrentClass  string `bson:"current_class,omitempty" json:"currentClass,omitempty"`
	TeachingClass string `bson:"teaching_class,omitempty" json:"teachingClass,omitempty"`

	LastLogin  time.Time `bson:"last_login,omitempty" json:"lastLogin"`
	CreateTime time.Time `bson:"create_time" json:"createTime"`
	UpdateTime time.Time `bson:"update_time" json:"updateTime"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
