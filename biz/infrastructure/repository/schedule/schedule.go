package schedule

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Schedule 课程表条目，(class, day, period) 唯一
type Schedule struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID string             `bson:"class_id" json:"classId"`
	Day     int64              `bson:"day" json:"day"`       // 1-7
	Period  int64              `bson:"period" json:"period"` // 1-10
	Subject string             `bson:"subject" json:"subject"`
	Room    string             `bson:"room,omitempty" json:"room,omitempty"`

	CreateTime time.Time `bson:"create_time" json:"createTime"`
	UpdateTime time.Time `bson:"update_time" json:"updateTime"`
}
