package class

import (
	"context"
	"errors"
	"time"

	"class-show/biz/infrastructure/config"
	"class-show/biz/infrastructure/consts"
	"class-show/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixEnrollmentCacheKey = "cache:enrollment"
	EnrollmentCollectionName = "student_class"
)

type IEnrollmentMongoMapper interface {
	Insert(ctx context.Context, enrollment *Enrollment) error
	Update(ctx context.Context, enrollment *Enrollment) error
	FindOne(ctx context.Context, id string) (*Enrollment, error)
	FindByStudentAndClass(ctx context.Context, studentID, classID string) (*Enrollment, error)
	FindActiveByStudent(ctx context.Context, studentID string) (*Enrollment, error)
	FindByClassID(ctx context.Context, classID string, page, pageSize int64) ([]*Enrollment, int64, error)
	CountEnrolled(ctx context.Context, classID string) (int64, error)
}

type EnrollmentMongoMapper struct {
	conn *monc.Model
}

func NewEnrollmentMongoMapper(config *config.Config) *EnrollmentMongoMapper {
	log.Info("NewEnrollmentMongoMapper collection: %s", EnrollmentCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, EnrollmentCollectionName, config.Cache)
	// (student, class) 唯一索引，重复入班在数据库层兜底
	_, err := conn.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "student_id", Value: 1}, {Key: "class_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Error("create enrollment index fail: %v", err)
	}
	return &EnrollmentMongoMapper{
		conn: conn,
	}
}

func (m *EnrollmentMongoMapper) Insert(ctx context.Context, enrollment *Enrollment) error {
	if enrollment.ID.IsZero() {
		enrollment.ID = primitive.NewObjectID()
		enrollment.CreateTime = time.Now()
		enrollment.UpdateTime = enrollment.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, enrollment)
	return err
}

func (m *EnrollmentMongoMapper) Update(ctx context.Context, enrollment *Enrollment) error {
	enrollment.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, enrollment.ID, bson.M{"$set": enrollment})
	return err
}

func (m *EnrollmentMongoMapper) FindOne(ctx context.Context, id string) (*Enrollment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var e Enrollment
	err = m.conn.FindOneNoCache(ctx, &e, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &e, nil
}

func (m *EnrollmentMongoMapper) FindByStudentAndClass(ctx context.Context, studentID, classID string) (*Enrollment, error) {
	var e Enrollment
	filter := bson.M{
		"student_id": studentID,
		"class_id":   classID,
	}

	err := m.conn.FindOneNoCache(ctx, &e, filter)
	switch {
	case err == nil:
		return &e, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// FindActiveByStudent 查找学生当前生效的选课记录，任一班级均算
func (m *EnrollmentMongoMapper) FindActiveByStudent(ctx context.Context, studentID string) (*Enrollment, error) {
	var e Enrollment
	filter := bson.M{
		"student_id": studentID,
		"status":     consts.EnrollmentStatusEnrolled,
	}

	err := m.conn.FindOneNoCache(ctx, &e, filter)
	switch {
	case err == nil:
		return &e, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *EnrollmentMongoMapper) FindByClassID(ctx context.Context, classID string, page, pageSize int64) ([]*Enrollment, int64, error) {
	var enrollments []*Enrollment
	filter := bson.M{"class_id": classID}

	// 获取总数
	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	// 分页查询
	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &enrollments, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{"enrolled_at": -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return enrollments, total, nil
}

func (m *EnrollmentMongoMapper) CountEnrolled(ctx context.Context, classID string) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{
		"class_id": classID,
		"status":   consts.EnrollmentStatusEnrolled,
	})
}
