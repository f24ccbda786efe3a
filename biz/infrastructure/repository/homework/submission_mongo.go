package homework

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
	prefixSubmissionCacheKey = "cache:homework_submission"
	SubmissionCollectionName = "homework_submission"
)

type ISubmissionMongoMapper interface {
	Insert(ctx context.Context, submission *Submission) error
	Update(ctx context.Context, submission *Submission) error
	UpdateAttempt(ctx context.Context, submission *Submission, expectAttempt int64) error
	FindOne(ctx context.Context, id string) (*Submission, error)
	FindByStudentAndHomework(ctx context.Context, studentID, homeworkID string) (*Submission, error)
	FindByHomeworkID(ctx context.Context, homeworkID string, page, pageSize int64) ([]*Submission, int64, error)
	FindAllByHomeworkID(ctx context.Context, homeworkID string) ([]*Submission, error)
	FindByStudent(ctx context.Context, studentID, status string, page, pageSize int64) ([]*Submission, int64, error)
	CountByHomeworkID(ctx context.Context, homeworkID string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type SubmissionMongoMapper struct {
	conn *monc.Model
}

func NewSubmissionMongoMapper(config *config.Config) *SubmissionMongoMapper {
	log.Info("NewSubmissionMongoMapper collection: %s", SubmissionCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, SubmissionCollectionName, config.Cache)
	// (homework, student) 唯一索引，并发重复提交由数据库兜底
	_, err := conn.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "homework_id", Value: 1}, {Key: "student_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Error("create submission index fail: %v", err)
	}
	return &SubmissionMongoMapper{
		conn: conn,
	}
}

func (m *SubmissionMongoMapper) Insert(ctx context.Context, submission *Submission) error {
	if submission.ID.IsZero() {
		submission.ID = primitive.NewObjectID()
		submission.CreateTime = time.Now()
		submission.UpdateTime = submission.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, submission)
	if mongo.IsDuplicateKeyError(err) {
		return consts.ErrAttemptsExceeded
	}
	return err
}

func (m *SubmissionMongoMapper) Update(ctx context.Context, submission *Submission) error {
	submission.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, submission.ID, bson.M{"$set": submission})
	return err
}

// UpdateAttempt 重新提交时的乐观更新：只有attempt_number仍等于读取值时才生效，
// 两个并发的重交只会有一个成功
func (m *SubmissionMongoMapper) UpdateAttempt(ctx context.Context, submission *Submission, expectAttempt int64) error {
	submission.UpdateTime = time.Now()
	res, err := m.conn.UpdateOneNoCache(ctx, bson.M{
		consts.ID:        submission.ID,
		"attempt_number": expectAttempt,
	}, bson.M{"$set": submission})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return consts.ErrUpdate
	}
	return nil
}

func (m *SubmissionMongoMapper) FindOne(ctx context.Context, id string) (*Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var s Submission
	err = m.conn.FindOneNoCache(ctx, &s, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &s, nil
}

func (m *SubmissionMongoMapper) FindByStudentAndHomework(ctx context.Context, studentID, homeworkID string) (*Submission, error) {
	var s Submission
	filter := bson.M{
		"student_id":  studentID,
		"homework_id": homeworkID,
	}

	err := m.conn.FindOneNoCache(ctx, &s, filter)
	switch {
	case err == nil:
		return &s, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *SubmissionMongoMapper) FindByHomeworkID(ctx context.Context, homeworkID string, page, pageSize int64) ([]*Submission, int64, error) {
	var submissions []*Submission
	filter := bson.M{"homework_id": homeworkID}

	// 获取总数
	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	// 分页查询
	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &submissions, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{"submitted_at": -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return submissions, total, nil
}

// FindAllByHomeworkID 统计重算与分析接口使用，不分页
func (m *SubmissionMongoMapper) FindAllByHomeworkID(ctx context.Context, homeworkID string) ([]*Submission, error) {
	var submissions []*Submission
	filter := bson.M{"homework_id": homeworkID}

	err := m.conn.Find(ctx, &submissions, filter, &options.FindOptions{
		Sort: bson.M{"submitted_at": 1},
	})
	if err != nil {
		return nil, err
	}

	return submissions, nil
}

func (m *SubmissionMongoMapper) FindByStudent(ctx context.Context, studentID, status string, page, pageSize int64) ([]*Submission, int64, error) {
	var submissions []*Submission
	filter := bson.M{"student_id": studentID}
	if status != "" {
		filter["status"] = status
	}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &submissions, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{"submitted_at": -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return submissions, total, nil
}

func (m *SubmissionMongoMapper) CountByHomeworkID(ctx context.Context, homeworkID string) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{"homework_id": homeworkID})
}

func (m *SubmissionMongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
