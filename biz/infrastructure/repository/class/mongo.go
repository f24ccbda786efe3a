package class

import (
	"context"
	"errors"
	"strings"
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
	prefixClassCacheKey = "cache:class"
	ClassCollectionName = "class"
)

type IMongoMapper interface {
	Insert(ctx context.Context, class *Class) error
	Update(ctx context.Context, class *Class) error
	FindOne(ctx context.Context, id string) (*Class, error)
	FindOneByCode(ctx context.Context, code string) (*Class, error)
	FindByTeacher(ctx context.Context, teacherID string, page, pageSize int64) ([]*Class, int64, error)
	FindAll(ctx context.Context, page, pageSize int64) ([]*Class, int64, error)
	AddStudent(ctx context.Context, classID, studentID string) error
	RemoveStudent(ctx context.Context, classID, studentID string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewClassMongoMapper collection: %s", ClassCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, ClassCollectionName, config.Cache)
	// 班级代码唯一索引
	_, err := conn.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Error("create class code index fail: %v", err)
	}
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, class *Class) error {
	if class.ID.IsZero() {
		class.ID = primitive.NewObjectID()
		class.CreateTime = time.Now()
		class.UpdateTime = class.CreateTime
	}
	class.Code = strings.ToUpper(class.Code)
	if class.Students == nil {
		class.Students = []string{}
	}
	_, err := m.conn.InsertOneNoCache(ctx, class)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, class *Class) error {
	class.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, class.ID, bson.M{"$set": class})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var c Class
	err = m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &c, nil
}

func (m *MongoMapper) FindOneByCode(ctx context.Context, code string) (*Class, error) {
	var c Class
	err := m.conn.FindOneNoCache(ctx, &c, bson.M{
		"code": strings.ToUpper(code),
	})
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindByTeacher(ctx context.Context, teacherID string, page, pageSize int64) ([]*Class, int64, error) {
	var classes []*Class
	filter := bson.M{"homeroom_teacher": teacherID}

	// 获取总数
	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	// 分页查询
	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &classes, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{"create_time": -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return classes, total, nil
}

func (m *MongoMapper) FindAll(ctx context.Context, page, pageSize int64) ([]*Class, int64, error) {
	var classes []*Class
	filter := bson.M{}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &classes, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{"create_time": -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return classes, total, nil
}

func (m *MongoMapper) AddStudent(ctx context.Context, classID, studentID string) error {
	oid, err := primitive.ObjectIDFromHex(classID)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{
		"$addToSet": bson.M{"students": studentID},
		"$set":      bson.M{"update_time": time.Now()},
	})
	return err
}

func (m *MongoMapper) RemoveStudent(ctx context.Context, classID, studentID string) error {
	oid, err := primitive.ObjectIDFromHex(classID)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{
		"$pull": bson.M{"students": studentID},
		"$set":  bson.M{"update_time": time.Now()},
	})
	return err
}
