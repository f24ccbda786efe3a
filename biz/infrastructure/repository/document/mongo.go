package document

import (
	"context"
	"time"

	"class-show/biz/infrastructure/config"
	"class-show/biz/infrastructure/consts"
	"class-show/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixDocumentCacheKey = "cache:document"
	DocumentCollectionName = "document"
)

type IMongoMapper interface {
	Insert(ctx context.Context, document *Document) error
	Update(ctx context.Context, document *Document) error
	FindOne(ctx context.Context, id string) (*Document, error)
	FindByClassID(ctx context.Context, classID string, page, pageSize int64) ([]*Document, int64, error)
	FindByTeacher(ctx context.Context, teacherID string, page, pageSize int64) ([]*Document, int64, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewDocumentMongoMapper collection: %s", DocumentCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, DocumentCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, document *Document) error {
	if document.ID.IsZero() {
		document.ID = primitive.NewObjectID()
		document.CreateTime = time.Now()
		document.UpdateTime = document.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, document)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, document *Document) error {
	document.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, document.ID, bson.M{"$set": document})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var d Document
	err = m.conn.FindOneNoCache(ctx, &d, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &d, nil
}

func (m *MongoMapper) FindByClassID(ctx context.Context, classID string, page, pageSize int64) ([]*Document, int64, error) {
	var documents []*Document
	filter := bson.M{"class_id": classID, "is_active": true}

	// 获取总数
	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	// 分页查询
	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &documents, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{"create_time": -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return documents, total, nil
}

func (m *MongoMapper) FindByTeacher(ctx context.Context, teacherID string, page, pageSize int64) ([]*Document, int64, error) {
	var documents []*Document
	filter := bson.M{"teacher_id": teacherID, "is_active": true}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &documents, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{"create_time": -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return documents, total, nil
}
