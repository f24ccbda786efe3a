package service

import (
	"context"

	"class-show/biz/adaptor"
	"class-show/biz/application/dto/school"
	"class-show/biz/infrastructure/consts"
	"class-show/biz/infrastructure/repository/class"
	"class-show/biz/infrastructure/repository/document"
	"class-show/biz/infrastructure/repository/user"
	"class-show/biz/infrastructure/util/log"
	pageutil "class-show/biz/infrastructure/util/page"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
)

type IDocumentService interface {
	CreateDocument(ctx context.Context, req *school.CreateDocumentReq) (*school.CreateDocumentResp, error)
	GetDocument(ctx context.Context, req *school.GetDocumentReq) (*school.GetDocumentResp, error)
	ListDocuments(ctx context.Context, req *school.ListDocumentsReq) (*school.ListDocumentsResp, error)
	ListMyDocuments(ctx context.Context, req *school.ListMyDocumentsReq) (*school.ListMyDocumentsResp, error)
	DeleteDocument(ctx context.Context, req *school.DeleteDocumentReq) (*school.DeleteDocumentResp, error)
}

type DocumentService struct {
	DocumentMapper document.IMongoMapper
	ClassMapper    class.IMongoMapper
	UserMapper     user.IMongoMapper
}

var DocumentServiceSet = wire.NewSet(
	wire.Struct(new(DocumentService), "*"),
	wire.Bind(new(IDocumentService), new(*DocumentService)),
)

// CreateDocument 老师在班级下登记资料，文件本体已在对象存储
func (s *DocumentService) CreateDocument(ctx context.Context, req *school.CreateDocumentReq) (*school.CreateDocumentResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if userMeta.GetRole() == consts.RoleStudent {
		return nil, consts.ErrRoleMismatch
	}

	// 只有本班班主任能上传
	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if userMeta.GetRole() != consts.RoleAdmin && c.HomeroomTeacher != userMeta.GetUserId() {
		return nil, consts.ErrForbidden
	}

	d := &document.Document{
		Title:       req.Title,
		Description: req.Description,
		ClassID:     req.ClassId,
		TeacherID:   userMeta.GetUserId(),
		FileName:    req.FileName,
		FilePath:    req.FilePath,
		FileSize:    req.FileSize,
		MimeType:    req.MimeType,
		IsActive:    true,
	}
	err = s.DocumentMapper.Insert(ctx, d)
	if err != nil {
		log.Error("上传资料失败: %v", err)
		return nil, consts.ErrCreateDocument
	}

	return &school.CreateDocumentResp{
		Document: toDocumentInfo(d),
	}, nil
}

// GetDocument 获取资料详情，已删除的不可见
func (s *DocumentService) GetDocument(ctx context.Context, req *school.GetDocumentReq) (*school.GetDocumentResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	d, err := s.DocumentMapper.FindOne(ctx, req.DocumentId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if !d.IsActive {
		return nil, consts.ErrDocumentUnavailable
	}

	// 学生只能看本班资料，老师只能看自己上传的
	switch userMeta.GetRole() {
	case consts.RoleStudent:
		me, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
		if err != nil {
			return nil, consts.ErrNotFound
		}
		if me.CurrentClass != d.ClassID {
			return nil, consts.ErrForbidden
		}
	case consts.RoleTeacher:
		if d.TeacherID != userMeta.GetUserId() {
			return nil, consts.ErrForbidden
		}
	}

	return &school.GetDocumentResp{
		Document: toDocumentInfo(d),
	}, nil
}

// ListDocuments 按班级列资料
func (s *DocumentService) ListDocuments(ctx context.Context, req *school.ListDocumentsReq) (*school.ListDocumentsResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	// 学生只能列本班资料
	if userMeta.GetRole() == consts.RoleStudent {
		me, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
		if err != nil {
			return nil, consts.ErrNotFound
		}
		if me.CurrentClass != req.ClassId {
			return nil, consts.ErrForbidden
		}
	}

	page, pageSize := pageutil.ParsePageOpt(req.PaginationOptions)
	documents, total, err := s.DocumentMapper.FindByClassID(ctx, req.ClassId, page, pageSize)
	if err != nil {
		log.Error("获取资料列表失败: %v", err)
		return nil, consts.ErrGetDocumentList
	}

	infos := make([]*school.DocumentInfo, 0, len(documents))
	for _, d := range documents {
		infos = append(infos, toDocumentInfo(d))
	}

	return &school.ListDocumentsResp{
		Documents: infos,
		Total:     total,
	}, nil
}

// ListMyDocuments 老师查看自己上传的资料
func (s *DocumentService) ListMyDocuments(ctx context.Context, req *school.ListMyDocumentsReq) (*school.ListMyDocumentsResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if userMeta.GetRole() == consts.RoleStudent {
		return nil, consts.ErrRoleMismatch
	}

	page, pageSize := pageutil.ParsePageOpt(req.PaginationOptions)
	documents, total, err := s.DocumentMapper.FindByTeacher(ctx, userMeta.GetUserId(), page, pageSize)
	if err != nil {
		log.Error("获取资料列表失败: %v", err)
		return nil, consts.ErrGetDocumentList
	}

	infos := make([]*school.DocumentInfo, 0, len(documents))
	for _, d := range documents {
		infos = append(infos, toDocumentInfo(d))
	}

	return &school.ListMyDocumentsResp{
		Documents: infos,
		Total:     total,
	}, nil
}

// DeleteDocument 软删除，只有上传者或管理员可删
func (s *DocumentService) DeleteDocument(ctx context.Context, req *school.DeleteDocumentReq) (*school.DeleteDocumentResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	d, err := s.DocumentMapper.FindOne(ctx, req.DocumentId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if userMeta.GetRole() != consts.RoleAdmin && d.TeacherID != userMeta.GetUserId() {
		return nil, consts.ErrForbidden
	}
	if !d.IsActive {
		return nil, consts.ErrDocumentUnavailable
	}

	d.IsActive = false
	err = s.DocumentMapper.Update(ctx, d)
	if err != nil {
		log.Error("删除资料失败: %v", err)
		return nil, consts.ErrUpdate
	}

	return &school.DeleteDocumentResp{}, nil
}

func toDocumentInfo(d *document.Document) *school.DocumentInfo {
	info := &school.DocumentInfo{}
	_ = copier.Copy(info, d)
	info.Id = d.ID.Hex()
	info.ClassId = d.ClassID
	info.TeacherId = d.TeacherID
	info.CreateTime = d.CreateTime.Unix()
	return info
}
