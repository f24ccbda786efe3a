package service

import (
	"context"
	"strings"

	"class-show/biz/adaptor"
	"class-show/biz/application/dto/school"
	"class-show/biz/infrastructure/consts"
	"class-show/biz/infrastructure/repository/class"
	"class-show/biz/infrastructure/repository/user"
	"class-show/biz/infrastructure/util/log"
	pageutil "class-show/biz/infrastructure/util/page"

	"github.com/google/wire"
)

type IClassService interface {
	CreateClass(ctx context.Context, req *school.CreateClassReq) (*school.CreateClassResp, error)
	GetClass(ctx context.Context, req *school.GetClassReq) (*school.GetClassResp, error)
	ListClasses(ctx context.Context, req *school.ListClassesReq) (*school.ListClassesResp, error)
	UpdateClass(ctx context.Context, req *school.UpdateClassReq) (*school.UpdateClassResp, error)
	DeactivateClass(ctx context.Context, req *school.DeactivateClassReq) (*school.DeactivateClassResp, error)
	GetClassMembers(ctx context.Context, req *school.GetClassMembersReq) (*school.GetClassMembersResp, error)
}

type ClassService struct {
	ClassMapper      class.IMongoMapper
	EnrollmentMapper class.IEnrollmentMongoMapper
	UserMapper       user.IMongoMapper
}

var ClassServiceSet = wire.NewSet(
	wire.Struct(new(ClassService), "*"),
	wire.Bind(new(IClassService), new(*ClassService)),
)

// CreateClass 创建班级，管理员或老师可建；指定班主任时校验其角色
func (s *ClassService) CreateClass(ctx context.Context, req *school.CreateClassReq) (*school.CreateClassResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	me, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if me.Role != consts.RoleAdmin && me.Role != consts.RoleTeacher {
		return nil, consts.ErrRoleMismatch
	}

	// 班级代码统一大写，全局唯一
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if _, err := s.ClassMapper.FindOneByCode(ctx, code); err == nil {
		return nil, consts.ErrClassCodeTaken
	}

	homeroomTeacher := req.HomeroomTeacher
	if me.Role == consts.RoleTeacher && homeroomTeacher == "" {
		homeroomTeacher = me.ID.Hex()
	}
	if homeroomTeacher != "" {
		t, err := s.UserMapper.FindOne(ctx, homeroomTeacher)
		if err != nil {
			return nil, consts.ErrNotFound
		}
		if t.Role != consts.RoleTeacher {
			return nil, consts.ErrRoleMismatch
		}
	}

	maxStudents := req.MaxStudents
	if maxStudents <= 0 {
		maxStudents = consts.DefaultMaxStudents
	}

	c := &class.Class{
		Name:            req.Name,
		Code:            code,
		Description:     req.Description,
		HomeroomTeacher: homeroomTeacher,
		MaxStudents:     maxStudents,
		IsActive:        true,
	}
	err = s.ClassMapper.Insert(ctx, c)
	if err != nil {
		log.Error("创建班级失败: %v", err)
		return nil, consts.ErrCreateClass
	}

	// 同步老师的任教班级
	if homeroomTeacher != "" {
		t, err := s.UserMapper.FindOne(ctx, homeroomTeacher)
		if err == nil {
			t.TeachingClass = c.ID.Hex()
			if err := s.UserMapper.Update(ctx, t); err != nil {
				log.Error("更新任教班级失败: %v", err)
			}
		}
	}

	return &school.CreateClassResp{
		ClassId: c.ID.Hex(),
		Code:    c.Code,
	}, nil
}

// GetClass 获取班级详情
func (s *ClassService) GetClass(ctx context.Context, req *school.GetClassReq) (*school.GetClassResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	return &school.GetClassResp{
		Class: s.toClassInfo(ctx, c),
	}, nil
}

// ListClasses 老师看自己的班级，学生看当前班级，管理员看全部
func (s *ClassService) ListClasses(ctx context.Context, req *school.ListClassesReq) (*school.ListClassesResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	me, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}

	page, pageSize := pageutil.ParsePageOpt(req.PaginationOptions)

	switch me.Role {
	case consts.RoleAdmin:
		classes, total, err := s.ClassMapper.FindAll(ctx, page, pageSize)
		if err != nil {
			log.Error("获取班级列表失败: %v", err)
			return nil, consts.ErrGetClassList
		}
		return &school.ListClassesResp{Classes: s.toClassInfos(ctx, classes), Total: total}, nil
	case consts.RoleTeacher:
		classes, total, err := s.ClassMapper.FindByTeacher(ctx, me.ID.Hex(), page, pageSize)
		if err != nil {
			log.Error("获取班级列表失败: %v", err)
			return nil, consts.ErrGetClassList
		}
		return &school.ListClassesResp{Classes: s.toClassInfos(ctx, classes), Total: total}, nil
	default:
		// 学生只返回当前班级
		if me.CurrentClass == "" {
			return &school.ListClassesResp{Classes: []*school.ClassInfo{}, Total: 0}, nil
		}
		c, err := s.ClassMapper.FindOne(ctx, me.CurrentClass)
		if err != nil {
			return nil, consts.ErrGetClassList
		}
		return &school.ListClassesResp{
			Classes: []*school.ClassInfo{s.toClassInfo(ctx, c)},
			Total:   1,
		}, nil
	}
}

// UpdateClass 班主任或管理员修改班级
func (s *ClassService) UpdateClass(ctx context.Context, req *school.UpdateClassReq) (*school.UpdateClassResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	me, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}

	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	if !canModifyClass(me, c) {
		return nil, consts.ErrForbidden
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.HomeroomTeacher != nil {
		t, err := s.UserMapper.FindOne(ctx, *req.HomeroomTeacher)
		if err != nil {
			return nil, consts.ErrNotFound
		}
		if t.Role != consts.RoleTeacher {
			return nil, consts.ErrRoleMismatch
		}
		c.HomeroomTeacher = *req.HomeroomTeacher
	}
	if req.MaxStudents != nil && *req.MaxStudents > 0 {
		c.MaxStudents = *req.MaxStudents
	}

	err = s.ClassMapper.Update(ctx, c)
	if err != nil {
		log.Error("更新班级失败: %v", err)
		return nil, consts.ErrUpdate
	}

	return &school.UpdateClassResp{
		Class: s.toClassInfo(ctx, c),
	}, nil
}

// DeactivateClass 软删除班级
func (s *ClassService) DeactivateClass(ctx context.Context, req *school.DeactivateClassReq) (*school.DeactivateClassResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	me, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}

	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	if !canModifyClass(me, c) {
		return nil, consts.ErrForbidden
	}

	c.IsActive = false
	err = s.ClassMapper.Update(ctx, c)
	if err != nil {
		log.Error("停用班级失败: %v", err)
		return nil, consts.ErrUpdate
	}

	return &school.DeactivateClassResp{}, nil
}

// GetClassMembers 获取班级成员，联表取学生信息
func (s *ClassService) GetClassMembers(ctx context.Context, req *school.GetClassMembersReq) (*school.GetClassMembersResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	page, pageSize := pageutil.ParsePageOpt(req.PaginationOptions)
	enrollments, total, err := s.EnrollmentMapper.FindByClassID(ctx, req.ClassId, page, pageSize)
	if err != nil {
		log.Error("获取班级成员失败: %v", err)
		return nil, consts.ErrGetClassMembers
	}

	memberInfos := make([]*school.ClassMemberInfo, 0, len(enrollments))
	for _, e := range enrollments {
		u, err := s.UserMapper.FindOne(ctx, e.StudentID)
		if err != nil {
			log.Error("获取班级成员信息失败: %v", err)
			continue
		}
		memberInfos = append(memberInfos, &school.ClassMemberInfo{
			UserId:     u.ID.Hex(),
			UserName:   u.FullName(),
			Email:      u.Email,
			Status:     e.Status,
			EnrolledAt: e.EnrolledAt.Unix(),
		})
	}

	return &school.GetClassMembersResp{
		Members: memberInfos,
		Total:   total,
	}, nil
}

// canModifyClass 班级修改权限：管理员或本班班主任
func canModifyClass(u *user.User, c *class.Class) bool {
	if u.Role == consts.RoleAdmin {
		return true
	}
	return u.Role == consts.RoleTeacher && c.HomeroomTeacher == u.ID.Hex()
}

func (s *ClassService) toClassInfo(ctx context.Context, c *class.Class) *school.ClassInfo {
	info := &school.ClassInfo{
		Id:              c.ID.Hex(),
		Name:            c.Name,
		Code:            c.Code,
		Description:     c.Description,
		HomeroomTeacher: c.HomeroomTeacher,
		StudentCount:    int64(len(c.Students)),
		MaxStudents:     c.MaxStudents,
		IsActive:        c.IsActive,
		CreateTime:      c.CreateTime.Unix(),
	}
	if c.HomeroomTeacher != "" {
		if t, err := s.UserMapper.FindOne(ctx, c.HomeroomTeacher); err == nil {
			info.TeacherName = t.FullName()
		}
	}
	return info
}

func (s *ClassService) toClassInfos(ctx context.Context, classes []*class.Class) []*school.ClassInfo {
	infos := make([]*school.ClassInfo, 0, len(classes))
	for _, c := range classes {
		infos = append(infos, s.toClassInfo(ctx, c))
	}
	return infos
}
