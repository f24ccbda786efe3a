package service

import (
	"context"
	"time"

	"class-show/biz/adaptor"
	"class-show/biz/application/dto/school"
	"class-show/biz/infrastructure/consts"
	"class-show/biz/infrastructure/repository/class"
	"class-show/biz/infrastructure/repository/user"
	"class-show/biz/infrastructure/util/log"
	pageutil "class-show/biz/infrastructure/util/page"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IEnrollmentService interface {
	EnrollStudent(ctx context.Context, req *school.EnrollStudentReq) (*school.EnrollStudentResp, error)
	TransferStudent(ctx context.Context, req *school.TransferStudentReq) (*school.TransferStudentResp, error)
	UpdateEnrollment(ctx context.Context, req *school.UpdateEnrollmentReq) (*school.UpdateEnrollmentResp, error)
	GetEnrollment(ctx context.Context, req *school.GetEnrollmentReq) (*school.GetEnrollmentResp, error)
	ListEnrollments(ctx context.Context, req *school.ListEnrollmentsReq) (*school.ListEnrollmentsResp, error)
}

type EnrollmentService struct {
	EnrollmentMapper class.IEnrollmentMongoMapper
	ClassMapper      class.IMongoMapper
	UserMapper       user.IMongoMapper
}

var EnrollmentServiceSet = wire.NewSet(
	wire.Struct(new(EnrollmentService), "*"),
	wire.Bind(new(IEnrollmentService), new(*EnrollmentService)),
)

// EnrollStudent 学生入班
// 校验顺序：存在性 -> 角色 -> 已在班 -> 容量，退班记录翻转回enrolled而不是新建行
func (s *EnrollmentService) EnrollStudent(ctx context.Context, req *school.EnrollStudentReq) (*school.EnrollStudentResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if userMeta.GetRole() == consts.RoleStudent {
		return nil, consts.ErrForbidden
	}

	student, err := s.UserMapper.FindOne(ctx, req.StudentId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if student.Role != consts.RoleStudent {
		return nil, consts.ErrRoleMismatch
	}

	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if !c.IsActive {
		return nil, consts.ErrNotFound
	}

	// 任一班级有生效记录都不允许再入班
	if active, err := s.EnrollmentMapper.FindActiveByStudent(ctx, req.StudentId); err == nil {
		if active.ClassID == req.ClassId {
			return nil, consts.ErrAlreadyInClass
		}
		return nil, consts.ErrAlreadyEnrolled
	}

	enrolled, err := s.EnrollmentMapper.CountEnrolled(ctx, req.ClassId)
	if err != nil {
		log.Error("统计班级人数失败: %v", err)
		return nil, consts.ErrEnroll
	}
	if enrolled >= c.MaxStudents {
		return nil, consts.ErrCapacityExceeded
	}

	now := time.Now()
	var enrollment *class.Enrollment
	if old, err := s.EnrollmentMapper.FindByStudentAndClass(ctx, req.StudentId, req.ClassId); err == nil {
		// 历史记录翻转
		old.Status = consts.EnrollmentStatusEnrolled
		old.EnrolledAt = now
		old.DroppedAt = time.Time{}
		old.CompletedAt = time.Time{}
		if req.Notes != "" {
			old.Notes = req.Notes
		}
		if err := s.EnrollmentMapper.Update(ctx, old); err != nil {
			log.Error("入班失败: %v", err)
			return nil, consts.ErrEnroll
		}
		enrollment = old
	} else {
		enrollment = &class.Enrollment{
			StudentID:  req.StudentId,
			ClassID:    req.ClassId,
			Status:     consts.EnrollmentStatusEnrolled,
			Notes:      req.Notes,
			EnrolledAt: now,
		}
		if err := s.EnrollmentMapper.Insert(ctx, enrollment); err != nil {
			log.Error("入班失败: %v", err)
			return nil, consts.ErrEnroll
		}
	}

	// 同步用户档案与班级花名册，失败只记日志
	if err := s.UserMapper.SetCurrentClass(ctx, req.StudentId, req.ClassId); err != nil {
		log.Error("更新当前班级失败: %v", err)
	}
	if err := s.ClassMapper.AddStudent(ctx, req.ClassId, req.StudentId); err != nil {
		log.Error("更新班级花名册失败: %v", err)
	}

	return &school.EnrollStudentResp{
		Enrollment: s.toEnrollmentInfo(ctx, enrollment),
	}, nil
}

// TransferStudent 转班：先校验目标班级容量，再退旧班入新班
func (s *EnrollmentService) TransferStudent(ctx context.Context, req *school.TransferStudentReq) (*school.TransferStudentResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if userMeta.GetRole() == consts.RoleStudent {
		return nil, consts.ErrForbidden
	}

	student, err := s.UserMapper.FindOne(ctx, req.StudentId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if student.Role != consts.RoleStudent {
		return nil, consts.ErrRoleMismatch
	}

	newClass, err := s.ClassMapper.FindOne(ctx, req.NewClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if !newClass.IsActive {
		return nil, consts.ErrNotFound
	}

	active, err := s.EnrollmentMapper.FindActiveByStudent(ctx, req.StudentId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if active.ClassID == req.NewClassId {
		return nil, consts.ErrAlreadyInClass
	}

	// 容量校验在任何改动之前，失败时旧班记录保持不变
	enrolled, err := s.EnrollmentMapper.CountEnrolled(ctx, req.NewClassId)
	if err != nil {
		log.Error("统计班级人数失败: %v", err)
		return nil, consts.ErrTransfer
	}
	if enrolled >= newClass.MaxStudents {
		return nil, consts.ErrCapacityExceeded
	}

	now := time.Now()
	oldClassID := active.ClassID
	// 原班级按结业处理，保留记录
	active.Status = consts.EnrollmentStatusCompleted
	active.CompletedAt = now
	if err := s.EnrollmentMapper.Update(ctx, active); err != nil {
		log.Error("退出原班级失败: %v", err)
		return nil, consts.ErrTransfer
	}

	var enrollment *class.Enrollment
	if old, err := s.EnrollmentMapper.FindByStudentAndClass(ctx, req.StudentId, req.NewClassId); err == nil {
		old.Status = consts.EnrollmentStatusEnrolled
		old.EnrolledAt = now
		old.DroppedAt = time.Time{}
		old.CompletedAt = time.Time{}
		if req.Notes != "" {
			old.Notes = req.Notes
		}
		if err := s.EnrollmentMapper.Update(ctx, old); err != nil {
			log.Error("转班失败: %v", err)
			return nil, consts.ErrTransfer
		}
		enrollment = old
	} else {
		enrollment = &class.Enrollment{
			StudentID:  req.StudentId,
			ClassID:    req.NewClassId,
			Status:     consts.EnrollmentStatusEnrolled,
			Notes:      req.Notes,
			EnrolledAt: now,
		}
		if err := s.EnrollmentMapper.Insert(ctx, enrollment); err != nil {
			log.Error("转班失败: %v", err)
			return nil, consts.ErrTransfer
		}
	}

	if err := s.UserMapper.SetCurrentClass(ctx, req.StudentId, req.NewClassId); err != nil {
		log.Error("更新当前班级失败: %v", err)
	}
	if err := s.ClassMapper.RemoveStudent(ctx, oldClassID, req.StudentId); err != nil {
		log.Error("更新班级花名册失败: %v", err)
	}
	if err := s.ClassMapper.AddStudent(ctx, req.NewClassId, req.StudentId); err != nil {
		log.Error("更新班级花名册失败: %v", err)
	}

	return &school.TransferStudentResp{
		Enrollment: s.toEnrollmentInfo(ctx, enrollment),
	}, nil
}

// UpdateEnrollment 修改选课状态，dropped/completed时清理用户档案与花名册
func (s *EnrollmentService) UpdateEnrollment(ctx context.Context, req *school.UpdateEnrollmentReq) (*school.UpdateEnrollmentResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if userMeta.GetRole() == consts.RoleStudent {
		return nil, consts.ErrForbidden
	}

	validStatuses := []string{
		consts.EnrollmentStatusEnrolled,
		consts.EnrollmentStatusCompleted,
		consts.EnrollmentStatusDropped,
		consts.EnrollmentStatusSuspended,
	}
	if !lo.Contains(validStatuses, req.Status) {
		return nil, consts.ErrInvalidParams
	}

	e, err := s.EnrollmentMapper.FindOne(ctx, req.EnrollmentId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	now := time.Now()
	e.Status = req.Status
	if req.Notes != "" {
		e.Notes = req.Notes
	}
	switch req.Status {
	case consts.EnrollmentStatusDropped:
		e.DroppedAt = now
	case consts.EnrollmentStatusCompleted:
		e.CompletedAt = now
	}

	if err := s.EnrollmentMapper.Update(ctx, e); err != nil {
		log.Error("更新选课记录失败: %v", err)
		return nil, consts.ErrUpdate
	}

	// 退班或结业后学生不再属于该班
	if req.Status == consts.EnrollmentStatusDropped || req.Status == consts.EnrollmentStatusCompleted {
		if err := s.UserMapper.ClearCurrentClass(ctx, e.StudentID); err != nil {
			log.Error("清除当前班级失败: %v", err)
		}
		if err := s.ClassMapper.RemoveStudent(ctx, e.ClassID, e.StudentID); err != nil {
			log.Error("更新班级花名册失败: %v", err)
		}
	}

	return &school.UpdateEnrollmentResp{
		Enrollment: s.toEnrollmentInfo(ctx, e),
	}, nil
}

// GetEnrollment 获取单条选课记录，仅管理员
func (s *EnrollmentService) GetEnrollment(ctx context.Context, req *school.GetEnrollmentReq) (*school.GetEnrollmentResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if userMeta.GetRole() != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	e, err := s.EnrollmentMapper.FindOne(ctx, req.EnrollmentId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	return &school.GetEnrollmentResp{
		Enrollment: s.toEnrollmentInfo(ctx, e),
	}, nil
}

// ListEnrollments 获取班级选课记录
func (s *EnrollmentService) ListEnrollments(ctx context.Context, req *school.ListEnrollmentsReq) (*school.ListEnrollmentsResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	page, pageSize := pageutil.ParsePageOpt(req.PaginationOptions)
	enrollments, total, err := s.EnrollmentMapper.FindByClassID(ctx, req.ClassId, page, pageSize)
	if err != nil {
		log.Error("获取选课记录失败: %v", err)
		return nil, consts.ErrGetClassMembers
	}

	infos := make([]*school.EnrollmentInfo, 0, len(enrollments))
	for _, e := range enrollments {
		infos = append(infos, s.toEnrollmentInfo(ctx, e))
	}

	return &school.ListEnrollmentsResp{
		Enrollments: infos,
		Total:       total,
	}, nil
}

func (s *EnrollmentService) toEnrollmentInfo(ctx context.Context, e *class.Enrollment) *school.EnrollmentInfo {
	info := &school.EnrollmentInfo{
		Id:         e.ID.Hex(),
		StudentId:  e.StudentID,
		ClassId:    e.ClassID,
		Status:     e.Status,
		Notes:      e.Notes,
		EnrolledAt: e.EnrolledAt.Unix(),
	}
	if !e.CompletedAt.IsZero() {
		info.CompletedAt = e.CompletedAt.Unix()
	}
	if !e.DroppedAt.IsZero() {
		info.DroppedAt = e.DroppedAt.Unix()
	}
	if u, err := s.UserMapper.FindOne(ctx, e.StudentID); err == nil {
		info.StudentName = u.FullName()
	}
	return info
}
