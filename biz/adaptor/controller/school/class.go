package school

import (
	"context"

	"class-show/biz/adaptor"
	"class-show/biz/application/dto/school"
	"class-show/biz/infrastructure/consts"
	"class-show/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// CreateClass .
// @router /classes [POST]
func CreateClass(ctx context.Context, c *app.RequestContext) {
	var req school.CreateClassReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.CreateClass(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetClass .
// @router /classes/:classId [GET]
func GetClass(ctx context.Context, c *app.RequestContext) {
	var req school.GetClassReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.GetClass(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListClasses .
// @router /classes [GET]
func ListClasses(ctx context.Context, c *app.RequestContext) {
	var req school.ListClassesReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.ListClasses(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateClass .
// @router /classes/:classId [PUT]
func UpdateClass(ctx context.Context, c *app.RequestContext) {
	var req school.UpdateClassReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.UpdateClass(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeactivateClass .
// @router /classes/:classId [DELETE]
func DeactivateClass(ctx context.Context, c *app.RequestContext) {
	var req school.DeactivateClassReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.DeactivateClass(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetClassMembers .
// @router /classes/:classId/members [GET]
func GetClassMembers(ctx context.Context, c *app.RequestContext) {
	var req school.GetClassMembersReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.GetClassMembers(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// EnrollStudent .
// @router /classes/:classId/enroll [POST]
func EnrollStudent(ctx context.Context, c *app.RequestContext) {
	var req school.EnrollStudentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.EnrollmentService.EnrollStudent(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// TransferStudent .
// @router /enrollments/transfer [POST]
func TransferStudent(ctx context.Context, c *app.RequestContext) {
	var req school.TransferStudentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.EnrollmentService.TransferStudent(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateEnrollment .
// @router /enrollments/:enrollmentId [PUT]
func UpdateEnrollment(ctx context.Context, c *app.RequestContext) {
	var req school.UpdateEnrollmentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.EnrollmentService.UpdateEnrollment(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetEnrollment .
// @router /enrollments/:enrollmentId [GET]
func GetEnrollment(ctx context.Context, c *app.RequestContext) {
	var req school.GetEnrollmentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.EnrollmentService.GetEnrollment(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListEnrollments .
// @router /classes/:classId/enrollments [GET]
func ListEnrollments(ctx context.Context, c *app.RequestContext) {
	var req school.ListEnrollmentsReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.EnrollmentService.ListEnrollments(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
