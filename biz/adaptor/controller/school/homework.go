package school

import (
	"context"

	"class-show/biz/adaptor"
	"class-show/biz/application/dto/school"
	"class-show/biz/infrastructure/consts"
	"class-show/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// CreateHomework .
// @router /homeworks [POST]
func CreateHomework(ctx context.Context, c *app.RequestContext) {
	var req school.CreateHomeworkReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.HomeworkService.CreateHomework(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetHomework .
// @router /homeworks/:homeworkId [GET]
func GetHomework(ctx context.Context, c *app.RequestContext) {
	var req school.GetHomeworkReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.HomeworkService.GetHomework(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListHomeworks .
// @router /homeworks [GET]
func ListHomeworks(ctx context.Context, c *app.RequestContext) {
	var req school.ListHomeworksReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.HomeworkService.ListHomeworks(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateHomework .
// @router /homeworks/:homeworkId [PUT]
func UpdateHomework(ctx context.Context, c *app.RequestContext) {
	var req school.UpdateHomeworkReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.HomeworkService.UpdateHomework(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// PublishHomework .
// @router /homeworks/:homeworkId/publish [POST]
func PublishHomework(ctx context.Context, c *app.RequestContext) {
	var req school.PublishHomeworkReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.HomeworkService.PublishHomework(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CloseHomework .
// @router /homeworks/:homeworkId/close [POST]
func CloseHomework(ctx context.Context, c *app.RequestContext) {
	var req school.CloseHomeworkReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.HomeworkService.CloseHomework(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteHomework .
// @router /homeworks/:homeworkId [DELETE]
func DeleteHomework(ctx context.Context, c *app.RequestContext) {
	var req school.DeleteHomeworkReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.HomeworkService.DeleteHomework(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetHomeworkAnalytics .
// @router /homeworks/:homeworkId/analytics [GET]
func GetHomeworkAnalytics(ctx context.Context, c *app.RequestContext) {
	var req school.GetHomeworkAnalyticsReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.HomeworkService.GetHomeworkAnalytics(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// SubmitHomework .
// @router /homeworks/:homeworkId/submissions [POST]
func SubmitHomework(ctx context.Context, c *app.RequestContext) {
	var req school.SubmitHomeworkReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.SubmitHomework(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GradeSubmission .
// @router /submissions/:submissionId/grade [POST]
func GradeSubmission(ctx context.Context, c *app.RequestContext) {
	var req school.GradeSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.GradeSubmission(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetSubmission .
// @router /submissions/:submissionId [GET]
func GetSubmission(ctx context.Context, c *app.RequestContext) {
	var req school.GetSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.GetSubmission(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListHomeworkSubmissions .
// @router /homeworks/:homeworkId/submissions [GET]
func ListHomeworkSubmissions(ctx context.Context, c *app.RequestContext) {
	var req school.ListHomeworkSubmissionsReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.ListHomeworkSubmissions(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListStudentSubmissions .
// @router /submissions [GET]
func ListStudentSubmissions(ctx context.Context, c *app.RequestContext) {
	var req school.ListStudentSubmissionsReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.ListStudentSubmissions(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteSubmission .
// @router /submissions/:submissionId [DELETE]
func DeleteSubmission(ctx context.Context, c *app.RequestContext) {
	var req school.DeleteSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.DeleteSubmission(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
