package school

import (
	"context"

	"class-show/biz/adaptor"
	"class-show/biz/application/dto/school"
	"class-show/biz/infrastructure/consts"
	"class-show/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// CreateSchedule .
// @router /schedules [POST]
func CreateSchedule(ctx context.Context, c *app.RequestContext) {
	var req school.CreateScheduleReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.ScheduleService.CreateSchedule(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListSchedules .
// @router /classes/:classId/schedules [GET]
func ListSchedules(ctx context.Context, c *app.RequestContext) {
	var req school.ListSchedulesReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.ScheduleService.ListSchedules(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateSchedule .
// @router /schedules/:scheduleId [PUT]
func UpdateSchedule(ctx context.Context, c *app.RequestContext) {
	var req school.UpdateScheduleReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.ScheduleService.UpdateSchedule(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteSchedule .
// @router /schedules/:scheduleId [DELETE]
func DeleteSchedule(ctx context.Context, c *app.RequestContext) {
	var req school.DeleteScheduleReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.ScheduleService.DeleteSchedule(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpcomingSchedules .
// @router /classes/:classId/schedules/upcoming [GET]
func UpcomingSchedules(ctx context.Context, c *app.RequestContext) {
	var req school.UpcomingSchedulesReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.ScheduleService.UpcomingSchedules(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
