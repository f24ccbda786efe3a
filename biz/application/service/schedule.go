package service

import (
	"context"
	"sort"
	"time"

	"class-show/biz/adaptor"
	"class-show/biz/application/dto/school"
	"class-show/biz/infrastructure/consts"
	"class-show/biz/infrastructure/repository/schedule"
	"class-show/biz/infrastructure/util/log"

	"github.com/google/wire"
)

const upcomingLimit = 3

type IScheduleService interface {
	CreateSchedule(ctx context.Context, req *school.CreateScheduleReq) (*school.CreateScheduleResp, error)
	ListSchedules(ctx context.Context, req *school.ListSchedulesReq) (*school.ListSchedulesResp, error)
	UpdateSchedule(ctx context.Context, req *school.UpdateScheduleReq) (*school.UpdateScheduleResp, error)
	DeleteSchedule(ctx context.Context, req *school.DeleteScheduleReq) (*school.DeleteScheduleResp, error)
	UpcomingSchedules(ctx context.Context, req *school.UpcomingSchedulesReq) (*school.UpcomingSchedulesResp, error)
}

type ScheduleService struct {
	ScheduleMapper schedule.IMongoMapper
}

var ScheduleServiceSet = wire.NewSet(
	wire.Struct(new(ScheduleService), "*"),
	wire.Bind(new(IScheduleService), new(*ScheduleService)),
)

// CreateSchedule 添加课程表条目，(班级,星期,节次)冲突时报409
func (s *ScheduleService) CreateSchedule(ctx context.Context, req *school.CreateScheduleReq) (*school.CreateScheduleResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if userMeta.GetRole() == consts.RoleStudent {
		return nil, consts.ErrRoleMismatch
	}

	if req.Day < consts.MinDayOfWeek || req.Day > consts.MaxDayOfWeek ||
		req.Period < consts.MinPeriod || req.Period > consts.MaxPeriod {
		return nil, consts.ErrInvalidParams
	}

	// 先查后插，数据库唯一索引兜底并发
	if _, err := s.ScheduleMapper.FindBySlot(ctx, req.ClassId, req.Day, req.Period); err == nil {
		return nil, consts.ErrScheduleConflict
	}

	sc := &schedule.Schedule{
		ClassID: req.ClassId,
		Day:     req.Day,
		Period:  req.Period,
		Subject: req.Subject,
		Room:    req.Room,
	}
	err := s.ScheduleMapper.Insert(ctx, sc)
	if err != nil {
		if err == consts.ErrScheduleConflict {
			return nil, err
		}
		log.Error("创建课程表失败: %v", err)
		return nil, consts.ErrCreateSchedule
	}

	return &school.CreateScheduleResp{
		Schedule: toScheduleInfo(sc),
	}, nil
}

// ListSchedules 按班级列课程表，可选按星期过滤
func (s *ScheduleService) ListSchedules(ctx context.Context, req *school.ListSchedulesReq) (*school.ListSchedulesResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	schedules, err := s.ScheduleMapper.FindByClassAndDay(ctx, req.ClassId, req.Day)
	if err != nil {
		log.Error("获取课程表失败: %v", err)
		return nil, consts.ErrGetScheduleList
	}

	return &school.ListSchedulesResp{
		Schedules: toScheduleInfos(schedules),
	}, nil
}

// UpdateSchedule 修改课程表条目，改时段时重新校验冲突
func (s *ScheduleService) UpdateSchedule(ctx context.Context, req *school.UpdateScheduleReq) (*school.UpdateScheduleResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if userMeta.GetRole() == consts.RoleStudent {
		return nil, consts.ErrRoleMismatch
	}

	sc, err := s.ScheduleMapper.FindOne(ctx, req.ScheduleId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	day, period := sc.Day, sc.Period
	if req.Day != nil {
		day = *req.Day
	}
	if req.Period != nil {
		period = *req.Period
	}
	if day < consts.MinDayOfWeek || day > consts.MaxDayOfWeek ||
		period < consts.MinPeriod || period > consts.MaxPeriod {
		return nil, consts.ErrInvalidParams
	}

	if day != sc.Day || period != sc.Period {
		if other, err := s.ScheduleMapper.FindBySlot(ctx, sc.ClassID, day, period); err == nil && other.ID != sc.ID {
			return nil, consts.ErrScheduleConflict
		}
	}

	sc.Day = day
	sc.Period = period
	if req.Subject != nil {
		sc.Subject = *req.Subject
	}
	if req.Room != nil {
		sc.Room = *req.Room
	}

	err = s.ScheduleMapper.Update(ctx, sc)
	if err != nil {
		log.Error("更新课程表失败: %v", err)
		return nil, consts.ErrUpdate
	}

	return &school.UpdateScheduleResp{
		Schedule: toScheduleInfo(sc),
	}, nil
}

// DeleteSchedule 删除课程表条目
func (s *ScheduleService) DeleteSchedule(ctx context.Context, req *school.DeleteScheduleReq) (*school.DeleteScheduleResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if userMeta.GetRole() == consts.RoleStudent {
		return nil, consts.ErrRoleMismatch
	}

	if _, err := s.ScheduleMapper.FindOne(ctx, req.ScheduleId); err != nil {
		return nil, consts.ErrNotFound
	}

	err := s.ScheduleMapper.Delete(ctx, req.ScheduleId)
	if err != nil {
		log.Error("删除课程表失败: %v", err)
		return nil, consts.ErrUpdate
	}

	return &school.DeleteScheduleResp{}, nil
}

// UpcomingSchedules 从当前时间起按一周环序取最近的几节课
func (s *ScheduleService) UpcomingSchedules(ctx context.Context, req *school.UpcomingSchedulesReq) (*school.UpcomingSchedulesResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	schedules, err := s.ScheduleMapper.FindByClassAndDay(ctx, req.ClassId, 0)
	if err != nil {
		log.Error("获取课程表失败: %v", err)
		return nil, consts.ErrGetScheduleList
	}

	// ISO周记法：周一=1 .. 周日=7
	today := int64(time.Now().Weekday())
	if today == 0 {
		today = 7
	}
	sort.SliceStable(schedules, func(i, j int) bool {
		return weekOrder(schedules[i], today) < weekOrder(schedules[j], today)
	})
	if int64(len(schedules)) > upcomingLimit {
		schedules = schedules[:upcomingLimit]
	}

	return &school.UpcomingSchedulesResp{
		Schedules: toScheduleInfos(schedules),
	}, nil
}

// weekOrder 以今天为起点的环形周序
func weekOrder(sc *schedule.Schedule, today int64) int64 {
	day := (sc.Day - today + 7) % 7
	return day*int64(consts.MaxPeriod+1) + sc.Period
}

func toScheduleInfo(sc *schedule.Schedule) *school.ScheduleInfo {
	return &school.ScheduleInfo{
		Id:      sc.ID.Hex(),
		ClassId: sc.ClassID,
		Day:     sc.Day,
		Period:  sc.Period,
		Subject: sc.Subject,
		Room:    sc.Room,
	}
}

func toScheduleInfos(schedules []*schedule.Schedule) []*school.ScheduleInfo {
	infos := make([]*school.ScheduleInfo, 0, len(schedules))
	for _, sc := range schedules {
		infos = append(infos, toScheduleInfo(sc))
	}
	return infos
}
