package service

import (
	"testing"

	"class-show/biz/application/dto/school"
	"class-show/biz/infrastructure/consts"
	"class-show/biz/infrastructure/repository/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateScheduleConflict(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)

	_, err := env.scheduleService.CreateSchedule(ctxAs(teacher), &school.CreateScheduleReq{
		ClassId: c.ID.Hex(), Day: 1, Period: 2, Subject: "语文",
	})
	require.NoError(t, err)

	// 同班同时段冲突
	_, err = env.scheduleService.CreateSchedule(ctxAs(teacher), &school.CreateScheduleReq{
		ClassId: c.ID.Hex(), Day: 1, Period: 2, Subject: "数学",
	})
	assert.ErrorIs(t, err, consts.ErrScheduleConflict)

	// 换节次就不冲突
	_, err = env.scheduleService.CreateSchedule(ctxAs(teacher), &school.CreateScheduleReq{
		ClassId: c.ID.Hex(), Day: 1, Period: 3, Subject: "数学",
	})
	assert.NoError(t, err)
}

func TestCreateScheduleValidation(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser(consts.RoleTeacher)
	student := env.addUser(consts.RoleStudent)
	c := env.addClass(teacher, 30)

	_, err := env.scheduleService.CreateSchedule(ctxAs(teacher), &school.CreateScheduleReq{
		ClassId: c.ID.Hex(), Day: 8, Period: 1, Subject: "语文",
	})
	assert.ErrorIs(t, err, consts.ErrInvalidParams)

	_, err = env.scheduleService.CreateSchedule(ctxAs(teacher), &school.CreateScheduleReq{
		ClassId: c.ID.Hex(), Day: 1, Period: 0, Subject: "语文",
	})
	assert.ErrorIs(t, err, consts.ErrInvalidParams)

	_, err = env.scheduleService.CreateSchedule(ctxAs(student), &school.CreateScheduleReq{
		ClassId: c.ID.Hex(), Day: 1, Period: 1, Subject: "语文",
	})
	assert.ErrorIs(t, err, consts.ErrRoleMismatch)
}

func TestUpdateScheduleSlotConflict(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)

	first, err := env.scheduleService.CreateSchedule(ctxAs(teacher), &school.CreateScheduleReq{
		ClassId: c.ID.Hex(), Day: 1, Period: 1, Subject: "语文",
	})
	require.NoError(t, err)
	second, err := env.scheduleService.CreateSchedule(ctxAs(teacher), &school.CreateScheduleReq{
		ClassId: c.ID.Hex(), Day: 1, Period: 2, Subject: "数学",
	})
	require.NoError(t, err)

	// 挪到被占的时段
	day, period := int64(1), int64(1)
	_, err = env.scheduleService.UpdateSchedule(ctxAs(teacher), &school.UpdateScheduleReq{
		ScheduleId: second.Schedule.Id, Day: &day, Period: &period,
	})
	assert.ErrorIs(t, err, consts.ErrScheduleConflict)

	// 不改时段只改科目，不触发冲突检查
	subject := "英语"
	resp, err := env.scheduleService.UpdateSchedule(ctxAs(teacher), &school.UpdateScheduleReq{
		ScheduleId: first.Schedule.Id, Subject: &subject,
	})
	require.NoError(t, err)
	assert.Equal(t, "英语", resp.Schedule.Subject)
}

func TestDeleteSchedule(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)

	created, err := env.scheduleService.CreateSchedule(ctxAs(teacher), &school.CreateScheduleReq{
		ClassId: c.ID.Hex(), Day: 2, Period: 3, Subject: "美术",
	})
	require.NoError(t, err)

	_, err = env.scheduleService.DeleteSchedule(ctxAs(teacher), &school.DeleteScheduleReq{
		ScheduleId: created.Schedule.Id,
	})
	require.NoError(t, err)

	_, err = env.scheduleService.DeleteSchedule(ctxAs(teacher), &school.DeleteScheduleReq{
		ScheduleId: created.Schedule.Id,
	})
	assert.ErrorIs(t, err, consts.ErrNotFound)
}

// 环形周序：从今天起最近的课排最前
func TestWeekOrder(t *testing.T) {
	today := int64(3) // 周三
	mk := func(day, period int64) *schedule.Schedule {
		return &schedule.Schedule{Day: day, Period: period}
	}

	// 今天晚些的节次 < 明天 < 下周同日更早节次
	assert.Less(t, weekOrder(mk(3, 5), today), weekOrder(mk(4, 1), today))
	assert.Less(t, weekOrder(mk(4, 1), today), weekOrder(mk(2, 1), today))
	// 今天的节次按节次排
	assert.Less(t, weekOrder(mk(3, 1), today), weekOrder(mk(3, 2), today))
	// 周日(7)在周三之后、下周二之前
	assert.Less(t, weekOrder(mk(7, 1), today), weekOrder(mk(2, 1), today))
}

func TestUpcomingSchedulesLimit(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)

	for day := int64(1); day <= 7; day++ {
		_, err := env.scheduleService.CreateSchedule(ctxAs(teacher), &school.CreateScheduleReq{
			ClassId: c.ID.Hex(), Day: day, Period: 1, Subject: "语文",
		})
		require.NoError(t, err)
	}

	resp, err := env.scheduleService.UpcomingSchedules(ctxAs(teacher), &school.UpcomingSchedulesReq{
		ClassId: c.ID.Hex(),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Schedules, 3)
}
