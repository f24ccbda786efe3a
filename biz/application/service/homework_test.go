package service

import (
	"testing"
	"time"

	"class-show/biz/application/dto/school"
	"class-show/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHomework(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)

	resp, err := env.homeworkService.CreateHomework(ctxAs(teacher), &school.CreateHomeworkReq{
		Title:   "作文一篇",
		ClassId: c.ID.Hex(),
		DueDate: time.Now().Add(24 * time.Hour).Unix(),
	})
	require.NoError(t, err)

	h, err := env.homeworks.FindOne(ctxAs(teacher), resp.HomeworkId)
	require.NoError(t, err)
	// 初始为草稿，默认分值与次数
	assert.Equal(t, consts.HomeworkStatusDraft, h.Status)
	assert.EqualValues(t, consts.DefaultPoints, h.Points)
	assert.EqualValues(t, consts.DefaultMaxAttempts, h.MaxAttempts)
	assert.Equal(t, teacher.ID.Hex(), h.TeacherID)
}

func TestCreateHomeworkInvalidDeadline(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)

	_, err := env.homeworkService.CreateHomework(ctxAs(teacher), &school.CreateHomeworkReq{
		Title:   "作文一篇",
		ClassId: c.ID.Hex(),
		DueDate: time.Now().Add(-time.Hour).Unix(),
	})
	assert.ErrorIs(t, err, consts.ErrInvalidDeadline)
}

func TestCreateHomeworkOnlyOwnClass(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)

	other := env.addUser(consts.RoleTeacher)
	_, err := env.homeworkService.CreateHomework(ctxAs(other), &school.CreateHomeworkReq{
		Title:   "作文一篇",
		ClassId: c.ID.Hex(),
		DueDate: time.Now().Add(time.Hour).Unix(),
	})
	assert.ErrorIs(t, err, consts.ErrForbidden)

	student := env.addUser(consts.RoleStudent)
	_, err = env.homeworkService.CreateHomework(ctxAs(student), &school.CreateHomeworkReq{
		Title:   "作文一篇",
		ClassId: c.ID.Hex(),
		DueDate: time.Now().Add(time.Hour).Unix(),
	})
	assert.ErrorIs(t, err, consts.ErrRoleMismatch)
}

func TestHomeworkLifecycle(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)
	h := env.addHomework(c, teacher, consts.HomeworkStatusDraft, time.Now().Add(time.Hour))

	pubResp, err := env.homeworkService.PublishHomework(ctxAs(teacher), &school.PublishHomeworkReq{HomeworkId: h.ID.Hex()})
	require.NoError(t, err)
	assert.Equal(t, consts.HomeworkStatusPublished, pubResp.Homework.Status)

	// 重复发布冲突
	_, err = env.homeworkService.PublishHomework(ctxAs(teacher), &school.PublishHomeworkReq{HomeworkId: h.ID.Hex()})
	assert.ErrorIs(t, err, consts.ErrAlreadyPublished)

	closeResp, err := env.homeworkService.CloseHomework(ctxAs(teacher), &school.CloseHomeworkReq{HomeworkId: h.ID.Hex()})
	require.NoError(t, err)
	assert.Equal(t, consts.HomeworkStatusClosed, closeResp.Homework.Status)

	// 重复关闭冲突
	_, err = env.homeworkService.CloseHomework(ctxAs(teacher), &school.CloseHomeworkReq{HomeworkId: h.ID.Hex()})
	assert.ErrorIs(t, err, consts.ErrAlreadyClosed)

	// 已关闭的不能再改
	title := "改标题"
	_, err = env.homeworkService.UpdateHomework(ctxAs(teacher), &school.UpdateHomeworkReq{
		HomeworkId: h.ID.Hex(),
		Title:      &title,
	})
	assert.ErrorIs(t, err, consts.ErrHomeworkClosed)
}

func TestUpdateHomeworkDeadlineRevalidated(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)
	h := env.addHomework(c, teacher, consts.HomeworkStatusPublished, time.Now().Add(time.Hour))

	past := time.Now().Add(-time.Hour).Unix()
	_, err := env.homeworkService.UpdateHomework(ctxAs(teacher), &school.UpdateHomeworkReq{
		HomeworkId: h.ID.Hex(),
		DueDate:    &past,
	})
	assert.ErrorIs(t, err, consts.ErrInvalidDeadline)

	// 非布置者不能改
	other := env.addUser(consts.RoleTeacher)
	title := "改标题"
	_, err = env.homeworkService.UpdateHomework(ctxAs(other), &school.UpdateHomeworkReq{
		HomeworkId: h.ID.Hex(),
		Title:      &title,
	})
	assert.ErrorIs(t, err, consts.ErrForbidden)
}

func TestDeleteHomeworkWithSubmissions(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)
	student := env.addEnrolledStudent(c)
	h := env.addHomework(c, teacher, consts.HomeworkStatusPublished, time.Now().Add(time.Hour))

	_, err := env.submissionService.SubmitHomework(ctxAs(student), &school.SubmitHomeworkReq{
		HomeworkId: h.ID.Hex(), Content: "x",
	})
	require.NoError(t, err)

	// 有提交时不能删
	_, err = env.homeworkService.DeleteHomework(ctxAs(teacher), &school.DeleteHomeworkReq{HomeworkId: h.ID.Hex()})
	assert.ErrorIs(t, err, consts.ErrHasSubmissions)

	empty := env.addHomework(c, teacher, consts.HomeworkStatusDraft, time.Now().Add(time.Hour))
	_, err = env.homeworkService.DeleteHomework(ctxAs(teacher), &school.DeleteHomeworkReq{HomeworkId: empty.ID.Hex()})
	assert.NoError(t, err)
}

// 学生看不到草稿
func TestGetHomeworkDraftHiddenFromStudents(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)
	student := env.addEnrolledStudent(c)
	h := env.addHomework(c, teacher, consts.HomeworkStatusDraft, time.Now().Add(time.Hour))

	_, err := env.homeworkService.GetHomework(ctxAs(teacher), &school.GetHomeworkReq{HomeworkId: h.ID.Hex()})
	assert.NoError(t, err)

	_, err = env.homeworkService.GetHomework(ctxAs(student), &school.GetHomeworkReq{HomeworkId: h.ID.Hex()})
	assert.ErrorIs(t, err, consts.ErrNotFound)
}

// 分析视图：从提交行重算，分档齐全
func TestHomeworkAnalytics(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)
	h := env.addHomework(c, teacher, consts.HomeworkStatusPublished, time.Now().Add(time.Hour))

	// 5个学生入班，4人提交，其中3人已批改：95/85/50，1人迟交
	scores := []int64{95, 85, 50}
	for i := 0; i < 5; i++ {
		student := env.addEnrolledStudent(c)
		if i >= 4 {
			continue
		}
		resp, err := env.submissionService.SubmitHomework(ctxAs(student), &school.SubmitHomeworkReq{
			HomeworkId: h.ID.Hex(), Content: "x",
		})
		require.NoError(t, err)
		if i == 3 {
			sub, _ := env.submissions.FindOne(ctxAs(student), resp.Submission.Id)
			sub.IsLate = true
			continue
		}
		_, err = env.submissionService.GradeSubmission(ctxAs(teacher), &school.GradeSubmissionReq{
			SubmissionId: resp.Submission.Id, Score: scores[i],
		})
		require.NoError(t, err)
	}

	resp, err := env.homeworkService.GetHomeworkAnalytics(ctxAs(teacher), &school.GetHomeworkAnalyticsReq{
		HomeworkId: h.ID.Hex(),
	})
	require.NoError(t, err)
	a := resp.Analytics
	assert.EqualValues(t, 5, a.TotalStudents)
	assert.EqualValues(t, 4, a.TotalSubmissions)
	assert.EqualValues(t, 80, a.SubmissionRate)
	assert.EqualValues(t, 3, a.GradedSubmissions)
	assert.EqualValues(t, 1, a.LateSubmissions)
	// mean(95,85,50) = 76.67 -> 77
	assert.EqualValues(t, 77, a.AverageScore)
	assert.EqualValues(t, 1, a.ScoreDistribution["A"])
	assert.EqualValues(t, 1, a.ScoreDistribution["B"])
	assert.EqualValues(t, 0, a.ScoreDistribution["C"])
	assert.EqualValues(t, 0, a.ScoreDistribution["D"])
	assert.EqualValues(t, 1, a.ScoreDistribution["F"])

	// 学生无权看统计
	student := env.addEnrolledStudent(c)
	_, err = env.homeworkService.GetHomeworkAnalytics(ctxAs(student), &school.GetHomeworkAnalyticsReq{
		HomeworkId: h.ID.Hex(),
	})
	assert.ErrorIs(t, err, consts.ErrForbidden)
}

// 满分不是100时，平均分仍按原始得分计算，等级按百分比划分
func TestAnalyticsAverageUsesRawScore(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)
	student := env.addEnrolledStudent(c)
	h := env.addHomework(c, teacher, consts.HomeworkStatusPublished, time.Now().Add(time.Hour))
	h.Points = 50

	resp, err := env.submissionService.SubmitHomework(ctxAs(student), &school.SubmitHomeworkReq{
		HomeworkId: h.ID.Hex(), Content: "x",
	})
	require.NoError(t, err)
	_, err = env.submissionService.GradeSubmission(ctxAs(teacher), &school.GradeSubmissionReq{
		SubmissionId: resp.Submission.Id, Score: 40,
	})
	require.NoError(t, err)

	got, err := env.homeworkService.GetHomeworkAnalytics(ctxAs(teacher), &school.GetHomeworkAnalyticsReq{
		HomeworkId: h.ID.Hex(),
	})
	require.NoError(t, err)
	// 40/50 -> 80% 落在B档，平均分是40而不是80
	assert.EqualValues(t, 40, got.Analytics.AverageScore)
	assert.EqualValues(t, 1, got.Analytics.ScoreDistribution["B"])
	// 作业行上缓存的平均分同口径
	assert.EqualValues(t, 40, h.AverageScore)
}

// 提交会使统计缓存失效，下次读取重算
func TestAnalyticsCacheInvalidation(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)
	student := env.addEnrolledStudent(c)
	h := env.addHomework(c, teacher, consts.HomeworkStatusPublished, time.Now().Add(time.Hour))

	resp1, err := env.homeworkService.GetHomeworkAnalytics(ctxAs(teacher), &school.GetHomeworkAnalyticsReq{
		HomeworkId: h.ID.Hex(),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 0, resp1.Analytics.TotalSubmissions)
	_, cached := env.cache.data[h.ID.Hex()]
	assert.True(t, cached)

	_, err = env.submissionService.SubmitHomework(ctxAs(student), &school.SubmitHomeworkReq{
		HomeworkId: h.ID.Hex(), Content: "x",
	})
	require.NoError(t, err)
	_, cached = env.cache.data[h.ID.Hex()]
	assert.False(t, cached)

	resp2, err := env.homeworkService.GetHomeworkAnalytics(ctxAs(teacher), &school.GetHomeworkAnalyticsReq{
		HomeworkId: h.ID.Hex(),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, resp2.Analytics.TotalSubmissions)
}
