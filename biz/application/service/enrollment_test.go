package service

import (
	"context"
	"testing"

	"class-show/biz/application/dto/school"
	"class-show/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollStudent(t *testing.T) {
	env := newTestEnv()
	admin := env.addUser(consts.RoleAdmin)
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)
	student := env.addUser(consts.RoleStudent)

	before, _ := env.enrollments.CountEnrolled(context.Background(), c.ID.Hex())

	resp, err := env.enrollmentService.EnrollStudent(ctxAs(admin), &school.EnrollStudentReq{
		StudentId: student.ID.Hex(),
		ClassId:   c.ID.Hex(),
	})
	require.NoError(t, err)
	assert.Equal(t, consts.EnrollmentStatusEnrolled, resp.Enrollment.Status)

	// 人数恰好加1，档案与花名册同步
	after, _ := env.enrollments.CountEnrolled(context.Background(), c.ID.Hex())
	assert.Equal(t, before+1, after)
	assert.Equal(t, c.ID.Hex(), student.CurrentClass)
	assert.Contains(t, c.Students, student.ID.Hex())
}

func TestEnrollCapacityExceeded(t *testing.T) {
	env := newTestEnv()
	admin := env.addUser(consts.RoleAdmin)
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 1)
	env.addEnrolledStudent(c)

	second := env.addUser(consts.RoleStudent)
	_, err := env.enrollmentService.EnrollStudent(ctxAs(admin), &school.EnrollStudentReq{
		StudentId: second.ID.Hex(),
		ClassId:   c.ID.Hex(),
	})
	assert.ErrorIs(t, err, consts.ErrCapacityExceeded)

	// 花名册保持不变
	count, _ := env.enrollments.CountEnrolled(context.Background(), c.ID.Hex())
	assert.EqualValues(t, 1, count)
}

func TestEnrollAlreadyEnrolled(t *testing.T) {
	env := newTestEnv()
	admin := env.addUser(consts.RoleAdmin)
	teacher := env.addUser(consts.RoleTeacher)
	c1 := env.addClass(teacher, 30)
	c2 := env.addClass(teacher, 30)
	student := env.addEnrolledStudent(c1)

	// 本班重复入班
	_, err := env.enrollmentService.EnrollStudent(ctxAs(admin), &school.EnrollStudentReq{
		StudentId: student.ID.Hex(),
		ClassId:   c1.ID.Hex(),
	})
	assert.ErrorIs(t, err, consts.ErrAlreadyInClass)

	// 有生效班级时不能入其他班
	_, err = env.enrollmentService.EnrollStudent(ctxAs(admin), &school.EnrollStudentReq{
		StudentId: student.ID.Hex(),
		ClassId:   c2.ID.Hex(),
	})
	assert.ErrorIs(t, err, consts.ErrAlreadyEnrolled)
}

// 退班后再入班翻转原记录而不是新建行
func TestReEnrollFlipsDroppedRow(t *testing.T) {
	env := newTestEnv()
	admin := env.addUser(consts.RoleAdmin)
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)
	student := env.addEnrolledStudent(c)

	e, err := env.enrollments.FindByStudentAndClass(context.Background(), student.ID.Hex(), c.ID.Hex())
	require.NoError(t, err)

	_, err = env.enrollmentService.UpdateEnrollment(ctxAs(admin), &school.UpdateEnrollmentReq{
		EnrollmentId: e.ID.Hex(),
		Status:       consts.EnrollmentStatusDropped,
	})
	require.NoError(t, err)
	assert.Equal(t, "", student.CurrentClass)

	resp, err := env.enrollmentService.EnrollStudent(ctxAs(admin), &school.EnrollStudentReq{
		StudentId: student.ID.Hex(),
		ClassId:   c.ID.Hex(),
	})
	require.NoError(t, err)
	assert.Equal(t, e.ID.Hex(), resp.Enrollment.Id)
	assert.Equal(t, consts.EnrollmentStatusEnrolled, resp.Enrollment.Status)
	assert.EqualValues(t, 0, resp.Enrollment.DroppedAt)
}

func TestEnrollValidation(t *testing.T) {
	env := newTestEnv()
	admin := env.addUser(consts.RoleAdmin)
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)

	// 学生本人无权操作入班
	student := env.addUser(consts.RoleStudent)
	_, err := env.enrollmentService.EnrollStudent(ctxAs(student), &school.EnrollStudentReq{
		StudentId: student.ID.Hex(),
		ClassId:   c.ID.Hex(),
	})
	assert.ErrorIs(t, err, consts.ErrForbidden)

	// 非学生角色不能被入班
	_, err = env.enrollmentService.EnrollStudent(ctxAs(admin), &school.EnrollStudentReq{
		StudentId: teacher.ID.Hex(),
		ClassId:   c.ID.Hex(),
	})
	assert.ErrorIs(t, err, consts.ErrRoleMismatch)

	// 班级不存在
	_, err = env.enrollmentService.EnrollStudent(ctxAs(admin), &school.EnrollStudentReq{
		StudentId: student.ID.Hex(),
		ClassId:   "000000000000000000000000",
	})
	assert.ErrorIs(t, err, consts.ErrNotFound)
}

func TestTransferStudent(t *testing.T) {
	env := newTestEnv()
	admin := env.addUser(consts.RoleAdmin)
	teacher := env.addUser(consts.RoleTeacher)
	c1 := env.addClass(teacher, 30)
	c2 := env.addClass(teacher, 30)
	student := env.addEnrolledStudent(c1)

	resp, err := env.enrollmentService.TransferStudent(ctxAs(admin), &school.TransferStudentReq{
		StudentId:  student.ID.Hex(),
		NewClassId: c2.ID.Hex(),
	})
	require.NoError(t, err)
	assert.Equal(t, c2.ID.Hex(), resp.Enrollment.ClassId)
	assert.Equal(t, consts.EnrollmentStatusEnrolled, resp.Enrollment.Status)

	// 原班记录按结业保留，档案指向新班
	old, err := env.enrollments.FindByStudentAndClass(context.Background(), student.ID.Hex(), c1.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, consts.EnrollmentStatusCompleted, old.Status)
	assert.NotZero(t, old.CompletedAt)
	assert.Equal(t, c2.ID.Hex(), student.CurrentClass)
	assert.NotContains(t, c1.Students, student.ID.Hex())
	assert.Contains(t, c2.Students, student.ID.Hex())
}

// 目标班满员时转班失败，原班记录保持不变
func TestTransferCapacityCheckedBeforeMutation(t *testing.T) {
	env := newTestEnv()
	admin := env.addUser(consts.RoleAdmin)
	teacher := env.addUser(consts.RoleTeacher)
	c1 := env.addClass(teacher, 30)
	c2 := env.addClass(teacher, 1)
	env.addEnrolledStudent(c2)
	student := env.addEnrolledStudent(c1)

	_, err := env.enrollmentService.TransferStudent(ctxAs(admin), &school.TransferStudentReq{
		StudentId:  student.ID.Hex(),
		NewClassId: c2.ID.Hex(),
	})
	assert.ErrorIs(t, err, consts.ErrCapacityExceeded)

	old, err := env.enrollments.FindByStudentAndClass(context.Background(), student.ID.Hex(), c1.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, consts.EnrollmentStatusEnrolled, old.Status)
	assert.Equal(t, c1.ID.Hex(), student.CurrentClass)
}

func TestUpdateEnrollmentStatus(t *testing.T) {
	env := newTestEnv()
	admin := env.addUser(consts.RoleAdmin)
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)
	student := env.addEnrolledStudent(c)

	e, err := env.enrollments.FindByStudentAndClass(context.Background(), student.ID.Hex(), c.ID.Hex())
	require.NoError(t, err)

	// 非法状态
	_, err = env.enrollmentService.UpdateEnrollment(ctxAs(admin), &school.UpdateEnrollmentReq{
		EnrollmentId: e.ID.Hex(),
		Status:       "graduated",
	})
	assert.ErrorIs(t, err, consts.ErrInvalidParams)

	// 结业后清理档案与花名册
	resp, err := env.enrollmentService.UpdateEnrollment(ctxAs(admin), &school.UpdateEnrollmentReq{
		EnrollmentId: e.ID.Hex(),
		Status:       consts.EnrollmentStatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, consts.EnrollmentStatusCompleted, resp.Enrollment.Status)
	assert.NotZero(t, resp.Enrollment.CompletedAt)
	assert.Equal(t, "", student.CurrentClass)
	assert.NotContains(t, c.Students, student.ID.Hex())
}
