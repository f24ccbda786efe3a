package service

import (
	"context"
	"time"

	"class-show/biz/adaptor"
	"class-show/biz/application/dto/basic"
	"class-show/biz/infrastructure/consts"
	"class-show/biz/infrastructure/repository/class"
	"class-show/biz/infrastructure/repository/homework"
	"class-show/biz/infrastructure/repository/user"
)

type testEnv struct {
	users       *fakeUserMapper
	classes     *fakeClassMapper
	enrollments *fakeEnrollmentMapper
	homeworks   *fakeHomeworkMapper
	submissions *fakeSubmissionMapper
	documents   *fakeDocumentMapper
	schedules   *fakeScheduleMapper
	cache       *fakeAnalyticsCache

	classService      *ClassService
	enrollmentService *EnrollmentService
	homeworkService   *HomeworkService
	submissionService *SubmissionService
	documentService   *DocumentService
	scheduleService   *ScheduleService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:       newFakeUserMapper(),
		classes:     newFakeClassMapper(),
		enrollments: newFakeEnrollmentMapper(),
		homeworks:   newFakeHomeworkMapper(),
		submissions: newFakeSubmissionMapper(),
		documents:   newFakeDocumentMapper(),
		schedules:   newFakeScheduleMapper(),
		cache:       newFakeAnalyticsCache(),
	}
	env.classService = &ClassService{
		ClassMapper:      env.classes,
		EnrollmentMapper: env.enrollments,
		UserMapper:       env.users,
	}
	env.enrollmentService = &EnrollmentService{
		EnrollmentMapper: env.enrollments,
		ClassMapper:      env.classes,
		UserMapper:       env.users,
	}
	env.homeworkService = &HomeworkService{
		HomeworkMapper:   env.homeworks,
		SubmissionMapper: env.submissions,
		ClassMapper:      env.classes,
		EnrollmentMapper: env.enrollments,
		UserMapper:       env.users,
		AnalyticsCache:   env.cache,
	}
	env.submissionService = &SubmissionService{
		SubmissionMapper: env.submissions,
		HomeworkMapper:   env.homeworks,
		UserMapper:       env.users,
		AnalyticsCache:   env.cache,
		HomeworkService:  env.homeworkService,
	}
	env.documentService = &DocumentService{
		DocumentMapper: env.documents,
		ClassMapper:    env.classes,
		UserMapper:     env.users,
	}
	env.scheduleService = &ScheduleService{
		ScheduleMapper: env.schedules,
	}
	return env
}

func (env *testEnv) addUser(role string) *user.User {
	u := &user.User{
		FirstName: "测试",
		LastName:  role,
		Email:     role + "@example.com",
		Role:      role,
	}
	_ = env.users.Insert(context.Background(), u)
	return u
}

func (env *testEnv) addClass(teacher *user.User, maxStudents int64) *class.Class {
	c := &class.Class{
		Name:            "三年二班",
		Code:            "C302",
		HomeroomTeacher: teacher.ID.Hex(),
		MaxStudents:     maxStudents,
		IsActive:        true,
	}
	_ = env.classes.Insert(context.Background(), c)
	return c
}

// addEnrolledStudent 建学生并完成入班的全部副作用
func (env *testEnv) addEnrolledStudent(c *class.Class) *user.User {
	u := &user.User{
		FirstName: "学生",
		LastName:  u8name(len(env.users.users)),
		Email:     "student" + u8name(len(env.users.users)) + "@example.com",
		Role:      consts.RoleStudent,
	}
	_ = env.users.Insert(context.Background(), u)
	_ = env.enrollments.Insert(context.Background(), &class.Enrollment{
		StudentID:  u.ID.Hex(),
		ClassID:    c.ID.Hex(),
		Status:     consts.EnrollmentStatusEnrolled,
		EnrolledAt: time.Now(),
	})
	u.CurrentClass = c.ID.Hex()
	_ = env.classes.AddStudent(context.Background(), c.ID.Hex(), u.ID.Hex())
	return u
}

func (env *testEnv) addHomework(c *class.Class, teacher *user.User, status string, due time.Time) *homework.Homework {
	h := &homework.Homework{
		Title:       "第一单元作业",
		ClassID:     c.ID.Hex(),
		TeacherID:   teacher.ID.Hex(),
		DueDate:     due,
		Status:      status,
		Points:      100,
		MaxAttempts: 1,
	}
	_ = env.homeworks.Insert(context.Background(), h)
	return h
}

func ctxAs(u *user.User) context.Context {
	return adaptor.InjectUserMeta(context.Background(), &basic.UserMeta{
		UserId: u.ID.Hex(),
		Role:   u.Role,
	})
}

func u8name(n int) string {
	return string(rune('A' + n%26))
}
