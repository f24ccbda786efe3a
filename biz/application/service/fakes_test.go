package service

import (
	"context"
	"sort"
	"time"

	"class-show/biz/application/dto/school"
	"class-show/biz/infrastructure/consts"
	"class-show/biz/infrastructure/repository/class"
	"class-show/biz/infrastructure/repository/document"
	"class-show/biz/infrastructure/repository/homework"
	"class-show/biz/infrastructure/repository/schedule"
	"class-show/biz/infrastructure/repository/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 内存版mapper，按接口替换mongo实现供服务层测试使用

type fakeUserMapper struct {
	users map[string]*user.User
}

func newFakeUserMapper() *fakeUserMapper {
	return &fakeUserMapper{users: make(map[string]*user.User)}
}

func (m *fakeUserMapper) Insert(_ context.Context, u *user.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
		u.CreateTime = time.Now()
		u.UpdateTime = u.CreateTime
	}
	m.users[u.ID.Hex()] = u
	return nil
}

func (m *fakeUserMapper) Update(_ context.Context, u *user.User) error {
	m.users[u.ID.Hex()] = u
	return nil
}

func (m *fakeUserMapper) FindOne(_ context.Context, id string) (*user.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, consts.ErrNotFound
}

func (m *fakeUserMapper) FindOneByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (m *fakeUserMapper) FindByRole(_ context.Context, role string, _, _ int64) ([]*user.User, int64, error) {
	var out []*user.User
	for _, u := range m.users {
		if role == "" || u.Role == role {
			out = append(out, u)
		}
	}
	return out, int64(len(out)), nil
}

func (m *fakeUserMapper) SetCurrentClass(_ context.Context, userID, classID string) error {
	if u, ok := m.users[userID]; ok {
		u.CurrentClass = classID
	}
	return nil
}

func (m *fakeUserMapper) ClearCurrentClass(_ context.Context, userID string) error {
	if u, ok := m.users[userID]; ok {
		u.CurrentClass = ""
	}
	return nil
}

type fakeClassMapper struct {
	classes map[string]*class.Class
}

func newFakeClassMapper() *fakeClassMapper {
	return &fakeClassMapper{classes: make(map[string]*class.Class)}
}

func (m *fakeClassMapper) Insert(_ context.Context, c *class.Class) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
		c.CreateTime = time.Now()
		c.UpdateTime = c.CreateTime
	}
	m.classes[c.ID.Hex()] = c
	return nil
}

func (m *fakeClassMapper) Update(_ context.Context, c *class.Class) error {
	m.classes[c.ID.Hex()] = c
	return nil
}

func (m *fakeClassMapper) FindOne(_ context.Context, id string) (*class.Class, error) {
	if c, ok := m.classes[id]; ok {
		return c, nil
	}
	return nil, consts.ErrNotFound
}

func (m *fakeClassMapper) FindOneByCode(_ context.Context, code string) (*class.Class, error) {
	for _, c := range m.classes {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (m *fakeClassMapper) FindByTeacher(_ context.Context, teacherID string, _, _ int64) ([]*class.Class, int64, error) {
	var out []*class.Class
	for _, c := range m.classes {
		if c.HomeroomTeacher == teacherID {
			out = append(out, c)
		}
	}
	return out, int64(len(out)), nil
}

func (m *fakeClassMapper) FindAll(_ context.Context, _, _ int64) ([]*class.Class, int64, error) {
	var out []*class.Class
	for _, c := range m.classes {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (m *fakeClassMapper) AddStudent(_ context.Context, classID, studentID string) error {
	c, ok := m.classes[classID]
	if !ok {
		return consts.ErrNotFound
	}
	for _, s := range c.Students {
		if s == studentID {
			return nil
		}
	}
	c.Students = append(c.Students, studentID)
	return nil
}

func (m *fakeClassMapper) RemoveStudent(_ context.Context, classID, studentID string) error {
	c, ok := m.classes[classID]
	if !ok {
		return consts.ErrNotFound
	}
	out := c.Students[:0]
	for _, s := range c.Students {
		if s != studentID {
			out = append(out, s)
		}
	}
	c.Students = out
	return nil
}

type fakeEnrollmentMapper struct {
	enrollments map[string]*class.Enrollment
}

func newFakeEnrollmentMapper() *fakeEnrollmentMapper {
	return &fakeEnrollmentMapper{enrollments: make(map[string]*class.Enrollment)}
}

func (m *fakeEnrollmentMapper) Insert(_ context.Context, e *class.Enrollment) error {
	for _, old := range m.enrollments {
		if old.StudentID == e.StudentID && old.ClassID == e.ClassID {
			return consts.ErrAlreadyInClass
		}
	}
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
		e.CreateTime = time.Now()
		e.UpdateTime = e.CreateTime
	}
	m.enrollments[e.ID.Hex()] = e
	return nil
}

func (m *fakeEnrollmentMapper) Update(_ context.Context, e *class.Enrollment) error {
	m.enrollments[e.ID.Hex()] = e
	return nil
}

func (m *fakeEnrollmentMapper) FindOne(_ context.Context, id string) (*class.Enrollment, error) {
	if e, ok := m.enrollments[id]; ok {
		return e, nil
	}
	return nil, consts.ErrNotFound
}

func (m *fakeEnrollmentMapper) FindByStudentAndClass(_ context.Context, studentID, classID string) (*class.Enrollment, error) {
	for _, e := range m.enrollments {
		if e.StudentID == studentID && e.ClassID == classID {
			return e, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (m *fakeEnrollmentMapper) FindActiveByStudent(_ context.Context, studentID string) (*class.Enrollment, error) {
	for _, e := range m.enrollments {
		if e.StudentID == studentID && e.Status == consts.EnrollmentStatusEnrolled {
			return e, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (m *fakeEnrollmentMapper) FindByClassID(_ context.Context, classID string, _, _ int64) ([]*class.Enrollment, int64, error) {
	var out []*class.Enrollment
	for _, e := range m.enrollments {
		if e.ClassID == classID {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

func (m *fakeEnrollmentMapper) CountEnrolled(_ context.Context, classID string) (int64, error) {
	var n int64
	for _, e := range m.enrollments {
		if e.ClassID == classID && e.Status == consts.EnrollmentStatusEnrolled {
			n++
		}
	}
	return n, nil
}

type fakeHomeworkMapper struct {
	homeworks map[string]*homework.Homework
}

func newFakeHomeworkMapper() *fakeHomeworkMapper {
	return &fakeHomeworkMapper{homeworks: make(map[string]*homework.Homework)}
}

func (m *fakeHomeworkMapper) Insert(_ context.Context, h *homework.Homework) error {
	if h.ID.IsZero() {
		h.ID = primitive.NewObjectID()
		h.CreateTime = time.Now()
		h.UpdateTime = h.CreateTime
	}
	m.homeworks[h.ID.Hex()] = h
	return nil
}

func (m *fakeHomeworkMapper) Update(_ context.Context, h *homework.Homework) error {
	m.homeworks[h.ID.Hex()] = h
	return nil
}

func (m *fakeHomeworkMapper) FindOne(_ context.Context, id string) (*homework.Homework, error) {
	if h, ok := m.homeworks[id]; ok {
		return h, nil
	}
	return nil, consts.ErrNotFound
}

func (m *fakeHomeworkMapper) FindByClassID(_ context.Context, classID, status string, _, _ int64) ([]*homework.Homework, int64, error) {
	var out []*homework.Homework
	for _, h := range m.homeworks {
		if h.ClassID == classID && (status == "" || h.Status == status) {
			out = append(out, h)
		}
	}
	return out, int64(len(out)), nil
}

func (m *fakeHomeworkMapper) FindByTeacher(_ context.Context, teacherID string, _, _ int64) ([]*homework.Homework, int64, error) {
	var out []*homework.Homework
	for _, h := range m.homeworks {
		if h.TeacherID == teacherID {
			out = append(out, h)
		}
	}
	return out, int64(len(out)), nil
}

func (m *fakeHomeworkMapper) UpdateStats(_ context.Context, id string, totalSubmissions, averageScore int64) error {
	h, ok := m.homeworks[id]
	if !ok {
		return consts.ErrNotFound
	}
	h.TotalSubmissions = totalSubmissions
	h.AverageScore = averageScore
	return nil
}

func (m *fakeHomeworkMapper) Delete(_ context.Context, id string) error {
	delete(m.homeworks, id)
	return nil
}

type fakeSubmissionMapper struct {
	submissions map[string]*homework.Submission
}

func newFakeSubmissionMapper() *fakeSubmissionMapper {
	return &fakeSubmissionMapper{submissions: make(map[string]*homework.Submission)}
}

func (m *fakeSubmissionMapper) Insert(_ context.Context, s *homework.Submission) error {
	for _, old := range m.submissions {
		if old.HomeworkID == s.HomeworkID && old.StudentID == s.StudentID {
			return consts.ErrAttemptsExceeded
		}
	}
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
		s.CreateTime = time.Now()
		s.UpdateTime = s.CreateTime
	}
	m.submissions[s.ID.Hex()] = s
	return nil
}

func (m *fakeSubmissionMapper) Update(_ context.Context, s *homework.Submission) error {
	m.submissions[s.ID.Hex()] = s
	return nil
}

func (m *fakeSubmissionMapper) UpdateAttempt(_ context.Context, s *homework.Submission, expectAttempt int64) error {
	old, ok := m.submissions[s.ID.Hex()]
	if !ok || old.AttemptNumber != expectAttempt {
		return consts.ErrUpdate
	}
	m.submissions[s.ID.Hex()] = s
	return nil
}

func (m *fakeSubmissionMapper) FindOne(_ context.Context, id string) (*homework.Submission, error) {
	if s, ok := m.submissions[id]; ok {
		return s, nil
	}
	return nil, consts.ErrNotFound
}

func (m *fakeSubmissionMapper) FindByStudentAndHomework(_ context.Context, studentID, homeworkID string) (*homework.Submission, error) {
	for _, s := range m.submissions {
		if s.StudentID == studentID && s.HomeworkID == homeworkID {
			return s, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (m *fakeSubmissionMapper) FindByHomeworkID(_ context.Context, homeworkID string, _, _ int64) ([]*homework.Submission, int64, error) {
	out, _ := m.FindAllByHomeworkID(context.Background(), homeworkID)
	return out, int64(len(out)), nil
}

func (m *fakeSubmissionMapper) FindAllByHomeworkID(_ context.Context, homeworkID string) ([]*homework.Submission, error) {
	var out []*homework.Submission
	for _, s := range m.submissions {
		if s.HomeworkID == homeworkID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.Before(out[j].SubmittedAt) })
	return out, nil
}

func (m *fakeSubmissionMapper) FindByStudent(_ context.Context, studentID, status string, _, _ int64) ([]*homework.Submission, int64, error) {
	var out []*homework.Submission
	for _, s := range m.submissions {
		if s.StudentID == studentID && (status == "" || s.Status == status) {
			out = append(out, s)
		}
	}
	return out, int64(len(out)), nil
}

func (m *fakeSubmissionMapper) CountByHomeworkID(_ context.Context, homeworkID string) (int64, error) {
	out, _ := m.FindAllByHomeworkID(context.Background(), homeworkID)
	return int64(len(out)), nil
}

func (m *fakeSubmissionMapper) Delete(_ context.Context, id string) error {
	delete(m.submissions, id)
	return nil
}

type fakeDocumentMapper struct {
	documents map[string]*document.Document
}

func newFakeDocumentMapper() *fakeDocumentMapper {
	return &fakeDocumentMapper{documents: make(map[string]*document.Document)}
}

func (m *fakeDocumentMapper) Insert(_ context.Context, d *document.Document) error {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
		d.CreateTime = time.Now()
		d.UpdateTime = d.CreateTime
	}
	m.documents[d.ID.Hex()] = d
	return nil
}

func (m *fakeDocumentMapper) Update(_ context.Context, d *document.Document) error {
	m.documents[d.ID.Hex()] = d
	return nil
}

func (m *fakeDocumentMapper) FindOne(_ context.Context, id string) (*document.Document, error) {
	if d, ok := m.documents[id]; ok {
		return d, nil
	}
	return nil, consts.ErrNotFound
}

func (m *fakeDocumentMapper) FindByClassID(_ context.Context, classID string, _, _ int64) ([]*document.Document, int64, error) {
	var out []*document.Document
	for _, d := range m.documents {
		if d.ClassID == classID && d.IsActive {
			out = append(out, d)
		}
	}
	return out, int64(len(out)), nil
}

func (m *fakeDocumentMapper) FindByTeacher(_ context.Context, teacherID string, _, _ int64) ([]*document.Document, int64, error) {
	var out []*document.Document
	for _, d := range m.documents {
		if d.TeacherID == teacherID && d.IsActive {
			out = append(out, d)
		}
	}
	return out, int64(len(out)), nil
}

type fakeScheduleMapper struct {
	schedules map[string]*schedule.Schedule
}

func newFakeScheduleMapper() *fakeScheduleMapper {
	return &fakeScheduleMapper{schedules: make(map[string]*schedule.Schedule)}
}

func (m *fakeScheduleMapper) Insert(_ context.Context, s *schedule.Schedule) error {
	for _, old := range m.schedules {
		if old.ClassID == s.ClassID && old.Day == s.Day && old.Period == s.Period {
			return consts.ErrScheduleConflict
		}
	}
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
		s.CreateTime = time.Now()
		s.UpdateTime = s.CreateTime
	}
	m.schedules[s.ID.Hex()] = s
	return nil
}

func (m *fakeScheduleMapper) Update(_ context.Context, s *schedule.Schedule) error {
	m.schedules[s.ID.Hex()] = s
	return nil
}

func (m *fakeScheduleMapper) FindOne(_ context.Context, id string) (*schedule.Schedule, error) {
	if s, ok := m.schedules[id]; ok {
		return s, nil
	}
	return nil, consts.ErrNotFound
}

func (m *fakeScheduleMapper) FindBySlot(_ context.Context, classID string, day, period int64) (*schedule.Schedule, error) {
	for _, s := range m.schedules {
		if s.ClassID == classID && s.Day == day && s.Period == period {
			return s, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (m *fakeScheduleMapper) FindByClassAndDay(_ context.Context, classID string, day int64) ([]*schedule.Schedule, error) {
	var out []*schedule.Schedule
	for _, s := range m.schedules {
		if s.ClassID == classID && (day == 0 || s.Day == day) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].Period < out[j].Period
	})
	return out, nil
}

func (m *fakeScheduleMapper) Delete(_ context.Context, id string) error {
	delete(m.schedules, id)
	return nil
}

type fakeAnalyticsCache struct {
	data map[string]*school.HomeworkAnalytics
}

func newFakeAnalyticsCache() *fakeAnalyticsCache {
	return &fakeAnalyticsCache{data: make(map[string]*school.HomeworkAnalytics)}
}

func (m *fakeAnalyticsCache) Get(_ context.Context, homeworkID string) (*school.HomeworkAnalytics, error) {
	if a, ok := m.data[homeworkID]; ok {
		return a, nil
	}
	return nil, consts.ErrNotFound
}

func (m *fakeAnalyticsCache) Set(_ context.Context, homeworkID string, data *school.HomeworkAnalytics) error {
	m.data[homeworkID] = data
	return nil
}

func (m *fakeAnalyticsCache) Delete(_ context.Context, homeworkID string) error {
	delete(m.data, homeworkID)
	return nil
}
