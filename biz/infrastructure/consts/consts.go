package consts

var PageSize int64 = 10

// 数据库相关
const (
	ID         = "_id"
	UserID     = "user_id"
	Status     = "status"
	CreateTime = "create_time"
	NotEqual   = "$ne"
)

// 用户角色
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// 作业状态
const (
	HomeworkStatusDraft     = "draft"
	HomeworkStatusPublished = "published"
	HomeworkStatusClosed    = "closed"
)

// 提交状态
const (
	SubmissionStatusSubmitted = "submitted"
	SubmissionStatusGraded    = "graded"
)

// 选课状态
const (
	EnrollmentStatusEnrolled  = "enrolled"
	EnrollmentStatusCompleted = "completed"
	EnrollmentStatusDropped   = "dropped"
	EnrollmentStatusSuspended = "suspended"
)

// 默认值
const (
	DefaultMaxStudents = 30
	DefaultMaxAttempts = 1
	DefaultPoints      = 100
	MinDayOfWeek       = 1
	MaxDayOfWeek       = 7
	MinPeriod          = 1
	MaxPeriod          = 10
)
