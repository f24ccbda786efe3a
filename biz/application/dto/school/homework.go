package school

import "class-show/biz/application/dto/basic"

type AttachmentInfo struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Size     int64  `json:"size,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

type CreateHomeworkReq struct {
	Title               string           `json:"title" vd:"len($)>0"`
	Description         string           `json:"description"`
	Instructions        string           `json:"instructions,omitempty"`
	ClassId             string           `json:"classId" vd:"len($)>0"`
	DueDate             int64            `json:"dueDate" vd:"$>0"` // unix秒
	Points              int64            `json:"points,omitempty"`
	AllowLateSubmission bool             `json:"allowLateSubmission,omitempty"`
	LatePenalty         int64            `json:"latePenalty,omitempty"`
	MaxAttempts         int64            `json:"maxAttempts,omitempty"`
	Attachments         []AttachmentInfo `json:"attachments,omitempty"`
}

type CreateHomeworkResp struct {
	HomeworkId string `json:"homeworkId"`
}

type HomeworkInfo struct {
	Id                  string           `json:"id"`
	Title               string           `json:"title"`
	Description         string           `json:"description"`
	Instructions        string           `json:"instructions,omitempty"`
	ClassId             string           `json:"classId"`
	TeacherId           string           `json:"teacherId"`
	DueDate             int64            `json:"dueDate"`
	Status              string           `json:"status"`
	Points              int64            `json:"points"`
	AllowLateSubmission bool             `json:"allowLateSubmission"`
	LatePenalty         int64            `json:"latePenalty"`
	MaxAttempts         int64            `json:"maxAttempts"`
	Attachments         []AttachmentInfo `json:"attachments,omitempty"`
	TotalSubmissions    int64            `json:"totalSubmissions"`
	AverageScore        int64            `json:"averageScore"`
	CreateTime          int64            `json:"createTime"`
}

type GetHomeworkReq struct {
	HomeworkId string `json:"homeworkId" path:"homeworkId"`
}

type GetHomeworkResp struct {
	Homework *HomeworkInfo `json:"homework"`
}

type ListHomeworksReq struct {
	ClassId           string                   `json:"classId,omitempty" query:"classId"`
	Status            string                   `json:"status,omitempty" query:"status"`
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListHomeworksResp struct {
	Homeworks []*HomeworkInfo `json:"homeworks"`
	Total     int64           `json:"total"`
}

type UpdateHomeworkReq struct {
	HomeworkId          string  `json:"homeworkId" path:"homeworkId"`
	Title               *string `json:"title,omitempty"`
	Description         *string `json:"description,omitempty"`
	Instructions        *string `json:"instructions,omitempty"`
	DueDate             *int64  `json:"dueDate,omitempty"`
	Points              *int64  `json:"points,omitempty"`
	AllowLateSubmission *bool   `json:"allowLateSubmission,omitempty"`
	LatePenalty         *int64  `json:"latePenalty,omitempty"`
	MaxAttempts         *int64  `json:"maxAttempts,omitempty"`
}

type UpdateHomeworkResp struct {
	Homework *HomeworkInfo `json:"homework"`
}

type PublishHomeworkReq struct {
	HomeworkId string `json:"homeworkId" path:"homeworkId"`
}

type PublishHomeworkResp struct {
	Homework *HomeworkInfo `json:"homework"`
}

type CloseHomeworkReq struct {
	HomeworkId string `json:"homeworkId" path:"homeworkId"`
}

type CloseHomeworkResp struct {
	Homework *HomeworkInfo `json:"homework"`
}

type DeleteHomeworkReq struct {
	HomeworkId string `json:"homeworkId" path:"homeworkId"`
}

type DeleteHomeworkResp struct {
}

type GetHomeworkAnalyticsReq struct {
	HomeworkId string `json:"homeworkId" path:"homeworkId"`
}

// HomeworkAnalytics 分析视图，总是从提交行重算，不信任作业上的缓存字段
type HomeworkAnalytics struct {
	TotalStudents     int64            `json:"totalStudents"`
	TotalSubmissions  int64            `json:"totalSubmissions"`
	SubmissionRate    int64            `json:"submissionRate"`
	GradedSubmissions int64            `json:"gradedSubmissions"`
	LateSubmissions   int64            `json:"lateSubmissions"`
	AverageScore      int64            `json:"averageScore"`
	ScoreDistribution map[string]int64 `json:"scoreDistribution"`
}

type GetHomeworkAnalyticsResp struct {
	Analytics *HomeworkAnalytics `json:"analytics"`
}
