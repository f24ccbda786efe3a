package school

import "class-show/biz/application/dto/basic"

type SubmitHomeworkReq struct {
	HomeworkId  string           `json:"homeworkId" path:"homeworkId"`
	Content     string           `json:"content"`
	Attachments []AttachmentInfo `json:"attachments,omitempty"`
	Notes       string           `json:"notes,omitempty"`
}

type SubmissionInfo struct {
	Id            string           `json:"id"`
	HomeworkId    string           `json:"homeworkId"`
	StudentId     string           `json:"studentId"`
	StudentName   string           `json:"studentName,omitempty"`
	Content       string           `json:"content"`
	Attachments   []AttachmentInfo `json:"attachments,omitempty"`
	Status        string           `json:"status"`
	SubmittedAt   int64            `json:"submittedAt"`
	IsLate        bool             `json:"isLate"`
	Score         *int64           `json:"score,omitempty"`
	MaxScore      int64            `json:"maxScore"`
	Percentage    *int64           `json:"percentage,omitempty"`
	GradeLetter   string           `json:"gradeLetter,omitempty"`
	Feedback      string           `json:"feedback,omitempty"`
	GradedAt      int64            `json:"gradedAt,omitempty"`
	GradedBy      string           `json:"gradedBy,omitempty"`
	AttemptNumber int64            `json:"attemptNumber"`
	LatePenalty   int64            `json:"latePenalty"`
	FinalScore    *int64           `json:"finalScore,omitempty"`
}

type SubmitHomeworkResp struct {
	Submission *SubmissionInfo `json:"submission"`
}

type GradeSubmissionReq struct {
	SubmissionId string `json:"submissionId" path:"submissionId"`
	Score        int64  `json:"score"`
	Feedback     string `json:"feedback,omitempty"`
}

type GradeSubmissionResp struct {
	Submission *SubmissionInfo `json:"submission"`
}

type GetSubmissionReq struct {
	SubmissionId string `json:"submissionId" path:"submissionId"`
}

type GetSubmissionResp struct {
	Submission *SubmissionInfo `json:"submission"`
}

type ListHomeworkSubmissionsReq struct {
	HomeworkId        string                   `json:"homeworkId" path:"homeworkId"`
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListHomeworkSubmissionsResp struct {
	Submissions []*SubmissionInfo `json:"submissions"`
	Total       int64             `json:"total"`
}

type ListStudentSubmissionsReq struct {
	Status            string                   `json:"status,omitempty" query:"status"`
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListStudentSubmissionsResp struct {
	Submissions []*SubmissionInfo `json:"submissions"`
	Total       int64             `json:"total"`
}

type DeleteSubmissionReq struct {
	SubmissionId string `json:"submissionId" path:"submissionId"`
}

type DeleteSubmissionResp struct {
}
