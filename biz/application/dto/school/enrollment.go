package school

import "class-show/biz/application/dto/basic"

type EnrollStudentReq struct {
	StudentId string `json:"studentId" vd:"len($)>0"`
	ClassId   string `json:"classId" path:"classId"`
	Notes     string `json:"notes,omitempty"`
}

type EnrollmentInfo struct {
	Id          string `json:"id"`
	StudentId   string `json:"studentId"`
	StudentName string `json:"studentName,omitempty"`
	ClassId     string `json:"classId"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
	EnrolledAt  int64  `json:"enrolledAt"`
	CompletedAt int64  `json:"completedAt,omitempty"`
	DroppedAt   int64  `json:"droppedAt,omitempty"`
}

type EnrollStudentResp struct {
	Enrollment *EnrollmentInfo `json:"enrollment"`
}

type TransferStudentReq struct {
	StudentId  string `json:"studentId" vd:"len($)>0"`
	NewClassId string `json:"newClassId" vd:"len($)>0"`
	Notes      string `json:"notes,omitempty"`
}

type TransferStudentResp struct {
	Enrollment *EnrollmentInfo `json:"enrollment"`
}

type UpdateEnrollmentReq struct {
	EnrollmentId string `json:"enrollmentId" path:"enrollmentId"`
	Status       string `json:"status" vd:"len($)>0"`
	Notes        string `json:"notes,omitempty"`
}

type UpdateEnrollmentResp struct {
	Enrollment *EnrollmentInfo `json:"enrollment"`
}

type GetEnrollmentReq struct {
	EnrollmentId string `json:"enrollmentId" path:"enrollmentId"`
}

type GetEnrollmentResp struct {
	Enrollment *EnrollmentInfo `json:"enrollment"`
}

type ListEnrollmentsReq struct {
	ClassId           string                   `json:"classId" path:"classId"`
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListEnrollmentsResp struct {
	Enrollments []*EnrollmentInfo `json:"enrollments"`
	Total       int64             `json:"total"`
}
