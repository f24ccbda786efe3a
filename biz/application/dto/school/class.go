package school

import "class-show/biz/application/dto/basic"

type CreateClassReq struct {
	Name            string `json:"name" vd:"len($)>0"`
	Code            string `json:"code" vd:"len($)>0"`
	Description     string `json:"description,omitempty"`
	HomeroomTeacher string `json:"homeroomTeacher,omitempty"`
	MaxStudents     int64  `json:"maxStudents,omitempty"`
}

type CreateClassResp struct {
	ClassId string `json:"classId"`
	Code    string `json:"code"`
}

type GetClassReq struct {
	ClassId string `json:"classId" path:"classId"`
}

type ClassInfo struct {
	Id              string `json:"id"`
	Name            string `json:"name"`
	Code            string `json:"code"`
	Description     string `json:"description"`
	HomeroomTeacher string `json:"homeroomTeacher,omitempty"`
	TeacherName     string `json:"teacherName,omitempty"`
	StudentCount    int64  `json:"studentCount"`
	MaxStudents     int64  `json:"maxStudents"`
	IsActive        bool   `json:"isActive"`
	CreateTime      int64  `json:"createTime"`
}

type GetClassResp struct {
	Class *ClassInfo `json:"class"`
}

type ListClassesReq struct {
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListClassesResp struct {
	Classes []*ClassInfo `json:"classes"`
	Total   int64        `json:"total"`
}

type UpdateClassReq struct {
	ClassId         string  `json:"classId" path:"classId"`
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	HomeroomTeacher *string `json:"homeroomTeacher,omitempty"`
	MaxStudents     *int64  `json:"maxStudents,omitempty"`
}

type UpdateClassResp struct {
	Class *ClassInfo `json:"class"`
}

type DeactivateClassReq struct {
	ClassId string `json:"classId" path:"classId"`
}

type DeactivateClassResp struct {
}

type GetClassMembersReq struct {
	ClassId           string                   `json:"classId" path:"classId"`
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ClassMemberInfo struct {
	UserId     string `json:"userId"`
	UserName   string `json:"userName"`
	Email      string `json:"email"`
	Status     string `json:"status"`
	EnrolledAt int64  `json:"enrolledAt"`
}

type GetClassMembersResp struct {
	Members []*ClassMemberInfo `json:"members"`
	Total   int64              `json:"total"`
}
