package school

import "class-show/biz/application/dto/basic"

type RegisterReq struct {
	Email     string `json:"email" vd:"len($)>0"`
	Password  string `json:"password" vd:"len($)>=8"`
	FirstName string `json:"firstName" vd:"len($)>0"`
	LastName  string `json:"lastName" vd:"len($)>0"`
	Role      string `json:"role,omitempty"`
}

type RegisterResp struct {
	Id           string `json:"id"`
	AccessToken  string `json:"accessToken"`
	AccessExpire int64  `json:"accessExpire"`
	Name         string `json:"name"`
}

type LoginReq struct {
	Email    string `json:"email" vd:"len($)>0"`
	Password string `json:"password" vd:"len($)>0"`
}

type LoginResp struct {
	Id           string `json:"id"`
	AccessToken  string `json:"accessToken"`
	AccessExpire int64  `json:"accessExpire"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}

type GetMeReq struct {
}

type UserInfo struct {
	Id           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Phone        string `json:"phone,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
	CurrentClass string `json:"currentClass,omitempty"`
	CreateTime   int64  `json:"createTime"`
}

type GetMeResp struct {
	User *UserInfo `json:"user"`
}

type UpdateUserInfoReq struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

type UpdateUserInfoResp struct {
	User *UserInfo `json:"user"`
}

type ListUsersReq struct {
	Role              string                   `json:"role,omitempty" query:"role"`
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListUsersResp struct {
	Users []*UserInfo `json:"users"`
	Total int64       `json:"total"`
}
