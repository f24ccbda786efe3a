package school

type CreateScheduleReq struct {
	ClassId string `json:"classId" vd:"len($)>0"`
	Day     int64  `json:"day" vd:"$>=1&&$<=7"`
	Period  int64  `json:"period" vd:"$>=1&&$<=10"`
	Subject string `json:"subject" vd:"len($)>0"`
	Room    string `json:"room,omitempty"`
}

type ScheduleInfo struct {
	Id      string `json:"id"`
	ClassId string `json:"classId"`
	Day     int64  `json:"day"`
	Period  int64  `json:"period"`
	Subject string `json:"subject"`
	Room    string `json:"room,omitempty"`
}

type CreateScheduleResp struct {
	Schedule *ScheduleInfo `json:"schedule"`
}

type ListSchedulesReq struct {
	ClassId string `json:"classId" path:"classId"`
	Day     int64  `json:"day,omitempty" query:"day"`
}

type ListSchedulesResp struct {
	Schedules []*ScheduleInfo `json:"schedules"`
}

type UpdateScheduleReq struct {
	ScheduleId string  `json:"scheduleId" path:"scheduleId"`
	Day        *int64  `json:"day,omitempty"`
	Period     *int64  `json:"period,omitempty"`
	Subject    *string `json:"subject,omitempty"`
	Room       *string `json:"room,omitempty"`
}

type UpdateScheduleResp struct {
	Schedule *ScheduleInfo `json:"schedule"`
}

type DeleteScheduleReq struct {
	ScheduleId string `json:"scheduleId" path:"scheduleId"`
}

type DeleteScheduleResp struct {
}

type UpcomingSchedulesReq struct {
	ClassId string `json:"classId" path:"classId"`
}

type UpcomingSchedulesResp struct {
	Schedules []*ScheduleInfo `json:"schedules"`
}
