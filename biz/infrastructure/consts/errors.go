package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// Code 返回错误码
func (en *Errno) Code() codes.Code {
	return en.code
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 鉴权与资源错误：使用标准grpc错误码，由adaptor映射为对应HTTP状态码
var (
	ErrNotAuthentication = NewErrno(codes.Unauthenticated, errors.New("not authentication"))
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrRoleMismatch      = NewErrno(codes.PermissionDenied, errors.New("用户角色不符合当前操作要求"))
	ErrNotFound          = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId   = NewErrno(codes.InvalidArgument, errors.New("无效的id"))
	ErrInvalidParams     = NewErrno(codes.InvalidArgument, errors.New("参数错误"))
)

// 业务状态错误：映射为409
var (
	ErrAlreadyEnrolled     = NewErrno(codes.AlreadyExists, errors.New("学生已有生效中的班级，请先完成或退出当前班级"))
	ErrAlreadyInClass      = NewErrno(codes.AlreadyExists, errors.New("学生已在该班级中"))
	ErrClassCodeTaken      = NewErrno(codes.AlreadyExists, errors.New("班级代码已存在"))
	ErrCapacityExceeded    = NewErrno(codes.FailedPrecondition, errors.New("班级人数已达上限"))
	ErrInvalidDeadline     = NewErrno(codes.InvalidArgument, errors.New("截止时间必须晚于当前时间"))
	ErrHomeworkClosed      = NewErrno(codes.FailedPrecondition, errors.New("作业已关闭，无法修改"))
	ErrAlreadyPublished    = NewErrno(codes.FailedPrecondition, errors.New("作业已发布"))
	ErrAlreadyClosed       = NewErrno(codes.FailedPrecondition, errors.New("作业已关闭"))
	ErrHomeworkNotOpen     = NewErrno(codes.FailedPrecondition, errors.New("作业未发布，无法提交"))
	ErrHasSubmissions      = NewErrno(codes.FailedPrecondition, errors.New("作业已有提交记录，无法删除"))
	ErrDeadlinePassed      = NewErrno(codes.FailedPrecondition, errors.New("已过截止时间，无法提交"))
	ErrAttemptsExceeded    = NewErrno(codes.FailedPrecondition, errors.New("提交次数已达上限"))
	ErrAlreadyGraded       = NewErrno(codes.FailedPrecondition, errors.New("该提交已批改"))
	ErrSubmissionLocked    = NewErrno(codes.FailedPrecondition, errors.New("已过截止时间且未批改的提交无法删除"))
	ErrScoreOutOfRange     = NewErrno(codes.OutOfRange, errors.New("分数超出有效范围"))
	ErrScheduleConflict    = NewErrno(codes.AlreadyExists, errors.New("该班级在此时段已有课程安排"))
	ErrEmailTaken          = NewErrno(codes.AlreadyExists, errors.New("该邮箱已注册"))
	ErrDocumentUnavailable = NewErrno(codes.FailedPrecondition, errors.New("资料已删除"))
)

// 操作失败错误：内部错误，映射为500
var (
	ErrSignUp           = NewErrno(codes.Code(1001), errors.New("注册失败，请重试"))
	ErrSignIn           = NewErrno(codes.Code(1002), errors.New("邮箱或密码错误"))
	ErrCreateClass      = NewErrno(codes.Code(1003), errors.New("创建班级失败"))
	ErrGetClassList     = NewErrno(codes.Code(1004), errors.New("获取班级列表失败"))
	ErrGetClassMembers  = NewErrno(codes.Code(1005), errors.New("获取班级成员失败"))
	ErrEnroll           = NewErrno(codes.Code(1006), errors.New("学生入班失败"))
	ErrTransfer         = NewErrno(codes.Code(1007), errors.New("学生转班失败"))
	ErrCreateHomework   = NewErrno(codes.Code(1008), errors.New("创建作业失败"))
	ErrGetHomeworkList  = NewErrno(codes.Code(1009), errors.New("获取作业列表失败"))
	ErrSubmitHomework   = NewErrno(codes.Code(1010), errors.New("提交作业失败"))
	ErrGradeSubmission  = NewErrno(codes.Code(1011), errors.New("批改作业失败"))
	ErrGetSubmission    = NewErrno(codes.Code(1012), errors.New("获取提交详情失败"))
	ErrGetHomework      = NewErrno(codes.Code(1013), errors.New("获取作业详情失败"))
	ErrGetAnalytics     = NewErrno(codes.Code(1014), errors.New("获取作业统计失败"))
	ErrCreateDocument   = NewErrno(codes.Code(1015), errors.New("上传资料失败"))
	ErrGetDocumentList  = NewErrno(codes.Code(1016), errors.New("获取资料列表失败"))
	ErrCreateSchedule   = NewErrno(codes.Code(1017), errors.New("创建课程表失败"))
	ErrGetScheduleList  = NewErrno(codes.Code(1018), errors.New("获取课程表失败"))
	ErrApplySignedUrl   = NewErrno(codes.Code(1019), errors.New("申请加签url失败"))
	ErrUpdate           = NewErrno(codes.Code(2001), errors.New("更新失败"))
)
