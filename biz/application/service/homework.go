package service

import (
	"context"
	"time"

	"class-show/biz/adaptor"
	"class-show/biz/application/dto/school"
	"class-show/biz/infrastructure/cache"
	"class-show/biz/infrastructure/consts"
	"class-show/biz/infrastructure/repository/class"
	"class-show/biz/infrastructure/repository/homework"
	"class-show/biz/infrastructure/repository/user"
	"class-show/biz/infrastructure/util/grade"
	"class-show/biz/infrastructure/util/log"
	pageutil "class-show/biz/infrastructure/util/page"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

type IHomeworkService interface {
	CreateHomework(ctx context.Context, req *school.CreateHomeworkReq) (*school.CreateHomeworkResp, error)
	GetHomework(ctx context.Context, req *school.GetHomeworkReq) (*school.GetHomeworkResp, error)
	ListHomeworks(ctx context.Context, req *school.ListHomeworksReq) (*school.ListHomeworksResp, error)
	UpdateHomework(ctx context.Context, req *school.UpdateHomeworkReq) (*school.UpdateHomeworkResp, error)
	PublishHomework(ctx context.Context, req *school.PublishHomeworkReq) (*school.PublishHomeworkResp, error)
	CloseHomework(ctx context.Context, req *school.CloseHomeworkReq) (*school.CloseHomeworkResp, error)
	DeleteHomework(ctx context.Context, req *school.DeleteHomeworkReq) (*school.DeleteHomeworkResp, error)
	GetHomeworkAnalytics(ctx context.Context, req *school.GetHomeworkAnalyticsReq) (*school.GetHomeworkAnalyticsResp, error)
}

type HomeworkService struct {
	HomeworkMapper   homework.IMongoMapper
	SubmissionMapper homework.ISubmissionMongoMapper
	ClassMapper      class.IMongoMapper
	EnrollmentMapper class.IEnrollmentMongoMapper
	UserMapper       user.IMongoMapper
	AnalyticsCache   cache.IAnalyticsCacheMapper
}

var HomeworkServiceSet = wire.NewSet(
	wire.Struct(new(HomeworkService), "*"),
	wire.Bind(new(IHomeworkService), new(*HomeworkService)),
)

// CreateHomework 老师在自己班级布置作业，初始为草稿
func (s *HomeworkService) CreateHomework(ctx context.Context, req *school.CreateHomeworkReq) (*school.CreateHomeworkResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	me, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if me.Role != consts.RoleTeacher && me.Role != consts.RoleAdmin {
		return nil, consts.ErrRoleMismatch
	}

	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if me.Role == consts.RoleTeacher && c.HomeroomTeacher != me.ID.Hex() {
		return nil, consts.ErrForbidden
	}

	// 截止时间必须在未来
	dueDate := time.Unix(req.DueDate, 0)
	if !dueDate.After(time.Now()) {
		return nil, consts.ErrInvalidDeadline
	}
	if req.LatePenalty < 0 || req.LatePenalty > 100 {
		return nil, consts.ErrInvalidParams
	}

	points := req.Points
	if points <= 0 {
		points = consts.DefaultPoints
	}
	maxAttempts := req.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = consts.DefaultMaxAttempts
	}

	attachments := make([]homework.Attachment, 0, len(req.Attachments))
	for _, a := range req.Attachments {
		attachments = append(attachments, homework.Attachment{
			Name:     a.Name,
			Path:     a.Path,
			Size:     a.Size,
			MimeType: a.MimeType,
		})
	}

	h := &homework.Homework{
		Title:               req.Title,
		Description:         req.Description,
		Instructions:        req.Instructions,
		ClassID:             req.ClassId,
		TeacherID:           me.ID.Hex(),
		DueDate:             dueDate,
		Status:              consts.HomeworkStatusDraft,
		Points:              points,
		AllowLateSubmission: req.AllowLateSubmission,
		LatePenalty:         req.LatePenalty,
		MaxAttempts:         maxAttempts,
		Attachments:         attachments,
	}
	err = s.HomeworkMapper.Insert(ctx, h)
	if err != nil {
		log.Error("创建作业失败: %v", err)
		return nil, consts.ErrCreateHomework
	}

	return &school.CreateHomeworkResp{
		HomeworkId: h.ID.Hex(),
	}, nil
}

// GetHomework 获取作业详情，学生看不到草稿
func (s *HomeworkService) GetHomework(ctx context.Context, req *school.GetHomeworkReq) (*school.GetHomeworkResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	h, err := s.HomeworkMapper.FindOne(ctx, req.HomeworkId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if userMeta.GetRole() == consts.RoleStudent && h.Status == consts.HomeworkStatusDraft {
		return nil, consts.ErrNotFound
	}

	return &school.GetHomeworkResp{
		Homework: toHomeworkInfo(h),
	}, nil
}

// ListHomeworks 按班级列作业，学生过滤掉草稿
func (s *HomeworkService) ListHomeworks(ctx context.Context, req *school.ListHomeworksReq) (*school.ListHomeworksResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	me, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}

	classID := req.ClassId
	if classID == "" {
		if me.Role == consts.RoleStudent {
			classID = me.CurrentClass
		} else if me.Role == consts.RoleTeacher {
			page, pageSize := pageutil.ParsePageOpt(req.PaginationOptions)
			homeworks, total, err := s.HomeworkMapper.FindByTeacher(ctx, me.ID.Hex(), page, pageSize)
			if err != nil {
				log.Error("获取作业列表失败: %v", err)
				return nil, consts.ErrGetHomeworkList
			}
			return &school.ListHomeworksResp{Homeworks: toHomeworkInfos(homeworks), Total: total}, nil
		}
	}
	if classID == "" {
		return &school.ListHomeworksResp{Homeworks: []*school.HomeworkInfo{}, Total: 0}, nil
	}

	status := req.Status
	if me.Role == consts.RoleStudent {
		// 学生看不到草稿，未指定状态时只看已发布
		if status == "" || status == consts.HomeworkStatusDraft {
			status = consts.HomeworkStatusPublished
		}
	}

	page, pageSize := pageutil.ParsePageOpt(req.PaginationOptions)
	homeworks, total, err := s.HomeworkMapper.FindByClassID(ctx, classID, status, page, pageSize)
	if err != nil {
		log.Error("获取作业列表失败: %v", err)
		return nil, consts.ErrGetHomeworkList
	}

	return &school.ListHomeworksResp{
		Homeworks: toHomeworkInfos(homeworks),
		Total:     total,
	}, nil
}

// UpdateHomework 作业布置者修改作业，已关闭的不允许改
func (s *HomeworkService) UpdateHomework(ctx context.Context, req *school.UpdateHomeworkReq) (*school.UpdateHomeworkResp, error) {
	h, err := s.findOwnedHomework(ctx, req.HomeworkId)
	if err != nil {
		return nil, err
	}
	if h.Status == consts.HomeworkStatusClosed {
		return nil, consts.ErrHomeworkClosed
	}

	if req.Title != nil {
		h.Title = *req.Title
	}
	if req.Description != nil {
		h.Description = *req.Description
	}
	if req.Instructions != nil {
		h.Instructions = *req.Instructions
	}
	if req.DueDate != nil {
		dueDate := time.Unix(*req.DueDate, 0)
		if !dueDate.After(time.Now()) {
			return nil, consts.ErrInvalidDeadline
		}
		h.DueDate = dueDate
	}
	if req.Points != nil && *req.Points > 0 {
		h.Points = *req.Points
	}
	if req.AllowLateSubmission != nil {
		h.AllowLateSubmission = *req.AllowLateSubmission
	}
	if req.LatePenalty != nil {
		if *req.LatePenalty < 0 || *req.LatePenalty > 100 {
			return nil, consts.ErrInvalidParams
		}
		h.LatePenalty = *req.LatePenalty
	}
	if req.MaxAttempts != nil && *req.MaxAttempts > 0 {
		h.MaxAttempts = *req.MaxAttempts
	}

	err = s.HomeworkMapper.Update(ctx, h)
	if err != nil {
		log.Error("更新作业失败: %v", err)
		return nil, consts.ErrUpdate
	}

	return &school.UpdateHomeworkResp{Homework: toHomeworkInfo(h)}, nil
}

// PublishHomework 草稿发布，其他状态报冲突
func (s *HomeworkService) PublishHomework(ctx context.Context, req *school.PublishHomeworkReq) (*school.PublishHomeworkResp, error) {
	h, err := s.findOwnedHomework(ctx, req.HomeworkId)
	if err != nil {
		return nil, err
	}
	if h.Status != consts.HomeworkStatusDraft {
		if h.Status == consts.HomeworkStatusClosed {
			return nil, consts.ErrAlreadyClosed
		}
		return nil, consts.ErrAlreadyPublished
	}
	// 发布时截止时间仍需有效
	if !h.DueDate.After(time.Now()) {
		return nil, consts.ErrInvalidDeadline
	}

	h.Status = consts.HomeworkStatusPublished
	err = s.HomeworkMapper.Update(ctx, h)
	if err != nil {
		log.Error("发布作业失败: %v", err)
		return nil, consts.ErrUpdate
	}

	return &school.PublishHomeworkResp{Homework: toHomeworkInfo(h)}, nil
}

// CloseHomework 关闭作业，关闭后不再接收提交
func (s *HomeworkService) CloseHomework(ctx context.Context, req *school.CloseHomeworkReq) (*school.CloseHomeworkResp, error) {
	h, err := s.findOwnedHomework(ctx, req.HomeworkId)
	if err != nil {
		return nil, err
	}
	if h.Status == consts.HomeworkStatusClosed {
		return nil, consts.ErrAlreadyClosed
	}

	h.Status = consts.HomeworkStatusClosed
	err = s.HomeworkMapper.Update(ctx, h)
	if err != nil {
		log.Error("关闭作业失败: %v", err)
		return nil, consts.ErrUpdate
	}

	return &school.CloseHomeworkResp{Homework: toHomeworkInfo(h)}, nil
}

// DeleteHomework 删除作业，已有提交时不允许
func (s *HomeworkService) DeleteHomework(ctx context.Context, req *school.DeleteHomeworkReq) (*school.DeleteHomeworkResp, error) {
	h, err := s.findOwnedHomework(ctx, req.HomeworkId)
	if err != nil {
		return nil, err
	}

	count, err := s.SubmissionMapper.CountByHomeworkID(ctx, h.ID.Hex())
	if err != nil {
		log.Error("统计提交数失败: %v", err)
		return nil, consts.ErrUpdate
	}
	if count > 0 {
		return nil, consts.ErrHasSubmissions
	}

	err = s.HomeworkMapper.Delete(ctx, h.ID.Hex())
	if err != nil {
		log.Error("删除作业失败: %v", err)
		return nil, consts.ErrUpdate
	}

	if err := s.AnalyticsCache.Delete(ctx, h.ID.Hex()); err != nil {
		log.Error("清除统计缓存失败: %v", err)
	}

	return &school.DeleteHomeworkResp{}, nil
}

// GetHomeworkAnalytics 作业统计视图：从提交行重算，短期缓存
func (s *HomeworkService) GetHomeworkAnalytics(ctx context.Context, req *school.GetHomeworkAnalyticsReq) (*school.GetHomeworkAnalyticsResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if userMeta.GetRole() == consts.RoleStudent {
		return nil, consts.ErrForbidden
	}

	h, err := s.HomeworkMapper.FindOne(ctx, req.HomeworkId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	if cached, err := s.AnalyticsCache.Get(ctx, req.HomeworkId); err == nil {
		return &school.GetHomeworkAnalyticsResp{Analytics: cached}, nil
	}

	submissions, err := s.SubmissionMapper.FindAllByHomeworkID(ctx, req.HomeworkId)
	if err != nil {
		log.Error("获取提交列表失败: %v", err)
		return nil, consts.ErrGetAnalytics
	}

	totalStudents, err := s.EnrollmentMapper.CountEnrolled(ctx, h.ClassID)
	if err != nil {
		log.Error("统计班级人数失败: %v", err)
		return nil, consts.ErrGetAnalytics
	}

	graded := lo.Filter(submissions, func(sub *homework.Submission, _ int) bool {
		return sub.Status == consts.SubmissionStatusGraded && sub.Score != nil
	})
	late := lo.CountBy(submissions, func(sub *homework.Submission) bool {
		return sub.IsLate
	})
	scores := lo.Map(graded, func(sub *homework.Submission, _ int) int64 {
		return *sub.Score
	})
	percentages := lo.Map(graded, func(sub *homework.Submission, _ int) int64 {
		return grade.Percentage(*sub.Score, sub.MaxScore)
	})
	counts := lo.CountValuesBy(percentages, grade.Letter)
	// 五档都给出，空档为0
	distribution := make(map[string]int64, 5)
	for _, letter := range []string{"A", "B", "C", "D", "F"} {
		distribution[letter] = int64(counts[letter])
	}

	analytics := &school.HomeworkAnalytics{
		TotalStudents:     totalStudents,
		TotalSubmissions:  int64(len(submissions)),
		SubmissionRate:    grade.Rate(int64(len(submissions)), totalStudents),
		GradedSubmissions: int64(len(graded)),
		LateSubmissions:   int64(late),
		AverageScore:      grade.Average(scores),
		ScoreDistribution: distribution,
	}

	if err := s.AnalyticsCache.Set(ctx, req.HomeworkId, analytics); err != nil {
		log.Error("写入统计缓存失败: %v", err)
	}

	return &school.GetHomeworkAnalyticsResp{Analytics: analytics}, nil
}

// RecomputeStats 从提交行重算作业上缓存的统计字段，失败不影响主流程
func (s *HomeworkService) RecomputeStats(ctx context.Context, homeworkID string) {
	submissions, err := s.SubmissionMapper.FindAllByHomeworkID(ctx, homeworkID)
	if err != nil {
		log.CtxError(ctx, "重算作业统计失败: %v", err)
		return
	}

	// 平均分按原始得分计算，不做百分比折算
	var scores []int64
	for _, sub := range submissions {
		if sub.Status == consts.SubmissionStatusGraded && sub.Score != nil {
			scores = append(scores, *sub.Score)
		}
	}

	err = s.HomeworkMapper.UpdateStats(ctx, homeworkID, int64(len(submissions)), grade.Average(scores))
	if err != nil {
		log.CtxError(ctx, "重算作业统计失败: %v", err)
	}
}

// findOwnedHomework 取作业并校验调用者是布置者或管理员
func (s *HomeworkService) findOwnedHomework(ctx context.Context, homeworkID string) (*homework.Homework, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	h, err := s.HomeworkMapper.FindOne(ctx, homeworkID)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if userMeta.GetRole() != consts.RoleAdmin && h.TeacherID != userMeta.GetUserId() {
		return nil, consts.ErrForbidden
	}
	return h, nil
}

func toHomeworkInfo(h *homework.Homework) *school.HomeworkInfo {
	info := &school.HomeworkInfo{}
	_ = copier.Copy(info, h)
	info.Id = h.ID.Hex()
	info.ClassId = h.ClassID
	info.TeacherId = h.TeacherID
	info.DueDate = h.DueDate.Unix()
	info.CreateTime = h.CreateTime.Unix()
	return info
}

func toHomeworkInfos(homeworks []*homework.Homework) []*school.HomeworkInfo {
	infos := make([]*school.HomeworkInfo, 0, len(homeworks))
	for _, h := range homeworks {
		infos = append(infos, toHomeworkInfo(h))
	}
	return infos
}
