package service

import (
	"context"
	"time"

	"class-show/biz/adaptor"
	"class-show/biz/application/dto/school"
	"class-show/biz/infrastructure/cache"
	"class-show/biz/infrastructure/consts"
	"class-show/biz/infrastructure/repository/homework"
	"class-show/biz/infrastructure/repository/user"
	"class-show/biz/infrastructure/util/grade"
	"class-show/biz/infrastructure/util/log"
	pageutil "class-show/biz/infrastructure/util/page"

	"github.com/google/wire"
)

type ISubmissionService interface {
	SubmitHomework(ctx context.Context, req *school.SubmitHomeworkReq) (*school.SubmitHomeworkResp, error)
	GradeSubmission(ctx context.Context, req *school.GradeSubmissionReq) (*school.GradeSubmissionResp, error)
	GetSubmission(ctx context.Context, req *school.GetSubmissionReq) (*school.GetSubmissionResp, error)
	ListHomeworkSubmissions(ctx context.Context, req *school.ListHomeworkSubmissionsReq) (*school.ListHomeworkSubmissionsResp, error)
	ListStudentSubmissions(ctx context.Context, req *school.ListStudentSubmissionsReq) (*school.ListStudentSubmissionsResp, error)
	DeleteSubmission(ctx context.Context, req *school.DeleteSubmissionReq) (*school.DeleteSubmissionResp, error)
}

type SubmissionService struct {
	SubmissionMapper homework.ISubmissionMongoMapper
	HomeworkMapper   homework.IMongoMapper
	UserMapper       user.IMongoMapper
	AnalyticsCache   cache.IAnalyticsCacheMapper
	HomeworkService  *HomeworkService
}

var SubmissionServiceSet = wire.NewSet(
	wire.Struct(new(SubmissionService), "*"),
	wire.Bind(new(ISubmissionService), new(*SubmissionService)),
)

// SubmitHomework 学生提交作业
// 校验顺序：作业存在 -> 已发布 -> 截止/迟交 -> 次数，max_score与late_penalty
// 提交时从作业冻结，之后作业改动不影响已有提交的计分
func (s *SubmissionService) SubmitHomework(ctx context.Context, req *school.SubmitHomeworkReq) (*school.SubmitHomeworkResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	h, err := s.HomeworkMapper.FindOne(ctx, req.HomeworkId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if h.Status != consts.HomeworkStatusPublished {
		if h.Status == consts.HomeworkStatusClosed {
			return nil, consts.ErrHomeworkClosed
		}
		return nil, consts.ErrHomeworkNotOpen
	}

	// 服务端校验学生身份与所在班级，不信任客户端
	student, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if student.Role != consts.RoleStudent {
		return nil, consts.ErrRoleMismatch
	}
	if student.CurrentClass != h.ClassID {
		return nil, consts.ErrForbidden
	}

	now := time.Now()
	isLate := now.After(h.DueDate)
	if isLate && !h.AllowLateSubmission {
		return nil, consts.ErrDeadlinePassed
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

	var sub *homework.Submission
	if old, err := s.SubmissionMapper.FindByStudentAndHomework(ctx, userMeta.GetUserId(), req.HomeworkId); err == nil {
		// 重新提交：已批改的不允许覆盖，次数受max_attempts限制
		if old.Status == consts.SubmissionStatusGraded {
			return nil, consts.ErrAlreadyGraded
		}
		if old.AttemptNumber >= h.MaxAttempts {
			return nil, consts.ErrAttemptsExceeded
		}
		// 在副本上构造新内容，读到的行保持原样供乐观校验比对
		expect := old.AttemptNumber
		updated := *old
		updated.Content = req.Content
		updated.Attachments = attachments
		updated.Notes = req.Notes
		updated.SubmittedAt = now
		updated.IsLate = isLate
		updated.AttemptNumber = expect + 1
		updated.MaxScore = h.Points
		updated.LatePenalty = h.LatePenalty
		// 乐观更新，并发重交只允许一个成功
		if err := s.SubmissionMapper.UpdateAttempt(ctx, &updated, expect); err != nil {
			log.Error("提交作业失败: %v", err)
			return nil, consts.ErrSubmitHomework
		}
		sub = &updated
	} else {
		sub = &homework.Submission{
			HomeworkID:    req.HomeworkId,
			StudentID:     userMeta.GetUserId(),
			ClassID:       h.ClassID,
			Content:       req.Content,
			Attachments:   attachments,
			Notes:         req.Notes,
			Status:        consts.SubmissionStatusSubmitted,
			SubmittedAt:   now,
			IsLate:        isLate,
			MaxScore:      h.Points,
			LatePenalty:   h.LatePenalty,
			AttemptNumber: 1,
		}
		if err := s.SubmissionMapper.Insert(ctx, sub); err != nil {
			log.Error("提交作业失败: %v", err)
			if _, ok := err.(*consts.Errno); ok {
				return nil, err
			}
			return nil, consts.ErrSubmitHomework
		}
	}

	// 统计刷新与缓存失效尽力而为
	s.HomeworkService.RecomputeStats(ctx, req.HomeworkId)
	if err := s.AnalyticsCache.Delete(ctx, req.HomeworkId); err != nil {
		log.Error("清除统计缓存失败: %v", err)
	}

	return &school.SubmitHomeworkResp{
		Submission: s.toSubmissionInfo(ctx, sub),
	}, nil
}

// GradeSubmission 老师批改提交，percentage/finalScore按冻结的max_score与late_penalty派生
func (s *SubmissionService) GradeSubmission(ctx context.Context, req *school.GradeSubmissionReq) (*school.GradeSubmissionResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	sub, err := s.SubmissionMapper.FindOne(ctx, req.SubmissionId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	h, err := s.HomeworkMapper.FindOne(ctx, sub.HomeworkID)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if userMeta.GetRole() != consts.RoleAdmin && h.TeacherID != userMeta.GetUserId() {
		return nil, consts.ErrForbidden
	}

	if sub.Status == consts.SubmissionStatusGraded {
		return nil, consts.ErrAlreadyGraded
	}
	if req.Score < 0 || req.Score > sub.MaxScore {
		return nil, consts.ErrScoreOutOfRange
	}

	score := req.Score
	percentage := grade.Percentage(score, sub.MaxScore)
	finalScore := grade.FinalScore(score, sub.IsLate, sub.LatePenalty)

	sub.Score = &score
	sub.Percentage = &percentage
	sub.FinalScore = &finalScore
	sub.GradeLetter = grade.Letter(percentage)
	sub.Feedback = req.Feedback
	sub.Status = consts.SubmissionStatusGraded
	sub.GradedAt = time.Now()
	sub.GradedBy = userMeta.GetUserId()

	if err := s.SubmissionMapper.Update(ctx, sub); err != nil {
		log.Error("批改作业失败: %v", err)
		return nil, consts.ErrGradeSubmission
	}

	s.HomeworkService.RecomputeStats(ctx, sub.HomeworkID)
	if err := s.AnalyticsCache.Delete(ctx, sub.HomeworkID); err != nil {
		log.Error("清除统计缓存失败: %v", err)
	}

	return &school.GradeSubmissionResp{
		Submission: s.toSubmissionInfo(ctx, sub),
	}, nil
}

// GetSubmission 学生只能看自己的提交，老师只能看自己作业下的提交
func (s *SubmissionService) GetSubmission(ctx context.Context, req *school.GetSubmissionReq) (*school.GetSubmissionResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	sub, err := s.SubmissionMapper.FindOne(ctx, req.SubmissionId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	if err := s.checkSubmissionAccess(ctx, userMeta.GetUserId(), userMeta.GetRole(), sub); err != nil {
		return nil, err
	}

	return &school.GetSubmissionResp{
		Submission: s.toSubmissionInfo(ctx, sub),
	}, nil
}

// ListHomeworkSubmissions 老师查看某作业的全部提交
func (s *SubmissionService) ListHomeworkSubmissions(ctx context.Context, req *school.ListHomeworkSubmissionsReq) (*school.ListHomeworkSubmissionsResp, error) {
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
	if userMeta.GetRole() != consts.RoleAdmin && h.TeacherID != userMeta.GetUserId() {
		return nil, consts.ErrForbidden
	}

	page, pageSize := pageutil.ParsePageOpt(req.PaginationOptions)
	submissions, total, err := s.SubmissionMapper.FindByHomeworkID(ctx, req.HomeworkId, page, pageSize)
	if err != nil {
		log.Error("获取提交列表失败: %v", err)
		return nil, consts.ErrGetSubmission
	}

	return &school.ListHomeworkSubmissionsResp{
		Submissions: s.toSubmissionInfos(ctx, submissions),
		Total:       total,
	}, nil
}

// ListStudentSubmissions 学生查看自己的提交历史
func (s *SubmissionService) ListStudentSubmissions(ctx context.Context, req *school.ListStudentSubmissionsReq) (*school.ListStudentSubmissionsResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	page, pageSize := pageutil.ParsePageOpt(req.PaginationOptions)
	submissions, total, err := s.SubmissionMapper.FindByStudent(ctx, userMeta.GetUserId(), req.Status, page, pageSize)
	if err != nil {
		log.Error("获取提交列表失败: %v", err)
		return nil, consts.ErrGetSubmission
	}

	return &school.ListStudentSubmissionsResp{
		Submissions: s.toSubmissionInfos(ctx, submissions),
		Total:       total,
	}, nil
}

// DeleteSubmission 学生撤回自己的提交
// 仅"已过截止且未批改"的提交锁定不可删，其余情况本人都可撤回
func (s *SubmissionService) DeleteSubmission(ctx context.Context, req *school.DeleteSubmissionReq) (*school.DeleteSubmissionResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	sub, err := s.SubmissionMapper.FindOne(ctx, req.SubmissionId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if sub.StudentID != userMeta.GetUserId() {
		return nil, consts.ErrForbidden
	}

	h, err := s.HomeworkMapper.FindOne(ctx, sub.HomeworkID)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	deadlinePassed := time.Now().After(h.DueDate)
	graded := sub.Status == consts.SubmissionStatusGraded
	if deadlinePassed && !graded {
		return nil, consts.ErrSubmissionLocked
	}

	if err := s.SubmissionMapper.Delete(ctx, req.SubmissionId); err != nil {
		log.Error("删除提交失败: %v", err)
		return nil, consts.ErrUpdate
	}

	s.HomeworkService.RecomputeStats(ctx, sub.HomeworkID)
	if err := s.AnalyticsCache.Delete(ctx, sub.HomeworkID); err != nil {
		log.Error("清除统计缓存失败: %v", err)
	}

	return &school.DeleteSubmissionResp{}, nil
}

// checkSubmissionAccess 提交可见性：本人、作业布置者或管理员
func (s *SubmissionService) checkSubmissionAccess(ctx context.Context, userID, role string, sub *homework.Submission) error {
	if sub.StudentID == userID || role == consts.RoleAdmin {
		return nil
	}
	h, err := s.HomeworkMapper.FindOne(ctx, sub.HomeworkID)
	if err != nil {
		return consts.ErrNotFound
	}
	if h.TeacherID != userID {
		return consts.ErrForbidden
	}
	return nil
}

func (s *SubmissionService) toSubmissionInfo(ctx context.Context, sub *homework.Submission) *school.SubmissionInfo {
	attachments := make([]school.AttachmentInfo, 0, len(sub.Attachments))
	for _, a := range sub.Attachments {
		attachments = append(attachments, school.AttachmentInfo{
			Name:     a.Name,
			Path:     a.Path,
			Size:     a.Size,
			MimeType: a.MimeType,
		})
	}

	info := &school.SubmissionInfo{
		Id:            sub.ID.Hex(),
		HomeworkId:    sub.HomeworkID,
		StudentId:     sub.StudentID,
		Content:       sub.Content,
		Attachments:   attachments,
		Status:        sub.Status,
		SubmittedAt:   sub.SubmittedAt.Unix(),
		IsLate:        sub.IsLate,
		Score:         sub.Score,
		MaxScore:      sub.MaxScore,
		Percentage:    sub.Percentage,
		GradeLetter:   sub.GradeLetter,
		Feedback:      sub.Feedback,
		GradedBy:      sub.GradedBy,
		AttemptNumber: sub.AttemptNumber,
		LatePenalty:   sub.LatePenalty,
		FinalScore:    sub.FinalScore,
	}
	if !sub.GradedAt.IsZero() {
		info.GradedAt = sub.GradedAt.Unix()
	}
	if u, err := s.UserMapper.FindOne(ctx, sub.StudentID); err == nil {
		info.StudentName = u.FullName()
	}
	return info
}

func (s *SubmissionService) toSubmissionInfos(ctx context.Context, submissions []*homework.Submission) []*school.SubmissionInfo {
	infos := make([]*school.SubmissionInfo, 0, len(submissions))
	for _, sub := range submissions {
		infos = append(infos, s.toSubmissionInfo(ctx, sub))
	}
	return infos
}
