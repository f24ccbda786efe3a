package service

import (
	"context"
	"strings"
	"time"

	"class-show/biz/adaptor"
	"class-show/biz/application/dto/school"
	"class-show/biz/infrastructure/consts"
	"class-show/biz/infrastructure/repository/user"
	"class-show/biz/infrastructure/util/log"
	pageutil "class-show/biz/infrastructure/util/page"

	"github.com/google/wire"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *school.RegisterReq) (*school.RegisterResp, error)
	Login(ctx context.Context, req *school.LoginReq) (*school.LoginResp, error)
	GetMe(ctx context.Context, req *school.GetMeReq) (*school.GetMeResp, error)
	UpdateUserInfo(ctx context.Context, req *school.UpdateUserInfoReq) (*school.UpdateUserInfoResp, error)
	ListUsers(ctx context.Context, req *school.ListUsersReq) (*school.ListUsersResp, error)
}

type AuthService struct {
	UserMapper user.IMongoMapper
}

var AuthServiceSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),
)

// Register 注册用户，邮箱唯一，密码只存bcrypt哈希
func (s *AuthService) Register(ctx context.Context, req *school.RegisterReq) (*school.RegisterResp, error) {
	email := strings.ToLower(req.Email)

	// 检查邮箱是否已注册
	_, err := s.UserMapper.FindOneByEmail(ctx, email)
	if err == nil {
		return nil, consts.ErrEmailTaken
	}

	role := req.Role
	if role == "" {
		role = consts.RoleStudent
	}
	if role != consts.RoleStudent && role != consts.RoleTeacher && role != consts.RoleAdmin {
		return nil, consts.ErrInvalidParams
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("密码哈希失败: %v", err)
		return nil, consts.ErrSignUp
	}

	now := time.Now()
	u := &user.User{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      email,
		Password:   string(hash),
		Role:       role,
		CreateTime: now,
		UpdateTime: now,
	}
	err = s.UserMapper.Insert(ctx, u)
	if err != nil {
		log.Error("注册失败: %v", err)
		return nil, consts.ErrSignUp
	}

	accessToken, accessExpire, err := adaptor.GenerateJwtToken(u.ID.Hex(), u.Role)
	if err != nil {
		return nil, consts.ErrSignUp
	}

	return &school.RegisterResp{
		Id:           u.ID.Hex(),
		AccessToken:  accessToken,
		AccessExpire: accessExpire,
		Name:         u.FullName(),
	}, nil
}

// Login 登录
func (s *AuthService) Login(ctx context.Context, req *school.LoginReq) (*school.LoginResp, error) {
	u, err := s.UserMapper.FindOneByEmail(ctx, req.Email)
	if err != nil {
		return nil, consts.ErrSignIn
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return nil, consts.ErrSignIn
	}

	u.LastLogin = time.Now()
	if err := s.UserMapper.Update(ctx, u); err != nil {
		log.Error("更新登录时间失败: %v", err)
		// 不影响登录主流程
	}

	accessToken, accessExpire, err := adaptor.GenerateJwtToken(u.ID.Hex(), u.Role)
	if err != nil {
		return nil, consts.ErrSignIn
	}

	return &school.LoginResp{
		Id:           u.ID.Hex(),
		AccessToken:  accessToken,
		AccessExpire: accessExpire,
		Name:         u.FullName(),
		Role:         u.Role,
	}, nil
}

// GetMe 获取当前用户信息
func (s *AuthService) GetMe(ctx context.Context, req *school.GetMeReq) (*school.GetMeResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	u, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}

	return &school.GetMeResp{
		User: toUserInfo(u),
	}, nil
}

// UpdateUserInfo 更新个人资料，只允许改资料字段
func (s *AuthService) UpdateUserInfo(ctx context.Context, req *school.UpdateUserInfoReq) (*school.UpdateUserInfoResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	u, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}

	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.Avatar != nil {
		u.Avatar = *req.Avatar
	}

	err = s.UserMapper.Update(ctx, u)
	if err != nil {
		log.Error("更新用户信息失败: %v", err)
		return nil, consts.ErrUpdate
	}

	return &school.UpdateUserInfoResp{
		User: toUserInfo(u),
	}, nil
}

// ListUsers 管理员按角色查询用户
func (s *AuthService) ListUsers(ctx context.Context, req *school.ListUsersReq) (*school.ListUsersResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	me, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if me.Role != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	page, pageSize := pageutil.ParsePageOpt(req.PaginationOptions)
	users, total, err := s.UserMapper.FindByRole(ctx, req.Role, page, pageSize)
	if err != nil {
		log.Error("获取用户列表失败: %v", err)
		return nil, consts.ErrNotFound
	}

	userInfos := make([]*school.UserInfo, 0, len(users))
	for _, u := range users {
		userInfos = append(userInfos, toUserInfo(u))
	}

	return &school.ListUsersResp{
		Users: userInfos,
		Total: total,
	}, nil
}

func toUserInfo(u *user.User) *school.UserInfo {
	return &school.UserInfo{
		Id:           u.ID.Hex(),
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Role:         u.Role,
		Phone:        u.Phone,
		Avatar:       u.Avatar,
		CurrentClass: u.CurrentClass,
		CreateTime:   u.CreateTime.Unix(),
	}
}
