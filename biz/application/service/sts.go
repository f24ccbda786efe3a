package service

import (
	"context"
	"fmt"
	"time"

	"class-show/biz/adaptor"
	"class-show/biz/application/dto/school"
	"class-show/biz/infrastructure/config"
	"class-show/biz/infrastructure/consts"
	"class-show/biz/infrastructure/util/log"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/google/wire"
)

type IStsService interface {
	ApplySignedUrl(ctx context.Context, req *school.ApplySignedUrlReq) (*school.ApplySignedUrlResp, error)
	ApplyDownloadUrl(ctx context.Context, req *school.ApplyDownloadUrlReq) (*school.ApplyDownloadUrlResp, error)
}

type StsService struct {
}

var StsServiceSet = wire.NewSet(
	wire.Struct(new(StsService), "*"),
	wire.Bind(new(IStsService), new(*StsService)),
)

// ApplySignedUrl 申请上传加签url，key按 materials_<env>/<userId>/<prefix><uuid><suffix> 组织
func (s *StsService) ApplySignedUrl(ctx context.Context, req *school.ApplySignedUrlReq) (*school.ApplySignedUrlResp, error) {
	// 获取用户信息
	aUser := adaptor.ExtractUserMeta(ctx)
	if aUser.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	cfg := config.GetConfig()
	svc, err := s3Client(cfg)
	if err != nil {
		log.Error("申请加签url失败: %v", err)
		return nil, consts.ErrApplySignedUrl
	}

	prefix := req.GetPrefix()
	if prefix != "" {
		prefix += "/"
	}
	key := fmt.Sprintf("materials_%s/%s/%s%s%s", cfg.State, aUser.GetUserId(), prefix, uuid.New().String(), req.GetSuffix())

	// 生成加签url
	putReq, _ := svc.PutObjectRequest(&s3.PutObjectInput{
		Bucket: aws.String(cfg.S3.Bucket),
		Key:    aws.String(key),
	})
	url, err := putReq.Presign(time.Duration(cfg.S3.ExpireSeconds) * time.Second)
	if err != nil {
		log.Error("申请加签url失败: %v", err)
		return nil, consts.ErrApplySignedUrl
	}

	return &school.ApplySignedUrlResp{
		Url: url,
		Key: key,
	}, nil
}

// ApplyDownloadUrl 按对象key申请下载加签url
func (s *StsService) ApplyDownloadUrl(ctx context.Context, req *school.ApplyDownloadUrlReq) (*school.ApplyDownloadUrlResp, error) {
	aUser := adaptor.ExtractUserMeta(ctx)
	if aUser.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	cfg := config.GetConfig()
	svc, err := s3Client(cfg)
	if err != nil {
		log.Error("申请加签url失败: %v", err)
		return nil, consts.ErrApplySignedUrl
	}

	getReq, _ := svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(cfg.S3.Bucket),
		Key:    aws.String(req.Key),
	})
	url, err := getReq.Presign(time.Duration(cfg.S3.ExpireSeconds) * time.Second)
	if err != nil {
		log.Error("申请加签url失败: %v", err)
		return nil, consts.ErrApplySignedUrl
	}

	return &school.ApplyDownloadUrlResp{Url: url}, nil
}

func s3Client(cfg *config.Config) (*s3.S3, error) {
	awsCfg := &aws.Config{
		Region:      aws.String(cfg.S3.Region),
		Credentials: credentials.NewStaticCredentials(cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey, ""),
	}
	if cfg.S3.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.S3.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, err
	}
	return s3.New(sess), nil
}
