package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"class-show/biz/application/dto/school"
	"class-show/biz/infrastructure/config"
	"class-show/biz/infrastructure/redis"

	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	analyticsCachePrefix = "homework_analytics"
	analyticsCacheExpire = 300 // 5分钟，提交/批改时会主动失效
)

type IAnalyticsCacheMapper interface {
	Get(ctx context.Context, homeworkID string) (*school.HomeworkAnalytics, error)
	Set(ctx context.Context, homeworkID string, data *school.HomeworkAnalytics) error
	Delete(ctx context.Context, homeworkID string) error
}

type AnalyticsCacheMapper struct {
	rds *gozero_redis.Redis
}

func NewAnalyticsCacheMapper(config *config.Config) *AnalyticsCacheMapper {
	return &AnalyticsCacheMapper{
		rds: redis.GetRedis(config),
	}
}

// Get 从缓存获取作业统计视图
func (m *AnalyticsCacheMapper) Get(ctx context.Context, homeworkID string) (*school.HomeworkAnalytics, error) {
	cacheKey := m.buildCacheKey(homeworkID)

	cachedData, err := m.rds.GetCtx(ctx, cacheKey)
	if err != nil {
		return nil, err
	}

	if cachedData == "" {
		return nil, fmt.Errorf("cache miss")
	}

	var result school.HomeworkAnalytics
	if err := json.Unmarshal([]byte(cachedData), &result); err != nil {
		return nil, fmt.Errorf("unmarshal cached data failed: %w", err)
	}

	return &result, nil
}

// Set 将作业统计视图存入缓存
func (m *AnalyticsCacheMapper) Set(ctx context.Context, homeworkID string, data *school.HomeworkAnalytics) error {
	cacheKey := m.buildCacheKey(homeworkID)

	resultBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal data failed: %w", err)
	}

	return m.rds.SetexCtx(ctx, cacheKey, string(resultBytes), analyticsCacheExpire)
}

// Delete 提交或批改后主动失效
func (m *AnalyticsCacheMapper) Delete(ctx context.Context, homeworkID string) error {
	cacheKey := m.buildCacheKey(homeworkID)
	_, err := m.rds.DelCtx(ctx, cacheKey)
	return err
}

// buildCacheKey 构造缓存key
func (m *AnalyticsCacheMapper) buildCacheKey(homeworkID string) string {
	return fmt.Sprintf("%s:%s", analyticsCachePrefix, homeworkID)
}
