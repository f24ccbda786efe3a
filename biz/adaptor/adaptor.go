package adaptor

import (
	"context"
	"net/http"

	"class-show/biz/application/dto/basic"
	"class-show/biz/infrastructure/util"
	"class-show/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PostProcess 统一出口：成功包装为success信封，Errno映射为对应HTTP状态码
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s, err=%v", c.Path(), util.JSONF(req), util.JSONF(resp), err)

	if err == nil {
		c.JSON(http.StatusOK, &basic.Response{
			Status: "success",
			Data:   resp,
		})
		return
	}

	s, _ := status.FromError(err)
	httpCode, statusText := httpStatus(s.Code())
	c.JSON(httpCode, &basic.Response{
		Status:  statusText,
		Message: s.Message(),
	})
}

// httpStatus grpc错误码到HTTP状态码的映射，自定义业务码(>=1000)一律按内部错误处理
func httpStatus(code codes.Code) (int, string) {
	switch code {
	case codes.InvalidArgument, codes.OutOfRange:
		return http.StatusBadRequest, "fail"
	case codes.Unauthenticated:
		return http.StatusUnauthorized, "fail"
	case codes.PermissionDenied:
		return http.StatusForbidden, "fail"
	case codes.NotFound:
		return http.StatusNotFound, "fail"
	case codes.AlreadyExists, codes.FailedPrecondition, codes.Aborted:
		return http.StatusConflict, "fail"
	default:
		return http.StatusInternalServerError, "error"
	}
}
