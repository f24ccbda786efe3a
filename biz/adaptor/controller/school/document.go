package school

import (
	"context"

	"class-show/biz/adaptor"
	"class-show/biz/application/dto/school"
	"class-show/biz/infrastructure/consts"
	"class-show/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// CreateDocument .
// @router /documents [POST]
func CreateDocument(ctx context.Context, c *app.RequestContext) {
	var req school.CreateDocumentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.DocumentService.CreateDocument(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetDocument .
// @router /documents/:documentId [GET]
func GetDocument(ctx context.Context, c *app.RequestContext) {
	var req school.GetDocumentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.DocumentService.GetDocument(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListDocuments .
// @router /classes/:classId/documents [GET]
func ListDocuments(ctx context.Context, c *app.RequestContext) {
	var req school.ListDocumentsReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.DocumentService.ListDocuments(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListMyDocuments .
// @router /documents [GET]
func ListMyDocuments(ctx context.Context, c *app.RequestContext) {
	var req school.ListMyDocumentsReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.DocumentService.ListMyDocuments(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteDocument .
// @router /documents/:documentId [DELETE]
func DeleteDocument(ctx context.Context, c *app.RequestContext) {
	var req school.DeleteDocumentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.DocumentService.DeleteDocument(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ApplySignedUrl .
// @router /sts/apply [POST]
func ApplySignedUrl(ctx context.Context, c *app.RequestContext) {
	var req school.ApplySignedUrlReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.StsService.ApplySignedUrl(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ApplyDownloadUrl .
// @router /sts/download [POST]
func ApplyDownloadUrl(ctx context.Context, c *app.RequestContext) {
	var req school.ApplyDownloadUrlReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.StsService.ApplyDownloadUrl(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
