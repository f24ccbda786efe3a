package school

import "class-show/biz/application/dto/basic"

type CreateDocumentReq struct {
	Title       string `json:"title" vd:"len($)>0"`
	Description string `json:"description,omitempty"`
	ClassId     string `json:"classId" vd:"len($)>0"`
	FileName    string `json:"fileName" vd:"len($)>0"`
	FilePath    string `json:"filePath" vd:"len($)>0"`
	FileSize    int64  `json:"fileSize,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

type DocumentInfo struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ClassId     string `json:"classId"`
	TeacherId   string `json:"teacherId"`
	FileName    string `json:"fileName"`
	FilePath    string `json:"filePath"`
	FileSize    int64  `json:"fileSize,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
	CreateTime  int64  `json:"createTime"`
}

type CreateDocumentResp struct {
	Document *DocumentInfo `json:"document"`
}

type GetDocumentReq struct {
	DocumentId string `json:"documentId" path:"documentId"`
}

type GetDocumentResp struct {
	Document *DocumentInfo `json:"document"`
}

type ListDocumentsReq struct {
	ClassId           string                   `json:"classId" path:"classId"`
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListDocumentsResp struct {
	Documents []*DocumentInfo `json:"documents"`
	Total     int64           `json:"total"`
}

type ListMyDocumentsReq struct {
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListMyDocumentsResp struct {
	Documents []*DocumentInfo `json:"documents"`
	Total     int64           `json:"total"`
}

type DeleteDocumentReq struct {
	DocumentId string `json:"documentId" path:"documentId"`
}

type DeleteDocumentResp struct {
}

type ApplySignedUrlReq struct {
	Prefix *string `json:"prefix,omitempty"`
	Suffix *string `json:"suffix,omitempty"`
}

func (r *ApplySignedUrlReq) GetPrefix() string {
	if r == nil || r.Prefix == nil {
		return ""
	}
	return *r.Prefix
}

func (r *ApplySignedUrlReq) GetSuffix() string {
	if r == nil || r.Suffix == nil {
		return ""
	}
	return *r.Suffix
}

type ApplySignedUrlResp struct {
	Url string `json:"url"`
	Key string `json:"key"`
}

type ApplyDownloadUrlReq struct {
	Key string `json:"key" vd:"len($)>0"`
}

type ApplyDownloadUrlResp struct {
	Url string `json:"url"`
}
