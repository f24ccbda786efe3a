package service

import (
	"testing"

	"class-show/biz/application/dto/school"
	"class-show/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentLifecycle(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)
	student := env.addEnrolledStudent(c)

	// 学生不能登记资料
	_, err := env.documentService.CreateDocument(ctxAs(student), &school.CreateDocumentReq{
		Title: "第一课课件", ClassId: c.ID.Hex(), FileName: "lesson1.pdf", FilePath: "materials/lesson1.pdf",
	})
	assert.ErrorIs(t, err, consts.ErrRoleMismatch)

	// 非本班班主任也不能
	other := env.addUser(consts.RoleTeacher)
	_, err = env.documentService.CreateDocument(ctxAs(other), &school.CreateDocumentReq{
		Title: "第一课课件", ClassId: c.ID.Hex(), FileName: "lesson1.pdf", FilePath: "materials/lesson1.pdf",
	})
	assert.ErrorIs(t, err, consts.ErrForbidden)

	created, err := env.documentService.CreateDocument(ctxAs(teacher), &school.CreateDocumentReq{
		Title: "第一课课件", ClassId: c.ID.Hex(), FileName: "lesson1.pdf", FilePath: "materials/lesson1.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, teacher.ID.Hex(), created.Document.TeacherId)

	// 本班学生可以查看
	got, err := env.documentService.GetDocument(ctxAs(student), &school.GetDocumentReq{
		DocumentId: created.Document.Id,
	})
	require.NoError(t, err)
	assert.Equal(t, "第一课课件", got.Document.Title)

	// 外班学生不行
	c2 := env.addClass(other, 30)
	outsider := env.addEnrolledStudent(c2)
	_, err = env.documentService.GetDocument(ctxAs(outsider), &school.GetDocumentReq{
		DocumentId: created.Document.Id,
	})
	assert.ErrorIs(t, err, consts.ErrForbidden)

	listed, err := env.documentService.ListDocuments(ctxAs(student), &school.ListDocumentsReq{
		ClassId: c.ID.Hex(),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, listed.Total)

	mine, err := env.documentService.ListMyDocuments(ctxAs(teacher), &school.ListMyDocumentsReq{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, mine.Total)
}

func TestDeleteDocument(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser(consts.RoleTeacher)
	other := env.addUser(consts.RoleTeacher)
	c := env.addClass(teacher, 30)
	student := env.addEnrolledStudent(c)

	created, err := env.documentService.CreateDocument(ctxAs(teacher), &school.CreateDocumentReq{
		Title: "第一课课件", ClassId: c.ID.Hex(), FileName: "lesson1.pdf", FilePath: "materials/lesson1.pdf",
	})
	require.NoError(t, err)

	// 非上传者不能删
	_, err = env.documentService.DeleteDocument(ctxAs(other), &school.DeleteDocumentReq{
		DocumentId: created.Document.Id,
	})
	assert.ErrorIs(t, err, consts.ErrForbidden)

	_, err = env.documentService.DeleteDocument(ctxAs(teacher), &school.DeleteDocumentReq{
		DocumentId: created.Document.Id,
	})
	require.NoError(t, err)

	// 软删除后不可见、不可重复删
	_, err = env.documentService.GetDocument(ctxAs(student), &school.GetDocumentReq{
		DocumentId: created.Document.Id,
	})
	assert.ErrorIs(t, err, consts.ErrDocumentUnavailable)
	_, err = env.documentService.DeleteDocument(ctxAs(teacher), &school.DeleteDocumentReq{
		DocumentId: created.Document.Id,
	})
	assert.ErrorIs(t, err, consts.ErrDocumentUnavailable)
}
