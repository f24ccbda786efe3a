package main

import (
	handler "class-show/biz/adaptor/controller"
	"class-show/biz/adaptor/controller/school"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizedRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	auth := r.Group("/auth")
	{
		auth.POST("/register", school.Register)
		auth.POST("/login", school.Login)
		auth.GET("/me", school.GetMe)
		auth.PUT("/me", school.UpdateUserInfo)
	}

	r.GET("/users", school.ListUsers)

	classes := r.Group("/classes")
	{
		classes.POST("", school.CreateClass)
		classes.GET("", school.ListClasses)
		classes.GET("/:classId", school.GetClass)
		classes.PUT("/:classId", school.UpdateClass)
		classes.DELETE("/:classId", school.DeactivateClass)
		classes.GET("/:classId/members", school.GetClassMembers)
		classes.POST("/:classId/enroll", school.EnrollStudent)
		classes.GET("/:classId/enrollments", school.ListEnrollments)
		classes.GET("/:classId/documents", school.ListDocuments)
		classes.GET("/:classId/schedules", school.ListSchedules)
		classes.GET("/:classId/schedules/upcoming", school.UpcomingSchedules)
	}

	enrollments := r.Group("/enrollments")
	{
		enrollments.POST("/transfer", school.TransferStudent)
		enrollments.GET("/:enrollmentId", school.GetEnrollment)
		enrollments.PUT("/:enrollmentId", school.UpdateEnrollment)
	}

	homeworks := r.Group("/homeworks")
	{
		homeworks.POST("", school.CreateHomework)
		homeworks.GET("", school.ListHomeworks)
		homeworks.GET("/:homeworkId", school.GetHomework)
		homeworks.PUT("/:homeworkId", school.UpdateHomework)
		homeworks.DELETE("/:homeworkId", school.DeleteHomework)
		homeworks.POST("/:homeworkId/publish", school.PublishHomework)
		homeworks.POST("/:homeworkId/close", school.CloseHomework)
		homeworks.GET("/:homeworkId/analytics", school.GetHomeworkAnalytics)
		homeworks.POST("/:homeworkId/submissions", school.SubmitHomework)
		homeworks.GET("/:homeworkId/submissions", school.ListHomeworkSubmissions)
	}

	submissions := r.Group("/submissions")
	{
		submissions.GET("", school.ListStudentSubmissions)
		submissions.GET("/:submissionId", school.GetSubmission)
		submissions.POST("/:submissionId/grade", school.GradeSubmission)
		submissions.DELETE("/:submissionId", school.DeleteSubmission)
	}

	documents := r.Group("/documents")
	{
		documents.POST("", school.CreateDocument)
		documents.GET("", school.ListMyDocuments)
		documents.GET("/:documentId", school.GetDocument)
		documents.DELETE("/:documentId", school.DeleteDocument)
	}

	schedules := r.Group("/schedules")
	{
		schedules.POST("", school.CreateSchedule)
		schedules.PUT("/:scheduleId", school.UpdateSchedule)
		schedules.DELETE("/:scheduleId", school.DeleteSchedule)
	}

	sts := r.Group("/sts")
	{
		sts.POST("/apply", school.ApplySignedUrl)
		sts.POST("/download", school.ApplyDownloadUrl)
	}
}
