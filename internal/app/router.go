package app

import (
	"lyn_studio_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 导航状态机：视图解析、跳转、返回
		api.GET("/view", c.view.GetView)
		api.POST("/navigate", c.view.Navigate)
		api.POST("/view/back", c.view.Back)

		// 题目与打卡
		problems := api.Group("/problems")
		{
			problems.POST("", c.problem.Create)
			problems.GET("/:id", c.problem.Get)
			problems.PUT("/:id", c.problem.Update)
			problems.POST("/:id/checkin", c.problem.CheckIn)
			problems.POST("/:id/delete", c.problem.RequestDelete)
			problems.POST("/:id/delete/cancel", c.problem.CancelDelete)
			problems.DELETE("/:id", c.problem.Delete)
		}

		// 日历事件激活：跳转到题目详情，来源记为日历
		api.POST("/calendar/events/:problemId/activate", c.view.ActivateCalendarEvent)

		// 资源收藏
		resources := api.Group("/resources")
		{
			resources.POST("", c.resource.Create)
			resources.GET("", c.resource.List)
			resources.POST("/:id/delete", c.resource.RequestDelete)
			resources.POST("/:id/delete/cancel", c.resource.CancelDelete)
			resources.DELETE("/:id", c.resource.Delete)
		}

		// 笔记本与笔记
		notebooks := api.Group("/notebooks")
		{
			notebooks.POST("", c.notebook.CreateNotebook)
			notebooks.GET("", c.notebook.ListNotebooks)
			notebooks.POST("/:id/delete", c.notebook.RequestDeleteNotebook)
			notebooks.POST("/:id/delete/cancel", c.notebook.CancelDeleteNotebook)
			notebooks.DELETE("/:id", c.notebook.DeleteNotebook)
			notebooks.POST("/:id/notes", c.notebook.CreateNote)
		}

		notes := api.Group("/notes")
		{
			notes.PUT("/:id", c.notebook.UpdateNote)
			notes.POST("/:id/delete", c.notebook.RequestDeleteNote)
			notes.POST("/:id/delete/cancel", c.notebook.CancelDeleteNote)
			notes.DELETE("/:id", c.notebook.DeleteNote)
		}
	}
}
