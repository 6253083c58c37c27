package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"doro/backend/config"
	"doro/backend/internal/api/handler"
	"doro/backend/internal/api/middleware"
	"doro/backend/pkg/jwt"
	"doro/backend/pkg/redis"
)

// 로그인 속도 제한（IP 기준）
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// Setup 初始化并返回 Gin 路由引擎
// 路由路径保持既有前端契约：带尾随斜杠
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := middleware.JWTAuth(jwtMgr, rdb)
	optionalAuth := middleware.OptionalJWTAuth(jwtMgr)

	api := r.Group("/api")
	{
		// ── 유저 (User) ──
		user := api.Group("/user")
		{
			user.POST("/signup/", h.Auth.Signup)
			user.POST("/login/", middleware.RateLimit(rdb, loginRateLimit, loginRateWindow), h.Auth.Login)
			user.POST("/logout/", auth, h.Auth.Logout)
			user.DELETE("/withdraw/", auth, h.Auth.Withdraw)
			user.POST("/password/reset/", h.Auth.ResetPassword)
			user.GET("/me/", auth, h.User.Profile)
			user.PUT("/me/", auth, h.User.UpdateProfile)
			user.GET("/overview/", auth, h.User.Overview)
		}

		// ── 대시보드 (Dashboard) ──
		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/notices/", auth, h.Dashboard.Notices)
			dashboard.GET("/notices/:id/", h.Dashboard.NoticeDetail)
			dashboard.GET("/my-courses/", auth, h.Dashboard.MyCourses)
			dashboard.GET("/tasks/", auth, h.Dashboard.MyTasks)
			dashboard.GET("/tasks/ical/", auth, h.Dashboard.TasksCalendar)
		}

		// ── 강의 (Lecture) ──
		lecture := api.Group("/lecture", auth)
		{
			lecture.GET("/:lecture_id/notices/", h.Lecture.Notices)
			lecture.GET("/notices/:id/", h.Lecture.NoticeDetail)
			lecture.GET("/:lecture_id/assignments/", h.Lecture.Assignments)
			lecture.GET("/:lecture_id/attendance/", h.Lecture.Attendance)
			lecture.GET("/:lecture_id/attendance/export/", h.Lecture.AttendanceExport)
		}

		// ── 커뮤니티 (Community) ──
		community := api.Group("/community")
		{
			community.GET("/", optionalAuth, h.Community.ListThreads)
			community.POST("/", auth, h.Community.CreateThread)
			community.GET("/me/", auth, h.Community.MyActivity)
			community.GET("/:id/", optionalAuth, h.Community.ThreadDetail)
			community.POST("/:id/comments/", auth, h.Community.AddComment)
		}

		// ── 상담 (Consultation) ──
		consultations := api.Group("/consultations", auth)
		{
			consultations.GET("/", h.Consultation.List)
			consultations.POST("/", h.Consultation.Create)
			consultations.GET("/instructors/", h.Consultation.Instructors)
			consultations.GET("/:id/", h.Consultation.Detail)
			consultations.PUT("/:id/", h.Consultation.Update)
			consultations.DELETE("/:id/", h.Consultation.Delete)
		}
	}

	return r
}

