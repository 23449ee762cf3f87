package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nishida-sj/shift-management-system-sub000/config"
	"github.com/nishida-sj/shift-management-system-sub000/internal/api/handler"
	"github.com/nishida-sj/shift-management-system-sub000/internal/api/middleware"
	"github.com/nishida-sj/shift-management-system-sub000/pkg/jwt"
	"github.com/nishida-sj/shift-management-system-sub000/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 员工模块
			employees := authorized.Group("/employees")
			{
				employees.GET("", middleware.RoleAuth("admin"), h.Employee.List)
				employees.GET("/:code", middleware.RoleAuth("admin"), h.Employee.Get)
				employees.POST("", middleware.RoleAuth("admin"), h.Employee.Create)
				employees.PUT("/:code", middleware.RoleAuth("admin"), h.Employee.Update)
				employees.DELETE("/:code", middleware.RoleAuth("admin"), h.Employee.Delete)
			}

			// 业务种别模块
			businessTypes := authorized.Group("/business-types")
			{
				businessTypes.GET("", h.BusinessType.List)
				businessTypes.POST("", middleware.RoleAuth("admin"), h.BusinessType.Create)
				businessTypes.PUT("/order", middleware.RoleAuth("admin"), h.BusinessType.Reorder)
				businessTypes.PUT("/:code", middleware.RoleAuth("admin"), h.BusinessType.Update)
				businessTypes.DELETE("/:code", middleware.RoleAuth("admin"), h.BusinessType.Delete)
			}

			// 行事模块
			events := authorized.Group("/events")
			{
				events.GET("", h.Event.List)
				events.GET("/:id", h.Event.Get)
				events.POST("", middleware.RoleAuth("admin"), h.Event.Create)
				events.PUT("/:id", middleware.RoleAuth("admin"), h.Event.Update)
				events.DELETE("/:id", middleware.RoleAuth("admin"), h.Event.Delete)
			}

			// 月度行事日历
			authorized.GET("/calendar", h.Event.MonthlyCalendar)
			authorized.PUT("/calendar", middleware.RoleAuth("admin"), h.Event.AssignToDate)
			authorized.DELETE("/calendar/:date", middleware.RoleAuth("admin"), h.Event.ClearDate)

			// 出勤希望模块
			shiftRequests := authorized.Group("/shift-requests")
			{
				shiftRequests.GET("", h.ShiftRequest.ListMine)
				shiftRequests.PUT("", h.ShiftRequest.Save)
				shiftRequests.GET("/all", middleware.RoleAuth("admin"), h.ShiftRequest.ListAll)
			}

			// 排班模块
			shifts := authorized.Group("/shifts")
			{
				shifts.GET("", h.Shift.GetGrid)
				shifts.POST("/auto", middleware.RoleAuth("admin"), h.Shift.AutoBuild)
				shifts.PUT("", middleware.RoleAuth("admin"), h.Shift.SaveGrid)
				shifts.POST("/validate", middleware.RoleAuth("admin"), h.Shift.ValidateCell)
				shifts.POST("/confirm", middleware.RoleAuth("admin"), h.Shift.Confirm)
				shifts.POST("/unconfirm", middleware.RoleAuth("admin"), h.Shift.Unconfirm)
			}

			// 排班条件模块
			authorized.GET("/shift-conditions", h.ShiftCondition.Get)
			authorized.PUT("/shift-conditions", middleware.RoleAuth("admin"), h.ShiftCondition.Save)

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/shifts", middleware.RoleAuth("admin"), h.Export.ExportExcel)
				export.GET("/shifts/:code/ics", h.Export.ExportICS)
			}
		}
	}

	return r
}
