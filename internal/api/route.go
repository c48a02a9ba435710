package api

import (
	"Halcyon/internal/api/middleware"
	"Halcyon/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		feedGroup := apiGroup.Group("/feed")
		{
			// 趋势榜单与个性化无关，匿名可读
			trendGroup := feedGroup.Group("")
			trendGroup.Use(middleware.AuthOptionalMiddleware())
			{
				trendGroup.GET("/trending", group.TrendingHandler.GetTrending)
			}

			authGroup := feedGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("", group.FeedHandler.GetFeed)
			}
		}

		interactionGroup := apiGroup.Group("/interactions")
		interactionGroup.Use(middleware.AuthMiddleware())
		{
			interactionGroup.POST("", group.InteractionHandler.Record)
		}

		weightGroup := apiGroup.Group("/weights")
		weightGroup.Use(middleware.AuthMiddleware())
		{
			weightGroup.GET("", group.WeightHandler.GetWeights)
			weightGroup.PUT("", group.WeightHandler.SetWeights)
		}

		analyticsGroup := apiGroup.Group("/analytics")
		analyticsGroup.Use(middleware.AuthMiddleware())
		{
			analyticsGroup.GET("", group.AnalyticsHandler.GetAnalytics)
		}
	}

	return r
}
