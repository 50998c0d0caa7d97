package routes

import (
	"net/http"
	"salon_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceDetails = "/service-details"
	PathSales          = "/sales"
	PathPing           = "/ping"
)

func addServiceDetailRoutes(rg *gin.RouterGroup, details *handlers.ServiceDetailHandler, lifecycle *handlers.LifecycleHandler, sales *handlers.SalePaymentHandler) {
	sd := rg.Group(PathServiceDetails)
	{
		sd.POST("", details.Create)
		sd.GET("", details.List)
		sd.GET("/:id", details.Get)
		sd.PATCH("/:id", details.Update)
		sd.DELETE("/:id", details.Delete)

		// Status only changes through these two.
		sd.PATCH("/:id/status", lifecycle.Transition)
		sd.POST("/:id/sale", lifecycle.ConvertToSale)
		sd.GET("/:id/sale", sales.GetSaleByServiceDetail)
	}
}

func addSaleRoutes(rg *gin.RouterGroup, sales *handlers.SalePaymentHandler) {
	s := rg.Group(PathSales)
	{
		s.GET("/:sale_id", sales.GetSale)
		s.POST("/:sale_id/payments", sales.CreatePayment)
		s.GET("/:sale_id/payments", sales.GetLatestPayment)
	}
}

// Ping godoc
// @Summary  Health check
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, ping)
}
