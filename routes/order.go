package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/mayarj/Ecommerceclientappdesign/controllers/order"
)

func SetupOrderRoutes(rg *gin.RouterGroup, deps Dependencies) {
	orders := rg.Group("/orders")
	{
		// Checkout: turns the cart into an order
		orders.POST("", orderControllers.PlaceOrderHandler(deps.Logger))

		// Order history, newest first
		orders.GET("", orderControllers.GetUserOrdersHandler())

		// websocket endpoint for orders placed by this session
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		orders.GET("/:order_id", orderControllers.GetOrderByIDHandler())
	}
}
