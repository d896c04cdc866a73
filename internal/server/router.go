package server

import (
	auction "car-auction/internal/auctionService"
	handler "car-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/schedule", auctionHandler.ScheduleAuctionHandler)
		auctions.POST("/:auction_id/ready", auctionHandler.ReadyAuctionHandler())
		auctions.POST("/:auction_id/start", auctionHandler.StartAuctionHandler())
		auctions.POST("/:auction_id/next", auctionHandler.NextCarHandler())
		auctions.POST("/:auction_id/end", auctionHandler.EndAuctionHandler())
		auctions.POST("/:auction_id/extend", auctionHandler.ExtendAuctionHandler)
		auctions.POST("/:auction_id/cancel", auctionHandler.CancelAuctionHandler())
		auctions.POST("/:auction_id/settle", auctionHandler.SettleAuctionHandler())
		auctions.POST("/:auction_id/lots", auctionHandler.AddLotHandler)
		auctions.GET("/:auction_id/lots", auctionHandler.GetLotsHandler)
	}

	lots := router.Group("/lots")
	{
		lots.GET("/:lot_id", auctionHandler.GetLotHandler)
		lots.GET("/:lot_id/bids", auctionHandler.GetBidsByLotHandler)
		lots.GET("/:lot_id/highest", auctionHandler.GetHighestBidHandler)
		lots.GET("/:lot_id/winner", auctionHandler.GetWinnerHandler)
		lots.POST("/:lot_id/approve", auctionHandler.ApproveWinnerHandler())
		lots.POST("/:lot_id/reject", auctionHandler.RejectWinnerHandler())
		lots.POST("/:lot_id/deposit", auctionHandler.DepositPaidHandler())
		lots.POST("/:lot_id/payment-complete", auctionHandler.CompletePaymentHandler())
		lots.POST("/:lot_id/complete", auctionHandler.CompleteSaleHandler())
		lots.POST("/:lot_id/second-chance", auctionHandler.SecondChanceHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
		bids.POST("/:bid_id/retract", auctionHandler.RetractBidHandler)
		bids.POST("/:bid_id/invalidate", auctionHandler.InvalidateBidHandler)
		bids.POST("/:bid_id/cancel-proxy", auctionHandler.CancelProxyHandler)
		bids.POST("/:bid_id/amount", auctionHandler.UpdateBidAmountHandler)
	}

	winners := router.Group("/winners")
	{
		winners.POST("/:winner_id/payments", auctionHandler.RecordPaymentHandler)
		winners.POST("/:winner_id/extend-due", auctionHandler.ExtendDueDateHandler)
		winners.POST("/:winner_id/remind", auctionHandler.RemindWinnerHandler())
		winners.POST("/:winner_id/cancel", auctionHandler.CancelWinnerHandler())
		winners.POST("/:winner_id/fail", auctionHandler.FailWinnerHandler())
	}

	return router
}
