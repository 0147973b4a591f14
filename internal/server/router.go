package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"meme-market/internal/realtime"
	handler "meme-market/services/market/handler"
)

// Services bundles the dependencies the router wires into handlers
type Services struct {
	Memes       handler.MemeServiceInterface
	Leaderboard handler.LeaderboardInterface
	Bids        handler.BidServiceInterface
	Votes       handler.VoteServiceInterface
	Users       handler.UserServiceInterface
	Hub         *realtime.Hub
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svcs Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(CORSMiddleware)          // permissive CORS for the browser client
	router.Use(RequestLoggerMiddleware) // custom request logging

	memeHandler := handler.NewMemeHandler(svcs.Memes, svcs.Leaderboard)
	bidHandler := handler.NewBidHandler(svcs.Bids)
	voteHandler := handler.NewVoteHandler(svcs.Votes)
	userHandler := handler.NewUserHandler(svcs.Users)

	memes := router.Group("/memes")
	{
		memes.GET("", memeHandler.ListMemesHandler)
		memes.GET("/top", memeHandler.TopMemesHandler)
		memes.GET("/tag/:tag", memeHandler.MemesByTagHandler)
		memes.GET("/search", memeHandler.SearchMemesHandler)
		memes.GET("/:id", memeHandler.GetMemeHandler)
		memes.POST("", memeHandler.CreateMemeHandler)
		memes.PUT("/:id", memeHandler.UpdateMemeHandler)
		memes.DELETE("/:id", memeHandler.DeleteMemeHandler)
		memes.POST("/:id/caption", memeHandler.RegenerateCaptionHandler)
	}

	bids := router.Group("/bids")
	{
		bids.GET("/meme/:memeId", bidHandler.GetBidsByMemeHandler)
		bids.POST("", bidHandler.PlaceBidHandler)
	}

	votes := router.Group("/votes")
	{
		votes.POST("/:memeId", voteHandler.CastVoteHandler)
	}

	users := router.Group("/users")
	{
		users.GET("", userHandler.ListUsersHandler)
		users.GET("/:id", userHandler.GetUserHandler)
		users.PATCH("/:id/credits", userHandler.UpdateCreditsHandler)
	}

	if svcs.Hub != nil {
		wsHandler := handler.NewWSHandler(svcs.Hub)
		router.GET("/ws", wsHandler.ServeWSHandler)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Server is healthy", "timestamp": time.Now().UTC()})
	})

	return router
}
