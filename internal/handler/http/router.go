package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bereketsol/Inkwell/internal/domain/authz"
	"github.com/bereketsol/Inkwell/internal/handler/http/middleware"
	"github.com/bereketsol/Inkwell/internal/usecase"
	usecasecontract "github.com/bereketsol/Inkwell/internal/usecase/contract"
)

type Router struct {
	userHandler     *UserHandler
	blogHandler     *BlogHandler
	commentHandler  *CommentHandler
	categoryHandler *CategoryHandler
	userUsecase     usecasecontract.IUserUseCase
	jwtService      usecase.JWTService
	checker         *authz.Checker
}

func NewRouter(userUsecase usecasecontract.IUserUseCase, blogUsecase usecasecontract.IBlogUseCase, commentUsecase usecasecontract.ICommentUseCase, categoryUsecase usecasecontract.ICategoryUseCase, jwtService usecase.JWTService, checker *authz.Checker) *Router {
	return &Router{
		userHandler:     NewUserHandler(userUsecase),
		blogHandler:     NewBlogHandler(blogUsecase),
		commentHandler:  NewCommentHandler(commentUsecase),
		categoryHandler: NewCategoryHandler(categoryUsecase),
		userUsecase:     userUsecase,
		jwtService:      jwtService,
		checker:         checker,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(middleware.RequestMetrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.Register)
		auth.POST("/login", r.userHandler.Login)
		auth.POST("/refresh-token", r.userHandler.RefreshToken)
		auth.POST("/logout", r.userHandler.Logout)
	}

	// Public user routes
	users := v1.Group("/users")
	{
		users.GET("/profile/:id", r.userHandler.GetUser)
		users.GET("/:id/followers", r.userHandler.ListFollowers)
		users.GET("/:id/following", r.userHandler.ListFollowing)
	}

	// Public blog routes
	blogs := v1.Group("/blogs")
	{
		blogs.GET("", r.blogHandler.GetBlogsHandler)
		blogs.GET("/:blogID", r.blogHandler.GetBlogDetailHandler)
	}

	// Public comment and category reads
	v1.GET("/blogs/:blogID/comments", r.commentHandler.GetBlogComments)
	v1.GET("/blogs/:blogID/comments/count", r.commentHandler.CountBlogComments)
	v1.GET("/categories", r.categoryHandler.ListCategories)
	v1.GET("/categories/:categoryID", r.categoryHandler.GetCategory)

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.jwtService, r.userUsecase))
	{
		// Current user routes
		protected.GET("/me", r.userHandler.GetCurrentUser)
		protected.PUT("/me", r.userHandler.UpdateProfile)
		protected.PUT("/me/password", r.perm(authz.PermUserChangePassword), r.userHandler.ChangePassword)
		protected.DELETE("/me", r.userHandler.DeactivateUser)

		// Social graph routes
		protected.POST("/users/:id/follow", r.userHandler.Follow)
		protected.DELETE("/users/:id/follow", r.userHandler.Unfollow)

		// Admin user management
		protected.GET("/users", r.perm(authz.PermUserRead), r.userHandler.ListUsers)
		protected.PUT("/users/:id/role", r.perm(authz.PermUserUpdate), r.userHandler.ChangeRole)
		protected.DELETE("/users/:id", r.perm(authz.PermUserDelete), r.userHandler.DeleteUser)

		// Blog routes
		protected.POST("/blogs", r.perm(authz.PermBlogCreate), r.blogHandler.CreateBlogHandler)
		protected.PUT("/blogs/:blogID", r.perm(authz.PermBlogEdit), r.blogHandler.UpdateBlogHandler)
		protected.DELETE("/blogs/:blogID", r.perm(authz.PermBlogDelete), r.blogHandler.DeleteBlogHandler)

		// Lifecycle routes
		protected.POST("/blogs/:blogID/schedule", r.perm(authz.PermBlogEdit), r.blogHandler.ScheduleBlogHandler)
		protected.POST("/blogs/:blogID/publish", r.perm(authz.PermBlogEdit), r.blogHandler.PublishBlogHandler)
		protected.POST("/blogs/:blogID/archive", r.perm(authz.PermBlogEdit), r.blogHandler.ArchiveBlogHandler)

		// Engagement routes
		protected.POST("/blogs/:blogID/view", r.blogHandler.TrackBlogViewHandler)
		protected.POST("/blogs/:blogID/like", r.blogHandler.LikeBlogHandler)
		protected.DELETE("/blogs/:blogID/like", r.blogHandler.UnlikeBlogHandler)

		// Comment routes
		protected.POST("/blogs/:blogID/comments", r.perm(authz.PermCommentCreate), r.commentHandler.CreateComment)
		protected.GET("/comments/:commentID", r.perm(authz.PermCommentRead), r.commentHandler.GetComment)
		protected.PUT("/comments/:commentID", r.perm(authz.PermCommentUpdate), r.commentHandler.UpdateComment)
		protected.DELETE("/comments/:commentID", r.perm(authz.PermCommentDelete), r.commentHandler.DeleteComment)
		protected.POST("/comments/:commentID/like", r.perm(authz.PermCommentLike), r.commentHandler.LikeComment)
		protected.DELETE("/comments/:commentID/like", r.perm(authz.PermCommentLike), r.commentHandler.UnlikeComment)

		// Category management
		protected.POST("/categories", r.perm(authz.PermCategoryCreate), r.categoryHandler.CreateCategory)
		protected.PUT("/categories/:categoryID", r.perm(authz.PermCategoryUpdate), r.categoryHandler.UpdateCategory)
		protected.DELETE("/categories/:categoryID", r.perm(authz.PermCategoryDelete), r.categoryHandler.DeleteCategory)
	}
}

func (r *Router) perm(p authz.Permission) gin.HandlerFunc {
	return middleware.RequirePermission(r.checker, p)
}
