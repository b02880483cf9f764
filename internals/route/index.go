package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gemilang_backend/internals/constants"
	GalleryRoute "gemilang_backend/internals/features/gallery/route"
	PostRoute "gemilang_backend/internals/features/blog/posts/route"
	TopicRoute "gemilang_backend/internals/features/blog/topics/route"
	SettingRoute "gemilang_backend/internals/features/settings/route"
	TestimonialRoute "gemilang_backend/internals/features/testimonials/route"
	UserRoute "gemilang_backend/internals/features/users/route"
	"gemilang_backend/internals/helpers/storage"
	authMiddleware "gemilang_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, store *storage.Storage) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	UserRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")
	PostRoute.PostPublicRoutes(public, db, store)
	TestimonialRoute.TestimonialPublicRoutes(public, db)
	GalleryRoute.GalleryPublicRoutes(public, db, store)
	SettingRoute.SettingPublicRoutes(public, db)

	// ===================== ADMIN (Auth + RoleCheck) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/admin",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("mengelola konten"),
			constants.AdminOnly...,
		),
	)
	PostRoute.PostAdminRoutes(admin, db, store)
	TopicRoute.TopicAdminRoutes(admin, db)
	TestimonialRoute.TestimonialAdminRoutes(admin, db)
	GalleryRoute.GalleryAdminRoutes(admin, db, store)
	SettingRoute.SettingAdminRoutes(admin, db)
}
