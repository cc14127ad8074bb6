// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assetRoute "katalogku_backend/internals/features/catalog/assets/route"
	lessonRoute "katalogku_backend/internals/features/catalog/lessons/route"
	programRoute "katalogku_backend/internals/features/catalog/programs/route"
	termRoute "katalogku_backend/internals/features/catalog/terms/route"
	topicRoute "katalogku_backend/internals/features/catalog/topics/route"
	userRoute "katalogku_backend/internals/features/users/user/route"

	"katalogku_backend/internals/constants"
	authMiddleware "katalogku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE / AUTH =====================
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	userRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	// Read-only catalog, no JWT required.
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	programRoute.ProgramPublicRoutes(public, db)

	// ===================== ADMIN (editor and above) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorEditor("mengelola katalog"),
			constants.EditorAndAbove,
		),
	)
	programRoute.ProgramAdminRoutes(admin, db)
	termRoute.TermAdminRoutes(admin, db)
	lessonRoute.LessonAdminRoutes(admin, db)
	assetRoute.AssetAdminRoutes(admin, db)
	topicRoute.TopicAdminRoutes(admin, db)

	log.Println("[INFO] ✅ All routes registered")
}
