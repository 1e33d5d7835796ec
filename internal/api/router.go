package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/ridequest/rideon-api/docs"
	"github.com/ridequest/rideon-api/internal/auth"
	"github.com/ridequest/rideon-api/internal/config"
	"github.com/ridequest/rideon-api/internal/db"
)

// @title           RideOn API
// @version         1.0
// @description     Backend for a youth cycling program: schools, parents, students, volunteers, events, and attendance.
// @host            localhost:8000
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		if err := db.PingDB(); err != nil {
			c.JSON(500, gin.H{"status": "db_ping_error"})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	users := r.Group("/users")
	users.POST("/parents/login", ParentLogin(cfg))
	users.POST("/volunteers/login", VolunteerLogin(cfg))

	// Parent tree. Every segment narrows the authorization scope
	// before the next one runs.
	parents := r.Group("/parents", auth.ParentFromToken(cfg), auth.RequireParent())
	parent := parents.Group("/:id", ParentScope())
	parent.GET("", GetParentProfile)
	parent.PUT("", UpdateParentProfile)
	parent.GET("/students", ListParentStudents)
	student := parent.Group("/students/:studentId", StudentScope())
	student.GET("", GetStudent)
	student.PUT("", UpdateStudentHandler)
	student.GET("/events", ListStudentEvents)
	studentEvent := student.Group("/events/:eventId", EventScope())
	studentEvent.PUT("/absence", SetStudentAbsenceHandler)

	// Volunteer tree, with the facilitator subtree gated on the role
	// flag in addition to the ownership checks.
	volunteers := r.Group("/volunteers", auth.VolunteerFromToken(cfg), auth.RequireVolunteer())
	volunteers.GET("/", RerouteVolunteer)

	vol := volunteers.Group("/volunteer/:id", VolunteerScope())
	vol.GET("", GetVolunteerProfile)
	vol.GET("/events", ListVolunteerEvents)
	volEvent := vol.Group("/events/:eventId", EventScope())
	volEvent.GET("", GetScopedEvent)
	volEvent.GET("/students", ListEventStudents)
	volEvent.GET("/volunteers", ListEventVolunteers)
	volEvent.PUT("/absence", SetVolunteerAbsenceHandler)

	fac := volunteers.Group("/facilitator/:id", auth.RequireFacilitator(), VolunteerScope())
	fac.GET("", GetVolunteerProfile)
	fac.GET("/events", ListVolunteerEvents)
	fac.POST("/events", CreateEventHandler)
	facEvent := fac.Group("/events/:eventId", EventScope())
	facEvent.GET("", GetScopedEvent)
	facEvent.PUT("", UpdateEventHandler)
	facEvent.DELETE("", DeleteEventHandler)
	facEvent.GET("/students", ListEventStudents)
	facEvent.GET("/volunteers", ListEventVolunteers)
	facEvent.GET("/report", EventAttendanceReport)

	return r
}
