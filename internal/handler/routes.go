package handler

import "github.com/gin-gonic/gin"

// Routes bundles the portal handlers for registration.
type Routes struct {
	School    *SchoolHandler
	Timetable *TimetableHandler
	Meal      *MealHandler
	Chat      *ChatHandler
	User      *UserHandler
	Device    *DeviceHandler
}

// Register wires every API route onto the router.
func (rt Routes) Register(r *gin.Engine) {
	school := r.Group("/school")
	{
		school.GET("/meal", rt.School.Meal)
		school.GET("/event", rt.School.Events)
		school.GET("/timetable", rt.School.Timetable)
	}

	api := r.Group("/api")
	{
		api.GET("/timetable", rt.Timetable.List)
		api.GET("/meals", rt.Meal.Get)
		api.POST("/chat", rt.Chat.Post)
	}

	user := r.Group("/user")
	{
		user.GET("/config", rt.User.GetConfig)
		user.PUT("/config", rt.User.PutConfig)
		user.GET("/me", rt.User.Me)
	}

	r.GET("/music", rt.Device.Music)
	r.POST("/speaker/connect", rt.Device.SpeakerConnect)
}
