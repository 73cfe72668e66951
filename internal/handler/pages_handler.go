package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// pageRoutes maps each portal page to its template.
var pageRoutes = map[string]string{
	"/":          "index.html",
	"/login":     "login.html",
	"/signup":    "signup.html",
	"/home":      "home.html",
	"/profile":   "profile.html",
	"/chat":      "chat.html",
	"/timetable": "timetable.html",
	"/menu":      "menu.html",
}

// RegisterPages wires the static page routes onto the router.
func RegisterPages(r *gin.Engine) {
	for path, template := range pageRoutes {
		tmpl := template
		r.GET(path, func(c *gin.Context) {
			c.HTML(http.StatusOK, tmpl, nil)
		})
	}
}
