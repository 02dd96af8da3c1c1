package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *server) render(c *gin.Context, code int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Config"] = s.config
	data["Title"] = title
	data["Year"] = s.feed.Now().Year()
	data["Toasts"] = takeToasts(c, s.logger)
	c.HTML(code, name, data)
}

func (s *server) RenderErrorPage(c *gin.Context, code int, message string) {
	s.render(c, code, "/error.tmpl", "Error", gin.H{
		"ErrorMessage": message,
	})
}

func (s *server) RenderNotFoundPage(c *gin.Context, heading string) {
	message := "The page you're looking for doesn't exist."
	if heading == flagNotFound {
		message = "The redflag you're looking for doesn't exist or has been removed."
	}
	s.render(c, http.StatusNotFound, "/notfound.tmpl", heading, gin.H{
		"Heading": heading,
		"Message": message,
	})
}
