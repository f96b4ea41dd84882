package api

import (
	"github.com/gin-gonic/gin"

	"shortlaunch/upload"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(submitter upload.Submitter, defaultPrivacy string) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	// Register resource routers
	RegisterUploadRoutes(r, submitter, defaultPrivacy)
	RegisterHealthRoutes(r)
	return r
}
