package router

import (
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/hoa-ledger/backend/internal/models"
)

// URLMiddleware sets the external base URL of the API in the context. It
// is used to build links.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), url.String())
		c.Next()
	}
}
