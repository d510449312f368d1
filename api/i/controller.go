package i

import "github.com/gin-gonic/gin"

// Controller registers a group of related routes on the router.
type Controller interface {
	Register(*gin.RouterGroup)
}
