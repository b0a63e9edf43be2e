package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on the router's public group and on the
// group guarded by the owner token middleware.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}
