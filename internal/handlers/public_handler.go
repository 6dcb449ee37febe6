package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ensemble-arts/shop-backend/internal/members"
)

// RegisterPublicRoutes registers unauthenticated site data routes.
func RegisterPublicRoutes(r *gin.Engine, cfg HandlerConfig) {
	log := cfg.logger()
	store := members.NewStore(cfg.DynamoDBClient, cfg.MembersTable)

	r.GET("/api/public/members", func(c *gin.Context) {
		list, err := store.List(c.Request.Context())
		if err != nil {
			writeInternal(c, log, err)
			return
		}
		if list == nil {
			list = []members.MemberProfile{}
		}
		c.JSON(http.StatusOK, gin.H{"members": list})
	})
}
