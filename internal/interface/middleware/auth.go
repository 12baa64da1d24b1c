package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/tripmoa/trip-backend/pkg/helpers"
	"github.com/tripmoa/trip-backend/pkg/response"
)

// CtxMemberIDKey is the Gin context key holding the authenticated member's id.
const CtxMemberIDKey = "memberID"

// Auth validates the access token and ensures a live session exists in
// Redis with a matching session id. This is the "current member"
// resolution the services rely on: they receive a member id and never
// touch tokens or sessions themselves.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", err.Error())
			c.Abort()
			return
		}

		key := "member:session:" + strconv.FormatInt(claims.MemberID, 10)
		data, err := rdb.HGetAll(c.Request.Context(), key).Result()
		if err != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
			c.Abort()
			return
		}

		c.Set(CtxMemberIDKey, claims.MemberID)
		c.Set("nickname", data["nickname"])
		c.Next()
	}
}

// MemberID extracts the authenticated member id set by Auth.
func MemberID(c *gin.Context) int64 {
	v, ok := c.Get(CtxMemberIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}
