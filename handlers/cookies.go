package handlers

import (
	"github.com/gin-gonic/gin"
)

// Cookie names carrying the transient navigation state tokens. The tokens
// never appear in URLs.
const (
	CheckoutCookie = "bookit_checkout"
	ConfirmCookie  = "bookit_confirm"
)

func setStateCookie(c *gin.Context, name, token string, maxAge int) {
	c.SetCookie(name, token, maxAge, "/", "", false, true)
}

func clearStateCookie(c *gin.Context, name string) {
	c.SetCookie(name, "", -1, "/", "", false, true)
}
