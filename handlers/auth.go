package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"smartpark/utils"
)

var errMissingPasswordHash = errors.New("DASHBOARD_PASSWORD_HASH environment variable is not set")

// passwordHash 儀表板密碼的 bcrypt 哈希，啟動時載入
var passwordHash string

// InitAuth 載入儀表板密碼哈希
func InitAuth() error {
	passwordHash = os.Getenv("DASHBOARD_PASSWORD_HASH")
	if passwordHash == "" {
		return errMissingPasswordHash
	}
	return nil
}

// Login 密碼閘門：密碼正確時簽發操作員 token
func Login(c *gin.Context) {
	var input struct {
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "請提供密碼", err.Error())
		return
	}

	if !utils.CheckPasswordHash(input.Password, passwordHash) {
		log.Printf("Dashboard login rejected: wrong password")
		ErrorResponseWithCode(c, http.StatusUnauthorized, "密碼錯誤", "invalid password", "ERR_INVALID_PASSWORD")
		return
	}

	token, err := utils.GenerateOperatorToken()
	if err != nil {
		log.Printf("Failed to generate operator token: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "登入失敗", err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "登入成功", gin.H{"token": token})
}
