package controllers

import (
	"net/http"
	"strings"
	"time"

	"fethink/config"
	"fethink/content"
	"fethink/services"
	"fethink/structs"
	"fethink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	pack   *content.Pack
	logger *zap.Logger
)

// InitExerciseControllers wires the immutable configuration and content pack
// used by every handler. Call once before serving.
func InitExerciseControllers(c *config.Config, p *content.Pack, l *zap.Logger) {
	cfg = c
	pack = p
	logger = l
}

// GetConfig returns the public exercise settings the client needs before
// unlocking.
func GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":            true,
		"questionText":  pack.QuestionText,
		"templateText":  pack.TemplateText,
		"targetWords":   pack.TargetWords,
		"minWordsGate":  pack.MinWordsGate,
		"maxWords":      pack.MaxWords,
		"courseBackUrl": cfg.CourseBackURL,
		"nextLessonUrl": cfg.NextLessonURL,
	})
}

// Unlock validates the shared access code and issues the session cookie.
func Unlock(c *gin.Context) {
	var request structs.UnlockRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		request.Code = "" // malformed bodies coerce to an empty code
	}

	code := strings.TrimSpace(request.Code)
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing_code"})
		return
	}
	if !utils.ValidateCode(code, cfg.AccessCode) {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "incorrect_code"})
		return
	}

	token, err := utils.MintSessionToken(cfg.SecretBytes(), cfg.SessionLifetime(), time.Now())
	if err != nil {
		logger.Error("failed to mint session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal"})
		return
	}
	utils.SetSessionCookie(c, token, cfg.SessionLifetime())
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Mark scores the submitted answer against the rubric.
func Mark(c *gin.Context) {
	var request structs.MarkRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		request.AnswerText = ""
	}

	answer := clampString(request.AnswerText, pack.MaxAnswerChars)
	result := services.MarkAnswer(answer)
	c.JSON(http.StatusOK, gin.H{"ok": true, "result": result})
}

// Logout clears the session cookie. Tokens already issued simply age out.
func Logout(c *gin.Context) {
	utils.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Health reports liveness.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func clampString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
