package controllers

import (
	"net/http"

	"healthmate/internal/apperr"
	"healthmate/internal/logger"
	"healthmate/internal/middleware"
	"healthmate/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Responder writes the JSON envelopes shared by every controller. Internal
// error details are only included when ShowDetails is set.
type Responder struct {
	ShowDetails bool
	Log         *logger.Logger
}

func NewResponder(showDetails bool, log *logger.Logger) Responder {
	if log == nil {
		log = logger.NewNop()
	}
	return Responder{ShowDetails: showDetails, Log: log}
}

func (r Responder) success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func (r Responder) fail(c *gin.Context, status int, message, detail string) {
	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
		"error":   detail,
	})
}

// badRequest is for request binding failures.
func (r Responder) badRequest(c *gin.Context, err error) {
	r.fail(c, http.StatusBadRequest, "Invalid request data", err.Error())
}

// respondError maps err through the apperr taxonomy.
func (r Responder) respondError(c *gin.Context, err error) {
	ae := apperr.From(err)
	status := ae.Status()

	detail := ae.Message
	if status >= http.StatusInternalServerError {
		r.Log.Error("Request failed", "method", c.Request.Method, "path", c.FullPath(), "status", status, "error", err)
		_ = c.Error(err)
		detail = ""
		if r.ShowDetails && ae.Err != nil {
			detail = ae.Err.Error()
		}
	}
	r.fail(c, status, ae.Message, detail)
}

// pathID parses a uuid path parameter; a malformed value is a client error.
func pathID(c *gin.Context, param, label string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, apperr.Validation("Invalid " + label + " ID")
	}
	return id, nil
}

// currentUser returns the authenticated user or answers 401 itself.
func (r Responder) currentUser(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		r.respondError(c, apperr.Unauthorized("Access denied. No token provided."))
		return nil, false
	}
	return user, true
}
