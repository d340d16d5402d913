// internal/handlers/session.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/egpt/storebuilder/internal/session"
	"github.com/egpt/storebuilder/internal/utils"
)

type SessionHandler struct {
	store *session.Store
}

func NewSessionHandler(store *session.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

// POST /sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	sess := h.store.Create()
	utils.CreatedResponse(c, gin.H{
		"session": sess,
	})
}

// GET /sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	sess, err := h.store.Get(id)
	if err != nil {
		utils.NotFoundResponse(c, "Session not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"session": sess,
	})
}

type NavigateRequest struct {
	To string `json:"to" validate:"required"`
}

// POST /sessions/:id/navigate
func (h *SessionHandler) Navigate(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	target := session.State(req.To)
	if !session.ValidState(target) {
		utils.BadRequestResponse(c, "Unknown state", req.To)
		return
	}

	sess, err := h.store.Navigate(id, target)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"session": sess,
	})
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid session ID", nil)
		return uuid.UUID{}, false
	}
	return id, true
}

func respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		utils.NotFoundResponse(c, "Session not found")
	case errors.Is(err, session.ErrInvalidTransition):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, session.ErrNoProducts):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, session.ErrNoTheme):
		utils.BadRequestResponse(c, err.Error(), nil)
	case errors.Is(err, session.ErrStaleGeneration):
		utils.ConflictResponse(c, err.Error())
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}
