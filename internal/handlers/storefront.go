// internal/handlers/storefront.go
package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/egpt/storebuilder/internal/enhance"
	"github.com/egpt/storebuilder/internal/models"
	"github.com/egpt/storebuilder/internal/session"
	"github.com/egpt/storebuilder/internal/storefront"
	"github.com/egpt/storebuilder/internal/utils"
)

type StorefrontHandler struct {
	store    *session.Store
	enhancer *enhance.Enhancer
}

func NewStorefrontHandler(store *session.Store, enhancer *enhance.Enhancer) *StorefrontHandler {
	return &StorefrontHandler{
		store:    store,
		enhancer: enhancer,
	}
}

type GenerateRequest struct {
	UserPrompt string                     `json:"user_prompt" validate:"required,min=3"`
	Options    *models.EnhancementOptions `json:"options,omitempty"`
}

// POST /sessions/:id/generate
//
// Runs the enhancement stage synchronously. The session sits in the
// Processing state for the duration; a canceled request discards the
// in-flight result and returns the session to Home instead of applying
// it to stale state.
func (h *StorefrontHandler) Generate(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	options := models.DefaultEnhancementOptions()
	if req.Options != nil {
		options = *req.Options
	}

	sess, gen, err := h.store.BeginGeneration(id, req.UserPrompt)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	resp, err := h.enhancer.Enhance(c.Request.Context(), &models.EnhancementRequest{
		Brand:      models.DefaultBrand(),
		UserPrompt: req.UserPrompt,
		Products:   sess.Products,
		Options:    options,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			h.store.AbortGeneration(id, gen)
			c.Abort()
			return
		}
		logrus.WithError(err).WithField("session_id", id).Error("Enhancement failed")
		if _, ferr := h.store.FailGeneration(id, gen, err.Error()); ferr != nil {
			respondSessionError(c, ferr)
			return
		}
		utils.BadGatewayResponse(c, "Enhancement failed, retry the submission or go back")
		return
	}

	sess, err = h.store.CompleteGeneration(id, gen, resp)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"session":     sess,
		"enhancement": resp,
	})
}

// GET /themes
func (h *StorefrontHandler) ListThemes(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"themes": models.Themes(),
	})
}

type SelectThemeRequest struct {
	ThemeID string `json:"theme_id" validate:"required"`
}

// PUT /sessions/:id/theme
func (h *StorefrontHandler) SelectTheme(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req SelectThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	sess, err := h.store.SelectTheme(id, req.ThemeID)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"session": sess,
	})
}

// GET /sessions/:id/storefront
func (h *StorefrontHandler) GetStorefront(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	sess, err := h.store.Get(id)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	if sess.State != session.StateStore || sess.Theme == nil || sess.Enhancement == nil {
		utils.ConflictResponse(c, "Storefront requires a selected theme and a completed enhancement")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"storefront": storefront.Assemble(*sess.Theme, sess.Products, sess.Enhancement),
	})
}
