// internal/handlers/catalog.go
package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/egpt/storebuilder/internal/catalog"
	"github.com/egpt/storebuilder/internal/session"
	"github.com/egpt/storebuilder/internal/utils"
)

type CatalogHandler struct {
	store         *session.Store
	maxUploadSize int64
}

func NewCatalogHandler(store *session.Store, maxUploadSizeMB int64) *CatalogHandler {
	return &CatalogHandler{
		store:         store,
		maxUploadSize: maxUploadSizeMB * 1024 * 1024,
	}
}

// POST /sessions/:id/catalog
func (h *CatalogHandler) UploadCatalog(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "No file uploaded", err.Error())
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadSize {
		utils.BadRequestResponse(c, fmt.Sprintf("File exceeds the %dMB upload limit", h.maxUploadSize/(1024*1024)), nil)
		return
	}

	products, rowErrors, err := catalog.Ingest(header.Filename, file)
	if err != nil {
		if errors.Is(err, catalog.ErrUnsupportedFile) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.UnprocessableResponse(c, err.Error(), nil)
		return
	}

	if len(rowErrors) > 0 {
		utils.UnprocessableResponse(c, "Catalog validation failed", rowErrors)
		return
	}

	sess, err := h.store.SetCatalog(id, products)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"session_id": id,
		"products":   len(products),
		"filename":   header.Filename,
	}).Info("Catalog ingested")

	utils.SuccessResponse(c, gin.H{
		"session":  sess,
		"products": products,
	})
}

// GET /catalog/template
func (h *CatalogHandler) DownloadTemplate(c *gin.Context) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", catalog.TemplateFilename))

	if err := catalog.WriteTemplate(c.Writer); err != nil {
		logrus.WithError(err).Error("Failed to write template workbook")
		utils.InternalErrorResponse(c, "Failed to generate template")
		return
	}
}
