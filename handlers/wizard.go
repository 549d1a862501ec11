package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookflow/clients"
	"bookflow/models"
	"bookflow/services/form"
	"bookflow/services/wizard"
)

// WizardHandler exposes the wizard session operations over HTTP.
type WizardHandler struct {
	Svc    wizard.WizardService
	Logger *zap.Logger
}

// StartSession handles POST /api/wizard/sessions.
func (h *WizardHandler) StartSession(c *gin.Context) {
	view, err := h.Svc.StartSession(c.Request.Context())
	if err != nil {
		h.Logger.Error("StartSession: failed to start wizard session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start wizard session"})
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetSession handles GET /api/wizard/sessions/:sessionID. A client that lost
// its in-memory state resumes at the persisted step with an empty draft.
func (h *WizardHandler) GetSession(c *gin.Context) {
	view, err := h.Svc.ResumeSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitZipcode handles POST /api/wizard/sessions/:sessionID/zipcode.
func (h *WizardHandler) SubmitZipcode(c *gin.Context) {
	var input struct {
		Zipcode string `json:"zipcode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := h.Svc.SetAvailability(c.Request.Context(), c.Param("sessionID"), input.Zipcode)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectCategory handles POST /api/wizard/sessions/:sessionID/category.
func (h *WizardHandler) SelectCategory(c *gin.Context) {
	var input struct {
		CategoryID string `json:"categoryId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := h.Svc.SetCategory(c.Request.Context(), c.Param("sessionID"), input.CategoryID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectService handles POST /api/wizard/sessions/:sessionID/service.
func (h *WizardHandler) SelectService(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := h.Svc.SetService(c.Request.Context(), c.Param("sessionID"), input.ServiceID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Advance handles POST /api/wizard/sessions/:sessionID/advance.
func (h *WizardHandler) Advance(c *gin.Context) {
	view, err := h.Svc.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Back handles POST /api/wizard/sessions/:sessionID/back.
func (h *WizardHandler) Back(c *gin.Context) {
	view, err := h.Svc.Retreat(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PatchDraft handles PATCH /api/wizard/sessions/:sessionID/draft.
func (h *WizardHandler) PatchDraft(c *gin.Context) {
	var patch models.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := h.Svc.UpdateDraft(c.Request.Context(), c.Param("sessionID"), patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// maxUploadBytes caps a whole image upload request.
const maxUploadBytes = 64 << 20

// UploadImages handles POST /api/wizard/sessions/:sessionID/images. Each
// rejected file surfaces its own message; accepted files are added anyway.
// A file is checked against the image rules before any of its bytes are
// buffered.
func (h *WizardHandler) UploadImages(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	mpForm, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload exceeds the request size limit"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form", "details": err.Error()})
		return
	}

	var images []models.DraftImage
	var rejected []string
	for _, fh := range mpForm.File["images"] {
		if err := form.AcceptImage(fh.Filename, fh.Header.Get("Content-Type"), fh.Size); err != nil {
			rejected = append(rejected, err.Error())
			continue
		}

		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload", "details": err.Error()})
			return
		}
		data := make([]byte, fh.Size)
		if _, err := io.ReadFull(f, data); err != nil {
			f.Close()
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload", "details": err.Error()})
			return
		}
		f.Close()

		images = append(images, models.DraftImage{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Data:        data,
		})
	}

	view, rejections, err := h.Svc.AddImages(c.Request.Context(), c.Param("sessionID"), images)
	if err != nil {
		h.respondError(c, err)
		return
	}

	for _, r := range rejections {
		rejected = append(rejected, r.Error())
	}
	c.JSON(http.StatusOK, gin.H{"session": view, "rejected": rejected})
}

// ValidateForm handles POST /api/wizard/sessions/:sessionID/validate.
func (h *WizardHandler) ValidateForm(c *gin.Context) {
	var f form.BookingForm
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	errs, err := h.Svc.ValidateForm(c.Request.Context(), c.Param("sessionID"), &f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": errs == nil, "errors": errs})
}

// Submit handles POST /api/wizard/sessions/:sessionID/submit.
func (h *WizardHandler) Submit(c *gin.Context) {
	var f form.BookingForm
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	receipt, err := h.Svc.Submit(c.Request.Context(), c.Param("sessionID"), &f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"receipt": receipt})
}

// AbandonSession handles DELETE /api/wizard/sessions/:sessionID.
func (h *WizardHandler) AbandonSession(c *gin.Context) {
	if err := h.Svc.Abandon(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session discarded"})
}

// respondError maps service errors onto HTTP statuses.
func (h *WizardHandler) respondError(c *gin.Context, err error) {
	var validationErr *wizard.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": validationErr.Fields})
		return
	}

	var flowErr *wizard.FlowError
	if errors.As(err, &flowErr) {
		switch flowErr.Code {
		case "sessionNotFound":
			c.JSON(http.StatusNotFound, gin.H{"error": flowErr.Message})
		case "invalidTransition":
			c.JSON(http.StatusConflict, gin.H{"error": flowErr.Message})
		case "submitInFlight":
			c.JSON(http.StatusConflict, gin.H{"error": flowErr.Message})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": flowErr.Message})
		}
		return
	}

	var upstreamErr *clients.UpstreamError
	if errors.As(err, &upstreamErr) {
		h.Logger.Warn("upstream call failed", zap.Error(upstreamErr))
		c.JSON(http.StatusBadGateway, gin.H{"error": "the booking service is unavailable, please try again"})
		return
	}

	h.Logger.Error("wizard operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
