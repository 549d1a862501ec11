package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bookflow/models"
	"bookflow/services/form"
	"bookflow/services/wizard"
)

// stubWizardService records AddImages calls; every other operation is
// unused by these tests.
type stubWizardService struct {
	wizard.WizardService
	added [][]models.DraftImage
}

func (s *stubWizardService) AddImages(ctx context.Context, sessionID string, images []models.DraftImage) (*wizard.SessionView, []error, error) {
	s.added = append(s.added, images)
	return &wizard.SessionView{ID: sessionID}, nil, nil
}

func newUploadRouter(svc wizard.WizardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &WizardHandler{Svc: svc, Logger: zap.NewNop()}
	r.POST("/api/wizard/sessions/:sessionID/images", h.UploadImages)
	return r
}

func addImagePart(t *testing.T, w *multipart.Writer, filename, contentType string, size int) {
	t.Helper()
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte{0xAB}, size))
	require.NoError(t, err)
}

type uploadResponse struct {
	Session  json.RawMessage `json:"session"`
	Rejected []string        `json:"rejected"`
}

func postUpload(t *testing.T, r *gin.Engine, w *multipart.Writer, body *bytes.Buffer) uploadResponse {
	t.Helper()
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/wizard/sessions/sess-1/images", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestUploadImagesFiltersOversizedFileBeforeBuffering(t *testing.T) {
	svc := &stubWizardService{}
	r := newUploadRouter(svc)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	addImagePart(t, w, "huge.png", "image/png", form.MaxImageSize+1)
	addImagePart(t, w, "ok.png", "image/png", 64)

	resp := postUpload(t, r, w, body)

	require.Len(t, resp.Rejected, 1)
	assert.Contains(t, resp.Rejected[0], "huge.png")

	// Only the accepted file ever reaches the service.
	require.Len(t, svc.added, 1)
	require.Len(t, svc.added[0], 1)
	assert.Equal(t, "ok.png", svc.added[0][0].Filename)
	assert.Len(t, svc.added[0][0].Data, 64)
}

func TestUploadImagesFiltersWrongTypeWithoutReading(t *testing.T) {
	svc := &stubWizardService{}
	r := newUploadRouter(svc)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	addImagePart(t, w, "notes.pdf", "application/pdf", 128)

	resp := postUpload(t, r, w, body)

	require.Len(t, resp.Rejected, 1)
	assert.Contains(t, resp.Rejected[0], "notes.pdf")
	require.Len(t, svc.added, 1)
	assert.Empty(t, svc.added[0])
}
