package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
	"github.com/staffdesk/staffdesk-backend-go/internal/service/file"
)

type FileHandler interface {
	UploadAttendanceProof(w http.ResponseWriter, r *http.Request)
	UploadDocumentScan(w http.ResponseWriter, r *http.Request)
}

type fileHandlerImpl struct {
	fileService file.FileService
}

func NewFileHandler(fileService file.FileService) FileHandler {
	return &fileHandlerImpl{
		fileService: fileService,
	}
}

// UploadAttendanceProof implements FileHandler. Multipart form with a
// "file" part; the employee comes from the token unless overridden.
func (h *fileHandlerImpl) UploadAttendanceProof(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse attendance proof upload", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	employeeID := r.FormValue("employee_id")
	if employeeID == "" {
		employeeID = employeeIDFromClaims(r)
	}
	if employeeID == "" {
		response.BadRequest(w, "Field 'employee_id' is required", nil)
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Field 'file' is required", nil)
		return
	}
	defer f.Close()

	url, err := h.fileService.UploadAttendanceProof(r.Context(), employeeID, time.Now(), f, header.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Proof uploaded successfully", map[string]string{"url": url})
}

// UploadDocumentScan implements FileHandler.
func (h *fileHandlerImpl) UploadDocumentScan(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse document scan upload", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	docCode := r.FormValue("doc_code")
	if docCode == "" {
		response.BadRequest(w, "Field 'doc_code' is required", nil)
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Field 'file' is required", nil)
		return
	}
	defer f.Close()

	url, err := h.fileService.UploadDocumentScan(r.Context(), docCode, f, header.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document scan uploaded successfully", map[string]string{"url": url})
}
