package handlers

import (
	"net/http"

	"growlog/internal/service"
)

// ReportHandler handles growth report building, sharing and email delivery
type ReportHandler struct {
	reportService *service.ReportService
	diaryService  *service.DiaryService
	emailService  *service.EmailService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService, diaryService *service.DiaryService, emailService *service.EmailService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		diaryService:  diaryService,
		emailService:  emailService,
	}
}

// GetReport handles GET /api/children/{id}/report?start=&end=
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	parent := GetParentFromContext(r.Context())
	childID := r.PathValue("id")
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	growthReport, err := h.reportService.BuildReport(parent.ID, childID, start, end)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, growthReport)
}

// ShareReport handles POST /api/children/{id}/report/share
func (h *ReportHandler) ShareReport(w http.ResponseWriter, r *http.Request) {
	parent := GetParentFromContext(r.Context())
	childID := r.PathValue("id")

	var req struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", nil)
		return
	}

	link, err := h.reportService.ShareLink(parent.ID, childID, req.Start, req.End)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{"shareLink": link})
}

// SharedReport handles GET /api/shared/report?token= without session auth
func (h *ReportHandler) SharedReport(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		respondWithError(w, http.StatusBadRequest, "missing token", "", nil)
		return
	}

	growthReport, err := h.reportService.BuildSharedReport(token)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "invalid or expired share link", "", nil)
		return
	}

	respondWithJSON(w, http.StatusOK, growthReport)
}

// EmailReport handles POST /api/children/{id}/report/email
func (h *ReportHandler) EmailReport(w http.ResponseWriter, r *http.Request) {
	parent := GetParentFromContext(r.Context())
	childID := r.PathValue("id")

	var req struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", nil)
		return
	}

	if !h.emailService.IsEnabled() {
		respondWithError(w, http.StatusServiceUnavailable, "email delivery is not configured", "", nil)
		return
	}

	child, err := h.diaryService.GetChild(parent.ID, childID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	growthReport, err := h.reportService.BuildReport(parent.ID, childID, req.Start, req.End)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	shareLink, err := h.reportService.ShareLink(parent.ID, childID, req.Start, req.End)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	if err := h.emailService.SendGrowthReportEmail(r.Context(), parent.Email, parent.Name, child.Name, growthReport, shareLink); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to send email", "report email failed", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}
