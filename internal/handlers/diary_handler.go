package handlers

import (
	"net/http"

	"growlog/internal/models"
	"growlog/internal/service"
)

// DiaryHandler handles child profiles, daily questions and answers
type DiaryHandler struct {
	diaryService *service.DiaryService
}

// NewDiaryHandler creates a new diary handler
func NewDiaryHandler(diaryService *service.DiaryService) *DiaryHandler {
	return &DiaryHandler{diaryService: diaryService}
}

// CreateChild handles POST /api/children
func (h *DiaryHandler) CreateChild(w http.ResponseWriter, r *http.Request) {
	parent := GetParentFromContext(r.Context())

	var req struct {
		Name     string `json:"name"`
		AgeGroup int    `json:"ageGroup"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", nil)
		return
	}

	child, err := h.diaryService.RegisterChild(parent.ID, req.Name, models.AgeGroup(req.AgeGroup))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, child)
}

// ListChildren handles GET /api/children
func (h *DiaryHandler) ListChildren(w http.ResponseWriter, r *http.Request) {
	parent := GetParentFromContext(r.Context())

	children, err := h.diaryService.Children(parent.ID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if children == nil {
		children = []models.Child{}
	}

	respondWithJSON(w, http.StatusOK, children)
}

// DailyQuestions handles GET /api/children/{id}/questions?date=YYYY-MM-DD
func (h *DiaryHandler) DailyQuestions(w http.ResponseWriter, r *http.Request) {
	parent := GetParentFromContext(r.Context())
	childID := r.PathValue("id")
	date := r.URL.Query().Get("date")

	qs, err := h.diaryService.DailyQuestions(parent.ID, childID, date)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"date":      date,
		"childId":   childID,
		"questions": qs,
	})
}

// SaveAnswer handles POST /api/children/{id}/answers
func (h *DiaryHandler) SaveAnswer(w http.ResponseWriter, r *http.Request) {
	parent := GetParentFromContext(r.Context())
	childID := r.PathValue("id")

	var req struct {
		QuestionID     string `json:"questionId"`
		Date           string `json:"date"`
		Text           string `json:"text"`
		SelectedOption string `json:"selectedOption"`
		AudioURL       string `json:"audioUrl"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", nil)
		return
	}

	answer, err := h.diaryService.SaveAnswer(parent.ID, models.Answer{
		QuestionID:     req.QuestionID,
		ChildID:        childID,
		Date:           req.Date,
		Text:           req.Text,
		SelectedOption: req.SelectedOption,
		AudioURL:       req.AudioURL,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, answer)
}

// DailyLog handles GET /api/children/{id}/answers?date=YYYY-MM-DD
func (h *DiaryHandler) DailyLog(w http.ResponseWriter, r *http.Request) {
	parent := GetParentFromContext(r.Context())
	childID := r.PathValue("id")
	date := r.URL.Query().Get("date")

	logEntry, err := h.diaryService.DailyLog(parent.ID, childID, date)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if logEntry.Answers == nil {
		logEntry.Answers = []models.Answer{}
	}

	respondWithJSON(w, http.StatusOK, logEntry)
}
