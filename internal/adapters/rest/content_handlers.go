package rest

import (
	"net/http"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port/usecases_port"
)

type ContentHandler struct {
	getPageContentUC usecases_port.GetPageContentUseCase
}

func NewContentHandler(getPageContentUC usecases_port.GetPageContentUseCase) *ContentHandler {
	return &ContentHandler{getPageContentUC: getPageContentUC}
}

// GetContent обрабатывает GET /api/v1/content
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	content, err := h.getPageContentUC.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, r, http.StatusInternalServerError, "Failed to retrieve content")
		return
	}
	RespondWithJSON(w, http.StatusOK, content)
}
