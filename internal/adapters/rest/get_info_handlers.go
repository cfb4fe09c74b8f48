package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/contextkeys"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port/usecases_port"
)

type GetInfoHandler struct {
	findObjectsUC      usecases_port.FindObjectsUseCase
	getObjectDetailsUC usecases_port.GetObjectDetailsUseCase
	getNewObjectsUC    usecases_port.GetNewDevelopmentsUseCase
	formatter          port.PriceFormatterPort
}

func NewGetInfoHandler(findObjectsUC usecases_port.FindObjectsUseCase,
	getObjectDetailsUC usecases_port.GetObjectDetailsUseCase,
	getNewObjectsUC usecases_port.GetNewDevelopmentsUseCase,
	formatter port.PriceFormatterPort) *GetInfoHandler {
	return &GetInfoHandler{
		findObjectsUC:      findObjectsUC,
		getObjectDetailsUC: getObjectDetailsUC,
		getNewObjectsUC:    getNewObjectsUC,
		formatter:          formatter,
	}
}

// FindObjects обрабатывает GET /api/v1/objects
func (h *GetInfoHandler) FindObjects(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	query := r.URL.Query()

	page, perPage, limit, offset := ParsePagination(query)
	filters := ParseFilterCriteria(query)

	handlerLogger := logger.WithFields(port.Fields{
		"handler":  "FindObjects",
		"page":     page,
		"per_page": perPage,
	})
	handlerLogger.Debug("Processing request to find objects", nil)

	paginatedResult, err := h.findObjectsUC.Execute(r.Context(), filters, limit, offset)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, r, http.StatusInternalServerError, "Failed to retrieve objects")
		return
	}

	response := PaginatedObjectsResponse{
		Total:   paginatedResult.TotalCount,
		Page:    page,
		PerPage: perPage,
		Data:    toObjectCards(paginatedResult.Objects, h.formatter),
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// GetObjectDetails обрабатывает GET /api/v1/objects/{objectID}
func (h *GetInfoHandler) GetObjectDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	objectIDStr := chi.URLParam(r, "objectID")
	objectID, err := strconv.Atoi(objectIDStr)
	if err != nil {
		logger.Warn("Invalid object ID format", port.Fields{"error": err.Error(), "object_id": objectIDStr})
		WriteJSONError(w, r, http.StatusBadRequest, "Invalid object ID format")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":   "GetObjectDetails",
		"object_id": objectID,
	})

	listing, err := h.getObjectDetailsUC.Execute(r.Context(), objectID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			WriteJSONError(w, r, http.StatusNotFound, "Object not found")
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, r, http.StatusInternalServerError, "Failed to retrieve object")
		return
	}

	RespondWithJSON(w, http.StatusOK, toObjectCard(*listing, h.formatter))
}

// GetNewDevelopments обрабатывает GET /api/v1/new-developments
func (h *GetInfoHandler) GetNewDevelopments(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetNewDevelopments"})

	objects, err := h.getNewObjectsUC.Execute(r.Context())
	if err != nil {
		logger.Error("Use case failed", err, nil)
		WriteJSONError(w, r, http.StatusInternalServerError, "Failed to retrieve new developments")
		return
	}

	RespondWithJSON(w, http.StatusOK, ObjectsListResponse{
		Total: len(objects),
		Data:  toObjectCards(objects, h.formatter),
	})
}
