package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hris-core/hris-backend-go/internal/domain/rankfile"
	"github.com/hris-core/hris-backend-go/internal/handler/http/response"
)

type RankFileHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type rankFileHandlerImpl struct {
	rankFileService rankfile.RankFileService
}

func NewRankFileHandler(rankFileService rankfile.RankFileService) RankFileHandler {
	return &rankFileHandlerImpl{rankFileService: rankFileService}
}

// List implements RankFileHandler. Supports ?employeeId= and ?type=.
func (h *rankFileHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := rankfile.RankFileFilter{
		EmployeeID: r.URL.Query().Get("employeeId"),
		Type:       rankfile.Type(r.URL.Query().Get("type")),
	}

	entries, err := h.rankFileService.ListRankFiles(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, entries)
}

func (h *rankFileHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.rankFileService.GetRankFile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, entry)
}

func (h *rankFileHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req rankfile.CreateRankFileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.rankFileService.CreateRankFile(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, created)
}

func (h *rankFileHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req rankfile.UpdateRankFileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.rankFileService.UpdateRankFile(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, updated)
}

func (h *rankFileHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.rankFileService.DeleteRankFile(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}
