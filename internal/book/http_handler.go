package book

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"bookstore/internal/httpx"
)

const (
	msgNotFound      = "Book not found"
	msgAlreadyExists = "Book already exists"
	msgDeleted       = "Book deleted"
	msgBadBody       = "request body must be a JSON object"
	msgBodyTooLarge  = "Request body too large"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// RegisterRoutes mounts the book endpoints on mux.
func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("GET /books/{isbn}", h.GetByISBN)
	mux.HandleFunc("PUT /books/{isbn}", h.Update)
	mux.HandleFunc("DELETE /books/{isbn}", h.Delete)
}

type listResponse struct {
	Books []Book `json:"books"`
}

type bookResponse struct {
	Book Book `json:"book"`
}

// List handles GET /books
// @Summary List books
// @Tags books
// @Produce json
// @Success 200 {object} listResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		httpx.InternalError(w, r, err)
		return
	}
	if books == nil {
		books = []Book{}
	}
	httpx.JSON(w, http.StatusOK, listResponse{Books: books})
}

// GetByISBN handles GET /books/{isbn}
// @Summary Get book by ISBN
// @Tags books
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} bookResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{isbn} [get]
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetByISBN(r.Context(), r.PathValue("isbn"))
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, bookResponse{Book: b})
}

// Create handles POST /books
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Param request body Book true "Book"
// @Success 201 {object} bookResponse
// @Failure 400 {object} httpx.ValidationResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := readObject(w, r)
	if !ok {
		return
	}
	if errs := ValidateCreate(payload); len(errs) > 0 {
		httpx.JSONErrors(w, http.StatusBadRequest, errs)
		return
	}

	created, err := h.service.Create(r.Context(), bookFromPayload(payload))
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, bookResponse{Book: created})
}

// Update handles PUT /books/{isbn}
// @Summary Update a book
// @Description Partial update; the ISBN itself cannot be changed.
// @Tags books
// @Accept json
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Param request body Patch true "Fields to change"
// @Success 200 {object} bookResponse
// @Failure 400 {object} httpx.ValidationResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{isbn} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	payload, ok := readObject(w, r)
	if !ok {
		return
	}
	if errs := ValidateUpdate(payload); len(errs) > 0 {
		httpx.JSONErrors(w, http.StatusBadRequest, errs)
		return
	}

	updated, err := h.service.Update(r.Context(), r.PathValue("isbn"), patchFromPayload(payload))
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, bookResponse{Book: updated})
}

// Delete handles DELETE /books/{isbn}
// @Summary Delete a book
// @Tags books
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} httpx.MessageResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{isbn} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("isbn")); err != nil {
		h.storeError(w, r, err)
		return
	}
	httpx.JSONMessage(w, http.StatusOK, msgDeleted)
}

func (h *HTTPHandler) storeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, ErrConflict):
		httpx.JSONError(w, http.StatusConflict, msgAlreadyExists)
	default:
		httpx.InternalError(w, r, err)
	}
}

// readObject reads the request body and decodes it as a single JSON object,
// keeping numbers as json.Number. On failure the response is already written.
func readObject(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return nil, false
		}
		httpx.JSONErrors(w, http.StatusBadRequest, []string{msgBadBody})
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var payload map[string]any
	if err := dec.Decode(&payload); err != nil || payload == nil {
		httpx.JSONErrors(w, http.StatusBadRequest, []string{msgBadBody})
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		httpx.JSONErrors(w, http.StatusBadRequest, []string{msgBadBody})
		return nil, false
	}
	return payload, true
}
