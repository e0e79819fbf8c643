package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/ports"
)

// CatalogHandler handles HTTP requests for catalog items and their variants.
type CatalogHandler struct {
	service ports.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler with the given service port.
func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// CreateItem handles POST /api/v1/items.
func (h *CatalogHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.CreateItem(r.Context(), req.ItemID, req.Description)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/items/"+created.ID().String())
	writeJSON(w, http.StatusCreated, dto.ToItemResponse(created))
}

// GetItem handles GET /api/v1/items/{id}.
func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	it, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToItemResponse(it))
}

// ListEvents handles GET /api/v1/items/{id}/events.
func (h *CatalogHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	events, err := h.service.History(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEventListResponse(id, events))
}

// UpdateItem handles PATCH /api/v1/items/{id}.
func (h *CatalogHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.service.UpdateItem(r.Context(), id, req.ToItemUpdate())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToItemResponse(updated))
}

// AddVariant handles POST /api/v1/items/{id}/variants.
func (h *CatalogHandler) AddVariant(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AddVariantRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	it, variantID, err := h.service.AddVariant(r.Context(), id, req.ToNewVariant())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToAddVariantResponse(it, variantID))
}

// ChangeVariantPrice handles PATCH /api/v1/items/{id}/variants/{variantId}.
func (h *CatalogHandler) ChangeVariantPrice(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	variantID, err := parseID(r, "variantId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ChangeVariantPriceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.service.ChangeVariantPrice(r.Context(), id, variantID, *req.PriceCents)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToItemResponse(updated))
}

// RetireItem handles POST /api/v1/items/{id}/retire.
func (h *CatalogHandler) RetireItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.RetireItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	retired, err := h.service.RetireItem(r.Context(), id, req.Reason)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToItemResponse(retired))
}
