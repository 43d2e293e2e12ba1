package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/techstore/assistant/internal/domain"
)

const internalErrorMessage = "I apologize, but I'm experiencing technical difficulties. Please try again later."

type errorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Type      string                 `json:"type"`
	Message   string                 `json:"message"`
	Products  []domain.ScoredProduct `json:"products"`
	SessionID string                 `json:"session_id"`
	Timestamp string                 `json:"timestamp"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Type: "error", Message: "Please provide a message."})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply, err := s.chat.Respond(r.Context(), sessionID, req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyMessage) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Type: "error", Message: "Please provide a message."})
			return
		}
		slog.Error("chat request failed", "error", err, "session_id", sessionID)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Type: "error", Message: internalErrorMessage})
		return
	}

	products := reply.Products
	if products == nil {
		products = []domain.ScoredProduct{}
	}
	writeJSON(w, http.StatusOK, chatResponse{
		Type:      "chat_response",
		Message:   reply.Message,
		Products:  products,
		SessionID: reply.SessionID,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

type clearRequest struct {
	SessionID string `json:"session_id"`
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	var req clearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Type: "error", Message: "Invalid request."})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = "default"
	}

	if err := s.chat.ClearSession(r.Context(), sessionID); err != nil {
		slog.Error("clear session failed", "error", err, "session_id", sessionID)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Type: "error", Message: "Failed to clear conversation history."})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"type":    "success",
		"message": "Conversation history cleared.",
	})
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	products := s.catalog.All()
	if products == nil {
		products = []domain.Product{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"total":    len(products),
	})
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
		return
	}

	product, err := s.catalog.Get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
		return
	}
	writeJSON(w, http.StatusOK, product)
}

type cartAddRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type cartItem struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    json.RawMessage `json:"price"`
	Quantity int             `json:"quantity"`
}

// handleCartAdd merges an item into the cart the client carries in its Cart
// header and echoes the updated cart back. The server itself is stateless.
func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	var req cartAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Product ID is required"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	var cart []cartItem
	if header := r.Header.Get("Cart"); header != "" {
		if err := json.Unmarshal([]byte(header), &cart); err != nil {
			cart = nil
		}
	}

	merged := false
	for i := range cart {
		if cart[i].ID == req.ProductID {
			cart[i].Quantity += req.Quantity
			merged = true
			break
		}
	}

	if !merged {
		product, err := s.catalog.Get(req.ProductID)
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
			return
		}
		price, _ := json.Marshal(product.Price)
		cart = append(cart, cartItem{
			ID:       product.ID,
			Name:     product.Name,
			Price:    price,
			Quantity: req.Quantity,
		})
	}

	writeJSON(w, http.StatusOK, cart)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":          "healthy",
		"products_loaded": s.catalog.Len(),
		"timestamp":       time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encode response", "error", err)
	}
}
