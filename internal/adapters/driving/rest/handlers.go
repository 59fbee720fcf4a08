package rest

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/custodia-labs/unitconv/internal/core/domain"
)

// convertData is the payload of a successful conversion.
type convertData struct {
	Category domain.Category `json:"category"`
	Value    float64         `json:"value"`
	From     string          `json:"from,omitempty"`
	To       string          `json:"to,omitempty"`
	Result   float64         `json:"result"`
	Display  string          `json:"display"`
}

func (s *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	sendResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) categoriesHandler(w http.ResponseWriter, _ *http.Request) {
	sendResponse(w, http.StatusOK, s.converter.Catalog())
}

func (s *Server) unitsHandler(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())

	category, err := domain.ParseCategory(params.ByName("category"))
	if err != nil {
		sendDomainError(w, err)
		return
	}

	units, err := s.converter.Units(category)
	if err != nil {
		sendDomainError(w, err)
		return
	}

	sendResponse(w, http.StatusOK, units)
}

func (s *Server) convertHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	category, err := domain.ParseCategory(query.Get("category"))
	if err != nil {
		sendDomainError(w, err)
		return
	}
	if category == domain.CategoryCircleArea {
		sendError(w, http.StatusBadRequest, "use /api/circle-area for circle area")
		return
	}

	from, to := strings.TrimSpace(query.Get("from")), strings.TrimSpace(query.Get("to"))
	if from == "" || to == "" {
		sendError(w, http.StatusBadRequest, "from and to are required")
		return
	}

	value, err := parseValue(category, query.Get("value"))
	if err != nil {
		sendDomainError(w, err)
		return
	}

	s.convert(w, r, domain.ConversionRequest{
		Category: category,
		Value:    value,
		From:     from,
		To:       to,
	})
}

func (s *Server) circleAreaHandler(w http.ResponseWriter, r *http.Request) {
	radius, err := parseValue(domain.CategoryCircleArea, r.URL.Query().Get("radius"))
	if err != nil {
		sendDomainError(w, err)
		return
	}

	s.convert(w, r, domain.ConversionRequest{
		Category: domain.CategoryCircleArea,
		Value:    radius,
	})
}

func (s *Server) convert(w http.ResponseWriter, r *http.Request, req domain.ConversionRequest) {
	result, err := s.converter.Convert(r.Context(), req)
	if err != nil {
		sendDomainError(w, err)
		return
	}

	sendResponse(w, http.StatusOK, convertData{
		Category: req.Category,
		Value:    req.Value,
		From:     req.From,
		To:       req.To,
		Result:   result.Value,
		Display:  result.Display,
	})
}

// parseValue reads a numeric query parameter and applies the category's
// input policy.
func parseValue(category domain.Category, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, strings.ToLower(category.ValueLabel()))
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, raw)
	}

	if err := category.CheckInput(v); err != nil {
		return 0, err
	}
	return v, nil
}
