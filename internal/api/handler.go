package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cryptopulse/internal/domain/dto"
	"github.com/guttosm/cryptopulse/internal/domain/models"
	"github.com/guttosm/cryptopulse/internal/middleware"
	"github.com/guttosm/cryptopulse/internal/service"
)

// textSeparator joins lines in format=text responses.
const textSeparator = "<br>"

// Handler provides HTTP handlers for the crypto price endpoints.
//
// Responsibilities:
//   - Read path and query parameters
//   - Delegate validation and computation to the service layer
//   - Translate results into response DTOs (JSON) or plain lines (format=text)
//   - Map service failures to HTTP status codes through middleware.Render
type Handler struct {
	svc service.CryptoService
	loc *time.Location
}

// NewHandler constructs a new Handler instance.
// loc is the calendar used for dates in format=text output; nil means UTC.
func NewHandler(svc service.CryptoService, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{svc: svc, loc: loc}
}

// Register mounts the crypto routes on rg (usually /api/v1).
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/cryptos", h.GetAll)
	rg.GET("/cryptos/highest", h.GetHighest)
	rg.GET("/cryptos/:code", h.GetByCode)
	rg.GET("/codes", h.GetCodes)
	rg.POST("/codes/:code", h.AddCode)
	rg.GET("/history", h.GetHistoryAll)
	rg.GET("/history/:code", h.GetHistoryByCode)
}

// GetAll godoc
// @Summary      Summaries of every crypto
// @Description  Oldest/newest/min/max prices of every known crypto, ranked by normalized range (desc). Corrupted or missing files are skipped.
// @Tags         cryptos
// @Produce      json
// @Param        date    query     string  false  "Day filter in DD-MM-YYYY"  example(01-01-2022)
// @Param        format  query     string  false  "json (default) or text"
// @Success      200     {array}   dto.SummaryResponse
// @Failure      400     {object}  dto.ErrorResponse  "Invalid date"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/cryptos [get]
func (h *Handler) GetAll(c *gin.Context) {
	out, err := h.svc.GetAll(c.Request.Context(), c.Query("date"))
	if err != nil {
		fail(c, err)
		return
	}
	h.writeSummaries(c, http.StatusOK, out)
}

// GetHighest godoc
// @Summary      Crypto with the highest normalized range
// @Tags         cryptos
// @Produce      json
// @Param        date    query     string  false  "Day filter in DD-MM-YYYY"  example(01-01-2022)
// @Param        format  query     string  false  "json (default) or text"
// @Success      200     {object}  dto.SummaryResponse
// @Failure      400     {object}  dto.ErrorResponse  "Invalid date"
// @Failure      404     {object}  dto.ErrorResponse  "No data for this date"
// @Router       /api/v1/cryptos/highest [get]
func (h *Handler) GetHighest(c *gin.Context) {
	out, err := h.svc.GetHighestForDay(c.Request.Context(), c.Query("date"))
	if err != nil {
		fail(c, err)
		return
	}
	h.writeSummary(c, http.StatusOK, out)
}

// GetByCode godoc
// @Summary      Summary of one crypto
// @Tags         cryptos
// @Produce      json
// @Param        code    path      string  true   "Crypto code"  example(BTC)
// @Param        date    query     string  false  "Day filter in DD-MM-YYYY"
// @Param        format  query     string  false  "json (default) or text"
// @Success      200     {object}  dto.SummaryResponse
// @Failure      400     {object}  dto.ErrorResponse  "Invalid date"
// @Failure      404     {object}  dto.ErrorResponse  "Unknown code, missing file or no data for the date"
// @Failure      422     {object}  dto.ErrorResponse  "Corrupted prices file"
// @Router       /api/v1/cryptos/{code} [get]
func (h *Handler) GetByCode(c *gin.Context) {
	out, err := h.svc.GetByCode(c.Request.Context(), c.Param("code"), c.Query("date"))
	if err != nil {
		fail(c, err)
		return
	}
	h.writeSummary(c, http.StatusOK, out)
}

// GetCodes godoc
// @Summary      Supported crypto codes
// @Tags         codes
// @Produce      json
// @Success      200  {array}   dto.CodeResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/codes [get]
func (h *Handler) GetCodes(c *gin.Context) {
	codes, err := h.svc.GetCodes(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if wantsText(c) {
		lines := make([]string, len(codes))
		for i, code := range codes {
			lines[i] = code.Code
		}
		writeText(c, http.StatusOK, lines)
		return
	}
	c.JSON(http.StatusOK, dto.FromCodes(codes))
}

// AddCode godoc
// @Summary      Register a crypto code
// @Description  Codes are trimmed and upper-cased; at most 5 alphabetic characters.
// @Tags         codes
// @Produce      json
// @Param        code  path      string  true  "Crypto code"  example(SOL)
// @Success      201   {object}  dto.CodeResponse
// @Failure      400   {object}  dto.ErrorResponse  "Duplicate, too long or not alphabetic"
// @Router       /api/v1/codes/{code} [post]
func (h *Handler) AddCode(c *gin.Context) {
	code, err := h.svc.AddCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CodeResponse{Code: code.Code})
}

// GetHistoryAll godoc
// @Summary      History of every crypto
// @Description  Merges the stored summaries of the last N months per crypto, ranked by normalized range (desc).
// @Tags         history
// @Produce      json
// @Param        months  query     int     true   "Lookback in months (1-36)"  example(12)
// @Param        format  query     string  false  "json (default) or text"
// @Success      200     {array}   dto.SummaryResponse
// @Failure      400     {object}  dto.ErrorResponse  "Invalid months"
// @Failure      404     {object}  dto.ErrorResponse  "No data in the period"
// @Router       /api/v1/history [get]
func (h *Handler) GetHistoryAll(c *gin.Context) {
	out, err := h.svc.GetHistoryAll(c.Request.Context(), c.Query("months"))
	if err != nil {
		fail(c, err)
		return
	}
	h.writeSummaries(c, http.StatusOK, out)
}

// GetHistoryByCode godoc
// @Summary      History of one crypto
// @Tags         history
// @Produce      json
// @Param        code    path      string  true   "Crypto code"  example(BTC)
// @Param        months  query     int     true   "Lookback in months (1-36)"  example(12)
// @Param        format  query     string  false  "json (default) or text"
// @Success      200     {object}  dto.SummaryResponse
// @Failure      400     {object}  dto.ErrorResponse  "Invalid months"
// @Failure      404     {object}  dto.ErrorResponse  "Unknown code or no data in the period"
// @Router       /api/v1/history/{code} [get]
func (h *Handler) GetHistoryByCode(c *gin.Context) {
	out, err := h.svc.GetHistoryByCode(c.Request.Context(), c.Param("code"), c.Query("months"))
	if err != nil {
		fail(c, err)
		return
	}
	h.writeSummary(c, http.StatusOK, out)
}

func fail(c *gin.Context, err error) {
	status, body := middleware.Render(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, body)
}

func wantsText(c *gin.Context) bool {
	return strings.EqualFold(c.Query("format"), "text")
}

func (h *Handler) writeSummary(c *gin.Context, status int, s models.Summary) {
	if wantsText(c) {
		writeText(c, status, []string{s.Format(h.loc)})
		return
	}
	c.JSON(status, dto.FromSummary(s))
}

func (h *Handler) writeSummaries(c *gin.Context, status int, in []models.Summary) {
	if wantsText(c) {
		lines := make([]string, len(in))
		for i, s := range in {
			lines[i] = s.Format(h.loc)
		}
		writeText(c, status, lines)
		return
	}
	c.JSON(status, dto.FromSummaries(in))
}

func writeText(c *gin.Context, status int, lines []string) {
	c.Data(status, "text/html; charset=utf-8", []byte(strings.Join(lines, textSeparator)))
}
