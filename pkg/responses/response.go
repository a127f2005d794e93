package responses

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/pkg/validator"
)

// SuccessResponse represents a standard success JSON response.
type SuccessResponse struct {
	Status  string      `json:"status"`  // "success"
	Message string      `json:"message"` // Optional success message
	Data    interface{} `json:"data"`    // The actual data payload
}

// ErrorResponse represents a standard error JSON response.
type ErrorResponse struct {
	Status  string            `json:"status"`  // "error" or "fail"
	Message string            `json:"message"` // Error message
	Code    int               `json:"code"`    // HTTP status code
	Errors  map[string]string `json:"errors,omitempty"`
}

// PaginatedResponse represents a success response for lists with pagination details.
type PaginatedResponse struct {
	Status     string      `json:"status"`  // "success"
	Message    string      `json:"message"` // Optional success message
	Data       interface{} `json:"data"`    // The list of items
	Pagination Pagination  `json:"pagination"`
}

// Pagination holds pagination information.
type Pagination struct {
	TotalItems   int64 `json:"total_items"`
	TotalPages   int   `json:"total_pages"`
	CurrentPage  int   `json:"current_page"`
	PageSize     int   `json:"page_size"`
	HasNextPage  bool  `json:"has_next_page"`
	HasPrevPage  bool  `json:"has_prev_page"`
	NextPage     *int  `json:"next_page,omitempty"`
	PreviousPage *int  `json:"previous_page,omitempty"`
}

// SendSuccess sends a standardized success response.
func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	if message == "" {
		message = "Operation completed successfully"
	}
	c.JSON(statusCode, SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// SendError sends a standardized error response.
func SendError(c *gin.Context, statusCode int, message string) {
	statusText := "error"
	if statusCode >= http.StatusInternalServerError {
		statusText = "fail" // Differentiate client errors from server failures
	}
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Status:  statusText,
		Message: message,
		Code:    statusCode,
	})
}

// SendPaginated sends one page of a list together with its page metadata.
func SendPaginated(c *gin.Context, statusCode int, message string, data interface{}, totalItems int64, currentPage int, pageSize int) {
	if message == "" {
		message = "Data retrieved successfully"
	}
	c.JSON(statusCode, PaginatedResponse{
		Status:     "success",
		Message:    message,
		Data:       data,
		Pagination: NewPagination(totalItems, currentPage, pageSize),
	})
}

// NewPagination describes page currentPage of totalItems split into pages of
// pageSize. A non-empty list always has at least one page.
func NewPagination(totalItems int64, currentPage, pageSize int) Pagination {
	if pageSize <= 0 {
		pageSize = 20
	}
	if currentPage < 1 {
		currentPage = 1
	}
	p := Pagination{
		TotalItems:  totalItems,
		TotalPages:  int(math.Ceil(float64(totalItems) / float64(pageSize))),
		CurrentPage: currentPage,
		PageSize:    pageSize,
	}
	if p.HasNextPage = currentPage < p.TotalPages; p.HasNextPage {
		next := currentPage + 1
		p.NextPage = &next
	}
	if p.HasPrevPage = currentPage > 1; p.HasPrevPage {
		prev := currentPage - 1
		p.PreviousPage = &prev
	}
	return p
}

// StatusFor maps an error kind to an HTTP status.
func StatusFor(err error) int {
	switch common.Kind(err) {
	case common.ErrInvalidInput:
		return http.StatusBadRequest
	case common.ErrNotFound:
		return http.StatusNotFound
	case common.ErrForbidden:
		return http.StatusForbidden
	case common.ErrConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// SendAppError writes err with the status of its kind. Unclassified errors
// are logged by the caller and reported without detail.
func SendAppError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		SendError(c, status, "An unexpected error occurred on the server")
		return
	}
	SendError(c, status, err.Error())
}

// SendValidationError reports a binding failure with per-field messages.
func SendValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Status:  "error",
		Message: "Validation failed. Please check your input.",
		Code:    http.StatusBadRequest,
		Errors:  validator.ParseError(err),
	})
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Unauthorized access"
	}
	SendError(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden error response.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access to this resource is forbidden"
	}
	SendError(c, http.StatusForbidden, message)
}
