package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// WorkoutHandler holds the tracker service dependency.
type WorkoutHandler struct {
	trackerService service.TrackerService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(trackerService service.TrackerService) *WorkoutHandler {
	return &WorkoutHandler{trackerService: trackerService}
}

// --- DTOs for API ---

// WorkoutReadingRequest is one tracker package: code plus positional params.
type WorkoutReadingRequest struct {
	Code   string    `json:"code" binding:"required"`
	Params []float64 `json:"params"`
}

// BatchSummaryRequest wraps up to 100 readings processed in order.
type BatchSummaryRequest struct {
	Readings []WorkoutReadingRequest `json:"readings" binding:"required,max=100,dive"`
}

// SummaryResponse is the DTO for a computed workout summary.
type SummaryResponse struct {
	Kind     string  `json:"kind"`
	Duration float64 `json:"duration"`
	Distance float64 `json:"distance"`
	Speed    float64 `json:"speed"`
	Calories float64 `json:"calories"`
	Message  string  `json:"message"`
}

// BatchItemResponse holds either a summary or an error for one reading.
type BatchItemResponse struct {
	Code    string           `json:"code"`
	Summary *SummaryResponse `json:"summary,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// MapSummaryToResponse converts a domain.Summary and its rendered line to a SummaryResponse DTO.
func MapSummaryToResponse(s domain.Summary, message string) SummaryResponse {
	return SummaryResponse{
		Kind:     string(s.Kind),
		Duration: s.Duration,
		Distance: s.Distance,
		Speed:    s.Speed,
		Calories: s.Calories,
		Message:  message,
	}
}

func (r WorkoutReadingRequest) toDomain() domain.Reading {
	return domain.Reading{Code: r.Code, Params: r.Params}
}

// --- Handler Methods ---

// ListActivities godoc
// @Summary List supported activity codes
// @Description Returns every activity code with the order of its parameters.
// @Tags Workouts
// @Produce json
// @Success 200 {array} domain.ActivityCode
// @Router /activities [get]
func (h *WorkoutHandler) ListActivities(c *gin.Context) {
	c.JSON(http.StatusOK, domain.ActivityCodes())
}

// SummarizeWorkout godoc
// @Summary Summarize one workout
// @Description Computes distance, mean speed and calories for one tracker reading.
// @Tags Workouts
// @Accept json
// @Produce json
// @Param reading body WorkoutReadingRequest true "Tracker reading"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} gin.H "Invalid reading"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workouts/summary [post]
func (h *WorkoutHandler) SummarizeWorkout(c *gin.Context) {
	var req WorkoutReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	summary, err := h.trackerService.Summarize(c.Request.Context(), req.toDomain())
	if err != nil {
		if isReadingError(err) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			log.Errorf("summarize workout %s: %v", req.Code, err)
			abortWithError(c, http.StatusInternalServerError, "Failed to summarize workout")
		}
		return
	}

	c.JSON(http.StatusOK, MapSummaryToResponse(*summary, h.trackerService.Render(*summary)))
}

// SummarizeBatch godoc
// @Summary Summarize several workouts
// @Description Processes readings in order; a bad reading is reported in place and does not stop the rest.
// @Tags Workouts
// @Accept json
// @Produce json
// @Param batch body BatchSummaryRequest true "Tracker readings"
// @Success 200 {array} BatchItemResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /workouts/summary/batch [post]
func (h *WorkoutHandler) SummarizeBatch(c *gin.Context) {
	var req BatchSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	readings := make([]domain.Reading, len(req.Readings))
	for i, r := range req.Readings {
		readings[i] = r.toDomain()
	}

	results := h.trackerService.SummarizeBatch(c.Request.Context(), readings)
	response := make([]BatchItemResponse, len(results))
	for i, res := range results {
		item := BatchItemResponse{Code: res.Reading.Code}
		if res.Err != nil {
			item.Error = res.Err.Error()
		} else {
			summary := MapSummaryToResponse(*res.Summary, res.Message)
			item.Summary = &summary
		}
		response[i] = item
	}

	c.JSON(http.StatusOK, response)
}

func isReadingError(err error) bool {
	return errors.Is(err, domain.ErrUnknownActivityCode) ||
		errors.Is(err, domain.ErrArityMismatch) ||
		errors.Is(err, domain.ErrInvalidParameter) ||
		errors.Is(err, domain.ErrComputationFault)
}
