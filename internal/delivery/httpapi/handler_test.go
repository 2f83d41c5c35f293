package httpapi_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viaurbana/ooh-campaign-service/internal/delivery/httpapi"
	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	"github.com/viaurbana/ooh-campaign-service/internal/usecase/criteria"
	allocdto "github.com/viaurbana/ooh-campaign-service/internal/usecase/dto/allocation"
	authdto "github.com/viaurbana/ooh-campaign-service/internal/usecase/dto/authorization"
)

type stubAuthorizationUsecase struct{}

func (s *stubAuthorizationUsecase) CheckPending(proposalID string) (*authdto.CheckPendingOutput, error) {
	return &authdto.CheckPendingOutput{}, nil
}

func (s *stubAuthorizationUsecase) Approve(proposalID string, track domain.Track) (int64, error) {
	return 0, nil
}

func (s *stubAuthorizationUsecase) Reject(proposalID string, track domain.Track, reason string) error {
	return nil
}

func (s *stubAuthorizationUsecase) Summarize(proposalID string) (*domain.AuthorizationSummary, error) {
	return &domain.AuthorizationSummary{}, nil
}

func (s *stubAuthorizationUsecase) GateActivation(proposalID string) error {
	return nil
}

func (s *stubAuthorizationUsecase) Reevaluate(faceID string) (*criteria.Verdict, error) {
	return &criteria.Verdict{}, nil
}

type stubAllocationUsecase struct {
	lastInput *allocdto.AllocateInput
}

func (s *stubAllocationUsecase) Allocate(input *allocdto.AllocateInput) (*allocdto.AllocateOutput, error) {
	s.lastInput = input
	return &allocdto.AllocateOutput{BatchID: "batch"}, nil
}

func (s *stubAllocationUsecase) ToggleReservation(input *allocdto.ToggleInput) (*allocdto.ToggleOutput, error) {
	return &allocdto.ToggleOutput{}, nil
}

func (s *stubAllocationUsecase) DeleteReservations(reservationIDs []string) (int64, error) {
	return int64(len(reservationIDs)), nil
}

type stubPeriodRepository struct{}

func (s *stubPeriodRepository) CurrentPeriod(date time.Time) (*domain.CalendarPeriod, error) {
	return &domain.CalendarPeriod{Start: date, End: date.AddDate(0, 0, 27)}, nil
}

func newTestRouter(alloc *stubAllocationUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	httpapi.NewCampaignHandler(&stubAuthorizationUsecase{}, alloc, &stubPeriodRepository{}).RegisterRoutes(router)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAllocateAcceptsZeroCoordinate(t *testing.T) {
	alloc := &stubAllocationUsecase{}
	router := newTestRouter(alloc)

	w := postJSON(t, router, "/faces/f1/allocations",
		`{"requests":[{"latitude":0,"longitude":-99.1332,"orientation":"f"}]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, alloc.lastInput)
	require.Len(t, alloc.lastInput.Requests, 1)
	assert.Equal(t, 0.0, alloc.lastInput.Requests[0].Latitude)
	assert.Equal(t, -99.1332, alloc.lastInput.Requests[0].Longitude)
	assert.Equal(t, domain.OrientationFlow, alloc.lastInput.Requests[0].Orientation)
}

func TestAllocateRejectsMissingCoordinate(t *testing.T) {
	alloc := &stubAllocationUsecase{}
	router := newTestRouter(alloc)

	w := postJSON(t, router, "/faces/f1/allocations",
		`{"requests":[{"longitude":-99.1332,"orientation":"F"}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, alloc.lastInput)
}
