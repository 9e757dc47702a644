package parttime_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-staffpay/internal/parttime"
	parttimeerrors "go-staffpay/internal/parttime/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

type fakePartTimeService struct {
	parttime.Service
	earningsFn func(ctx context.Context, req parttime.EarningsRequest) (parttime.SalaryDetail, error)
	toggleFn   func(ctx context.Context, req parttime.SettlementRequest) (parttime.SettlementResponse, error)
}

func (f *fakePartTimeService) Earnings(ctx context.Context, req parttime.EarningsRequest) (parttime.SalaryDetail, error) {
	return f.earningsFn(ctx, req)
}

func (f *fakePartTimeService) ToggleSettlement(ctx context.Context, req parttime.SettlementRequest) (parttime.SettlementResponse, error) {
	return f.toggleFn(ctx, req)
}

func TestPartTimeHandler_Earnings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("binds period query", func(t *testing.T) {
		svc := &fakePartTimeService{
			earningsFn: func(ctx context.Context, req parttime.EarningsRequest) (parttime.SalaryDetail, error) {
				assert.Equal(t, "Ravi", req.StaffName)
				assert.Equal(t, parttime.PeriodWeek, req.Period)
				assert.Equal(t, 2, req.Week)
				return parttime.SalaryDetail{StaffName: "Ravi", TotalEarnings: 700}, nil
			},
		}
		h := parttime.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/part-time/earnings?name=Ravi&period=week&year=2025&month=1&week=2", nil)

		h.Earnings(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var got parttime.SalaryDetail
		assert.NoError(t, json.Unmarshal(mustDecodeEnvelope(t, w.Body.Bytes()).Data, &got))
		assert.Equal(t, int64(700), got.TotalEarnings)
	})

	t.Run("unknown period kind fails binding", func(t *testing.T) {
		h := parttime.NewHandler(&fakePartTimeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/part-time/earnings?name=Ravi&period=year", nil)

		h.Earnings(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error mapped", func(t *testing.T) {
		svc := &fakePartTimeService{
			earningsFn: func(ctx context.Context, req parttime.EarningsRequest) (parttime.SalaryDetail, error) {
				return parttime.SalaryDetail{}, parttimeerrors.ErrInvalidWeek
			},
		}
		h := parttime.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/part-time/earnings?name=Ravi&period=week&year=2025&month=2&week=4", nil)

		h.Earnings(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", mustDecodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})
}

func TestPartTimeHandler_ToggleSettlement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePartTimeService{
		toggleFn: func(ctx context.Context, req parttime.SettlementRequest) (parttime.SettlementResponse, error) {
			assert.Equal(t, "Big Shop", req.Location)
			return parttime.SettlementResponse{
				StaffName:        req.StaffName,
				Location:         req.Location,
				SettlementStatus: parttime.SettlementStatus{FullySettled: true},
			}, nil
		},
	}
	h := parttime.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"staff_name":"Ravi","location":"Big Shop","period":"month","year":2025,"month":2}`
	c.Request = httptest.NewRequest(http.MethodPost, "/part-time/settlements/toggle", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.ToggleSettlement(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fully_settled":true`)
}
