package v1handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"toolbox/internal/api/handler/v1handler"
	"toolbox/internal/calculator"
	mockcalculator "toolbox/internal/calculator/mock"
	"toolbox/pkg/domain"
	"toolbox/pkg/formula"
	"toolbox/pkg/serrors"
)

type routesFixture struct {
	mux   *http.ServeMux
	calc  *mockcalculator.MockCalculator
	token string
	user  domain.UserID
}

func newRoutesFixture(t *testing.T) *routesFixture {
	t.Helper()

	priv, pubPEM := genRSAKeys(t)
	uid := uuid.New()
	now := time.Now()

	calc := mockcalculator.NewMockCalculator(gomock.NewController(t))
	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{Calculator: calc}).Register(mux, newSecHandlerForTest(t, pubPEM))

	return &routesFixture{
		mux:   mux,
		calc:  calc,
		token: signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour)),
		user:  domain.UserID(uid),
	}
}

func (f *routesFixture) do(method, target, body string, auth bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if auth {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)

	return rec
}

func TestRoutes_ListOperations(t *testing.T) {
	f := newRoutesFixture(t)
	f.calc.EXPECT().Operations().Return(calculator.DefaultRegistry().List())

	rec := f.do(http.MethodGet, "/v1/operations", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []struct {
			Name   string `json:"name"`
			Params []struct {
				Name     string `json:"name"`
				Required bool   `json:"required"`
			} `json:"params"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Items)
}

func TestRoutes_Evaluate(t *testing.T) {
	f := newRoutesFixture(t)
	f.calc.EXPECT().Evaluate(gomock.Any(), "gcd", []byte(`{"numbers":[4,6]}`)).
		Return(json.RawMessage(`{"value":2}`), nil)

	rec := f.do(http.MethodPost, "/v1/operations/gcd/evaluate", `{"numbers":[4,6]}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"operation":"gcd","result":{"value":2}}`, rec.Body.String())
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestRoutes_Evaluate_Errors(t *testing.T) {
	f := newRoutesFixture(t)
	f.calc.EXPECT().Evaluate(gomock.Any(), "z-score", gomock.Any()).
		Return(nil, serrors.With(formula.ErrZeroStdDev, "standard deviation must not be zero"))
	f.calc.EXPECT().Evaluate(gomock.Any(), "nope", gomock.Any()).
		Return(nil, serrors.With(serrors.ErrNotFound, `unknown operation "nope"`))

	rec := f.do(http.MethodPost, "/v1/operations/z-score/evaluate", `{}`, false)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.JSONEq(t, `{"code":"ZERO_STD_DEV","message":"standard deviation must not be zero"}`, rec.Body.String())

	rec = f.do(http.MethodPost, "/v1/operations/nope/evaluate", `{}`, false)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodPost, "/v1/operations/gcd/evaluate",
		`{"text":"`+strings.Repeat("a", v1handler.MaxBodyBytes)+`"}`, false)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_CreateCalculation(t *testing.T) {
	f := newRoutesFixture(t)
	id := domain.CalculationID(uuid.New())
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	f.calc.EXPECT().Enqueue(gomock.Any(), f.user, "irr", []byte(`{"cashFlows":[-100,110]}`)).
		Return(&domain.Calculation{
			ID:        id,
			UserID:    f.user,
			Operation: "irr",
			Input:     json.RawMessage(`{"cashFlows":[-100,110]}`),
			Status:    domain.CalculationStatusPending,
			CreatedAt: created,
		}, nil)

	rec := f.do(http.MethodPost, "/v1/calculations", `{"operation":"irr","input":{"cashFlows":[-100,110]}}`, true)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.JSONEq(t, `{
		"id": "`+id.String()+`",
		"operation": "irr",
		"input": {"cashFlows": [-100, 110]},
		"status": "PENDING",
		"attempts": 0,
		"createdAt": "2025-03-01T10:00:00Z"
	}`, rec.Body.String())

	rec = f.do(http.MethodPost, "/v1/calculations", `{"operation":"irr"}`, false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodPost, "/v1/calculations", `{"input":{}}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, "/v1/calculations", `not json`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_ListCalculations(t *testing.T) {
	f := newRoutesFixture(t)

	f.calc.EXPECT().UserCalculations(gomock.Any(), f.user, domain.CalculationStatusFailed, "c1", uint(5)).
		Return([]domain.Calculation{{
			Operation: "nth-root",
			Status:    domain.CalculationStatusFailed,
			ErrorCode: "NO_REAL_RESULT",
			LastError: "even root of negative number -4",
		}}, "c2", nil)

	rec := f.do(http.MethodGet, "/v1/calculations?status=FAILED&cursor=c1&limit=5", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []struct {
			ErrorCode string `json:"errorCode"`
			Error     string `json:"error"`
		} `json:"items"`
		NextCursor *string `json:"nextCursor"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	require.Equal(t, "NO_REAL_RESULT", body.Items[0].ErrorCode)
	require.Equal(t, "c2", *body.NextCursor)

	f.calc.EXPECT().UserCalculations(gomock.Any(), f.user, domain.CalculationStatus(""), "", uint(v1handler.DefaultLimit)).
		Return(nil, "", nil)
	rec = f.do(http.MethodGet, "/v1/calculations", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"items":[],"nextCursor":null}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/v1/calculations?limit=1000", "", true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_GetAndDeleteCalculation(t *testing.T) {
	f := newRoutesFixture(t)
	id := domain.CalculationID(uuid.New())

	f.calc.EXPECT().Result(gomock.Any(), f.user, id).Return(&domain.Calculation{
		ID:        id,
		Operation: "gcd",
		Status:    domain.CalculationStatusCompleted,
		Result:    json.RawMessage(`{"value":2}`),
		Attempts:  1,
	}, nil)
	rec := f.do(http.MethodGet, "/v1/calculations/"+id.String(), "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"result":{"value":2}`)

	f.calc.EXPECT().Delete(gomock.Any(), f.user, id).Return(nil)
	rec = f.do(http.MethodDelete, "/v1/calculations/"+id.String(), "", true)
	require.Equal(t, http.StatusNoContent, rec.Code)

	f.calc.EXPECT().Delete(gomock.Any(), f.user, id).Return(serrors.With(serrors.ErrNotFound, "calculation not found"))
	rec = f.do(http.MethodDelete, "/v1/calculations/"+id.String(), "", true)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodGet, "/v1/calculations/not-a-uuid", "", true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
