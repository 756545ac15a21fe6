package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"groupbuy/internal/core/domain"
	"groupbuy/internal/core/port"
	"groupbuy/internal/core/port/mocks"
)

type handlerFixture struct {
	campaigns *mocks.MockCampaignUseCase
	invoices  *mocks.MockInvoiceUseCase
	intents   *mocks.MockPaymentIntentUseCase
	srv       http.Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	f := &handlerFixture{
		campaigns: mocks.NewMockCampaignUseCase(t),
		invoices:  mocks.NewMockInvoiceUseCase(t),
		intents:   mocks.NewMockPaymentIntentUseCase(t),
	}
	f.srv = NewHandler(f.campaigns, f.invoices, f.intents, slog.New(slog.DiscardHandler)).Router()
	return f
}

func (f *handlerFixture) do(method, path, body string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	f.srv.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"not found", domain.NewNotFound("invoice", "x"), http.StatusNotFound, "invoice x not found"},
		{"validation", domain.NewValidation("amount", "paid amount does not match invoice total"), http.StatusBadRequest, "amount: paid amount does not match invoice total"},
		{"transition", &domain.TransitionError{Entity: "invoice", From: "PAID", To: "CANCELLED"}, http.StatusBadRequest, "invoice cannot transition from PAID to CANCELLED"},
		{"conflict", fmt.Errorf("%w: serialization failure", domain.ErrConflict), http.StatusConflict, ""},
		{"wrapped not found", fmt.Errorf("generate: %w", domain.NewNotFound("campaign", "y")), http.StatusNotFound, ""},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			id := uuid.New()
			f.invoices.EXPECT().CancelInvoice(mock.Anything, id).Return(nil, tt.err)

			rec := f.do(http.MethodPost, "/api/v1/invoices/"+id.String()+"/cancel", "")
			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, errorBody(t, rec))
			}
		})
	}
}

func TestInvalidPathParameters(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/invoices/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPut, "/api/v1/campaigns/"+uuid.NewString()+"/brackets/nope", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid bracketID", errorBody(t, rec))

	rec = f.do(http.MethodPost, "/api/v1/campaigns", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkPaidUsesRecordingUser(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	paid := &domain.Invoice{ID: id, InvoiceNumber: "INV-202501-0001", Status: domain.InvoiceStatusPaid}
	f.invoices.EXPECT().MarkAsPaid(mock.Anything, id, mock.MatchedBy(func(req port.MarkPaidReq) bool {
		return req.RecordedBy == "user-42" &&
			req.PaymentMethod == "bank_transfer" &&
			req.Amount.Equal(decimal.RequireFromString("1150")) &&
			req.Note != nil && *req.Note == "ref 991"
	})).Return(paid, nil)

	rec := f.do(http.MethodPost, "/api/v1/invoices/"+id.String()+"/pay",
		`{"amount":"1150.00","payment_method":"bank_transfer","note":"ref 991"}`,
		userHeader, "user-42")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got domain.Invoice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, domain.InvoiceStatusPaid, got.Status)
}

func TestLockCampaignResponse(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	bracket := domain.DiscountBracket{ID: uuid.New(), CampaignID: id, MinQuantity: 10, UnitPrice: decimal.RequireFromString("40")}
	f.campaigns.EXPECT().LockCampaign(mock.Anything, id).Return(&port.LockResult{
		Campaign: domain.Campaign{ID: id, Status: domain.CampaignStatusLocked, LockedBracketID: &bracket.ID},
		Bracket:  bracket,
	}, nil)

	rec := f.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/lock", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Campaign domain.Campaign        `json:"campaign"`
		Bracket  domain.DiscountBracket `json:"bracket"`
		Invoices []domain.Invoice       `json:"invoices"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.CampaignStatusLocked, body.Campaign.Status)
	assert.Equal(t, bracket.ID, body.Bracket.ID)
	assert.NotNil(t, body.Invoices)
	assert.Contains(t, rec.Body.String(), `"invoices":[]`)
}

func TestListCampaignsFilter(t *testing.T) {
	f := newHandlerFixture(t)
	supplier := uuid.New()
	f.campaigns.EXPECT().ListCampaigns(mock.Anything, mock.MatchedBy(func(filter port.CampaignFilter) bool {
		return filter.SupplierOrganizationID != nil && *filter.SupplierOrganizationID == supplier &&
			filter.Status != nil && *filter.Status == domain.CampaignStatusActive
	})).Return(nil, nil)

	rec := f.do(http.MethodGet, "/api/v1/campaigns?status=ACTIVE&supplier_id="+supplier.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/v1/campaigns?supplier_id=acme", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPricingSnapshotResponse(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	units := int64(15)
	f.campaigns.EXPECT().GetPricing(mock.Anything, id).Return(&port.PricingSnapshot{
		CampaignID:     id,
		Status:         domain.CampaignStatusActive,
		TargetQuantity: 100,
		PledgeCount:    2,
		BracketResolution: domain.BracketResolution{
			TotalQuantity:      35,
			UnitsToNextBracket: &units,
		},
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/campaigns/"+id.String()+"/pricing", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 35, body["total_quantity"])
	assert.EqualValues(t, 15, body["units_to_next_bracket"])
	assert.Nil(t, body["current_bracket"])
}

func TestUpdatePaymentStatus(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	f.intents.EXPECT().UpdatePaymentStatus(mock.Anything, id, domain.PaymentIntentFailedRetry1).
		Return(&domain.PaymentIntent{ID: id, Status: domain.PaymentIntentFailedRetry1, RetryCount: 1}, nil)
	f.intents.EXPECT().UpdatePaymentStatus(mock.Anything, id, domain.PaymentIntentSentToAR).
		Return(nil, &domain.TransitionError{Entity: "payment intent", From: "FAILED_RETRY_1", To: "SENT_TO_AR"})

	rec := f.do(http.MethodPatch, "/api/v1/payment-intents/"+id.String()+"/status", `{"status":"FAILED_RETRY_1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"retry_count":1`)

	rec = f.do(http.MethodPatch, "/api/v1/payment-intents/"+id.String()+"/status", `{"status":"SENT_TO_AR"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvoiceUtilityRoutes(t *testing.T) {
	f := newHandlerFixture(t)
	f.invoices.EXPECT().GetBankAccountDetails().Return(domain.BankAccountDetails{BankName: "First Commerce Bank", SwiftCode: "FCBKUS33", Currency: "EUR"})
	f.invoices.EXPECT().MarkOverdueInvoices(mock.Anything).Return(4, nil)
	f.invoices.EXPECT().GetInvoiceByNumber(mock.Anything, "INV-202501-10000").
		Return(&domain.Invoice{InvoiceNumber: "INV-202501-10000"}, nil)

	rec := f.do(http.MethodGet, "/api/v1/invoices/bank-details", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"swift_code":"FCBKUS33"`)
	assert.Contains(t, rec.Body.String(), `"currency":"EUR"`)

	rec = f.do(http.MethodPost, "/api/v1/internal/invoices/overdue-sweep", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"marked":4}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/v1/invoices/number/INV-202501-10000", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteCampaignNoContent(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	f.campaigns.EXPECT().DeleteCampaign(mock.Anything, id).Return(nil)

	rec := f.do(http.MethodDelete, "/api/v1/campaigns/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
