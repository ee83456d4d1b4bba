//go:build e2e

package booking_test

import (
	"net/http"
	"testing"

	reqdto "event-booking-api/internal/handler/dto/request"
	resdto "event-booking-api/internal/handler/dto/response"
	"event-booking-api/tests/common/builder"
	"event-booking-api/tests/common/dbtest"
	"event-booking-api/tests/common/httptest"
	"event-booking-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL       = "/api/auth/login"
	ticketTypesURL = "/api/tickets/types"
	ticketsURL     = "/api/tickets"
	hotelsURL      = "/api/hotels"
	paymentsURL    = "/api/payments"
	processURL     = "/api/payments/process"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// 参加者ユーザーと申込を作成
	userID := dbtest.CreateTestUser(s.T(), s.DB, "participant@example.com", "participant")
	dbtest.CreateTestEnrollment(s.T(), s.DB, userID, "Participant One")
}

func (s *bookingSuite) login(email string) string {
	body := reqdto.LoginRequest{Email: email, Password: "password123"}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, body, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp resdto.LoginResponse
	s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &resp))
	s.Require().NotEmpty(resp.AccessToken)
	return resp.AccessToken
}

func (s *bookingSuite) ticketTypeID(name string) uuid.UUID {
	var id uuid.UUID
	err := s.DB.QueryRow(s.T().Context(), "SELECT id FROM ticket_types WHERE name = $1", name).Scan(&id)
	s.Require().NoError(err, "ticket type %s not seeded", name)
	return id
}

func (s *bookingSuite) bookTicket(token string, typeName string) resdto.TicketResponse {
	body := reqdto.CreateTicketRequest{TicketTypeID: s.ticketTypeID(typeName)}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, ticketsURL, body, token)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var ticket resdto.TicketResponse
	s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &ticket))
	return ticket
}

func (s *bookingSuite) payTicket(token string, ticketID uuid.UUID) resdto.PaymentResponse {
	body := builder.NewPaymentBuilder().WithTicketID(ticketID).BuildProcessRequestDTO()
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, processURL, body, token)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var payment resdto.PaymentResponse
	s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &payment))
	return payment
}

func (s *bookingSuite) TestBookingFlow() {
	s.Run("full pass: book, pay, then browse hotels", func() {
		token := s.login("participant@example.com")

		// 公開エンドポイント: チケット種別一覧
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, ticketTypesURL, nil, "")
		var types []resdto.TicketTypeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &types)
		s.Require().Len(types, 3)

		ticket := s.bookTicket(token, "Full Pass")
		s.Equal("RESERVED", ticket.Status)
		s.Equal("Full Pass", ticket.TicketType.Name)

		// 未払いのうちはホテル一覧にアクセスできない
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, hotelsURL, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusPaymentRequired, "You need to pay your ticket first!")

		// 未払いチケットの支払い照会は空を返す
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, paymentsURL+"?ticketId="+ticket.ID.String(), nil, token)
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("null", rec.Body.String())

		payment := s.payTicket(token, ticket.ID)
		s.Equal(ticket.ID, payment.TicketID)
		s.Equal(types[typeIndex(types, "Full Pass")].Price, payment.Value)
		s.Equal("1111", payment.CardLastDigits)

		// チケットはPAIDに遷移している
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, ticketsURL, nil, token)
		var paid resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &paid)
		s.Equal("PAID", paid.Status)

		// 支払い後はホテルにアクセスできる
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, hotelsURL, nil, token)
		var hotels []resdto.HotelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &hotels)
		s.Require().NotEmpty(hotels)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, hotelsURL+"/"+hotels[0].ID.String(), nil, token)
		var hotel resdto.HotelWithRoomsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &hotel)
		s.Equal(hotels[0].ID, hotel.ID)
		s.Require().Len(hotel.Rooms, 2)

		// 支払い済みチケットの支払い照会
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, paymentsURL+"?ticketId="+ticket.ID.String(), nil, token)
		var recorded resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &recorded)
		s.Equal(payment.ID, recorded.ID)
	})

	s.Run("remote pass never unlocks hotels even after payment", func() {
		token := s.login("participant@example.com")

		ticket := s.bookTicket(token, "Remote Pass")
		s.payTicket(token, ticket.ID)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, hotelsURL, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusPaymentRequired, "You need to pay your ticket first!")
	})

	s.Run("double payment is rejected with 409", func() {
		token := s.login("participant@example.com")

		ticket := s.bookTicket(token, "Conference Pass")
		s.payTicket(token, ticket.ID)

		body := builder.NewPaymentBuilder().WithTicketID(ticket.ID).BuildProcessRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, processURL, body, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Ticket is already paid!")
	})

	s.Run("user without enrollment cannot book", func() {
		userID := dbtest.CreateTestUser(s.T(), s.DB, "noenroll@example.com", "participant")
		s.Require().NotEqual(uuid.Nil, userID)
		token := s.login("noenroll@example.com")

		body := reqdto.CreateTicketRequest{TicketTypeID: s.ticketTypeID("Full Pass")}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, ticketsURL, body, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Enrollment not found!")
	})

	s.Run("admin can register a ticket type, participants cannot", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", "admin")
		adminToken := s.login("admin@example.com")

		body := reqdto.CreateTicketTypeRequest{Name: "Workshop Pass", Price: 4500, IncludesHotel: true}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, ticketTypesURL, body, adminToken)

		var created resdto.TicketTypeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.Equal("Workshop Pass", created.Name)
		s.Equal(int32(4500), created.Price)

		// 追加した種別は公開一覧にも現れる
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, ticketTypesURL, nil, "")
		var types []resdto.TicketTypeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &types)
		s.Len(types, 4)

		// 参加者ロールは403
		token := s.login("participant@example.com")
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, ticketTypesURL, body, token)
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("paying someone else's ticket is rejected", func() {
		token := s.login("participant@example.com")
		ticket := s.bookTicket(token, "Full Pass")

		otherID := dbtest.CreateTestUser(s.T(), s.DB, "other@example.com", "participant")
		dbtest.CreateTestEnrollment(s.T(), s.DB, otherID, "Other One")
		otherToken := s.login("other@example.com")

		body := builder.NewPaymentBuilder().WithTicketID(ticket.ID).BuildProcessRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, processURL, body, otherToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Ticket is not yours!")
	})
}

func typeIndex(types []resdto.TicketTypeResponse, name string) int {
	for i, tt := range types {
		if tt.Name == name {
			return i
		}
	}
	return -1
}
