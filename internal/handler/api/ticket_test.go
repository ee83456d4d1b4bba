//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"event-booking-api/internal/domain/user"
	"event-booking-api/internal/handler/api"
	reqdto "event-booking-api/internal/handler/dto/request"
	resdto "event-booking-api/internal/handler/dto/response"
	"event-booking-api/internal/handler/middleware"
	"event-booking-api/internal/usecase/commands"
	"event-booking-api/internal/usecase/queries"
	"event-booking-api/tests/common/builder"
	"event-booking-api/tests/common/httptest"
	commandsmock "event-booking-api/tests/mock/commands"
	queriesmock "event-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TicketHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTicketCommands
	mockQueries  *queriesmock.MockTicketQueries
	handler      *api.TicketHandler
}

func (s *TicketHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTicketCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTicketQueries(s.mockCtrl)
	s.handler = api.NewTicketHandler(s.mockCommands, s.mockQueries)

	// Mock middleware behavior: Authorization header stands in for a valid
	// token, and the "admin-token" value stands in for an admin session
	authStub := func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", uuid.New())
			role := user.RoleParticipant
			if authHeader == "Bearer admin-token" {
				role = user.RoleAdmin
			}
			c.Set("user_role", role)
		}
		c.Next()
	}

	s.router.GET("/tickets/types", s.handler.ListTypes)
	s.router.GET("/tickets", authStub, s.handler.Get)
	s.router.POST("/tickets", authStub, s.handler.Create)

	// The role gate itself is the real middleware
	roleGate := middleware.NewAuthMiddleware(nil).RequireRole(user.RoleAdmin)
	s.router.POST("/tickets/types", authStub, roleGate, s.handler.CreateType)
}

func (s *TicketHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTicketHandlerSuite(t *testing.T) {
	suite.Run(t, new(TicketHandlerTestSuite))
}

func (s *TicketHandlerTestSuite) TestListTypes() {
	url := "/tickets/types"

	s.Run("success: returns all ticket types without auth", func() {
		types := []*queries.TicketTypeView{
			builder.NewTicketBuilder().WithTypeName("Remote Pass").AsRemote().WithPrice(100).BuildTypeView(),
			builder.NewTicketBuilder().WithTypeName("Full Pass").WithPrice(500).BuildTypeView(),
		}
		s.mockQueries.EXPECT().ListTicketTypes(gomock.Any()).Return(types, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.TicketTypeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("Remote Pass", response[0].Name)
		s.True(response[0].IsRemote)
		s.Equal(int32(500), response[1].Price)
	})

	s.Run("error: 500 on read failure", func() {
		s.mockQueries.EXPECT().ListTicketTypes(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *TicketHandlerTestSuite) TestGet() {
	url := "/tickets"

	s.Run("success: returns the user's ticket with its type", func() {
		view := builder.NewTicketBuilder().BuildView()
		s.mockQueries.EXPECT().GetUserTicket(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Status, response.Status)
		s.Equal(view.Type.Name, response.TicketType.Name)
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "no enrollment",
				queriesError:   queries.ErrEnrollmentNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Enrollment not found!",
			},
			{
				name:           "no ticket",
				queriesError:   queries.ErrTicketNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Ticket not found!",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetUserTicket(gomock.Any(), gomock.Any()).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *TicketHandlerTestSuite) TestCreate() {
	url := "/tickets"

	s.Run("success: returns 201 Created with the booked ticket", func() {
		b := builder.NewTicketBuilder()
		reqBody := b.BuildCreateRequestDTO()
		view := b.BuildView()

		s.mockCommands.EXPECT().CreateTicket(gomock.Any(), reqBody, gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("RESERVED", response.Status)
	})

	s.Run("error: 401 without authentication", func() {
		reqBody := builder.NewTicketBuilder().BuildCreateRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 on malformed ticket type id", func() {
		body := map[string]any{"ticketTypeId": "not-a-uuid"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Ticket type id is required!")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "missing ticket type id",
				commandsError:  commands.ErrTicketTypeRequired,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Ticket type id is required!",
			},
			{
				name:           "no enrollment",
				commandsError:  commands.ErrEnrollmentNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Enrollment not found!",
			},
			{
				name:           "unknown ticket type",
				commandsError:  commands.ErrTicketTypeNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Ticket type not found!",
			},
		}

		reqBody := builder.NewTicketBuilder().BuildCreateRequestDTO()
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateTicket(gomock.Any(), reqBody, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("unexpected failure keeps the 200 empty-object contract", func() {
		reqBody := builder.NewTicketBuilder().BuildCreateRequestDTO()
		s.mockCommands.EXPECT().CreateTicket(gomock.Any(), reqBody, gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{}`, rec.Body.String())
	})
}

func (s *TicketHandlerTestSuite) TestCreateType() {
	url := "/tickets/types"
	reqBody := reqdto.CreateTicketTypeRequest{Name: "Workshop Pass", Price: 4500, IncludesHotel: true}

	s.Run("success: admin registers a new ticket type", func() {
		view := builder.NewTicketBuilder().WithTypeName("Workshop Pass").WithPrice(4500).BuildTypeView()
		s.mockCommands.EXPECT().CreateTicketType(gomock.Any(), reqBody).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin-token")

		var response resdto.TicketTypeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Workshop Pass", response.Name)
		s.Equal(int32(4500), response.Price)
	})

	s.Run("error: 403 for a participant", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusForbidden, rec.Code)
		s.Contains(rec.Body.String(), "Insufficient permissions")
	})

	s.Run("error: 500 when the role never reached the context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
		s.Contains(rec.Body.String(), "Internal server error")
	})

	s.Run("error: 400 on missing name or non-positive price", func() {
		bodies := []map[string]any{
			{"price": 4500},
			{"name": "Workshop Pass", "price": 0},
			{"name": "Workshop Pass", "price": -10},
		}
		for _, body := range bodies {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "admin-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Name and a positive price are required!")
		}
	})

	s.Run("error: 400 when the command rejects the type", func() {
		s.mockCommands.EXPECT().CreateTicketType(gomock.Any(), reqBody).
			Return(nil, commands.ErrInvalidTicketType).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Name and a positive price are required!")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().CreateTicketType(gomock.Any(), reqBody).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
