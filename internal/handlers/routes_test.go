package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/freelance-marketplace-api/internal/constants"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

// MarketplaceRoutesTestSuite exercises the full route table over a fresh
// memory store per test.
type MarketplaceRoutesTestSuite struct {
	suite.Suite
	store  *repository.Store
	router *gin.Engine
}

func TestMarketplaceRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(MarketplaceRoutesTestSuite))
}

// SetupTest runs before each test
func (suite *MarketplaceRoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.store = repository.NewMemoryStore()
	suite.router = gin.New()
	suite.router.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("secret"))))
	RegisterRoutes(suite.router, services.New(suite.store))
}

func (suite *MarketplaceRoutesTestSuite) request(method, url string, payload interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		suite.Require().NoError(err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *MarketplaceRoutesTestSuite) decode(w *httptest.ResponseRecorder, out interface{}) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out))
}

func (suite *MarketplaceRoutesTestSuite) createUser(email string, accountType models.AccountType) *models.User {
	user := &models.User{Email: email, Password: "supersecret", AccountType: accountType}
	suite.Require().NoError(suite.store.Users.Create(user))
	return user
}

func (suite *MarketplaceRoutesTestSuite) TestHealth() {
	w := suite.request(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *MarketplaceRoutesTestSuite) TestSessionLifecycle() {
	w := suite.request(http.MethodPost, "/api/auth/register", validRegistration())
	suite.Require().Equal(http.StatusCreated, w.Code)

	me := suite.request(http.MethodGet, "/api/auth/me", nil)
	suite.Equal(http.StatusUnauthorized, me.Code)

	login := suite.request(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ada@example.com",
		"password": "supersecret",
	})
	suite.Require().Equal(http.StatusOK, login.Code)
	cookies := login.Result().Cookies()
	suite.Require().NotEmpty(cookies)

	me = suite.request(http.MethodGet, "/api/auth/me", nil, cookies...)
	suite.Require().Equal(http.StatusOK, me.Code)
	suite.Contains(me.Body.String(), "ada@example.com")

	logout := suite.request(http.MethodPost, "/api/auth/logout", nil, cookies...)
	suite.Require().Equal(http.StatusOK, logout.Code)

	me = suite.request(http.MethodGet, "/api/auth/me", nil, logout.Result().Cookies()...)
	suite.Equal(http.StatusUnauthorized, me.Code)
}

func (suite *MarketplaceRoutesTestSuite) TestProfiles() {
	w := suite.request(http.MethodPost, "/api/auth/register", validRegistration())
	suite.Require().Equal(http.StatusCreated, w.Code)
	var account struct {
		User    models.User    `json:"user"`
		Profile models.Profile `json:"profile"`
	}
	suite.decode(w, &account)

	client := validRegistration()
	client["email"] = "client@example.com"
	client["accountType"] = "client"
	suite.Require().Equal(http.StatusCreated, suite.request(http.MethodPost, "/api/auth/register", client).Code)

	get := suite.request(http.MethodGet, "/api/profile/"+account.User.ID, nil)
	suite.Require().Equal(http.StatusOK, get.Code)

	suite.Equal(http.StatusNotFound, suite.request(http.MethodGet, "/api/profile/nobody", nil).Code)

	patch := suite.request(http.MethodPatch, "/api/profile/"+account.Profile.ID, map[string]interface{}{
		"bio":        "Analyst",
		"skills":     []string{"math"},
		"hourlyRate": "90.00",
	})
	suite.Require().Equal(http.StatusOK, patch.Code)
	var updated models.Profile
	suite.decode(patch, &updated)
	suite.Require().NotNil(updated.Bio)
	suite.Equal("Analyst", *updated.Bio)
	suite.Equal([]string{"math"}, updated.Skills)
	suite.True(updated.HourlyRate.Equal(decimal.NewFromInt(90)))
	suite.Equal("Ada", updated.FirstName)

	cleared := suite.request(http.MethodPatch, "/api/profile/"+account.Profile.ID, map[string]interface{}{
		"bio": nil,
	})
	suite.Require().Equal(http.StatusOK, cleared.Code)
	suite.decode(cleared, &updated)
	suite.Nil(updated.Bio)
	suite.Equal([]string{"math"}, updated.Skills)

	negative := suite.request(http.MethodPatch, "/api/profile/"+account.Profile.ID, map[string]interface{}{
		"hourlyRate": "-1",
	})
	suite.Equal(http.StatusBadRequest, negative.Code)

	suite.Equal(http.StatusNotFound, suite.request(http.MethodPatch, "/api/profile/nobody", map[string]interface{}{}).Code)

	list := suite.request(http.MethodGet, "/api/freelancers", nil)
	suite.Require().Equal(http.StatusOK, list.Code)
	var freelancers []models.Profile
	suite.decode(list, &freelancers)
	suite.Require().Len(freelancers, 1)
	suite.Equal(account.User.ID, freelancers[0].UserID)
}

func (suite *MarketplaceRoutesTestSuite) TestGigLifecycle() {
	freelancer := suite.createUser("f@example.com", models.AccountTypeFreelancer)

	created := suite.request(http.MethodPost, "/api/gigs", map[string]interface{}{
		"freelancerId": freelancer.ID,
		"title":        "Logo design",
		"description":  "Vector logos",
		"price":        "120.50",
		"views":        999,
	})
	suite.Require().Equal(http.StatusCreated, created.Code)
	var gig models.Gig
	suite.decode(created, &gig)
	suite.Zero(gig.Views)
	suite.Nil(gig.Skills)
	suite.True(gig.Price.Equal(decimal.RequireFromString("120.5")))

	missingPrice := suite.request(http.MethodPost, "/api/gigs", map[string]interface{}{
		"freelancerId": freelancer.ID,
		"title":        "x",
		"description":  "y",
	})
	suite.Equal(http.StatusBadRequest, missingPrice.Code)

	var gigs []models.Gig
	list := suite.request(http.MethodGet, "/api/gigs?freelancerId="+freelancer.ID, nil)
	suite.Require().Equal(http.StatusOK, list.Code)
	suite.decode(list, &gigs)
	suite.Len(gigs, 1)

	empty := suite.request(http.MethodGet, "/api/gigs?freelancerId=nobody", nil)
	suite.Require().Equal(http.StatusOK, empty.Code)
	suite.JSONEq(`[]`, empty.Body.String())

	patched := suite.request(http.MethodPatch, "/api/gigs/"+gig.ID, map[string]interface{}{
		"title":  "Brand design",
		"images": []string{"a.png"},
	})
	suite.Require().Equal(http.StatusOK, patched.Code)
	suite.decode(patched, &gig)
	suite.Equal("Brand design", gig.Title)
	suite.Equal([]string{"a.png"}, gig.Images)

	suite.Equal(http.StatusNotFound, suite.request(http.MethodPatch, "/api/gigs/nobody", map[string]interface{}{}).Code)

	suite.Equal(http.StatusNoContent, suite.request(http.MethodDelete, "/api/gigs/"+gig.ID, nil).Code)
	suite.Equal(http.StatusNotFound, suite.request(http.MethodDelete, "/api/gigs/"+gig.ID, nil).Code)
	suite.Equal(http.StatusNotFound, suite.request(http.MethodGet, "/api/gigs/"+gig.ID, nil).Code)

	all := suite.request(http.MethodGet, "/api/gigs", nil)
	suite.Require().Equal(http.StatusOK, all.Code)
	suite.JSONEq(`[]`, all.Body.String())
}

func (suite *MarketplaceRoutesTestSuite) TestOrders() {
	created := suite.request(http.MethodPost, "/api/orders", map[string]interface{}{
		"gigId":        "g1",
		"clientId":     "c1",
		"freelancerId": "f1",
		"amount":       "250.00",
	})
	suite.Require().Equal(http.StatusCreated, created.Code)
	var order models.Order
	suite.decode(created, &order)
	suite.Equal(models.OrderStatusPending, order.Status)
	suite.Equal(models.EscrowStatusPending, order.EscrowStatus)
	suite.Nil(order.CompletedAt)

	zero := suite.request(http.MethodPost, "/api/orders", map[string]interface{}{
		"gigId":        "g1",
		"clientId":     "c1",
		"freelancerId": "f1",
		"amount":       "0",
	})
	suite.Equal(http.StatusBadRequest, zero.Code)

	missing := suite.request(http.MethodPost, "/api/orders", map[string]interface{}{
		"gigId":  "g1",
		"amount": "10",
	})
	suite.Equal(http.StatusBadRequest, missing.Code)

	patched := suite.request(http.MethodPatch, "/api/orders/"+order.ID, map[string]interface{}{
		"status":       "in_progress",
		"escrowStatus": "funded",
		"deliveryDate": "2026-11-01T00:00:00Z",
		"amount":       "1",
		"clientId":     "attacker",
	})
	suite.Require().Equal(http.StatusOK, patched.Code)
	suite.decode(patched, &order)
	suite.Equal(models.OrderStatusInProgress, order.Status)
	suite.Equal(models.EscrowStatusFunded, order.EscrowStatus)
	suite.Require().NotNil(order.DeliveryDate)
	suite.Equal("c1", order.ClientID)
	suite.True(order.Amount.Equal(decimal.NewFromInt(250)))

	badStatus := suite.request(http.MethodPatch, "/api/orders/"+order.ID, map[string]interface{}{
		"status": "shipped",
	})
	suite.Equal(http.StatusBadRequest, badStatus.Code)

	suite.Equal(http.StatusNotFound, suite.request(http.MethodPatch, "/api/orders/nobody", map[string]interface{}{}).Code)

	get := suite.request(http.MethodGet, "/api/orders/"+order.ID, nil)
	suite.Require().Equal(http.StatusOK, get.Code)
	suite.Equal(http.StatusNotFound, suite.request(http.MethodGet, "/api/orders/nobody", nil).Code)

	var orders []models.Order
	byClient := suite.request(http.MethodGet, "/api/orders/client/c1", nil)
	suite.Require().Equal(http.StatusOK, byClient.Code)
	suite.decode(byClient, &orders)
	suite.Len(orders, 1)

	byFreelancer := suite.request(http.MethodGet, "/api/orders/freelancer/f1", nil)
	suite.Require().Equal(http.StatusOK, byFreelancer.Code)
	suite.decode(byFreelancer, &orders)
	suite.Len(orders, 1)

	none := suite.request(http.MethodGet, "/api/orders/freelancer/nobody", nil)
	suite.Require().Equal(http.StatusOK, none.Code)
	suite.JSONEq(`[]`, none.Body.String())
}

func (suite *MarketplaceRoutesTestSuite) TestConnections() {
	created := suite.request(http.MethodPost, "/api/connections", map[string]string{
		"clientId":     "c1",
		"freelancerId": "f1",
	})
	suite.Require().Equal(http.StatusCreated, created.Code)

	suite.Equal(http.StatusBadRequest, suite.request(http.MethodPost, "/api/connections", map[string]string{
		"clientId": "c1",
	}).Code)

	list := suite.request(http.MethodGet, "/api/connections/c1", nil)
	suite.Require().Equal(http.StatusOK, list.Code)
	var connections []models.Connection
	suite.decode(list, &connections)
	suite.Require().Len(connections, 1)
	suite.Equal("f1", connections[0].FreelancerID)

	suite.JSONEq(`[]`, suite.request(http.MethodGet, "/api/connections/c2", nil).Body.String())
}

func (suite *MarketplaceRoutesTestSuite) TestProjectLifecycle() {
	created := suite.request(http.MethodPost, "/api/projects", map[string]interface{}{
		"clientId":    "c1",
		"title":       "Website",
		"description": "Landing page",
		"budget":      "1000",
		"deadline":    "2026-12-01T00:00:00Z",
	})
	suite.Require().Equal(http.StatusCreated, created.Code)
	var project models.Project
	suite.decode(created, &project)
	suite.Require().NotNil(project.Deadline)

	negative := suite.request(http.MethodPost, "/api/projects", map[string]interface{}{
		"clientId":    "c1",
		"title":       "Website",
		"description": "Landing page",
		"budget":      "-5",
	})
	suite.Equal(http.StatusBadRequest, negative.Code)

	var projects []models.Project
	byClient := suite.request(http.MethodGet, "/api/projects?clientId=c1", nil)
	suite.Require().Equal(http.StatusOK, byClient.Code)
	suite.decode(byClient, &projects)
	suite.Len(projects, 1)

	patched := suite.request(http.MethodPatch, "/api/projects/"+project.ID, map[string]interface{}{
		"deadline": nil,
		"skills":   []string{"go"},
	})
	suite.Require().Equal(http.StatusOK, patched.Code)
	suite.decode(patched, &project)
	suite.Nil(project.Deadline)
	suite.Equal([]string{"go"}, project.Skills)
	suite.Equal("Website", project.Title)

	suite.Equal(http.StatusOK, suite.request(http.MethodGet, "/api/projects/"+project.ID, nil).Code)
	suite.Equal(http.StatusNoContent, suite.request(http.MethodDelete, "/api/projects/"+project.ID, nil).Code)
	suite.Equal(http.StatusNotFound, suite.request(http.MethodDelete, "/api/projects/"+project.ID, nil).Code)
	suite.Equal(http.StatusNotFound, suite.request(http.MethodGet, "/api/projects/"+project.ID, nil).Code)
}

func (suite *MarketplaceRoutesTestSuite) TestNotifications() {
	created := suite.request(http.MethodPost, "/api/notifications", map[string]interface{}{
		"userId":  "u1",
		"message": "New order",
	})
	suite.Require().Equal(http.StatusCreated, created.Code)
	var notification models.Notification
	suite.decode(created, &notification)
	suite.Nil(notification.Link)
	suite.False(notification.Read)

	suite.Equal(http.StatusBadRequest, suite.request(http.MethodPost, "/api/notifications", map[string]interface{}{
		"userId": "u1",
	}).Code)

	read := suite.request(http.MethodPatch, "/api/notifications/"+notification.ID+"/read", nil)
	suite.Require().Equal(http.StatusOK, read.Code)
	suite.decode(read, &notification)
	suite.True(notification.Read)

	suite.Equal(http.StatusNotFound, suite.request(http.MethodPatch, "/api/notifications/nobody/read", nil).Code)

	list := suite.request(http.MethodGet, "/api/notifications/u1", nil)
	suite.Require().Equal(http.StatusOK, list.Code)
	var notifications []models.Notification
	suite.decode(list, &notifications)
	suite.Require().Len(notifications, 1)
	suite.True(notifications[0].Read)
}
