package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"crowdfund_backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func adminRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.GET("/api/admin/users", ListUsersHandler(db, nil))
	r.GET("/api/admin/donations", ListDonationsHandler(db, nil))
	return r
}

func TestListDonationsFilters(t *testing.T) {
	db := setupTestDB(t)
	r := adminRouter(db)
	donor := createTestUser(t, db, "donor@test.com")
	other := createTestUser(t, db, "other@test.com")

	seed := []domain.Donation{
		{UserID: donor.ID, Amount: 100, Currency: "INR", PaymentID: "pay_a", OrderID: "order_a", Signature: "s", DonatedTo: "c", Status: domain.DonationStatusSuccess, CreatedAt: 1000},
		{UserID: donor.ID, Amount: 200, Currency: "INR", PaymentID: "pay_b", OrderID: "order_b", Signature: "s", DonatedTo: "c", Status: domain.DonationStatusFailed, CreatedAt: 2000},
		{UserID: other.ID, Amount: 300, Currency: "INR", PaymentID: "pay_c", OrderID: "order_c", Signature: "s", DonatedTo: "c", Status: domain.DonationStatusSuccess, CreatedAt: 3000},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	type listResponse struct {
		Donations []domain.Donation `json:"donations"`
		Total     int64             `json:"total"`
	}

	// Unfiltered: everything, newest first
	w := performRequest(r, http.MethodGet, "/api/admin/donations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Donations, 3)
	assert.Equal(t, "pay_c", resp.Donations[0].PaymentID)

	// Filter by donor
	w = performRequest(r, http.MethodGet, fmt.Sprintf("/api/admin/donations?user_id=%d", donor.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = listResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Donations, 2)

	// Filter by status
	w = performRequest(r, http.MethodGet, "/api/admin/donations?status=failed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = listResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Donations, 1)
	assert.Equal(t, "pay_b", resp.Donations[0].PaymentID)

	// Pagination caps the page size
	w = performRequest(r, http.MethodGet, "/api/admin/donations?page=1&page_size=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = listResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Donations, 2)
	assert.Equal(t, int64(3), resp.Total)
}

func TestListUsers(t *testing.T) {
	db := setupTestDB(t)
	r := adminRouter(db)
	createTestUser(t, db, "a@test.com")
	createTestUser(t, db, "b@test.com")

	w := performRequest(r, http.MethodGet, "/api/admin/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Users []UserAdminResponse `json:"users"`
		Total int64               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Users, 2)
	assert.Equal(t, int64(2), resp.Total)
	// Password hashes never appear in the admin listing
	assert.NotContains(t, w.Body.String(), "$2a$")
}
