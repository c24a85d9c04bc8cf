package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigboard/internal/api"
	"gigboard/internal/models"
)

func TestEmployerStatusDecodesTopLevelShape(t *testing.T) {
	svc := NewEmployersService(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/employers/status", r.URL.Path)
		w.Write([]byte(`{"success":true,"approved":false,"status":"pending"}`))
	}))
	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Success)
	assert.False(t, status.Approved)
	assert.Equal(t, models.ApprovalPending, status.Status)
}

func TestEmployerStatusUnauthorizedPropagates(t *testing.T) {
	svc := NewEmployersService(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Authorization header required"}`))
	}))
	_, err := svc.Status(context.Background())
	assert.True(t, api.IsUnauthorized(err))
}

func TestEmployerApplicationValidation(t *testing.T) {
	assert.ErrorIs(t, EmployerApplication{CompanyLocation: "Berlin"}.Validate(), ErrValidation)
	assert.ErrorIs(t, EmployerApplication{CompanyName: "Acme"}.Validate(), ErrValidation)
	assert.NoError(t, EmployerApplication{CompanyName: "Acme", CompanyLocation: "Berlin"}.Validate())
}

func TestEmployerApplySubmits(t *testing.T) {
	svc := NewEmployersService(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/employers/apply", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"_id":"E1","companyName":"Acme","approval":"pending"}}`))
	}))
	profile, err := svc.Apply(context.Background(), EmployerApplication{
		CompanyName:     "Acme",
		CompanyLocation: "Berlin",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalPending, profile.Approval)
}
