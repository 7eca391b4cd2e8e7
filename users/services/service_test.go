package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/joblyhq/jobly/internal/apperrors"
	"github.com/joblyhq/jobly/internal/database/sqlquery"
	"github.com/joblyhq/jobly/users/models"
)

func TestCreateUser_HashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	var stored *models.User
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.User)
		}).
		Return(&models.User{Username: "hueter"}, nil)

	_, err := svc.CreateUser(context.Background(), &models.CreateUserRequest{
		Username: "hueter",
		Password: "secret123",
		Email:    "michael@rithmschool.com",
	})
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestGetUser_IncludesAppliedJobs(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	repo.On("FindByUsername", mock.Anything, "hueter").
		Return(&models.User{Username: "hueter", FirstName: "Michael"}, nil)
	repo.On("FindAppliedJobIDs", mock.Anything, "hueter").
		Return([]int64{3, 1}, nil)

	detail, err := svc.GetUser(context.Background(), "hueter")
	require.NoError(t, err)
	assert.Equal(t, "Michael", detail.FirstName)
	assert.Equal(t, []int64{3, 1}, detail.Jobs)
}

func TestGetUser_NotFound(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	repo.On("FindByUsername", mock.Anything, "ghost").
		Return(nil, apperrors.ErrNotFound)

	_, err := svc.GetUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "FindAppliedJobIDs", mock.Anything, mock.Anything)
}

func TestUpdateUser_RehashesPasswordInPlace(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	var forwarded sqlquery.Fields
	repo.On("Update", mock.Anything, "hueter", mock.Anything).
		Run(func(args mock.Arguments) {
			forwarded = args.Get(2).(sqlquery.Fields)
		}).
		Return(&models.User{Username: "hueter"}, nil)

	fields := sqlquery.Fields{
		{Name: "firstName", Value: "Mike"},
		{Name: "password", Value: "newsecret"},
		{Name: "email", Value: "mike@rithmschool.com"},
	}
	_, err := svc.UpdateUser(context.Background(), "hueter", fields)
	require.NoError(t, err)

	require.Len(t, forwarded, 3)
	assert.Equal(t, "firstName", forwarded[0].Name)
	assert.Equal(t, "password", forwarded[1].Name)
	assert.Equal(t, "email", forwarded[2].Name)

	hashed, ok := forwarded[1].Value.(string)
	require.True(t, ok)
	assert.NotEqual(t, "newsecret", hashed)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("newsecret")))
}

func TestListUsers_EmptyResultPropagates(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	repo.On("FindMany", mock.Anything, map[string]string(nil)).
		Return(nil, apperrors.ErrEmptyResult)

	_, err := svc.ListUsers(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrEmptyResult)
}
