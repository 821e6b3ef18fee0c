package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/oxygenfit/salesconsole/internal/api/dto"
	ierr "github.com/oxygenfit/salesconsole/internal/errors"
	"github.com/oxygenfit/salesconsole/internal/testutil"
	"github.com/oxygenfit/salesconsole/internal/types"
)

type AuthServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  AuthService
	provider *testutil.FakeAuthProvider
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.provider = testutil.NewFakeAuthProvider()
	s.service = NewAuthService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		Cache:        s.GetCache(),
		AuthProvider: s.provider,
	})
}

func (s *AuthServiceSuite) TestLogin() {
	resp, err := s.service.Login(s.GetContext(), &dto.LoginRequest{
		Email:    "rep@oxygenfit.cn",
		Password: "secret",
	})
	s.Require().NoError(err)
	s.Equal("rep@oxygenfit.cn", resp.Email)
	s.NotEmpty(resp.AccessToken)
}

func (s *AuthServiceSuite) TestLoginRejectsWrongCredentials() {
	s.provider.RequireCredentials("rep@oxygenfit.cn", "secret")

	_, err := s.service.Login(s.GetContext(), &dto.LoginRequest{
		Email:    "rep@oxygenfit.cn",
		Password: "wrong",
	})
	s.Error(err)
	s.True(ierr.IsInvalidCredentials(err))
}

func (s *AuthServiceSuite) TestLoginValidatesPayload() {
	_, err := s.service.Login(s.GetContext(), &dto.LoginRequest{Email: "not-an-email", Password: "x"})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *AuthServiceSuite) TestMeAndLogout() {
	resp, err := s.service.Login(s.GetContext(), &dto.LoginRequest{
		Email:    "rep@oxygenfit.cn",
		Password: "secret",
	})
	s.Require().NoError(err)

	ctx := types.SetUserToken(s.GetContext(), resp.AccessToken)

	me, err := s.service.Me(ctx)
	s.Require().NoError(err)
	s.Equal("rep@oxygenfit.cn", me.Email)

	s.NoError(s.service.Logout(ctx))

	_, err = s.service.Me(ctx)
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}
