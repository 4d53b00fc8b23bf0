package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	jwtMocks "frontdesk/infras/jwt/mocks"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/auth/model/dto"
	"frontdesk/internal/domains/auth/service"
	staffRepoMocks "frontdesk/internal/domains/staff/mocks"
	staffModel "frontdesk/internal/domains/staff/model"
	staffServiceMocks "frontdesk/internal/domains/staff/service/mocks"
	"frontdesk/shared/failure"
)

// bcrypt hash of "password".
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

type authMockSet struct {
	staffRepo    *staffRepoMocks.MockStaff
	staffService *staffServiceMocks.MockStaff
	jwtService   *jwtMocks.MockJWT
}

func newAuthService(t *testing.T) (service.Auth, authMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := authMockSet{
		staffRepo:    staffRepoMocks.NewMockStaff(ctrl),
		staffService: staffServiceMocks.NewMockStaff(ctrl),
		jwtService:   jwtMocks.NewMockJWT(ctrl),
	}

	svc := service.New(set.staffRepo, set.staffService, &config.Config{}, mocks.NewOtel(), set.jwtService)

	return svc, set
}

func TestAuthService_Login(t *testing.T) {
	activeStaff := staffModel.Staff{
		ID:       "staff-1",
		FullName: "Front Desk",
		Email:    "desk@hotel.test",
		Password: passwordHash,
		Role:     "receptionist",
		IsActive: true,
	}

	tokenPair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(set authMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "desk@hotel.test", Password: "password"},
			setupMock: func(set authMockSet) {
				set.staffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeStaff, nil)
				set.jwtService.EXPECT().GenerateTokenPair("staff-1", "desk@hotel.test", "receptionist").Return(tokenPair, nil)
				set.staffService.EXPECT().RecordLog(gomock.Any(), "staff-1", staffModel.ActionLogin, gomock.Any())
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@hotel.test", Password: "password"},
			setupMock: func(set authMockSet) {
				set.staffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "desk@hotel.test", Password: "not-the-password"},
			setupMock: func(set authMockSet) {
				set.staffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeStaff, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Email: "desk@hotel.test", Password: "password"},
			setupMock: func(set authMockSet) {
				inactive := activeStaff
				inactive.IsActive = false

				set.staffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newAuthService(t)
			tt.setupMock(set)

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "refresh-token", res.RefreshToken)
			assert.Equal(t, "staff-1", res.StaffID)
			assert.Equal(t, "receptionist", res.Role)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("successful refresh", func(t *testing.T) {
		svc, set := newAuthService(t)

		set.jwtService.EXPECT().RefreshTokens("old-refresh-token").Return(&jwt.TokenPair{
			AccessToken:  "new-access-token",
			RefreshToken: "new-refresh-token",
			ExpiresIn:    900,
		}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "old-refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access-token", res.AccessToken)
		assert.Equal(t, "new-refresh-token", res.RefreshToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		svc, set := newAuthService(t)

		set.jwtService.EXPECT().RefreshTokens("garbage").Return(nil, jwt.ErrInvalidToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "garbage"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	staff := staffModel.Staff{
		ID:       "staff-1",
		Email:    "desk@hotel.test",
		Password: passwordHash,
		IsActive: true,
	}

	t.Run("successful change", func(t *testing.T) {
		svc, set := newAuthService(t)

		set.staffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)
		set.staffRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "password",
			NewPassword:     "a-new-password",
		}, "staff-1")

		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc, set := newAuthService(t)

		set.staffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "a-new-password",
		}, "staff-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("staff not found", func(t *testing.T) {
		svc, set := newAuthService(t)

		set.staffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{}, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "password",
			NewPassword:     "a-new-password",
		}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
