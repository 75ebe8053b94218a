package authService

import (
	"github.com/qistanaushaf/Adkeu/internal/api/auth"
	"github.com/qistanaushaf/Adkeu/pkg/bcrypt"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAuthService interface {
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
}

type authService struct {
	log         *logrus.Logger
	bcryptUtils bcrypt.IBcrypt
}

func NewAuthService(log *logrus.Logger, bcryptUtils bcrypt.IBcrypt) IAuthService {
	return &authService{
		log:         log,
		bcryptUtils: bcryptUtils,
	}
}
