package bootstrap

import (
	"log/slog"

	"github.com/jersab/Poject-BizCardHub/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth      *service.AuthService
	Cards     *service.CardService
	Users     *service.UserService
	Favorites *service.FavoriteService
}

// BuildServices constructs the service layer on top of the adapters.
func BuildServices(adapters AdapterContainer, logger *slog.Logger) ServiceContainer {
	return ServiceContainer{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Users:    adapters.Users,
			Sessions: adapters.Sessions,
			Decoder:  adapters.Decoder,
			Logger:   logger,
		}),
		Cards: service.NewCardService(service.CardServiceOptions{
			Cards:  adapters.Cards,
			Logger: logger,
		}),
		Users: service.NewUserService(service.UserServiceOptions{
			Users:    adapters.Users,
			Sessions: adapters.Sessions,
			Logger:   logger,
		}),
		Favorites: service.NewFavoriteService(service.FavoriteServiceOptions{
			Cards:  adapters.Cards,
			Logger: logger,
		}),
	}
}
